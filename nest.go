package nest

import "errors"

// Rect is an axis-aligned rectangle handed to the renderer. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// ShapeKind identifies the variant of a Primitive.
type ShapeKind uint8

const (
	ShapeRectangle ShapeKind = iota // outlined rectangle anchored at its top-left
	ShapeCircle                     // circle approximated by straight segments
	ShapeTriangle                   // two base corners and a skewed apex
	ShapeLine                       // single segment between two points
)

// EventType identifies a kind of platform event.
type EventType uint8

const (
	EventOther     EventType = iota // anything the backend does not classify
	EventQuit                       // the application was asked to close
	EventKeyDown                    // a key was pressed
	EventKeyUp                      // a key was released
	EventMouseDown                  // a mouse button was pressed
	EventMouseUp                    // a mouse button was released
	EventWindow                     // window moved, resized, focused, etc.
)

// Event is a single platform event drained by the run loop. Only EventQuit is
// interpreted by the engine; everything else is forwarded to the EventStore.
type Event struct {
	Type EventType
	// Key is the backend's name for the key (EventKeyDown, EventKeyUp).
	Key string
	// Pointer fields (EventMouseDown, EventMouseUp).
	X, Y   float64
	Button int
}

var (
	// ErrNoBackend is returned by Init when no backend is supplied.
	ErrNoBackend = errors.New("nest: no backend")
	// ErrInvalidSize is returned by Init for a non-positive window size.
	ErrInvalidSize = errors.New("nest: invalid window size")
	// ErrClosed is returned when running an engine that was already closed.
	ErrClosed = errors.New("nest: engine closed")
)
