package nest

import "image"

// Renderer is the drawing surface a Backend exposes to the engine. Coordinates
// are in window pixels. Draw calls have no failure mode; a backend swallows its
// own errors.
type Renderer interface {
	// Clear fills the frame buffer with the current draw color.
	Clear()
	// Present shows everything drawn since the last Clear.
	Present()
	SetDrawColor(r, g, b, a uint8)
	// DrawRect outlines r with the current draw color.
	DrawRect(r Rect)
	DrawLine(x1, y1, x2, y2 float64)
	// DrawLines draws a connected polyline through points. It does not close
	// the path and must not retain the slice.
	DrawLines(points []Vec2)
	// DrawTexture copies tex into dst, scaling if sizes differ.
	DrawTexture(tex TextureHandle, dst Rect)
}

// Backend is a window, renderer, and event source. The engine is its only
// user and calls it from a single goroutine.
type Backend interface {
	Renderer

	// Open creates the window and renderer.
	Open(title string, width, height int) error
	// Close releases the window and renderer. Closing twice is a no-op.
	Close() error
	// PollEvent returns the next pending event, or false when none remain.
	PollEvent() (Event, bool)
	// UploadTexture turns decoded pixels into a renderable texture.
	UploadTexture(img image.Image) (TextureHandle, error)
}

// TextureHandle is a backend texture resource.
type TextureHandle interface {
	Size() (width, height int)
	// Destroy frees the backend resource. The engine calls it at most once.
	Destroy()
}

// Driver is implemented by backends that must own the main loop themselves
// (for example Ebitengine). Drive calls step once per frame until it returns
// false, then returns.
type Driver interface {
	Drive(step func() bool) error
}

// Screenshotter is implemented by backends that can capture the presented
// frame to disk.
type Screenshotter interface {
	Screenshot(label string)
}
