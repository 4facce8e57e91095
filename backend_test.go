package nest

import (
	"errors"
	"fmt"
	"image"
)

// lineOp is a recorded DrawLine call.
type lineOp struct {
	x1, y1, x2, y2 float64
}

// textureOp is a recorded DrawTexture call.
type textureOp struct {
	tex TextureHandle
	dst Rect
}

// recordingBackend is a Backend that records every call for assertions.
type recordingBackend struct {
	ops      []string
	colors   [][4]uint8
	rects    []Rect
	lines    []lineOp
	polys    [][]Vec2
	textures []textureOp
	events   []Event

	openErr   error
	uploadErr error
	opened    bool
	closed    int
	title     string
	w, h      int
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{}
}

func (b *recordingBackend) Open(title string, width, height int) error {
	b.ops = append(b.ops, "open")
	if b.openErr != nil {
		return b.openErr
	}
	b.opened = true
	b.title, b.w, b.h = title, width, height
	return nil
}

func (b *recordingBackend) Close() error {
	b.ops = append(b.ops, "close")
	b.closed++
	return nil
}

func (b *recordingBackend) Clear()   { b.ops = append(b.ops, "clear") }
func (b *recordingBackend) Present() { b.ops = append(b.ops, "present") }

func (b *recordingBackend) SetDrawColor(r, g, bl, a uint8) {
	b.ops = append(b.ops, fmt.Sprintf("color %d,%d,%d,%d", r, g, bl, a))
	b.colors = append(b.colors, [4]uint8{r, g, bl, a})
}

func (b *recordingBackend) DrawRect(r Rect) {
	b.ops = append(b.ops, "rect")
	b.rects = append(b.rects, r)
}

func (b *recordingBackend) DrawLine(x1, y1, x2, y2 float64) {
	b.ops = append(b.ops, "line")
	b.lines = append(b.lines, lineOp{x1, y1, x2, y2})
}

func (b *recordingBackend) DrawLines(points []Vec2) {
	b.ops = append(b.ops, "lines")
	b.polys = append(b.polys, append([]Vec2(nil), points...))
}

func (b *recordingBackend) DrawTexture(tex TextureHandle, dst Rect) {
	b.ops = append(b.ops, "texture")
	b.textures = append(b.textures, textureOp{tex, dst})
}

func (b *recordingBackend) PollEvent() (Event, bool) {
	if len(b.events) == 0 {
		return Event{}, false
	}
	e := b.events[0]
	b.events = b.events[1:]
	return e, true
}

func (b *recordingBackend) UploadTexture(img image.Image) (TextureHandle, error) {
	if b.uploadErr != nil {
		return nil, b.uploadErr
	}
	size := img.Bounds().Size()
	return &fakeTexture{w: size.X, h: size.Y}, nil
}

// resetOps forgets everything recorded so far.
func (b *recordingBackend) resetOps() {
	b.ops = nil
	b.colors = nil
	b.rects = nil
	b.lines = nil
	b.polys = nil
	b.textures = nil
}

// fakeTexture counts Destroy calls.
type fakeTexture struct {
	w, h      int
	destroyed int
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }
func (t *fakeTexture) Destroy()         { t.destroyed++ }

// drivingBackend implements Driver and records whether it was used.
type drivingBackend struct {
	*recordingBackend
	driven int
	err    error
}

func (b *drivingBackend) Drive(step func() bool) error {
	for step() {
		b.driven++
	}
	b.driven++
	return b.err
}

var errTestBackend = errors.New("test backend failure")

// newTestNest returns an engine on a recording backend with the default config.
func newTestNest() (*Nest, *recordingBackend) {
	b := newRecordingBackend()
	n, err := Init(b, DefaultConfig())
	if err != nil {
		panic(err)
	}
	b.resetOps()
	return n, b
}
