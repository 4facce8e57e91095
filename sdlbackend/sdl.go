//go:build sdl2

// Package sdlbackend runs nest on SDL2 through go-sdl2. It needs cgo and the
// SDL2 development libraries; build with -tags sdl2.
//
//	backend := sdlbackend.New()
//	n, err := nest.Init(backend, nest.DefaultConfig())
package sdlbackend

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"github.com/phanxgames/nest"
	"github.com/veandco/go-sdl2/sdl"
)

// Backend is a nest.Backend backed by an SDL window and accelerated renderer.
// It does not implement nest.Driver; the engine runs its own loop.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	points   []sdl.Point
}

// New returns an unopened backend. Pass it to nest.Init.
func New() *Backend {
	return &Backend{}
}

// Open initializes the SDL video subsystem and creates a centered window and
// accelerated renderer.
func (b *Backend) Open(title string, width, height int) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	window, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(width), int32(height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl create window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("sdl create renderer: %w", err)
	}
	b.window = window
	b.renderer = renderer
	return nil
}

// Close destroys the renderer and window and shuts SDL down. Resources that
// were already released are skipped.
func (b *Backend) Close() error {
	if b.renderer == nil && b.window == nil {
		return nil
	}
	var firstErr error
	if b.renderer != nil {
		if err := b.renderer.Destroy(); err != nil {
			firstErr = err
		}
		b.renderer = nil
	}
	if b.window != nil {
		if err := b.window.Destroy(); err != nil && firstErr == nil {
			firstErr = err
		}
		b.window = nil
	}
	sdl.Quit()
	return firstErr
}

func (b *Backend) Clear() {
	_ = b.renderer.Clear()
}

func (b *Backend) Present() {
	b.renderer.Present()
}

func (b *Backend) SetDrawColor(r, g, bl, a uint8) {
	_ = b.renderer.SetDrawColor(r, g, bl, a)
}

func (b *Backend) DrawRect(r nest.Rect) {
	_ = b.renderer.DrawRect(&sdl.Rect{
		X: int32(r.X), Y: int32(r.Y),
		W: int32(r.Width), H: int32(r.Height),
	})
}

func (b *Backend) DrawLine(x1, y1, x2, y2 float64) {
	_ = b.renderer.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2))
}

func (b *Backend) DrawLines(points []nest.Vec2) {
	b.points = b.points[:0]
	for _, p := range points {
		b.points = append(b.points, sdl.Point{X: int32(p.X), Y: int32(p.Y)})
	}
	_ = b.renderer.DrawLines(b.points)
}

func (b *Backend) DrawTexture(tex nest.TextureHandle, dst nest.Rect) {
	t, ok := tex.(*texture)
	if !ok || t.tex == nil {
		return
	}
	_ = b.renderer.Copy(t.tex, nil, &sdl.Rect{
		X: int32(dst.X), Y: int32(dst.Y),
		W: int32(dst.Width), H: int32(dst.Height),
	})
}

// PollEvent returns the next SDL event translated to a nest.Event.
func (b *Backend) PollEvent() (nest.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return nest.Event{}, false
	}
	return translate(ev), true
}

func translate(ev sdl.Event) nest.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return nest.Event{Type: nest.EventQuit}
	case *sdl.KeyboardEvent:
		typ := nest.EventKeyDown
		if e.Type == sdl.KEYUP {
			typ = nest.EventKeyUp
		}
		return nest.Event{Type: typ, Key: sdl.GetKeyName(e.Keysym.Sym)}
	case *sdl.MouseButtonEvent:
		typ := nest.EventMouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			typ = nest.EventMouseUp
		}
		return nest.Event{Type: typ, X: float64(e.X), Y: float64(e.Y), Button: int(e.Button)}
	case *sdl.WindowEvent:
		return nest.Event{Type: nest.EventWindow}
	default:
		return nest.Event{Type: nest.EventOther}
	}
}

// UploadTexture copies img into an RGBA surface, creates a texture from it,
// and frees the surface.
func (b *Backend) UploadTexture(img image.Image) (nest.TextureHandle, error) {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Rect, img, bounds.Min, draw.Src)
	}
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("sdl upload: empty image")
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&rgba.Pix[0]),
		int32(w), int32(h), 32, int32(rgba.Stride), uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("sdl upload: create surface: %w", err)
	}
	defer surface.Free()

	tex, err := b.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("sdl upload: create texture: %w", err)
	}
	return &texture{tex: tex, w: w, h: h}, nil
}

// texture is the nest.TextureHandle for Backend.
type texture struct {
	tex  *sdl.Texture
	w, h int
}

func (t *texture) Size() (int, int) { return t.w, t.h }

func (t *texture) Destroy() {
	if t.tex != nil {
		_ = t.tex.Destroy()
		t.tex = nil
	}
}

var (
	_ nest.Backend       = (*Backend)(nil)
	_ nest.TextureHandle = (*texture)(nil)
)
