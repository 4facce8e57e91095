package nest

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenOptions configures NewEbitenBackend.
type EbitenOptions struct {
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool `yaml:"show_fps"`
	// TPS sets ebiten's ticks per second. Zero keeps ebiten's default.
	TPS int `yaml:"tps"`
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// commandKind identifies the kind of recorded draw command.
type commandKind uint8

const (
	commandFill    commandKind = iota // Fill with clr
	commandRect                       // StrokeRect
	commandLine                       // StrokeLine
	commandLines                      // polyline over points[first:first+count]
	commandTexture                    // DrawImage scaled into rect
)

// drawCommand is a single draw call recorded during a tick and replayed onto
// the screen in Draw.
type drawCommand struct {
	kind           commandKind
	clr            color.RGBA
	rect           Rect
	x1, y1, x2, y2 float64
	first, count   int
	tex            *ebiten.Image
}

// frameBuffer is one recorded frame. Polyline points live in a shared arena so
// recording does not allocate once the buffers have grown.
type frameBuffer struct {
	commands []drawCommand
	points   []Vec2
}

func (f *frameBuffer) reset() {
	f.commands = f.commands[:0]
	f.points = f.points[:0]
}

// EbitenBackend runs the engine on Ebitengine. Ebitengine owns the main loop,
// so the backend implements Driver: each ebiten Update runs one engine tick,
// which records draw commands into a pending frame. Present swaps the pending
// frame with the presented one, and ebiten's Draw replays the presented frame.
type EbitenBackend struct {
	opts EbitenOptions

	title         string
	width, height int
	open          bool

	drawColor color.RGBA
	pending   frameBuffer
	presented frameBuffer

	events []Event
	keys   []ebiten.Key

	fps             fpsOverlay
	screenshotQueue []string
}

// NewEbitenBackend creates an unopened backend. Pass it to Init.
func NewEbitenBackend(opts EbitenOptions) *EbitenBackend {
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = defaultScreenshotDir
	}
	return &EbitenBackend{
		opts:      opts,
		drawColor: color.RGBA{A: 255},
	}
}

// Open configures the window. Ebitengine creates it when the loop starts.
func (b *EbitenBackend) Open(title string, width, height int) error {
	b.title = title
	b.width = width
	b.height = height
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowClosingHandled(true)
	if b.opts.TPS > 0 {
		ebiten.SetTPS(b.opts.TPS)
	}
	b.open = true
	return nil
}

// Close drops recorded frames and pending events. Ebitengine destroys the
// window itself when Drive returns.
func (b *EbitenBackend) Close() error {
	if !b.open {
		return nil
	}
	b.open = false
	b.pending.reset()
	b.presented.reset()
	b.events = b.events[:0]
	return nil
}

// Drive runs ebiten's game loop, calling step once per ebiten tick.
func (b *EbitenBackend) Drive(step func() bool) error {
	return ebiten.RunGame(&ebitenGame{backend: b, step: step})
}

// Clear starts a new pending frame filled with the current draw color.
func (b *EbitenBackend) Clear() {
	b.pending.reset()
	b.pending.commands = append(b.pending.commands, drawCommand{kind: commandFill, clr: b.drawColor})
}

// Present makes the pending frame the one ebiten draws.
func (b *EbitenBackend) Present() {
	b.pending, b.presented = b.presented, b.pending
	b.pending.reset()
}

func (b *EbitenBackend) SetDrawColor(r, g, bl, a uint8) {
	b.drawColor = color.RGBA{R: r, G: g, B: bl, A: a}
}

func (b *EbitenBackend) DrawRect(r Rect) {
	b.pending.commands = append(b.pending.commands, drawCommand{kind: commandRect, clr: b.drawColor, rect: r})
}

func (b *EbitenBackend) DrawLine(x1, y1, x2, y2 float64) {
	b.pending.commands = append(b.pending.commands, drawCommand{
		kind: commandLine, clr: b.drawColor,
		x1: x1, y1: y1, x2: x2, y2: y2,
	})
}

func (b *EbitenBackend) DrawLines(points []Vec2) {
	if len(points) < 2 {
		return
	}
	first := len(b.pending.points)
	b.pending.points = append(b.pending.points, points...)
	b.pending.commands = append(b.pending.commands, drawCommand{
		kind: commandLines, clr: b.drawColor,
		first: first, count: len(points),
	})
}

func (b *EbitenBackend) DrawTexture(tex TextureHandle, dst Rect) {
	t, ok := tex.(*ebitenTexture)
	if !ok || t.img == nil {
		return
	}
	b.pending.commands = append(b.pending.commands, drawCommand{kind: commandTexture, rect: dst, tex: t.img})
}

// PollEvent pops the next event collected at the start of the tick.
func (b *EbitenBackend) PollEvent() (Event, bool) {
	if len(b.events) == 0 {
		return Event{}, false
	}
	e := b.events[0]
	copy(b.events, b.events[1:])
	b.events = b.events[:len(b.events)-1]
	return e, true
}

// UploadTexture copies img into a new ebiten image.
func (b *EbitenBackend) UploadTexture(img image.Image) (TextureHandle, error) {
	size := img.Bounds().Size()
	return &ebitenTexture{
		img: ebiten.NewImageFromImage(img),
		w:   size.X,
		h:   size.Y,
	}, nil
}

// ebitenTexture is the TextureHandle for EbitenBackend.
type ebitenTexture struct {
	img  *ebiten.Image
	w, h int
}

func (t *ebitenTexture) Size() (int, int) { return t.w, t.h }

func (t *ebitenTexture) Destroy() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}

var mouseButtons = [...]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// collectEvents translates this tick's ebiten input state into events.
func (b *EbitenBackend) collectEvents() {
	if ebiten.IsWindowBeingClosed() {
		b.events = append(b.events, Event{Type: EventQuit})
	}

	b.keys = inpututil.AppendJustPressedKeys(b.keys[:0])
	for _, k := range b.keys {
		b.events = append(b.events, Event{Type: EventKeyDown, Key: k.String()})
	}
	b.keys = inpututil.AppendJustReleasedKeys(b.keys[:0])
	for _, k := range b.keys {
		b.events = append(b.events, Event{Type: EventKeyUp, Key: k.String()})
	}

	for _, btn := range mouseButtons {
		var typ EventType
		switch {
		case inpututil.IsMouseButtonJustPressed(btn):
			typ = EventMouseDown
		case inpututil.IsMouseButtonJustReleased(btn):
			typ = EventMouseUp
		default:
			continue
		}
		x, y := ebiten.CursorPosition()
		b.events = append(b.events, Event{Type: typ, X: float64(x), Y: float64(y), Button: int(btn)})
	}
}

// draw replays the presented frame onto screen.
func (b *EbitenBackend) draw(screen *ebiten.Image) {
	f := &b.presented
	for i := range f.commands {
		cmd := &f.commands[i]
		switch cmd.kind {
		case commandFill:
			screen.Fill(cmd.clr)
		case commandRect:
			r := cmd.rect
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, cmd.clr, false)
		case commandLine:
			vector.StrokeLine(screen, float32(cmd.x1), float32(cmd.y1), float32(cmd.x2), float32(cmd.y2), 1, cmd.clr, false)
		case commandLines:
			pts := f.points[cmd.first : cmd.first+cmd.count]
			for j := 1; j < len(pts); j++ {
				vector.StrokeLine(screen, float32(pts[j-1].X), float32(pts[j-1].Y), float32(pts[j].X), float32(pts[j].Y), 1, cmd.clr, false)
			}
		case commandTexture:
			drawTextureInto(screen, cmd.tex, cmd.rect)
		}
	}

	if b.opts.ShowFPS {
		b.fps.draw(screen)
	}
	b.flushScreenshots(screen)
}

func drawTextureInto(screen, tex *ebiten.Image, dst Rect) {
	size := tex.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(dst.Width/float64(size.X), dst.Height/float64(size.Y))
	op.GeoM.Translate(dst.X, dst.Y)
	screen.DrawImage(tex, &op)
}

// ebitenGame adapts the engine's step function to ebiten.Game.
type ebitenGame struct {
	backend *EbitenBackend
	step    func() bool
}

func (g *ebitenGame) Update() error {
	g.backend.collectEvents()
	if g.backend.opts.ShowFPS {
		g.backend.fps.update(1.0 / float64(ebiten.TPS()))
	}
	if !g.step() {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.backend.draw(screen)
}

func (g *ebitenGame) Layout(_, _ int) (int, int) {
	return g.backend.width, g.backend.height
}
