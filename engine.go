package nest

import (
	"errors"
	"fmt"
	"time"
)

// EventStore is the interface for optional ECS integration. When set on a
// Nest, every drained event is forwarded to it.
type EventStore interface {
	EmitEvent(event Event)
}

// Nest is the engine handle. It owns the backend, the lifecycle state machine,
// the frame clock, and the background color. Create one with Init.
type Nest struct {
	backend    Backend
	states     StateMachine
	clock      *Clock
	background Color
	store      EventStore

	running bool
	closed  bool
	debug   bool

	injectQueue []Event
	testRunner  *TestRunner
}

// Init opens backend with the window settings in cfg and returns the engine.
// A failure here is fatal: the backend is not usable and Run must not be called.
func Init(backend Backend, cfg Config) (*Nest, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := backend.Open(cfg.Title, cfg.Width, cfg.Height); err != nil {
		return nil, fmt.Errorf("nest: open backend: %w", err)
	}

	n := &Nest{
		backend:    backend,
		clock:      NewClock(),
		background: ColorBlack,
		debug:      cfg.Debug,
	}
	if cfg.Background != "" {
		n.background = Hex(cfg.Background)
	}
	n.applyBackground()

	Logger().Info("nest: initialized", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return n, nil
}

// Backend returns the backend the engine draws with.
func (n *Nest) Backend() Backend {
	return n.backend
}

// States returns the engine's lifecycle state machine.
func (n *Nest) States() *StateMachine {
	return &n.states
}

// SetCurrentState replaces the current lifecycle state. See
// StateMachine.SetCurrentState.
func (n *Nest) SetCurrentState(s State) {
	n.states.SetCurrentState(s)
}

// SetBackgroundColor sets the color the frame buffer is cleared to.
func (n *Nest) SetBackgroundColor(c Color) {
	n.background = c
}

// BackgroundColor returns the current background color.
func (n *Nest) BackgroundColor() Color {
	return n.background
}

// SetEventStore sets the optional ECS bridge.
func (n *Nest) SetEventStore(store EventStore) {
	n.store = store
}

// DeltaTime returns the seconds since the previous call. The first call
// measures from Init.
func (n *Nest) DeltaTime() float64 {
	return n.clock.DeltaTime()
}

// Draw draws p with the engine's backend.
func (n *Nest) Draw(p Primitive) {
	DrawPrimitive(n.backend, p)
}

// Running reports whether the run loop is active.
func (n *Nest) Running() bool {
	return n.running
}

// Quit asks the run loop to stop at the end of the current tick.
func (n *Nest) Quit() {
	n.InjectQuit()
}

// Run drives ticks until a quit event is seen, then closes the engine. Backends
// implementing Driver run the loop themselves.
func (n *Nest) Run() error {
	if n.closed {
		return ErrClosed
	}
	n.running = true

	var err error
	if d, ok := n.backend.(Driver); ok {
		err = d.Drive(n.Step)
	} else {
		for n.Step() {
		}
	}
	n.running = false

	return errors.Join(err, n.Close())
}

// Step runs one tick: clear, update, drain events, then present with the
// background color. It returns false once a quit event has been drained.
func (n *Nest) Step() bool {
	if n.closed {
		return false
	}
	n.running = true

	var stats debugStats
	var t0 time.Time
	if n.debug {
		t0 = time.Now()
	}

	n.backend.Clear()

	if n.testRunner != nil {
		n.testRunner.step(n)
	}
	n.states.Update()

	if n.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	quit, count := n.drainEvents()
	if quit {
		n.running = false
	}

	if n.debug {
		stats.eventTime = time.Since(t0)
		stats.eventCount = count
		t0 = time.Now()
	}

	n.applyBackground()
	n.backend.Present()

	if n.debug {
		stats.presentTime = time.Since(t0)
		n.debugLog(stats)
	}
	return n.running
}

// drainEvents empties the injected queue and then the backend queue,
// forwarding everything to the event store.
func (n *Nest) drainEvents() (quit bool, count int) {
	handle := func(e Event) {
		count++
		if e.Type == EventQuit {
			quit = true
		}
		if n.store != nil {
			n.store.EmitEvent(e)
		}
	}
	// EmitEvent may inject more events; index instead of range.
	for i := 0; i < len(n.injectQueue); i++ {
		handle(n.injectQueue[i])
	}
	n.injectQueue = n.injectQueue[:0]
	for {
		e, ok := n.backend.PollEvent()
		if !ok {
			break
		}
		handle(e)
	}
	return quit, count
}

func (n *Nest) applyBackground() {
	c := n.background
	n.backend.SetDrawColor(c.R, c.G, c.B, 255)
}

// Close runs the current state's Exit once and releases the backend. It is
// safe to call more than once; later calls return nil.
func (n *Nest) Close() error {
	if n.closed {
		return nil
	}
	n.states.Exit()
	n.closed = true
	n.running = false
	if err := n.backend.Close(); err != nil {
		return fmt.Errorf("nest: close backend: %w", err)
	}
	Logger().Info("nest: closed")
	return nil
}
