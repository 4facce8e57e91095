package nest

import (
	"errors"
	"reflect"
	"testing"
)

// --- Init ---

func TestInitOpensBackend(t *testing.T) {
	b := newRecordingBackend()
	cfg := DefaultConfig()
	cfg.Title = "demo"
	cfg.Width, cfg.Height = 320, 240

	n, err := Init(b, cfg)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !b.opened || b.title != "demo" || b.w != 320 || b.h != 240 {
		t.Errorf("backend opened=%v title=%q size=%dx%d", b.opened, b.title, b.w, b.h)
	}
	if n.Backend() != b {
		t.Error("Backend() does not return the backend passed to Init")
	}
	if n.BackgroundColor() != ColorBlack {
		t.Errorf("default background = %v, want black", n.BackgroundColor())
	}
	if n.States().Active() {
		t.Error("no state should be registered after Init")
	}
}

func TestInitErrors(t *testing.T) {
	tests := []struct {
		name    string
		backend Backend
		cfg     func(Config) Config
		want    error
	}{
		{"nil backend", nil, nil, ErrNoBackend},
		{"zero width", newRecordingBackend(), func(c Config) Config { c.Width = 0; return c }, ErrInvalidSize},
		{"negative height", newRecordingBackend(), func(c Config) Config { c.Height = -1; return c }, ErrInvalidSize},
		{"open failure", &recordingBackend{openErr: errTestBackend}, nil, errTestBackend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.cfg != nil {
				cfg = tt.cfg(cfg)
			}
			n, err := Init(tt.backend, cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if n != nil {
				t.Error("Init returned an engine on failure")
			}
		})
	}
}

func TestInitBackgroundFromConfig(t *testing.T) {
	b := newRecordingBackend()
	cfg := DefaultConfig()
	cfg.Background = "#52ba71"
	n, err := Init(b, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n.BackgroundColor() != (Color{0x52, 0xba, 0x71}) {
		t.Errorf("background = %v", n.BackgroundColor())
	}
	if last := b.colors[len(b.colors)-1]; last != [4]uint8{0x52, 0xba, 0x71, 255} {
		t.Errorf("draw color after Init = %v", last)
	}
}

// --- Step ---

func TestStepOrder(t *testing.T) {
	n, b := newTestNest()
	n.SetCurrentState(State{
		Update: func() { b.ops = append(b.ops, "update") },
	})
	b.resetOps()

	if !n.Step() {
		t.Fatal("Step returned false without a quit event")
	}
	want := []string{"clear", "update", "color 0,0,0,255", "present"}
	if !reflect.DeepEqual(b.ops, want) {
		t.Errorf("ops = %v, want %v", b.ops, want)
	}
}

func TestStepAppliesBackgroundForNextClear(t *testing.T) {
	n, b := newTestNest()
	n.SetCurrentState(State{
		Update: func() { n.SetBackgroundColor(RGB(10, 20, 30)) },
	})
	n.Step()
	want := []string{"clear", "color 10,20,30,255", "present"}
	if !reflect.DeepEqual(b.ops, want) {
		t.Errorf("ops = %v, want %v", b.ops, want)
	}
}

func TestStepDrawsBetweenClearAndPresent(t *testing.T) {
	n, b := newTestNest()
	n.SetCurrentState(State{
		Update: func() { n.Draw(NewRectangle(Vec2{}, 1, 1, RGB(1, 1, 1))) },
	})
	n.Step()
	want := []string{"clear", "color 1,1,1,255", "rect", "color 0,0,0,255", "present"}
	if !reflect.DeepEqual(b.ops, want) {
		t.Errorf("ops = %v, want %v", b.ops, want)
	}
}

func TestQuitEventStopsAfterUpdate(t *testing.T) {
	n, b := newTestNest()
	updates := 0
	n.SetCurrentState(State{Update: func() { updates++ }})
	b.events = []Event{{Type: EventKeyDown, Key: "A"}, {Type: EventQuit}}

	if n.Step() {
		t.Error("Step should return false after draining a quit event")
	}
	if updates != 1 {
		t.Errorf("updates = %d, want 1; update runs in the quitting tick", updates)
	}
	if b.ops[len(b.ops)-1] != "present" {
		t.Errorf("quitting tick should still present: %v", b.ops)
	}
}

func TestStepAfterClose(t *testing.T) {
	n, b := newTestNest()
	n.Close()
	b.resetOps()
	if n.Step() {
		t.Error("Step after Close should return false")
	}
	if len(b.ops) != 0 {
		t.Errorf("Step after Close touched the backend: %v", b.ops)
	}
}

// --- Run / Close ---

func TestRunUntilQuit(t *testing.T) {
	n, b := newTestNest()
	var log []string
	ticks := 0
	n.SetCurrentState(State{
		Update: func() {
			ticks++
			if ticks == 3 {
				n.Quit()
			}
		},
		Exit: func() { log = append(log, "exit") },
	})
	b.resetOps()

	if err := n.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}
	if b.closed != 1 {
		t.Errorf("backend closed %d times, want 1", b.closed)
	}
	if len(log) != 1 {
		t.Errorf("exit ran %d times, want 1", len(log))
	}
	if b.ops[len(b.ops)-1] != "close" {
		t.Errorf("backend should close last: %v", b.ops)
	}
	if n.Running() {
		t.Error("Running after Run returned")
	}
}

func TestRunExitBeforeBackendClose(t *testing.T) {
	n, b := newTestNest()
	n.SetCurrentState(State{
		Exit: func() { b.ops = append(b.ops, "exit") },
	})
	n.InjectQuit()
	b.resetOps()

	if err := n.Run(); err != nil {
		t.Fatal(err)
	}
	tail := b.ops[len(b.ops)-2:]
	if !reflect.DeepEqual(tail, []string{"exit", "close"}) {
		t.Errorf("ops tail = %v, want [exit close]", tail)
	}
}

func TestRunWithDriver(t *testing.T) {
	rb := newRecordingBackend()
	db := &drivingBackend{recordingBackend: rb}
	n, err := Init(db, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	ticks := 0
	n.SetCurrentState(State{Update: func() {
		ticks++
		if ticks == 2 {
			n.Quit()
		}
	}})

	if err := n.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if db.driven != 2 {
		t.Errorf("driver stepped %d times, want 2", db.driven)
	}
	if rb.closed != 1 {
		t.Errorf("closed = %d, want 1", rb.closed)
	}
}

func TestRunDriverError(t *testing.T) {
	db := &drivingBackend{recordingBackend: newRecordingBackend(), err: errTestBackend}
	n, err := Init(db, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	n.InjectQuit()
	if err := n.Run(); !errors.Is(err, errTestBackend) {
		t.Errorf("Run err = %v, want %v", err, errTestBackend)
	}
}

func TestRunAfterClose(t *testing.T) {
	n, _ := newTestNest()
	if err := n.Close(); err != nil {
		t.Fatal(err)
	}
	if err := n.Run(); !errors.Is(err, ErrClosed) {
		t.Errorf("Run after Close = %v, want ErrClosed", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	n, b := newTestNest()
	exits := 0
	n.SetCurrentState(State{Exit: func() { exits++ }})

	for range 3 {
		if err := n.Close(); err != nil {
			t.Fatal(err)
		}
	}
	if exits != 1 {
		t.Errorf("exit ran %d times, want 1", exits)
	}
	if b.closed != 1 {
		t.Errorf("backend closed %d times, want 1", b.closed)
	}
}

// --- Event store ---

type recordingStore struct {
	events []Event
}

func (s *recordingStore) EmitEvent(e Event) { s.events = append(s.events, e) }

func TestEventStoreForwarding(t *testing.T) {
	n, b := newTestNest()
	store := &recordingStore{}
	n.SetEventStore(store)

	n.InjectEvent(Event{Type: EventMouseDown, X: 3, Y: 4, Button: 1})
	b.events = []Event{{Type: EventWindow}}
	n.Step()

	want := []Event{
		{Type: EventMouseDown, X: 3, Y: 4, Button: 1},
		{Type: EventWindow},
	}
	if !reflect.DeepEqual(store.events, want) {
		t.Errorf("store events = %+v, want %+v", store.events, want)
	}
}

func TestEventStoreInjectsDuringDrain(t *testing.T) {
	n, _ := newTestNest()
	store := &injectingStore{n: n}
	n.SetEventStore(store)

	n.InjectKey("Q")
	if n.Step() {
		t.Error("quit injected by the store should be drained in the same tick")
	}
	if n.PendingEvents() != 0 {
		t.Errorf("pending = %d, want 0", n.PendingEvents())
	}
}

// injectingStore queues a quit when it sees a key release.
type injectingStore struct {
	n *Nest
}

func (s *injectingStore) EmitEvent(e Event) {
	if e.Type == EventKeyUp {
		s.n.InjectQuit()
	}
}
