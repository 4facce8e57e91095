package nest

import (
	"reflect"
	"testing"
)

// recorder builds states that append their callback names to a shared log.
type recorder struct {
	log []string
}

func (r *recorder) state(name string) State {
	return State{
		Init:   func() { r.log = append(r.log, name+".init") },
		Update: func() { r.log = append(r.log, name+".update") },
		Exit:   func() { r.log = append(r.log, name+".exit") },
	}
}

func TestStateMachineZeroValue(t *testing.T) {
	var m StateMachine
	if m.Active() {
		t.Error("zero StateMachine should have no state")
	}
	m.Update()
	m.Exit()
	if _, ok := m.Current(); ok {
		t.Error("Current reported a state on an empty machine")
	}
}

func TestSetCurrentStateOrder(t *testing.T) {
	var r recorder
	var m StateMachine

	m.SetCurrentState(r.state("a"))
	m.Update()
	m.SetCurrentState(r.state("b"))
	m.Update()
	m.Exit()

	want := []string{"a.init", "a.update", "a.exit", "b.init", "b.update", "b.exit"}
	if !reflect.DeepEqual(r.log, want) {
		t.Errorf("log = %v, want %v", r.log, want)
	}
}

func TestStateExitIdempotent(t *testing.T) {
	var r recorder
	var m StateMachine
	m.SetCurrentState(r.state("a"))
	m.Exit()
	m.Exit()
	if len(r.log) != 2 {
		t.Errorf("log = %v, want one init and one exit", r.log)
	}
	if m.Active() {
		t.Error("machine still active after Exit")
	}
}

func TestStateNilCallbacks(t *testing.T) {
	var m StateMachine
	m.SetCurrentState(State{})
	m.Update()
	m.SetCurrentState(State{})
	m.Exit()
}

func TestStatePartialCallbacks(t *testing.T) {
	updates := 0
	var m StateMachine
	m.SetCurrentState(State{Update: func() { updates++ }})
	if !m.Active() {
		t.Fatal("state with only Update should be registered")
	}
	m.Update()
	m.Update()
	if updates != 2 {
		t.Errorf("updates = %d, want 2", updates)
	}
}

func TestStateTransitionFromInit(t *testing.T) {
	var r recorder
	var m StateMachine
	b := r.state("b")
	a := State{
		Init: func() {
			r.log = append(r.log, "a.init")
			m.SetCurrentState(b)
		},
		Exit: func() { r.log = append(r.log, "a.exit") },
	}

	m.SetCurrentState(a)
	m.Update()
	m.Exit()

	want := []string{"a.init", "a.exit", "b.init", "b.update", "b.exit"}
	if !reflect.DeepEqual(r.log, want) {
		t.Errorf("log = %v, want %v", r.log, want)
	}
}

func TestStateTransitionFromUpdate(t *testing.T) {
	var r recorder
	var m StateMachine
	b := r.state("b")
	a := State{
		Update: func() {
			r.log = append(r.log, "a.update")
			m.SetCurrentState(b)
		},
		Exit: func() { r.log = append(r.log, "a.exit") },
	}

	m.SetCurrentState(a)
	m.Update()
	m.Update()

	want := []string{"a.update", "a.exit", "b.init", "b.update"}
	if !reflect.DeepEqual(r.log, want) {
		t.Errorf("log = %v, want %v", r.log, want)
	}
}

func TestStateTransitionFromExit(t *testing.T) {
	var r recorder
	var m StateMachine
	c := r.state("c")
	a := State{
		Init: func() { r.log = append(r.log, "a.init") },
		Exit: func() {
			r.log = append(r.log, "a.exit")
			m.SetCurrentState(c)
		},
	}

	m.SetCurrentState(a)
	m.SetCurrentState(r.state("b"))

	// c is installed from a's exit and exited again before b goes in,
	// so every init is paired with exactly one exit.
	want := []string{"a.init", "a.exit", "c.init", "c.exit", "b.init"}
	if !reflect.DeepEqual(r.log, want) {
		t.Errorf("log = %v, want %v", r.log, want)
	}
	cur, ok := m.Current()
	if !ok || cur.Init == nil {
		t.Fatal("b should be current")
	}
}
