package nest

// State is a lifecycle callback triple. Any callback may be nil. Callbacks
// take no arguments; closures carry whatever context they need.
type State struct {
	Init   func()
	Update func()
	Exit   func()
}

// StateMachine holds the single current State. The zero value has no state
// registered.
//
// All methods must be called from the goroutine running the engine. Callbacks
// may call SetCurrentState re-entrantly; every transition is fully applied
// (old exit, install, new init) before the call returns.
type StateMachine struct {
	current State
	active  bool
}

// SetCurrentState replaces the current state. The previous state's Exit runs
// first, then s is installed and its Init runs.
func (m *StateMachine) SetCurrentState(s State) {
	m.exitCurrent()
	m.current = s
	m.active = true
	if s.Init != nil {
		s.Init()
	}
}

// Current returns the installed state and whether one is registered.
func (m *StateMachine) Current() (State, bool) {
	return m.current, m.active
}

// Active reports whether a state is registered.
func (m *StateMachine) Active() bool {
	return m.active
}

// Update calls the current state's Update, if any.
func (m *StateMachine) Update() {
	if m.active && m.current.Update != nil {
		m.current.Update()
	}
}

// Exit runs the current state's Exit and leaves the machine with no state.
// Calling Exit with no state registered is a no-op.
func (m *StateMachine) Exit() {
	m.exitCurrent()
}

// exitCurrent empties the slot before each Exit callback so that a callback
// installing a new state cannot trigger the same Exit twice. A state installed
// from inside an Exit is itself exited before returning.
func (m *StateMachine) exitCurrent() {
	for m.active {
		old := m.current
		m.current = State{}
		m.active = false
		if old.Exit != nil {
			old.Exit()
		}
	}
}
