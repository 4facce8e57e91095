package nest

// InjectEvent queues a synthetic event. Queued events are drained in the next
// tick's event phase, ahead of the backend's own events, and are handled
// exactly like real ones.
func (n *Nest) InjectEvent(e Event) {
	n.injectQueue = append(n.injectQueue, e)
}

// InjectQuit queues a quit event, stopping the run loop at the end of the
// tick that drains it.
func (n *Nest) InjectQuit() {
	n.InjectEvent(Event{Type: EventQuit})
}

// InjectKey queues a key press followed by a key release for the named key.
// Both are drained in the same tick.
func (n *Nest) InjectKey(key string) {
	n.InjectEvent(Event{Type: EventKeyDown, Key: key})
	n.InjectEvent(Event{Type: EventKeyUp, Key: key})
}

// PendingEvents returns the number of injected events not yet drained.
func (n *Nest) PendingEvents() int {
	return len(n.injectQueue)
}
