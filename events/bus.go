package events

// Bus accumulates events emitted within a single step. The world loop
// drains it during each frame and hands the drained slice to the
// ecosystem facade, which fans each event out to the trackers that care
// about it and keeps the most recent events in a bounded ring. A Bus holds no cross-frame state itself; frame-spanning
// bounded logs (the event ring, the lineage log) live in the packages
// that own that policy.
type Bus struct {
	pending []Event
}

// NewBus returns an empty event bus.
func NewBus() *Bus {
	return &Bus{pending: make([]Event, 0, 64)}
}

// Emit records an event for the current step.
func (b *Bus) Emit(e Event) {
	b.pending = append(b.pending, e)
}

// Drain returns all events emitted since the last Drain and resets the
// bus for the next step. The returned slice is owned by the caller.
func (b *Bus) Drain() []Event {
	out := b.pending
	b.pending = make([]Event, 0, cap(out))
	return out
}

// Len reports how many events are pending since the last Drain.
func (b *Bus) Len() int {
	return len(b.pending)
}
