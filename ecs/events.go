package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventOverrideCompleted = "override_completed"

// OverrideCompleted is published when a preset registered through an
// override request reaches the end of its window.
type OverrideCompleted struct {
	Entity Entity
	Preset string
}

// EventQueue is a FIFO of events raised during one tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns the queued events without clearing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
