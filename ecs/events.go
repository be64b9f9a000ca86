package ecs

// EventKind identifies gameplay events raised by systems.
type EventKind string

const (
	EventRestart EventKind = "restart"
	EventJump    EventKind = "jump"
	EventSpawn   EventKind = "spawn"
	EventDespawn EventKind = "despawn"
)

// Event is a gameplay event payload. Source is the entity that caused it, if
// any; Detail is a short human readable reason.
type Event struct {
	Kind   EventKind
	Source Entity
	Detail string
}

// EventQueue is a simple FIFO queue drained by the game loop once per frame.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
