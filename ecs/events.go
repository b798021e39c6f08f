package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventContact = "contact"
	EventJump    = "jump"
	EventRespawn = "respawn"
)

// ContactKind identifies contact event types.
type ContactKind string

const (
	ContactLanded ContactKind = "landed"
	ContactLeft   ContactKind = "left"
)

// ContactEvent is emitted when a body starts or stops resting on a column.
type ContactEvent struct {
	Entity Entity
	Kind   ContactKind
	Column int
}

// Name is the short name scripts match on: the contact kind for contact
// events, the type otherwise.
func (e Event) Name() string {
	if c, ok := e.Data.(ContactEvent); ok && e.Type == EventContact {
		return string(c.Kind)
	}
	return e.Type
}

// EventQueue is a simple FIFO queue.
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
