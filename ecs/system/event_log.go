package system

import (
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/logging"
	"github.com/rs/zerolog"
)

// EventLogSystem drains the event queue at the end of a tick, logs it and
// keeps the names for next tick's readers.
type EventLogSystem struct {
	log zerolog.Logger
}

func NewEventLogSystem() *EventLogSystem {
	return &EventLogSystem{log: logging.For("events")}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	events := w.Events().Drain()

	names := make([]string, 0, len(events))
	for _, evt := range events {
		names = append(names, evt.Name())
		switch data := evt.Data.(type) {
		case ecs.ContactEvent:
			s.log.Debug().
				Stringer("entity", data.Entity).
				Str("kind", string(data.Kind)).
				Int("column", data.Column).
				Msg("contact")
		default:
			s.log.Debug().Str("type", evt.Type).Msg("event")
		}
	}

	if h, ok := firstOf(w, component.EventHistoryComponent.Kind()); ok {
		h.Names = names
	}
}
