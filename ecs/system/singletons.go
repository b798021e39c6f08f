package system

import (
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
)

func firstOf[T any](w *ecs.World, kind component.ComponentKind[T]) (*T, bool) {
	e, ok := ecs.First(w, kind)
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, kind)
}

// worldClock returns the tick clock, or a zero clock when none exists.
func worldClock(w *ecs.World) component.Clock {
	if c, ok := firstOf(w, component.ClockComponent.Kind()); ok {
		return *c
	}
	return component.Clock{}
}
