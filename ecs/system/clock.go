package system

import (
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
)

// ClockSystem advances the tick clock by a fixed step. It runs first.
type ClockSystem struct {
	step float64
}

func NewClockSystem(tps int) *ClockSystem {
	if tps <= 0 {
		tps = 60
	}
	return &ClockSystem{step: 1 / float64(tps)}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if c, ok := firstOf(w, component.ClockComponent.Kind()); ok {
		c.Advance(s.step)
	}
}
