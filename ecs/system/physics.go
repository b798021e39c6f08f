package system

import (
	"github.com/milk9111/floater/ecs"
)

// PhysicsSystem steps the attached physics world by the clock delta.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem { return &PhysicsSystem{} }

func (s *PhysicsSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	pw.Step(w, worldClock(w).Delta)
}
