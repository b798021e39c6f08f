package system

import (
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
)

// RayProbeSystem refreshes every ray probe against the level columns.
type RayProbeSystem struct{}

func NewRayProbeSystem() *RayProbeSystem { return &RayProbeSystem{} }

func (s *RayProbeSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.RayProbeComponent.Kind(), func(_ ecs.Entity, tr *component.Transform, probe *component.RayProbe) {
		dir := tr.Rotation.Rotate(probe.LocalDirection)
		probe.Result = pw.CastRay(tr.Translation, dir, probe.MaxDistance)
	})
}
