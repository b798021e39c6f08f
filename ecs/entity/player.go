package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/prefabs"
)

// NewPlayer builds the floating body from player.yaml. The player is the
// follower target.
func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec)
}

func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	rot := spec.Transform.Rotation()
	gravityScale := float32(1)
	if spec.Body.GravityScale != nil {
		gravityScale = *spec.Body.GravityScale
	}
	rayDir := spec.Ray.Direction
	if rayDir.Len() == 0 {
		rayDir = mgl32.Vec3{0, -1, 0}
	}
	settings := spec.Controller

	return build(w, "player",
		with(component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		with(component.FollowerTargetComponent.Kind(), &component.FollowerTarget{}),
		with(component.TransformComponent.Kind(), &component.Transform{Translation: spec.Transform.Position, Rotation: rot}),
		with(component.SpawnComponent.Kind(), &component.Spawn{Position: spec.Transform.Position, Rotation: rot}),
		with(component.RigidBodyComponent.Kind(), &component.RigidBody{
			Mass:           spec.Body.Mass(),
			Inertia:        spec.Body.Inertia(),
			LinearDamping:  spec.Body.LinearDamping,
			AngularDamping: spec.Body.AngularDamping,
			GravityScale:   gravityScale,
			HalfExtents:    spec.Body.HalfExtents,
			Column:         -1,
		}),
		with(component.RayProbeComponent.Kind(), &component.RayProbe{
			LocalDirection: rayDir.Normalize(),
			MaxDistance:    spec.Ray.MaxDistance,
		}),
		with(component.ControllerSettingsComponent.Kind(), &settings),
		with(component.InputComponent.Kind(), &component.Input{}),
	)
}
