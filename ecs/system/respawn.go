package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/logging"
	"github.com/rs/zerolog"
)

// RespawnSystem resets bodies that fall below the level's kill height. It
// runs after physics so the fall is seen in the tick it happens.
type RespawnSystem struct {
	log zerolog.Logger
}

func NewRespawnSystem() *RespawnSystem {
	return &RespawnSystem{log: logging.For("respawn")}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	bounds, ok := firstOf(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.RigidBodyComponent.Kind(),
		component.SpawnComponent.Kind(),
		func(e ecs.Entity, tr *component.Transform, rb *component.RigidBody, spawn *component.Spawn) {
			if tr.Translation.Y() >= bounds.KillY {
				return
			}
			tr.Translation = spawn.Position
			tr.Rotation = spawn.Rotation
			rb.LinearVelocity = mgl32.Vec3{}
			rb.AngularVelocity = mgl32.Vec3{}
			rb.Force = mgl32.Vec3{}
			rb.Torque = mgl32.Vec3{}
			w.PhysicsWorld().Forget(e)

			w.Events().Push(ecs.Event{Type: ecs.EventRespawn, Data: e})
			s.log.Info().Stringer("entity", e).Msg("respawned")
		})
}
