package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/locomotion"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// FloatingControllerSystem turns input and the ray probe into forces on
// each controlled body. Steering follows the camera's current orbit.
type FloatingControllerSystem struct{}

func NewFloatingControllerSystem() *FloatingControllerSystem {
	return &FloatingControllerSystem{}
}

func (s *FloatingControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	orbitDir, haveCamera := cameraOrbitDirection(w)

	ecs.ForEach4(w,
		component.TransformComponent.Kind(),
		component.RigidBodyComponent.Kind(),
		component.RayProbeComponent.Kind(),
		component.ControllerSettingsComponent.Kind(),
		func(e ecs.Entity, tr *component.Transform, rb *component.RigidBody, probe *component.RayProbe, settings *component.ControllerSettings) {
			state, ok := ecs.Get(w, e, component.FloatingStateComponent.Kind())
			if !ok {
				state = &component.FloatingState{
					Forward: locomotion.LocalForward,
					Right:   locomotion.LocalForward.Cross(worldUp),
				}
				_ = ecs.Add(w, e, component.FloatingStateComponent.Kind(), state)
			}
			var intent locomotion.Intent
			if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
				intent = in.Intent()
			}

			forward, right := state.Forward, state.Right
			if haveCamera {
				forward, right = locomotion.Steering(orbitDir, worldUp, state.Forward)
			}

			act := locomotion.Compute(*settings, intent, locomotion.Probe{
				Hit:       probe.Result.Hit,
				Distance:  probe.Result.Distance,
				Direction: probe.Result.Direction,
				Normal:    probe.Result.Normal,
			}, locomotion.BodyState{
				Rotation:        tr.Rotation,
				LinearVelocity:  rb.LinearVelocity,
				AngularVelocity: rb.AngularVelocity,
			}, forward, right, worldUp)

			rb.Force = rb.Force.Add(act.Force)
			rb.Torque = rb.Torque.Add(act.Torque)
			if act.Jumped {
				rb.ApplyImpulse(act.Impulse)
			}

			state.Forward, state.Right = forward, right
			state.Last = act
		})
}

// cameraOrbitDirection returns the camera follower's effective orbit
// direction, including any in-flight transition.
func cameraOrbitDirection(w *ecs.World) (mgl32.Vec3, bool) {
	now := worldClock(w).Elapsed
	for _, e := range ecs.Query(w,
		component.CameraTagComponent.Kind(),
		component.FollowerConfigComponent.Kind(),
		component.FollowerPositionComponent.Kind(),
	) {
		cfg, _ := ecs.Get(w, e, component.FollowerConfigComponent.Kind())
		pos, _ := ecs.Get(w, e, component.FollowerPositionComponent.Kind())
		return pos.Effective(*cfg, now).Direction, true
	}
	return mgl32.Vec3{}, false
}
