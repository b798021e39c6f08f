package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

// LocalForward is the body-space forward axis.
var LocalForward = mgl32.Vec3{0, 0, -1}

// Intent is the movement input sampled for one tick.
type Intent struct {
	Forward     bool
	Back        bool
	Left        bool
	Right       bool
	JumpPressed bool
}

// Probe is the result of the downward ray cast. Direction is valid even
// when Hit is false.
type Probe struct {
	Hit       bool
	Distance  float32
	Direction mgl32.Vec3
	Normal    mgl32.Vec3
}

// BodyState is the part of the rigid body the controller reads.
type BodyState struct {
	Rotation        mgl32.Quat
	LinearVelocity  mgl32.Vec3
	AngularVelocity mgl32.Vec3
}

// Actuation is the controller's output for one tick. Impulse is a velocity
// change applied outside the force accumulator.
type Actuation struct {
	Force    mgl32.Vec3
	Torque   mgl32.Vec3
	Impulse  mgl32.Vec3
	Floating bool
	Jumped   bool
}

// Steering flattens the camera's target-to-viewer direction into a
// horizontal forward axis and derives right from it. A camera looking
// straight down leaves the previous forward in place.
func Steering(orbitDirection, up, previous mgl32.Vec3) (forward, right mgl32.Vec3) {
	forward = orbitDirection.Mul(-1)
	forward = forward.Sub(up.Mul(forward.Dot(up)))
	if forward.Len() < epsilon {
		forward = previous
	} else {
		forward = forward.Normalize()
	}
	return forward, forward.Cross(up)
}

// Movement picks the movement force. Keys are applied in W, S, A, D order
// and each one replaces the previous choice.
func Movement(s Settings, in Intent, forward, right mgl32.Vec3) mgl32.Vec3 {
	var force mgl32.Vec3
	if in.Forward {
		force = forward.Mul(s.ForceStrength)
	}
	if in.Back {
		force = forward.Mul(-s.ForceStrength)
	}
	if in.Left {
		force = right.Mul(-s.ForceStrength)
	}
	if in.Right {
		force = right.Mul(s.ForceStrength)
	}
	return force
}

// Float returns the ride-height spring force and whether it applies.
func Float(s Settings, probe Probe, velocity, up mgl32.Vec3) (mgl32.Vec3, bool) {
	if !probe.Hit {
		return mgl32.Vec3{}, false
	}
	diff := s.RideHeight - probe.Distance
	relVel := probe.Direction.Dot(velocity)
	return up.Mul(diff*s.SpringStrength + relVel*s.SpringDamper), true
}

// Upright returns the torque turning the body's up (opposite the ray) back
// toward world up, damped by angular velocity.
func Upright(s Settings, rayDirection, angularVelocity, up mgl32.Vec3) mgl32.Vec3 {
	axis, angle := RotationBetween(rayDirection.Mul(-1), up)
	return axis.Mul(angle * s.UprightSpringStrength).Sub(angularVelocity.Mul(s.UprightSpringDamper))
}

// Heading returns the torque turning the body's forward toward forward.
func Heading(s Settings, rotation mgl32.Quat, forward mgl32.Vec3) mgl32.Vec3 {
	axis, angle := RotationBetween(rotation.Rotate(LocalForward), forward)
	return axis.Mul(angle * s.RotateStrength)
}

// Compute runs the full control law for one tick.
func Compute(s Settings, in Intent, probe Probe, body BodyState, forward, right, up mgl32.Vec3) Actuation {
	var out Actuation
	out.Force = Movement(s, in, forward, right)
	if f, ok := Float(s, probe, body.LinearVelocity, up); ok {
		out.Force = out.Force.Add(f)
		out.Floating = true
	}
	out.Torque = Upright(s, probe.Direction, body.AngularVelocity, up).
		Add(Heading(s, body.Rotation, forward))
	if in.JumpPressed {
		out.Impulse = up.Mul(s.JumpStrength)
		out.Jumped = true
	}
	return out
}

// RotationBetween returns the unit axis and angle of the shortest rotation
// taking from onto to. Parallel inputs give a zero axis and angle.
func RotationBetween(from, to mgl32.Vec3) (mgl32.Vec3, float32) {
	if from.Len() < epsilon || to.Len() < epsilon {
		return mgl32.Vec3{}, 0
	}
	from = from.Normalize()
	to = to.Normalize()
	cross := from.Cross(to)
	sin := cross.Len()
	cos := from.Dot(to)
	if sin < epsilon {
		if cos > 0 {
			return mgl32.Vec3{}, 0
		}
		axis := from.Cross(mgl32.Vec3{1, 0, 0})
		if axis.Len() < epsilon {
			axis = from.Cross(mgl32.Vec3{0, 1, 0})
		}
		return axis.Normalize(), math.Pi
	}
	return cross.Mul(1 / sin), float32(math.Atan2(float64(sin), float64(cos)))
}
