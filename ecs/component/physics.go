package component

import "github.com/go-gl/mathgl/mgl32"

// RigidBody is the integration state the physics world owns. Force and
// Torque are accumulators for the current step; they are cleared after
// each integration.
type RigidBody struct {
	LinearVelocity  mgl32.Vec3
	AngularVelocity mgl32.Vec3
	Force           mgl32.Vec3
	Torque          mgl32.Vec3

	Mass           float32
	Inertia        float32
	LinearDamping  float32
	AngularDamping float32
	GravityScale   float32
	HalfExtents    mgl32.Vec3

	Grounded bool
	Column   int
}

var RigidBodyComponent = NewComponent[RigidBody]()

// InverseMass returns 0 for static bodies.
func (rb *RigidBody) InverseMass() float32 {
	if rb == nil || rb.Mass <= 0 {
		return 0
	}
	return 1 / rb.Mass
}

// InverseInertia returns 0 when the body cannot rotate.
func (rb *RigidBody) InverseInertia() float32 {
	if rb == nil || rb.Inertia <= 0 {
		return 0
	}
	return 1 / rb.Inertia
}

// ApplyImpulse adds a velocity change directly, bypassing the accumulators.
func (rb *RigidBody) ApplyImpulse(deltaV mgl32.Vec3) {
	if rb == nil {
		return
	}
	rb.LinearVelocity = rb.LinearVelocity.Add(deltaV)
}

// RayProbe casts from the body origin along LocalDirection rotated by the
// body's orientation. Result is refreshed every tick before the controller
// reads it.
type RayProbe struct {
	LocalDirection mgl32.Vec3
	MaxDistance    float32
	Result         RayHit
}

// RayHit mirrors the last cast. Direction is set even on a miss.
type RayHit struct {
	Hit       bool
	Distance  float32
	Direction mgl32.Vec3
	Normal    mgl32.Vec3
	Point     mgl32.Vec3
	Origin    mgl32.Vec3
}

var RayProbeComponent = NewComponent[RayProbe]()
