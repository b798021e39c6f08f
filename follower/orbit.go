package follower

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/common"
)

const epsilon = 1e-6

// Orbit places a viewer relative to a tracked target. Direction points from
// the target toward the viewer and is kept unit length.
type Orbit struct {
	Distance  float32
	Direction mgl32.Vec3
}

// NewOrbit builds an orbit with a normalized direction.
func NewOrbit(distance float32, direction mgl32.Vec3) Orbit {
	return Orbit{Distance: distance, Direction: normalizeOr(direction, mgl32.Vec3{0, 0, 1})}
}

// Offset is the viewer position relative to the target.
func (o Orbit) Offset() mgl32.Vec3 {
	return o.Direction.Mul(o.Distance)
}

// Position returns the viewer position for a target at target.
func (o Orbit) Position(target mgl32.Vec3) mgl32.Vec3 {
	return target.Add(o.Offset())
}

// Rotate turns the direction horizontally about up and vertically about right.
// The horizontal quaternion is applied first; right is expected to come from
// the pre-rotation frame. A zero right skips the vertical term.
func (o Orbit) Rotate(hAngle float32, up mgl32.Vec3, vAngle float32, right mgl32.Vec3) Orbit {
	q := mgl32.QuatIdent()
	if hAngle != 0 && up.Len() > epsilon {
		q = mgl32.QuatRotate(-hAngle, up.Normalize())
	}
	if vAngle != 0 && right.Len() > epsilon {
		q = mgl32.QuatRotate(vAngle, right.Normalize()).Mul(q)
	}
	o.Direction = normalizeOr(q.Rotate(o.Direction), o.Direction)
	return o
}

// Interpolate moves from o toward to by t in [0,1]: distance linearly,
// direction along the great circle. t is clamped.
func (o Orbit) Interpolate(to Orbit, t float32) Orbit {
	t = mgl32.Clamp(t, 0, 1)
	if t == 0 {
		return o
	}
	if t == 1 {
		return to
	}
	return Orbit{
		Distance:  common.Lerp(o.Distance, to.Distance, t),
		Direction: slerp(o.Direction, to.Direction, t),
	}
}

// ApproxEqual compares two orbits within an absolute threshold.
func (o Orbit) ApproxEqual(other Orbit, threshold float32) bool {
	return mgl32.Abs(o.Distance-other.Distance) <= threshold &&
		common.NearVec3(o.Direction, other.Direction, threshold)
}

func slerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	dot := mgl32.Clamp(a.Dot(b), -1, 1)
	if dot > 1-epsilon {
		return normalizeOr(a.Add(b.Sub(a).Mul(t)), a)
	}
	if dot < -1+epsilon {
		// opposite directions: any perpendicular axis is a shortest arc
		axis := perpendicular(a)
		return normalizeOr(mgl32.QuatRotate(math.Pi*t, axis).Rotate(a), a)
	}
	omega := float32(math.Acos(float64(dot)))
	sinOmega := float32(math.Sin(float64(omega)))
	wa := float32(math.Sin(float64((1-t)*omega))) / sinOmega
	wb := float32(math.Sin(float64(t*omega))) / sinOmega
	return normalizeOr(a.Mul(wa).Add(b.Mul(wb)), a)
}

func perpendicular(v mgl32.Vec3) mgl32.Vec3 {
	axis := v.Cross(mgl32.Vec3{1, 0, 0})
	if axis.Len() < epsilon {
		axis = v.Cross(mgl32.Vec3{0, 1, 0})
	}
	return axis.Normalize()
}

func normalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < epsilon || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return fallback
	}
	return v.Mul(1 / l)
}
