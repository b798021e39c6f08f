package common

import "github.com/go-gl/mathgl/mgl32"

// Base render resolution. The window scales to it.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// NearVec3 reports whether a and b lie within tol of each other. The
// tolerance is absolute, so components near zero compare the same as any
// other.
func NearVec3(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() <= tol
}

// NearQuat reports whether a and b encode the same rotation within tol.
// q and -q are the same rotation.
func NearQuat(a, b mgl32.Quat, tol float32) bool {
	a, b = a.Normalize(), b.Normalize()
	d := a.Dot(b)
	if d < 0 {
		d = -d
	}
	return 1-d <= tol
}
