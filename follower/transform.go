package follower

import "github.com/go-gl/mathgl/mgl32"

// Kind selects how a follower is oriented.
type Kind int

const (
	// Follow keeps the follower's own rotation and only moves it.
	Follow Kind = iota
	// LookAt turns the follower to face the tracked target.
	LookAt
)

func (k Kind) String() string {
	switch k {
	case Follow:
		return "follow"
	case LookAt:
		return "look_at"
	default:
		return "unknown"
	}
}

// ParseKind maps a prefab string to a Kind. Unknown strings are Follow.
func ParseKind(s string) Kind {
	if s == "look_at" || s == "lookat" || s == "look-at" {
		return LookAt
	}
	return Follow
}

// Transform is a world pose. Forward is local -Z, up is local +Y.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// IdentityTransform returns a transform at the origin with no rotation.
func IdentityTransform() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// Forward returns the world direction of local -Z.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Matrix returns the local-to-world matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).Mul4(t.Rotation.Mat4())
}

// View returns the world-to-local matrix used as a camera view.
func (t Transform) View() mgl32.Mat4 {
	inv := t.Rotation.Conjugate()
	p := inv.Rotate(t.Translation.Mul(-1))
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(inv.Mat4())
}

// LookingAt returns t rotated so local -Z points at target with local +Y as
// close to up as possible. Degenerate inputs leave the rotation untouched.
func (t Transform) LookingAt(target, up mgl32.Vec3) Transform {
	back := t.Translation.Sub(target)
	if back.Len() < epsilon {
		return t
	}
	back = back.Normalize()
	right := up.Cross(back)
	if right.Len() < epsilon {
		return t
	}
	right = right.Normalize()
	realUp := back.Cross(right)
	basis := mgl32.Mat3FromCols(right, realUp, back)
	t.Rotation = mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
	return t
}

// Orient applies the kind's orientation rule to a freshly positioned transform.
func (k Kind) Orient(t Transform, target, up mgl32.Vec3) Transform {
	if k == LookAt {
		return t.LookingAt(target, up)
	}
	return t
}
