package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
	assert.Equal(t, float32(10), Lerp(10, 20, 0))
}

func TestNearVec3(t *testing.T) {
	cases := []struct {
		name string
		a, b mgl32.Vec3
		tol  float32
		want bool
	}{
		{"rounding_noise_against_zero", mgl32.Vec3{5.960465e-08, 0, 1}, mgl32.Vec3{0, 0, 1}, 1e-4, true},
		{"tiny_z_against_zero", mgl32.Vec3{-0.70710677, -0.7071067, -1.1920929e-07}, mgl32.Vec3{-0.70710677, -0.70710677, 0}, 1e-4, true},
		{"equal", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}, 0, true},
		{"too_far", mgl32.Vec3{0, 0, 1e-3}, mgl32.Vec3{}, 1e-4, false},
		{"large_values", mgl32.Vec3{1000, 0, 0}, mgl32.Vec3{1000.5, 0, 0}, 1e-4, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, NearVec3(c.a, c.b, c.tol))
		})
	}
}

func TestNearQuat(t *testing.T) {
	q := mgl32.QuatRotate(0.4, mgl32.Vec3{0, 0, 1})
	assert.True(t, NearQuat(q, q, 1e-6))
	assert.True(t, NearQuat(q, q.Scale(-1), 1e-6), "q and -q are the same rotation")
	assert.True(t, NearQuat(mgl32.QuatIdent(), mgl32.Quat{W: 1, V: mgl32.Vec3{3e-8, 0, 0}}, 1e-6))
	assert.False(t, NearQuat(q, mgl32.QuatIdent(), 1e-4))
}
