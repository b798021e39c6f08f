package ecs

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/common"
	"github.com/milk9111/floater/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var down = mgl32.Vec3{0, -1, 0}

func platform(pw *PhysicsWorld) int {
	return pw.AddColumn(component.Column{
		Name:        "ground",
		Center:      mgl32.Vec3{0, -1, 0},
		HalfExtents: mgl32.Vec3{5, 1, 5},
	})
}

func TestCastRay(t *testing.T) {
	pw := NewPhysicsWorld(DefaultGravity)
	platform(pw)
	pw.AddColumn(component.Column{Center: mgl32.Vec3{20, 2, 0}, HalfExtents: mgl32.Vec3{1, 2, 1}})
	pw.AddColumn(component.Column{Center: mgl32.Vec3{0, 3, 0}, HalfExtents: mgl32.Vec3{1, 1, 1}, Sensor: true})

	cases := []struct {
		name    string
		origin  mgl32.Vec3
		dir     mgl32.Vec3
		max     float32
		hit     bool
		dist    float32
		wantDir mgl32.Vec3
	}{
		{"hit_ground", mgl32.Vec3{0, 1.5, 0}, down, 10, true, 1.5, down},
		{"out_of_range", mgl32.Vec3{0, 5, 0}, down, 2, false, 0, down},
		{"off_footprint", mgl32.Vec3{10, 5, 0}, down, 100, false, 0, down},
		{"tall_column", mgl32.Vec3{20, 10, 0}, down, 100, true, 6, down},
		{"sensor_ignored", mgl32.Vec3{0, 10, 0}, down, 100, true, 10, down},
		{"upward_misses", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 2, 0}, 100, false, 0, mgl32.Vec3{0, 1, 0}},
		{"slanted", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, -1, 0}, 100, true, float32(math.Sqrt2), mgl32.Vec3{1, -1, 0}.Normalize()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := pw.CastRay(c.origin, c.dir, c.max)
			assert.Equal(t, c.hit, got.Hit)
			assert.True(t, common.NearVec3(got.Direction, c.wantDir, 1e-5), "direction %v", got.Direction)
			if c.hit {
				assert.InDelta(t, c.dist, got.Distance, 1e-4)
				assert.Equal(t, mgl32.Vec3{0, 1, 0}, got.Normal)
			}
		})
	}
}

func TestCastRayYawedColumn(t *testing.T) {
	pw := NewPhysicsWorld(DefaultGravity)
	pw.AddColumn(component.Column{HalfExtents: mgl32.Vec3{4, 1, 0.5}, Yaw: math.Pi / 2})

	// long side now runs along Z
	assert.True(t, pw.CastRay(mgl32.Vec3{0, 5, 3}, down, 10).Hit)
	assert.False(t, pw.CastRay(mgl32.Vec3{3, 5, 0}, down, 10).Hit)
}

func body() *component.RigidBody {
	return &component.RigidBody{Mass: 2, Inertia: 1, GravityScale: 1, HalfExtents: mgl32.Vec3{0.5, 1, 0.5}}
}

func spawn(t *testing.T, w *World, pos mgl32.Vec3, rb *component.RigidBody) Entity {
	t.Helper()
	e := CreateEntity(w)
	require.NoError(t, Add(w, e, component.TransformComponent.Kind(), &component.Transform{Translation: pos, Rotation: mgl32.QuatIdent()}))
	require.NoError(t, Add(w, e, component.RigidBodyComponent.Kind(), rb))
	return e
}

func TestStepIntegratesAndClearsAccumulators(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld(mgl32.Vec3{})
	rb := body()
	rb.Force = mgl32.Vec3{4, 0, 0}
	rb.Torque = mgl32.Vec3{0, 2, 0}
	e := spawn(t, w, mgl32.Vec3{0, 50, 0}, rb)

	pw.Step(w, 0.5)

	tr, _ := Get(w, e, component.TransformComponent.Kind())
	// a = 2, v = 1, x = 0.5
	assert.InDelta(t, 1.0, rb.LinearVelocity.X(), 1e-5)
	assert.InDelta(t, 0.5, tr.Translation.X(), 1e-5)
	assert.InDelta(t, 1.0, rb.AngularVelocity.Y(), 1e-5)
	assert.Equal(t, mgl32.Vec3{}, rb.Force)
	assert.Equal(t, mgl32.Vec3{}, rb.Torque)
	assert.InDelta(t, 1.0, tr.Rotation.Len(), 1e-5)

	pw.Step(w, 0.5)
	assert.InDelta(t, 1.0, rb.LinearVelocity.X(), 1e-5, "no force after clearing")
}

func TestStepDamping(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld(mgl32.Vec3{})
	rb := body()
	rb.LinearVelocity = mgl32.Vec3{10, 0, 0}
	rb.LinearDamping = 30
	spawn(t, w, mgl32.Vec3{0, 50, 0}, rb)

	pw.Step(w, 0.1)
	assert.InDelta(t, 2.5, rb.LinearVelocity.X(), 1e-4)
}

func TestStepSkipsStaticBodies(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld(DefaultGravity)
	rb := body()
	rb.Mass = 0
	e := spawn(t, w, mgl32.Vec3{0, 5, 0}, rb)

	pw.Step(w, 1)
	tr, _ := Get(w, e, component.TransformComponent.Kind())
	assert.Equal(t, mgl32.Vec3{0, 5, 0}, tr.Translation)
}

func TestStepLandsOnColumnAndEmitsContacts(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld(DefaultGravity)
	ground := platform(pw)
	rb := body()
	e := spawn(t, w, mgl32.Vec3{0, 1.05, 0}, rb)

	for i := 0; i < 30; i++ {
		pw.Step(w, 1.0/60)
	}
	tr, _ := Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 1.0, tr.Translation.Y(), 1e-4)
	assert.True(t, rb.Grounded)
	assert.Equal(t, ground, rb.Column)

	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ContactEvent{Entity: e, Kind: ContactLanded, Column: ground}, events[0].Data)

	// walk off the edge
	tr.Translation = mgl32.Vec3{20, 1, 0}
	pw.Step(w, 1.0/60)
	events = w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ContactLeft, events[0].Data.(ContactEvent).Kind)
	assert.False(t, rb.Grounded)
	assert.Equal(t, -1, rb.Column)
}

func TestColumnFromBounds(t *testing.T) {
	half := mgl32.Vec3{2, 1, 3}
	cases := []struct {
		name    string
		tr      component.Transform
		half    mgl32.Vec3
		policy  ShapePolicy
		wantErr error
		yaw     float32
	}{
		{"solid", component.Transform{Translation: mgl32.Vec3{1, 2, 3}, Rotation: mgl32.QuatIdent()}, half, ShapeSolid, nil, 0},
		{"sensor_zero_rotation", component.Transform{}, half, ShapeSensor, nil, 0},
		{"yawed", component.Transform{Rotation: mgl32.QuatRotate(0.5, mgl32.Vec3{0, 1, 0})}, half, ShapeSolid, nil, 0.5},
		{"tilted", component.Transform{Rotation: mgl32.QuatRotate(0.5, mgl32.Vec3{1, 0, 0})}, half, ShapeSolid, ErrTiltedColumn, 0},
		{"flat", component.Transform{}, mgl32.Vec3{1, 0, 1}, ShapeSolid, ErrEmptyBounds, 0},
		{"bad_policy", component.Transform{}, half, "ghost", ErrUnknownPolicy, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			col, err := ColumnFromBounds(c.tr, c.half, c.policy)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.tr.Translation, col.Center)
			assert.Equal(t, c.half, col.HalfExtents)
			assert.InDelta(t, c.yaw, col.Yaw, 1e-5)
			assert.Equal(t, c.policy == ShapeSensor, col.Sensor)
		})
	}
}

func TestParseShapePolicy(t *testing.T) {
	p, err := ParseShapePolicy("")
	require.NoError(t, err)
	assert.Equal(t, ShapeSolid, p)

	_, err = ParseShapePolicy("ghost")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestColumnFromBoundsAcceptsEveryYaw(t *testing.T) {
	half := mgl32.Vec3{1, 1, 1}
	for deg := 0; deg < 360; deg++ {
		rot := mgl32.QuatRotate(mgl32.DegToRad(float32(deg)), mgl32.Vec3{0, 1, 0})
		_, err := ColumnFromBounds(component.Transform{Rotation: rot}, half, ShapeSolid)
		require.NoError(t, err, "yaw %d", deg)
	}

	slight := mgl32.QuatRotate(0.05, mgl32.Vec3{0, 0, 1})
	_, err := ColumnFromBounds(component.Transform{Rotation: slight}, half, ShapeSolid)
	assert.ErrorIs(t, err, ErrTiltedColumn)
}
