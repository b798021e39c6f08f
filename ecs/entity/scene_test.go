package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/common"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/ecs/system"
	"github.com/milk9111/floater/follower"
	"github.com/milk9111/floater/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedOnly(t *testing.T) {
	t.Helper()
	prev := prefabs.Dir()
	prefabs.SetDir("")
	t.Cleanup(func() { prefabs.SetDir(prev) })
}

func TestBuildScene(t *testing.T) {
	embeddedOnly(t)
	w := ecs.NewWorld()
	scene, err := BuildScene(w)
	require.NoError(t, err)

	pw := w.PhysicsWorld()
	require.NotNil(t, pw)
	assert.Len(t, pw.Columns(), 5)
	assert.Len(t, ecs.Query(w, component.ColumnComponent.Kind()), 5)

	_, n := ecs.Single(w, component.FollowerTargetComponent.Kind())
	assert.Equal(t, 1, n)
	assert.True(t, ecs.Has(w, scene.Player, component.PlayerTagComponent.Kind()))

	cam, ok := ecs.Get(w, scene.Camera, component.FollowerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, follower.LookAt, cam.Kind)
	light, ok := ecs.Get(w, scene.Light, component.FollowerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, follower.Follow, light.Kind)
	assert.NotEqual(t, cam.ID, light.ID)

	ctrl, ok := ecs.Get(w, scene.Root, component.FollowerControllerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cam.ID, ctrl.ActiveID)

	presets, _ := ecs.Get(w, scene.Root, component.CameraPresetsComponent.Kind())
	assert.Equal(t, []string{"default", "overhead", "close", "side"}, presets.Order)
	for _, name := range presets.Order {
		o, _ := presets.Lookup(name)
		assert.InDelta(t, 1.0, o.Direction.Len(), 1e-5, name)
	}

	rb, _ := ecs.Get(w, scene.Player, component.RigidBodyComponent.Kind())
	assert.InDelta(t, 1.0, rb.Mass, 1e-5)
	assert.Equal(t, -1, rb.Column)
}

func TestReplacePresets(t *testing.T) {
	w := ecs.NewWorld()
	assert.False(t, ReplacePresets(w, &component.CameraPresets{}))

	root, err := NewController(w, nil, nil)
	require.NoError(t, err)
	next := PresetsFromSpec(&prefabs.PresetsSpec{Presets: []prefabs.PresetSpec{
		{Name: "far", Distance: 50, Direction: mgl32.Vec3{0, 2, 0}},
		{Name: "flat", Distance: 5},
	}})
	require.True(t, ReplacePresets(w, next))

	presets, _ := ecs.Get(w, root, component.CameraPresetsComponent.Kind())
	assert.Equal(t, []string{"far"}, presets.Order, "zero directions are skipped")
	far, _ := presets.Lookup("far")
	assert.Equal(t, follower.NewOrbit(50, mgl32.Vec3{0, 1, 0}), far)
}

func TestLevelRejectsTiltedColumn(t *testing.T) {
	w := ecs.NewWorld()
	_, err := LoadLevelFromSpec(w, &prefabs.LevelSpec{Columns: []prefabs.ColumnSpec{{
		Name:        "ramp",
		Transform:   prefabs.TransformSpec{RotationDeg: mgl32.Vec3{20, 0, 0}},
		HalfExtents: mgl32.Vec3{1, 1, 1},
	}}})
	assert.ErrorIs(t, err, ecs.ErrTiltedColumn)
	assert.Nil(t, w.PhysicsWorld())
}

func TestSceneSettlesAtRideHeight(t *testing.T) {
	embeddedOnly(t)
	w := ecs.NewWorld()
	scene, err := BuildScene(w)
	require.NoError(t, err)

	tr, _ := ecs.Get(w, scene.Player, component.TransformComponent.Kind())
	tr.Translation = mgl32.Vec3{0, 2.5, 0}

	sched := ecs.NewScheduler(
		system.NewClockSystem(60),
		system.NewFollowerSystem(),
		system.NewDirectorSystem("scripts/director.tengo"),
		system.NewRayProbeSystem(),
		system.NewFloatingControllerSystem(),
		system.NewPhysicsSystem(),
		system.NewRespawnSystem(),
		system.NewEventLogSystem(),
	)
	for i := 0; i < 180; i++ {
		sched.Update(w)
	}

	settings, _ := ecs.Get(w, scene.Player, component.ControllerSettingsComponent.Kind())
	assert.InDelta(t, settings.RideHeight, tr.Translation.Y(), 0.2)
	state, ok := ecs.Get(w, scene.Player, component.FloatingStateComponent.Kind())
	require.True(t, ok)
	assert.True(t, state.Last.Floating)

	camTr, _ := ecs.Get(w, scene.Camera, component.TransformComponent.Kind())
	pos, _ := ecs.Get(w, scene.Camera, component.FollowerPositionComponent.Kind())
	want := pos.Current.Position(tr.Translation)
	assert.True(t, common.NearVec3(camTr.Translation, want, 0.05), "camera %v want %v", camTr.Translation, want)
}
