package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func useDir(t *testing.T, d string) {
	t.Helper()
	prev := Dir()
	SetDir(d)
	t.Cleanup(func() { SetDir(prev) })
}

func TestEmbeddedPrefabs(t *testing.T) {
	useDir(t, "")

	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, player.Transform.Position)
	assert.InDelta(t, 1.0, player.Body.Mass(), 1e-6)
	assert.Equal(t, float32(2), player.Controller.RideHeight)

	camera, err := LoadFollowerSpec("camera.yaml")
	require.NoError(t, err)
	assert.Equal(t, "look_at", camera.Follower.Kind)
	assert.Equal(t, float32(20), camera.Follower.Distance)
	assert.Equal(t, 1.5, camera.Follower.TransitionTime)
	require.NotNil(t, camera.Controller)
	assert.Equal(t, float32(3), camera.Controller.RotationSpeed)

	light, err := LoadFollowerSpec("light.yaml")
	require.NoError(t, err)
	assert.Nil(t, light.Controller)
	assert.Equal(t, uint32(1), light.Follower.ID)

	level, err := LoadLevelSpec()
	require.NoError(t, err)
	assert.NotEmpty(t, level.Columns)
	assert.Less(t, level.KillY, float32(0))

	presets, err := LoadPresetsSpec()
	require.NoError(t, err)
	names := make([]string, 0, len(presets.Presets))
	for _, p := range presets.Presets {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"default", "overhead", "close", "side"}, names)

	script, err := LoadScript("director.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(script), "engine.transition")
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "presets.yaml"), []byte(`
presets:
  - name: only
    distance: 3
    direction: [0, 1, 0]
`), 0o644))

	presets, err := LoadPresetsSpec()
	require.NoError(t, err)
	require.Len(t, presets.Presets, 1)
	assert.Equal(t, "only", presets.Presets[0].Name)

	_, ok := ModTime("prefabs/presets.yaml")
	assert.True(t, ok)

	// files missing on disk fall back to the embedded copy
	_, err = LoadPlayerSpec()
	assert.NoError(t, err)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	_, err := LoadSpec[LevelSpec]("missing.yaml")
	assert.ErrorContains(t, err, "missing.yaml")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "level.yaml"), []byte("kill_y: deep\n"), 0o644))
	_, err = LoadLevelSpec()
	assert.ErrorContains(t, err, "unmarshal level.yaml")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "presets.yaml"), []byte(`
presets:
  - name: a
  - name: a
`), 0o644))
	_, err = LoadPresetsSpec()
	assert.ErrorIs(t, err, ErrDuplicatePreset)
}

func TestTransformSpecRotation(t *testing.T) {
	spec := TransformSpec{RotationDeg: mgl32.Vec3{0, 90, 0}}
	got := spec.Rotation().Rotate(mgl32.Vec3{1, 0, 0})
	assert.True(t, common.NearVec3(got, mgl32.Vec3{0, 0, -1}, 1e-5), "got %v", got)

	assert.True(t, common.NearQuat(TransformSpec{}.Rotation(), mgl32.QuatIdent(), 1e-6))
}

func TestMarshalPresetReadsBack(t *testing.T) {
	in := PresetSpec{Name: "mine", Distance: 12.5, Direction: mgl32.Vec3{0, 1, 0}}
	b, err := MarshalPreset(in)
	require.NoError(t, err)

	var out PresetsSpec
	require.NoError(t, yaml.Unmarshal(append([]byte("presets:\n"), b...), &out))
	require.Len(t, out.Presets, 1)
	assert.Equal(t, in, out.Presets[0])
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "presets.yaml"), []byte("presets: []\n"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Poll()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "presets.yaml", got[0])
	assert.NotContains(t, got, "notes.txt")
}
