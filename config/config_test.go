package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `
logLevel: debug
tps: 120
window:
  title: sandbox
director:
  enabled: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "floater.yaml"), []byte(cfg), 0644))

	got, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", got.LogLevel)
	assert.Equal(t, 120, got.TPS)
	assert.Equal(t, "sandbox", got.Window.Title)
	assert.Equal(t, 1280, got.Window.Width)
	assert.False(t, got.Director.Enabled)
	assert.Equal(t, filepath.Join(dir, "floater.yaml"), Used())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	got, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, &Config{
		LogLevel:   "info",
		PrefabsDir: "prefabs",
		TPS:        60,
		HotReload:  true,
		Window:     WindowConfig{Width: 1280, Height: 720, Title: "floater"},
		Director:   DirectorConfig{Enabled: true, Script: "scripts/director.tengo"},
		Camera:     CameraConfig{FovDegrees: 60},
	}, got)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("FLOATER_LOGLEVEL", "warn")
	t.Setenv("FLOATER_WINDOW_WIDTH", "640")

	got, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "warn", got.LogLevel)
	assert.Equal(t, 640, got.Window.Width)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"malformed", "window: [\n", "config: read"},
		{"bad_tps", "tps: 0\n", "tps must be positive"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Cleanup(viper.Reset)
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "floater.yaml"), []byte(c.body), 0644))

			_, err := Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}
