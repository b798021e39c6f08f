package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/floater/common"
	"github.com/spf13/viper"
)

const FileName = "floater"

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type DirectorConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Script  string `mapstructure:"script"`
}

type CameraConfig struct {
	FovDegrees float32 `mapstructure:"fovDegrees"`
}

// Config is the application configuration. Gameplay tunables live in the
// prefab YAML files, not here.
type Config struct {
	LogLevel   string         `mapstructure:"logLevel"`
	PrefabsDir string         `mapstructure:"prefabsDir"`
	TPS        int            `mapstructure:"tps"`
	Debug      bool           `mapstructure:"debug"`
	HotReload  bool           `mapstructure:"hotReload"`
	Window     WindowConfig   `mapstructure:"window"`
	Director   DirectorConfig `mapstructure:"director"`
	Camera     CameraConfig   `mapstructure:"camera"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("prefabsDir", "prefabs")
	viper.SetDefault("tps", 60)
	viper.SetDefault("debug", false)
	viper.SetDefault("hotReload", true)

	viper.SetDefault("window.width", common.BaseWidth)
	viper.SetDefault("window.height", common.BaseHeight)
	viper.SetDefault("window.title", "floater")

	viper.SetDefault("director.enabled", true)
	viper.SetDefault("director.script", "scripts/director.tengo")

	viper.SetDefault("camera.fovDegrees", 60)
}

// Load reads floater.yaml from configDir. A missing file leaves the
// defaults in place; FLOATER_* environment variables override both.
func Load(configDir string) (*Config, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix("FLOATER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", configDir, err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.TPS <= 0 {
		return nil, fmt.Errorf("config: tps must be positive, got %d", cfg.TPS)
	}
	return &cfg, nil
}

// Used returns the path of the file that was read, if any.
func Used() string {
	return viper.ConfigFileUsed()
}
