package prefabs

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var ErrDuplicatePreset = errors.New("duplicate preset")

type PresetSpec struct {
	Name      string     `yaml:"name"`
	Distance  float32    `yaml:"distance"`
	Direction mgl32.Vec3 `yaml:"direction"`
}

type PresetsSpec struct {
	Presets []PresetSpec `yaml:"presets"`
}

const PresetsFile = "presets.yaml"

// LoadPresetsSpec loads presets.yaml and rejects duplicate names.
func LoadPresetsSpec() (*PresetsSpec, error) {
	spec, err := LoadSpec[PresetsSpec](PresetsFile)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(spec.Presets))
	for _, p := range spec.Presets {
		if seen[p.Name] {
			return nil, fmt.Errorf("prefabs: %s: %q: %w", PresetsFile, p.Name, ErrDuplicatePreset)
		}
		seen[p.Name] = true
	}
	return &spec, nil
}

// MarshalPreset renders one preset as a presets.yaml list entry.
func MarshalPreset(p PresetSpec) ([]byte, error) {
	b, err := yaml.Marshal([]PresetSpec{p})
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal preset %q: %w", p.Name, err)
	}
	return b, nil
}
