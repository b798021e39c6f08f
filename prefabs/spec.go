package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/locomotion"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TransformSpec is a pose; rotation is XYZ Euler angles in degrees.
type TransformSpec struct {
	Position    mgl32.Vec3 `yaml:"position"`
	RotationDeg mgl32.Vec3 `yaml:"rotation_deg"`
}

// Rotation converts the Euler angles to a quaternion.
func (t TransformSpec) Rotation() mgl32.Quat {
	r := t.RotationDeg
	return mgl32.AnglesToQuat(mgl32.DegToRad(r.X()), mgl32.DegToRad(r.Y()), mgl32.DegToRad(r.Z()), mgl32.XYZ)
}

type BodySpec struct {
	HalfExtents    mgl32.Vec3 `yaml:"half_extents"`
	Density        float32    `yaml:"density"`
	LinearDamping  float32    `yaml:"linear_damping"`
	AngularDamping float32    `yaml:"angular_damping"`
	GravityScale   *float32   `yaml:"gravity_scale"`
}

// Mass is density times box volume.
func (b BodySpec) Mass() float32 {
	h := b.HalfExtents
	return b.Density * 8 * h.X() * h.Y() * h.Z()
}

// Inertia is the mean principal moment of a solid box.
func (b BodySpec) Inertia() float32 {
	h := b.HalfExtents
	return 2 * b.Mass() * (h.X()*h.X() + h.Y()*h.Y() + h.Z()*h.Z()) / 9
}

type RaySpec struct {
	Direction   mgl32.Vec3 `yaml:"direction"`
	MaxDistance float32    `yaml:"max_distance"`
}

type PlayerSpec struct {
	Name       string              `yaml:"name"`
	Transform  TransformSpec       `yaml:"transform"`
	Body       BodySpec            `yaml:"body"`
	Ray        RaySpec             `yaml:"ray"`
	Controller locomotion.Settings `yaml:"controller"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec := PlayerSpec{Controller: locomotion.DefaultSettings()}
	data, err := Load("player.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load player.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal player.yaml: %w", err)
	}
	return &spec, nil
}

type FollowerSpec struct {
	ID             uint32     `yaml:"id"`
	Kind           string     `yaml:"kind"`
	Distance       float32    `yaml:"distance"`
	Direction      mgl32.Vec3 `yaml:"direction"`
	TransitionTime float64    `yaml:"transition_time"`
	Up             mgl32.Vec3 `yaml:"up"`
}

type ControllerSpec struct {
	FollowerID    uint32  `yaml:"follower_id"`
	RotationSpeed float32 `yaml:"rotation_speed"`
}

// FollowerEntitySpec describes a camera or a light. Controller is only
// read from camera.yaml.
type FollowerEntitySpec struct {
	Name       string          `yaml:"name"`
	Transform  TransformSpec   `yaml:"transform"`
	Follower   FollowerSpec    `yaml:"follower"`
	Controller *ControllerSpec `yaml:"controller"`
}

func LoadFollowerSpec(filename string) (*FollowerEntitySpec, error) {
	spec, err := LoadSpec[FollowerEntitySpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ColumnSpec struct {
	Name        string        `yaml:"name"`
	Transform   TransformSpec `yaml:"transform"`
	HalfExtents mgl32.Vec3    `yaml:"half_extents"`
	Shape       string        `yaml:"shape"`
}

type LevelSpec struct {
	Name    string       `yaml:"name"`
	Gravity mgl32.Vec3   `yaml:"gravity"`
	KillY   float32      `yaml:"kill_y"`
	Columns []ColumnSpec `yaml:"columns"`
}

func LoadLevelSpec() (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec]("level.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
