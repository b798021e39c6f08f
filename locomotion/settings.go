package locomotion

// Settings are the per-body tunables of the floating controller.
//
// MaxSpeed, Acceleration and MaxAccelForce are loaded and carried but not
// read by Compute; no clamping pass consumes them yet.
type Settings struct {
	MaxSpeed      float32 `yaml:"max_speed"`
	Acceleration  float32 `yaml:"acceleration"`
	MaxAccelForce float32 `yaml:"max_accel_force"`

	RideHeight    float32 `yaml:"ride_height"`
	ForceStrength float32 `yaml:"force_strength"`

	SpringStrength float32 `yaml:"spring_strength"`
	SpringDamper   float32 `yaml:"spring_damper"`

	UprightSpringStrength float32 `yaml:"upright_spring_strength"`
	UprightSpringDamper   float32 `yaml:"upright_spring_damper"`

	RotateStrength float32 `yaml:"rotate_strength"`
	JumpStrength   float32 `yaml:"jump_strength"`
}

// DefaultSettings mirrors the stock player prefab.
func DefaultSettings() Settings {
	return Settings{
		MaxSpeed:              8,
		Acceleration:          200,
		MaxAccelForce:         150,
		RideHeight:            2,
		ForceStrength:         500,
		SpringStrength:        500,
		SpringDamper:          40,
		UprightSpringStrength: 200,
		UprightSpringDamper:   20,
		RotateStrength:        100,
		JumpStrength:          10,
	}
}
