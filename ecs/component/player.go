package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/locomotion"
)

// ControllerSettings are the floating controller tunables of a body.
type ControllerSettings = locomotion.Settings

var ControllerSettingsComponent = NewComponent[ControllerSettings]()

// FloatingState keeps the controller's last decision for debug drawing and
// as the steering fallback when the camera looks straight down.
type FloatingState struct {
	Forward mgl32.Vec3
	Right   mgl32.Vec3
	Last    locomotion.Actuation
}

var FloatingStateComponent = NewComponent[FloatingState]()

// Spawn is where a body is reset to after falling out of the level.
type Spawn struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

var SpawnComponent = NewComponent[Spawn]()
