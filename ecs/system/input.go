package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
)

// Action is a logical input.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionJump
	ActionRotateLeft
	ActionRotateRight
	ActionRotateUp
	ActionRotateDown
	ActionCycleFollower
	ActionPreset1
	ActionPreset2
	ActionPreset3
	ActionPreset4
	ActionCopyPreset
	ActionToggleDebug
	ActionPause
)

var presetActions = []Action{ActionPreset1, ActionPreset2, ActionPreset3, ActionPreset4}

// InputSource reports logical action state for the current frame.
type InputSource interface {
	Pressed(a Action) bool
	JustPressed(a Action) bool
}

// EbitenSource reads the keyboard and the first standard gamepad.
type EbitenSource struct {
	keys map[Action][]ebiten.Key
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{keys: map[Action][]ebiten.Key{
		ActionForward:       {ebiten.KeyW},
		ActionBack:          {ebiten.KeyS},
		ActionLeft:          {ebiten.KeyA},
		ActionRight:         {ebiten.KeyD},
		ActionJump:          {ebiten.KeySpace},
		ActionRotateLeft:    {ebiten.KeyArrowLeft},
		ActionRotateRight:   {ebiten.KeyArrowRight},
		ActionRotateUp:      {ebiten.KeyArrowUp},
		ActionRotateDown:    {ebiten.KeyArrowDown},
		ActionCycleFollower: {ebiten.KeyTab},
		ActionPreset1:       {ebiten.Key1},
		ActionPreset2:       {ebiten.Key2},
		ActionPreset3:       {ebiten.Key3},
		ActionPreset4:       {ebiten.Key4},
		ActionCopyPreset:    {ebiten.KeyC},
		ActionToggleDebug:   {ebiten.KeyF3},
		ActionPause:         {ebiten.KeyEscape},
	}}
}

const stickDeadzone = 0.3

func (s *EbitenSource) Pressed(a Action) bool {
	for _, k := range s.keys[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	gamepads := ebiten.GamepadIDs()
	if len(gamepads) == 0 {
		return false
	}
	id := gamepads[0]
	lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
	switch a {
	case ActionForward:
		return ly < -stickDeadzone
	case ActionBack:
		return ly > stickDeadzone
	case ActionLeft:
		return lx < -stickDeadzone
	case ActionRight:
		return lx > stickDeadzone
	case ActionRotateLeft:
		return rx < -stickDeadzone && math.Abs(rx) >= math.Abs(ry)
	case ActionRotateRight:
		return rx > stickDeadzone && math.Abs(rx) >= math.Abs(ry)
	case ActionRotateUp:
		return ry < -stickDeadzone && math.Abs(ry) > math.Abs(rx)
	case ActionRotateDown:
		return ry > stickDeadzone && math.Abs(ry) > math.Abs(rx)
	case ActionJump:
		return ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return false
}

func (s *EbitenSource) JustPressed(a Action) bool {
	for _, k := range s.keys[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	gamepads := ebiten.GamepadIDs()
	if len(gamepads) == 0 {
		return false
	}
	id := gamepads[0]
	switch a {
	case ActionJump:
		return inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	case ActionCycleFollower:
		return inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
	case ActionPause:
		return inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}
	return false
}

// InputSystem samples movement input into every Input component and turns
// preset keys into transition requests for the active follower.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	forward := i.source.Pressed(ActionForward)
	back := i.source.Pressed(ActionBack)
	left := i.source.Pressed(ActionLeft)
	right := i.source.Pressed(ActionRight)
	jump := i.source.Pressed(ActionJump)
	jumpPressed := i.source.JustPressed(ActionJump)

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Forward = forward
		input.Back = back
		input.Left = left
		input.Right = right
		input.Jump = jump
		input.JumpPressed = jumpPressed
	})
	if jumpPressed {
		w.Events().Push(ecs.Event{Type: ecs.EventJump})
	}

	for idx, a := range presetActions {
		if !i.source.JustPressed(a) {
			continue
		}
		presets, ok := firstOf(w, component.CameraPresetsComponent.Kind())
		if !ok || idx >= len(presets.Order) {
			continue
		}
		_, _ = RequestPreset(w, presets.Order[idx], "key")
	}
}
