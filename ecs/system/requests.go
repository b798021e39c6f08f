package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/follower"
)

var (
	ErrNoController  = errors.New("no follower controller")
	ErrUnknownPreset = errors.New("unknown camera preset")
)

// RequestTransition spawns a one-shot request entity. FollowerSystem
// consumes it on its next update.
func RequestTransition(w *ecs.World, req component.FollowerTransitionRequest) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.FollowerTransitionRequestComponent.Kind(), &req); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("system: request transition: %w", err)
	}
	return e, nil
}

// RequestPreset asks the active follower to move to a named preset.
func RequestPreset(w *ecs.World, name, source string) (ecs.Entity, error) {
	ctrl, ok := firstOf(w, component.FollowerControllerComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("system: request preset %q: %w", name, ErrNoController)
	}
	presets, _ := firstOf(w, component.CameraPresetsComponent.Kind())
	if _, ok := presets.Lookup(name); !ok {
		return 0, fmt.Errorf("system: request preset %q: %w", name, ErrUnknownPreset)
	}
	return RequestTransition(w, component.FollowerTransitionRequest{
		FollowerID: ctrl.ActiveID,
		Preset:     name,
		Source:     source,
	})
}

// RequestOrbit asks a follower to move to an explicit orbit.
func RequestOrbit(w *ecs.World, followerID uint32, orbit follower.Orbit, source string) (ecs.Entity, error) {
	return RequestTransition(w, component.FollowerTransitionRequest{
		FollowerID: followerID,
		Orbit:      &orbit,
		Source:     source,
	})
}
