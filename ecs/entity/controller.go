package entity

import (
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/follower"
	"github.com/milk9111/floater/prefabs"
)

// NewController builds the world singleton: clock, event history, the
// follower controller and camera presets. cs may be nil, which leaves
// follower 0 active with zero rotation speed.
func NewController(w *ecs.World, cs *prefabs.ControllerSpec, presets *component.CameraPresets) (ecs.Entity, error) {
	ctrl := follower.Controller{}
	if cs != nil {
		ctrl.ActiveID = cs.FollowerID
		ctrl.Speed = cs.RotationSpeed
	}
	if presets == nil {
		presets = &component.CameraPresets{Orbits: map[string]follower.Orbit{}}
	}
	return build(w, "controller",
		with(component.ClockComponent.Kind(), &component.Clock{}),
		with(component.EventHistoryComponent.Kind(), &component.EventHistory{}),
		with(component.FollowerControllerComponent.Kind(), &ctrl),
		with(component.CameraPresetsComponent.Kind(), presets),
	)
}

// PresetsFromSpec converts presets.yaml, keeping file order.
func PresetsFromSpec(spec *prefabs.PresetsSpec) *component.CameraPresets {
	out := &component.CameraPresets{Orbits: map[string]follower.Orbit{}}
	if spec == nil {
		return out
	}
	for _, p := range spec.Presets {
		if p.Direction.Len() == 0 {
			continue
		}
		out.Order = append(out.Order, p.Name)
		out.Orbits[p.Name] = follower.NewOrbit(p.Distance, p.Direction)
	}
	return out
}

// ReplacePresets swaps the presets in place, e.g. after a hot reload.
func ReplacePresets(w *ecs.World, presets *component.CameraPresets) bool {
	e, ok := ecs.First(w, component.CameraPresetsComponent.Kind())
	if !ok || presets == nil {
		return false
	}
	current, _ := ecs.Get(w, e, component.CameraPresetsComponent.Kind())
	*current = *presets
	return true
}
