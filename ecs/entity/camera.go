package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/follower"
	"github.com/milk9111/floater/prefabs"
)

const (
	CameraPrefab = "camera.yaml"
	LightPrefab  = "light.yaml"
)

// NewCamera builds the camera follower. Its prefab also seeds the
// controller singleton.
func NewCamera(w *ecs.World) (ecs.Entity, *prefabs.FollowerEntitySpec, error) {
	spec, err := prefabs.LoadFollowerSpec(CameraPrefab)
	if err != nil {
		return 0, nil, fmt.Errorf("camera: load spec: %w", err)
	}
	e, err := NewFollower(w, spec, component.CameraTagComponent.Kind(), &component.CameraTag{})
	return e, spec, err
}

// NewLight builds the light follower.
func NewLight(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadFollowerSpec(LightPrefab)
	if err != nil {
		return 0, fmt.Errorf("light: load spec: %w", err)
	}
	return NewFollower(w, spec, component.LightTagComponent.Kind(), &component.LightTag{})
}

// NewFollower builds a follower entity carrying tag.
func NewFollower[T any](w *ecs.World, spec *prefabs.FollowerEntitySpec, tagKind component.ComponentKind[T], tag *T) (ecs.Entity, error) {
	fs := spec.Follower
	up := fs.Up
	if up.Len() == 0 {
		up = mgl32.Vec3{0, 1, 0}
	}
	dir := fs.Direction
	if dir.Len() == 0 {
		return 0, fmt.Errorf("%s: follower direction is zero", spec.Name)
	}
	pos := follower.NewPosition(follower.NewOrbit(fs.Distance, dir))

	return build(w, spec.Name,
		with(tagKind, tag),
		with(component.FollowerComponent.Kind(), &component.Follower{
			ID:   fs.ID,
			Name: spec.Name,
			Kind: follower.ParseKind(fs.Kind),
		}),
		with(component.FollowerConfigComponent.Kind(), &component.FollowerConfig{
			TransitionTime: fs.TransitionTime,
			Up:             up.Normalize(),
		}),
		with(component.FollowerPositionComponent.Kind(), &pos),
		with(component.TransformComponent.Kind(), &component.Transform{
			Translation: spec.Transform.Position,
			Rotation:    spec.Transform.Rotation(),
		}),
	)
}
