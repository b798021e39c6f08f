package entity

import (
	"fmt"

	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/prefabs"
)

// Scene holds the handles the game loop needs.
type Scene struct {
	Player ecs.Entity
	Camera ecs.Entity
	Light  ecs.Entity
	Root   ecs.Entity
}

// BuildScene loads every prefab into w.
func BuildScene(w *ecs.World) (*Scene, error) {
	if _, err := LoadLevel(w); err != nil {
		return nil, err
	}
	presetSpec, err := prefabs.LoadPresetsSpec()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	var s Scene
	var camSpec *prefabs.FollowerEntitySpec
	if s.Camera, camSpec, err = NewCamera(w); err != nil {
		return nil, err
	}
	if s.Light, err = NewLight(w); err != nil {
		return nil, err
	}
	if s.Root, err = NewController(w, camSpec.Controller, PresetsFromSpec(presetSpec)); err != nil {
		return nil, err
	}
	if s.Player, err = NewPlayer(w); err != nil {
		return nil, err
	}
	return &s, nil
}
