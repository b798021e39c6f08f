package entity

import (
	"fmt"

	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/prefabs"
)

// LoadLevel creates the physics world from level.yaml, one entity per
// column and the level bounds.
func LoadLevel(w *ecs.World) (*ecs.PhysicsWorld, error) {
	spec, err := prefabs.LoadLevelSpec()
	if err != nil {
		return nil, fmt.Errorf("level: load spec: %w", err)
	}
	return LoadLevelFromSpec(w, spec)
}

func LoadLevelFromSpec(w *ecs.World, spec *prefabs.LevelSpec) (*ecs.PhysicsWorld, error) {
	gravity := spec.Gravity
	if gravity.Len() == 0 {
		gravity = ecs.DefaultGravity
	}
	pw := ecs.NewPhysicsWorld(gravity)

	for i, cs := range spec.Columns {
		policy, err := ecs.ParseShapePolicy(cs.Shape)
		if err != nil {
			return nil, fmt.Errorf("level: column %d %q: %w", i, cs.Name, err)
		}
		col, err := ecs.ColumnFromBounds(component.Transform{
			Translation: cs.Transform.Position,
			Rotation:    cs.Transform.Rotation(),
		}, cs.HalfExtents, policy)
		if err != nil {
			return nil, fmt.Errorf("level: column %d %q: %w", i, cs.Name, err)
		}
		col.Name = cs.Name
		pw.AddColumn(col)
		if _, err := build(w, "column "+cs.Name, with(component.ColumnComponent.Kind(), &col)); err != nil {
			return nil, err
		}
	}

	if _, err := build(w, "level bounds", with(component.LevelBoundsComponent.Kind(), &component.LevelBounds{KillY: spec.KillY})); err != nil {
		return nil, err
	}
	w.SetPhysicsWorld(pw)
	return pw, nil
}
