package entity

import (
	"fmt"

	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
)

type componentAdder func(w *ecs.World, e ecs.Entity) error

func with[T any](kind component.ComponentKind[T], value *T) componentAdder {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, kind, value)
	}
}

// build creates an entity and adds every component in order. A failure
// destroys the partial entity.
func build(w *ecs.World, name string, adders ...componentAdder) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	for i, add := range adders {
		if err := add(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("%s: add component %d: %w", name, i, err)
		}
	}
	return e, nil
}
