package ecs

import "github.com/milk9111/floater/ecs/component"

// Query returns the entities carrying every kind, in the dense order of the
// smallest store.
func Query(w *World, kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smaller set
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	var out []Entity
	for _, e := range smallest.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for _, s := range sets {
			if !s.Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity carrying kind.
func First(w *World, kind component.Kind) (Entity, bool) {
	ents := Query(w, kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Single returns the first entity carrying kind and how many carry it, so
// callers can reject zero or several.
func Single(w *World, kind component.Kind) (e Entity, count int) {
	ents := Query(w, kind)
	if len(ents) == 0 {
		return 0, 0
	}
	return ents[0], len(ents)
}
