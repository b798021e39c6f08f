package ecs

import (
	"testing"

	"github.com/milk9111/floater/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecycledSlotRejectsStaleHandle(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	require.NoError(t, Add(w, old, k, intPtr(1)))
	require.True(t, DestroyEntity(w, old))

	fresh := CreateEntity(w)
	assert.Equal(t, old.id(), fresh.id())
	assert.NotEqual(t, old, fresh)
	assert.False(t, IsAlive(w, old))
	assert.False(t, Has(w, fresh, k), "components must not survive slot reuse")
	assert.ErrorIs(t, Add(w, old, k, intPtr(2)), component.ErrEntityNotAlive)
	assert.False(t, DestroyEntity(w, old))
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	assert.ErrorIs(t, Add(w, e, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind)
	assert.ErrorIs(t, Add[int](w, e, component.NewComponentKind[int](), nil), component.ErrNilComponent)
}

func TestGetSharesPointer(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	e := CreateEntity(w)
	require.NoError(t, Add(w, e, k, intPtr(1)))

	v, ok := Get(w, e, k)
	require.True(t, ok)
	*v = 7

	again, _ := Get(w, e, k)
	assert.Equal(t, 7, *again)
}

func TestSingle(t *testing.T) {
	k := component.NewComponentKind[struct{}]()
	cases := []struct {
		name  string
		count int
	}{
		{"none", 0},
		{"one", 1},
		{"two", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			var first Entity
			for i := 0; i < c.count; i++ {
				e := CreateEntity(w)
				require.NoError(t, Add(w, e, k, &struct{}{}))
				if i == 0 {
					first = e
				}
			}
			e, n := Single(w, k)
			assert.Equal(t, c.count, n)
			assert.Equal(t, first, e)
		})
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	both := CreateEntity(w)
	onlyA := CreateEntity(w)
	require.NoError(t, Add(w, both, ka, intPtr(1)))
	require.NoError(t, Add(w, both, kb, stringPtr("x")))
	require.NoError(t, Add(w, onlyA, ka, intPtr(2)))

	assert.Equal(t, []Entity{both}, Query(w, ka, kb))
	assert.ElementsMatch(t, []Entity{both, onlyA}, Query(w, ka))
	assert.Nil(t, Query(w))
}

func TestSchedulerRunsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	var seen int
	s := NewScheduler(
		SystemFunc(func(w *World) {
			order = append(order, "produce")
			w.Events().Push(Event{Type: EventContact})
		}),
		nil,
		SystemFunc(func(w *World) {
			order = append(order, "consume")
			seen += len(w.Events().Drain())
		}),
		SystemFunc(func(w *World) {
			w.Events().Push(Event{Type: "late"})
		}),
	)

	s.Update(w)
	s.Update(w)

	assert.Equal(t, []string{"produce", "consume", "produce", "consume"}, order)
	assert.Equal(t, 2, seen, "undrained events must not leak into the next tick")
	assert.Len(t, s.Systems(), 3)
}
