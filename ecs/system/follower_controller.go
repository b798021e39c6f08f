package system

import (
	"sort"

	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/follower"
	"github.com/milk9111/floater/logging"
	"github.com/rs/zerolog"
)

// FollowerControllerSystem samples the rotation keys into the controller
// singleton and cycles the active follower.
type FollowerControllerSystem struct {
	source InputSource
	log    zerolog.Logger
}

func NewFollowerControllerSystem(source InputSource) *FollowerControllerSystem {
	return &FollowerControllerSystem{source: source, log: logging.For("follower_controller")}
}

func (s *FollowerControllerSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}
	ctrl, ok := firstOf(w, component.FollowerControllerComponent.Kind())
	if !ok {
		return
	}
	ctrl.Left = s.source.Pressed(ActionRotateLeft)
	ctrl.Right = s.source.Pressed(ActionRotateRight)
	ctrl.Up = s.source.Pressed(ActionRotateUp)
	ctrl.Down = s.source.Pressed(ActionRotateDown)

	if s.source.JustPressed(ActionCycleFollower) {
		next := follower.Next(FollowerIDs(w), ctrl.ActiveID)
		if next != ctrl.ActiveID {
			ctrl.Select(next)
			s.log.Info().Uint32("active", next).Msg("active follower changed")
		}
	}
}

// FollowerIDs returns the ids of every follower, ascending.
func FollowerIDs(w *ecs.World) []uint32 {
	var ids []uint32
	ecs.ForEach(w, component.FollowerComponent.Kind(), func(_ ecs.Entity, f *component.Follower) {
		ids = append(ids, f.ID)
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
