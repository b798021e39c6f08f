package system

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/follower"
	"github.com/milk9111/floater/logging"
	"github.com/rs/zerolog"
)

// FollowerSystem applies pending transition requests and steps every
// follower around the single follower target.
type FollowerSystem struct {
	log     zerolog.Logger
	lastErr error
}

func NewFollowerSystem() *FollowerSystem {
	return &FollowerSystem{log: logging.For("follower")}
}

func (s *FollowerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	err := s.Tick(w)
	if err != nil && !errors.Is(err, s.lastErr) {
		s.log.Warn().Err(err).Msg("followers not updated")
	}
	if err == nil && s.lastErr != nil {
		s.log.Info().Msg("follower target restored")
	}
	s.lastErr = err
}

// Err returns the error from the most recent update.
func (s *FollowerSystem) Err() error {
	return s.lastErr
}

// Tick runs one follower update. When the target is missing or ambiguous no
// follower is touched and the error is returned.
func (s *FollowerSystem) Tick(w *ecs.World) error {
	clk := worldClock(w)
	s.applyRequests(w, clk.Elapsed)

	target, err := FollowTarget(w)
	if err != nil {
		return err
	}

	var input follower.RotationInput
	if ctrl, ok := firstOf(w, component.FollowerControllerComponent.Kind()); ok {
		input = ctrl.Input()
	}

	ecs.ForEach4(w,
		component.FollowerComponent.Kind(),
		component.FollowerConfigComponent.Kind(),
		component.FollowerPositionComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, f *component.Follower, cfg *component.FollowerConfig, pos *component.FollowerPosition, tr *component.Transform) {
			before := pos.State.Phase()
			*tr = pos.Step(f.ID, f.Kind, *cfg, follower.Tick{
				Target:  target,
				Current: *tr,
				Now:     clk.Elapsed,
				Delta:   clk.Delta,
				Input:   input,
			})
			if before == follower.Transitioning && pos.State.Phase() == follower.Normal {
				s.log.Debug().Uint32("follower", f.ID).Float64("now", clk.Elapsed).Msg("transition committed")
			}
		})
	return nil
}

// FollowTarget returns the translation of the single follower target.
func FollowTarget(w *ecs.World) (mgl32.Vec3, error) {
	e, n := ecs.Single(w, component.FollowerTargetComponent.Kind())
	switch {
	case n == 0:
		return mgl32.Vec3{}, follower.ErrNoTarget
	case n > 1:
		return mgl32.Vec3{}, follower.ErrMultipleTargets
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return mgl32.Vec3{}, follower.ErrNoTarget
	}
	return tr.Translation, nil
}

func (s *FollowerSystem) applyRequests(w *ecs.World, now float64) {
	requests := ecs.Query(w, component.FollowerTransitionRequestComponent.Kind())
	if len(requests) == 0 {
		return
	}
	presets, _ := firstOf(w, component.CameraPresetsComponent.Kind())

	for _, re := range requests {
		req, _ := ecs.Get(w, re, component.FollowerTransitionRequestComponent.Kind())
		s.apply(w, presets, req, now)
		ecs.DestroyEntity(w, re)
	}
}

func (s *FollowerSystem) apply(w *ecs.World, presets *component.CameraPresets, req *component.FollowerTransitionRequest, now float64) {
	var target follower.Orbit
	switch {
	case req.Orbit != nil:
		target = *req.Orbit
	default:
		o, ok := presets.Lookup(req.Preset)
		if !ok {
			s.log.Warn().Str("preset", req.Preset).Str("source", req.Source).Msg("unknown preset, request dropped")
			return
		}
		target = o
	}

	applied := false
	ecs.ForEach3(w,
		component.FollowerComponent.Kind(),
		component.FollowerConfigComponent.Kind(),
		component.FollowerPositionComponent.Kind(),
		func(_ ecs.Entity, f *component.Follower, cfg *component.FollowerConfig, pos *component.FollowerPosition) {
			if f.ID != req.FollowerID {
				return
			}
			pos.Request(*cfg, target, now)
			applied = true
		})
	if !applied {
		s.log.Warn().Uint32("follower", req.FollowerID).Msg("no follower with id, request dropped")
		return
	}
	s.log.Debug().
		Uint32("follower", req.FollowerID).
		Str("preset", req.Preset).
		Str("source", req.Source).
		Float32("distance", target.Distance).
		Msg("transition started")
}
