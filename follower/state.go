package follower

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNoTarget        = errors.New("follower: no tracked target")
	ErrMultipleTargets = errors.New("follower: more than one tracked target")
)

// Phase tags the follower state.
type Phase int

const (
	Normal Phase = iota
	Transitioning
)

func (p Phase) String() string {
	if p == Transitioning {
		return "transitioning"
	}
	return "normal"
}

// Transition is an in-flight interpolation toward Target that began at
// StartTime (seconds since startup).
type Transition struct {
	StartTime float64
	Target    Orbit
}

// State is Normal when Transition is nil.
type State struct {
	Transition *Transition
}

func (s State) Phase() Phase {
	if s.Transition != nil {
		return Transitioning
	}
	return Normal
}

// Config holds per-follower constants.
type Config struct {
	TransitionTime float64
	Up             mgl32.Vec3
}

// Position is the per-follower orbit state.
type Position struct {
	State   State
	Current Orbit
}

// NewPosition starts a follower in Normal at initial.
func NewPosition(initial Orbit) Position {
	return Position{Current: initial}
}

// Progress returns the clamped interpolation parameter at now.
func (c Config) Progress(tr Transition, now float64) float32 {
	if c.TransitionTime <= 0 {
		return 1
	}
	t := (now - tr.StartTime) / c.TransitionTime
	if t < 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return float32(t)
}

// Effective returns the orbit the follower occupies at now, including any
// in-flight interpolation.
func (p Position) Effective(cfg Config, now float64) Orbit {
	if p.State.Transition == nil {
		return p.Current
	}
	return p.Current.Interpolate(p.State.Transition.Target, cfg.Progress(*p.State.Transition, now))
}

// Request starts a transition toward target. An in-flight transition is
// superseded: its interpolated orbit at now becomes the new start.
func (p *Position) Request(cfg Config, target Orbit, now float64) {
	if p.State.Transition != nil {
		p.Current = p.Effective(cfg, now)
	}
	if l := target.Direction.Len(); l < 1-epsilon || l > 1+epsilon {
		target.Direction = normalizeOr(target.Direction, p.Current.Direction)
	}
	p.State.Transition = &Transition{StartTime: now, Target: target}
}

// RotationInput carries the controller's per-tick rates and the id of the
// follower allowed to consume them.
type RotationInput struct {
	ActiveID   uint32
	Horizontal float32
	Vertical   float32
}

// Tick is everything a follower step reads from the outside world.
type Tick struct {
	Target  mgl32.Vec3
	Current Transform
	Now     float64
	Delta   float32
	Input   RotationInput
}

// Step advances p by one tick and returns the follower's new transform.
// A transition that reaches t == 1 is committed in the same call.
func (p *Position) Step(id uint32, kind Kind, cfg Config, tick Tick) Transform {
	orbit := p.Current
	if tr := p.State.Transition; tr != nil {
		t := cfg.Progress(*tr, tick.Now)
		if t >= 1 {
			p.Current = tr.Target
			p.State.Transition = nil
			orbit = p.Current
		} else {
			orbit = p.Current.Interpolate(tr.Target, t)
		}
	} else if id == tick.Input.ActiveID {
		h := tick.Input.Horizontal * tick.Delta
		v := tick.Input.Vertical * tick.Delta
		if h != 0 || v != 0 {
			right := RightOf(tick.Target, tick.Current.Translation, cfg.Up)
			p.Current = p.Current.Rotate(h, cfg.Up, v, right)
		}
		orbit = p.Current
	}

	out := tick.Current
	out.Translation = orbit.Position(tick.Target)
	return kind.Orient(out, tick.Target, cfg.Up)
}

// RightOf returns normalize(target - viewer) x up, or zero when undefined.
func RightOf(target, viewer, up mgl32.Vec3) mgl32.Vec3 {
	toTarget := target.Sub(viewer)
	if toTarget.Len() < epsilon {
		return mgl32.Vec3{}
	}
	right := toTarget.Normalize().Cross(up)
	if right.Len() < epsilon {
		return mgl32.Vec3{}
	}
	return right
}
