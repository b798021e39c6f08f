package component

import "github.com/milk9111/floater/follower"

// Follower identifies a camera or light that tracks the follower target.
type Follower struct {
	ID   uint32
	Name string
	Kind follower.Kind
}

var FollowerComponent = NewComponent[Follower]()

type FollowerConfig = follower.Config

var FollowerConfigComponent = NewComponent[FollowerConfig]()

type FollowerPosition = follower.Position

var FollowerPositionComponent = NewComponent[FollowerPosition]()

// FollowerController is the process-wide rotation input holder. Exactly
// one entity carries it.
type FollowerController = follower.Controller

var FollowerControllerComponent = NewComponent[FollowerController]()

// FollowerTransitionRequest is a one-shot request entity. Preset names a
// camera preset; Orbit, when set, overrides it. The follower system
// consumes and destroys the request entity.
type FollowerTransitionRequest struct {
	FollowerID uint32
	Preset     string
	Orbit      *follower.Orbit
	Source     string
}

var FollowerTransitionRequestComponent = NewComponent[FollowerTransitionRequest]()

// CameraPresets holds named orbits, in display order.
type CameraPresets struct {
	Order  []string
	Orbits map[string]follower.Orbit
}

// Lookup returns the named orbit.
func (p *CameraPresets) Lookup(name string) (follower.Orbit, bool) {
	if p == nil || p.Orbits == nil {
		return follower.Orbit{}, false
	}
	o, ok := p.Orbits[name]
	return o, ok
}

var CameraPresetsComponent = NewComponent[CameraPresets]()
