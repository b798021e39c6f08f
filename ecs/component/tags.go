package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type LightTag struct{}

var LightTagComponent = NewComponent[LightTag]()

// FollowerTarget marks the one entity followers track.
type FollowerTarget struct{}

var FollowerTargetComponent = NewComponent[FollowerTarget]()
