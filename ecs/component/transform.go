package component

import "github.com/milk9111/floater/follower"

// Transform is an entity's world pose.
type Transform = follower.Transform

var TransformComponent = NewComponent[Transform]()
