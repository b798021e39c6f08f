package component

import "github.com/go-gl/mathgl/mgl32"

// Column is a box-shaped piece of level geometry. Its footprint is indexed
// in the XZ plane; its top face is what ray probes land on.
type Column struct {
	Name        string
	Center      mgl32.Vec3
	HalfExtents mgl32.Vec3
	Yaw         float32
	Sensor      bool
}

// Top returns the height of the column's top face.
func (c Column) Top() float32 {
	return c.Center.Y() + c.HalfExtents.Y()
}

var ColumnComponent = NewComponent[Column]()

// LevelBounds bounds the playable volume.
type LevelBounds struct {
	KillY float32
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
