package ecs

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/ecs/component"
)

// ShapePolicy decides how synthesized colliders take part in queries.
type ShapePolicy string

const (
	ShapeSolid  ShapePolicy = "solid"
	ShapeSensor ShapePolicy = "sensor"
)

const tiltTolerance = 1e-4

var (
	ErrEmptyBounds   = errors.New("collider bounds are empty")
	ErrUnknownPolicy = errors.New("unknown shape policy")
	ErrTiltedColumn  = errors.New("column is not upright")
)

// ParseShapePolicy accepts "", "solid" and "sensor".
func ParseShapePolicy(s string) (ShapePolicy, error) {
	switch ShapePolicy(s) {
	case "", ShapeSolid:
		return ShapeSolid, nil
	case ShapeSensor:
		return ShapeSensor, nil
	}
	return "", fmt.Errorf("ecs: parse shape policy %q: %w", s, ErrUnknownPolicy)
}

// ColumnFromBounds turns a posed axis-aligned box into a level column.
// The box may only be yawed about +Y.
func ColumnFromBounds(t component.Transform, halfExtents mgl32.Vec3, policy ShapePolicy) (component.Column, error) {
	if halfExtents.X() <= 0 || halfExtents.Y() <= 0 || halfExtents.Z() <= 0 {
		return component.Column{}, fmt.Errorf("ecs: column from bounds %v: %w", halfExtents, ErrEmptyBounds)
	}
	if policy != ShapeSolid && policy != ShapeSensor {
		return component.Column{}, fmt.Errorf("ecs: column from bounds: policy %q: %w", policy, ErrUnknownPolicy)
	}

	rot := t.Rotation
	if rot.Len() == 0 {
		rot = mgl32.QuatIdent()
	}
	rot = rot.Normalize()
	up := rot.Rotate(mgl32.Vec3{0, 1, 0})
	if up.Dot(mgl32.Vec3{0, 1, 0}) <= 1-tiltTolerance {
		return component.Column{}, fmt.Errorf("ecs: column from bounds: up %v: %w", up, ErrTiltedColumn)
	}
	x := rot.Rotate(mgl32.Vec3{1, 0, 0})
	yaw := float32(math.Atan2(float64(-x.Z()), float64(x.X())))

	return component.Column{
		Center:      t.Translation,
		HalfExtents: halfExtents,
		Yaw:         yaw,
		Sensor:      policy == ShapeSensor,
	}, nil
}
