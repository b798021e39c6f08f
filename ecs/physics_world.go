package ecs

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/floater/ecs/component"
)

const (
	// contactSlop is how far above a column top a body still counts as
	// resting on it.
	contactSlop = 0.01
	rayEpsilon  = 1e-6
)

var DefaultGravity = mgl32.Vec3{0, -9.81, 0}

// PhysicsWorld integrates rigid bodies and indexes level columns. Column
// footprints live in a Chipmunk space as static polygons in the XZ plane,
// with world X mapped to cp X and world Z to cp Y.
type PhysicsWorld struct {
	Gravity mgl32.Vec3

	space         *cp.Space
	columns       []component.Column
	shapeToColumn map[*cp.Shape]int
	grounded      map[Entity]int
}

// NewPhysicsWorld creates an empty physics world.
func NewPhysicsWorld(gravity mgl32.Vec3) *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:       gravity,
		space:         cp.NewSpace(),
		shapeToColumn: make(map[*cp.Shape]int),
		grounded:      make(map[Entity]int),
	}
}

// Space returns the footprint index.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Columns returns the indexed columns in insertion order.
func (pw *PhysicsWorld) Columns() []component.Column {
	if pw == nil {
		return nil
	}
	return pw.columns
}

// AddColumn indexes a column and returns its index.
func (pw *PhysicsWorld) AddColumn(c component.Column) int {
	idx := len(pw.columns)
	pw.columns = append(pw.columns, c)

	verts := footprint(c)
	shape := cp.NewPolyShapeRaw(pw.space.StaticBody, len(verts), verts, 0)
	shape.SetSensor(c.Sensor)
	pw.space.AddShape(shape)
	pw.shapeToColumn[shape] = idx
	return idx
}

// footprint returns the column's XZ rectangle, counter-clockwise in cp
// space.
func footprint(c component.Column) []cp.Vector {
	hx, hz := float64(c.HalfExtents.X()), float64(c.HalfExtents.Z())
	sin, cos := math.Sincos(float64(c.Yaw))
	cx, cz := float64(c.Center.X()), float64(c.Center.Z())
	corners := [4][2]float64{{-hx, -hz}, {hx, -hz}, {hx, hz}, {-hx, hz}}
	verts := make([]cp.Vector, 0, 4)
	for _, p := range corners {
		// yaw about +Y maps local (x, z) to (x cos + z sin, -x sin + z cos)
		x := p[0]*cos + p[1]*sin
		z := -p[0]*sin + p[1]*cos
		verts = append(verts, cp.Vector{X: cx + x, Y: cz + z})
	}
	if signedArea(verts) < 0 {
		verts[1], verts[3] = verts[3], verts[1]
	}
	return verts
}

func signedArea(verts []cp.Vector) float64 {
	var a float64
	for i := range verts {
		j := (i + 1) % len(verts)
		a += verts[i].X*verts[j].Y - verts[j].X*verts[i].Y
	}
	return a / 2
}

// columnsUnder calls fn for every column whose footprint contains the XZ
// point.
func (pw *PhysicsWorld) columnsUnder(x, z float32, includeSensors bool, fn func(idx int)) {
	p := cp.Vector{X: float64(x), Y: float64(z)}
	bb := cp.BB{L: p.X - rayEpsilon, B: p.Y - rayEpsilon, R: p.X + rayEpsilon, T: p.Y + rayEpsilon}
	pw.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		idx, ok := pw.shapeToColumn[shape]
		if !ok {
			return
		}
		if pw.columns[idx].Sensor && !includeSensors {
			return
		}
		if shape.PointQuery(p).Distance > 0 {
			return
		}
		fn(idx)
	}, nil)
}

// CastRay finds the nearest solid column top hit by the ray. Column sides
// are not considered. Direction is reported normalized even on a miss.
func (pw *PhysicsWorld) CastRay(origin, dir mgl32.Vec3, maxDist float32) component.RayHit {
	hit := component.RayHit{Origin: origin}
	if dir.Len() < rayEpsilon {
		return hit
	}
	dir = dir.Normalize()
	hit.Direction = dir
	if pw == nil || pw.space == nil || maxDist <= 0 || dir.Y() > -rayEpsilon {
		return hit
	}

	end := origin.Add(dir.Mul(maxDist))
	bb := cp.BB{
		L: float64(min(origin.X(), end.X())),
		B: float64(min(origin.Z(), end.Z())),
		R: float64(max(origin.X(), end.X())),
		T: float64(max(origin.Z(), end.Z())),
	}

	best := maxDist
	pw.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		idx, ok := pw.shapeToColumn[shape]
		if !ok || pw.columns[idx].Sensor {
			return
		}
		top := pw.columns[idx].Top()
		t := (origin.Y() - top) / -dir.Y()
		if t < 0 || t > best {
			return
		}
		p := origin.Add(dir.Mul(t))
		if shape.PointQuery(cp.Vector{X: float64(p.X()), Y: float64(p.Z())}).Distance > 0 {
			return
		}
		best = t
		hit.Hit = true
		hit.Distance = t
		hit.Point = p
		hit.Normal = mgl32.Vec3{0, 1, 0}
	}, nil)
	return hit
}

// Step integrates every dynamic body for dt seconds, clears force
// accumulators, resolves penetration into column tops and pushes contact
// events into the world queue.
func (pw *PhysicsWorld) Step(w *World, dt float32) {
	if pw == nil || w == nil || dt <= 0 {
		return
	}
	ForEach2(w, component.TransformComponent.Kind(), component.RigidBodyComponent.Kind(), func(e Entity, t *component.Transform, rb *component.RigidBody) {
		if rb.Mass <= 0 {
			return
		}
		integrate(t, rb, pw.Gravity, dt)
		pw.resolve(w, e, t, rb)
	})
}

func integrate(t *component.Transform, rb *component.RigidBody, gravity mgl32.Vec3, dt float32) {
	accel := rb.Force.Mul(rb.InverseMass()).Add(gravity.Mul(rb.GravityScale))
	rb.LinearVelocity = rb.LinearVelocity.Add(accel.Mul(dt)).Mul(1 / (1 + dt*rb.LinearDamping))

	angAccel := rb.Torque.Mul(rb.InverseInertia())
	rb.AngularVelocity = rb.AngularVelocity.Add(angAccel.Mul(dt)).Mul(1 / (1 + dt*rb.AngularDamping))

	t.Translation = t.Translation.Add(rb.LinearVelocity.Mul(dt))
	if rb.AngularVelocity.Len() > 0 {
		spin := mgl32.Quat{W: 0, V: rb.AngularVelocity.Mul(0.5 * dt)}
		t.Rotation = t.Rotation.Add(spin.Mul(t.Rotation)).Normalize()
	}

	rb.Force = mgl32.Vec3{}
	rb.Torque = mgl32.Vec3{}
}

func (pw *PhysicsWorld) resolve(w *World, e Entity, t *component.Transform, rb *component.RigidBody) {
	pos := t.Translation
	bottom := pos.Y() - rb.HalfExtents.Y()

	support := -1
	var supportTop float32
	pw.columnsUnder(pos.X(), pos.Z(), false, func(idx int) {
		top := pw.columns[idx].Top()
		// only tops below the body centre can hold it up
		if top > pos.Y() || bottom > top+contactSlop {
			return
		}
		if support < 0 || top > supportTop {
			support = idx
			supportTop = top
		}
	})

	if support >= 0 && bottom < supportTop {
		t.Translation[1] = supportTop + rb.HalfExtents.Y()
		if rb.LinearVelocity.Y() < 0 {
			rb.LinearVelocity[1] = 0
		}
	}

	prev, was := pw.grounded[e]
	switch {
	case support >= 0 && (!was || prev != support):
		if was {
			w.events.Push(Event{Type: EventContact, Data: ContactEvent{Entity: e, Kind: ContactLeft, Column: prev}})
		}
		pw.grounded[e] = support
		w.events.Push(Event{Type: EventContact, Data: ContactEvent{Entity: e, Kind: ContactLanded, Column: support}})
	case support < 0 && was:
		delete(pw.grounded, e)
		w.events.Push(Event{Type: EventContact, Data: ContactEvent{Entity: e, Kind: ContactLeft, Column: prev}})
	}
	rb.Grounded = support >= 0
	rb.Column = support
}

// Forget drops contact state for a body, e.g. after a respawn.
func (pw *PhysicsWorld) Forget(e Entity) {
	if pw == nil {
		return
	}
	delete(pw.grounded, e)
}
