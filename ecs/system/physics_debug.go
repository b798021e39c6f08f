package system

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4

	minimapSize   = 180
	minimapMargin = 10
	minimapScale  = 4
)

// DrawFootprints draws the column footprint index as a top-down minimap
// centred on the follower target, with each body as a dot.
func DrawFootprints(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}
	b := screen.Bounds()
	originX := float64(b.Dx() - minimapSize - minimapMargin)
	originY := float64(minimapMargin)
	vector.FillRect(screen, float32(originX), float32(originY), minimapSize, minimapSize, color.RGBA{A: 160}, false)
	clip := screen.SubImage(image.Rect(int(originX), int(originY), int(originX)+minimapSize, int(originY)+minimapSize)).(*ebiten.Image)

	center, _ := FollowTarget(w)
	drawer := &footprintDrawer{
		screen:  clip,
		centerX: float64(center.X()),
		centerZ: float64(center.Z()),
		originX: originX + minimapSize/2,
		originY: originY + minimapSize/2,
		scale:   minimapScale,
	}
	cp.DrawSpace(space, drawer)

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.RigidBodyComponent.Kind(), func(_ ecs.Entity, tr *component.Transform, _ *component.RigidBody) {
		p := cp.Vector{X: float64(tr.Translation.X()), Y: float64(tr.Translation.Z())}
		drawer.DrawDot(debugDotSize, p, cp.FColor{R: 1, G: 0.2, B: 0.2, A: 1}, nil)
	})
}

type footprintDrawer struct {
	screen           *ebiten.Image
	centerX, centerZ float64
	originX, originY float64
	scale            float64
}

func (d *footprintDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
}

func (d *footprintDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *footprintDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
}

func (d *footprintDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *footprintDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	x, y := d.toScreen(pos)
	half := float32(size / 2)
	vector.FillRect(d.screen, x-half, y-half, float32(size), float32(size), toNRGBA(fill), false)
}

func (d *footprintDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *footprintDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *footprintDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Sensor() {
		return cp.FColor{R: 1, G: 0.85, B: 0, A: 0.5}
	}
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *footprintDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *footprintDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *footprintDrawer) Data() interface{} {
	return nil
}

func (d *footprintDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, 1, toNRGBA(c), false)
}

func (d *footprintDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *footprintDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

// toScreen maps footprint space (world X, world Z) to minimap pixels.
func (d *footprintDrawer) toScreen(v cp.Vector) (float32, float32) {
	return float32(d.originX + (v.X-d.centerX)*d.scale), float32(d.originY + (v.Y-d.centerZ)*d.scale)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
