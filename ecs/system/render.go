package system

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	nearPlane = 0.1
	farPlane  = 1000
)

// boxEdges indexes pairs of corners returned by boxCorners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// RenderSystem draws the world as wireframes seen from the camera follower,
// plus a HUD. It renders nothing else; there are no meshes or materials.
type RenderSystem struct {
	FovDegrees float32
	ShowHUD    bool

	hud []string
}

func NewRenderSystem(fovDegrees float32) *RenderSystem {
	if fovDegrees <= 0 {
		fovDegrees = 60
	}
	return &RenderSystem{FovDegrees: fovDegrees, ShowHUD: true}
}

// Update collects the HUD text for the next Draw.
func (r *RenderSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	r.hud = HUDLines(w)
}

// HUD returns the lines collected on the last update.
func (r *RenderSystem) HUD() []string {
	return r.hud
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)

	bounds := screen.Bounds()
	width, height := float32(bounds.Dx()), float32(bounds.Dy())
	viewProj, ok := r.viewProjection(w, width/height)
	if ok {
		p := projector{viewProj: viewProj, width: width, height: height}

		if pw := w.PhysicsWorld(); pw != nil {
			for _, c := range pw.Columns() {
				clr := color.Color(colornames.Lightslategray)
				if c.Sensor {
					clr = colornames.Gold
				}
				rot := mgl32.QuatRotate(c.Yaw, worldUp)
				p.box(screen, c.Center, c.HalfExtents, rot, clr)
			}
		}

		ecs.ForEach2(w, component.TransformComponent.Kind(), component.RigidBodyComponent.Kind(), func(_ ecs.Entity, tr *component.Transform, rb *component.RigidBody) {
			p.box(screen, tr.Translation, rb.HalfExtents, tr.Rotation, colornames.Crimson)
			p.line(screen, tr.Translation, tr.Translation.Add(tr.Forward().Mul(1.5)), colornames.White)
		})

		ecs.ForEach(w, component.RayProbeComponent.Kind(), func(_ ecs.Entity, probe *component.RayProbe) {
			res := probe.Result
			if res.Hit {
				p.line(screen, res.Origin, res.Point, colornames.Lime)
				return
			}
			p.line(screen, res.Origin, res.Origin.Add(res.Direction.Mul(probe.MaxDistance)), colornames.Red)
		})

		ecs.ForEach2(w, component.LightTagComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.LightTag, tr *component.Transform) {
			p.line(screen, tr.Translation, tr.Translation.Add(tr.Forward().Mul(3)), colornames.Yellow)
			p.cross(screen, tr.Translation, 0.5, colornames.Yellow)
		})
	}

	if pw := w.PhysicsWorld(); pw != nil {
		DrawFootprints(pw.Space(), w, screen)
	}
	if r.ShowHUD {
		ebitenutil.DebugPrintAt(screen, strings.Join(r.hud, "\n"), 10, 10)
	}
}

func (r *RenderSystem) viewProjection(w *ecs.World, aspect float32) (mgl32.Mat4, bool) {
	for _, e := range ecs.Query(w, component.CameraTagComponent.Kind(), component.TransformComponent.Kind()) {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		proj := mgl32.Perspective(mgl32.DegToRad(r.FovDegrees), aspect, nearPlane, farPlane)
		return proj.Mul4(tr.View()), true
	}
	return mgl32.Mat4{}, false
}

type projector struct {
	viewProj      mgl32.Mat4
	width, height float32
}

// project maps a world point to screen pixels. Points behind the near
// plane are rejected.
func (p projector) project(v mgl32.Vec3) (float32, float32, bool) {
	clip := p.viewProj.Mul4x1(v.Vec4(1))
	if clip.W() <= nearPlane {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return (ndc.X() + 1) / 2 * p.width, (1 - ndc.Y()) / 2 * p.height, true
}

func (p projector) line(dst *ebiten.Image, a, b mgl32.Vec3, clr color.Color) {
	x0, y0, ok0 := p.project(a)
	x1, y1, ok1 := p.project(b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(dst, x0, y0, x1, y1, 1, clr, true)
}

func (p projector) box(dst *ebiten.Image, center, half mgl32.Vec3, rot mgl32.Quat, clr color.Color) {
	corners := boxCorners(center, half, rot)
	for _, e := range boxEdges {
		p.line(dst, corners[e[0]], corners[e[1]], clr)
	}
}

func (p projector) cross(dst *ebiten.Image, at mgl32.Vec3, size float32, clr color.Color) {
	for _, axis := range []mgl32.Vec3{{size, 0, 0}, {0, size, 0}, {0, 0, size}} {
		p.line(dst, at.Sub(axis), at.Add(axis), clr)
	}
}

// boxCorners returns the eight corners; bit 0 of the index picks +X, bit 1
// +Y and bit 2 +Z.
func boxCorners(center, half mgl32.Vec3, rot mgl32.Quat) [8]mgl32.Vec3 {
	var out [8]mgl32.Vec3
	for i := range out {
		local := mgl32.Vec3{-half.X(), -half.Y(), -half.Z()}
		if i&1 != 0 {
			local[0] = half.X()
		}
		if i&2 != 0 {
			local[1] = half.Y()
		}
		if i&4 != 0 {
			local[2] = half.Z()
		}
		out[i] = center.Add(rot.Rotate(local))
	}
	return out
}

// HUDLines describes the followers and the controlled body.
func HUDLines(w *ecs.World) []string {
	lines := []string{fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())}

	clk := worldClock(w)
	active := uint32(0)
	if ctrl, ok := firstOf(w, component.FollowerControllerComponent.Kind()); ok {
		active = ctrl.ActiveID
	}
	if _, err := FollowTarget(w); err != nil {
		lines = append(lines, "target: "+err.Error())
	}

	ecs.ForEach3(w,
		component.FollowerComponent.Kind(),
		component.FollowerConfigComponent.Kind(),
		component.FollowerPositionComponent.Kind(),
		func(_ ecs.Entity, f *component.Follower, cfg *component.FollowerConfig, pos *component.FollowerPosition) {
			marker := " "
			if f.ID == active {
				marker = ">"
			}
			o := pos.Effective(*cfg, clk.Elapsed)
			lines = append(lines, fmt.Sprintf("%s%d %-6s %-8s %-13s d=%.1f dir=(%.2f %.2f %.2f)",
				marker, f.ID, f.Name, f.Kind, pos.State.Phase(), o.Distance, o.Direction.X(), o.Direction.Y(), o.Direction.Z()))
		})

	ecs.ForEach3(w,
		component.RayProbeComponent.Kind(),
		component.ControllerSettingsComponent.Kind(),
		component.RigidBodyComponent.Kind(),
		func(_ ecs.Entity, probe *component.RayProbe, s *component.ControllerSettings, rb *component.RigidBody) {
			ride := "miss"
			if probe.Result.Hit {
				ride = fmt.Sprintf("%+.2f", s.RideHeight-probe.Result.Distance)
			}
			lines = append(lines, fmt.Sprintf("ride error %s  speed %.2f  grounded %v", ride, rb.LinearVelocity.Len(), rb.Grounded))
		})
	return lines
}
