package main

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/floater/common"
	"github.com/milk9111/floater/config"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/ecs/entity"
	"github.com/milk9111/floater/ecs/system"
	"github.com/milk9111/floater/logging"
	"github.com/milk9111/floater/prefabs"
	"github.com/rs/zerolog"
	"golang.design/x/clipboard"
)

type Game struct {
	cfg   *config.Config
	log   zerolog.Logger
	world *ecs.World
	scene *entity.Scene

	scheduler *ecs.Scheduler
	input     system.InputSource
	render    *system.RenderSystem
	director  *system.DirectorSystem
	watcher   *prefabs.Watcher

	paused  bool
	pauseUI *ebitenui.UI

	clipboardReady bool
}

func NewGame(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:   cfg,
		log:   logging.For("game"),
		world: ecs.NewWorld(),
		input: system.NewEbitenSource(),
	}

	scene, err := entity.BuildScene(g.world)
	if err != nil {
		return nil, err
	}
	g.scene = scene

	g.render = system.NewRenderSystem(cfg.Camera.FovDegrees)
	g.render.ShowHUD = cfg.Debug

	g.scheduler = ecs.NewScheduler(
		system.NewClockSystem(cfg.TPS),
		system.NewInputSystem(g.input),
		system.NewFollowerControllerSystem(g.input),
	)
	if cfg.Director.Enabled {
		g.director = system.NewDirectorSystem(cfg.Director.Script)
		g.scheduler.Add(g.director)
	}
	g.scheduler.Add(system.NewFollowerSystem())
	g.scheduler.Add(system.NewRayProbeSystem())
	g.scheduler.Add(system.NewFloatingControllerSystem())
	g.scheduler.Add(system.NewPhysicsSystem())
	g.scheduler.Add(system.NewRespawnSystem())
	g.scheduler.Add(system.NewEventLogSystem())
	g.scheduler.Add(g.render)

	if cfg.HotReload && prefabs.Dir() != "" {
		dir := prefabs.Dir()
		w, err := prefabs.NewWatcher(dir, filepath.Join(dir, "scripts"))
		if err != nil {
			g.log.Warn().Err(err).Str("dir", dir).Msg("hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		g.log.Warn().Err(err).Msg("clipboard unavailable, orbit export disabled")
	} else {
		g.clipboardReady = true
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if g.input.JustPressed(system.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.input.JustPressed(system.ActionToggleDebug) {
		g.render.ShowHUD = !g.render.ShowHUD
	}
	if g.input.JustPressed(system.ActionCopyPreset) {
		g.copyActiveOrbit()
	}
	g.applyReloads()

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scheduler.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// applyReloads picks up prefab edits. Presets and the director script
// reload in place; anything else needs a restart.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for _, changed := range g.watcher.Poll() {
		switch {
		case changed == prefabs.PresetsFile:
			spec, err := prefabs.LoadPresetsSpec()
			if err != nil {
				g.log.Error().Err(err).Msg("presets reload failed, keeping previous")
				continue
			}
			entity.ReplacePresets(g.world, entity.PresetsFromSpec(spec))
			g.log.Info().Int("count", len(spec.Presets)).Msg("presets reloaded")
		case g.director != nil && path.Base(changed) == path.Base(g.director.Script()):
			if err := g.director.Reload(); err != nil {
				g.log.Error().Err(err).Msg("director reload failed")
			}
		default:
			g.log.Info().Str("file", changed).Msg("prefab changed, restart to apply")
		}
	}
}

// copyActiveOrbit puts the active follower's orbit on the clipboard as a
// presets.yaml entry.
func (g *Game) copyActiveOrbit() {
	ctrl, ok := ecs.Get(g.world, g.scene.Root, component.FollowerControllerComponent.Kind())
	if !ok {
		return
	}
	clock, _ := ecs.Get(g.world, g.scene.Root, component.ClockComponent.Kind())

	for _, e := range ecs.Query(g.world,
		component.FollowerComponent.Kind(),
		component.FollowerConfigComponent.Kind(),
		component.FollowerPositionComponent.Kind(),
	) {
		f, _ := ecs.Get(g.world, e, component.FollowerComponent.Kind())
		if f.ID != ctrl.ActiveID {
			continue
		}
		cfg, _ := ecs.Get(g.world, e, component.FollowerConfigComponent.Kind())
		pos, _ := ecs.Get(g.world, e, component.FollowerPositionComponent.Kind())
		orbit := pos.Effective(*cfg, clock.Elapsed)

		data, err := prefabs.MarshalPreset(prefabs.PresetSpec{
			Name:      fmt.Sprintf("%s_%d", f.Name, clock.Tick),
			Distance:  orbit.Distance,
			Direction: orbit.Direction,
		})
		if err != nil {
			g.log.Error().Err(err).Msg("export orbit")
			return
		}
		if g.clipboardReady {
			clipboard.Write(clipboard.FmtText, data)
		}
		g.log.Info().Str("follower", f.Name).Str("preset", string(data)).Msg("orbit copied")
		return
	}
}
