package system

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/floater/ecs"
	"github.com/milk9111/floater/ecs/component"
	"github.com/milk9111/floater/follower"
	"github.com/milk9111/floater/logging"
	"github.com/milk9111/floater/prefabs"
	"github.com/rs/zerolog"
)

const directorRunBudget = 20 * time.Millisecond

// DirectorSystem runs a camera director script once per tick. The script
// sees an `engine` map of functions and a `state` map that persists between
// ticks. Script errors are logged and never stop the simulation.
type DirectorSystem struct {
	scriptPath string
	compiled   *tengo.Compiled
	state      *tengo.Map
	log        zerolog.Logger
	failing    bool
}

func NewDirectorSystem(scriptPath string) *DirectorSystem {
	d := &DirectorSystem{
		scriptPath: scriptPath,
		log:        logging.For("director"),
	}
	if err := d.Reload(); err != nil {
		d.log.Error().Err(err).Str("script", scriptPath).Msg("director disabled")
	}
	return d
}

// Reload recompiles the script and resets its state. On error the previous
// script is dropped.
func (d *DirectorSystem) Reload() error {
	d.compiled = nil
	d.state = &tengo.Map{Value: map[string]tengo.Object{}}
	d.failing = false

	if strings.TrimSpace(d.scriptPath) == "" {
		return fmt.Errorf("director: empty script path")
	}
	src, err := prefabs.LoadScript(d.scriptPath)
	if err != nil {
		return fmt.Errorf("director: load %s: %w", d.scriptPath, err)
	}
	compiled, err := compileDirector(src)
	if err != nil {
		return fmt.Errorf("director: compile %s: %w", d.scriptPath, err)
	}
	d.compiled = compiled
	d.log.Info().Str("script", d.scriptPath).Msg("director loaded")
	return nil
}

// Script returns the script path.
func (d *DirectorSystem) Script() string {
	return d.scriptPath
}

func compileDirector(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	_ = script.Add("engine", map[string]any{})
	_ = script.Add("state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func (d *DirectorSystem) Update(w *ecs.World) {
	if w == nil || d.compiled == nil {
		return
	}
	engine := d.engine(w)
	if err := d.compiled.Set("engine", engine); err != nil {
		d.fail(err)
		return
	}
	if err := d.compiled.Set("state", d.state); err != nil {
		d.fail(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), directorRunBudget)
	defer cancel()
	if err := d.compiled.RunContext(ctx); err != nil {
		d.fail(err)
		return
	}
	if d.failing {
		d.log.Info().Msg("director recovered")
		d.failing = false
	}
}

func (d *DirectorSystem) fail(err error) {
	if !d.failing {
		d.log.Error().Err(err).Str("script", d.scriptPath).Msg("director run failed")
	}
	d.failing = true
}

func (d *DirectorSystem) engine(w *ecs.World) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["time"] = &tengo.UserFunction{Name: "time", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: worldClock(w).Elapsed}, nil
	}}

	values["player_position"] = &tengo.UserFunction{Name: "player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pos, err := FollowTarget(w)
		if err != nil {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Array{Value: []tengo.Object{
			&tengo.Float{Value: float64(pos.X())},
			&tengo.Float{Value: float64(pos.Y())},
			&tengo.Float{Value: float64(pos.Z())},
		}}, nil
	}}

	values["event"] = &tengo.UserFunction{Name: "event", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name, _ := tengo.ToString(args[0])
		h, _ := firstOf(w, component.EventHistoryComponent.Kind())
		if h.Has(strings.TrimSpace(name)) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["transition"] = &tengo.UserFunction{Name: "transition", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name, _ := tengo.ToString(args[0])
		if _, err := RequestPreset(w, strings.TrimSpace(name), "director"); err != nil {
			d.log.Debug().Err(err).Msg("director transition rejected")
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["orbit"] = &tengo.UserFunction{Name: "orbit", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		orbit, ok := orbitArg(args[0], args[1])
		ctrl, found := firstOf(w, component.FollowerControllerComponent.Kind())
		if !ok || !found {
			return tengo.FalseValue, nil
		}
		if _, err := RequestOrbit(w, ctrl.ActiveID, orbit, "director"); err != nil {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["follower_id"] = &tengo.UserFunction{Name: "follower_id", Value: func(args ...tengo.Object) (tengo.Object, error) {
		ctrl, ok := firstOf(w, component.FollowerControllerComponent.Kind())
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Int{Value: int64(ctrl.ActiveID)}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

// orbitArg reads a distance and an [x, y, z] direction.
func orbitArg(distance, direction tengo.Object) (follower.Orbit, bool) {
	dist, ok := tengo.ToFloat64(distance)
	if !ok {
		return follower.Orbit{}, false
	}
	arr, ok := direction.(*tengo.Array)
	if !ok || len(arr.Value) != 3 {
		return follower.Orbit{}, false
	}
	var dir mgl32.Vec3
	for i, v := range arr.Value {
		f, ok := tengo.ToFloat64(v)
		if !ok {
			return follower.Orbit{}, false
		}
		dir[i] = float32(f)
	}
	if dir.Len() == 0 {
		return follower.Orbit{}, false
	}
	return follower.NewOrbit(float32(dist), dir), true
}
