package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/floater/config"
	"github.com/milk9111/floater/logging"
	"github.com/milk9111/floater/prefabs"
)

func main() {
	configDir := flag.String("config", ".", "directory holding floater.yaml")
	debug := flag.Bool("debug", false, "show the debug HUD")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("load config")
	}
	if *debug {
		cfg.Debug = true
	}

	log := logging.Setup(cfg.LogLevel, os.Stderr)
	if used := config.Used(); used != "" {
		log.Info().Str("file", used).Msg("config loaded")
	}
	prefabs.SetDir(cfg.PrefabsDir)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build scene")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
