package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/prefabs"
)

func main() {
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for spec and script overrides")
	watch := flag.Bool("watch", true, "reload specs and scripts when files in -prefabs change")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	prefabs.OverrideDir = *prefabDir

	game, err := NewGame(log)
	if err != nil {
		log.Error("sandbox: start", "err", err)
		os.Exit(1)
	}
	defer game.Close()

	if *watch {
		game.Watch(*prefabDir)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("topdown sandbox")

	if err := ebiten.RunGame(game); err != nil {
		log.Error("sandbox: run", "err", err)
		os.Exit(1)
	}
}
