package main

import (
	"flag"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"SketchBoard/internal/board"
	"SketchBoard/internal/config"
	"SketchBoard/internal/logging"
	"SketchBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML config file; reloaded when it changes")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)

	level := logging.ParseLevel(cfg.LogLevel)
	if *debug {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if cfgErr != nil {
		logging.Logger().Warn("using default config", "path", *configPath, "err", cfgErr)
	}

	var watcher *config.Watcher
	if *configPath != "" {
		w, err := config.Watch(*configPath)
		if err != nil {
			logging.Logger().Warn("config reload disabled", "path", *configPath, "err", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	b := board.New(cfg)
	ui.RunApp(app.NewWithID("io.sketchboard"), b, watcher)
}
