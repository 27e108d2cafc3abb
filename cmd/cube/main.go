package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cubeview/internal/config"
	"cubeview/internal/cube"
	"cubeview/internal/debug"
	"cubeview/internal/graphics"
	"cubeview/internal/input"
	"cubeview/internal/logger"
	"cubeview/internal/scene"
	"cubeview/internal/ui"
	"cubeview/internal/viewport"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, err := cfg.Debug.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Debug.LogFile, level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Close()

	if err := run(cfg, log); err != nil {
		log.Error("startup failed", "err", err)
		log.Close()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	sheet := ui.DefaultStylesheet()
	if cfg.Panel.Stylesheet != "" {
		s, err := ui.LoadCSS(cfg.Panel.Stylesheet)
		if err != nil {
			return err
		}
		sheet = s
	}

	state := cube.New(cfg.CubeOptions())
	bus := cube.NewBus()
	bus.Subscribe(state.Apply)
	bus.Subscribe(func(ev cube.Event) {
		log.Debug("cube event", "type", fmt.Sprintf("%T", ev), "event", ev)
	})

	view := viewport.New(cfg.Camera.Fov, cfg.Camera.Near, cfg.Camera.Far, cfg.Camera.Distance,
		cfg.Window.Width, cfg.Window.Height)
	scn := scene.New(view, state)
	panel := ui.NewCubePanel(state.Props, sheet, bus)
	pointer := &graphics.Pointer{
		Drag:    input.NewDragTracker(bus),
		Wheel:   input.NewWheel(bus, state.Options().ZoomStep),
		OnPanel: panel.Contains,
	}
	overlay := debug.New(state, log.Lines)
	overlay.ShowFPS = cfg.Debug.ShowFPS
	overlay.ShowMem = cfg.Debug.ShowMem
	overlay.ShowState = cfg.Debug.ShowCube
	overlay.ShowLog = cfg.Debug.ShowLog

	log.Info("scene ready",
		slog.Int("objects", len(state.ObjectIDs())),
		slog.String("edge_mode", string(cfg.Cube.EdgeMode)),
		slog.String("color", ui.FormatColor(state.Props.Color)))

	graphics.Run(graphics.Window{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
		Resizable: cfg.Window.Resizable,
	}, graphics.Hooks{
		Resize: func(w, h int32) {
			if view.Resize(w, h) {
				log.Debug("viewport resized", "width", w, "height", h, "aspect", view.Aspect)
			}
		},
		Update: func() {
			pointer.Poll()
			state.Tick()
		},
		Draw: func() {
			scn.Draw()
			graphics.DrawPanel(panel)
			overlay.Draw()
		},
	})
	log.Info("window closed")
	return nil
}
