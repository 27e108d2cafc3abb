// Package config loads startup settings for the viewer. Settings are read once; nothing the
// user changes at runtime is written back.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"

	"cubeview/internal/cube"
	"cubeview/internal/ui"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/cube.yaml"

// Config is the whole startup configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Cube   CubeConfig   `yaml:"cube"`
	Panel  PanelConfig  `yaml:"panel"`
	Debug  DebugConfig  `yaml:"debug"`
}

// WindowConfig sizes and titles the window. TargetFPS 0 leaves the frame rate uncapped.
type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
	Resizable bool   `yaml:"resizable"`
}

// CameraConfig describes the perspective camera. Fov is vertical, in degrees.
type CameraConfig struct {
	Fov      float32 `yaml:"fov"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
}

// CubeConfig holds the cube's starting size, colours and interaction steps.
type CubeConfig struct {
	Size            float32       `yaml:"size"`
	MinSize         float32       `yaml:"min_size"`
	ZoomStep        float32       `yaml:"zoom_step"`
	SpinStep        float32       `yaml:"spin_step"`
	DragSensitivity float32       `yaml:"drag_sensitivity"`
	RotateSpeed     float32       `yaml:"rotate_speed"`
	Color           string        `yaml:"color"`
	EdgeColor       string        `yaml:"edge_color"`
	EdgeMode        cube.EdgeMode `yaml:"edge_mode"`
}

// PanelConfig points at an optional stylesheet; empty means the built-in one.
type PanelConfig struct {
	Stylesheet string `yaml:"stylesheet"`
}

// DebugConfig switches overlay lines on and sets where and how much is logged.
type DebugConfig struct {
	ShowFPS  bool   `yaml:"show_fps"`
	ShowMem  bool   `yaml:"show_mem"`
	ShowCube bool   `yaml:"show_cube"`
	ShowLog  bool   `yaml:"show_log"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Default returns the demo's built-in settings.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "cubeview",
			TargetFPS: 60,
			Resizable: true,
		},
		Camera: CameraConfig{
			Fov:      75,
			Near:     0.1,
			Far:      1000,
			Distance: 500,
		},
		Cube: CubeConfig{
			Size:            200,
			MinSize:         10,
			ZoomStep:        5,
			SpinStep:        0.01,
			DragSensitivity: 0.01,
			RotateSpeed:     0.2,
			Color:           "#ff0000",
			EdgeColor:       "#000000",
			EdgeMode:        cube.EdgesShared,
		},
		Debug: DebugConfig{
			LogLevel: "info",
			LogFile:  "logs/cubeview.txt",
		},
	}
}

// Load reads path over Default(). A missing file yields the defaults; unreadable,
// malformed or invalid files are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and parses colours and the log level.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("target_fps %d must not be negative", c.Window.TargetFPS))
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %g must be in (0, 180)", c.Camera.Fov))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera planes near=%g far=%g must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if c.Cube.MinSize <= 0 {
		errs = append(errs, fmt.Errorf("cube min_size %g must be positive", c.Cube.MinSize))
	}
	if c.Cube.Size < c.Cube.MinSize {
		errs = append(errs, fmt.Errorf("cube size %g is below min_size %g", c.Cube.Size, c.Cube.MinSize))
	}
	if c.Cube.ZoomStep <= 0 {
		errs = append(errs, fmt.Errorf("cube zoom_step %g must be positive", c.Cube.ZoomStep))
	}
	if _, err := ui.ParseColor(c.Cube.Color); err != nil {
		errs = append(errs, fmt.Errorf("cube color: %w", err))
	}
	if _, err := ui.ParseColor(c.Cube.EdgeColor); err != nil {
		errs = append(errs, fmt.Errorf("cube edge_color: %w", err))
	}
	switch c.Cube.EdgeMode {
	case cube.EdgesShared, cube.EdgesPerFace:
	default:
		errs = append(errs, fmt.Errorf("cube edge_mode %q must be %q or %q", c.Cube.EdgeMode, cube.EdgesShared, cube.EdgesPerFace))
	}
	if _, err := c.Debug.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (d DebugConfig) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(d.LogLevel)); err != nil {
		return l, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// CubeOptions converts the cube section. Call after Validate.
func (c Config) CubeOptions() cube.Options {
	return cube.Options{
		Size:            c.Cube.Size,
		MinSize:         c.Cube.MinSize,
		ZoomStep:        c.Cube.ZoomStep,
		SpinStep:        c.Cube.SpinStep,
		DragSensitivity: c.Cube.DragSensitivity,
		RotateSpeed:     c.Cube.RotateSpeed,
		Color:           mustColor(c.Cube.Color),
		EdgeColor:       mustColor(c.Cube.EdgeColor),
		EdgeMode:        c.Cube.EdgeMode,
	}
}

func mustColor(s string) color.RGBA {
	c, err := ui.ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
