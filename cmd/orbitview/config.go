package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraConfig holds the initial orbit and the controller speeds.
type CameraConfig struct {
	Position   [3]float32 `json:"position"`
	Target     [3]float32 `json:"target"`
	FovDegrees float32    `json:"fov_degrees"`
	ZoomSpeed  float32    `json:"zoom_speed"`
	PanSpeed   float32    `json:"pan_speed"`
	PivotSpeed float32    `json:"pivot_speed"`
}

// GridConfig holds the ground grid size.
type GridConfig struct {
	HalfLines int     `json:"half_lines"`
	Spacing   float32 `json:"spacing"`
}

// Config holds all settings of the orbit viewer.
type Config struct {
	Title       string  `json:"title"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	MinWidth    int     `json:"min_width"`
	MinHeight   int     `json:"min_height"`
	MaxWidth    int     `json:"max_width"`
	MaxHeight   int     `json:"max_height"`
	PresentMode string  `json:"present_mode"` // "vsync" or "uncapped"
	MSAA        int     `json:"msaa"`         // 1 or 4
	FrameLimit  float64 `json:"frame_limit"`
	Profile     bool    `json:"profile"`

	Camera CameraConfig `json:"camera"`
	Grid   GridConfig   `json:"grid"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width       int
	Height      int
	PresentMode string
	Profile     bool
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides and fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.PresentMode != "" {
		c.PresentMode = flags.PresentMode
	}
	if flags.Profile {
		c.Profile = true
	}

	c.Title = common.Coalesce(c.Title, "Orbit Viewer")
	c.Width = common.Coalesce(c.Width, 1280)
	c.Height = common.Coalesce(c.Height, 720)
	c.MinWidth = common.Coalesce(c.MinWidth, 320)
	c.MinHeight = common.Coalesce(c.MinHeight, 240)
	c.MaxWidth = common.Coalesce(c.MaxWidth, 3840)
	c.MaxHeight = common.Coalesce(c.MaxHeight, 2160)
	c.PresentMode = strings.ToLower(common.Coalesce(c.PresentMode, "vsync"))
	c.MSAA = common.Coalesce(c.MSAA, int(renderer.MSAA4x))

	c.Camera.Position = common.Coalesce(c.Camera.Position, [3]float32{4, 3, 6})
	c.Camera.FovDegrees = common.Coalesce(c.Camera.FovDegrees, 45)
	c.Camera.ZoomSpeed = common.Coalesce(c.Camera.ZoomSpeed, 0.5)
	c.Camera.PanSpeed = common.Coalesce(c.Camera.PanSpeed, 3.0)
	c.Camera.PivotSpeed = common.Coalesce(c.Camera.PivotSpeed, 2.0)

	c.Grid.HalfLines = common.Coalesce(c.Grid.HalfLines, 10)
	c.Grid.Spacing = common.Coalesce(c.Grid.Spacing, 1)
}

// Validate reports settings the viewer cannot start with. Call after Resolve.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.MinWidth > c.MaxWidth || c.MinHeight > c.MaxHeight {
		errs = append(errs, fmt.Errorf("config: min size %dx%d exceeds max size %dx%d", c.MinWidth, c.MinHeight, c.MaxWidth, c.MaxHeight))
	}
	if _, err := c.presentMode(); err != nil {
		errs = append(errs, err)
	}
	if c.MSAA != int(renderer.MSAAOff) && c.MSAA != int(renderer.MSAA4x) {
		errs = append(errs, fmt.Errorf("config: msaa %d must be 1 or 4", c.MSAA))
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("config: fov_degrees %v must be in (0, 180)", c.Camera.FovDegrees))
	}
	if c.Camera.Position == c.Camera.Target {
		errs = append(errs, errors.New("config: camera position must differ from target"))
	}
	return errors.Join(errs...)
}

func (c Config) windowOptions() []window.WindowBuilderOption {
	return []window.WindowBuilderOption{
		window.WithTitle(c.Title),
		window.WithWidth(c.Width),
		window.WithHeight(c.Height),
		window.WithMinSize(c.MinWidth, c.MinHeight),
		window.WithMaxSize(c.MaxWidth, c.MaxHeight),
	}
}

func (c Config) presentMode() (renderer.PresentMode, error) {
	switch c.PresentMode {
	case "vsync":
		return renderer.PresentModeVSync, nil
	case "uncapped":
		return renderer.PresentModeUncapped, nil
	default:
		return 0, fmt.Errorf("config: unknown present_mode %q", c.PresentMode)
	}
}

func (c CameraConfig) position() mgl32.Vec3 {
	return mgl32.Vec3(c.Position)
}

func (c CameraConfig) target() mgl32.Vec3 {
	return mgl32.Vec3(c.Target)
}
