// Command orbitview opens a window with a ground grid and an orbit camera.
// Left-drag pivots around the target, right-drag pans, the wheel zooms, R resets the view and
// Esc quits.
package main

import (
	"flag"
	"log"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Window width in pixels (default: 1280)")
	height := flag.Int("height", 0, "Window height in pixels (default: 720)")
	present := flag.String("present", "", "Present mode: vsync or uncapped (default: vsync)")
	profile := flag.Bool("profile", false, "Log frame rate and camera state once per second")
	flag.Parse()

	var cfg Config
	if *configFile != "" {
		var err error
		cfg, err = Load(*configFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}
	cfg.Resolve(Flags{
		Width:       *width,
		Height:      *height,
		PresentMode: *present,
		Profile:     *profile,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	presentMode, _ := cfg.presentMode()

	w := window.NewWindow(cfg.windowOptions()...)

	cam := camera.NewCamera(
		camera.WithController(newController(cfg.Camera)),
		camera.WithPerspective(mgl32.DegToRad(cfg.Camera.FovDegrees), float32(w.Width())/float32(w.Height()), 0.1, 1000),
	)

	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, w,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(renderer.MSAASampleCount(cfg.MSAA)),
		renderer.WithGrid(cfg.Grid.HalfLines, cfg.Grid.Spacing),
		renderer.WithTargetMarker(0.1*cfg.Grid.Spacing),
	)
	if err != nil {
		_ = w.Close()
		log.Fatalf("Error creating renderer: %v", err)
	}

	eng := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithCamera(cam),
		engine.WithRenderer(r),
		engine.WithProfiling(cfg.Profile),
		engine.WithRenderFrameLimit(cfg.FrameLimit),
	)

	eng.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyR:
			cam.SetController(newController(cfg.Camera))
		case common.KeyEsc:
			eng.Quit()
		}
	})

	log.Println("Starting orbit viewer")
	eng.Run()
}

func newController(c CameraConfig) camera.CameraController {
	return camera.NewCameraController(c.position(), c.target(),
		camera.WithZoomSpeed(c.ZoomSpeed),
		camera.WithPanSpeed(c.PanSpeed),
		camera.WithPivotSpeed(c.PivotSpeed),
	)
}
