package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

type engine struct {
	running  bool
	quitOnce sync.Once // Ensures the window close is only requested once

	window   window.Window
	input    *window.InputTracker
	camera   camera.Camera
	renderer renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(deltaTime float32)
	keyCallback   func(keyCode uint32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame        time.Time
	lastRenderErr    string

	now   func() time.Time
	sleep func(time.Duration)
}

// Engine drives the orbit viewer. Every iteration of the window message loop runs one frame on
// the window's thread: input snapshot, camera update, frame callback, render, profiler.
type Engine interface {
	// Window returns the window the engine runs on.
	//
	// Returns:
	//   - window.Window: the window
	Window() window.Window

	// Camera returns the camera updated each frame.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Renderer returns the renderer drawing each frame, or nil when running headless.
	//
	// Returns:
	//   - renderer.Renderer: the renderer or nil
	Renderer() renderer.Renderer

	// EnableProfiler turns on the once-per-interval profiler log line.
	EnableProfiler()

	// DisableProfiler turns off the profiler log line.
	DisableProfiler()

	// SetFrameCallback sets a function run after the camera update of every frame.
	//
	// Parameters:
	//   - callback: function receiving the frame delta in seconds
	SetFrameCallback(callback func(deltaTime float32))

	// SetKeyDownCallback sets a function run for every key press.
	//
	// Parameters:
	//   - callback: function receiving the key code (see common.Key*)
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run blocks running frames until the window closes or Quit is called, then releases the
	// renderer and closes the window.
	Run()

	// Quit stops the frame loop after the current frame. Safe to call more than once.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine with the specified options and wires the window's input,
// resize, key and update callbacks. A camera with a default orbit controller is created when
// none is supplied.
//
// Parameters:
//   - options: functional options to configure the engine
//
// Returns:
//   - Engine: the configured engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		input: window.NewInputTracker(),
		now:   time.Now,
		sleep: time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.camera == nil {
		e.camera = camera.NewCamera(camera.WithController(camera.NewDefaultCameraController()))
	}
	e.profiler = profiler.NewProfiler(profiler.WithStatus(e.cameraStatus))

	if e.window != nil {
		e.input.Attach(e.window)
		e.window.SetResizeCallback(e.resize)
		e.window.SetKeyDownCallback(func(keyCode uint32) {
			if e.keyCallback != nil {
				e.keyCallback(keyCode)
			}
		})
		e.window.SetUpdateCallback(e.frame)
		if w, h := e.window.Width(), e.window.Height(); w > 0 && h > 0 {
			e.camera.SetAspect(float32(w) / float32(h))
		}
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}

func (e *engine) SetKeyDownCallback(callback func(keyCode uint32)) {
	e.keyCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Run() {
	e.running = true
	e.lastFrame = e.now()
	e.window.ProcessMessages()
	e.running = false

	if e.renderer != nil {
		e.renderer.Release()
	}
	if err := e.window.Close(); err != nil {
		log.Printf("[Engine] failed to close window: %v", err)
	}
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.running = false
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

// frame is the window update callback. It measures the frame delta, runs one step and
// sleeps off the remainder of the frame budget when a limit is set.
func (e *engine) frame() {
	if !e.running {
		return
	}
	start := e.now()
	dt := float32(start.Sub(e.lastFrame).Seconds())
	e.lastFrame = start

	e.step(dt)

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(start); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

// step runs one frame with the given delta.
func (e *engine) step(dt float32) {
	// Cursor positions arrive in screen coordinates, not framebuffer pixels.
	width, height := e.window.Size()
	in := e.input.Snapshot(width, height, dt)
	e.camera.Update(in)

	if e.frameCallback != nil {
		e.frameCallback(dt)
	}

	if e.renderer != nil {
		var target mgl32.Vec3
		if ctrl := e.camera.Controller(); ctrl != nil {
			target = ctrl.Target()
		}
		if err := e.renderer.Render(e.camera.Uniform(), target); err != nil {
			if msg := err.Error(); msg != e.lastRenderErr {
				log.Printf("[Engine] render: %v", err)
				e.lastRenderErr = msg
			}
		} else {
			e.lastRenderErr = ""
		}
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}
}

func (e *engine) resize(width, height int) {
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	if width > 0 && height > 0 {
		e.camera.SetAspect(float32(width) / float32(height))
	}
}

func (e *engine) cameraStatus() string {
	ctrl := e.camera.Controller()
	if ctrl == nil {
		return "Camera: fixed"
	}
	s := ctrl.SphericalPosition()
	t := ctrl.Target()
	return fmt.Sprintf("Camera: %s | Radius: %.2f | Target: (%.2f, %.2f, %.2f)", ctrl.State(), s.Radius, t.X(), t.Y(), t.Z())
}
