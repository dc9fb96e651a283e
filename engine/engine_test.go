package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// fakeWindow drives the engine's callbacks without a platform window.
type fakeWindow struct {
	width, height int
	// sizeWidth and sizeHeight override the screen-coordinate size; zero means same as the framebuffer.
	sizeWidth, sizeHeight int
	maxFrames     int
	frames        int
	closeRequests int
	closed        bool

	onUpdate      func()
	onResize      func(width, height int)
	onScroll      func(dx, dy float32)
	onKeyDown     func(keyCode uint32)
	onMouseButton func(button int, pressed bool)
	onMouseMove   func(x, y float64)
	onCursorEnter func(entered bool)

	// beforeFrame runs ahead of each update callback with the zero-based frame index.
	beforeFrame func(i int)
}

func (f *fakeWindow) SetUpdateCallback(cb func()) { f.onUpdate = cb }
func (f *fakeWindow) SetResizeCallback(cb func(width, height int)) { f.onResize = cb }
func (f *fakeWindow) SetScrollCallback(cb func(dx, dy float32)) { f.onScroll = cb }
func (f *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32)) { f.onKeyDown = cb }
func (f *fakeWindow) SetMouseButtonCallback(cb func(button int, pressed bool)) { f.onMouseButton = cb }
func (f *fakeWindow) SetMouseMoveCallback(cb func(x, y float64)) { f.onMouseMove = cb }
func (f *fakeWindow) SetCursorEnterCallback(cb func(entered bool)) { f.onCursorEnter = cb }
func (f *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (f *fakeWindow) IsRunning() bool { return f.closeRequests == 0 && !f.closed }
func (f *fakeWindow) RequestClose() { f.closeRequests++ }
func (f *fakeWindow) Width() int { return f.width }
func (f *fakeWindow) Height() int { return f.height }

func (f *fakeWindow) Size() (int, int) {
	if f.sizeWidth == 0 && f.sizeHeight == 0 {
		return f.width, f.height
	}
	return f.sizeWidth, f.sizeHeight
}

func (f *fakeWindow) Close() error {
	f.closed = true
	return nil
}

func (f *fakeWindow) ProcessMessages() {
	for f.IsRunning() && f.frames < f.maxFrames {
		if f.beforeFrame != nil {
			f.beforeFrame(f.frames)
		}
		if f.onUpdate != nil {
			f.onUpdate()
		}
		f.frames++
	}
}

var _ window.Window = &fakeWindow{}

// fakeRenderer records what the engine asks it to draw.
type fakeRenderer struct {
	uniforms []camera.GPUCameraUniform
	targets  []mgl32.Vec3
	resizes  [][2]int
	released int
	err      error
}

func (f *fakeRenderer) Resize(width, height int) {
	f.resizes = append(f.resizes, [2]int{width, height})
}

func (f *fakeRenderer) Render(uniform camera.GPUCameraUniform, target mgl32.Vec3) error {
	f.uniforms = append(f.uniforms, uniform)
	f.targets = append(f.targets, target)
	return f.err
}

func (f *fakeRenderer) Release() { f.released++ }

func newTestEngine(fw *fakeWindow, r renderer.Renderer, cam camera.Camera) *engine {
	e := NewEngine(WithWindow(fw), WithRenderer(r), WithCamera(cam)).(*engine)
	clock := time.Unix(0, 0)
	e.now = func() time.Time {
		clock = clock.Add(10 * time.Millisecond)
		return clock
	}
	e.sleep = func(time.Duration) {}
	return e
}

func TestNewEngineWiresWindow(t *testing.T) {
	fw := &fakeWindow{width: 1000, height: 500}
	e := NewEngine(WithWindow(fw))

	if fw.onUpdate == nil || fw.onResize == nil || fw.onKeyDown == nil {
		t.Fatalf("NewEngine: expected update, resize and key callbacks registered")
	}
	if fw.onMouseButton == nil || fw.onMouseMove == nil || fw.onScroll == nil || fw.onCursorEnter == nil {
		t.Fatalf("NewEngine: expected pointer callbacks registered")
	}
	if e.Camera() == nil || e.Camera().Controller() == nil {
		t.Fatalf("NewEngine: expected default camera with orbit controller")
	}
	p := e.Camera().Projection().(*camera.PerspectiveProjection)
	if p.Aspect != 2 {
		t.Errorf("Aspect: expected 2 from window size, got %v", p.Aspect)
	}
	if e.Renderer() != nil {
		t.Errorf("Renderer: expected nil without WithRenderer")
	}
}

func TestEngineRunRendersAndShutsDown(t *testing.T) {
	fw := &fakeWindow{width: 800, height: 600, maxFrames: 3}
	fr := &fakeRenderer{}
	ctrl := camera.NewCameraController(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{1, 0, 0})
	e := newTestEngine(fw, fr, camera.NewCamera(camera.WithController(ctrl)))

	var deltas []float32
	e.SetFrameCallback(func(dt float32) { deltas = append(deltas, dt) })
	e.Run()

	if len(fr.uniforms) != 3 {
		t.Fatalf("Render: expected 3 frames, got %d", len(fr.uniforms))
	}
	if fr.targets[0] != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Render target: expected controller target, got %v", fr.targets[0])
	}
	if fr.uniforms[2].ViewProj != e.Camera().ViewProjectionMatrix() {
		t.Errorf("Render uniform: expected camera view-projection")
	}
	if len(deltas) != 3 || math.Abs(float64(deltas[1])-0.01) > 1e-6 {
		t.Errorf("Frame deltas: expected 0.01s steps, got %v", deltas)
	}
	if fr.released != 1 || !fw.closed {
		t.Errorf("Shutdown: expected renderer released and window closed, got released=%d closed=%v", fr.released, fw.closed)
	}
}

func TestEngineFeedsInputToController(t *testing.T) {
	fw := &fakeWindow{width: 1000, height: 1000, maxFrames: 3}
	fr := &fakeRenderer{}
	ctrl := camera.NewCameraController(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})
	e := newTestEngine(fw, fr, camera.NewCamera(camera.WithController(ctrl)))

	var states []string
	e.SetFrameCallback(func(float32) { states = append(states, ctrl.State().String()) })
	fw.beforeFrame = func(i int) {
		switch i {
		case 0:
			fw.onMouseMove(500, 500)
			fw.onMouseButton(common.MouseButtonSecondary, true)
		case 1:
			fw.onMouseMove(600, 500)
		case 2:
			fw.onMouseButton(common.MouseButtonSecondary, false)
		}
	}
	e.Run()

	expected := []string{"panning", "panning", "idle"}
	for i := range expected {
		if i >= len(states) || states[i] != expected[i] {
			t.Fatalf("States: expected %v, got %v", expected, states)
		}
	}
	if ctrl.Target().X() >= 0 {
		t.Errorf("Pan: expected target moved towards -X when dragging right, got %v", ctrl.Target())
	}
}

func TestEngineNormalizesCursorByWindowSize(t *testing.T) {
	// 2x content scale: the framebuffer is twice the size of the window the cursor moves in.
	fw := &fakeWindow{width: 1600, height: 1200, sizeWidth: 800, sizeHeight: 600, maxFrames: 2}
	ctrl := camera.NewCameraController(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, camera.WithPivotSpeed(0.5))
	e := newTestEngine(fw, &fakeRenderer{}, camera.NewCamera(camera.WithController(ctrl)))

	fw.beforeFrame = func(i int) {
		switch i {
		case 0:
			fw.onMouseMove(400, 200)
			fw.onMouseButton(common.MouseButtonPrimary, true)
		case 1:
			fw.onMouseMove(400, 500)
		}
	}
	e.Run()

	// dPhi = -(300/600)·π·0.5 = -π/4 from the equator.
	if phi := ctrl.SphericalPosition().Phi; math.Abs(float64(phi)-math.Pi/4) > 1e-4 {
		t.Errorf("Pivot on scaled display: expected phi π/4, got %v", phi)
	}

	p := e.Camera().Projection().(*camera.PerspectiveProjection)
	if p.Aspect != 1600.0/1200.0 {
		t.Errorf("Aspect: expected framebuffer ratio, got %v", p.Aspect)
	}
}

func TestEngineResize(t *testing.T) {
	fw := &fakeWindow{width: 800, height: 600}
	fr := &fakeRenderer{}
	e := newTestEngine(fw, fr, camera.NewCamera(camera.WithController(camera.NewDefaultCameraController())))

	fw.onResize(400, 400)
	fw.onResize(0, 0)

	if len(fr.resizes) != 2 || fr.resizes[0] != [2]int{400, 400} || fr.resizes[1] != [2]int{0, 0} {
		t.Errorf("Resize: expected renderer resized twice, got %v", fr.resizes)
	}
	p := e.Camera().Projection().(*camera.PerspectiveProjection)
	if p.Aspect != 1 {
		t.Errorf("Resize: expected aspect 1 kept after zero resize, got %v", p.Aspect)
	}
}

func TestEngineQuitFromKey(t *testing.T) {
	fw := &fakeWindow{width: 800, height: 600, maxFrames: 10}
	fr := &fakeRenderer{}
	e := newTestEngine(fw, fr, camera.NewCamera())

	e.SetKeyDownCallback(func(keyCode uint32) {
		if keyCode == common.KeyEsc {
			e.Quit()
			e.Quit()
		}
	})
	fw.beforeFrame = func(i int) {
		if i == 1 {
			fw.onKeyDown(common.KeyEsc)
		}
	}
	e.Run()

	if fw.closeRequests != 1 {
		t.Errorf("Quit: expected one close request, got %d", fw.closeRequests)
	}
	if len(fr.uniforms) != 1 {
		t.Errorf("Quit: expected frames to stop after quit, rendered %d", len(fr.uniforms))
	}
}

func TestEngineRenderErrorDoesNotStopLoop(t *testing.T) {
	fw := &fakeWindow{width: 800, height: 600, maxFrames: 4}
	fr := &fakeRenderer{err: errors.New("surface outdated")}
	e := newTestEngine(fw, fr, camera.NewCamera())
	e.Run()

	if len(fr.uniforms) != 4 {
		t.Errorf("Render errors: expected all 4 frames attempted, got %d", len(fr.uniforms))
	}
	if e.lastRenderErr != "surface outdated" {
		t.Errorf("lastRenderErr: expected recorded error, got %q", e.lastRenderErr)
	}
}

func TestEngineFrameLimit(t *testing.T) {
	fw := &fakeWindow{width: 800, height: 600, maxFrames: 2}
	e := newTestEngine(fw, &fakeRenderer{}, camera.NewCamera())
	e.SetRenderFrameLimit(50)

	var slept []time.Duration
	e.sleep = func(d time.Duration) { slept = append(slept, d) }
	e.Run()

	// The fake clock advances 10ms per reading, leaving 10ms of the 20ms budget.
	if len(slept) != 2 || slept[0] != 10*time.Millisecond {
		t.Errorf("Frame limit: expected 10ms sleeps, got %v", slept)
	}
}

func TestCameraStatus(t *testing.T) {
	fw := &fakeWindow{width: 800, height: 600}
	ctrl := camera.NewCameraController(mgl32.Vec3{0, 0, 4}, mgl32.Vec3{})
	e := newTestEngine(fw, nil, camera.NewCamera(camera.WithController(ctrl)))

	expected := "Camera: idle | Radius: 4.00 | Target: (0.00, 0.00, 0.00)"
	if got := e.cameraStatus(); got != expected {
		t.Errorf("cameraStatus: expected %q, got %q", expected, got)
	}

	e = newTestEngine(fw, nil, camera.NewCamera())
	if got := e.cameraStatus(); got != "Camera: fixed" {
		t.Errorf("cameraStatus: expected fixed camera, got %q", got)
	}
}
