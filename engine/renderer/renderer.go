package renderer

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed assets/line.wgsl
var lineShaderBody string

// LineShaderSource returns the complete WGSL source of the line pipeline, prefixed with the
// shared CameraUniform definition.
//
// Returns:
//   - string: the WGSL source
func LineShaderSource() string {
	return camera.GPUCameraUniformSource + "\n" + lineShaderBody
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	sampleCount          MSAASampleCount
	clearColor           wgpu.Color

	gridHalfLines int
	gridSpacing   float32
	markerSize    float32

	// lastTarget is the target the marker buffer was last built for.
	lastTarget *mgl32.Vec3
	suspended  bool
}

// Renderer draws the orbit viewer scene: a ground grid with world axes and a marker at the
// orbit target, seen through the camera uniform supplied each frame.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// A zero width or height suspends rendering until the next non-zero resize.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Render uploads the camera uniform and draws one frame.
	//
	// Parameters:
	//   - uniform: the camera's GPU uniform for this frame
	//   - target: the orbit target, drawn as a marker
	//
	// Returns:
	//   - error: an error if the frame could not be acquired
	Render(uniform camera.GPUCameraUniform, target mgl32.Vec3) error

	// Release frees every GPU resource held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer drawing into the given window's surface.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - w: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: an error if the GPU device or pipeline could not be created
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(backendType, options...)

	var backend RendererBackend
	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		backend, err = newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, r.sampleCount)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer backend: %w", err)
	}

	if err := r.attach(backend, w.Width(), w.Height()); err != nil {
		backend.Release()
		return nil, err
	}
	return r, nil
}

func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:            &sync.Mutex{},
		backendType:   backendType,
		sampleCount:   MSAA4x,
		clearColor:    wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		gridHalfLines: 10,
		gridSpacing:   1,
		markerSize:    0.1,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// attach configures the backend and uploads the static grid.
func (r *renderer) attach(backend RendererBackend, width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backend = backend
	if r.pendingPresentMode != nil {
		backend.SetPresentMode(*r.pendingPresentMode)
	}
	backend.SetClearColor(r.clearColor)
	backend.ConfigureSurface(width, height)

	if err := backend.RegisterLinePipeline(LineShaderSource()); err != nil {
		return fmt.Errorf("failed to register line pipeline: %w", err)
	}
	if err := backend.WriteLines(SlotGrid, common.SliceToBytes(BuildGrid(r.gridHalfLines, r.gridSpacing))); err != nil {
		return fmt.Errorf("failed to upload grid: %w", err)
	}
	return nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width <= 0 || height <= 0 {
		r.suspended = true
		return
	}
	r.suspended = false
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Render(uniform camera.GPUCameraUniform, target mgl32.Vec3) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.suspended {
		return nil
	}

	r.backend.WriteCamera(uniform.Marshal())

	if r.markerSize > 0 && (r.lastTarget == nil || *r.lastTarget != target) {
		if err := r.backend.WriteLines(SlotMarker, common.SliceToBytes(BuildTargetMarker(target, r.markerSize))); err != nil {
			return fmt.Errorf("failed to upload target marker: %w", err)
		}
		r.lastTarget = &target
	}

	if err := r.backend.BeginFrame(); err != nil {
		return fmt.Errorf("failed to begin frame: %w", err)
	}
	r.backend.DrawLines(SlotGrid)
	if r.markerSize > 0 {
		r.backend.DrawLines(SlotMarker)
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backend != nil {
		r.backend.Release()
		r.backend = nil
	}
}
