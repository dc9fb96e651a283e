package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the renderer.
// When not specified, the default is MSAA4x. Use MSAAOff to disable MSAA entirely.
//
// Parameters:
//   - count: the MSAASampleCount to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.sampleCount = count
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithClearColor sets the background color.
//
// Parameters:
//   - red: red channel in [0, 1]
//   - green: green channel in [0, 1]
//   - blue: blue channel in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color to a renderer
func WithClearColor(red, green, blue float64) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = wgpu.Color{R: red, G: green, B: blue, A: 1.0}
	}
}

// WithGrid sets the size of the ground grid.
//
// Parameters:
//   - halfLines: number of grid lines on each side of the origin
//   - spacing: distance between grid lines in world units
//
// Returns:
//   - RendererBuilderOption: a function that applies the grid option to a renderer
func WithGrid(halfLines int, spacing float32) RendererBuilderOption {
	return func(r *renderer) {
		r.gridHalfLines = halfLines
		if spacing > 0 {
			r.gridSpacing = spacing
		}
	}
}

// WithTargetMarker sets the half-length of the orbit target marker. Zero hides the marker.
//
// Parameters:
//   - size: marker arm length in world units
//
// Returns:
//   - RendererBuilderOption: a function that applies the marker option to a renderer
func WithTargetMarker(size float32) RendererBuilderOption {
	return func(r *renderer) {
		r.markerSize = size
	}
}
