package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection supplies the clip-from-view matrix a controller inverts while panning.
type Projection interface {
	// ClipFromView returns the projection matrix (column-major, WebGPU depth range).
	//
	// Returns:
	//   - mgl32.Mat4: the clip-from-view matrix
	ClipFromView() mgl32.Mat4

	// SetAspect updates the viewport aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)
}

// PerspectiveProjection is a symmetric perspective frustum.
type PerspectiveProjection struct {
	// Fov is the vertical field of view in radians.
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32
}

// OrthographicProjection is a parallel projection sized by half its visible height.
type OrthographicProjection struct {
	HalfHeight float32
	Aspect     float32
	Near       float32
	Far        float32
}

var (
	_ Projection = &PerspectiveProjection{}
	_ Projection = &OrthographicProjection{}
)

// NewPerspectiveProjection returns a perspective projection with a 45° field of view,
// aspect 1 and clip planes at 0.1 and 1000.
//
// Returns:
//   - *PerspectiveProjection: the projection
func NewPerspectiveProjection() *PerspectiveProjection {
	return &PerspectiveProjection{
		Fov:    45.0 * (math.Pi / 180.0),
		Aspect: 1.0,
		Near:   0.1,
		Far:    1000.0,
	}
}

func (p *PerspectiveProjection) ClipFromView() mgl32.Mat4 {
	return common.Perspective(p.Fov, p.Aspect, p.Near, p.Far)
}

func (p *PerspectiveProjection) SetAspect(aspect float32) {
	p.Aspect = aspect
}

func (p *OrthographicProjection) ClipFromView() mgl32.Mat4 {
	return common.Orthographic(p.HalfHeight, p.Aspect, p.Near, p.Far)
}

func (p *OrthographicProjection) SetAspect(aspect float32) {
	p.Aspect = aspect
}
