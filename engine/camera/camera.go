package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	transform  Transform
	projection Projection

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	controller CameraController
}

// Camera defines the interface for the camera system.
// The camera holds the world transform and projection and runs the attached
// CameraController against them once per frame via Update().
type Camera interface {
	// Transform returns a copy of the camera's world transform.
	//
	// Returns:
	//   - Transform: the current transform
	Transform() Transform

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Projection returns the camera projection.
	//
	// Returns:
	//   - Projection: the projection
	Projection() Projection

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the camera-from-world matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the clip-from-view matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the current combined view-projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the clip-from-world matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Uniform returns the GPU uniform for the current frame.
	//
	// Returns:
	//   - GPUCameraUniform: view-projection matrix and camera position
	Uniform() GPUCameraUniform

	// Controller returns the attached CameraController.
	// Returns nil if no controller is attached.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// SetController attaches a CameraController and resets the transform to the controller's
	// derived transform.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl CameraController)

	// SetAspect sets the projection aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// Update runs one controller frame: wheel handling, button transitions, then the
	// positional update, and recomputes matrices. Without a controller only the matrices
	// are recomputed.
	//
	// Parameters:
	//   - input: the frame's input snapshot
	Update(input common.FrameInput)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with a default perspective projection.
// When a controller is supplied the transform starts at the controller's derived transform.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		transform:  NewTransform(mgl32.Vec3{0, 0, 1}),
		projection: NewPerspectiveProjection(),
	}
	for _, option := range options {
		option(c)
	}
	if c.controller != nil {
		c.transform = c.controller.Transform()
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Transform() Transform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transform
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transform.Translation
}

func (c *cameraImpl) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{
		ViewProj:       c.viewProjectionMatrix,
		CameraPosition: c.transform.Translation,
	}
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	if ctrl != nil {
		c.transform = ctrl.Transform()
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection.SetAspect(aspect)
	c.updateMatrices()
}

func (c *cameraImpl) Update(input common.FrameInput) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller != nil {
		c.controller.HandleWheel(input, &c.transform)
		c.controller.HandleButtonTransition(input)
		c.controller.Update(input, &c.transform, c.projection)
	}
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection and view-projection matrices from the
// transform and projection.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = c.transform.ViewMatrix()
	c.projectionMatrix = c.projection.ClipFromView()
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
