package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	state InteractionState

	target       mgl32.Vec3
	sphericalPos SphericalCoordinate

	zoomSpeed  float32
	panSpeed   float32
	pivotSpeed float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates an orbit controller for a camera at position looking at target.
// The spherical offset is derived from position - target.
//
// Parameters:
//   - position: initial world-space camera position
//   - target: initial world-space focal point
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(position, target mgl32.Vec3, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:           &sync.Mutex{},
		state:        Idle{},
		target:       target,
		sphericalPos: SphericalFromCartesian(position.Sub(target)),
		zoomSpeed:    0.5,
		panSpeed:     3.0,
		pivotSpeed:   2.0,
	}

	for _, option := range options {
		option(cc)
	}

	return cc
}

// NewDefaultCameraController creates a controller at (1, 1, 1) orbiting the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewDefaultCameraController(options ...CameraControllerOption) CameraController {
	return NewCameraController(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, options...)
}

func (cc *cameraControllerImpl) State() InteractionState {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *cameraControllerImpl) SphericalPosition() SphericalCoordinate {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.sphericalPos
}

func (cc *cameraControllerImpl) Transform() Transform {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	t := NewTransform(cc.sphericalPos.Cartesian().Add(cc.target))
	t.LookAt(cc.target, common.WorldUp)
	return t
}

func (cc *cameraControllerImpl) ZoomSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}

func (cc *cameraControllerImpl) SetZoomSpeed(speed float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.zoomSpeed = speed
}

func (cc *cameraControllerImpl) PanSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.panSpeed
}

func (cc *cameraControllerImpl) SetPanSpeed(speed float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.panSpeed = speed
}

func (cc *cameraControllerImpl) PivotSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pivotSpeed
}

func (cc *cameraControllerImpl) SetPivotSpeed(speed float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pivotSpeed = speed
}

func (cc *cameraControllerImpl) HandleButtonTransition(input common.FrameInput) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cursor, ok := input.CursorPosition()

	if input.PrimaryPressed && isIdle(cc.state) && ok {
		cc.state = Pivoting{
			CursorStart:    cursor,
			SphericalStart: cc.sphericalPos,
		}
	}

	if _, pivoting := cc.state.(Pivoting); input.PrimaryReleased && pivoting {
		cc.state = Idle{}
	}

	if input.SecondaryPressed && isIdle(cc.state) && ok {
		cc.state = Panning{
			CursorStart: cursor,
			TargetStart: cc.target,
		}
	}

	// Unconditional: also cancels a pivot.
	if input.SecondaryReleased {
		cc.state = Idle{}
	}
}

func (cc *cameraControllerImpl) HandleWheel(input common.FrameInput, transform *Transform) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if input.Scroll.Y() == 0 || !isIdle(cc.state) {
		return
	}

	dir := cc.target.Sub(transform.Translation)
	if dir.Len() == 0 {
		return
	}

	delta := input.Scroll.Y() * cc.sphericalPos.Radius * cc.zoomSpeed * input.DeltaSeconds
	transform.Translation = transform.Translation.Add(dir.Normalize().Mul(delta))

	cc.sphericalPos = SphericalFromCartesian(transform.Translation.Sub(cc.target))
}

func (cc *cameraControllerImpl) Update(input common.FrameInput, transform *Transform, projection Projection) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cursor, ok := input.CursorPosition()

	switch state := cc.state.(type) {
	case Idle:
	case Pivoting:
		if ok && input.Height > 0 {
			cc.pivot(state, cursor, input.Height, transform)
		}
	case Panning:
		if ok && input.Width > 0 && input.Height > 0 {
			cc.pan(state, cursor, input.Width, input.Height, transform, projection)
		}
	}

	transform.LookAt(cc.target, common.WorldUp)
}

// pivot orbits the camera around the target at constant radius. Phi is not clamped here.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) pivot(state Pivoting, cursor mgl32.Vec2, height float32, transform *Transform) {
	dTheta := -((cursor.X() - state.CursorStart.X()) / height) * math.Pi * cc.pivotSpeed
	dPhi := -((cursor.Y() - state.CursorStart.Y()) / height) * math.Pi * cc.pivotSpeed

	cc.sphericalPos.Theta = state.SphericalStart.Theta + dTheta
	cc.sphericalPos.Phi = state.SphericalStart.Phi + dPhi

	transform.Translation = cc.sphericalPos.Cartesian().Add(cc.target)
}

// pan translates target and camera together by the cursor delta unprojected into world space.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) pan(state Panning, cursor mgl32.Vec2, width, height float32, transform *Transform, projection Projection) {
	deltaX := 0.5 * (cursor.X() - state.CursorStart.X()) / width
	deltaY := 0.5 * (cursor.Y() - state.CursorStart.Y()) / height
	if deltaX == 0 && deltaY == 0 {
		return
	}

	viewDelta := projection.ClipFromView().Inv().Mul4x1(mgl32.Vec4{deltaX, -deltaY, 0, 0})
	diff := transform.Matrix().Mul4x1(viewDelta).Vec3().Mul(cc.sphericalPos.Radius * cc.panSpeed)

	dir := transform.Translation.Sub(cc.target)

	cc.target = state.TargetStart.Sub(diff)
	transform.Translation = cc.target.Add(dir)

	cc.sphericalPos = SphericalFromCartesian(transform.Translation.Sub(cc.target))
	cc.sphericalPos.ClampPhi()
}
