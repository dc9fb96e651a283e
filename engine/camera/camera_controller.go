package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController defines the orbit-style camera controller.
// The controller owns the drag state machine, the orbit target and the camera's spherical
// offset from that target. It does not own the camera transform: each frame the host lends the
// transform to HandleWheel and Update, which rewrite it in place.
//
// Per frame the host calls, in order: HandleWheel, HandleButtonTransition, Update.
type CameraController interface {
	// State returns the current interaction state (Idle, Pivoting or Panning).
	//
	// Returns:
	//   - InteractionState: the current state
	State() InteractionState

	// Target returns the focal point the camera orbits and looks at.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target
	Target() mgl32.Vec3

	// SphericalPosition returns the camera offset from the target.
	//
	// Returns:
	//   - SphericalCoordinate: the spherical offset
	SphericalPosition() SphericalCoordinate

	// Transform returns a transform placed at target + spherical offset looking at the target.
	// Hosts use it to seed the camera transform at construction.
	//
	// Returns:
	//   - Transform: the derived transform
	Transform() Transform

	// ZoomSpeed returns the wheel zoom multiplier.
	//
	// Returns:
	//   - float32: zoom speed
	ZoomSpeed() float32

	// SetZoomSpeed sets the wheel zoom multiplier.
	//
	// Parameters:
	//   - speed: zoom speed
	SetZoomSpeed(speed float32)

	// PanSpeed returns the pan drag multiplier.
	//
	// Returns:
	//   - float32: pan speed
	PanSpeed() float32

	// SetPanSpeed sets the pan drag multiplier.
	//
	// Parameters:
	//   - speed: pan speed
	SetPanSpeed(speed float32)

	// PivotSpeed returns the orbit drag multiplier.
	//
	// Returns:
	//   - float32: pivot speed
	PivotSpeed() float32

	// SetPivotSpeed sets the orbit drag multiplier.
	//
	// Parameters:
	//   - speed: pivot speed
	SetPivotSpeed(speed float32)

	// HandleButtonTransition applies the frame's button edge events to the state machine.
	// A drag only starts from Idle and only while the cursor is inside the window.
	// Primary release ends a pivot; secondary release always returns to Idle.
	//
	// Parameters:
	//   - input: the frame's input snapshot
	HandleButtonTransition(input common.FrameInput)

	// HandleWheel zooms the camera toward or away from the target. Ignored when the scroll delta
	// is zero or a drag is in progress.
	//
	// Parameters:
	//   - input: the frame's input snapshot
	//   - transform: the camera transform, modified in place
	HandleWheel(input common.FrameInput, transform *Transform)

	// Update applies the active drag to the transform and re-orients it toward the target.
	// Drag updates are skipped while the cursor is outside the window; the drag itself persists.
	//
	// Parameters:
	//   - input: the frame's input snapshot
	//   - transform: the camera transform, modified in place
	//   - projection: the camera projection, inverted while panning
	Update(input common.FrameInput, transform *Transform, projection Projection)
}
