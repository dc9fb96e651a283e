package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithZoomSpeed sets the wheel zoom multiplier.
//
// Parameters:
//   - speed: fraction of the orbit radius travelled per scroll unit per second
//
// Returns:
//   - CameraControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithPanSpeed sets the pan drag multiplier.
//
// Parameters:
//   - speed: multiplier applied to the unprojected cursor delta, scaled by orbit radius
//
// Returns:
//   - CameraControllerOption: functional option to set pan speed
func WithPanSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.panSpeed = speed
	}
}

// WithPivotSpeed sets the orbit drag multiplier.
// At speed 1 a drag of one window height rotates the camera by π radians.
//
// Parameters:
//   - speed: multiplier for drag-to-angle conversion
//
// Returns:
//   - CameraControllerOption: functional option to set pivot speed
func WithPivotSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pivotSpeed = speed
	}
}
