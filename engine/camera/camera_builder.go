package camera

// CameraBuilderOption is a functional option applied to a camera during construction via NewCamera.
type CameraBuilderOption func(*cameraImpl)

// WithProjection replaces the default perspective projection.
//
// Parameters:
//   - projection: the projection to use
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's projection
func WithProjection(projection Projection) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = projection
	}
}

// WithPerspective sets a perspective projection.
//
// Parameters:
//   - fov: vertical field of view in radians
//   - aspect: the aspect ratio (width / height)
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's projection
func WithPerspective(fov, aspect, near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = &PerspectiveProjection{Fov: fov, Aspect: aspect, Near: near, Far: far}
	}
}

// WithTransform sets the camera's initial world transform. Ignored when a controller is attached,
// since the controller derives the transform from its target and spherical offset.
//
// Parameters:
//   - transform: the initial transform
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's transform
func WithTransform(transform Transform) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.transform = transform
	}
}

// WithController attaches a controller to the camera.
// After all options are applied, the camera takes its transform from the controller.
//
// Parameters:
//   - ctrl: the controller to attach
//
// Returns:
//   - CameraBuilderOption: functional option to set the controller
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
