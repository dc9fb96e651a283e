package common

// Mouse button codes for cross-platform input handling.
// These values match GLFW mouse button codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const (
	MouseButtonPrimary   = 0 // Left button (GLFW MouseButton1)
	MouseButtonSecondary = 1 // Right button (GLFW MouseButton2)
)

// Virtual key codes used by the orbit viewer.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyR   = 82  // R key (ASCII)
	KeyEsc = 256 // Escape key (GLFW)
)
