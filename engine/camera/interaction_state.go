package camera

import "github.com/go-gl/mathgl/mgl32"

// InteractionState is the drag state of an orbit controller. It is a closed set:
// exactly one of Idle, Pivoting or Panning.
type InteractionState interface {
	interactionState()

	// String returns a short human-readable name for logs.
	String() string
}

// Idle means no drag is in progress.
type Idle struct{}

// Pivoting is an orbit drag started with the primary button.
type Pivoting struct {
	// CursorStart is the cursor position when the drag began.
	CursorStart mgl32.Vec2
	// SphericalStart is the camera offset when the drag began.
	SphericalStart SphericalCoordinate
}

// Panning is a translation drag started with the secondary button.
type Panning struct {
	// CursorStart is the cursor position when the drag began.
	CursorStart mgl32.Vec2
	// TargetStart is the orbit target when the drag began.
	TargetStart mgl32.Vec3
}

func (Idle) interactionState() {}
func (Pivoting) interactionState() {}
func (Panning) interactionState() {}

func (Idle) String() string { return "idle" }
func (Pivoting) String() string { return "pivoting" }
func (Panning) String() string { return "panning" }

// isIdle reports whether s is the Idle state.
func isIdle(s InteractionState) bool {
	_, ok := s.(Idle)
	return ok
}
