// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "github.com/go-gl/mathgl/mgl32"

// FrameInput is the read-only snapshot of pointer and window state for a single frame.
// It is produced by the windowing layer and consumed by camera controllers.
type FrameInput struct {
	// Cursor is the pointer position in window screen coordinates (origin top-left, +Y down).
	// Only meaningful when CursorAvailable is true.
	Cursor mgl32.Vec2
	// CursorAvailable is false when the pointer is outside the window.
	CursorAvailable bool

	// PrimaryPressed and PrimaryReleased are the edge events of the primary (left) button
	// observed since the previous frame.
	PrimaryPressed, PrimaryReleased bool
	// SecondaryPressed and SecondaryReleased are the edge events of the secondary (right) button
	// observed since the previous frame.
	SecondaryPressed, SecondaryReleased bool

	// Scroll is the accumulated wheel delta for the frame. Only Y drives zoom.
	Scroll mgl32.Vec2

	// Width and Height are the window dimensions in the same units as Cursor.
	Width, Height float32

	// DeltaSeconds is the elapsed time since the previous frame.
	DeltaSeconds float32
}

// CursorPosition returns the cursor and whether it is inside the window.
//
// Returns:
//   - mgl32.Vec2: the cursor position
//   - bool: true if the cursor is available
func (f FrameInput) CursorPosition() (mgl32.Vec2, bool) {
	return f.Cursor, f.CursorAvailable
}
