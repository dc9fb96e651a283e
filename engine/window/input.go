package window

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// InputTracker accumulates window events between frames and produces one common.FrameInput per
// frame. Button transitions are latched as edges and scroll offsets are summed; both are cleared
// by Snapshot.
type InputTracker struct {
	mu *sync.Mutex

	cursor    mgl32.Vec2
	hasCursor bool
	inside    bool

	primaryPressed    bool
	primaryReleased   bool
	secondaryPressed  bool
	secondaryReleased bool

	scroll mgl32.Vec2
}

// NewInputTracker creates an InputTracker that assumes the cursor starts inside the window.
//
// Returns:
//   - *InputTracker: the tracker
func NewInputTracker() *InputTracker {
	return &InputTracker{
		mu:     &sync.Mutex{},
		inside: true,
	}
}

// Attach registers the tracker's handlers as the window's pointer callbacks.
// Replaces any mouse button, cursor move, cursor enter, or scroll callback already set.
//
// Parameters:
//   - w: the window to listen to
func (t *InputTracker) Attach(w Window) {
	w.SetMouseButtonCallback(t.HandleMouseButton)
	w.SetMouseMoveCallback(t.HandleCursorMove)
	w.SetCursorEnterCallback(t.HandleCursorEnter)
	w.SetScrollCallback(t.HandleScroll)
}

// HandleMouseButton records a button transition. Buttons other than primary and secondary are ignored.
//
// Parameters:
//   - button: the button index (common.MouseButton*)
//   - pressed: true for press, false for release
func (t *InputTracker) HandleMouseButton(button int, pressed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch button {
	case common.MouseButtonPrimary:
		if pressed {
			t.primaryPressed = true
		} else {
			t.primaryReleased = true
		}
	case common.MouseButtonSecondary:
		if pressed {
			t.secondaryPressed = true
		} else {
			t.secondaryReleased = true
		}
	}
}

// HandleCursorMove records the latest cursor position in window screen coordinates.
//
// Parameters:
//   - x: horizontal position from the left edge
//   - y: vertical position from the top edge
func (t *InputTracker) HandleCursorMove(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor = mgl32.Vec2{float32(x), float32(y)}
	t.hasCursor = true
}

// HandleCursorEnter records whether the cursor is over the window.
//
// Parameters:
//   - entered: true when the cursor entered, false when it left
func (t *InputTracker) HandleCursorEnter(entered bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inside = entered
}

// HandleScroll adds a scroll offset to the frame's accumulated scroll.
//
// Parameters:
//   - dx: horizontal scroll offset
//   - dy: vertical scroll offset
func (t *InputTracker) HandleScroll(dx, dy float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scroll = t.scroll.Add(mgl32.Vec2{dx, dy})
}

// Snapshot returns the input for the frame and resets the per-frame edges and scroll.
// The cursor is reported unavailable when it has never moved, has left the window, or lies
// outside [0, width) x [0, height).
//
// Parameters:
//   - width: the window width in screen coordinates (the cursor's space)
//   - height: the window height in screen coordinates
//   - dt: seconds elapsed since the previous frame
//
// Returns:
//   - common.FrameInput: the frame's input
func (t *InputTracker) Snapshot(width, height int, dt float32) common.FrameInput {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := float32(width), float32(height)
	available := t.hasCursor && t.inside &&
		t.cursor.X() >= 0 && t.cursor.Y() >= 0 &&
		t.cursor.X() < w && t.cursor.Y() < h

	in := common.FrameInput{
		Cursor:            t.cursor,
		CursorAvailable:   available,
		PrimaryPressed:    t.primaryPressed,
		PrimaryReleased:   t.primaryReleased,
		SecondaryPressed:  t.secondaryPressed,
		SecondaryReleased: t.secondaryReleased,
		Scroll:            t.scroll,
		Width:             w,
		Height:            h,
		DeltaSeconds:      dt,
	}

	t.primaryPressed = false
	t.primaryReleased = false
	t.secondaryPressed = false
	t.secondaryReleased = false
	t.scroll = mgl32.Vec2{}
	return in
}
