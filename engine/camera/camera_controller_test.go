package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// frame builds an input snapshot for a 1000x1000 window with the cursor at (x, y).
func frame(x, y float32) common.FrameInput {
	return common.FrameInput{
		Cursor:          mgl32.Vec2{x, y},
		CursorAvailable: true,
		Width:           1000,
		Height:          1000,
		DeltaSeconds:    1.0 / 60.0,
	}
}

func pressPrimary(x, y float32) common.FrameInput {
	in := frame(x, y)
	in.PrimaryPressed = true
	return in
}

func pressSecondary(x, y float32) common.FrameInput {
	in := frame(x, y)
	in.SecondaryPressed = true
	return in
}

func TestNewCameraControllerDefaults(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{3, 4, 5}, mgl32.Vec3{1, 1, 1})

	if cc.ZoomSpeed() != 0.5 || cc.PanSpeed() != 3.0 || cc.PivotSpeed() != 2.0 {
		t.Errorf("Speeds: expected 0.5/3/2, got %v/%v/%v", cc.ZoomSpeed(), cc.PanSpeed(), cc.PivotSpeed())
	}
	if _, ok := cc.State().(Idle); !ok {
		t.Errorf("State: expected idle, got %v", cc.State())
	}
	if cc.Target() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Target: expected (1,1,1), got %v", cc.Target())
	}

	expected := SphericalFromCartesian(mgl32.Vec3{2, 3, 4})
	if cc.SphericalPosition() != expected {
		t.Errorf("SphericalPosition: expected %v, got %v", expected, cc.SphericalPosition())
	}

	tr := cc.Transform()
	if !vec3Near(tr.Translation, mgl32.Vec3{3, 4, 5}, 1e-4) {
		t.Errorf("Transform: expected (3,4,5), got %v", tr.Translation)
	}
	wantForward := mgl32.Vec3{-2, -3, -4}.Normalize()
	if !vec3Near(tr.Forward(), wantForward, 1e-4) {
		t.Errorf("Transform forward: expected %v, got %v", wantForward, tr.Forward())
	}
}

func TestCameraControllerOptions(t *testing.T) {
	cc := NewDefaultCameraController(WithZoomSpeed(1), WithPanSpeed(2), WithPivotSpeed(3))
	if cc.ZoomSpeed() != 1 || cc.PanSpeed() != 2 || cc.PivotSpeed() != 3 {
		t.Errorf("Options: expected 1/2/3, got %v/%v/%v", cc.ZoomSpeed(), cc.PanSpeed(), cc.PivotSpeed())
	}

	cc.SetZoomSpeed(4)
	cc.SetPanSpeed(5)
	cc.SetPivotSpeed(6)
	if cc.ZoomSpeed() != 4 || cc.PanSpeed() != 5 || cc.PivotSpeed() != 6 {
		t.Errorf("Setters: expected 4/5/6, got %v/%v/%v", cc.ZoomSpeed(), cc.PanSpeed(), cc.PivotSpeed())
	}
}

func TestPivotStartAndRelease(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})
	start := cc.SphericalPosition()

	cc.HandleButtonTransition(pressPrimary(12, 34))
	state, ok := cc.State().(Pivoting)
	if !ok {
		t.Fatalf("Press primary: expected pivoting, got %v", cc.State())
	}
	if state.CursorStart != (mgl32.Vec2{12, 34}) || state.SphericalStart != start {
		t.Errorf("Pivoting: unexpected payload %+v", state)
	}

	release := frame(12, 34)
	release.PrimaryReleased = true
	cc.HandleButtonTransition(release)
	if _, ok := cc.State().(Idle); !ok {
		t.Errorf("Release primary: expected idle, got %v", cc.State())
	}
}

func TestPanStartAndRelease(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{1, 2, 3})

	cc.HandleButtonTransition(pressSecondary(5, 6))
	state, ok := cc.State().(Panning)
	if !ok {
		t.Fatalf("Press secondary: expected panning, got %v", cc.State())
	}
	if state.CursorStart != (mgl32.Vec2{5, 6}) || state.TargetStart != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Panning: unexpected payload %+v", state)
	}

	release := frame(5, 6)
	release.SecondaryReleased = true
	cc.HandleButtonTransition(release)
	if _, ok := cc.State().(Idle); !ok {
		t.Errorf("Release secondary: expected idle, got %v", cc.State())
	}
}

func TestDragsAreMutuallyExclusive(t *testing.T) {
	cc := NewDefaultCameraController()
	cc.HandleButtonTransition(pressSecondary(0, 0))
	cc.HandleButtonTransition(pressPrimary(10, 10))
	if _, ok := cc.State().(Panning); !ok {
		t.Errorf("Primary during pan: expected panning, got %v", cc.State())
	}

	release := frame(10, 10)
	release.PrimaryReleased = true
	cc.HandleButtonTransition(release)
	if _, ok := cc.State().(Panning); !ok {
		t.Errorf("Primary release during pan: expected panning, got %v", cc.State())
	}

	cc = NewDefaultCameraController()
	cc.HandleButtonTransition(pressPrimary(0, 0))
	cc.HandleButtonTransition(pressSecondary(10, 10))
	if _, ok := cc.State().(Pivoting); !ok {
		t.Errorf("Secondary during pivot: expected pivoting, got %v", cc.State())
	}
}

func TestSecondaryReleaseCancelsPivot(t *testing.T) {
	cc := NewDefaultCameraController()
	cc.HandleButtonTransition(pressPrimary(0, 0))

	release := frame(0, 0)
	release.SecondaryReleased = true
	cc.HandleButtonTransition(release)
	if _, ok := cc.State().(Idle); !ok {
		t.Errorf("Secondary release during pivot: expected idle, got %v", cc.State())
	}
}

func TestPressWithoutCursorIsSuppressed(t *testing.T) {
	cc := NewDefaultCameraController()

	in := pressPrimary(0, 0)
	in.CursorAvailable = false
	cc.HandleButtonTransition(in)
	if _, ok := cc.State().(Idle); !ok {
		t.Errorf("Primary outside window: expected idle, got %v", cc.State())
	}

	in = pressSecondary(0, 0)
	in.CursorAvailable = false
	cc.HandleButtonTransition(in)
	if _, ok := cc.State().(Idle); !ok {
		t.Errorf("Secondary outside window: expected idle, got %v", cc.State())
	}
}

func TestIdleZoom(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, WithZoomSpeed(0.5))
	tr := cc.Transform()

	in := frame(0, 0)
	in.Scroll = mgl32.Vec2{0, 2.0}
	in.DeltaSeconds = 0.1
	cc.HandleWheel(in, &tr)

	if !vec3Near(tr.Translation, mgl32.Vec3{0, 0, 4.5}, 1e-4) {
		t.Errorf("Zoom: expected (0,0,4.5), got %v", tr.Translation)
	}
	if r := cc.SphericalPosition().Radius; math.Abs(float64(r)-4.5) > 1e-5 {
		t.Errorf("Zoom radius: expected 4.5, got %v", r)
	}
}

func TestZoomRelativeToTarget(t *testing.T) {
	target := mgl32.Vec3{10, 0, 0}
	cc := NewCameraController(mgl32.Vec3{10, 0, 4}, target, WithZoomSpeed(1))
	tr := cc.Transform()

	in := frame(0, 0)
	in.Scroll = mgl32.Vec2{0, -1}
	in.DeltaSeconds = 0.5
	cc.HandleWheel(in, &tr)

	if !vec3Near(tr.Translation, mgl32.Vec3{10, 0, 6}, 1e-4) {
		t.Errorf("Zoom out: expected (10,0,6), got %v", tr.Translation)
	}
	expected := SphericalFromCartesian(tr.Translation.Sub(target))
	if cc.SphericalPosition() != expected {
		t.Errorf("Zoom spherical: expected %v, got %v", expected, cc.SphericalPosition())
	}
}

func TestZoomIgnoredWhileDragging(t *testing.T) {
	for _, press := range []common.FrameInput{pressPrimary(0, 0), pressSecondary(0, 0)} {
		cc := NewCameraController(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, WithZoomSpeed(0.5))
		tr := cc.Transform()
		cc.HandleButtonTransition(press)
		before := cc.SphericalPosition()
		beforeTranslation := tr.Translation

		in := frame(0, 0)
		in.Scroll = mgl32.Vec2{0, 2.0}
		in.DeltaSeconds = 0.1
		cc.HandleWheel(in, &tr)

		if tr.Translation != beforeTranslation {
			t.Errorf("Zoom during %v: expected no movement, got %v", cc.State(), tr.Translation)
		}
		if cc.SphericalPosition() != before {
			t.Errorf("Zoom during %v: spherical changed to %v", cc.State(), cc.SphericalPosition())
		}
	}
}

func TestZoomIgnoresZeroScroll(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	tr := cc.Transform()
	before := tr

	in := frame(0, 0)
	in.Scroll = mgl32.Vec2{3, 0}
	cc.HandleWheel(in, &tr)
	if tr != before {
		t.Errorf("Zero vertical scroll: expected no change, got %v", tr)
	}
}

func TestZoomOnTargetIsNoop(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{}, mgl32.Vec3{})
	tr := cc.Transform()

	in := frame(0, 0)
	in.Scroll = mgl32.Vec2{0, 1}
	cc.HandleWheel(in, &tr)
	if tr.Translation != (mgl32.Vec3{}) {
		t.Errorf("Zoom at target: expected origin, got %v", tr.Translation)
	}
}

func TestPivotDragDeterminism(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, WithPivotSpeed(1))
	tr := cc.Transform()

	start := cc.SphericalPosition()
	if math.Abs(float64(start.Radius)-10) > 1e-5 || start.Theta != 0 || math.Abs(float64(start.Phi)-math.Pi/2) > 1e-6 {
		t.Fatalf("Start: expected {10 0 π/2}, got %v", start)
	}

	cc.HandleButtonTransition(pressPrimary(0, 0))
	cc.Update(frame(0, 500), &tr, NewPerspectiveProjection())

	expected := SphericalCoordinate{Radius: 10, Theta: 0, Phi: 0}.Cartesian()
	if !vec3Near(tr.Translation, expected, 1e-4) {
		t.Errorf("Pivot: expected %v, got %v", expected, tr.Translation)
	}
	if phi := cc.SphericalPosition().Phi; math.Abs(float64(phi)) > 1e-6 {
		t.Errorf("Pivot phi: expected 0, got %v", phi)
	}
}

func TestPivotHorizontalDrag(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{1, 0, 10}, mgl32.Vec3{1, 0, 0}, WithPivotSpeed(1))
	tr := cc.Transform()

	cc.HandleButtonTransition(pressPrimary(100, 100))
	cc.Update(frame(600, 100), &tr, NewPerspectiveProjection())

	// dTheta = -(500/1000)·π = -π/2, rotating the +Z offset onto -X.
	expected := mgl32.Vec3{1 - 10, 0, 0}
	if !vec3Near(tr.Translation, expected, 1e-4) {
		t.Errorf("Pivot horizontal: expected %v, got %v", expected, tr.Translation)
	}
}

func TestPivotDoesNotClampPhi(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, WithPivotSpeed(1))
	tr := cc.Transform()

	cc.HandleButtonTransition(pressPrimary(0, 0))
	cc.Update(frame(0, 700), &tr, NewPerspectiveProjection())

	if phi := cc.SphericalPosition().Phi; phi >= 0 {
		t.Errorf("Pivot past pole: expected negative phi, got %v", phi)
	}
}

func TestPivotSkippedWithoutCursor(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})
	tr := cc.Transform()
	before := cc.SphericalPosition()

	cc.HandleButtonTransition(pressPrimary(0, 0))
	in := frame(0, 500)
	in.CursorAvailable = false
	cc.Update(in, &tr, NewPerspectiveProjection())

	if !vec3Near(tr.Translation, mgl32.Vec3{0, 0, 10}, 1e-4) {
		t.Errorf("Pivot without cursor: expected no movement, got %v", tr.Translation)
	}
	if cc.SphericalPosition() != before {
		t.Errorf("Pivot without cursor: spherical changed to %v", cc.SphericalPosition())
	}
	if _, ok := cc.State().(Pivoting); !ok {
		t.Errorf("Pivot without cursor: expected drag to persist, got %v", cc.State())
	}
}

func TestDragSkippedForEmptyViewport(t *testing.T) {
	sizes := []struct{ width, height float32 }{{0, 0}, {1000, 0}, {0, 1000}}
	for _, size := range sizes {
		for _, press := range []common.FrameInput{pressPrimary(0, 0), pressSecondary(0, 0)} {
			cc := NewCameraController(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})
			tr := cc.Transform()
			cc.HandleButtonTransition(press)
			before := cc.SphericalPosition()

			in := frame(200, 300)
			in.Width, in.Height = size.width, size.height
			cc.Update(in, &tr, NewPerspectiveProjection())

			if _, isPivot := cc.State().(Pivoting); isPivot && size.height > 0 {
				continue
			}
			if cc.SphericalPosition() != before {
				t.Errorf("Viewport %vx%v during %v: spherical changed to %v", size.width, size.height, cc.State(), cc.SphericalPosition())
			}
			if !vec3Near(tr.Translation, mgl32.Vec3{0, 0, 10}, 1e-4) {
				t.Errorf("Viewport %vx%v during %v: expected no movement, got %v", size.width, size.height, cc.State(), tr.Translation)
			}
			if cc.Target() != (mgl32.Vec3{}) {
				t.Errorf("Viewport %vx%v during %v: target moved to %v", size.width, size.height, cc.State(), cc.Target())
			}
		}
	}
}

func TestDegeneratePan(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{3, 4, 5}, mgl32.Vec3{1, 1, 1})
	tr := cc.Transform()
	beforeTranslation := tr.Translation
	beforeTarget := cc.Target()
	beforeSpherical := cc.SphericalPosition()

	cc.HandleButtonTransition(pressSecondary(100, 100))
	cc.Update(frame(100, 100), &tr, NewPerspectiveProjection())

	if tr.Translation != beforeTranslation {
		t.Errorf("Degenerate pan: translation changed from %v to %v", beforeTranslation, tr.Translation)
	}
	if cc.Target() != beforeTarget {
		t.Errorf("Degenerate pan: target changed from %v to %v", beforeTarget, cc.Target())
	}
	if cc.SphericalPosition() != beforeSpherical {
		t.Errorf("Degenerate pan: spherical changed from %v to %v", beforeSpherical, cc.SphericalPosition())
	}
}

func TestPanTranslatesCameraAndTarget(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, WithPanSpeed(1))
	tr := cc.Transform()
	projection := &PerspectiveProjection{Fov: math.Pi / 2, Aspect: 1, Near: 0.1, Far: 100}

	cc.HandleButtonTransition(pressSecondary(500, 500))
	cc.Update(frame(700, 500), &tr, projection)

	// dx = 0.5·200/1000 = 0.1 along camera right (+X), scaled by radius 10.
	if !vec3Near(cc.Target(), mgl32.Vec3{-1, 0, 0}, 1e-4) {
		t.Errorf("Pan target: expected (-1,0,0), got %v", cc.Target())
	}
	if !vec3Near(tr.Translation, mgl32.Vec3{-1, 0, 10}, 1e-4) {
		t.Errorf("Pan translation: expected (-1,0,10), got %v", tr.Translation)
	}
	if r := cc.SphericalPosition().Radius; math.Abs(float64(r)-10) > 1e-4 {
		t.Errorf("Pan radius: expected 10, got %v", r)
	}
}

func TestPanVerticalFollowsCameraUp(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, WithPanSpeed(1))
	tr := cc.Transform()
	projection := &PerspectiveProjection{Fov: math.Pi / 2, Aspect: 1, Near: 0.1, Far: 100}

	cc.HandleButtonTransition(pressSecondary(500, 500))
	cc.Update(frame(500, 700), &tr, projection)

	// Dragging down moves the scene down, so the target moves up.
	if !vec3Near(cc.Target(), mgl32.Vec3{0, 1, 0}, 1e-4) {
		t.Errorf("Pan vertical target: expected (0,1,0), got %v", cc.Target())
	}
}

func TestPanIsRelativeToDragStart(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, WithPanSpeed(1))
	tr := cc.Transform()
	projection := &PerspectiveProjection{Fov: math.Pi / 2, Aspect: 1, Near: 0.1, Far: 100}

	cc.HandleButtonTransition(pressSecondary(500, 500))
	cc.Update(frame(700, 500), &tr, projection)
	cc.Update(frame(700, 500), &tr, projection)

	if !vec3Near(cc.Target(), mgl32.Vec3{-1, 0, 0}, 1e-4) {
		t.Errorf("Repeated pan frame: expected target (-1,0,0), got %v", cc.Target())
	}
	if !vec3Near(tr.Translation, mgl32.Vec3{-1, 0, 10}, 1e-4) {
		t.Errorf("Repeated pan frame: expected translation (-1,0,10), got %v", tr.Translation)
	}
}

func TestPanClampsPhi(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{})
	tr := cc.Transform()

	if phi := cc.SphericalPosition().Phi; phi != 0 {
		t.Fatalf("Start: expected phi 0, got %v", phi)
	}

	cc.HandleButtonTransition(pressSecondary(500, 500))
	cc.Update(frame(510, 500), &tr, NewPerspectiveProjection())

	if phi := cc.SphericalPosition().Phi; phi != PhiMargin {
		t.Errorf("Pan clamp: expected phi %v, got %v", PhiMargin, phi)
	}
}

func TestUpdateLooksAtTarget(t *testing.T) {
	target := mgl32.Vec3{2, 1, -3}
	cc := NewCameraController(mgl32.Vec3{5, 5, 5}, target)
	tr := NewTransform(mgl32.Vec3{5, 5, 5})

	cc.Update(frame(0, 0), &tr, NewPerspectiveProjection())

	expected := target.Sub(mgl32.Vec3{5, 5, 5}).Normalize()
	if !vec3Near(tr.Forward(), expected, 1e-4) {
		t.Errorf("LookAt: expected forward %v, got %v", expected, tr.Forward())
	}

	in := frame(0, 0)
	in.CursorAvailable = false
	tr.Rotation = mgl32.QuatIdent()
	cc.Update(in, &tr, NewPerspectiveProjection())
	if !vec3Near(tr.Forward(), expected, 1e-4) {
		t.Errorf("LookAt without cursor: expected forward %v, got %v", expected, tr.Forward())
	}
}
