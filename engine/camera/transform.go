package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a camera's world placement: a translation plus a rotation whose local -Z axis
// is the view direction and local +Y axis is up.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// NewTransform creates an unrotated transform at the given translation.
//
// Parameters:
//   - translation: world-space position
//
// Returns:
//   - Transform: the transform
func NewTransform(translation mgl32.Vec3) Transform {
	return Transform{
		Translation: translation,
		Rotation:    mgl32.QuatIdent(),
	}
}

// LookAt rotates the transform so that its forward axis points at target with the given up.
// When the transform sits on target the forward axis falls back to -Z; when forward is parallel
// to up any vector orthogonal to up is used as the right axis.
//
// Parameters:
//   - target: world-space point to look at
//   - up: world-space up reference
func (t *Transform) LookAt(target, up mgl32.Vec3) {
	back := t.Translation.Sub(target)
	if back.Len() == 0 {
		back = mgl32.Vec3{0, 0, 1}
	}
	back = back.Normalize()

	if up.Len() == 0 {
		up = common.WorldUp
	}
	up = up.Normalize()

	right := up.Cross(back)
	if right.Len() < 1e-6 {
		right = common.AnyOrthonormal(up)
	} else {
		right = right.Normalize()
	}
	newUp := back.Cross(right)

	t.Rotation = mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, newUp, back).Mat4()).Normalize()
}

// Forward returns the world-space view direction.
//
// Returns:
//   - mgl32.Vec3: unit forward vector
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Up returns the world-space local up axis.
//
// Returns:
//   - mgl32.Vec3: unit up vector
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Matrix returns the world-from-camera matrix.
//
// Returns:
//   - mgl32.Mat4: translation * rotation
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).Mul4(t.Rotation.Mat4())
}

// ViewMatrix returns the camera-from-world matrix, the inverse of Matrix.
//
// Returns:
//   - mgl32.Mat4: the view matrix
func (t Transform) ViewMatrix() mgl32.Mat4 {
	return t.Matrix().Inv()
}
