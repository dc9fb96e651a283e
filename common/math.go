package common

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the world-space up axis used for every look-at orientation.
var WorldUp = mgl32.Vec3{0, 1, 0}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Perspective creates a right-handed perspective projection matrix that maps view-space depth
// into the WebGPU clip range [0, 1]. The matrix is column-major like every mgl32.Mat4.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the clip-from-view matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// Orthographic creates an orthographic projection matrix centered on the view axis with
// WebGPU [0, 1] depth.
//
// Parameters:
//   - halfHeight: half of the visible height in world units
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - mgl32.Mat4: the clip-from-view matrix
func Orthographic(halfHeight, aspect, near, far float32) mgl32.Mat4 {
	halfWidth := halfHeight * aspect

	out := mgl32.Ident4()
	out[0] = 1 / halfWidth
	out[5] = 1 / halfHeight
	out[10] = 1 / (near - far)
	out[14] = near / (near - far)
	return out
}

// AnyOrthonormal returns a unit vector perpendicular to v. v must be non-zero.
//
// Parameters:
//   - v: the reference vector
//
// Returns:
//   - mgl32.Vec3: a unit vector orthogonal to v
func AnyOrthonormal(v mgl32.Vec3) mgl32.Vec3 {
	axis := mgl32.Vec3{1, 0, 0}
	if float32(math.Abs(float64(v.Normalize().X()))) > 0.9 {
		axis = mgl32.Vec3{0, 0, 1}
	}
	return v.Cross(axis).Normalize()
}
