package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// near reports whether a and b differ by at most tol.
func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

// vec3Near compares each component of a and b with an absolute tolerance.
func vec3Near(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if !near(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func vec4Near(a, b mgl32.Vec4, tol float32) bool {
	for i := range a {
		if !near(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func mat4Near(a, b mgl32.Mat4, tol float32) bool {
	for i := range a {
		if !near(a[i], b[i], tol) {
			return false
		}
	}
	return true
}
