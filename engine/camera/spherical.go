package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PhiMargin keeps the polar angle off the poles, where the look-at basis degenerates.
const PhiMargin float32 = 1e-6

// SphericalCoordinate is an offset from an orbit target expressed as (radius, theta, phi).
// Theta is the azimuth in the XZ-plane measured from +Z towards +X, phi is the polar angle
// measured from +Y. It is a value type; copy it freely.
type SphericalCoordinate struct {
	Radius float32
	Theta  float32
	Phi    float32
}

// SphericalFromCartesian converts a Cartesian offset into spherical coordinates.
// The zero vector maps to {0, 0, 0}.
//
// Parameters:
//   - v: the offset from the target
//
// Returns:
//   - SphericalCoordinate: the equivalent spherical offset
func SphericalFromCartesian(v mgl32.Vec3) SphericalCoordinate {
	s := SphericalCoordinate{Radius: v.Len()}
	if s.Radius == 0 {
		return s
	}

	s.Theta = float32(math.Atan2(float64(v.X()), float64(v.Z())))
	// acos is undefined outside [-1, 1]; rounding can overshoot at the poles.
	s.Phi = float32(math.Acos(float64(mgl32.Clamp(v.Y()/s.Radius, -1, 1))))
	return s
}

// Cartesian converts the spherical offset back into a Cartesian offset.
//
// Returns:
//   - mgl32.Vec3: the offset from the target
func (s SphericalCoordinate) Cartesian() mgl32.Vec3 {
	sinPhi := float32(math.Sin(float64(s.Phi)))
	cosPhi := float32(math.Cos(float64(s.Phi)))
	sinTheta := float32(math.Sin(float64(s.Theta)))
	cosTheta := float32(math.Cos(float64(s.Theta)))

	return mgl32.Vec3{
		s.Radius * sinPhi * sinTheta,
		s.Radius * cosPhi,
		s.Radius * sinPhi * cosTheta,
	}
}

// ClampPhi clamps Phi into [PhiMargin, π-PhiMargin] in place.
func (s *SphericalCoordinate) ClampPhi() {
	s.Phi = mgl32.Clamp(s.Phi, PhiMargin, float32(math.Pi)-PhiMargin)
}
