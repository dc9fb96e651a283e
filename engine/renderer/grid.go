package renderer

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// LineVertex is the GPU vertex layout of the line pipeline.
// Size: 28 bytes (position vec3<f32> at offset 0, color vec4<f32> at offset 12).
type LineVertex struct {
	Position [3]float32
	Color    [4]float32
}

// lineVertexStride is the byte stride of LineVertex in a vertex buffer.
const lineVertexStride = uint64(unsafe.Sizeof(LineVertex{}))

var (
	gridColor   = [4]float32{0.35, 0.35, 0.35, 1}
	axisXColor  = [4]float32{0.85, 0.25, 0.25, 1}
	axisYColor  = [4]float32{0.25, 0.85, 0.25, 1}
	axisZColor  = [4]float32{0.25, 0.45, 0.95, 1}
	markerColor = [4]float32{1, 0.8, 0.2, 1}
)

func lineSegment(a, b mgl32.Vec3, color [4]float32) [2]LineVertex {
	return [2]LineVertex{
		{Position: [3]float32{a.X(), a.Y(), a.Z()}, Color: color},
		{Position: [3]float32{b.X(), b.Y(), b.Z()}, Color: color},
	}
}

// BuildGrid returns a line list for a square grid on the y = 0 plane with colored world axes.
// The grid spans [-halfLines*spacing, halfLines*spacing] on X and Z. Lines through the origin
// are drawn as the X and Z axes, and the Y axis points up from the origin.
//
// Parameters:
//   - halfLines: number of grid lines on each side of the origin
//   - spacing: distance between adjacent grid lines in world units
//
// Returns:
//   - []LineVertex: pairs of vertices, one pair per segment (8*halfLines + 6 vertices)
func BuildGrid(halfLines int, spacing float32) []LineVertex {
	if halfLines < 0 {
		halfLines = 0
	}
	extent := float32(halfLines) * spacing
	out := make([]LineVertex, 0, 8*halfLines+6)

	for i := -halfLines; i <= halfLines; i++ {
		if i == 0 {
			continue
		}
		o := float32(i) * spacing
		x := lineSegment(mgl32.Vec3{-extent, 0, o}, mgl32.Vec3{extent, 0, o}, gridColor)
		z := lineSegment(mgl32.Vec3{o, 0, -extent}, mgl32.Vec3{o, 0, extent}, gridColor)
		out = append(out, x[0], x[1], z[0], z[1])
	}

	ax := lineSegment(mgl32.Vec3{-extent, 0, 0}, mgl32.Vec3{extent, 0, 0}, axisXColor)
	ay := lineSegment(mgl32.Vec3{}, mgl32.Vec3{0, extent, 0}, axisYColor)
	az := lineSegment(mgl32.Vec3{0, 0, -extent}, mgl32.Vec3{0, 0, extent}, axisZColor)
	return append(out, ax[0], ax[1], ay[0], ay[1], az[0], az[1])
}

// BuildTargetMarker returns a line list drawing a small three-axis cross centered on the orbit target.
//
// Parameters:
//   - target: the orbit target in world space
//   - size: half-length of each arm in world units
//
// Returns:
//   - []LineVertex: six vertices forming three segments
func BuildTargetMarker(target mgl32.Vec3, size float32) []LineVertex {
	out := make([]LineVertex, 0, 6)
	for _, axis := range []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		arm := axis.Mul(size)
		seg := lineSegment(target.Sub(arm), target.Add(arm), markerColor)
		out = append(out, seg[0], seg[1])
	}
	return out
}
