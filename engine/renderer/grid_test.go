package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLineVertexStride(t *testing.T) {
	if lineVertexStride != 28 {
		t.Errorf("lineVertexStride: expected 28, got %d", lineVertexStride)
	}
}

func TestBuildGrid(t *testing.T) {
	v := BuildGrid(5, 2)
	if len(v) != 8*5+6 {
		t.Fatalf("BuildGrid: expected %d vertices, got %d", 8*5+6, len(v))
	}

	for i, vert := range v[:len(v)-6] {
		if vert.Position[1] != 0 {
			t.Errorf("BuildGrid[%d]: expected y = 0, got %v", i, vert.Position[1])
		}
		for _, c := range []float32{vert.Position[0], vert.Position[2]} {
			if c < -10 || c > 10 {
				t.Errorf("BuildGrid[%d]: coordinate %v outside extent", i, c)
			}
		}
	}

	yAxis := v[len(v)-4 : len(v)-2]
	if yAxis[0].Position != [3]float32{0, 0, 0} || yAxis[1].Position != [3]float32{0, 10, 0} {
		t.Errorf("BuildGrid: expected Y axis from origin to (0,10,0), got %v", yAxis)
	}
	if yAxis[0].Color != axisYColor {
		t.Errorf("BuildGrid: expected Y axis color %v, got %v", axisYColor, yAxis[0].Color)
	}
}

func TestBuildGridNegativeLines(t *testing.T) {
	if v := BuildGrid(-3, 1); len(v) != 6 {
		t.Errorf("BuildGrid(-3): expected axes only, got %d vertices", len(v))
	}
}

func TestBuildTargetMarker(t *testing.T) {
	target := mgl32.Vec3{1, 2, 3}
	v := BuildTargetMarker(target, 0.5)
	if len(v) != 6 {
		t.Fatalf("BuildTargetMarker: expected 6 vertices, got %d", len(v))
	}
	for i := 0; i < len(v); i += 2 {
		a := mgl32.Vec3(v[i].Position)
		b := mgl32.Vec3(v[i+1].Position)
		mid := a.Add(b).Mul(0.5)
		if mid.Sub(target).Len() > 1e-5 {
			t.Errorf("BuildTargetMarker: segment %d not centered on target, mid %v", i/2, mid)
		}
		if l := b.Sub(a).Len(); math.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("BuildTargetMarker: segment %d expected length 1, got %v", i/2, l)
		}
	}
}
