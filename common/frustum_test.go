package common

import (
	"math"
	"testing"
)

// planetViewProj builds the view-projection of a camera at (0, 0, 5) looking
// at the origin with a 45 degree vertical FOV, the same shape of matrix the
// scene culls against.
func planetViewProj() []float32 {
	view := make([]float32, 16)
	LookAt(view, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	proj := make([]float32, 16)
	Perspective(proj, float32(45.0*math.Pi/180.0), 4.0/3.0, 0.1, 100)

	vp := make([]float32, 16)
	Mul4(vp, proj, view)
	return vp
}

func TestExtractFrustumNormalized(t *testing.T) {
	f := ExtractFrustumFromMatrix(planetViewProj())
	for i, p := range f.Planes {
		length := math.Sqrt(float64(
			p.Normal[0]*p.Normal[0] +
				p.Normal[1]*p.Normal[1] +
				p.Normal[2]*p.Normal[2],
		))
		if math.Abs(length-1) > 1e-5 {
			t.Errorf("plane %d normal length = %v, want 1", i, length)
		}
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	f := ExtractFrustumFromMatrix(planetViewProj())

	tests := []struct {
		name   string
		center [3]float32
		radius float32
		want   bool
	}{
		{"globe centered in view", [3]float32{0, 0, 0}, 1, true},
		{"point-like body at origin", [3]float32{0, 0, 0}, 0.01, true},
		{"behind the camera", [3]float32{0, 0, 10}, 1, false},
		{"far off to the right", [3]float32{5, 0, 0}, 1, false},
		{"far off to the left", [3]float32{-5, 0, 0}, 1, false},
		{"high above the view cone", [3]float32{0, 4, 0}, 1, false},
		{"beyond the far plane", [3]float32{0, 0, -200}, 1, false},
		{"poking into the right edge", [3]float32{3, 0, 0}, 1, true},
		{"enclosing the whole frustum", [3]float32{0, 0, 5}, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IntersectsSphere(tt.center, tt.radius); got != tt.want {
				t.Errorf("IntersectsSphere(%v, %v) = %v, want %v", tt.center, tt.radius, got, tt.want)
			}
		})
	}
}
