package shading

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestHash2Range(t *testing.T) {
	tests := []struct {
		name string
		p    mgl32.Vec2
	}{
		{"origin", mgl32.Vec2{0, 0}},
		{"unit", mgl32.Vec2{1, 1}},
		{"negative", mgl32.Vec2{-3.2, -7.9}},
		{"large", mgl32.Vec2{151.4, -982.3}},
		{"fractional", mgl32.Vec2{0.5, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hash2(tt.p)
			if got < 0 || got >= 1 {
				t.Errorf("Hash2(%v) = %v, want value in [0, 1)", tt.p, got)
			}
			if again := Hash2(tt.p); again != got {
				t.Errorf("Hash2(%v) not deterministic: %v then %v", tt.p, got, again)
			}
		})
	}
}

func TestHash2Distinct(t *testing.T) {
	a := Hash2(mgl32.Vec2{1, 2})
	b := Hash2(mgl32.Vec2{2, 1})
	if a == b {
		t.Errorf("Hash2(1,2) == Hash2(2,1) == %v, expected distinct values", a)
	}
}

func TestValueNoise2Lattice(t *testing.T) {
	// At integer lattice points the fractional part is zero, so the noise
	// collapses to the corner hash.
	tests := []struct {
		name string
		p    mgl32.Vec2
	}{
		{"origin", mgl32.Vec2{0, 0}},
		{"positive", mgl32.Vec2{2, 3}},
		{"negative", mgl32.Vec2{-4, -1}},
		{"mixed", mgl32.Vec2{5, -7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueNoise2(tt.p)
			want := Hash2(tt.p)
			if math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("ValueNoise2(%v) = %v, want corner hash %v", tt.p, got, want)
			}
		})
	}
}

func TestValueNoise2Range(t *testing.T) {
	for y := float32(-3); y <= 3; y += 0.37 {
		for x := float32(-3); x <= 3; x += 0.37 {
			got := ValueNoise2(mgl32.Vec2{x, y})
			if got < 0 || got >= 1 {
				t.Fatalf("ValueNoise2(%v, %v) = %v, want value in [0, 1)", x, y, got)
			}
		}
	}
}

func TestValueNoise2Continuity(t *testing.T) {
	// The blended field must not jump across cell boundaries.
	const eps = 1e-4
	tests := []mgl32.Vec2{
		{0.9999, 0.5},
		{0.5, 0.9999},
		{-1.0001, 0.25},
		{2.5, -0.0001},
	}

	for _, p := range tests {
		a := ValueNoise2(p)
		b := ValueNoise2(mgl32.Vec2{p.X() + eps, p.Y() + eps})
		if math.Abs(float64(a-b)) > 0.01 {
			t.Errorf("ValueNoise2 discontinuous near %v: %v vs %v", p, a, b)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name  string
		edge0 float32
		edge1 float32
		x     float32
		want  float32
	}{
		{"below", 0.35, 0.45, 0.3, 0},
		{"at lower edge", 0.35, 0.45, 0.35, 0},
		{"midpoint", 0.35, 0.45, 0.4, 0.5},
		{"at upper edge", 0.35, 0.45, 0.45, 1},
		{"above", 0.35, 0.45, 0.6, 1},
		{"unit midpoint", 0, 1, 0.5, 0.5},
		{"unit quarter", 0, 1, 0.25, 0.15625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Smoothstep(tt.edge0, tt.edge1, tt.x)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("Smoothstep(%v, %v, %v) = %v, want %v", tt.edge0, tt.edge1, tt.x, got, tt.want)
			}
		})
	}
}

func TestSmoothstepMonotonic(t *testing.T) {
	prev := float32(-1)
	for x := float32(0); x <= 1.0; x += 0.01 {
		got := Smoothstep(0.25, 0.75, x)
		if got < prev {
			t.Fatalf("Smoothstep not monotonic at x=%v: %v < %v", x, got, prev)
		}
		prev = got
	}
}
