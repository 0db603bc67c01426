package common

import (
	"math"
	"testing"
)

// transform applies a column-major 4x4 matrix to a homogeneous vector.
func transform(m []float32, v [4]float32) [4]float32 {
	var out [4]float32
	for i := 0; i < 4; i++ {
		out[i] = m[0*4+i]*v[0] + m[1*4+i]*v[1] + m[2*4+i]*v[2] + m[3*4+i]*v[3]
	}
	return out
}

func approxEqual(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i) + 1
	}
	Identity(m)

	for i, v := range m {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if v != want {
			t.Errorf("m[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestMul4Identity(t *testing.T) {
	var id [16]float32
	Identity(id[:])

	m := make([]float32, 16)
	BuildModelMatrix(m, 1, 2, 3, 0.4, 0.5, 0.6, 1, 2, 3)

	var out [16]float32
	Mul4(out[:], m, id[:])
	for i := range out {
		if out[i] != m[i] {
			t.Fatalf("m * I differs at %d: %v != %v", i, out[i], m[i])
		}
	}
	Mul4(out[:], id[:], m)
	for i := range out {
		if out[i] != m[i] {
			t.Fatalf("I * m differs at %d: %v != %v", i, out[i], m[i])
		}
	}
}

func TestMul4Translation(t *testing.T) {
	var a, b, out [16]float32
	Identity(a[:])
	Identity(b[:])
	a[12], a[13], a[14] = 1, 2, 3
	b[12], b[13], b[14] = 10, 20, 30

	// Composing two translations adds the offsets.
	Mul4(out[:], a[:], b[:])
	if out[12] != 11 || out[13] != 22 || out[14] != 33 {
		t.Errorf("translation composition = (%v, %v, %v), want (11, 22, 33)", out[12], out[13], out[14])
	}
}

func TestMul4AliasesOutput(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 1, 2, 3, 0.3, 0.2, 0.1, 1, 1, 1)
	want := make([]float32, 16)
	Mul4(want, m, m)

	// Writing the product over one of its own operands must be safe.
	Mul4(m, m, m)
	for i := range m {
		if m[i] != want[i] {
			t.Fatalf("aliased Mul4 differs at %d: %v != %v", i, m[i], want[i])
		}
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.1, 100.0
	m := make([]float32, 16)
	Perspective(m, float32(45.0*math.Pi/180.0), 16.0/9.0, near, far)

	// WebGPU clip space: z maps to [0, 1] between the near and far planes.
	atNear := transform(m, [4]float32{0, 0, -near, 1})
	if z := atNear[2] / atNear[3]; !approxEqual(z, 0, 1e-5) {
		t.Errorf("depth at near plane = %v, want 0", z)
	}
	atFar := transform(m, [4]float32{0, 0, -far, 1})
	if z := atFar[2] / atFar[3]; !approxEqual(z, 1, 1e-4) {
		t.Errorf("depth at far plane = %v, want 1", z)
	}

	// A point on the vertical FOV boundary lands on the clip edge y = w.
	halfTan := float32(math.Tan(45.0 * math.Pi / 360.0))
	edge := transform(m, [4]float32{0, 10 * halfTan, -10, 1})
	if y := edge[1] / edge[3]; !approxEqual(y, 1, 1e-5) {
		t.Errorf("FOV edge projects to y = %v, want 1", y)
	}
}

func TestBuildModelMatrixTranslateScale(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 5, -3, 2, 0, 0, 0, 2, 3, 4)

	p := transform(m, [4]float32{1, 1, 1, 1})
	want := [4]float32{2 + 5, 3 - 3, 4 + 2, 1}
	for i := range p {
		if !approxEqual(p[i], want[i], 1e-6) {
			t.Fatalf("transformed point = %v, want %v", p, want)
		}
	}
}

func TestBuildModelMatrixRotationOrthonormal(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, 0.7, -1.2, 0.3, 1, 1, 1)

	// With unit scale the upper-left 3x3 block is a pure rotation: columns
	// are unit length and mutually orthogonal.
	cols := [3][3]float32{
		{m[0], m[1], m[2]},
		{m[4], m[5], m[6]},
		{m[8], m[9], m[10]},
	}
	for i, c := range cols {
		length := float32(math.Sqrt(float64(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])))
		if !approxEqual(length, 1, 1e-5) {
			t.Errorf("column %d length = %v, want 1", i, length)
		}
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			dot := cols[i][0]*cols[j][0] + cols[i][1]*cols[j][1] + cols[i][2]*cols[j][2]
			if !approxEqual(dot, 0, 1e-5) {
				t.Errorf("columns %d and %d not orthogonal: dot = %v", i, j, dot)
			}
		}
	}
}

func TestInvert4RoundTrip(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 1.5, -2, 3, 0.5, 1.1, -0.7, 2, 2, 2)

	inv := make([]float32, 16)
	if !Invert4(inv, m) {
		t.Fatal("Invert4 reported a well-formed model matrix as singular")
	}

	var product [16]float32
	Mul4(product[:], m, inv)
	for i := range product {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if !approxEqual(product[i], want, 1e-4) {
			t.Fatalf("m * inv(m) differs from identity at %d: %v", i, product[i])
		}
	}
}

func TestInvert4Singular(t *testing.T) {
	m := make([]float32, 16) // all zeros, determinant 0
	out := make([]float32, 16)
	for i := range out {
		out[i] = 42
	}

	if Invert4(out, m) {
		t.Fatal("Invert4 inverted a singular matrix")
	}
	for i, v := range out {
		if v != 42 {
			t.Fatalf("singular Invert4 modified out[%d] = %v", i, v)
		}
	}
}

func TestTranspose4(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}

	out := make([]float32, 16)
	Transpose4(out, m)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if out[r*4+c] != m[c*4+r] {
				t.Fatalf("transpose[%d][%d] = %v, want %v", r, c, out[r*4+c], m[c*4+r])
			}
		}
	}

	// In-place transpose is documented as safe.
	Transpose4(m, m)
	for i := range m {
		if m[i] != out[i] {
			t.Fatalf("aliased transpose differs at %d: %v != %v", i, m[i], out[i])
		}
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, 1.05, 0.2, 0.3, 0, 0, 0, 0, 1, 0)

	eye := transform(m, [4]float32{1.05, 0.2, 0.3, 1})
	for i := 0; i < 3; i++ {
		if !approxEqual(eye[i], 0, 1e-5) {
			t.Fatalf("eye transforms to %v, want origin", eye)
		}
	}

	// The look target must land on the negative Z axis in view space.
	target := transform(m, [4]float32{0, 0, 0, 1})
	if target[2] >= 0 {
		t.Errorf("target z = %v, want negative", target[2])
	}
	if !approxEqual(target[0], 0, 1e-5) || !approxEqual(target[1], 0, 1e-5) {
		t.Errorf("target xy = (%v, %v), want (0, 0)", target[0], target[1])
	}
}

func TestLookAtPreservesDistance(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, 0, 0, 3, 0, 0, 0, 0, 1, 0)

	// A rigid transform keeps lengths: a point one unit from the eye stays
	// one unit from the view-space origin.
	p := transform(m, [4]float32{0, 1, 3, 1})
	dist := float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
	if !approxEqual(dist, 1, 1e-5) {
		t.Errorf("distance after view transform = %v, want 1", dist)
	}
}

func TestSliceToBytes(t *testing.T) {
	if got := SliceToBytes([]float32(nil)); got != nil {
		t.Errorf("SliceToBytes(nil) = %v, want nil", got)
	}

	data := []uint32{0x04030201, 0x08070605}
	b := SliceToBytes(data)
	if len(b) != 8 {
		t.Fatalf("len = %d, want 8", len(b))
	}
	for i := 0; i < 8; i++ {
		if b[i] != byte(i+1) {
			t.Fatalf("b[%d] = %#x, want %#x", i, b[i], byte(i+1))
		}
	}
}

func TestStructToBytes(t *testing.T) {
	v := struct {
		A uint32
		B uint32
	}{A: 0x11111111, B: 0x22222222}

	b := StructToBytes(&v)
	if len(b) != 8 {
		t.Fatalf("len = %d, want 8", len(b))
	}
	if b[0] != 0x11 || b[4] != 0x22 {
		t.Errorf("unexpected layout: % x", b)
	}
}
