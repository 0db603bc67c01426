package planet

import (
	"math"
	"testing"
)

func TestGenerateMeshCounts(t *testing.T) {
	tests := []struct {
		name        string
		sectorCount int
		stackCount  int
		wantVerts   int
		wantTris    int
	}{
		{"default", 72, 36, 73 * 37, 2 * 72 * 35},
		{"minimal", 3, 2, 4 * 3, 2 * 3 * 1},
		{"coarse", 8, 4, 9 * 5, 2 * 8 * 3},
		{"tall", 4, 16, 5 * 17, 2 * 4 * 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := GenerateMesh(1.0, tt.sectorCount, tt.stackCount)
			if err != nil {
				t.Fatalf("GenerateMesh() error = %v", err)
			}
			if got := m.VertexCount(); got != tt.wantVerts {
				t.Errorf("VertexCount() = %d, want %d", got, tt.wantVerts)
			}
			if got := m.TriangleCount(); got != tt.wantTris {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.wantTris)
			}
			if len(m.Indices) != 3*tt.wantTris {
				t.Errorf("len(Indices) = %d, want %d", len(m.Indices), 3*tt.wantTris)
			}
		})
	}
}

func TestGenerateMeshInvalid(t *testing.T) {
	tests := []struct {
		name        string
		radius      float32
		sectorCount int
		stackCount  int
	}{
		{"too few sectors", 1.0, 2, 36},
		{"too few stacks", 1.0, 72, 1},
		{"zero radius", 0, 72, 36},
		{"negative radius", -1.0, 72, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateMesh(tt.radius, tt.sectorCount, tt.stackCount); err == nil {
				t.Errorf("GenerateMesh(%g, %d, %d) expected error, got nil", tt.radius, tt.sectorCount, tt.stackCount)
			}
		})
	}
}

func TestGenerateMeshPoles(t *testing.T) {
	const radius = 2.5
	m, err := GenerateMesh(radius, 8, 4)
	if err != nil {
		t.Fatalf("GenerateMesh() error = %v", err)
	}

	// First ring collapses to the north pole at +Z, last ring to the south pole at -Z.
	rowLen := m.SectorCount + 1
	for j := 0; j < rowLen; j++ {
		north := m.Vertices[j]
		if math.Abs(float64(north.Position[0])) > 1e-5 ||
			math.Abs(float64(north.Position[1])) > 1e-5 ||
			math.Abs(float64(north.Position[2])-radius) > 1e-5 {
			t.Errorf("north pole vertex %d = %v, want (0, 0, %g)", j, north.Position, radius)
		}
		if math.Abs(float64(north.Normal[2])-1) > 1e-5 {
			t.Errorf("north pole normal %d = %v, want (0, 0, 1)", j, north.Normal)
		}

		south := m.Vertices[m.StackCount*rowLen+j]
		if math.Abs(float64(south.Position[2])+radius) > 1e-5 {
			t.Errorf("south pole vertex %d = %v, want z = %g", j, south.Position, -radius)
		}
	}
}

func TestGenerateMeshNormals(t *testing.T) {
	const radius = 3.0
	m, err := GenerateMesh(radius, 12, 6)
	if err != nil {
		t.Fatalf("GenerateMesh() error = %v", err)
	}

	for i, v := range m.Vertices {
		nx, ny, nz := float64(v.Normal[0]), float64(v.Normal[1]), float64(v.Normal[2])
		length := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if math.Abs(length-1) > 1e-5 {
			t.Fatalf("vertex %d normal length = %v, want 1", i, length)
		}

		// Normal is position scaled by 1/radius.
		for k := 0; k < 3; k++ {
			want := v.Position[k] / radius
			if math.Abs(float64(v.Normal[k]-want)) > 1e-5 {
				t.Fatalf("vertex %d normal[%d] = %v, want %v", i, k, v.Normal[k], want)
			}
		}

		dist := math.Sqrt(float64(v.Position[0])*float64(v.Position[0]) +
			float64(v.Position[1])*float64(v.Position[1]) +
			float64(v.Position[2])*float64(v.Position[2]))
		if math.Abs(dist-radius) > 1e-4 {
			t.Fatalf("vertex %d distance from origin = %v, want %v", i, dist, radius)
		}
	}
}

func TestGenerateMeshSeam(t *testing.T) {
	m, err := GenerateMesh(1.0, 6, 3)
	if err != nil {
		t.Fatalf("GenerateMesh() error = %v", err)
	}

	// The first and last column of every ring share a position so the seam never gaps.
	rowLen := m.SectorCount + 1
	for i := 0; i <= m.StackCount; i++ {
		first := m.Vertices[i*rowLen]
		last := m.Vertices[i*rowLen+m.SectorCount]
		for k := 0; k < 3; k++ {
			if math.Abs(float64(first.Position[k]-last.Position[k])) > 1e-5 {
				t.Errorf("ring %d seam mismatch: first = %v, last = %v", i, first.Position, last.Position)
			}
		}
	}
}

func TestGenerateMeshIndices(t *testing.T) {
	m, err := GenerateMesh(1.0, 3, 2)
	if err != nil {
		t.Fatalf("GenerateMesh() error = %v", err)
	}

	for i, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Fatalf("index %d = %d out of range, vertex count %d", i, idx, m.VertexCount())
		}
	}

	// With two stacks every triangle touches a pole, so each quad contributes
	// exactly one triangle and the two pole fans cover all six.
	want := []uint32{
		1, 4, 5,
		2, 5, 6,
		3, 6, 7,
		4, 8, 5,
		5, 9, 6,
		6, 10, 7,
	}
	if len(m.Indices) != len(want) {
		t.Fatalf("len(Indices) = %d, want %d", len(m.Indices), len(want))
	}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Errorf("Indices[%d] = %d, want %d", i, m.Indices[i], want[i])
		}
	}
}

func TestMeshBytes(t *testing.T) {
	m, err := GenerateMesh(1.0, 8, 4)
	if err != nil {
		t.Fatalf("GenerateMesh() error = %v", err)
	}

	var v GPUPlanetVertex
	if got, want := len(m.VertexBytes()), m.VertexCount()*v.Size(); got != want {
		t.Errorf("len(VertexBytes()) = %d, want %d", got, want)
	}
	if got, want := len(m.IndexBytes()), len(m.Indices)*4; got != want {
		t.Errorf("len(IndexBytes()) = %d, want %d", got, want)
	}
}
