package planet

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/terra-go/common"
)

// Mesh holds the CPU-side geometry of a planet sphere: the vertex array in GPU
// layout and the triangle index list. Vertices are laid out stack-major, one row
// of sectorCount+1 entries per stack ring (the seam column is duplicated so
// texture-style wrapping never interpolates across the 2π boundary), with the
// north pole row first.
type Mesh struct {
	Radius      float32
	SectorCount int
	StackCount  int
	Vertices    []GPUPlanetVertex
	Indices     []uint32
}

// GenerateMesh builds a UV sphere by sweeping stack rings from the north pole
// (+Z) down to the south pole (−Z) and sectors counter-clockwise around the Z
// axis. Each vertex carries its position and the unit normal position/radius.
// Pole rings collapse to repeated points, so the triangulation skips the
// degenerate triangle of each quad touching a pole: stacks emit two triangles
// per sector except the first and last, which emit one.
//
// Parameters:
//   - radius: sphere radius in world units, must be positive
//   - sectorCount: longitudinal subdivisions, minimum 3
//   - stackCount: latitudinal subdivisions, minimum 2
//
// Returns:
//   - *Mesh: the generated geometry with (sectorCount+1)*(stackCount+1) vertices
//     and 2*sectorCount*(stackCount-1) triangles
//   - error: error if any parameter is out of range
func GenerateMesh(radius float32, sectorCount, stackCount int) (*Mesh, error) {
	if sectorCount < 3 {
		return nil, fmt.Errorf("sector count %d below minimum 3", sectorCount)
	}
	if stackCount < 2 {
		return nil, fmt.Errorf("stack count %d below minimum 2", stackCount)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("radius %g must be positive", radius)
	}

	sectorStep := 2 * math.Pi / float64(sectorCount)
	stackStep := math.Pi / float64(stackCount)
	lengthInv := 1 / float64(radius)

	vertices := make([]GPUPlanetVertex, 0, (sectorCount+1)*(stackCount+1))
	for i := 0; i <= stackCount; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep
		xy := float64(radius) * math.Cos(stackAngle)
		z := float64(radius) * math.Sin(stackAngle)

		for j := 0; j <= sectorCount; j++ {
			sectorAngle := float64(j) * sectorStep
			x := xy * math.Cos(sectorAngle)
			y := xy * math.Sin(sectorAngle)
			vertices = append(vertices, GPUPlanetVertex{
				Position: [3]float32{float32(x), float32(y), float32(z)},
				Normal:   [3]float32{float32(x * lengthInv), float32(y * lengthInv), float32(z * lengthInv)},
			})
		}
	}

	indices := make([]uint32, 0, 6*sectorCount*(stackCount-1))
	for i := 0; i < stackCount; i++ {
		k1 := uint32(i * (sectorCount + 1))
		k2 := k1 + uint32(sectorCount) + 1

		for j := 0; j < sectorCount; j++ {
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if i != stackCount-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
			k1++
			k2++
		}
	}

	return &Mesh{
		Radius:      radius,
		SectorCount: sectorCount,
		StackCount:  stackCount,
		Vertices:    vertices,
		Indices:     indices,
	}, nil
}

// VertexCount returns the number of vertices in the mesh.
//
// Returns:
//   - int: the vertex count, including duplicated seam and pole vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles in the mesh.
//
// Returns:
//   - int: the triangle count.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// VertexBytes returns the vertex array viewed as raw bytes for GPU upload.
//
// Returns:
//   - []byte: the vertex data, 24 bytes per vertex.
func (m *Mesh) VertexBytes() []byte {
	return common.SliceToBytes(m.Vertices)
}

// IndexBytes returns the index array viewed as raw bytes for GPU upload.
//
// Returns:
//   - []byte: the index data, 4 bytes per index.
func (m *Mesh) IndexBytes() []byte {
	return common.SliceToBytes(m.Indices)
}
