package planet

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUPlanetVertexSource is the canonical WGSL definition of the VertexInput struct for the planet pipeline.
// Matches GPUPlanetVertex layout exactly (24 bytes, tightly packed vertex attributes).
//
//go:embed assets/vertex.wgsl
var GPUPlanetVertexSource string

// GPUPlanetVertex is the GPU-aligned representation of a single planet surface vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUPlanetVertexSource).
// Size: 24 bytes (two vec3 attributes, no padding required).
type GPUPlanetVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: unit normal, position / radius (12 bytes)
}

// Size returns the size of the GPUPlanetVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUPlanetVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUPlanetVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload.
func (g *GPUPlanetVertex) Marshal() []byte {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[2]))
	return buf
}

// GPUPlanetDataSource is the canonical WGSL definition of the PlanetData struct for the globe transform.
// Matches GPUPlanetData layout exactly (128 bytes, std140 aligned).
//
//go:embed assets/planet_data.wgsl
var GPUPlanetDataSource string

// GPUPlanetData is the GPU-aligned representation of the planet transform uniforms.
// The normal matrix is the inverse-transpose of the model matrix, computed host-side
// so the fragment stage can light with correctly transformed normals even if a
// non-uniform scale is ever applied.
// Matches the WGSL PlanetData struct layout exactly (see GPUPlanetDataSource).
// Size: 128 bytes (two mat4x4<f32>, std140 aligned, no padding required).
type GPUPlanetData struct {
	Model  [16]float32 // offset  0: 4×4 model-to-world transform matrix (64 bytes)
	Normal [16]float32 // offset 64: 4×4 inverse-transpose of the model matrix (64 bytes)
}

// Size returns the size of the GPUPlanetData struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUPlanetData) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUPlanetData struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 128-byte buffer ready for GPU upload.
func (g *GPUPlanetData) Marshal() []byte {
	buf := make([]byte, 128)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.Model[i]))
	}
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[64+i*4:64+(i+1)*4], math.Float32bits(g.Normal[i]))
	}
	return buf
}
