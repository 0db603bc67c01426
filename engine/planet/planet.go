package planet

import (
	"fmt"
	"sync/atomic"

	"github.com/Carmen-Shannon/terra-go/common"
	"github.com/Carmen-Shannon/terra-go/engine/renderer/bind_group_provider"
)

type planet struct {
	name        string
	radius      float32
	sectorCount int
	stackCount  int
	enabled     atomic.Bool

	// globe orientation applied as rotY(yaw) then rotX(pitch)
	yaw   float32
	pitch float32

	mesh         *Mesh
	meshProvider bind_group_provider.BindGroupProvider
	dataProvider bind_group_provider.BindGroupProvider
}

// Planet defines the interface for the renderable globe entity. It owns the
// generated sphere geometry, the manual-mode orientation state, and the GPU
// resource handles the Scene uploads to. Orientation is written by the Scene
// on the render goroutine only; readers elsewhere should go through the
// flight controller, which keeps its own guarded copy.
type Planet interface {
	// Name returns the planet's name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled returns whether the planet is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Radius returns the sphere radius in world units.
	//
	// Returns:
	//   - float32: the radius
	Radius() float32

	// Mesh returns the generated CPU-side geometry.
	//
	// Returns:
	//   - *Mesh: the sphere mesh
	Mesh() *Mesh

	// MeshProvider returns the provider holding the vertex and index buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh resource provider
	MeshProvider() bind_group_provider.BindGroupProvider

	// DataProvider returns the provider holding the PlanetData uniform buffer.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the transform resource provider
	DataProvider() bind_group_provider.BindGroupProvider

	// Orientation returns the current globe rotation angles in radians.
	//
	// Returns:
	//   - yaw: rotation about the world Y axis
	//   - pitch: rotation about the world X axis
	Orientation() (yaw, pitch float32)

	// SetEnabled sets whether the planet is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetOrientation replaces the globe rotation angles.
	//
	// Parameters:
	//   - yaw: rotation about the world Y axis in radians
	//   - pitch: rotation about the world X axis in radians
	SetOrientation(yaw, pitch float32)

	// Rotate offsets the globe rotation angles.
	//
	// Parameters:
	//   - dYaw: yaw delta in radians
	//   - dPitch: pitch delta in radians
	Rotate(dYaw, dPitch float32)

	// GPUData builds the transform uniforms for the current orientation. The
	// model matrix is rotY(yaw) followed by rotX(pitch); the normal matrix is
	// its inverse-transpose.
	//
	// Returns:
	//   - GPUPlanetData: the marshalable transform block
	GPUData() GPUPlanetData
}

var _ Planet = &planet{}

// NewPlanet generates the sphere mesh and wraps it in a Planet with fresh
// resource providers. Buffers are not uploaded here; the Scene stages them
// through the Renderer when the planet is added.
//
// Parameters:
//   - options: optional builder options to configure the planet
//
// Returns:
//   - Planet: the constructed planet
//   - error: error if the mesh parameters are out of range
func NewPlanet(options ...PlanetBuilderOption) (Planet, error) {
	p := &planet{
		name:        "planet",
		radius:      1.0,
		sectorCount: 72,
		stackCount:  36,
	}
	p.enabled.Store(true)

	for _, opt := range options {
		opt(p)
	}

	mesh, err := GenerateMesh(p.radius, p.sectorCount, p.stackCount)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mesh for %q: %w", p.name, err)
	}
	p.mesh = mesh
	p.meshProvider = bind_group_provider.NewBindGroupProvider(p.name + "_mesh")
	p.dataProvider = bind_group_provider.NewBindGroupProvider(p.name + "_data")
	return p, nil
}

func (p *planet) Name() string {
	return p.name
}

func (p *planet) Enabled() bool {
	return p.enabled.Load()
}

func (p *planet) Radius() float32 {
	return p.radius
}

func (p *planet) Mesh() *Mesh {
	return p.mesh
}

func (p *planet) MeshProvider() bind_group_provider.BindGroupProvider {
	return p.meshProvider
}

func (p *planet) DataProvider() bind_group_provider.BindGroupProvider {
	return p.dataProvider
}

func (p *planet) Orientation() (yaw, pitch float32) {
	return p.yaw, p.pitch
}

func (p *planet) SetEnabled(enabled bool) {
	p.enabled.Store(enabled)
}

func (p *planet) SetOrientation(yaw, pitch float32) {
	p.yaw = yaw
	p.pitch = pitch
}

func (p *planet) Rotate(dYaw, dPitch float32) {
	p.yaw += dYaw
	p.pitch += dPitch
}

func (p *planet) GPUData() GPUPlanetData {
	var data GPUPlanetData
	common.BuildModelMatrix(data.Model[:], 0, 0, 0, p.pitch, p.yaw, 0, 1, 1, 1)

	var inv [16]float32
	if common.Invert4(inv[:], data.Model[:]) {
		common.Transpose4(data.Normal[:], inv[:])
	} else {
		copy(data.Normal[:], data.Model[:])
	}
	return data
}
