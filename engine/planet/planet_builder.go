package planet

// PlanetBuilderOption is a functional option for configuring a Planet during construction.
type PlanetBuilderOption func(*planet)

// WithName sets the name of the Planet. The name seeds the resource provider
// labels, so it shows up in GPU debugging tools.
//
// Parameters:
//   - name: the name to assign
//
// Returns:
//   - PlanetBuilderOption: functional option to set the name
func WithName(name string) PlanetBuilderOption {
	return func(p *planet) {
		p.name = name
	}
}

// WithRadius sets the sphere radius of the Planet.
//
// Parameters:
//   - radius: sphere radius in world units, must be positive
//
// Returns:
//   - PlanetBuilderOption: functional option to set the radius
func WithRadius(radius float32) PlanetBuilderOption {
	return func(p *planet) {
		p.radius = radius
	}
}

// WithResolution sets the sphere tessellation of the Planet.
//
// Parameters:
//   - sectorCount: longitudinal subdivisions, minimum 3
//   - stackCount: latitudinal subdivisions, minimum 2
//
// Returns:
//   - PlanetBuilderOption: functional option to set the tessellation
func WithResolution(sectorCount, stackCount int) PlanetBuilderOption {
	return func(p *planet) {
		p.sectorCount = sectorCount
		p.stackCount = stackCount
	}
}

// WithEnabled sets whether the Planet is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the planet, false to skip it
//
// Returns:
//   - PlanetBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) PlanetBuilderOption {
	return func(p *planet) {
		p.enabled.Store(enabled)
	}
}

// WithOrientation sets the initial globe rotation angles of the Planet.
//
// Parameters:
//   - yaw: rotation about the world Y axis in radians
//   - pitch: rotation about the world X axis in radians
//
// Returns:
//   - PlanetBuilderOption: functional option to set the orientation
func WithOrientation(yaw, pitch float32) PlanetBuilderOption {
	return func(p *planet) {
		p.yaw = yaw
		p.pitch = pitch
	}
}
