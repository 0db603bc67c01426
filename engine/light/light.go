package light

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position  [3]float32
	color     [3]float32
	intensity float32
	enabled   bool
}

// Light defines the interface for a light source in the scene.
//
// Lights are scene-level entities that contribute to the final pixel color
// during the forward rendering pass. The planet scene uses two of them: a warm
// sun and a cool moon parked on opposite sides of the globe. Lights are
// point-positioned but unattenuated; the shading model treats them as distant
// emitters whose direction is recomputed per fragment.
//
// Lights are managed by the scene and marshaled into a GPU storage buffer
// each frame via the gpu_types helpers.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Enabled returns whether this light is active for rendering.
	// Disabled lights are skipped during GPU buffer marshaling.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetEnabled enables or disables the light for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light with sensible defaults and any provided options
// applied. The zero-option light is a white unit-intensity source at the origin.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		position:  [3]float32{0, 0, 0},
		color:     [3]float32{1, 1, 1},
		intensity: 1.0,
		enabled:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewSun creates the warm key light for a planet scene: position (5, 0, 0),
// color (1.0, 0.9, 0.7), intensity 0.8.
//
// Returns:
//   - Light: the configured sun light
func NewSun() Light {
	return NewLight(
		WithPosition(5, 0, 0),
		WithColor(1.0, 0.9, 0.7),
		WithIntensity(0.8),
	)
}

// NewMoon creates the cool fill light for a planet scene, opposite the sun:
// position (-5, 0, 0), color (0.7, 0.8, 1.0), intensity 0.3.
//
// Returns:
//   - Light: the configured moon light
func NewMoon() Light {
	return NewLight(
		WithPosition(-5, 0, 0),
		WithColor(0.7, 0.8, 1.0),
		WithIntensity(0.3),
	)
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
