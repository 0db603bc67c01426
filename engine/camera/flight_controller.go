package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/terra-go/common"
)

// Mode selects which control scheme drives the view frame.
type Mode int

const (
	// ModeAutoFlight flies the camera along the banking loop above the planet surface.
	ModeAutoFlight Mode = iota
	// ModeManualOrbit orbits the camera around the planet center under mouse control.
	ModeManualOrbit
)

// String returns the mode name.
//
// Returns:
//   - string: "auto-flight" or "manual-orbit"
func (m Mode) String() string {
	switch m {
	case ModeAutoFlight:
		return "auto-flight"
	case ModeManualOrbit:
		return "manual-orbit"
	default:
		return "unknown"
	}
}

// FlightController defines the union interface for the two camera control
// schemes. The controller owns the view frame (position, target, up) for
// whichever mode is active; both modes keep their state while inactive, so
// toggling back resumes exactly where the pilot left off. Embeds both
// autoFlightController and manualOrbitController.
type FlightController interface {
	autoFlightController
	manualOrbitController

	// Mode returns the active control scheme.
	//
	// Returns:
	//   - Mode: the active mode
	Mode() Mode

	// SetMode activates a control scheme and recomputes the view frame.
	//
	// Parameters:
	//   - mode: the mode to activate
	SetMode(mode Mode)

	// ToggleMode switches between auto-flight and manual orbit.
	ToggleMode()

	// Update advances the auto-flight path by the elapsed time. In manual
	// orbit mode the path is frozen and this is a no-op.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)

	// Position returns the camera's world-space position for the active mode.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point for the active mode.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// Up returns the view up vector for the active mode. In auto-flight this
	// is the surface-relative up of the banking frame; in manual orbit it is
	// the world Y axis.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// ViewMatrix writes the 4x4 look-at matrix for the current frame into out
	// (column-major, 16 floats).
	//
	// Parameters:
	//   - out: destination slice (must be at least 16 elements)
	ViewMatrix(out []float32)

	// Zoom adjusts the manual orbit distance. Positive delta zooms in. The
	// distance persists while auto-flight is active.
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float32)
}

// autoFlightController defines the auto-flight control methods. The camera
// follows a closed loop around the planet: a circle in the XZ plane modulated
// by a figure-eight vertical wave, re-projected onto the sphere of the current
// altitude.
type autoFlightController interface {
	// AdjustSpeed nudges the flight speed by whole adjustment steps, clamped
	// to the speed bounds. One tick per processed input event.
	//
	// Parameters:
	//   - ticks: number of steps, negative to slow down
	AdjustSpeed(ticks int)

	// AdjustAltitude nudges the flight altitude by whole adjustment steps,
	// clamped to the altitude bounds.
	//
	// Parameters:
	//   - ticks: number of steps, negative to descend
	AdjustAltitude(ticks int)

	// Angle returns the current path parameter in radians.
	//
	// Returns:
	//   - float32: the accumulated path angle
	Angle() float32

	// Speed returns the path speed in radians per second.
	//
	// Returns:
	//   - float32: the flight speed
	Speed() float32

	// Altitude returns the distance from the planet center.
	//
	// Returns:
	//   - float32: the flight altitude
	Altitude() float32

	// Tilt returns the downward look bias toward the surface.
	//
	// Returns:
	//   - float32: the look tilt
	Tilt() float32

	// MinSpeed returns the minimum allowed flight speed.
	//
	// Returns:
	//   - float32: minimum speed
	MinSpeed() float32

	// MaxSpeed returns the maximum allowed flight speed.
	//
	// Returns:
	//   - float32: maximum speed
	MaxSpeed() float32

	// MinAltitude returns the minimum allowed flight altitude.
	//
	// Returns:
	//   - float32: minimum altitude
	MinAltitude() float32

	// MaxAltitude returns the maximum allowed flight altitude.
	//
	// Returns:
	//   - float32: maximum altitude
	MaxAltitude() float32
}

// manualOrbitController defines the manual orbit control methods: mouse-drag
// rotation around the planet center, scroll zoom, and globe spin.
type manualOrbitController interface {
	// BeginDrag starts a mouse drag at the given cursor position. The first
	// position only seeds the delta tracking, so the view never jumps on
	// press.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	BeginDrag(x, y float32)

	// DragTo rotates the orbit by the cursor movement since the last drag
	// position. Yaw follows horizontal movement; pitch follows vertical
	// movement with screen-inverted sign and is clamped to the pitch limit.
	// Ignored when no drag is active.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	DragTo(x, y float32)

	// EndDrag stops the active mouse drag.
	EndDrag()

	// Dragging returns whether a mouse drag is active.
	//
	// Returns:
	//   - bool: true while dragging
	Dragging() bool

	// Yaw returns the horizontal orbit angle in radians.
	//
	// Returns:
	//   - float32: the orbit yaw
	Yaw() float32

	// Pitch returns the vertical orbit angle in radians.
	//
	// Returns:
	//   - float32: the orbit pitch
	Pitch() float32

	// Distance returns the orbit distance from the planet center.
	//
	// Returns:
	//   - float32: the orbit distance
	Distance() float32

	// SetDistance sets the orbit distance directly, clamped to the distance
	// bounds.
	//
	// Parameters:
	//   - distance: new distance from the planet center
	SetDistance(distance float32)

	// MinDistance returns the minimum allowed orbit distance.
	//
	// Returns:
	//   - float32: minimum zoom distance
	MinDistance() float32

	// MaxDistance returns the maximum allowed orbit distance.
	//
	// Returns:
	//   - float32: maximum zoom distance
	MaxDistance() float32

	// MaxPitch returns the pitch clamp magnitude in radians.
	//
	// Returns:
	//   - float32: the pitch limit
	MaxPitch() float32

	// MouseSensitivity returns the drag-to-radians multiplier.
	//
	// Returns:
	//   - float32: multiplier for mouse movement
	MouseSensitivity() float32

	// ZoomSpeed returns the zoom speed multiplier.
	//
	// Returns:
	//   - float32: multiplier for zoom input
	ZoomSpeed() float32

	// RotatePlanet spins the globe by held-key input, scaled by the rotate
	// rate and the elapsed time. The angles persist while auto-flight is
	// active but are only applied to the model matrix in manual orbit.
	//
	// Parameters:
	//   - dYaw: yaw input direction, usually -1, 0, or 1
	//   - dPitch: pitch input direction, usually -1, 0, or 1
	//   - dt: elapsed time in seconds
	RotatePlanet(dYaw, dPitch, dt float32)

	// PlanetOrientation returns the accumulated globe rotation angles.
	//
	// Returns:
	//   - yaw: rotation about the world Y axis in radians
	//   - pitch: rotation about the world X axis in radians
	PlanetOrientation() (yaw, pitch float32)
}

// flightControllerImpl is the single implementation of FlightController.
// All state lives behind one mutex: input handlers mutate from the engine
// tick goroutine while the scene reads the frame from the render goroutine.
type flightControllerImpl struct {
	mu *sync.Mutex

	mode Mode

	// View frame for the active mode
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	// Auto-flight path state
	angle    float32
	speed    float32
	altitude float32
	tilt     float32

	// Auto-flight constraints
	minSpeed     float32
	maxSpeed     float32
	minAltitude  float32
	maxAltitude  float32
	speedStep    float32
	altitudeStep float32

	// Manual orbit state
	yaw      float32
	pitch    float32
	distance float32

	// Manual orbit constraints
	maxPitch    float32
	minDistance float32
	maxDistance float32

	mouseSensitivity float32
	zoomSpeed        float32

	// Drag tracking
	dragging bool
	lastX    float32
	lastY    float32

	// Globe rotation, applied to the model matrix in manual orbit only
	planetYaw        float32
	planetPitch      float32
	planetRotateRate float32
}

// Compile-time interface compliance check
var _ FlightController = &flightControllerImpl{}

// NewFlightController creates a flight controller with the stock planet-tour
// tuning: a slow low pass just above the surface in auto-flight, and a
// three-radius orbit in manual mode. Auto-flight is active initially.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - FlightController: the newly created controller
func NewFlightController(options ...FlightControllerOption) FlightController {
	fc := &flightControllerImpl{
		mu:   &sync.Mutex{},
		mode: ModeAutoFlight,

		speed:    0.3,
		altitude: 1.05,
		tilt:     0.15,

		minSpeed:     0.0,
		maxSpeed:     2.0,
		minAltitude:  1.05,
		maxAltitude:  2.0,
		speedStep:    0.01,
		altitudeStep: 0.01,

		distance: 3.0,

		maxPitch:    1.5,
		minDistance: 1.5,
		maxDistance: 10.0,

		mouseSensitivity: 0.01,
		zoomSpeed:        0.1,

		planetRotateRate: 1.2,
	}

	for _, option := range options {
		option(fc)
	}

	fc.updateFrame()
	return fc
}

// --- internal helpers ---

// flightPath evaluates the auto-flight loop at a path angle: a unit circle in
// the XZ plane displaced vertically by a double-frequency sine, normalized
// back onto the sphere of the given altitude. The camera therefore always
// sits exactly altitude units from the planet center.
func flightPath(angle, altitude float32) mgl32.Vec3 {
	vertical := float32(math.Sin(2*float64(angle))) * 0.4
	p := mgl32.Vec3{
		float32(math.Cos(float64(angle))),
		vertical,
		float32(math.Sin(float64(angle))),
	}
	return p.Normalize().Mul(altitude)
}

// updateFrame recomputes position, target, and up for the active mode.
// Must be called whenever any state feeding the view frame changes.
// Caller must hold the mutex.
func (fc *flightControllerImpl) updateFrame() {
	switch fc.mode {
	case ModeAutoFlight:
		fc.updateAutoFrame()
	case ModeManualOrbit:
		fc.updateOrbitFrame()
	}
}

// updateAutoFrame builds the banking flight frame: forward follows the path
// tangent, up starts radial and is re-orthogonalized against forward, and the
// look target sits one forward unit ahead, biased down by the tilt so the
// surface stays in view.
// Caller must hold the mutex.
func (fc *flightControllerImpl) updateAutoFrame() {
	pos := flightPath(fc.angle, fc.altitude)
	ahead := flightPath(fc.angle+0.01, fc.altitude)

	forward := ahead.Sub(pos).Normalize()
	up := pos.Normalize()
	right := forward.Cross(up).Normalize()
	up = right.Cross(forward).Normalize()

	fc.position = pos
	fc.target = pos.Add(forward).Sub(up.Mul(fc.tilt))
	fc.up = up
}

// updateOrbitFrame places the camera on the orbit sphere from yaw/pitch
// spherical coordinates, looking at the planet center with world-Y up.
// Caller must hold the mutex.
func (fc *flightControllerImpl) updateOrbitFrame() {
	cosPitch := float32(math.Cos(float64(fc.pitch)))
	fc.position = mgl32.Vec3{
		float32(math.Sin(float64(fc.yaw))) * cosPitch,
		float32(math.Sin(float64(fc.pitch))),
		float32(math.Cos(float64(fc.yaw))) * cosPitch,
	}.Mul(fc.distance)
	fc.target = mgl32.Vec3{0, 0, 0}
	fc.up = mgl32.Vec3{0, 1, 0}
}

// --- FlightController shared methods ---

func (fc *flightControllerImpl) Mode() Mode {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.mode
}

func (fc *flightControllerImpl) SetMode(mode Mode) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.mode = mode
	fc.updateFrame()
}

func (fc *flightControllerImpl) ToggleMode() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.mode == ModeAutoFlight {
		fc.mode = ModeManualOrbit
	} else {
		fc.mode = ModeAutoFlight
	}
	fc.updateFrame()
}

func (fc *flightControllerImpl) Update(dt float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.mode != ModeAutoFlight {
		return
	}
	fc.angle += fc.speed * dt
	fc.updateAutoFrame()
}

func (fc *flightControllerImpl) Position() (x, y, z float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.position.X(), fc.position.Y(), fc.position.Z()
}

func (fc *flightControllerImpl) Target() (x, y, z float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.target.X(), fc.target.Y(), fc.target.Z()
}

func (fc *flightControllerImpl) Up() (x, y, z float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.up.X(), fc.up.Y(), fc.up.Z()
}

func (fc *flightControllerImpl) ViewMatrix(out []float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	common.LookAt(out,
		fc.position.X(), fc.position.Y(), fc.position.Z(),
		fc.target.X(), fc.target.Y(), fc.target.Z(),
		fc.up.X(), fc.up.Y(), fc.up.Z(),
	)
}

func (fc *flightControllerImpl) Zoom(delta float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.distance -= delta * fc.zoomSpeed
	if fc.distance < fc.minDistance {
		fc.distance = fc.minDistance
	}
	if fc.distance > fc.maxDistance {
		fc.distance = fc.maxDistance
	}
	fc.updateFrame()
}

// --- autoFlightController implementation ---

func (fc *flightControllerImpl) AdjustSpeed(ticks int) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.speed += float32(ticks) * fc.speedStep
	if fc.speed < fc.minSpeed {
		fc.speed = fc.minSpeed
	}
	if fc.speed > fc.maxSpeed {
		fc.speed = fc.maxSpeed
	}
}

func (fc *flightControllerImpl) AdjustAltitude(ticks int) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.altitude += float32(ticks) * fc.altitudeStep
	if fc.altitude < fc.minAltitude {
		fc.altitude = fc.minAltitude
	}
	if fc.altitude > fc.maxAltitude {
		fc.altitude = fc.maxAltitude
	}
	fc.updateFrame()
}

func (fc *flightControllerImpl) Angle() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.angle
}

func (fc *flightControllerImpl) Speed() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.speed
}

func (fc *flightControllerImpl) Altitude() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.altitude
}

func (fc *flightControllerImpl) Tilt() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.tilt
}

func (fc *flightControllerImpl) MinSpeed() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.minSpeed
}

func (fc *flightControllerImpl) MaxSpeed() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.maxSpeed
}

func (fc *flightControllerImpl) MinAltitude() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.minAltitude
}

func (fc *flightControllerImpl) MaxAltitude() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.maxAltitude
}

// --- manualOrbitController implementation ---

func (fc *flightControllerImpl) BeginDrag(x, y float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.dragging = true
	fc.lastX = x
	fc.lastY = y
}

func (fc *flightControllerImpl) DragTo(x, y float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if !fc.dragging {
		return
	}

	dx := x - fc.lastX
	dy := fc.lastY - y // screen Y grows downward
	fc.lastX = x
	fc.lastY = y

	fc.yaw += dx * fc.mouseSensitivity
	fc.pitch += dy * fc.mouseSensitivity
	if fc.pitch > fc.maxPitch {
		fc.pitch = fc.maxPitch
	}
	if fc.pitch < -fc.maxPitch {
		fc.pitch = -fc.maxPitch
	}
	fc.updateFrame()
}

func (fc *flightControllerImpl) EndDrag() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.dragging = false
}

func (fc *flightControllerImpl) Dragging() bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.dragging
}

func (fc *flightControllerImpl) Yaw() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.yaw
}

func (fc *flightControllerImpl) Pitch() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.pitch
}

func (fc *flightControllerImpl) Distance() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.distance
}

func (fc *flightControllerImpl) SetDistance(distance float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.distance = distance
	if fc.distance < fc.minDistance {
		fc.distance = fc.minDistance
	}
	if fc.distance > fc.maxDistance {
		fc.distance = fc.maxDistance
	}
	fc.updateFrame()
}

func (fc *flightControllerImpl) MinDistance() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.minDistance
}

func (fc *flightControllerImpl) MaxDistance() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.maxDistance
}

func (fc *flightControllerImpl) MaxPitch() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.maxPitch
}

func (fc *flightControllerImpl) MouseSensitivity() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.mouseSensitivity
}

func (fc *flightControllerImpl) ZoomSpeed() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.zoomSpeed
}

func (fc *flightControllerImpl) RotatePlanet(dYaw, dPitch, dt float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.planetYaw += dYaw * fc.planetRotateRate * dt
	fc.planetPitch += dPitch * fc.planetRotateRate * dt
}

func (fc *flightControllerImpl) PlanetOrientation() (yaw, pitch float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.planetYaw, fc.planetPitch
}
