package camera

// FlightControllerOption is a functional option for configuring a FlightController.
type FlightControllerOption func(*flightControllerImpl)

// WithMode sets the initially active control scheme.
//
// Parameters:
//   - mode: the mode to activate
//
// Returns:
//   - FlightControllerOption: functional option to set the mode
func WithMode(mode Mode) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.mode = mode
	}
}

// WithAngle sets the initial auto-flight path angle.
//
// Parameters:
//   - angle: path parameter in radians
//
// Returns:
//   - FlightControllerOption: functional option to set the path angle
func WithAngle(angle float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.angle = angle
	}
}

// WithSpeed sets the initial auto-flight speed.
//
// Parameters:
//   - speed: path speed in radians per second
//
// Returns:
//   - FlightControllerOption: functional option to set the speed
func WithSpeed(speed float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.speed = speed
	}
}

// WithSpeedBounds sets the minimum and maximum auto-flight speed.
//
// Parameters:
//   - min: minimum speed
//   - max: maximum speed
//
// Returns:
//   - FlightControllerOption: functional option to set speed bounds
func WithSpeedBounds(min, max float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.minSpeed = min
		fc.maxSpeed = max
	}
}

// WithAltitude sets the initial auto-flight altitude.
//
// Parameters:
//   - altitude: distance from the planet center
//
// Returns:
//   - FlightControllerOption: functional option to set the altitude
func WithAltitude(altitude float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.altitude = altitude
	}
}

// WithAltitudeBounds sets the minimum and maximum auto-flight altitude.
//
// Parameters:
//   - min: minimum altitude
//   - max: maximum altitude
//
// Returns:
//   - FlightControllerOption: functional option to set altitude bounds
func WithAltitudeBounds(min, max float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.minAltitude = min
		fc.maxAltitude = max
	}
}

// WithTilt sets the downward look bias of the auto-flight frame.
//
// Parameters:
//   - tilt: look tilt toward the surface
//
// Returns:
//   - FlightControllerOption: functional option to set the tilt
func WithTilt(tilt float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.tilt = tilt
	}
}

// WithAdjustSteps sets the per-tick increments used by AdjustSpeed and
// AdjustAltitude.
//
// Parameters:
//   - speedStep: speed change per tick
//   - altitudeStep: altitude change per tick
//
// Returns:
//   - FlightControllerOption: functional option to set the adjustment steps
func WithAdjustSteps(speedStep, altitudeStep float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.speedStep = speedStep
		fc.altitudeStep = altitudeStep
	}
}

// WithOrbitAngles sets the initial manual orbit angles.
//
// Parameters:
//   - yaw: horizontal orbit angle in radians
//   - pitch: vertical orbit angle in radians
//
// Returns:
//   - FlightControllerOption: functional option to set the orbit angles
func WithOrbitAngles(yaw, pitch float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.yaw = yaw
		fc.pitch = pitch
	}
}

// WithDistance sets the initial manual orbit distance.
//
// Parameters:
//   - distance: distance from the planet center
//
// Returns:
//   - FlightControllerOption: functional option to set the distance
func WithDistance(distance float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.distance = distance
	}
}

// WithDistanceBounds sets the minimum and maximum manual orbit distance.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - FlightControllerOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.minDistance = min
		fc.maxDistance = max
	}
}

// WithPitchLimit sets the manual orbit pitch clamp magnitude.
//
// Parameters:
//   - limit: maximum pitch magnitude in radians
//
// Returns:
//   - FlightControllerOption: functional option to set the pitch limit
func WithPitchLimit(limit float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.maxPitch = limit
	}
}

// WithMouseSensitivity sets the mouse drag sensitivity.
//
// Parameters:
//   - sensitivity: multiplier for mouse movement
//
// Returns:
//   - FlightControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - FlightControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.zoomSpeed = speed
	}
}

// WithPlanetRotateRate sets the globe spin rate for held arrow keys.
//
// Parameters:
//   - rate: rotation speed in radians per second
//
// Returns:
//   - FlightControllerOption: functional option to set the rotate rate
func WithPlanetRotateRate(rate float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.planetRotateRate = rate
	}
}

// WithPlanetOrientation sets the initial globe rotation angles.
//
// Parameters:
//   - yaw: rotation about the world Y axis in radians
//   - pitch: rotation about the world X axis in radians
//
// Returns:
//   - FlightControllerOption: functional option to set the globe orientation
func WithPlanetOrientation(yaw, pitch float32) FlightControllerOption {
	return func(fc *flightControllerImpl) {
		fc.planetYaw = yaw
		fc.planetPitch = pitch
	}
}
