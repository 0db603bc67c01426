// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Color is a normalized RGBA color. Components are expected in [0, 1] for
// display purposes, but values above 1 are legal for HDR-style accumulation
// and are clamped by the consumer.
type Color struct {
	R, G, B, A float64
}

// SpaceBlack is the deep-space clear color used as the default render
// background: a near-black blue so the unlit side of a body still reads
// against the void.
var SpaceBlack = Color{R: 0.05, G: 0.05, B: 0.1, A: 1.0}

// Clamped returns the color with each component clamped to [0, 1].
//
// Returns:
//   - Color: the clamped color
func (c Color) Clamped() Color {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return Color{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
