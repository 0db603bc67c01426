// Package shading implements the planet surface model on the CPU: the value
// noise field, the continent mask, the climate banding, and the lighting
// equation. The GPU fragment shader evaluates the same formulas; this package
// exists so offline preview rendering and tests can run them without a device.
package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func fract(x float64) float64 {
	return x - math.Floor(x)
}

// Hash2 maps a 2D point to a pseudo-random value in [0, 1) using the classic
// sine-dot hash: fract(sin(dot(p, (127.1, 311.7))) * 43758.5453).
//
// Parameters:
//   - p: the input point
//
// Returns:
//   - float32: the hash value in [0, 1)
func Hash2(p mgl32.Vec2) float32 {
	d := float64(p.X())*127.1 + float64(p.Y())*311.7
	return float32(fract(math.Sin(d) * 43758.5453))
}

// ValueNoise2 evaluates 2D value noise at p: the four lattice corner hashes
// blended with a Hermite-smoothed fractional position.
//
// Parameters:
//   - p: the sample position
//
// Returns:
//   - float32: the noise value in [0, 1)
func ValueNoise2(p mgl32.Vec2) float32 {
	ix := math.Floor(float64(p.X()))
	iy := math.Floor(float64(p.Y()))
	fx := float64(p.X()) - ix
	fy := float64(p.Y()) - iy

	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	a := float64(Hash2(mgl32.Vec2{float32(ix), float32(iy)}))
	b := float64(Hash2(mgl32.Vec2{float32(ix + 1), float32(iy)}))
	c := float64(Hash2(mgl32.Vec2{float32(ix), float32(iy + 1)}))
	d := float64(Hash2(mgl32.Vec2{float32(ix + 1), float32(iy + 1)}))

	return float32(a + (b-a)*ux + (c-a)*uy*(1-ux) + (d-b)*ux*uy)
}

// Smoothstep is the standard Hermite step: 0 below edge0, 1 above edge1, and
// t*t*(3-2t) in between.
//
// Parameters:
//   - edge0: lower edge
//   - edge1: upper edge
//   - x: the input value
//
// Returns:
//   - float32: the smoothed step value in [0, 1]
func Smoothstep(edge0, edge1, x float32) float32 {
	t := mgl32.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
