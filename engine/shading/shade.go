package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface palette. Base terrain is an ocean/land mix selected by the continent
// mask; land is then graded toward savanna and desert inside the subtropical
// latitude belts.
var (
	OceanColor   = mgl32.Vec3{0.05, 0.2, 0.5}
	LandColor    = mgl32.Vec3{0.15, 0.4, 0.15}
	SavannaColor = mgl32.Vec3{0.5, 0.5, 0.2}
	DesertColor  = mgl32.Vec3{0.8, 0.6, 0.3}
	RimColor     = mgl32.Vec3{0.1, 0.2, 0.4}
	AmbientColor = mgl32.Vec3{0.05, 0.05, 0.1}
)

// LightSample is a point light snapshot used by the CPU lighting equation.
type LightSample struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// ContinentMask evaluates the land/ocean mask for a unit direction on the
// sphere. The direction is unwrapped into longitude/latitude, scaled
// anisotropically so continents stretch wider than tall, and fed through
// three octaves of value noise. The raw field is sharpened by a smoothstep
// across the shoreline band.
//
// Parameters:
//   - dir: unit direction from the planet center to the surface point
//
// Returns:
//   - float32: the mask in [0, 1], 0 for open ocean and 1 for solid land
func ContinentMask(dir mgl32.Vec3) float32 {
	theta := float32(math.Atan2(float64(dir.Z()), float64(dir.X())))
	phi := float32(math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1))))
	uv := mgl32.Vec2{theta * 2, phi * 3}

	n := ValueNoise2(uv.Mul(3))*0.5 + ValueNoise2(uv.Mul(6))*0.25 + ValueNoise2(uv.Mul(12))*0.125
	return Smoothstep(0.35, 0.45, n)
}

// SurfaceColor computes the unlit terrain color for a unit direction. Ocean
// and land are mixed by the continent mask; on land, the distance from the
// equator selects a desert belt (peaking between latitudes 0.25 and 0.35 in
// sine terms) which blends the base green toward savanna and then desert.
//
// Parameters:
//   - dir: unit direction from the planet center to the surface point
//
// Returns:
//   - mgl32.Vec3: the base albedo before lighting
//   - float32: the continent mask used to derive it
func SurfaceColor(dir mgl32.Vec3) (mgl32.Vec3, float32) {
	mask := ContinentMask(dir)
	base := mix3(OceanColor, LandColor, mask)

	if mask > 0.5 {
		latitude := dir.Y()
		if latitude < 0 {
			latitude = -latitude
		}
		belt := Smoothstep(0.15, 0.25, latitude) * (1 - Smoothstep(0.35, 0.45, latitude))
		variation := ValueNoise2(mgl32.Vec2{dir.X(), dir.Z()}.Mul(10))
		amount := belt*0.7 + variation*0.3

		if amount > 0.3 {
			base = mix3(base, SavannaColor, Smoothstep(0.3, 0.5, amount))
		}
		if amount > 0.5 {
			base = mix3(base, DesertColor, Smoothstep(0.5, 0.8, amount))
		}
	}
	return base, mask
}

// Shade runs the full lighting equation for a surface point: ambient plus
// clamped Lambertian diffuse from every light, modulating the terrain color,
// then an atmospheric rim glow scaled by the squared view falloff, and a
// Blinn-Phong highlight from the primary light on ocean only.
//
// Parameters:
//   - fragPos: surface point in world space
//   - normal: surface normal, normalized internally
//   - viewPos: camera position in world space
//   - ambient: ambient light color
//   - lights: light sources; index 0 drives the ocean specular highlight
//
// Returns:
//   - mgl32.Vec3: linear RGB, unclamped
func Shade(fragPos, normal, viewPos, ambient mgl32.Vec3, lights []LightSample) mgl32.Vec3 {
	dir := fragPos.Normalize()
	base, mask := SurfaceColor(dir)

	n := normal.Normalize()
	lighting := ambient
	for _, l := range lights {
		lightDir := l.Position.Sub(fragPos).Normalize()
		diff := n.Dot(lightDir)
		if diff < 0 {
			diff = 0
		}
		lighting = lighting.Add(l.Color.Mul(l.Intensity * diff))
	}

	result := mgl32.Vec3{
		lighting.X() * base.X(),
		lighting.Y() * base.Y(),
		lighting.Z() * base.Z(),
	}

	viewDir := viewPos.Sub(fragPos).Normalize()
	facing := n.Dot(viewDir)
	if facing < 0 {
		facing = 0
	}
	rim := (1 - facing) * (1 - facing)
	result = result.Add(RimColor.Mul(rim * 0.5))

	if mask < 0.5 && len(lights) > 0 {
		lightDir := lights[0].Position.Sub(fragPos).Normalize()
		half := lightDir.Add(viewDir)
		if hl := half.Len(); hl > 0 {
			half = half.Mul(1 / hl)
			ndh := n.Dot(half)
			if ndh < 0 {
				ndh = 0
			}
			specular := float32(math.Pow(float64(ndh), 32))
			result = result.Add(lights[0].Color.Mul(specular * 0.5))
		}
	}

	return result
}

func mix3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
