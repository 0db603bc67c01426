package preview

import (
	"github.com/Carmen-Shannon/terra-go/engine/camera"
	"github.com/Carmen-Shannon/terra-go/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// renderConfig collects the parameters for a single Render call. Zero values
// are resolved to defaults after options are applied.
type renderConfig struct {
	width         int
	height        int
	supersampling int
	fov           float32
	controller    camera.FlightController
	lights        []light.Light
	ambient       mgl32.Vec3
}

// RenderOption is a functional option for configuring a Render call.
// Use the With* functions to create options.
type RenderOption func(c *renderConfig)

// WithWidth sets the output image width in pixels. Defaults to DefaultWidth.
//
// Parameters:
//   - width: image width in pixels
//
// Returns:
//   - RenderOption: option function to apply
func WithWidth(width int) RenderOption {
	return func(c *renderConfig) {
		c.width = width
	}
}

// WithHeight sets the output image height in pixels. Defaults to
// DefaultHeight.
//
// Parameters:
//   - height: image height in pixels
//
// Returns:
//   - RenderOption: option function to apply
func WithHeight(height int) RenderOption {
	return func(c *renderConfig) {
		c.height = height
	}
}

// WithSupersampling sets the anti-aliasing factor. Each pixel is shaded on an
// n x n sub-sample grid and averaged, so cost grows quadratically with n.
// Defaults to 1 (no supersampling).
//
// Parameters:
//   - factor: sub-samples per pixel axis
//
// Returns:
//   - RenderOption: option function to apply
func WithSupersampling(factor int) RenderOption {
	return func(c *renderConfig) {
		c.supersampling = factor
	}
}

// WithFov sets the vertical field of view in radians. Defaults to the GPU
// camera's 45 degrees.
//
// Parameters:
//   - fov: vertical field of view in radians
//
// Returns:
//   - RenderOption: option function to apply
func WithFov(fov float32) RenderOption {
	return func(c *renderConfig) {
		c.fov = fov
	}
}

// WithController supplies the flight controller whose view frame the render
// uses. The controller is read, never advanced; callers drive Update
// themselves. Defaults to a fresh auto-flight controller.
//
// Parameters:
//   - controller: the flight controller to view from
//
// Returns:
//   - RenderOption: option function to apply
func WithController(controller camera.FlightController) RenderOption {
	return func(c *renderConfig) {
		c.controller = controller
	}
}

// WithLights adds light sources to the render. If no lights are added the
// default sun/moon rig is used; disabled lights are skipped either way.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - RenderOption: option function to apply
func WithLights(lights ...light.Light) RenderOption {
	return func(c *renderConfig) {
		c.lights = append(c.lights, lights...)
	}
}

// WithAmbientColor sets the ambient light color. Defaults to the shading
// package's ambient term so previews match the GPU output.
//
// Parameters:
//   - color: the ambient RGB color
//
// Returns:
//   - RenderOption: option function to apply
func WithAmbientColor(color [3]float32) RenderOption {
	return func(c *renderConfig) {
		c.ambient = mgl32.Vec3{color[0], color[1], color[2]}
	}
}
