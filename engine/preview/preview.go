// Package preview renders the planet on the CPU without a GPU device or a
// window. One ray per sub-sample is cast from the flight camera's view frame
// against the unit sphere, and hit points run through the same shading model
// the WGSL fragment shader implements, so a preview image is a faithful
// stand-in for a rendered frame. Scanline bands are fanned out across a
// dynamic worker pool sized to the host CPU.
//
// The package backs the demo's screenshot path and gives tests a
// deterministic image of the full pipeline output.
package preview

import (
	"fmt"
	"image"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/terra-go/common"
	"github.com/Carmen-Shannon/terra-go/engine/camera"
	"github.com/Carmen-Shannon/terra-go/engine/light"
	"github.com/Carmen-Shannon/terra-go/engine/shading"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultWidth and DefaultHeight are the image dimensions used when no
	// size options are supplied.
	DefaultWidth  = 800
	DefaultHeight = 600

	// defaultFov matches the GPU camera's vertical field of view.
	defaultFov = float32(45.0 * math.Pi / 180.0)
)

// backgroundColor is the deep-space clear color, matching the GPU render
// pass's clear value.
var backgroundColor = mgl32.Vec3{
	float32(common.SpaceBlack.R),
	float32(common.SpaceBlack.G),
	float32(common.SpaceBlack.B),
}

// viewFrame is an orthonormal camera basis derived from a flight controller.
type viewFrame struct {
	origin  mgl32.Vec3
	forward mgl32.Vec3
	right   mgl32.Vec3
	up      mgl32.Vec3
}

// Render produces an RGBA image of the planet as seen from the configured
// flight controller. With no options it renders the default auto-flight
// camera over a sun/moon light rig at DefaultWidth x DefaultHeight.
//
// Rows are split into bands and shaded concurrently; the call blocks until
// every band has completed. Output is deterministic for a given
// configuration.
//
// Parameters:
//   - options: variadic list of RenderOption functions to configure the render
//
// Returns:
//   - *image.RGBA: the rendered image
//   - error: an error if the configuration is invalid
func Render(options ...RenderOption) (*image.RGBA, error) {
	cfg := renderConfig{
		ambient: shading.AmbientColor,
	}
	for _, opt := range options {
		opt(&cfg)
	}

	cfg.width = common.Coalesce(cfg.width, DefaultWidth)
	cfg.height = common.Coalesce(cfg.height, DefaultHeight)
	cfg.supersampling = common.Coalesce(cfg.supersampling, 1)
	cfg.fov = common.Coalesce(cfg.fov, defaultFov)

	if cfg.width <= 0 || cfg.height <= 0 {
		return nil, fmt.Errorf("invalid preview dimensions %dx%d", cfg.width, cfg.height)
	}
	if cfg.supersampling < 1 {
		return nil, fmt.Errorf("invalid supersampling factor %d", cfg.supersampling)
	}
	if cfg.controller == nil {
		cfg.controller = camera.NewFlightController()
	}
	if cfg.lights == nil {
		cfg.lights = []light.Light{light.NewSun(), light.NewMoon()}
	}

	samples := make([]shading.LightSample, 0, len(cfg.lights))
	for _, l := range cfg.lights {
		if !l.Enabled() {
			continue
		}
		pos := l.Position()
		col := l.Color()
		samples = append(samples, shading.LightSample{
			Position:  mgl32.Vec3{pos[0], pos[1], pos[2]},
			Color:     mgl32.Vec3{col[0], col[1], col[2]},
			Intensity: l.Intensity(),
		})
	}

	frame := buildFrame(cfg.controller)
	img := image.NewRGBA(image.Rect(0, 0, cfg.width, cfg.height))

	// Same pool shape the scene uses for its per-frame compute work. Bands
	// outnumber workers so an expensive band does not serialize the tail, and
	// the queue holds every band so submission never stalls.
	workers := max(runtime.NumCPU()-1, 1)
	bands := min(workers*4, cfg.height)
	pool := worker.NewDynamicWorkerPool(workers, bands, 1*time.Second)

	rows := (cfg.height + bands - 1) / bands
	var wg sync.WaitGroup
	for band := 0; band < bands; band++ {
		start := band * rows
		end := min(start+rows, cfg.height)
		if start >= end {
			continue
		}
		wg.Add(1)
		y0, y1 := start, end
		pool.SubmitTask(worker.Task{
			ID: band,
			Do: func() (any, error) {
				defer wg.Done()
				renderBand(img, y0, y1, &cfg, frame, samples)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return img, nil
}

// buildFrame derives the orthonormal view basis from the controller's
// position, target, and up vector. Degenerate inputs fall back to a frame
// looking down negative Z.
func buildFrame(ctrl camera.FlightController) viewFrame {
	px, py, pz := ctrl.Position()
	tx, ty, tz := ctrl.Target()
	ux, uy, uz := ctrl.Up()

	origin := mgl32.Vec3{px, py, pz}
	forward := mgl32.Vec3{tx, ty, tz}.Sub(origin)
	if forward.Len() == 0 {
		forward = mgl32.Vec3{0, 0, -1}
	}
	forward = forward.Normalize()

	right := forward.Cross(mgl32.Vec3{ux, uy, uz})
	if right.Len() == 0 {
		right = mgl32.Vec3{1, 0, 0}
	}
	right = right.Normalize()

	return viewFrame{
		origin:  origin,
		forward: forward,
		right:   right,
		up:      right.Cross(forward),
	}
}

// renderBand shades the scanlines [y0, y1). Bands write disjoint row ranges
// of the shared image, so no synchronization is needed beyond the caller's
// completion barrier.
func renderBand(img *image.RGBA, y0, y1 int, cfg *renderConfig, frame viewFrame, lights []shading.LightSample) {
	tanHalf := float32(math.Tan(float64(cfg.fov) * 0.5))
	aspect := float32(cfg.width) / float32(cfg.height)
	ss := cfg.supersampling
	weight := 1 / float32(ss*ss)

	for y := y0; y < y1; y++ {
		for x := 0; x < cfg.width; x++ {
			var acc mgl32.Vec3
			for sy := 0; sy < ss; sy++ {
				for sx := 0; sx < ss; sx++ {
					fx := (float32(x) + (float32(sx)+0.5)/float32(ss)) / float32(cfg.width)
					fy := (float32(y) + (float32(sy)+0.5)/float32(ss)) / float32(cfg.height)
					u := (fx*2 - 1) * tanHalf * aspect
					v := (1 - fy*2) * tanHalf
					dir := frame.forward.Add(frame.right.Mul(u)).Add(frame.up.Mul(v)).Normalize()
					acc = acc.Add(castRay(frame.origin, dir, cfg.ambient, lights))
				}
			}
			acc = acc.Mul(weight)

			i := img.PixOffset(x, y)
			img.Pix[i+0] = quantize(acc.X())
			img.Pix[i+1] = quantize(acc.Y())
			img.Pix[i+2] = quantize(acc.Z())
			img.Pix[i+3] = 0xFF
		}
	}
}

// castRay intersects a view ray with the unit sphere at the origin and
// shades the nearest hit. Misses, and intersections behind the camera,
// return the background color.
func castRay(origin, dir, ambient mgl32.Vec3, lights []shading.LightSample) mgl32.Vec3 {
	// Quadratic for |origin + t*dir|^2 = 1 with unit dir reduces to
	// t^2 + 2bt + c = 0.
	b := origin.Dot(dir)
	c := origin.Dot(origin) - 1
	disc := b*b - c
	if disc < 0 {
		return backgroundColor
	}
	t := -b - float32(math.Sqrt(float64(disc)))
	if t <= 0 {
		return backgroundColor
	}

	hit := origin.Add(dir.Mul(t))
	return shading.Shade(hit, hit, origin, ambient, lights)
}

// quantize maps a linear color channel to an 8-bit value, clamping to [0, 1].
// The surface format is not an sRGB variant, so no transfer function is
// applied.
func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
