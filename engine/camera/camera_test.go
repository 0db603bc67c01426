package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/terra-go/common"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	if got, want := c.Fov(), float32(45.0*(math.Pi/180.0)); got != want {
		t.Errorf("Fov() = %v, want %v", got, want)
	}
	if c.Aspect() != 1.0 {
		t.Errorf("Aspect() = %v, want 1.0", c.Aspect())
	}
	if c.Near() != 0.1 {
		t.Errorf("Near() = %v, want 0.1", c.Near())
	}
	if c.Far() != 100.0 {
		t.Errorf("Far() = %v, want 100.0", c.Far())
	}
	if c.Controller() != nil {
		t.Error("Controller() != nil for bare camera")
	}
	if c.BindGroupProvider() == nil {
		t.Error("BindGroupProvider() = nil")
	}

	// Without a controller the matrices stay identity.
	view := c.ViewMatrix()
	for i, v := range view {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if v != want {
			t.Errorf("ViewMatrix()[%d] = %v, want %v", i, v, want)
			break
		}
	}
}

func TestCameraUpdateFromController(t *testing.T) {
	fc := NewFlightController(WithMode(ModeManualOrbit))
	c := NewCamera(WithController(fc), WithAspect(800.0/600.0))
	c.Update()

	// View matrix must match the controller's own look-at.
	var want [16]float32
	fc.ViewMatrix(want[:])
	got := c.ViewMatrix()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ViewMatrix()[%d] = %v, want %v", i, got[i], want[i])
			break
		}
	}

	// Combined matrix is projection * view.
	proj := c.ProjectionMatrix()
	view := c.ViewMatrix()
	var combined [16]float32
	common.Mul4(combined[:], proj[:], view[:])
	gotVP := c.ViewProjectionMatrix()
	for i := range combined {
		if gotVP[i] != combined[i] {
			t.Errorf("ViewProjectionMatrix()[%d] = %v, want %v", i, gotVP[i], combined[i])
			break
		}
	}
}

func TestCameraTracksController(t *testing.T) {
	fc := NewFlightController()
	c := NewCamera(WithController(fc))
	c.Update()
	before := c.ViewMatrix()

	fc.Update(1.0)
	c.Update()
	after := c.ViewMatrix()

	var moved bool
	for i := range before {
		if before[i] != after[i] {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("ViewMatrix() unchanged after the controller advanced")
	}
}

func TestCameraSetAspect(t *testing.T) {
	fc := NewFlightController()
	c := NewCamera(WithController(fc))
	c.Update()
	before := c.ProjectionMatrix()

	c.SetAspect(2.0)
	after := c.ProjectionMatrix()

	if before[0] == after[0] {
		t.Error("ProjectionMatrix()[0] unchanged after SetAspect")
	}
	if before[5] != after[5] {
		t.Errorf("ProjectionMatrix()[5] changed by aspect: %v -> %v", before[5], after[5])
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	var u GPUCameraUniform
	for i := 0; i < 16; i++ {
		u.ViewProj[i] = float32(i + 1)
	}
	u.CameraPosition = [3]float32{1.5, -2.5, 3.5}

	if u.Size() != 80 {
		t.Errorf("Size() = %d, want 80", u.Size())
	}
	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("len(Marshal()) = %d, want 80", len(buf))
	}
}
