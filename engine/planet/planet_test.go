package planet

import (
	"math"
	"testing"
)

func TestNewPlanetDefaults(t *testing.T) {
	p, err := NewPlanet()
	if err != nil {
		t.Fatalf("NewPlanet() error = %v", err)
	}

	if p.Name() != "planet" {
		t.Errorf("Name() = %q, want %q", p.Name(), "planet")
	}
	if p.Radius() != 1.0 {
		t.Errorf("Radius() = %v, want 1.0", p.Radius())
	}
	if !p.Enabled() {
		t.Error("Enabled() = false, want true")
	}
	if p.Mesh() == nil {
		t.Fatal("Mesh() = nil")
	}
	if got, want := p.Mesh().VertexCount(), 73*37; got != want {
		t.Errorf("default VertexCount() = %d, want %d", got, want)
	}
	if got, want := p.Mesh().TriangleCount(), 2*72*35; got != want {
		t.Errorf("default TriangleCount() = %d, want %d", got, want)
	}
	if p.MeshProvider() == nil {
		t.Error("MeshProvider() = nil")
	}
	if p.DataProvider() == nil {
		t.Error("DataProvider() = nil")
	}

	yaw, pitch := p.Orientation()
	if yaw != 0 || pitch != 0 {
		t.Errorf("Orientation() = (%v, %v), want (0, 0)", yaw, pitch)
	}
}

func TestNewPlanetOptions(t *testing.T) {
	p, err := NewPlanet(
		WithName("terra"),
		WithRadius(2.0),
		WithResolution(16, 8),
		WithOrientation(0.5, -0.25),
		WithEnabled(false),
	)
	if err != nil {
		t.Fatalf("NewPlanet() error = %v", err)
	}

	if p.Name() != "terra" {
		t.Errorf("Name() = %q, want %q", p.Name(), "terra")
	}
	if p.Radius() != 2.0 {
		t.Errorf("Radius() = %v, want 2.0", p.Radius())
	}
	if got, want := p.Mesh().VertexCount(), 17*9; got != want {
		t.Errorf("VertexCount() = %d, want %d", got, want)
	}
	if p.Enabled() {
		t.Error("Enabled() = true, want false")
	}
	yaw, pitch := p.Orientation()
	if yaw != 0.5 || pitch != -0.25 {
		t.Errorf("Orientation() = (%v, %v), want (0.5, -0.25)", yaw, pitch)
	}
}

func TestNewPlanetInvalidResolution(t *testing.T) {
	if _, err := NewPlanet(WithResolution(2, 8)); err == nil {
		t.Error("NewPlanet(WithResolution(2, 8)) expected error, got nil")
	}
	if _, err := NewPlanet(WithRadius(-1)); err == nil {
		t.Error("NewPlanet(WithRadius(-1)) expected error, got nil")
	}
}

func TestPlanetRotate(t *testing.T) {
	p, err := NewPlanet(WithResolution(8, 4))
	if err != nil {
		t.Fatalf("NewPlanet() error = %v", err)
	}

	p.Rotate(0.1, 0.2)
	p.Rotate(0.1, -0.05)
	yaw, pitch := p.Orientation()
	if math.Abs(float64(yaw)-0.2) > 1e-6 {
		t.Errorf("yaw = %v, want 0.2", yaw)
	}
	if math.Abs(float64(pitch)-0.15) > 1e-6 {
		t.Errorf("pitch = %v, want 0.15", pitch)
	}

	p.SetOrientation(0, 0)
	yaw, pitch = p.Orientation()
	if yaw != 0 || pitch != 0 {
		t.Errorf("Orientation() after reset = (%v, %v), want (0, 0)", yaw, pitch)
	}
}

func TestPlanetGPUDataIdentity(t *testing.T) {
	p, err := NewPlanet(WithResolution(8, 4))
	if err != nil {
		t.Fatalf("NewPlanet() error = %v", err)
	}

	data := p.GPUData()
	for i := 0; i < 16; i++ {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if math.Abs(float64(data.Model[i]-want)) > 1e-6 {
			t.Errorf("Model[%d] = %v, want %v", i, data.Model[i], want)
		}
		if math.Abs(float64(data.Normal[i]-want)) > 1e-6 {
			t.Errorf("Normal[%d] = %v, want %v", i, data.Normal[i], want)
		}
	}
}

func TestPlanetGPUDataRotation(t *testing.T) {
	p, err := NewPlanet(WithResolution(8, 4), WithOrientation(0.7, -0.3))
	if err != nil {
		t.Fatalf("NewPlanet() error = %v", err)
	}

	data := p.GPUData()

	// A pure rotation is orthonormal: each basis column has unit length and the
	// inverse-transpose equals the matrix itself.
	for c := 0; c < 3; c++ {
		var lenSq float64
		for r := 0; r < 3; r++ {
			v := float64(data.Model[c*4+r])
			lenSq += v * v
		}
		if math.Abs(lenSq-1) > 1e-4 {
			t.Errorf("model column %d length² = %v, want 1", c, lenSq)
		}
	}
	for i := 0; i < 16; i++ {
		if math.Abs(float64(data.Normal[i]-data.Model[i])) > 1e-4 {
			t.Errorf("Normal[%d] = %v, want %v (rotation inverse-transpose)", i, data.Normal[i], data.Model[i])
		}
	}

	// No translation component.
	if data.Model[12] != 0 || data.Model[13] != 0 || data.Model[14] != 0 {
		t.Errorf("translation = (%v, %v, %v), want zero", data.Model[12], data.Model[13], data.Model[14])
	}
}
