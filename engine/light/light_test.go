package light

import (
	"encoding/binary"
	"math"
	"testing"
)

func f32At(t *testing.T, buf []byte, off int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
}

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()
	if got := l.Position(); got != [3]float32{0, 0, 0} {
		t.Errorf("position = %v, want origin", got)
	}
	if got := l.Color(); got != [3]float32{1, 1, 1} {
		t.Errorf("color = %v, want white", got)
	}
	if got := l.Intensity(); got != 1 {
		t.Errorf("intensity = %v, want 1", got)
	}
	if !l.Enabled() {
		t.Error("default light not enabled")
	}
}

func TestSunMoonPresets(t *testing.T) {
	sun := NewSun()
	if got := sun.Position(); got != [3]float32{5, 0, 0} {
		t.Errorf("sun position = %v, want (5, 0, 0)", got)
	}
	if got := sun.Color(); got != [3]float32{1.0, 0.9, 0.7} {
		t.Errorf("sun color = %v, want (1, 0.9, 0.7)", got)
	}
	if got := sun.Intensity(); got != 0.8 {
		t.Errorf("sun intensity = %v, want 0.8", got)
	}

	moon := NewMoon()
	if got := moon.Position(); got != [3]float32{-5, 0, 0} {
		t.Errorf("moon position = %v, want (-5, 0, 0)", got)
	}
	if got := moon.Color(); got != [3]float32{0.7, 0.8, 1.0} {
		t.Errorf("moon color = %v, want (0.7, 0.8, 1)", got)
	}
	if got := moon.Intensity(); got != 0.3 {
		t.Errorf("moon intensity = %v, want 0.3", got)
	}

	// The pair sits on opposite sides of the globe.
	if sun.Position()[0] != -moon.Position()[0] {
		t.Error("sun and moon are not opposed on the X axis")
	}
}

func TestGPULightMarshal(t *testing.T) {
	g := GPULight{
		Position:  [3]float32{1, 2, 3},
		Color:     [3]float32{0.5, 0.25, 0.125},
		Intensity: 0.8,
	}
	if g.Size() != 32 {
		t.Fatalf("GPULight size = %d, want 32", g.Size())
	}

	buf := g.Marshal()
	if len(buf) != 32 {
		t.Fatalf("marshaled length = %d, want 32", len(buf))
	}

	wants := []struct {
		off  int
		want float32
	}{
		{0, 1}, {4, 2}, {8, 3}, // position
		{16, 0.5}, {20, 0.25}, {24, 0.125}, // color at the vec3-aligned offset
		{28, 0.8}, // intensity packs into the color vec's tail
	}
	for _, w := range wants {
		if got := f32At(t, buf, w.off); got != w.want {
			t.Errorf("float at offset %d = %v, want %v", w.off, got, w.want)
		}
	}
	if pad := binary.LittleEndian.Uint32(buf[12:16]); pad != 0 {
		t.Errorf("padding word = %#x, want 0", pad)
	}
}

func TestGPULightHeaderMarshal(t *testing.T) {
	h := GPULightHeader{
		AmbientColor: [3]float32{0.05, 0.05, 0.1},
		LightCount:   2,
	}
	if h.Size() != 16 {
		t.Fatalf("GPULightHeader size = %d, want 16", h.Size())
	}

	buf := h.Marshal()
	if len(buf) != 16 {
		t.Fatalf("marshaled length = %d, want 16", len(buf))
	}
	if got := f32At(t, buf, 0); got != 0.05 {
		t.Errorf("ambient r = %v, want 0.05", got)
	}
	if got := f32At(t, buf, 8); got != 0.1 {
		t.Errorf("ambient b = %v, want 0.1", got)
	}
	if got := binary.LittleEndian.Uint32(buf[12:16]); got != 2 {
		t.Errorf("light count = %d, want 2", got)
	}
}

func TestMarshalLightBufferFiltersDisabled(t *testing.T) {
	off := NewLight(WithPosition(9, 9, 9), WithEnabled(false))
	lights := []Light{NewSun(), off, NewMoon()}

	buf := MarshalLightBuffer(lights, [3]float32{0.05, 0.05, 0.1})
	if want := 16 + 2*32; len(buf) != want {
		t.Fatalf("buffer length = %d, want %d", len(buf), want)
	}
	if count := binary.LittleEndian.Uint32(buf[12:16]); count != 2 {
		t.Fatalf("header count = %d, want 2", count)
	}

	// Enabled lights keep their relative order: sun first, then moon.
	if got := f32At(t, buf, 16); got != 5 {
		t.Errorf("first light x = %v, want 5", got)
	}
	if got := f32At(t, buf, 16+32); got != -5 {
		t.Errorf("second light x = %v, want -5", got)
	}
}

func TestMarshalLightBufferCapped(t *testing.T) {
	var lights []Light
	for i := 0; i < MaxGPULights+3; i++ {
		lights = append(lights, NewLight(WithPosition(float32(i), 0, 0)))
	}

	buf := MarshalLightBuffer(lights, [3]float32{})
	if want := 16 + MaxGPULights*32; len(buf) != want {
		t.Fatalf("buffer length = %d, want %d", len(buf), want)
	}
	if count := binary.LittleEndian.Uint32(buf[12:16]); count != MaxGPULights {
		t.Fatalf("header count = %d, want %d", count, MaxGPULights)
	}

	// The last slot holds the light at index MaxGPULights-1; overflow lights
	// are dropped, not wrapped.
	lastX := f32At(t, buf, 16+(MaxGPULights-1)*32)
	if lastX != float32(MaxGPULights-1) {
		t.Errorf("last packed light x = %v, want %v", lastX, float32(MaxGPULights-1))
	}
}

func TestMarshalLightBufferEmpty(t *testing.T) {
	buf := MarshalLightBuffer(nil, [3]float32{0.2, 0.3, 0.4})
	if len(buf) != 16 {
		t.Fatalf("buffer length = %d, want header only (16)", len(buf))
	}
	if count := binary.LittleEndian.Uint32(buf[12:16]); count != 0 {
		t.Errorf("header count = %d, want 0", count)
	}
	if got := f32At(t, buf, 4); got != 0.3 {
		t.Errorf("ambient g = %v, want 0.3", got)
	}
}

func TestToGPULight(t *testing.T) {
	l := NewLight(
		WithPosition(1, 2, 3),
		WithColor(0.1, 0.2, 0.3),
		WithIntensity(0.5),
	)
	g := ToGPULight(l)
	if g.Position != [3]float32{1, 2, 3} {
		t.Errorf("position = %v, want (1, 2, 3)", g.Position)
	}
	if g.Color != [3]float32{0.1, 0.2, 0.3} {
		t.Errorf("color = %v, want (0.1, 0.2, 0.3)", g.Color)
	}
	if g.Intensity != 0.5 {
		t.Errorf("intensity = %v, want 0.5", g.Intensity)
	}
}
