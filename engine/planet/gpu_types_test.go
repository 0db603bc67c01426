package planet

import (
	"encoding/binary"
	"math"
	"testing"
)

func float32At(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset : offset+4]))
}

func TestGPUPlanetVertexMarshal(t *testing.T) {
	v := GPUPlanetVertex{
		Position: [3]float32{1.5, -2.25, 3.0},
		Normal:   [3]float32{0, 1, 0},
	}

	if v.Size() != 24 {
		t.Errorf("Size() = %d, want 24", v.Size())
	}

	buf := v.Marshal()
	if len(buf) != 24 {
		t.Fatalf("len(Marshal()) = %d, want 24", len(buf))
	}

	tests := []struct {
		name   string
		offset int
		want   float32
	}{
		{"position x", 0, 1.5},
		{"position y", 4, -2.25},
		{"position z", 8, 3.0},
		{"normal x", 12, 0},
		{"normal y", 16, 1},
		{"normal z", 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := float32At(buf, tt.offset); got != tt.want {
				t.Errorf("offset %d = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestGPUPlanetDataMarshal(t *testing.T) {
	var d GPUPlanetData
	for i := 0; i < 16; i++ {
		d.Model[i] = float32(i)
		d.Normal[i] = float32(100 + i)
	}

	if d.Size() != 128 {
		t.Errorf("Size() = %d, want 128", d.Size())
	}

	buf := d.Marshal()
	if len(buf) != 128 {
		t.Fatalf("len(Marshal()) = %d, want 128", len(buf))
	}

	for i := 0; i < 16; i++ {
		if got := float32At(buf, i*4); got != float32(i) {
			t.Errorf("model[%d] = %v, want %v", i, got, float32(i))
		}
		if got := float32At(buf, 64+i*4); got != float32(100+i) {
			t.Errorf("normal[%d] = %v, want %v", i, got, float32(100+i))
		}
	}
}
