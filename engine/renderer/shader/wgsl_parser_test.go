package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const vertexTestSource = `
struct CameraUniform {
    view_proj: mat4x4<f32>,
    camera_position: vec3<f32>,
}

struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
}

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) frag_pos: vec3<f32>,
    @location(1) normal: vec3<f32>,
}

@group(0) @binding(0) var<uniform> camera: CameraUniform;

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = camera.view_proj * vec4<f32>(in.position, 1.0);
    return out;
}
`

const fragmentTestSource = `
struct CameraUniform {
    view_proj: mat4x4<f32>,
    camera_position: vec3<f32>,
}

struct LightHeader {
    ambient_color: vec3<f32>,
    light_count: u32,
}

struct Light {
    position: vec3<f32>,
    color: vec3<f32>,
    intensity: f32,
}

@group(0) @binding(0) var<uniform> camera: CameraUniform;
@group(2) @binding(0) var<storage, read> light_header: LightHeader;
@group(2) @binding(1) var<storage, read> lights: array<Light>;

@fragment
fn fs_main(@location(0) frag_pos: vec3<f32>) -> @location(0) vec4<f32> {
    return vec4<f32>(frag_pos, 1.0);
}
`

func TestParseVertexLayouts(t *testing.T) {
	layouts := parseVertexLayouts(vertexTestSource)
	if len(layouts) != 1 {
		t.Fatalf("len(layouts) = %d, want 1 (VertexOutput has builtins, CameraUniform has no locations)", len(layouts))
	}

	layout := layouts[0]
	if len(layout) != 1 {
		t.Fatalf("len(layouts[0]) = %d, want 1", len(layout))
	}

	vbl := layout[0]
	if vbl.ArrayStride != 24 {
		t.Errorf("ArrayStride = %d, want 24", vbl.ArrayStride)
	}
	if vbl.StepMode != wgpu.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want %v", vbl.StepMode, wgpu.VertexStepModeVertex)
	}
	if len(vbl.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(vbl.Attributes))
	}

	tests := []struct {
		name         string
		attr         wgpu.VertexAttribute
		wantFormat   wgpu.VertexFormat
		wantOffset   uint64
		wantLocation uint32
	}{
		{"position", vbl.Attributes[0], wgpu.VertexFormatFloat32x3, 0, 0},
		{"normal", vbl.Attributes[1], wgpu.VertexFormatFloat32x3, 12, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Format != tt.wantFormat {
				t.Errorf("Format = %v, want %v", tt.attr.Format, tt.wantFormat)
			}
			if tt.attr.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", tt.attr.Offset, tt.wantOffset)
			}
			if tt.attr.ShaderLocation != tt.wantLocation {
				t.Errorf("ShaderLocation = %d, want %d", tt.attr.ShaderLocation, tt.wantLocation)
			}
		})
	}
}

func TestParseBindGroupLayouts(t *testing.T) {
	layouts, varNames := parseBindGroupLayouts(fragmentTestSource, wgpu.ShaderStageFragment)

	if len(layouts) != 2 {
		t.Fatalf("len(layouts) = %d, want 2 (groups 0 and 2)", len(layouts))
	}

	group0 := layouts[0]
	if len(group0.Entries) != 1 {
		t.Fatalf("group 0 entries = %d, want 1", len(group0.Entries))
	}
	cam := group0.Entries[0]
	if cam.Buffer.Type != wgpu.BufferBindingTypeUniform {
		t.Errorf("camera Buffer.Type = %v, want uniform", cam.Buffer.Type)
	}
	if cam.Buffer.MinBindingSize != 80 {
		t.Errorf("camera MinBindingSize = %d, want 80", cam.Buffer.MinBindingSize)
	}
	if cam.Visibility != wgpu.ShaderStageFragment {
		t.Errorf("camera Visibility = %v, want fragment", cam.Visibility)
	}

	group2 := layouts[2]
	if len(group2.Entries) != 2 {
		t.Fatalf("group 2 entries = %d, want 2", len(group2.Entries))
	}
	header := group2.Entries[0]
	if header.Binding != 0 {
		t.Errorf("entries not sorted by binding: first binding = %d", header.Binding)
	}
	if header.Buffer.Type != wgpu.BufferBindingTypeReadOnlyStorage {
		t.Errorf("light_header Buffer.Type = %v, want read-only storage", header.Buffer.Type)
	}
	if header.Buffer.MinBindingSize != 16 {
		t.Errorf("light_header MinBindingSize = %d, want 16", header.Buffer.MinBindingSize)
	}
	lightArr := group2.Entries[1]
	if lightArr.Buffer.Type != wgpu.BufferBindingTypeReadOnlyStorage {
		t.Errorf("lights Buffer.Type = %v, want read-only storage", lightArr.Buffer.Type)
	}
	// Runtime-sized array: MinBindingSize is one element stride.
	if lightArr.Buffer.MinBindingSize != 32 {
		t.Errorf("lights MinBindingSize = %d, want 32", lightArr.Buffer.MinBindingSize)
	}

	wantNames := map[int]map[int]string{
		0: {0: "camera"},
		2: {0: "light_header", 1: "lights"},
	}
	for group, bindings := range wantNames {
		for binding, want := range bindings {
			if got := varNames[group][binding]; got != want {
				t.Errorf("varNames[%d][%d] = %q, want %q", group, binding, got, want)
			}
		}
	}
}

func TestParseEntryPoint(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		shaderType ShaderType
		want       string
	}{
		{"vertex", vertexTestSource, ShaderTypeVertex, "vs_main"},
		{"fragment", fragmentTestSource, ShaderTypeFragment, "fs_main"},
		{"vertex entry absent", fragmentTestSource, ShaderTypeVertex, ""},
		{"fragment entry absent", vertexTestSource, ShaderTypeFragment, ""},
		{"commented-out entry ignored", "// @vertex\n// fn ghost() {}", ShaderTypeVertex, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseEntryPoint(tt.source, tt.shaderType); got != tt.want {
				t.Errorf("parseEntryPoint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComputeStructSizes(t *testing.T) {
	structs := parseStructBlocks(stripComments(fragmentTestSource))
	sizes := computeStructSizes(structs)

	tests := []struct {
		name string
		want uint64
	}{
		{"CameraUniform", 80},
		{"LightHeader", 16},
		{"Light", 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, ok := sizes[tt.name]
			if !ok {
				t.Fatalf("struct %q not resolved", tt.name)
			}
			if layout.size != tt.want {
				t.Errorf("size = %d, want %d", layout.size, tt.want)
			}
		})
	}
}

func TestComputeStructSizesNested(t *testing.T) {
	source := `
struct Inner {
    value: vec4<f32>,
}

struct Outer {
    first: Inner,
    second: Inner,
    scale: f32,
}
`
	sizes := computeStructSizes(parseStructBlocks(source))

	if got := sizes["Inner"].size; got != 16 {
		t.Errorf("Inner size = %d, want 16", got)
	}
	// Two 16-byte members then an f32, rounded up to 16-byte alignment.
	if got := sizes["Outer"].size; got != 48 {
		t.Errorf("Outer size = %d, want 48", got)
	}
}

func TestResolveTypeLayout(t *testing.T) {
	known := map[string]wgslTypeLayout{
		"Light": {32, 16},
	}

	tests := []struct {
		name     string
		typeName string
		wantSize uint64
		wantOK   bool
	}{
		{"scalar", "f32", 4, true},
		{"vec3", "vec3<f32>", 12, true},
		{"matrix", "mat4x4<f32>", 64, true},
		{"known struct", "Light", 32, true},
		{"fixed array", "array<Light, 4>", 128, true},
		{"fixed array of vec3 pads stride", "array<vec3<f32>, 2>", 32, true},
		{"runtime array element stride", "array<Light>", 32, true},
		{"unknown type", "ShadowMap", 0, false},
		{"array of unknown", "array<ShadowMap, 2>", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, ok := resolveTypeLayout(tt.typeName, known)
			if ok != tt.wantOK {
				t.Fatalf("resolveTypeLayout(%q) ok = %v, want %v", tt.typeName, ok, tt.wantOK)
			}
			if ok && layout.size != tt.wantSize {
				t.Errorf("resolveTypeLayout(%q) size = %d, want %d", tt.typeName, layout.size, tt.wantSize)
			}
		})
	}
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"line comment", "let x = 1; // trailing", "let x = 1; \n"},
		{"block comment", "let /* mid */ x = 1;", "let  x = 1;\n"},
		{"nested block comment", "a /* outer /* inner */ still outer */ b", "a  b\n"},
		{"block spanning lines", "a /* one\ntwo */ b", "a  b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripComments(tt.source); got != tt.want {
				t.Errorf("stripComments(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestSplitAtTopLevelCommas(t *testing.T) {
	got := splitAtTopLevelCommas("a: f32, b: array<vec3<f32>, 4>, c: u32")
	want := []string{"a: f32", " b: array<vec3<f32>, 4>", " c: u32"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClassifyResource(t *testing.T) {
	tests := []struct {
		name         string
		addressSpace string
		wantType     wgpu.BufferBindingType
	}{
		{"uniform", "uniform", wgpu.BufferBindingTypeUniform},
		{"read-only storage", "storage, read", wgpu.BufferBindingTypeReadOnlyStorage},
		{"bare storage defaults read-only", "storage", wgpu.BufferBindingTypeReadOnlyStorage},
		{"read-write storage", "storage, read_write", wgpu.BufferBindingTypeStorage},
		{"unrecognized", "", wgpu.BufferBindingTypeUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := classifyResource(3, wgpu.ShaderStageVertex, tt.addressSpace)
			if entry.Binding != 3 {
				t.Errorf("Binding = %d, want 3", entry.Binding)
			}
			if entry.Buffer.Type != tt.wantType {
				t.Errorf("Buffer.Type = %v, want %v", entry.Buffer.Type, tt.wantType)
			}
		})
	}
}
