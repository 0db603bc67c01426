package shader

import (
	"strings"
	"testing"
)

func TestProcessPassthrough(t *testing.T) {
	source := "// plain comment\nfn main() {\n    return;\n}"

	pp := NewPreProcessor()
	out, err := pp.Process(source)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if out != source {
		t.Errorf("Process() = %q, want source unchanged %q", out, source)
	}
	if len(pp.Declarations()) != 0 {
		t.Errorf("Declarations() = %v, want empty", pp.Declarations())
	}
}

func TestProcessInclude(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantStruct string
	}{
		{"camera", "//@terra:include camera", "struct CameraUniform"},
		{"vertex", "//@terra:include vertex", "struct VertexInput"},
		{"light", "//@terra:include light", "struct Light"},
		{"light header", "//@terra:include light_header", "struct LightHeader"},
		{"planet data", "//@terra:include planet_data", "struct PlanetData"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pp := NewPreProcessor()
			out, err := pp.Process(tt.line)
			if err != nil {
				t.Fatalf("Process(%q) error = %v", tt.line, err)
			}
			if !strings.Contains(out, tt.wantStruct) {
				t.Errorf("Process(%q) output missing %q:\n%s", tt.line, tt.wantStruct, out)
			}
			if strings.Contains(out, "@terra:") {
				t.Errorf("Process(%q) output still contains annotation:\n%s", tt.line, out)
			}
		})
	}
}

func TestProcessBindingGroupDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantDecl string
	}{
		{
			"uniform camera",
			"//@terra:group 0 0 storage_uniform camera camera",
			"@group(0) @binding(0) var<uniform> camera: CameraUniform;",
		},
		{
			"uniform planet data",
			"//@terra:group 1 0 storage_uniform planet planet_data",
			"@group(1) @binding(0) var<uniform> planet: PlanetData;",
		},
		{
			"storage light header",
			"//@terra:group 2 0 storage_read light_header light_header",
			"@group(2) @binding(0) var<storage, read> light_header: LightHeader;",
		},
		{
			"storage light array",
			"//@terra:group 2 1 storage_read lights array<light>",
			"@group(2) @binding(1) var<storage, read> lights: array<Light>;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pp := NewPreProcessor()
			out, err := pp.Process(tt.line)
			if err != nil {
				t.Fatalf("Process(%q) error = %v", tt.line, err)
			}
			if !strings.Contains(out, tt.wantDecl) {
				t.Errorf("Process(%q) = %q, want declaration %q", tt.line, out, tt.wantDecl)
			}

			decls := pp.Declarations()
			if len(decls) != 1 {
				t.Fatalf("len(Declarations()) = %d, want 1", len(decls))
			}
			if decls[0].Type != AnnotationTypeBindingGroup {
				t.Errorf("declaration type = %q, want %q", decls[0].Type, AnnotationTypeBindingGroup)
			}
		})
	}
}

func TestProcessProvider(t *testing.T) {
	source := "//@terra:provider 2 0 lights\n@group(2) @binding(0) var<storage, read> light_header: LightHeader;"

	pp := NewPreProcessor()
	out, err := pp.Process(source)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if strings.Contains(out, "@terra:") {
		t.Errorf("provider annotation not consumed:\n%s", out)
	}
	if !strings.Contains(out, "var<storage, read> light_header") {
		t.Errorf("hand-written declaration below provider annotation was lost:\n%s", out)
	}

	decls := pp.Declarations()
	if len(decls) != 1 {
		t.Fatalf("len(Declarations()) = %d, want 1", len(decls))
	}
	d := decls[0]
	if d.Type != AnnotationTypeProvider {
		t.Errorf("declaration type = %q, want %q", d.Type, AnnotationTypeProvider)
	}
	if d.Group == nil || *d.Group != 2 {
		t.Errorf("Group = %v, want 2", d.Group)
	}
	if len(d.Args) != 1 || d.Args[0] != AnnotationArgLights {
		t.Errorf("Args = %v, want [lights]", d.Args)
	}
}

func TestProcessDeclarationOrderAndReset(t *testing.T) {
	source := strings.Join([]string{
		"//@terra:include camera",
		"//@terra:group 0 0 storage_uniform camera camera",
		"//@terra:group 1 0 storage_uniform planet planet_data",
		"//@terra:provider 2 0 lights",
	}, "\n")

	pp := NewPreProcessor()
	if _, err := pp.Process(source); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	decls := pp.Declarations()
	if len(decls) != 3 {
		t.Fatalf("len(Declarations()) = %d, want 3 (include should not be recorded)", len(decls))
	}
	wantTypes := []AnnotationType{AnnotationTypeBindingGroup, AnnotationTypeBindingGroup, AnnotationTypeProvider}
	for i, want := range wantTypes {
		if decls[i].Type != want {
			t.Errorf("Declarations()[%d].Type = %q, want %q", i, decls[i].Type, want)
		}
	}

	// A second Process call must not accumulate declarations from the first.
	if _, err := pp.Process("//@terra:group 0 0 storage_uniform camera camera"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := len(pp.Declarations()); got != 1 {
		t.Errorf("len(Declarations()) after second Process = %d, want 1", got)
	}
}

func TestProcessMalformedAnnotation(t *testing.T) {
	source := "fn main() {}\n//@terra:include nebula"

	pp := NewPreProcessor()
	if _, err := pp.Process(source); err == nil {
		t.Fatal("Process() error = nil, want parse error for unknown struct type")
	} else if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %q, want line 2 in message", err.Error())
	}
}

func TestProcessFullVertexShader(t *testing.T) {
	source := strings.Join([]string{
		"//@terra:include camera",
		"//@terra:include vertex",
		"//@terra:include planet_data",
		"",
		"//@terra:group 0 0 storage_uniform camera camera",
		"//@terra:group 1 0 storage_uniform planet planet_data",
		"",
		"struct VertexOutput {",
		"    @builtin(position) clip_position: vec4<f32>,",
		"    @location(0) frag_pos: vec3<f32>,",
		"    @location(1) normal: vec3<f32>,",
		"}",
		"",
		"@vertex",
		"fn vs_main(in: VertexInput) -> VertexOutput {",
		"    var out: VertexOutput;",
		"    let world = planet.model * vec4<f32>(in.position, 1.0);",
		"    out.clip_position = camera.view_proj * world;",
		"    return out;",
		"}",
	}, "\n")

	pp := NewPreProcessor()
	out, err := pp.Process(source)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for _, want := range []string{
		"struct CameraUniform",
		"struct VertexInput",
		"struct PlanetData",
		"@group(0) @binding(0) var<uniform> camera: CameraUniform;",
		"@group(1) @binding(0) var<uniform> planet: PlanetData;",
		"fn vs_main",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("processed output missing %q", want)
		}
	}
	if strings.Contains(out, "@terra:") {
		t.Errorf("processed output still contains annotations:\n%s", out)
	}
	if got := len(pp.Declarations()); got != 2 {
		t.Errorf("len(Declarations()) = %d, want 2", got)
	}
}
