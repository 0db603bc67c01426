package shader

import (
	"strings"
	"testing"
)

func TestParseAnnotationNonAnnotationLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"wgsl code", "var<uniform> camera: CameraUniform;"},
		{"plain comment", "// lighting follows the camera"},
		{"block comment marker", "/* not an annotation */"},
		{"wrong prefix", "//@wgsl:include camera"},
		{"missing colon", "//@terra include camera"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseAnnotation(tt.line, 1)
			if err != nil {
				t.Fatalf("parseAnnotation(%q) error = %v, want nil", tt.line, err)
			}
			if a != nil {
				t.Errorf("parseAnnotation(%q) = %+v, want nil", tt.line, a)
			}
		})
	}
}

func TestParseAnnotationInclude(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantArg AnnotationArg
	}{
		{"camera", "//@terra:include camera", AnnotationArgCamera},
		{"vertex", "//@terra:include vertex", annotationArgVertex},
		{"light", "//@terra:include light", AnnotationArgLight},
		{"light header", "//@terra:include light_header", AnnotationArgLightHeader},
		{"planet data", "//@terra:include planet_data", AnnotationArgPlanetData},
		{"leading whitespace", "    //@terra:include camera", AnnotationArgCamera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseAnnotation(tt.line, 7)
			if err != nil {
				t.Fatalf("parseAnnotation(%q) error = %v", tt.line, err)
			}
			if a == nil {
				t.Fatalf("parseAnnotation(%q) = nil, want annotation", tt.line)
			}
			if a.Type != annotationTypeInclude {
				t.Errorf("Type = %q, want %q", a.Type, annotationTypeInclude)
			}
			if len(a.Args) != 1 || a.Args[0] != tt.wantArg {
				t.Errorf("Args = %v, want [%s]", a.Args, tt.wantArg)
			}
			if a.Line != 7 {
				t.Errorf("Line = %d, want 7", a.Line)
			}
			if a.Group != nil || a.Binding != nil {
				t.Errorf("include annotation should not carry group/binding, got group=%v binding=%v", a.Group, a.Binding)
			}
		})
	}
}

func TestParseAnnotationBindingGroup(t *testing.T) {
	a, err := parseAnnotation("//@terra:group 0 0 storage_uniform camera camera", 3)
	if err != nil {
		t.Fatalf("parseAnnotation() error = %v", err)
	}
	if a.Type != AnnotationTypeBindingGroup {
		t.Errorf("Type = %q, want %q", a.Type, AnnotationTypeBindingGroup)
	}
	if a.Group == nil || *a.Group != 0 {
		t.Errorf("Group = %v, want 0", a.Group)
	}
	if a.Binding == nil || *a.Binding != 0 {
		t.Errorf("Binding = %v, want 0", a.Binding)
	}
	wantArgs := []AnnotationArg{"storage_uniform", "camera", "camera"}
	if len(a.Args) != len(wantArgs) {
		t.Fatalf("len(Args) = %d, want %d", len(a.Args), len(wantArgs))
	}
	for i, want := range wantArgs {
		if a.Args[i] != want {
			t.Errorf("Args[%d] = %q, want %q", i, a.Args[i], want)
		}
	}
}

func TestParseAnnotationBindingGroupArrayType(t *testing.T) {
	a, err := parseAnnotation("//@terra:group 2 1 storage_read lights array<light>", 12)
	if err != nil {
		t.Fatalf("parseAnnotation() error = %v", err)
	}
	if a.Group == nil || *a.Group != 2 {
		t.Errorf("Group = %v, want 2", a.Group)
	}
	if a.Binding == nil || *a.Binding != 1 {
		t.Errorf("Binding = %v, want 1", a.Binding)
	}
	if a.Args[2] != "array<light>" {
		t.Errorf("Args[2] = %q, want %q", a.Args[2], "array<light>")
	}
}

func TestParseAnnotationProvider(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantGroup    int
		wantBinding  int
		wantIdentity AnnotationArg
	}{
		{"planet", "//@terra:provider 1 0 planet", 1, 0, AnnotationArgPlanet},
		{"lights", "//@terra:provider 2 0 lights", 2, 0, AnnotationArgLights},
		{"camera", "//@terra:provider 0 0 camera", 0, 0, AnnotationArgCamera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseAnnotation(tt.line, 5)
			if err != nil {
				t.Fatalf("parseAnnotation(%q) error = %v", tt.line, err)
			}
			if a.Type != AnnotationTypeProvider {
				t.Errorf("Type = %q, want %q", a.Type, AnnotationTypeProvider)
			}
			if a.Group == nil || *a.Group != tt.wantGroup {
				t.Errorf("Group = %v, want %d", a.Group, tt.wantGroup)
			}
			if a.Binding == nil || *a.Binding != tt.wantBinding {
				t.Errorf("Binding = %v, want %d", a.Binding, tt.wantBinding)
			}
			if len(a.Args) != 1 || a.Args[0] != tt.wantIdentity {
				t.Errorf("Args = %v, want [%s]", a.Args, tt.wantIdentity)
			}
		})
	}
}

func TestParseAnnotationErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantSub string
	}{
		{"empty annotation", "//@terra:", "empty @terra annotation"},
		{"unknown type", "//@terra:material 0 0", "unknown @terra annotation type"},
		{"include missing arg", "//@terra:include", "requires exactly one argument"},
		{"include extra arg", "//@terra:include camera extra", "requires exactly one argument"},
		{"include unknown struct", "//@terra:include terrain", `unknown struct type "terrain"`},
		{"group too few args", "//@terra:group 0 0 storage_uniform camera", "requires exactly five arguments"},
		{"group bad group number", "//@terra:group x 0 storage_uniform camera camera", `invalid group number "x"`},
		{"group bad binding number", "//@terra:group 0 y storage_uniform camera camera", `invalid binding number "y"`},
		{"group unknown address space", "//@terra:group 0 0 storage_read_write camera camera", `unknown address space "storage_read_write"`},
		{"group unknown struct type", "//@terra:group 0 0 storage_uniform foo bar", `unknown struct type "bar"`},
		{"group unknown array element", "//@terra:group 2 1 storage_read lights array<shadow>", `unknown array element type "shadow"`},
		{"provider too few args", "//@terra:provider 1 0", "requires exactly three arguments"},
		{"provider extra args", "//@terra:provider 1 0 planet extra", "requires exactly three arguments"},
		{"provider bad group", "//@terra:provider a 0 planet", `invalid group number "a"`},
		{"provider unknown identity", "//@terra:provider 1 0 moon", `unknown provider identity "moon"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnnotation(tt.line, 42)
			if err == nil {
				t.Fatalf("parseAnnotation(%q) error = nil, want error containing %q", tt.line, tt.wantSub)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantSub)
			}
			if !strings.Contains(err.Error(), "line 42") {
				t.Errorf("error = %q, want line number 42 in message", err.Error())
			}
		})
	}
}
