package shader

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glscene/gl"
	"github.com/gogpu/glscene/recording"
	"github.com/gogpu/glscene/shaders"
)

func wgsl(t *testing.T, name string) string {
	t.Helper()
	src, err := shaders.WGSL(name)
	if err != nil {
		t.Fatal(err)
	}
	return src
}

func TestBuildResolvesAllLocations(t *testing.T) {
	rec := recording.NewRecorder()
	prog, err := Build(rec, wgsl(t, "color.vert"), wgsl(t, "color.frag"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !prog.Handle.IsValid() {
		t.Fatal("program handle is invalid")
	}
	if !prog.Position.Valid() || !prog.Color.Valid() {
		t.Errorf("attributes position=%d color=%d, want both valid", prog.Position, prog.Color)
	}
	if prog.Position == prog.Color {
		t.Errorf("position and color share location %d", prog.Position)
	}
	if !prog.Projection.Valid() || !prog.ModelView.Valid() {
		t.Errorf("uniforms projection=%v modelView=%v, want both valid", prog.Projection, prog.ModelView)
	}

	shadersLive, programs, _ := rec.Live()
	if shadersLive != 0 {
		t.Errorf("live shaders after link = %d, want 0", shadersLive)
	}
	if programs != 1 {
		t.Errorf("live programs = %d, want 1", programs)
	}
}

func TestBuildToleratesMissingAttribute(t *testing.T) {
	rec := recording.NewRecorder()
	prog, err := Build(rec, wgsl(t, "plain.vert"), wgsl(t, "white.frag"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if prog.Color != gl.NoAttrib {
		t.Errorf("Color = %d, want NoAttrib", prog.Color)
	}
	if !prog.Position.Valid() {
		t.Error("Position should resolve")
	}
}

func TestBuildIgnoresNamesInComments(t *testing.T) {
	vs := `
// @group(0) @binding(0) var<uniform> uProjectionMatrix: mat4x4<f32>;
@group(0) @binding(1) var<uniform> uModelViewMatrix: mat4x4<f32>;

@vertex
fn vs_main(
    // @location(3) aVertexColor: vec4<f32>,
    @location(0) aVertexPosition: vec4<f32>
) -> @builtin(position) vec4<f32> {
    return uModelViewMatrix * aVertexPosition;
}
`
	rec := recording.NewRecorder()
	prog, err := Build(rec, vs, wgsl(t, "white.frag"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if prog.Color != gl.NoAttrib {
		t.Errorf("Color = %d, want NoAttrib", prog.Color)
	}
	if prog.Projection.Valid() {
		t.Errorf("Projection = %v, want invalid", prog.Projection)
	}
	if !prog.Position.Valid() || !prog.ModelView.Valid() {
		t.Errorf("position=%d modelView=%v, want both valid", prog.Position, prog.ModelView)
	}
}
func TestCompileError(t *testing.T) {
	rec := recording.NewRecorder()
	_, err := Compile(rec, Vertex("@vertex fn vs_main( -> {"))
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *CompileError", err)
	}
	if ce.Stage != gputypes.ShaderStageVertex {
		t.Errorf("Stage = %v, want vertex", ce.Stage)
	}
	if ce.Log == "" {
		t.Error("CompileError.Log is empty")
	}
	if !strings.Contains(err.Error(), "vertex compile failed") {
		t.Errorf("Error() = %q", err.Error())
	}
	if live, _, _ := rec.Live(); live != 0 {
		t.Errorf("failed shader object not released, live = %d", live)
	}
}

func TestBuildReleasesVertexOnFragmentFailure(t *testing.T) {
	rec := recording.NewRecorder()
	_, err := Build(rec, wgsl(t, "color.vert"), "not wgsl at all")
	var ce *CompileError
	if !errors.As(err, &ce) || ce.Stage != gputypes.ShaderStageFragment {
		t.Fatalf("error = %v, want fragment *CompileError", err)
	}
	if live, _, _ := rec.Live(); live != 0 {
		t.Errorf("live shaders = %d, want 0", live)
	}
}

func TestInvalidStage(t *testing.T) {
	rec := recording.NewRecorder()
	_, err := Compile(rec, Source{Stage: gputypes.ShaderStageCompute, Text: "x"})
	if !errors.Is(err, ErrInvalidStage) {
		t.Errorf("Compile(compute) error = %v, want ErrInvalidStage", err)
	}
	if len(rec.Commands()) != 0 {
		t.Errorf("invalid stage reached the context: %d commands", len(rec.Commands()))
	}

	vs := &Compiled{Stage: gputypes.ShaderStageVertex, Handle: gl.Shader{Value: 1}}
	if _, err := Link(rec, vs, vs); !errors.Is(err, ErrInvalidStage) {
		t.Errorf("Link(vs, vs) error = %v, want ErrInvalidStage", err)
	}
	if _, err := Link(rec, nil, vs); !errors.Is(err, ErrInvalidStage) {
		t.Errorf("Link(nil, vs) error = %v, want ErrInvalidStage", err)
	}
}

func TestAllocationFailure(t *testing.T) {
	tests := []struct {
		name   string
		budget int
	}{
		{"vertex shader", 0},
		{"fragment shader", 1},
		{"program", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recording.NewRecorder(recording.WithAllocationBudget(tt.budget))
			_, err := Build(rec, wgsl(t, "color.vert"), wgsl(t, "color.frag"))
			if !errors.Is(err, gl.ErrAllocation) {
				t.Fatalf("error = %v, want gl.ErrAllocation", err)
			}
			if live, programs, _ := rec.Live(); live != 0 || programs != 0 {
				t.Errorf("leaked objects: shaders=%d programs=%d", live, programs)
			}
		})
	}
}

// failingLinker reports every link as failed.
type failingLinker struct {
	*recording.Recorder
}

func (failingLinker) ProgramLinked(gl.Program) bool { return false }

func (failingLinker) ProgramInfoLog(gl.Program) string {
	return "ERROR: varying vColor not written by vertex shader"
}

func TestLinkError(t *testing.T) {
	rec := recording.NewRecorder()
	ctx := failingLinker{rec}
	_, err := Build(ctx, wgsl(t, "color.vert"), wgsl(t, "color.frag"))
	var le *LinkError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *LinkError", err)
	}
	if !strings.Contains(le.Log, "vColor") {
		t.Errorf("Log = %q, want the context's info log", le.Log)
	}
	if live, programs, _ := rec.Live(); live != 0 || programs != 0 {
		t.Errorf("leaked objects after link failure: shaders=%d programs=%d", live, programs)
	}
}

func TestProgramRelease(t *testing.T) {
	rec := recording.NewRecorder()
	prog, err := Build(rec, wgsl(t, "color.vert"), wgsl(t, "color.frag"))
	if err != nil {
		t.Fatal(err)
	}
	prog.Release(rec)
	prog.Release(rec) // second call is a no-op
	if _, programs, _ := rec.Live(); programs != 0 {
		t.Errorf("live programs after Release = %d, want 0", programs)
	}
	if n := len(rec.CommandsOf(recording.CmdDeleteProgram)); n != 1 {
		t.Errorf("DeleteProgram issued %d times, want 1", n)
	}
}
