package shader

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glscene"
	"github.com/gogpu/glscene/gl"
)

// Source is the text of one shader stage.
type Source struct {
	Stage gputypes.ShaderStage
	Text  string
}

// Vertex returns a vertex stage Source.
func Vertex(text string) Source {
	return Source{Stage: gputypes.ShaderStageVertex, Text: text}
}

// Fragment returns a fragment stage Source.
func Fragment(text string) Source {
	return Source{Stage: gputypes.ShaderStageFragment, Text: text}
}

// Compiled is a successfully compiled stage, waiting to be linked.
type Compiled struct {
	Stage  gputypes.ShaderStage
	Handle gl.Shader
}

// Compile creates a shader object for src and compiles it.
//
// On failure the shader object is deleted and a *CompileError carrying the
// context's info log is returned. A context that cannot allocate the object
// yields an error wrapping gl.ErrAllocation.
func Compile(ctx gl.Context, src Source) (*Compiled, error) {
	if src.Stage != gputypes.ShaderStageVertex && src.Stage != gputypes.ShaderStageFragment {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStage, gl.StageName(src.Stage))
	}

	s := ctx.CreateShader(src.Stage)
	if !s.IsValid() {
		return nil, fmt.Errorf("shader: create %s shader: %w", gl.StageName(src.Stage), gl.ErrAllocation)
	}
	ctx.ShaderSource(s, src.Text)
	ctx.CompileShader(s)

	if !ctx.ShaderCompiled(s) {
		log := ctx.ShaderInfoLog(s)
		ctx.DeleteShader(s)
		return nil, &CompileError{Stage: src.Stage, Log: log}
	}

	glscene.Logger().Debug("shader compiled", "stage", gl.StageName(src.Stage), "shader", s.Value)
	return &Compiled{Stage: src.Stage, Handle: s}, nil
}
