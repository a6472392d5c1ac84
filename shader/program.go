package shader

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glscene"
	"github.com/gogpu/glscene/gl"
)

// Names of the shader interface the pipeline binds.
const (
	PositionAttribute = "aVertexPosition"
	ColorAttribute    = "aVertexColor"
	ProjectionUniform = "uProjectionMatrix"
	ModelViewUniform  = "uModelViewMatrix"
)

// Program is a linked program with its resolved locations.
// It lives for the whole rendering session.
type Program struct {
	Handle gl.Program

	Position gl.Attrib
	Color    gl.Attrib

	Projection gl.Uniform
	ModelView  gl.Uniform
}

// Link links vs and fs into a Program.
//
// Both stages are detached and deleted before Link returns, whatever the
// outcome. On failure the program object is deleted too and a *LinkError
// carrying the context's info log is returned.
func Link(ctx gl.Context, vs, fs *Compiled) (*Program, error) {
	if vs == nil || vs.Stage != gputypes.ShaderStageVertex {
		return nil, fmt.Errorf("%w: first shader must be a vertex stage", ErrInvalidStage)
	}
	if fs == nil || fs.Stage != gputypes.ShaderStageFragment {
		return nil, fmt.Errorf("%w: second shader must be a fragment stage", ErrInvalidStage)
	}

	p := ctx.CreateProgram()
	if !p.IsValid() {
		ctx.DeleteShader(vs.Handle)
		ctx.DeleteShader(fs.Handle)
		return nil, fmt.Errorf("shader: create program: %w", gl.ErrAllocation)
	}
	ctx.AttachShader(p, vs.Handle)
	ctx.AttachShader(p, fs.Handle)
	ctx.LinkProgram(p)

	ok := ctx.ProgramLinked(p)
	var log string
	if !ok {
		log = ctx.ProgramInfoLog(p)
	}

	// The stages are not needed once the program is built.
	for _, s := range []gl.Shader{vs.Handle, fs.Handle} {
		ctx.DetachShader(p, s)
		ctx.DeleteShader(s)
	}

	if !ok {
		ctx.DeleteProgram(p)
		return nil, &LinkError{Log: log}
	}

	prog := &Program{
		Handle:     p,
		Position:   ctx.GetAttribLocation(p, PositionAttribute),
		Color:      ctx.GetAttribLocation(p, ColorAttribute),
		Projection: ctx.GetUniformLocation(p, ProjectionUniform),
		ModelView:  ctx.GetUniformLocation(p, ModelViewUniform),
	}
	logger := glscene.Logger()
	for name, a := range map[string]gl.Attrib{PositionAttribute: prog.Position, ColorAttribute: prog.Color} {
		if !a.Valid() {
			logger.Debug("attribute not active in program", "name", name, "program", p.Value)
		}
	}
	logger.Debug("program linked", "program", p.Value)
	return prog, nil
}

// Build compiles the two stages and links them.
// A vertex stage that compiled is released if the fragment stage fails.
func Build(ctx gl.Context, vertexText, fragmentText string) (*Program, error) {
	vs, err := Compile(ctx, Vertex(vertexText))
	if err != nil {
		return nil, err
	}
	fs, err := Compile(ctx, Fragment(fragmentText))
	if err != nil {
		ctx.DeleteShader(vs.Handle)
		return nil, err
	}
	return Link(ctx, vs, fs)
}

// Release deletes the program object.
func (p *Program) Release(ctx gl.Context) {
	if p == nil || !p.Handle.IsValid() {
		return
	}
	ctx.DeleteProgram(p.Handle)
	p.Handle = gl.Program{}
}
