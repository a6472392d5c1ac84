package scene

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glscene/geometry"
	"github.com/gogpu/glscene/gl"
	"github.com/gogpu/glscene/shader"
)

// Option configures a Composer.
type Option func(*Composer)

// WithDepthTest enables depth testing (LEQUAL) and depth clearing.
func WithDepthTest() Option {
	return func(c *Composer) {
		c.depthTest = true
	}
}

// WithMotion sets the rotation applied to the model each frame.
func WithMotion(m Motion) Option {
	return func(c *Composer) {
		c.motion = m
	}
}

// Composer renders frames of one mesh with one program.
// A Composer without a program or mesh only clears.
//
// Composer is not safe for concurrent use.
type Composer struct {
	ctx     gl.Context
	program *shader.Program
	mesh    *geometry.Mesh

	width, height float32
	depthTest     bool
	motion        Motion
}

// NewComposer returns a Composer drawing mesh with prog on a viewport of
// the given size.
func NewComposer(ctx gl.Context, prog *shader.Program, mesh *geometry.Mesh, width, height float32, opts ...Option) *Composer {
	c := &Composer{
		ctx:     ctx,
		program: prog,
		mesh:    mesh,
		width:   width,
		height:  height,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Describe returns the matrices RenderFrame uploads for state.
func (c *Composer) Describe(state State) FrameDescriptor {
	return Describe(c.width, c.height, state.Rotation, c.motion)
}

// RenderFrame clears the target and draws the mesh for state.
func (c *Composer) RenderFrame(state State) {
	ctx := c.ctx
	ctx.ClearColor(0, 0, 0, 1)
	if c.depthTest {
		ctx.ClearDepth(1)
		ctx.Enable(gl.DepthTest)
		ctx.DepthFunc(gputypes.CompareFunctionLessEqual)
		ctx.Clear(gl.ColorBufferBit | gl.DepthBufferBit)
	} else {
		ctx.Clear(gl.ColorBufferBit)
	}

	if c.program == nil || c.mesh == nil {
		return
	}
	frame := c.Describe(state)
	prog, mesh := c.program, c.mesh

	bindStream(ctx, mesh.Position, prog.Position)
	bindStream(ctx, mesh.Color, prog.Color)
	if mesh.Indexed() {
		ctx.BindBuffer(gl.ElementArrayBuffer, mesh.Index.Handle)
	}

	ctx.UseProgram(prog.Handle)
	ctx.UniformMatrix4fv(prog.Projection, false, frame.Projection)
	ctx.UniformMatrix4fv(prog.ModelView, false, frame.ModelView)

	if mesh.Indexed() {
		ctx.DrawElements(mesh.Mode, mesh.Count, gputypes.IndexFormatUint16, 0)
	} else {
		ctx.DrawArrays(mesh.Mode, 0, mesh.Count)
	}
}

// bindStream points attribute a at buffer b. A missing buffer or an
// attribute the program lacks leaves the stream unbound.
func bindStream(ctx gl.Context, b *geometry.Buffer, a gl.Attrib) {
	if b == nil || !a.Valid() {
		return
	}
	ctx.BindBuffer(gl.ArrayBuffer, b.Handle)
	ctx.VertexAttribPointer(a, b.Kind.Components(), gl.Float, false, 0, 0)
	ctx.EnableVertexAttribArray(a)
}
