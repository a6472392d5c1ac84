package recording

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glscene/gl"
)

// maxAttribs is the number of vertex attribute slots, the WebGL 1 minimum.
const maxAttribs = 8

// Recorder is a headless gl.Context. It tracks object and pipeline state
// the way a WebGL implementation does and records every state-changing call
// as a Command. Draw calls capture the resolved pipeline state so that a
// Recording can be played back to a Backend without a GPU.
//
// Example:
//
//	rec := recording.NewRecorder(recording.WithSize(800, 600))
//	// ... run a sample against rec ...
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	compiler      Compiler
	budget        int // remaining allocations; negative means unlimited

	commands []Command
	pool     *objectPool

	arrayBuffer   uint32
	elementBuffer uint32
	current       uint32
	attribs       [maxAttribs]attribState

	clearColor [4]float32
	clearDepth float32
	depthTest  bool
	depthFunc  gputypes.CompareFunction
}

type attribState struct {
	buffer  uint32
	size    int
	enabled bool
}

// Option configures a Recorder during creation.
type Option func(*Recorder)

// WithSize sets the size of the recorded surface.
// The default is 300x150, the default size of an HTML canvas.
func WithSize(width, height int) Option {
	return func(r *Recorder) {
		r.width = width
		r.height = height
	}
}

// WithCompiler replaces the default NagaCompiler.
func WithCompiler(c Compiler) Option {
	return func(r *Recorder) {
		r.compiler = c
	}
}

// WithAllocationBudget makes object creation fail (return an invalid
// handle) after n successful allocations.
func WithAllocationBudget(n int) Option {
	return func(r *Recorder) {
		r.budget = n
	}
}

// NewRecorder creates a Recorder with WebGL default state: clear colour
// transparent black, clear depth 1, depth test disabled, depth func LESS.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		width:      300,
		height:     150,
		compiler:   NagaCompiler{},
		budget:     -1,
		commands:   make([]Command, 0, 256),
		pool:       newObjectPool(),
		clearDepth: 1,
		depthFunc:  gputypes.CompareFunctionLess,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Width returns the width of the recorded surface.
func (r *Recorder) Width() int { return r.width }

// Height returns the height of the recorded surface.
func (r *Recorder) Height() int { return r.height }

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command { return r.commands }

// CommandsOf returns the recorded commands of the given type.
func (r *Recorder) CommandsOf(t CommandType) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type() == t {
			out = append(out, c)
		}
	}
	return out
}

// Draws returns all recorded draw commands, indexed or not.
func (r *Recorder) Draws() []DrawCommand {
	var out []DrawCommand
	for _, c := range r.commands {
		if d, ok := c.(DrawCommand); ok {
			out = append(out, d)
		}
	}
	return out
}

// Reset discards the recorded commands but keeps all object and pipeline
// state, so recording can continue frame by frame.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Live returns the number of shader, program and buffer objects that have
// been created and not deleted.
func (r *Recorder) Live() (shaders, programs, buffers int) {
	return r.pool.live()
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

func (r *Recorder) allocate() bool {
	if r.budget == 0 {
		return false
	}
	if r.budget > 0 {
		r.budget--
	}
	return true
}

// --------------------------------------------------------------------------
// Shaders and Programs
// --------------------------------------------------------------------------

// CreateShader implements gl.Context.
func (r *Recorder) CreateShader(stage gputypes.ShaderStage) gl.Shader {
	var id uint32
	if r.allocate() {
		id = r.pool.addShader(stage)
	}
	r.record(ObjectCommand{Op: CmdCreateShader, Object: id})
	return gl.Shader{Value: id}
}

// ShaderSource implements gl.Context.
func (r *Recorder) ShaderSource(s gl.Shader, src string) {
	if sh := r.pool.shader(s.Value); sh != nil {
		sh.source = src
	}
}

// CompileShader implements gl.Context.
func (r *Recorder) CompileShader(s gl.Shader) {
	r.record(ObjectCommand{Op: CmdCompileShader, Object: s.Value})
	sh := r.pool.shader(s.Value)
	if sh == nil {
		return
	}
	refl, err := r.compiler.Compile(sh.stage, sh.source)
	if err != nil {
		sh.compiled = false
		sh.log = fmt.Sprintf("ERROR: %s", err)
		return
	}
	sh.compiled = true
	sh.log = ""
	sh.refl = refl
}

// ShaderCompiled implements gl.Context.
func (r *Recorder) ShaderCompiled(s gl.Shader) bool {
	sh := r.pool.shader(s.Value)
	return sh != nil && sh.compiled
}

// ShaderInfoLog implements gl.Context.
func (r *Recorder) ShaderInfoLog(s gl.Shader) string {
	if sh := r.pool.shader(s.Value); sh != nil {
		return sh.log
	}
	return ""
}

// DeleteShader implements gl.Context. A shader still attached to a program
// stays alive until it is detached, as in WebGL.
func (r *Recorder) DeleteShader(s gl.Shader) {
	r.record(ObjectCommand{Op: CmdDeleteShader, Object: s.Value})
	r.pool.deleteShader(s.Value)
}

// CreateProgram implements gl.Context.
func (r *Recorder) CreateProgram() gl.Program {
	var id uint32
	if r.allocate() {
		id = r.pool.addProgram()
	}
	r.record(ObjectCommand{Op: CmdCreateProgram, Object: id})
	return gl.Program{Value: id}
}

// AttachShader implements gl.Context.
func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) {
	r.record(AttachCommand{Op: CmdAttachShader, Program: p, Shader: s})
	prog, sh := r.pool.program(p.Value), r.pool.shader(s.Value)
	if prog == nil || sh == nil {
		return
	}
	prog.attached = append(prog.attached, s.Value)
	sh.attachments++
}

// DetachShader implements gl.Context.
func (r *Recorder) DetachShader(p gl.Program, s gl.Shader) {
	r.record(AttachCommand{Op: CmdDetachShader, Program: p, Shader: s})
	prog := r.pool.program(p.Value)
	if prog == nil {
		return
	}
	for i, id := range prog.attached {
		if id == s.Value {
			prog.attached = append(prog.attached[:i], prog.attached[i+1:]...)
			r.pool.detachShader(id)
			return
		}
	}
}

// LinkProgram implements gl.Context. Linking requires exactly one compiled
// vertex and one compiled fragment shader. Attribute locations come from the
// vertex stage; uniforms from both stages, numbered in declaration order.
func (r *Recorder) LinkProgram(p gl.Program) {
	r.record(ObjectCommand{Op: CmdLinkProgram, Object: p.Value})
	prog := r.pool.program(p.Value)
	if prog == nil {
		return
	}
	prog.linked = false
	prog.attribs = map[string]int{}
	prog.uniforms = map[string]int{}
	prog.values = map[int][16]float32{}

	var vs, fs *shaderObject
	var problems []string
	for _, id := range prog.attached {
		sh := r.pool.shader(id)
		if sh == nil {
			continue
		}
		if !sh.compiled {
			problems = append(problems, fmt.Sprintf("%s shader is not compiled", gl.StageName(sh.stage)))
			continue
		}
		switch sh.stage {
		case gputypes.ShaderStageVertex:
			if vs != nil {
				problems = append(problems, "more than one vertex shader attached")
			}
			vs = sh
		case gputypes.ShaderStageFragment:
			if fs != nil {
				problems = append(problems, "more than one fragment shader attached")
			}
			fs = sh
		}
	}
	if vs == nil {
		problems = append(problems, "missing vertex shader")
	}
	if fs == nil {
		problems = append(problems, "missing fragment shader")
	}
	if len(problems) > 0 {
		prog.log = "ERROR: " + strings.Join(problems, "; ")
		return
	}

	for name, loc := range vs.refl.Attributes {
		prog.attribs[name] = loc
	}
	for _, sh := range []*shaderObject{vs, fs} {
		for _, name := range sh.refl.Uniforms {
			if _, dup := prog.uniforms[name]; !dup {
				prog.uniforms[name] = len(prog.uniforms)
			}
		}
	}
	prog.linked = true
	prog.log = ""
}

// ProgramLinked implements gl.Context.
func (r *Recorder) ProgramLinked(p gl.Program) bool {
	prog := r.pool.program(p.Value)
	return prog != nil && prog.linked
}

// ProgramInfoLog implements gl.Context.
func (r *Recorder) ProgramInfoLog(p gl.Program) string {
	if prog := r.pool.program(p.Value); prog != nil {
		return prog.log
	}
	return ""
}

// DeleteProgram implements gl.Context.
func (r *Recorder) DeleteProgram(p gl.Program) {
	r.record(ObjectCommand{Op: CmdDeleteProgram, Object: p.Value})
	if prog := r.pool.program(p.Value); prog != nil {
		for _, id := range prog.attached {
			r.pool.detachShader(id)
		}
	}
	r.pool.deleteProgram(p.Value)
	if r.current == p.Value {
		r.current = 0
	}
}

// UseProgram implements gl.Context.
func (r *Recorder) UseProgram(p gl.Program) {
	r.record(ObjectCommand{Op: CmdUseProgram, Object: p.Value})
	if prog := r.pool.program(p.Value); prog != nil && prog.linked {
		r.current = p.Value
	}
}

// GetAttribLocation implements gl.Context.
func (r *Recorder) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	prog := r.pool.program(p.Value)
	if prog == nil || !prog.linked {
		return gl.NoAttrib
	}
	loc, ok := prog.attribs[name]
	if !ok {
		return gl.NoAttrib
	}
	return gl.Attrib(loc)
}

// GetUniformLocation implements gl.Context.
func (r *Recorder) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	prog := r.pool.program(p.Value)
	if prog == nil || !prog.linked {
		return gl.NoUniform
	}
	loc, ok := prog.uniforms[name]
	if !ok {
		return gl.NoUniform
	}
	return gl.Uniform{Value: int32(loc)}
}

// --------------------------------------------------------------------------
// Buffers and Vertex State
// --------------------------------------------------------------------------

// CreateBuffer implements gl.Context.
func (r *Recorder) CreateBuffer() gl.Buffer {
	var id uint32
	if r.allocate() {
		id = r.pool.addBuffer()
	}
	r.record(ObjectCommand{Op: CmdCreateBuffer, Object: id})
	return gl.Buffer{Value: id}
}

// BindBuffer implements gl.Context.
func (r *Recorder) BindBuffer(target gl.BufferTarget, b gl.Buffer) {
	r.record(BindBufferCommand{Target: target, Buffer: b})
	if b.Value != 0 && r.pool.buffer(b.Value) == nil {
		return
	}
	switch target {
	case gl.ArrayBuffer:
		r.arrayBuffer = b.Value
	case gl.ElementArrayBuffer:
		r.elementBuffer = b.Value
	}
}

func (r *Recorder) bound(target gl.BufferTarget) uint32 {
	if target == gl.ElementArrayBuffer {
		return r.elementBuffer
	}
	return r.arrayBuffer
}

// BufferDataFloat32 implements gl.Context. The data is copied.
func (r *Recorder) BufferDataFloat32(target gl.BufferTarget, data []float32, usage gl.Usage) {
	id := r.bound(target)
	cp := append([]float32(nil), data...)
	r.record(BufferDataCommand{Target: target, Buffer: gl.Buffer{Value: id}, Floats: cp, Usage: usage})
	if buf := r.pool.buffer(id); buf != nil {
		buf.floats, buf.indices, buf.usage = cp, nil, usage
	}
}

// BufferDataUint16 implements gl.Context. The data is copied.
func (r *Recorder) BufferDataUint16(target gl.BufferTarget, data []uint16, usage gl.Usage) {
	id := r.bound(target)
	cp := append([]uint16(nil), data...)
	r.record(BufferDataCommand{Target: target, Buffer: gl.Buffer{Value: id}, Indices: cp, Usage: usage})
	if buf := r.pool.buffer(id); buf != nil {
		buf.floats, buf.indices, buf.usage = nil, cp, usage
	}
}

// DeleteBuffer implements gl.Context.
func (r *Recorder) DeleteBuffer(b gl.Buffer) {
	r.record(ObjectCommand{Op: CmdDeleteBuffer, Object: b.Value})
	r.pool.deleteBuffer(b.Value)
	if r.arrayBuffer == b.Value {
		r.arrayBuffer = 0
	}
	if r.elementBuffer == b.Value {
		r.elementBuffer = 0
	}
}

// VertexAttribPointer implements gl.Context. Only tightly packed float
// streams (stride 0, offset 0) are resolved for playback.
func (r *Recorder) VertexAttribPointer(a gl.Attrib, size int, typ gl.DataType, normalized bool, stride, offset int) {
	r.record(VertexAttribPointerCommand{
		Attrib:     a,
		Buffer:     gl.Buffer{Value: r.arrayBuffer},
		Size:       size,
		DataType:   typ,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	})
	if !a.Valid() || int(a) >= maxAttribs {
		return
	}
	r.attribs[a].buffer = r.arrayBuffer
	r.attribs[a].size = size
}

// EnableVertexAttribArray implements gl.Context.
func (r *Recorder) EnableVertexAttribArray(a gl.Attrib) {
	r.record(EnableAttribCommand{Attrib: a})
	if a.Valid() && int(a) < maxAttribs {
		r.attribs[a].enabled = true
	}
}

// UniformMatrix4fv implements gl.Context. Uploads to an invalid location
// or without a current program are recorded as ignored.
func (r *Recorder) UniformMatrix4fv(u gl.Uniform, transpose bool, m [16]float32) {
	cmd := UniformMatrixCommand{Uniform: u, Transpose: transpose, Matrix: m}
	prog := r.pool.program(r.current)
	if !u.Valid() || prog == nil {
		cmd.Ignored = true
		r.record(cmd)
		return
	}
	cmd.Name = prog.uniformName(int(u.Value))
	if transpose {
		m = transpose4(m)
	}
	prog.values[int(u.Value)] = m
	r.record(cmd)
}

func transpose4(m [16]float32) [16]float32 {
	var t [16]float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[r*4+c] = m[c*4+r]
		}
	}
	return t
}

// --------------------------------------------------------------------------
// Framebuffer State
// --------------------------------------------------------------------------

// ClearColor implements gl.Context.
func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.clearColor = [4]float32{red, green, blue, alpha}
	r.record(ClearColorCommand{Color: r.clearColor})
}

// ClearDepth implements gl.Context.
func (r *Recorder) ClearDepth(d float32) {
	r.clearDepth = d
	r.record(ClearDepthCommand{Depth: d})
}

// Clear implements gl.Context.
func (r *Recorder) Clear(mask gl.ClearMask) {
	r.record(ClearCommand{Mask: mask, Color: r.clearColor, Depth: r.clearDepth})
}

// Enable implements gl.Context.
func (r *Recorder) Enable(c gl.Capability) {
	r.record(EnableCommand{Capability: c})
	if c == gl.DepthTest {
		r.depthTest = true
	}
}

// DepthFunc implements gl.Context.
func (r *Recorder) DepthFunc(fn gputypes.CompareFunction) {
	r.depthFunc = fn
	r.record(DepthFuncCommand{Func: fn})
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// DrawArrays implements gl.Context.
func (r *Recorder) DrawArrays(mode gputypes.PrimitiveTopology, first, count int) {
	r.record(DrawCommand{Mode: mode, First: first, Count: count, State: r.snapshot(false)})
}

// DrawElements implements gl.Context.
func (r *Recorder) DrawElements(mode gputypes.PrimitiveTopology, count int, format gputypes.IndexFormat, offset int) {
	r.record(DrawCommand{
		Indexed: true,
		Mode:    mode,
		Count:   count,
		Format:  format,
		Offset:  offset,
		State:   r.snapshot(true),
	})
}

func (r *Recorder) snapshot(indexed bool) DrawState {
	st := DrawState{
		Program:   gl.Program{Value: r.current},
		Attribs:   map[string]Stream{},
		Uniforms:  map[string][16]float32{},
		DepthTest: r.depthTest,
		DepthFunc: r.depthFunc,
	}
	prog := r.pool.program(r.current)
	if prog == nil {
		return st
	}
	for name, loc := range prog.attribs {
		if loc >= maxAttribs || !r.attribs[loc].enabled {
			continue
		}
		if buf := r.pool.buffer(r.attribs[loc].buffer); buf != nil && buf.floats != nil {
			st.Attribs[name] = Stream{Data: buf.floats, Size: r.attribs[loc].size}
		}
	}
	for name, loc := range prog.uniforms {
		st.Uniforms[name] = prog.values[loc]
	}
	if indexed {
		if buf := r.pool.buffer(r.elementBuffer); buf != nil {
			st.Indices = buf.indices
		}
	}
	return st
}

var _ gl.Context = (*Recorder)(nil)
