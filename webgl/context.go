//go:build js && wasm

package webgl

import (
	"encoding/binary"
	"errors"
	"math"
	"syscall/js"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glscene"
	"github.com/gogpu/glscene/gl"
)

var (
	// ErrNoCanvas is returned by Canvas when no element has the id.
	ErrNoCanvas = errors.New("webgl: canvas not found")

	// ErrUnavailable is returned by NewContext when the browser cannot
	// create a WebGL context.
	ErrUnavailable = errors.New("webgl: WebGL is not available")
)

// Canvas returns the document element with the given id.
func Canvas(id string) (js.Value, error) {
	el := js.Global().Get("document").Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, ErrNoCanvas
	}
	return el, nil
}

// Context is a gl.Context backed by a WebGLRenderingContext.
//
// JavaScript objects are kept in a table and handed out as integer
// handles; handle 0 is never used.
type Context struct {
	gl     js.Value
	consts glConsts

	next     uint32
	objects  map[uint32]js.Value
	uniforms uniformTable[js.Value]

	width, height int
}

// NewContext gets a "webgl" context from canvas.
func NewContext(canvas js.Value) (*Context, error) {
	ctx := canvas.Call("getContext", "webgl")
	if ctx.IsNull() || ctx.IsUndefined() {
		ctx = canvas.Call("getContext", "experimental-webgl")
	}
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, ErrUnavailable
	}
	c := &Context{
		gl:      ctx,
		consts:  loadConsts(ctx),
		objects: make(map[uint32]js.Value),
		width:   canvas.Get("width").Int(),
		height:  canvas.Get("height").Int(),
	}
	glscene.Logger().Info("webgl context created", "width", c.width, "height", c.height)
	return c, nil
}

// Width returns the canvas width at creation.
func (c *Context) Width() int { return c.width }

// Height returns the canvas height at creation.
func (c *Context) Height() int { return c.height }

func (c *Context) store(v js.Value) uint32 {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	c.next++
	c.objects[c.next] = v
	return c.next
}

func (c *Context) object(id uint32) js.Value {
	if v, ok := c.objects[id]; ok {
		return v
	}
	return js.Null()
}

func (c *Context) drop(id uint32) js.Value {
	v := c.object(id)
	delete(c.objects, id)
	return v
}

func (c *Context) stage(s gputypes.ShaderStage) int {
	if s == gputypes.ShaderStageFragment {
		return c.consts.fragmentShader
	}
	return c.consts.vertexShader
}

func (c *Context) target(t gl.BufferTarget) int {
	if t == gl.ElementArrayBuffer {
		return c.consts.elementArrayBuffer
	}
	return c.consts.arrayBuffer
}

func (c *Context) usage(u gl.Usage) int {
	switch u {
	case gl.DynamicDraw:
		return c.consts.dynamicDraw
	case gl.StreamDraw:
		return c.consts.streamDraw
	default:
		return c.consts.staticDraw
	}
}

func (c *Context) mode(m gputypes.PrimitiveTopology) int {
	switch m {
	case gputypes.PrimitiveTopologyPointList:
		return c.consts.points
	case gputypes.PrimitiveTopologyLineList:
		return c.consts.lines
	case gputypes.PrimitiveTopologyLineStrip:
		return c.consts.lineStrip
	case gputypes.PrimitiveTopologyTriangleStrip:
		return c.consts.triangleStrip
	default:
		return c.consts.triangles
	}
}

// CreateShader implements gl.Context.
func (c *Context) CreateShader(stage gputypes.ShaderStage) gl.Shader {
	return gl.Shader{Value: c.store(c.gl.Call("createShader", c.stage(stage)))}
}

// ShaderSource implements gl.Context.
func (c *Context) ShaderSource(s gl.Shader, src string) {
	c.gl.Call("shaderSource", c.object(s.Value), src)
}

// CompileShader implements gl.Context.
func (c *Context) CompileShader(s gl.Shader) {
	c.gl.Call("compileShader", c.object(s.Value))
}

// ShaderCompiled implements gl.Context.
func (c *Context) ShaderCompiled(s gl.Shader) bool {
	return c.gl.Call("getShaderParameter", c.object(s.Value), c.consts.compileStatus).Truthy()
}

// ShaderInfoLog implements gl.Context.
func (c *Context) ShaderInfoLog(s gl.Shader) string {
	return jsString(c.gl.Call("getShaderInfoLog", c.object(s.Value)))
}

// DeleteShader implements gl.Context.
func (c *Context) DeleteShader(s gl.Shader) {
	c.gl.Call("deleteShader", c.drop(s.Value))
}

// CreateProgram implements gl.Context.
func (c *Context) CreateProgram() gl.Program {
	return gl.Program{Value: c.store(c.gl.Call("createProgram"))}
}

// AttachShader implements gl.Context.
func (c *Context) AttachShader(p gl.Program, s gl.Shader) {
	c.gl.Call("attachShader", c.object(p.Value), c.object(s.Value))
}

// DetachShader implements gl.Context. The shader may already have been
// dropped from the handle table by DeleteShader.
func (c *Context) DetachShader(p gl.Program, s gl.Shader) {
	sh := c.object(s.Value)
	if sh.IsNull() {
		return
	}
	c.gl.Call("detachShader", c.object(p.Value), sh)
}

// LinkProgram implements gl.Context.
func (c *Context) LinkProgram(p gl.Program) {
	c.gl.Call("linkProgram", c.object(p.Value))
}

// ProgramLinked implements gl.Context.
func (c *Context) ProgramLinked(p gl.Program) bool {
	return c.gl.Call("getProgramParameter", c.object(p.Value), c.consts.linkStatus).Truthy()
}

// ProgramInfoLog implements gl.Context.
func (c *Context) ProgramInfoLog(p gl.Program) string {
	return jsString(c.gl.Call("getProgramInfoLog", c.object(p.Value)))
}

// DeleteProgram implements gl.Context.
func (c *Context) DeleteProgram(p gl.Program) {
	c.uniforms.dropProgram(p.Value)
	c.gl.Call("deleteProgram", c.drop(p.Value))
}

// UseProgram implements gl.Context.
func (c *Context) UseProgram(p gl.Program) {
	c.gl.Call("useProgram", c.object(p.Value))
}

// GetAttribLocation implements gl.Context.
func (c *Context) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	return gl.Attrib(c.gl.Call("getAttribLocation", c.object(p.Value), name).Int())
}

// GetUniformLocation implements gl.Context. Locations are
// WebGLUniformLocation objects, kept in a per-context table.
func (c *Context) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	loc := c.gl.Call("getUniformLocation", c.object(p.Value), name)
	if loc.IsNull() || loc.IsUndefined() {
		return gl.NoUniform
	}
	return gl.Uniform{Value: c.uniforms.add(p.Value, loc)}
}

// CreateBuffer implements gl.Context.
func (c *Context) CreateBuffer() gl.Buffer {
	return gl.Buffer{Value: c.store(c.gl.Call("createBuffer"))}
}

// BindBuffer implements gl.Context.
func (c *Context) BindBuffer(target gl.BufferTarget, b gl.Buffer) {
	c.gl.Call("bindBuffer", c.target(target), c.object(b.Value))
}

// BufferDataFloat32 implements gl.Context.
func (c *Context) BufferDataFloat32(target gl.BufferTarget, data []float32, usage gl.Usage) {
	c.gl.Call("bufferData", c.target(target), float32Array(data), c.usage(usage))
}

// BufferDataUint16 implements gl.Context.
func (c *Context) BufferDataUint16(target gl.BufferTarget, data []uint16, usage gl.Usage) {
	c.gl.Call("bufferData", c.target(target), uint16Array(data), c.usage(usage))
}

// DeleteBuffer implements gl.Context.
func (c *Context) DeleteBuffer(b gl.Buffer) {
	c.gl.Call("deleteBuffer", c.drop(b.Value))
}

// VertexAttribPointer implements gl.Context.
func (c *Context) VertexAttribPointer(a gl.Attrib, size int, typ gl.DataType, normalized bool, stride, offset int) {
	t := c.consts.floatType
	if typ == gl.UnsignedShort {
		t = c.consts.unsignedShort
	}
	c.gl.Call("vertexAttribPointer", int(a), size, t, normalized, stride, offset)
}

// EnableVertexAttribArray implements gl.Context.
func (c *Context) EnableVertexAttribArray(a gl.Attrib) {
	c.gl.Call("enableVertexAttribArray", int(a))
}

// UniformMatrix4fv implements gl.Context. WebGL 1 requires transpose to
// be false.
func (c *Context) UniformMatrix4fv(u gl.Uniform, transpose bool, m [16]float32) {
	loc, ok := c.uniforms.get(u.Value)
	if !ok {
		loc = js.Null()
	}
	c.gl.Call("uniformMatrix4fv", loc, transpose, float32Array(m[:]))
}

// ClearColor implements gl.Context.
func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

// ClearDepth implements gl.Context.
func (c *Context) ClearDepth(d float32) {
	c.gl.Call("clearDepth", d)
}

// Clear implements gl.Context.
func (c *Context) Clear(mask gl.ClearMask) {
	bits := 0
	if mask&gl.ColorBufferBit != 0 {
		bits |= c.consts.colorBufferBit
	}
	if mask&gl.DepthBufferBit != 0 {
		bits |= c.consts.depthBufferBit
	}
	c.gl.Call("clear", bits)
}

// Enable implements gl.Context.
func (c *Context) Enable(capability gl.Capability) {
	switch capability {
	case gl.DepthTest:
		c.gl.Call("enable", c.consts.depthTest)
	case gl.CullFace:
		c.gl.Call("enable", c.consts.cullFace)
	case gl.Blend:
		c.gl.Call("enable", c.consts.blend)
	}
}

// DepthFunc implements gl.Context.
func (c *Context) DepthFunc(fn gputypes.CompareFunction) {
	var v int
	switch fn {
	case gputypes.CompareFunctionNever:
		v = c.consts.never
	case gputypes.CompareFunctionLess:
		v = c.consts.less
	case gputypes.CompareFunctionEqual:
		v = c.consts.equal
	case gputypes.CompareFunctionLessEqual:
		v = c.consts.lequal
	case gputypes.CompareFunctionGreater:
		v = c.consts.greater
	case gputypes.CompareFunctionNotEqual:
		v = c.consts.notequal
	case gputypes.CompareFunctionGreaterEqual:
		v = c.consts.gequal
	default:
		v = c.consts.always
	}
	c.gl.Call("depthFunc", v)
}

// DrawArrays implements gl.Context.
func (c *Context) DrawArrays(mode gputypes.PrimitiveTopology, first, count int) {
	c.gl.Call("drawArrays", c.mode(mode), first, count)
}

// DrawElements implements gl.Context. Only 16-bit indices exist in WebGL 1
// without extensions.
func (c *Context) DrawElements(mode gputypes.PrimitiveTopology, count int, _ gputypes.IndexFormat, offset int) {
	c.gl.Call("drawElements", c.mode(mode), count, c.consts.unsignedShort, offset)
}

func jsString(v js.Value) string {
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

func float32Array(data []float32) js.Value {
	b := make([]byte, 4*len(data))
	for i, f := range data {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}
	u8 := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(u8, b)
	return js.Global().Get("Float32Array").New(u8.Get("buffer"), 0, len(data))
}

func uint16Array(data []uint16) js.Value {
	b := make([]byte, 2*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint16(b[2*i:], v)
	}
	u8 := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(u8, b)
	return js.Global().Get("Uint16Array").New(u8.Get("buffer"), 0, len(data))
}

var _ gl.Context = (*Context)(nil)
