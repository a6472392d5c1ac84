package gl

import (
	"errors"

	"github.com/gogpu/gputypes"
)

// ErrAllocation reports that the context failed to create a shader, program
// or buffer object. No diagnostic text is available for it.
var ErrAllocation = errors.New("gl: resource allocation failed")

// Context is the rendering capability handed to the pipeline by the host.
//
// Creation methods return an invalid (zero) handle when the context cannot
// allocate the object. State and draw methods follow WebGL semantics: they
// do not report errors, and operations on invalid locations are ignored.
//
// A Context is not safe for concurrent use; it is driven from the host's
// frame callback only.
type Context interface {
	CreateShader(stage gputypes.ShaderStage) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	// ShaderCompiled reports the COMPILE_STATUS of s.
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	// ProgramLinked reports the LINK_STATUS of p.
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	GetAttribLocation(p Program, name string) Attrib
	GetUniformLocation(p Program, name string) Uniform

	CreateBuffer() Buffer
	BindBuffer(target BufferTarget, b Buffer)
	BufferDataFloat32(target BufferTarget, data []float32, usage Usage)
	BufferDataUint16(target BufferTarget, data []uint16, usage Usage)
	DeleteBuffer(b Buffer)

	VertexAttribPointer(a Attrib, size int, typ DataType, normalized bool, stride, offset int)
	EnableVertexAttribArray(a Attrib)
	// UniformMatrix4fv uploads a column-major 4x4 matrix.
	UniformMatrix4fv(u Uniform, transpose bool, m [16]float32)

	ClearColor(r, g, b, a float32)
	ClearDepth(d float32)
	Clear(mask ClearMask)
	Enable(c Capability)
	DepthFunc(fn gputypes.CompareFunction)

	DrawArrays(mode gputypes.PrimitiveTopology, first, count int)
	DrawElements(mode gputypes.PrimitiveTopology, count int, format gputypes.IndexFormat, offset int)
}

// StageName returns the lower-case name of a shader stage, for messages.
func StageName(stage gputypes.ShaderStage) string {
	switch stage {
	case gputypes.ShaderStageVertex:
		return "vertex"
	case gputypes.ShaderStageFragment:
		return "fragment"
	case gputypes.ShaderStageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// TopologyName returns the WebGL name of a primitive topology.
func TopologyName(mode gputypes.PrimitiveTopology) string {
	switch mode {
	case gputypes.PrimitiveTopologyTriangleList:
		return "TRIANGLES"
	case gputypes.PrimitiveTopologyTriangleStrip:
		return "TRIANGLE_STRIP"
	case gputypes.PrimitiveTopologyLineList:
		return "LINES"
	case gputypes.PrimitiveTopologyLineStrip:
		return "LINE_STRIP"
	case gputypes.PrimitiveTopologyPointList:
		return "POINTS"
	default:
		return "UNKNOWN_MODE"
	}
}
