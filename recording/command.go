package recording

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glscene/gl"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one state-changing Context call.
// Queries (locations, compile status, info logs) are not recorded.
type CommandType uint8

const (
	// Object commands
	CmdCreateShader  CommandType = iota // Allocate a shader object
	CmdCompileShader                    // Compile a shader's source
	CmdDeleteShader                     // Release a shader object
	CmdCreateProgram                    // Allocate a program object
	CmdAttachShader                     // Attach a shader to a program
	CmdDetachShader                     // Detach a shader from a program
	CmdLinkProgram                      // Link a program
	CmdDeleteProgram                    // Release a program object
	CmdUseProgram                       // Make a program current
	CmdCreateBuffer                     // Allocate a buffer object
	CmdBindBuffer                       // Bind a buffer to a target
	CmdBufferData                       // Upload buffer contents
	CmdDeleteBuffer                     // Release a buffer object

	// Vertex and uniform state
	CmdVertexAttribPointer     // Describe an attribute stream
	CmdEnableVertexAttribArray // Enable an attribute stream
	CmdUniformMatrix4fv        // Upload a 4x4 matrix

	// Framebuffer state
	CmdClearColor // Set the clear colour
	CmdClearDepth // Set the clear depth
	CmdClear      // Clear buffers
	CmdEnable     // Enable a capability
	CmdDepthFunc  // Set the depth comparison

	// Drawing
	CmdDrawArrays   // Non-indexed draw
	CmdDrawElements // Indexed draw
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdCreateShader:            "CreateShader",
	CmdCompileShader:           "CompileShader",
	CmdDeleteShader:            "DeleteShader",
	CmdCreateProgram:           "CreateProgram",
	CmdAttachShader:            "AttachShader",
	CmdDetachShader:            "DetachShader",
	CmdLinkProgram:             "LinkProgram",
	CmdDeleteProgram:           "DeleteProgram",
	CmdUseProgram:              "UseProgram",
	CmdCreateBuffer:            "CreateBuffer",
	CmdBindBuffer:              "BindBuffer",
	CmdBufferData:              "BufferData",
	CmdDeleteBuffer:            "DeleteBuffer",
	CmdVertexAttribPointer:     "VertexAttribPointer",
	CmdEnableVertexAttribArray: "EnableVertexAttribArray",
	CmdUniformMatrix4fv:        "UniformMatrix4fv",
	CmdClearColor:              "ClearColor",
	CmdClearDepth:              "ClearDepth",
	CmdClear:                   "Clear",
	CmdEnable:                  "Enable",
	CmdDepthFunc:               "DepthFunc",
	CmdDrawArrays:              "DrawArrays",
	CmdDrawElements:            "DrawElements",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Object Commands
// --------------------------------------------------------------------------

// ObjectCommand records a call that acts on a single shader, program or
// buffer object: creation, compilation, linking, use and deletion.
// Object is zero when a creation failed.
type ObjectCommand struct {
	Op     CommandType
	Object uint32
}

// Type implements Command.
func (c ObjectCommand) Type() CommandType { return c.Op }

// AttachCommand records AttachShader and DetachShader.
type AttachCommand struct {
	Op      CommandType
	Program gl.Program
	Shader  gl.Shader
}

// Type implements Command.
func (c AttachCommand) Type() CommandType { return c.Op }

// BindBufferCommand binds a buffer to a target.
type BindBufferCommand struct {
	Target gl.BufferTarget
	Buffer gl.Buffer
}

// Type implements Command.
func (BindBufferCommand) Type() CommandType { return CmdBindBuffer }

// BufferDataCommand uploads data to the buffer bound at Target.
// Exactly one of Floats and Indices is set.
type BufferDataCommand struct {
	Target  gl.BufferTarget
	Buffer  gl.Buffer
	Floats  []float32
	Indices []uint16
	Usage   gl.Usage
}

// Type implements Command.
func (BufferDataCommand) Type() CommandType { return CmdBufferData }

// Len returns the number of uploaded elements.
func (c BufferDataCommand) Len() int {
	if c.Floats != nil {
		return len(c.Floats)
	}
	return len(c.Indices)
}

// --------------------------------------------------------------------------
// Vertex and Uniform State
// --------------------------------------------------------------------------

// VertexAttribPointerCommand binds the current ARRAY_BUFFER to an attribute.
type VertexAttribPointerCommand struct {
	Attrib     gl.Attrib
	Buffer     gl.Buffer
	Size       int
	DataType   gl.DataType
	Normalized bool
	Stride     int
	Offset     int
}

// Type implements Command.
func (VertexAttribPointerCommand) Type() CommandType { return CmdVertexAttribPointer }

// EnableAttribCommand enables an attribute stream.
type EnableAttribCommand struct {
	Attrib gl.Attrib
}

// Type implements Command.
func (EnableAttribCommand) Type() CommandType { return CmdEnableVertexAttribArray }

// UniformMatrixCommand uploads a matrix to the current program.
// Name is empty and Ignored is set when the location was invalid or no
// program was current.
type UniformMatrixCommand struct {
	Uniform   gl.Uniform
	Name      string
	Transpose bool
	Matrix    [16]float32
	Ignored   bool
}

// Type implements Command.
func (UniformMatrixCommand) Type() CommandType { return CmdUniformMatrix4fv }

// --------------------------------------------------------------------------
// Framebuffer State
// --------------------------------------------------------------------------

// ClearColorCommand sets the colour used by Clear.
type ClearColorCommand struct {
	Color [4]float32
}

// Type implements Command.
func (ClearColorCommand) Type() CommandType { return CmdClearColor }

// ClearDepthCommand sets the depth used by Clear.
type ClearDepthCommand struct {
	Depth float32
}

// Type implements Command.
func (ClearDepthCommand) Type() CommandType { return CmdClearDepth }

// ClearCommand clears the selected buffers. Color and Depth hold the clear
// values in effect when the call was made.
type ClearCommand struct {
	Mask  gl.ClearMask
	Color [4]float32
	Depth float32
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// EnableCommand enables a capability.
type EnableCommand struct {
	Capability gl.Capability
}

// Type implements Command.
func (EnableCommand) Type() CommandType { return CmdEnable }

// DepthFuncCommand sets the depth comparison.
type DepthFuncCommand struct {
	Func gputypes.CompareFunction
}

// Type implements Command.
func (DepthFuncCommand) Type() CommandType { return CmdDepthFunc }

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// Stream is a resolved vertex attribute stream.
type Stream struct {
	Data []float32
	Size int
}

// DrawState is the pipeline state captured at a draw call. Buffers are
// immutable once uploaded, so the slices alias the uploaded data.
type DrawState struct {
	Program   gl.Program
	Attribs   map[string]Stream
	Uniforms  map[string][16]float32
	Indices   []uint16
	DepthTest bool
	DepthFunc gputypes.CompareFunction
}

// DrawCommand records DrawArrays (Indexed false) or DrawElements.
type DrawCommand struct {
	Indexed bool
	Mode    gputypes.PrimitiveTopology
	First   int
	Count   int
	Format  gputypes.IndexFormat
	Offset  int
	State   DrawState
}

// Type implements Command.
func (c DrawCommand) Type() CommandType {
	if c.Indexed {
		return CmdDrawElements
	}
	return CmdDrawArrays
}
