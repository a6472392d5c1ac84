package gl

// Shader is a handle to a shader object. The zero value is invalid.
type Shader struct {
	Value uint32
}

// IsValid reports whether the handle refers to an allocated object.
func (s Shader) IsValid() bool { return s.Value != 0 }

// Program is a handle to a program object. The zero value is invalid.
type Program struct {
	Value uint32
}

// IsValid reports whether the handle refers to an allocated object.
func (p Program) IsValid() bool { return p.Value != 0 }

// Buffer is a handle to a buffer object. The zero value is invalid.
type Buffer struct {
	Value uint32
}

// IsValid reports whether the handle refers to an allocated object.
func (b Buffer) IsValid() bool { return b.Value != 0 }

// Attrib is a vertex attribute location. A program that does not use an
// attribute reports NoAttrib for it.
type Attrib int32

// NoAttrib is the location reported for an attribute the program lacks.
const NoAttrib Attrib = -1

// Valid reports whether the location refers to an active attribute.
func (a Attrib) Valid() bool { return a >= 0 }

// Uniform is a uniform location. A program that does not use a uniform
// reports NoUniform for it; uploading to NoUniform is silently ignored.
type Uniform struct {
	Value int32
}

// NoUniform is the location reported for a uniform the program lacks.
var NoUniform = Uniform{Value: -1}

// Valid reports whether the location refers to an active uniform.
func (u Uniform) Valid() bool { return u.Value >= 0 }
