package gl

// BufferTarget is a buffer binding point.
type BufferTarget uint8

const (
	ArrayBuffer        BufferTarget = iota // per-vertex attribute data
	ElementArrayBuffer                     // index data
)

// String returns the WebGL name of the binding point.
func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "ARRAY_BUFFER"
	case ElementArrayBuffer:
		return "ELEMENT_ARRAY_BUFFER"
	default:
		return "UNKNOWN_TARGET"
	}
}

// Usage is a hint on how buffer contents will be accessed.
type Usage uint8

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

// String returns the WebGL name of the usage hint.
func (u Usage) String() string {
	switch u {
	case StaticDraw:
		return "STATIC_DRAW"
	case DynamicDraw:
		return "DYNAMIC_DRAW"
	case StreamDraw:
		return "STREAM_DRAW"
	default:
		return "UNKNOWN_USAGE"
	}
}

// ClearMask selects the buffers cleared by Context.Clear.
type ClearMask uint8

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// Capability is a server-side state toggled by Enable.
type Capability uint8

const (
	DepthTest Capability = iota
	CullFace
	Blend
)

// String returns the WebGL name of the capability.
func (c Capability) String() string {
	switch c {
	case DepthTest:
		return "DEPTH_TEST"
	case CullFace:
		return "CULL_FACE"
	case Blend:
		return "BLEND"
	default:
		return "UNKNOWN_CAPABILITY"
	}
}

// DataType is the component type of vertex attribute data.
type DataType uint8

const (
	Float DataType = iota
	UnsignedShort
)
