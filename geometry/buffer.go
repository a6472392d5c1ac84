package geometry

import (
	"errors"
	"fmt"

	"github.com/gogpu/glscene"
	"github.com/gogpu/glscene/gl"
)

var (
	// ErrComponentCount is returned when attribute data is empty or its
	// length is not a multiple of the kind's component count.
	ErrComponentCount = errors.New("geometry: data length is not a multiple of the component count")

	// ErrKind is returned when a kind is used with the wrong upload call.
	ErrKind = errors.New("geometry: wrong buffer kind")

	// ErrEmpty is returned for an empty index array.
	ErrEmpty = errors.New("geometry: no indices")
)

// Kind describes the layout of a buffer's elements.
type Kind uint8

const (
	Position2D Kind = iota // x, y
	Position3D             // x, y, z
	Color                  // r, g, b, a
	Index                  // one uint16 per element
)

// Components returns the number of values per element.
func (k Kind) Components() int {
	switch k {
	case Position2D:
		return 2
	case Position3D:
		return 3
	case Color:
		return 4
	case Index:
		return 1
	default:
		return 0
	}
}

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Position2D:
		return "Position2D"
	case Position3D:
		return "Position3D"
	case Color:
		return "Color"
	case Index:
		return "Index"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Buffer is an uploaded, immutable buffer.
type Buffer struct {
	Handle gl.Buffer
	Kind   Kind
	// Count is the number of elements: vertices for attribute data,
	// indices for index data.
	Count int
}

// Target returns the binding point the buffer is uploaded to.
func (b *Buffer) Target() gl.BufferTarget {
	if b.Kind == Index {
		return gl.ElementArrayBuffer
	}
	return gl.ArrayBuffer
}

// Release deletes the buffer object. It is safe to call on nil or
// already released buffers.
func (b *Buffer) Release(ctx gl.Context) {
	if b == nil || !b.Handle.IsValid() {
		return
	}
	ctx.DeleteBuffer(b.Handle)
	b.Handle = gl.Buffer{}
}

// UploadAttributes creates an ARRAY_BUFFER holding data as kind elements.
//
// The length of data is validated before the context is touched: it must
// be a positive multiple of kind.Components(), otherwise the returned error
// wraps ErrComponentCount.
func UploadAttributes(ctx gl.Context, kind Kind, data []float32) (*Buffer, error) {
	if kind == Index || kind.Components() == 0 {
		return nil, fmt.Errorf("%w: %s is not an attribute kind", ErrKind, kind)
	}
	n := kind.Components()
	if len(data) == 0 || len(data)%n != 0 {
		return nil, fmt.Errorf("%w: %s needs %d per vertex, got %d values", ErrComponentCount, kind, n, len(data))
	}

	b := ctx.CreateBuffer()
	if !b.IsValid() {
		return nil, fmt.Errorf("geometry: create %s buffer: %w", kind, gl.ErrAllocation)
	}
	ctx.BindBuffer(gl.ArrayBuffer, b)
	ctx.BufferDataFloat32(gl.ArrayBuffer, data, gl.StaticDraw)

	glscene.Logger().Debug("buffer uploaded", "kind", kind.String(), "buffer", b.Value, "values", len(data))
	return &Buffer{Handle: b, Kind: kind, Count: len(data) / n}, nil
}

// UploadIndices creates an ELEMENT_ARRAY_BUFFER holding data.
func UploadIndices(ctx gl.Context, data []uint16) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	b := ctx.CreateBuffer()
	if !b.IsValid() {
		return nil, fmt.Errorf("geometry: create index buffer: %w", gl.ErrAllocation)
	}
	ctx.BindBuffer(gl.ElementArrayBuffer, b)
	ctx.BufferDataUint16(gl.ElementArrayBuffer, data, gl.StaticDraw)

	glscene.Logger().Debug("buffer uploaded", "kind", Index.String(), "buffer", b.Value, "values", len(data))
	return &Buffer{Handle: b, Kind: Index, Count: len(data)}, nil
}
