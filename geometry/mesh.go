package geometry

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glscene/gl"
)

// Mesh is a drawable shape: its buffers plus how to draw them.
// Color and Index are nil when the shape has no per-vertex colour or is
// drawn without indices.
type Mesh struct {
	Position *Buffer
	Color    *Buffer
	Index    *Buffer

	Mode gputypes.PrimitiveTopology
	// Count is the number of vertices (or indices) submitted per draw.
	Count int
}

// Indexed reports whether the mesh is drawn with DrawElements.
func (m *Mesh) Indexed() bool { return m.Index != nil }

// Release deletes every buffer of the mesh.
func (m *Mesh) Release(ctx gl.Context) {
	if m == nil {
		return
	}
	m.Position.Release(ctx)
	m.Color.Release(ctx)
	m.Index.Release(ctx)
}

// NewSquare uploads the square, with per-corner colours when colored is
// set. It is drawn as a TRIANGLE_STRIP of 4 vertices.
func NewSquare(ctx gl.Context, colored bool) (*Mesh, error) {
	m := &Mesh{Mode: gputypes.PrimitiveTopologyTriangleStrip}
	var err error
	if m.Position, err = UploadAttributes(ctx, Position2D, SquarePositions); err != nil {
		return nil, err
	}
	if colored {
		if m.Color, err = UploadAttributes(ctx, Color, SquareColors); err != nil {
			m.Release(ctx)
			return nil, err
		}
	}
	m.Count = m.Position.Count
	return m, nil
}

// NewCube uploads the cube with one colour per face. It is drawn as
// indexed TRIANGLES; the draw count is the length of the index array.
func NewCube(ctx gl.Context) (*Mesh, error) {
	m := &Mesh{Mode: gputypes.PrimitiveTopologyTriangleList}
	var err error
	if m.Position, err = UploadAttributes(ctx, Position3D, CubePositions); err != nil {
		return nil, err
	}
	if m.Color, err = UploadAttributes(ctx, Color, CubeColors); err != nil {
		m.Release(ctx)
		return nil, err
	}
	if m.Index, err = UploadIndices(ctx, CubeIndices); err != nil {
		m.Release(ctx)
		return nil, err
	}
	m.Count = m.Index.Count
	return m, nil
}
