package geometry

// SquarePositions are the corners of a 2x2 square centred on the origin,
// ordered for a TRIANGLE_STRIP.
var SquarePositions = []float32{
	1, 1,
	-1, 1,
	1, -1,
	-1, -1,
}

// SquareColors gives the square's corners white, red, green and blue.
var SquareColors = []float32{
	1, 1, 1, 1,
	1, 0, 0, 1,
	0, 1, 0, 1,
	0, 0, 1, 1,
}

// CubePositions are the 36 vertices of a 2x2x2 cube, two triangles per
// face, in face order front, back, top, bottom, right, left.
var CubePositions = []float32{
	// front
	-1, -1, 1, 1, -1, 1, 1, 1, 1,
	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	// back
	-1, -1, -1, -1, 1, -1, 1, 1, -1,
	-1, -1, -1, 1, -1, -1, 1, 1, -1,
	// top
	-1, 1, -1, -1, 1, 1, 1, 1, 1,
	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	// bottom
	-1, -1, -1, 1, -1, -1, 1, -1, 1,
	-1, -1, -1, -1, -1, 1, 1, -1, 1,
	// right
	1, -1, -1, 1, 1, -1, 1, 1, 1,
	1, -1, -1, 1, -1, 1, 1, 1, 1,
	// left
	-1, -1, -1, -1, -1, 1, -1, 1, 1,
	-1, -1, -1, -1, 1, -1, -1, 1, 1,
}

// CubeFaceColors holds one RGBA colour per cube face, in CubePositions
// face order.
var CubeFaceColors = [6][4]float32{
	{1, 1, 1, 1}, // white
	{1, 0, 0, 1}, // red
	{0, 1, 0, 1}, // green
	{0, 0, 1, 1}, // blue
	{1, 1, 0, 1}, // yellow
	{1, 0, 1, 1}, // purple
}

// cubeVertsPerFace is two triangles of three vertices.
const cubeVertsPerFace = 6

// CubeColors repeats each face colour for the face's six vertices.
var CubeColors = func() []float32 {
	out := make([]float32, 0, len(CubeFaceColors)*cubeVertsPerFace*4)
	for _, c := range CubeFaceColors {
		for range cubeVertsPerFace {
			out = append(out, c[:]...)
		}
	}
	return out
}()

// CubeIndices addresses the unrolled cube vertices in order, one index per
// vertex.
var CubeIndices = func() []uint16 {
	out := make([]uint16, len(CubePositions)/3)
	for i := range out {
		out[i] = uint16(i)
	}
	return out
}()
