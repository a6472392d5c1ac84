// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Epsilon is the smallest clip-space w accepted for a vertex. Triangles
// with a vertex at or behind the eye plane are dropped.
const Epsilon = 1e-6

// vertex is a vertex after the perspective divide and viewport mapping.
type vertex struct {
	x, y, z float32 // window coordinates, z in [0, 1]
	invW    float32
	color   [4]float32 // premultiplied by invW
}

// edge is the implicit line a*x + b*y + c through two window points.
// It is positive on the left of the directed edge.
type edge struct {
	a, b, c float32
}

func newEdge(x0, y0, x1, y1 float32) edge {
	return edge{
		a: y0 - y1,
		b: x1 - x0,
		c: x0*y1 - x1*y0,
	}
}

func (e edge) eval(x, y float32) float32 {
	return e.a*x + e.b*y + e.c
}

// area2 returns twice the signed area of the triangle.
func area2(v0, v1, v2 *vertex) float32 {
	return (v1.x-v0.x)*(v2.y-v0.y) - (v2.x-v0.x)*(v1.y-v0.y)
}
