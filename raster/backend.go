// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/glscene"
	"github.com/gogpu/glscene/gl"
	"github.com/gogpu/glscene/internal/parallel"
	"github.com/gogpu/glscene/recording"
	"github.com/gogpu/glscene/shader"
)

// ErrSize is returned by Begin for a surface without area.
var ErrSize = errors.New("raster: invalid surface size")

func init() {
	recording.Register("raster", func(cfg recording.BackendConfig) recording.Backend {
		return New(WithSupersample(cfg.Supersample), WithWorkers(cfg.Workers))
	})
}

// Option configures a Backend.
type Option func(*Backend)

// WithSupersample renders at n times the surface size in each direction
// and resolves to the surface size with a Catmull-Rom filter in End.
// Values below 2 disable supersampling.
func WithSupersample(n int) Option {
	return func(b *Backend) {
		if n < 1 {
			n = 1
		}
		b.samples = n
	}
}

// WithWorkers rasterizes each draw in n horizontal bands on a worker
// pool that lives from Begin to End. Values below 2 rasterize on the
// calling goroutine.
func WithWorkers(n int) Option {
	return func(b *Backend) {
		b.workers = n
	}
}

// Stats counts the work done since Begin.
type Stats struct {
	Clears    int
	Draws     int
	Triangles int // submitted for rasterization, after dropping degenerate and clipped ones
	Fragments int // fragments that passed the depth test
}

// Backend is a software recording.Backend.
//
// Backend is not safe for concurrent use.
type Backend struct {
	samples int
	workers int
	pool    *parallel.WorkerPool

	width, height int // surface size
	w, h          int // render target size, surface size times samples
	target        *image.RGBA
	depth         []float32
	out           *image.RGBA
	stats         Stats
}

// New returns a Backend.
func New(opts ...Option) *Backend {
	b := &Backend{samples: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin implements recording.Backend. The target starts transparent black
// with depth 1.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	b.width, b.height = width, height
	b.w, b.h = width*b.samples, height*b.samples
	b.target = image.NewRGBA(image.Rect(0, 0, b.w, b.h))
	b.depth = make([]float32, b.w*b.h)
	for i := range b.depth {
		b.depth[i] = 1
	}
	b.out = nil
	b.stats = Stats{}
	if b.workers > 1 && b.pool == nil {
		b.pool = parallel.NewWorkerPool(b.workers)
	}
	return nil
}

// Clear implements recording.Backend.
func (b *Backend) Clear(c recording.ClearCommand) {
	b.stats.Clears++
	if c.Mask&gl.ColorBufferBit != 0 {
		px := pixel(c.Color)
		for i := 0; i < len(b.target.Pix); i += 4 {
			copy(b.target.Pix[i:i+4], px[:])
		}
	}
	if c.Mask&gl.DepthBufferBit != 0 {
		d := clamp01(c.Depth)
		for i := range b.depth {
			b.depth[i] = d
		}
	}
}

// Draw implements recording.Backend. Only triangle topologies produce
// fragments; other draws are ignored.
func (b *Backend) Draw(d recording.DrawCommand) {
	b.stats.Draws++
	pos, ok := d.State.Attribs[shader.PositionAttribute]
	if !ok || pos.Size < 2 {
		return
	}
	col, hasColor := d.State.Attribs[shader.ColorAttribute]

	indices, ok := b.vertexIndices(d)
	if !ok {
		return
	}
	mvp := glscene.Mat4(d.State.Uniforms[shader.ProjectionUniform]).
		Mul(glscene.Mat4(d.State.Uniforms[shader.ModelViewUniform]))

	fetch := func(i int) (vertex, bool) {
		p := attribute(pos, i, [4]float32{0, 0, 0, 1})
		if p == nil {
			return vertex{}, false
		}
		c := [4]float32{1, 1, 1, 1}
		if hasColor {
			cc := attribute(col, i, [4]float32{0, 0, 0, 1})
			if cc == nil {
				return vertex{}, false
			}
			c = *cc
		}
		return b.project(mvp.Transform(glscene.V4(p[0], p[1], p[2], p[3])), c)
	}

	var tris [][3]vertex
	forEachTriangle(d.Mode, indices, func(i0, i1, i2 int) {
		v0, ok0 := fetch(i0)
		v1, ok1 := fetch(i1)
		v2, ok2 := fetch(i2)
		if !ok0 || !ok1 || !ok2 {
			return
		}
		if a := area2(&v0, &v1, &v2); a == 0 || math.IsNaN(float64(a)) {
			return
		}
		tris = append(tris, [3]vertex{v0, v1, v2})
	})
	b.stats.Triangles += len(tris)

	if b.pool == nil {
		b.stats.Fragments += b.band(tris, d.State, 0, b.h)
		return
	}
	// Bands cover disjoint rows, so triangle order is kept within each.
	var fragments atomic.Int64
	bands := parallel.Bands(b.h, b.pool.Workers())
	work := make([]func(), len(bands))
	for i, r := range bands {
		work[i] = func() {
			fragments.Add(int64(b.band(tris, d.State, r[0], r[1])))
		}
	}
	b.pool.ExecuteAll(work)
	b.stats.Fragments += int(fragments.Load())
}

// band rasterizes tris, in order, into rows [y0, y1) and returns the
// number of fragments written.
func (b *Backend) band(tris [][3]vertex, st recording.DrawState, y0, y1 int) int {
	n := 0
	for i := range tris {
		t := &tris[i]
		n += b.triangle(&t[0], &t[1], &t[2], st, y0, y1)
	}
	return n
}

// End implements recording.Backend.
func (b *Backend) End() error {
	if b.target == nil {
		return fmt.Errorf("raster: End without Begin")
	}
	if b.pool != nil {
		b.pool.Close()
		b.pool = nil
	}
	if b.samples == 1 {
		b.out = b.target
		return nil
	}
	b.out = image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	draw.CatmullRom.Scale(b.out, b.out.Bounds(), b.target, b.target.Bounds(), draw.Src, nil)
	return nil
}

// Image returns the frame produced by the last End, or nil.
func (b *Backend) Image() *image.RGBA { return b.out }

// Stats returns the counters of the current or last playback.
func (b *Backend) Stats() Stats { return b.stats }

// vertexIndices lists the vertices a draw submits, in order.
func (b *Backend) vertexIndices(d recording.DrawCommand) ([]int, bool) {
	if d.Count <= 0 {
		return nil, false
	}
	out := make([]int, d.Count)
	if !d.Indexed {
		for i := range out {
			out[i] = d.First + i
		}
		return out, true
	}
	if d.Format != gputypes.IndexFormatUint16 || d.Offset%2 != 0 {
		return nil, false
	}
	start := d.Offset / 2
	if start+d.Count > len(d.State.Indices) {
		return nil, false
	}
	for i := range out {
		out[i] = int(d.State.Indices[start+i])
	}
	return out, true
}

// attribute reads vertex i of s, filling missing components from def.
func attribute(s recording.Stream, i int, def [4]float32) *[4]float32 {
	if i < 0 || (i+1)*s.Size > len(s.Data) {
		return nil
	}
	v := def
	copy(v[:min(s.Size, 4)], s.Data[i*s.Size:])
	return &v
}

func forEachTriangle(mode gputypes.PrimitiveTopology, idx []int, fn func(i0, i1, i2 int)) {
	switch mode {
	case gputypes.PrimitiveTopologyTriangleList:
		for i := 0; i+2 < len(idx); i += 3 {
			fn(idx[i], idx[i+1], idx[i+2])
		}
	case gputypes.PrimitiveTopologyTriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			if i%2 == 0 {
				fn(idx[i], idx[i+1], idx[i+2])
			} else {
				fn(idx[i+1], idx[i], idx[i+2])
			}
		}
	}
}

// project maps a clip-space position to window coordinates.
func (b *Backend) project(clip glscene.Vec4, color [4]float32) (vertex, bool) {
	if clip.W <= Epsilon {
		return vertex{}, false
	}
	inv := 1 / clip.W
	v := vertex{
		x:    (clip.X*inv + 1) / 2 * float32(b.w),
		y:    (1 - clip.Y*inv) / 2 * float32(b.h),
		z:    (clip.Z*inv + 1) / 2,
		invW: inv,
	}
	for i, c := range color {
		v.color[i] = c * inv
	}
	return v, true
}

func (b *Backend) triangle(v0, v1, v2 *vertex, st recording.DrawState, y0, y1 int) int {
	area := area2(v0, v1, v2)

	minX := max(0, int(math.Floor(float64(min(v0.x, v1.x, v2.x)))))
	maxX := min(b.w-1, int(math.Ceil(float64(max(v0.x, v1.x, v2.x)))))
	minY := max(y0, int(math.Floor(float64(min(v0.y, v1.y, v2.y)))))
	maxY := min(y1-1, int(math.Ceil(float64(max(v0.y, v1.y, v2.y)))))
	fragments := 0

	e0 := newEdge(v1.x, v1.y, v2.x, v2.y)
	e1 := newEdge(v2.x, v2.y, v0.x, v0.y)
	e2 := newEdge(v0.x, v0.y, v1.x, v1.y)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := e0.eval(px, py) / area
			w1 := e1.eval(px, py) / area
			w2 := e2.eval(px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v0.z + w1*v1.z + w2*v2.z
			if z < 0 || z > 1 {
				continue
			}
			di := y*b.w + x
			if st.DepthTest {
				if !compare(st.DepthFunc, z, b.depth[di]) {
					continue
				}
				b.depth[di] = z
			}

			q := w0*v0.invW + w1*v1.invW + w2*v2.invW
			var c [4]float32
			for i := range c {
				c[i] = (w0*v0.color[i] + w1*v1.color[i] + w2*v2.color[i]) / q
			}
			px4 := pixel(c)
			copy(b.target.Pix[b.target.PixOffset(x, y):], px4[:])
			fragments++
		}
	}
	return fragments
}

func compare(fn gputypes.CompareFunction, z, stored float32) bool {
	switch fn {
	case gputypes.CompareFunctionNever:
		return false
	case gputypes.CompareFunctionLess:
		return z < stored
	case gputypes.CompareFunctionEqual:
		return z == stored
	case gputypes.CompareFunctionLessEqual:
		return z <= stored
	case gputypes.CompareFunctionGreater:
		return z > stored
	case gputypes.CompareFunctionNotEqual:
		return z != stored
	case gputypes.CompareFunctionGreaterEqual:
		return z >= stored
	default:
		return true
	}
}

// pixel converts a straight-alpha colour to premultiplied RGBA bytes.
func pixel(c [4]float32) [4]uint8 {
	a := clamp01(c[3])
	return [4]uint8{
		toByte(clamp01(c[0]) * a),
		toByte(clamp01(c[1]) * a),
		toByte(clamp01(c[2]) * a),
		toByte(a),
	}
}

func toByte(v float32) uint8 {
	return uint8(v*255 + 0.5)
}

func clamp01(v float32) float32 {
	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

var _ recording.Backend = (*Backend)(nil)
