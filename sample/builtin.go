package sample

import (
	"github.com/gogpu/glscene/geometry"
	"github.com/gogpu/glscene/gl"
	"github.com/gogpu/glscene/scene"
)

func init() {
	Register(Sample{
		ID:   1,
		Name: "clear",
	})
	Register(Sample{
		ID:       2,
		Name:     "white",
		Vertex:   "plain.vert",
		Fragment: "white.frag",
		Mesh:     plainSquare,
	})
	Register(Sample{
		ID:       3,
		Name:     "colored",
		Vertex:   "color.vert",
		Fragment: "color.frag",
		Mesh:     coloredSquare,
	})
	Register(Sample{
		ID:       4,
		Name:     "spinning",
		Vertex:   "color.vert",
		Fragment: "color.frag",
		Mesh:     coloredSquare,
		Scene:    []scene.Option{scene.WithMotion(scene.Spin)},
		Animated: true,
	})
	Register(Sample{
		ID:       5,
		Name:     "cube",
		Vertex:   "color.vert",
		Fragment: "color.frag",
		Mesh:     geometry.NewCube,
		Scene:    []scene.Option{scene.WithDepthTest(), scene.WithMotion(scene.Tumble)},
		Animated: true,
	})
}

func plainSquare(ctx gl.Context) (*geometry.Mesh, error) {
	return geometry.NewSquare(ctx, false)
}

func coloredSquare(ctx gl.Context) (*geometry.Mesh, error) {
	return geometry.NewSquare(ctx, true)
}
