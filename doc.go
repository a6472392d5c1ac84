// Package glscene renders small 2D/3D sample scenes through an
// immediate-mode, WebGL-shaped rasterization API.
//
// # Overview
//
// The library is the shared pipeline behind the samples: shader program
// construction, static buffer upload, per-frame composition of the
// projection and model-view transforms, and a frame-driven animation loop.
//
//	prog, err := shader.Build(ctx, vertexSrc, fragmentSrc)
//	mesh, err := geometry.NewCube(ctx)
//	comp := scene.NewComposer(ctx, prog, mesh, 800, 600,
//	    scene.WithDepthTest(), scene.WithMotion(scene.Tumble))
//	h := anim.New(scheduler, comp.RenderFrame).Start()
//	defer h.Stop()
//
// # Architecture
//
//   - Root: Mat4/Vec3/Vec4 pure matrix functions, package logger
//   - gl: the rendering capability (gl.Context) and its object handles
//   - shader, geometry, scene, anim: the pipeline stages
//   - sample: the samples and their dispatch by id
//   - recording, raster: headless context and software rasterizer
//   - webgl: the browser context (js/wasm only)
//
// # Coordinate System
//
// Matrices are 4x4, float32, column-major, right-handed, with clip-space
// depth in [-1, 1] as in OpenGL. Angles are in radians.
package glscene

// Version is the current version of the library.
const Version = "0.1.0"
