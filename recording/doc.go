// Package recording provides a headless gl.Context that records calls.
//
// A Recorder behaves like a WebGL 1 context without a GPU: it allocates
// shader, program and buffer objects, compiles shaders through a Compiler
// (naga for WGSL by default), links programs and resolves attribute and
// uniform locations, and keeps the vertex and framebuffer state. Every
// state-changing call is captured as a typed Command, which makes the
// Recorder the observation point for tests of the pipeline.
//
// # Architecture
//
//   - Recorder: the gl.Context, capturing Commands
//   - Compiler: per-stage compile and interface reflection (NagaCompiler)
//   - ManualScheduler: a requestAnimationFrame stand-in advanced by hand
//   - Backend: replays clears and draws, e.g. to pixels (see package raster)
//
// # Example
//
//	rec := recording.NewRecorder(recording.WithSize(640, 480))
//	sched := &recording.ManualScheduler{}
//	// ... start a sample with rec and sched ...
//	sched.Run(60)
//
//	b, err := rec.Render("raster", recording.BackendConfig{Supersample: 2})
package recording
