// Package scene composes and issues one frame: clear, compute the
// projection and model-view matrices, bind the mesh streams, upload the
// uniforms and draw.
//
// A Composer is configured once per session and RenderFrame is then called
// once per frame with the current State. Per-frame work has no failure
// path; missing attribute or uniform locations are passed through to the
// context, which ignores them.
package scene
