package sample

import (
	"github.com/gogpu/glscene"
	"github.com/gogpu/glscene/anim"
	"github.com/gogpu/glscene/geometry"
	"github.com/gogpu/glscene/gl"
	"github.com/gogpu/glscene/scene"
	"github.com/gogpu/glscene/shader"
)

// Session holds the objects created by one sample run.
//
// Session is not safe for concurrent use.
type Session struct {
	ctx    gl.Context
	sample Sample

	program  *shader.Program
	mesh     *geometry.Mesh
	composer *scene.Composer

	driver *anim.Driver
	handle *anim.Handle
	frames int

	released bool
}

// Sample returns the sample the session runs.
func (s *Session) Sample() Sample { return s.sample }

// Composer returns the session's frame composer.
func (s *Session) Composer() *scene.Composer { return s.composer }

// Driver returns the animation driver, or nil for a static sample.
func (s *Session) Driver() *anim.Driver { return s.driver }

// Frames returns the number of frames rendered.
func (s *Session) Frames() int {
	if s.driver != nil {
		return s.driver.Frames()
	}
	return s.frames
}

// Stop cancels the animation, if any. The frame already pending with the
// scheduler does not render.
func (s *Session) Stop() {
	s.handle.Stop()
}

// Release stops the session and deletes its program and buffers.
// Further calls are no-ops.
func (s *Session) Release() {
	if s.released {
		return
	}
	s.released = true
	s.Stop()
	s.mesh.Release(s.ctx)
	s.program.Release(s.ctx)
	glscene.Logger().Info("sample released", "id", s.sample.ID, "frames", s.Frames())
}
