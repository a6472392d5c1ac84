package sample

import (
	"errors"
	"fmt"

	"github.com/gogpu/glscene"
	"github.com/gogpu/glscene/anim"
	"github.com/gogpu/glscene/geometry"
	"github.com/gogpu/glscene/gl"
	"github.com/gogpu/glscene/scene"
	"github.com/gogpu/glscene/shader"
	"github.com/gogpu/glscene/shaders"
)

// ErrNoScheduler is returned when an animated sample runs without a
// frame scheduler.
var ErrNoScheduler = errors.New("sample: animated sample needs a scheduler")

// Env is the host environment a sample runs in. It is read once, at setup.
type Env struct {
	// Width and Height are the viewport size in pixels.
	Width, Height float32
	// Source loads shader text by name. Defaults to shaders.GLSL.
	Source shaders.Loader
	// Scheduler runs animation frames. Required by animated samples.
	Scheduler anim.Scheduler
	// Delta overrides the per-frame rotation when non-zero.
	Delta float32
}

// Sample describes one runnable sample.
type Sample struct {
	ID   int
	Name string

	// Vertex and Fragment name the shaders; both empty means the sample
	// only clears.
	Vertex, Fragment string
	// Mesh uploads the geometry; nil for clear-only samples.
	Mesh func(gl.Context) (*geometry.Mesh, error)
	// Scene configures the frame composer.
	Scene []scene.Option
	// Animated samples render once per scheduled frame instead of once.
	Animated bool
}

// Run runs the sample registered under id.
func Run(ctx gl.Context, id int, env Env) (*Session, error) {
	s, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, env)
}

// Run compiles the sample's program, uploads its mesh and renders: once
// for a static sample, or by starting an animation driver.
// On error every object created so far is released.
func (s Sample) Run(ctx gl.Context, env Env) (*Session, error) {
	if s.Animated && env.Scheduler == nil {
		return nil, fmt.Errorf("sample %d: %w", s.ID, ErrNoScheduler)
	}
	source := env.Source
	if source == nil {
		source = shaders.GLSL
	}

	sess := &Session{ctx: ctx, sample: s}
	if s.Vertex != "" || s.Fragment != "" {
		prog, err := buildProgram(ctx, source, s.Vertex, s.Fragment)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", s.ID, err)
		}
		sess.program = prog
	}
	if s.Mesh != nil {
		mesh, err := s.Mesh(ctx)
		if err != nil {
			sess.Release()
			return nil, fmt.Errorf("sample %d: %w", s.ID, err)
		}
		sess.mesh = mesh
	}
	sess.composer = scene.NewComposer(ctx, sess.program, sess.mesh, env.Width, env.Height, s.Scene...)

	glscene.Logger().Info("sample started", "id", s.ID, "name", s.Name, "animated", s.Animated)
	if !s.Animated {
		sess.composer.RenderFrame(scene.State{})
		sess.frames = 1
		return sess, nil
	}

	var opts []anim.Option
	if env.Delta != 0 {
		opts = append(opts, anim.WithDelta(env.Delta))
	}
	sess.driver = anim.New(env.Scheduler, sess.composer.RenderFrame, opts...)
	sess.handle = sess.driver.Start()
	return sess, nil
}

func buildProgram(ctx gl.Context, source shaders.Loader, vert, frag string) (*shader.Program, error) {
	vs, err := source(vert)
	if err != nil {
		return nil, err
	}
	fs, err := source(frag)
	if err != nil {
		return nil, err
	}
	return shader.Build(ctx, vs, fs)
}
