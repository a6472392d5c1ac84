package anim

import (
	"github.com/gogpu/glscene"
	"github.com/gogpu/glscene/scene"
)

// DefaultDelta is the rotation added after each rendered frame, in radians.
const DefaultDelta = 0.01

// Scheduler registers a callback to run on the next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}

// State is the scheduling state of a Driver.
type State uint8

const (
	// Idle means no frame is registered with the scheduler.
	Idle State = iota
	// Scheduled means a frame callback is pending.
	Scheduled
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Scheduled:
		return "Scheduled"
	default:
		return "Unknown"
	}
}

// Option configures a Driver.
type Option func(*Driver)

// WithDelta sets the rotation added after each frame.
func WithDelta(delta float32) Option {
	return func(d *Driver) {
		d.delta = delta
	}
}

// Driver runs a render callback once per scheduled frame.
type Driver struct {
	sched  Scheduler
	render func(scene.State)
	delta  float32

	scene  scene.State
	state  State
	frames int
	handle *Handle

	// step is the callback handed to the scheduler. It is bound once so
	// every registration passes the same value.
	step func()
}

// Handle is the cancellation token of one Start call.
type Handle struct {
	stopped bool
}

// Stop cancels the animation. The frame already registered with the
// scheduler still fires but neither renders nor registers another.
// Stop on a nil Handle is a no-op.
func (h *Handle) Stop() {
	if h != nil {
		h.stopped = true
	}
}

// Stopped reports whether Stop has been called.
func (h *Handle) Stopped() bool {
	return h != nil && h.stopped
}

// New returns an idle Driver calling render for each frame.
func New(sched Scheduler, render func(scene.State), opts ...Option) *Driver {
	d := &Driver{
		sched:  sched,
		render: render,
		delta:  DefaultDelta,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.step = d.frame
	return d
}

// Start registers the first frame and returns the Handle that stops the
// loop. Starting a driver that already has a frame pending replaces its
// Handle without registering a second frame.
func (d *Driver) Start() *Handle {
	d.handle = &Handle{}
	if d.state == Idle {
		d.state = Scheduled
		d.sched.RequestFrame(d.step)
		glscene.Logger().Info("animation started", "rotation", d.scene.Rotation)
	}
	return d.handle
}

func (d *Driver) frame() {
	if d.handle.Stopped() {
		d.idle()
		return
	}
	d.render(d.scene)
	d.frames++
	d.scene.Rotation += d.delta

	// Stop may be called from inside render.
	if d.handle.Stopped() {
		d.idle()
		return
	}
	d.sched.RequestFrame(d.step)
}

func (d *Driver) idle() {
	d.state = Idle
	glscene.Logger().Info("animation stopped", "frames", d.frames, "rotation", d.scene.Rotation)
}

// State returns the scheduling state.
func (d *Driver) State() State { return d.state }

// Frames returns the number of frames rendered so far.
func (d *Driver) Frames() int { return d.frames }

// Scene returns the current scene state.
func (d *Driver) Scene() scene.State { return d.scene }
