// Package anim drives a per-frame render callback from a host frame
// scheduler such as requestAnimationFrame.
//
// A Driver owns the scene state. Each scheduled callback renders the
// current state, advances the rotation and registers the next frame,
// until the Handle returned by Start is stopped:
//
//	d := anim.New(sched, composer.RenderFrame)
//	h := d.Start()
//	// ...
//	h.Stop()
//
// Drivers are single-threaded: every method must be called from the
// goroutine that runs the scheduler's callbacks.
package anim
