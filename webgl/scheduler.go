//go:build js && wasm

package webgl

import "syscall/js"

// Scheduler runs frame callbacks from requestAnimationFrame. One
// JavaScript function is allocated for its lifetime; callbacks requested
// during a frame run on the next one.
type Scheduler struct {
	tick    js.Func
	pending []func()
	request js.Value // id of the outstanding requestAnimationFrame, or undefined
}

// NewScheduler returns a Scheduler. Call Release when done with it.
func NewScheduler() *Scheduler {
	s := &Scheduler{request: js.Undefined()}
	s.tick = js.FuncOf(func(this js.Value, args []js.Value) any {
		s.request = js.Undefined()
		batch := s.pending
		s.pending = nil
		for _, fn := range batch {
			fn()
		}
		return nil
	})
	return s
}

// RequestFrame implements anim.Scheduler.
func (s *Scheduler) RequestFrame(fn func()) {
	s.pending = append(s.pending, fn)
	if s.request.IsUndefined() {
		s.request = js.Global().Call("requestAnimationFrame", s.tick)
	}
}

// Release frees the JavaScript callback. Pending callbacks are dropped.
func (s *Scheduler) Release() {
	if !s.request.IsUndefined() {
		js.Global().Call("cancelAnimationFrame", s.request)
		s.request = js.Undefined()
	}
	s.pending = nil
	s.tick.Release()
}
