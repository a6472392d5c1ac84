package recording

// ManualScheduler is a frame scheduler driven by explicit Advance calls,
// standing in for requestAnimationFrame in headless runs and tests.
// Callbacks requested while a frame runs are deferred to the next frame.
//
// ManualScheduler is not safe for concurrent use.
type ManualScheduler struct {
	pending  []func()
	requests int
	frames   int
}

// RequestFrame registers fn to run on the next Advance.
func (s *ManualScheduler) RequestFrame(fn func()) {
	s.pending = append(s.pending, fn)
	s.requests++
}

// Pending returns the number of callbacks waiting for the next frame.
func (s *ManualScheduler) Pending() int { return len(s.pending) }

// Requests returns the total number of RequestFrame calls.
func (s *ManualScheduler) Requests() int { return s.requests }

// Frames returns the number of Advance calls that ran at least one callback.
func (s *ManualScheduler) Frames() int { return s.frames }

// Advance simulates one display refresh: it runs every callback pending at
// the time of the call and returns how many ran.
func (s *ManualScheduler) Advance() int {
	batch := s.pending
	s.pending = nil
	for _, fn := range batch {
		fn()
	}
	if len(batch) > 0 {
		s.frames++
	}
	return len(batch)
}

// Run advances up to n frames, stopping early when nothing is pending.
// It returns the number of frames that ran.
func (s *ManualScheduler) Run(n int) int {
	ran := 0
	for i := 0; i < n && len(s.pending) > 0; i++ {
		s.Advance()
		ran++
	}
	return ran
}
