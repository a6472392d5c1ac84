package recording

import "testing"

func TestManualSchedulerDefersNestedRequests(t *testing.T) {
	var s ManualScheduler
	calls := 0
	var step func()
	step = func() {
		calls++
		s.RequestFrame(step)
	}
	s.RequestFrame(step)

	if n := s.Advance(); n != 1 {
		t.Fatalf("Advance ran %d callbacks, want 1", n)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (nested request must wait for the next frame)", calls)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", s.Pending())
	}
	if ran := s.Run(3); ran != 3 {
		t.Errorf("Run(3) = %d, want 3", ran)
	}
	if calls != 4 || s.Requests() != 5 || s.Frames() != 4 {
		t.Errorf("calls=%d requests=%d frames=%d, want 4/5/4", calls, s.Requests(), s.Frames())
	}
}

func TestManualSchedulerRunStopsWhenIdle(t *testing.T) {
	var s ManualScheduler
	s.RequestFrame(func() {})
	if ran := s.Run(10); ran != 1 {
		t.Errorf("Run(10) = %d, want 1", ran)
	}
	if s.Advance() != 0 {
		t.Error("Advance on an idle scheduler should run nothing")
	}
}
