package anim

import (
	"testing"

	"github.com/gogpu/glscene/recording"
	"github.com/gogpu/glscene/scene"
)

// countingScheduler records registrations without running them.
type countingScheduler struct {
	fns []func()
}

func (s *countingScheduler) RequestFrame(fn func()) { s.fns = append(s.fns, fn) }

func TestDriverAdvancesRotation(t *testing.T) {
	sched := &recording.ManualScheduler{}
	var seen []float32
	d := New(sched, func(s scene.State) { seen = append(seen, s.Rotation) })
	d.Start()

	if ran := sched.Run(5); ran != 5 {
		t.Fatalf("ran %d frames, want 5", ran)
	}
	if len(seen) != 5 {
		t.Fatalf("rendered %d frames, want 5", len(seen))
	}
	if seen[0] != 0 {
		t.Errorf("first frame rotation = %v, want 0", seen[0])
	}
	for i := 1; i < len(seen); i++ {
		if diff := seen[i] - seen[i-1]; diff < 0.0099 || diff > 0.0101 {
			t.Errorf("frame %d: rotation step = %v, want 0.01", i, diff)
		}
	}
	if d.Frames() != 5 {
		t.Errorf("Frames() = %d, want 5", d.Frames())
	}
	if got := d.Scene().Rotation; got < 0.0499 || got > 0.0501 {
		t.Errorf("Scene().Rotation = %v, want 0.05", got)
	}
	if d.State() != Scheduled {
		t.Errorf("State() = %v, want Scheduled", d.State())
	}
}

func TestDriverRotationNeverWraps(t *testing.T) {
	sched := &recording.ManualScheduler{}
	d := New(sched, func(scene.State) {}, WithDelta(1))
	d.Start()
	sched.Run(10)
	if got := d.Scene().Rotation; got != 10 {
		t.Errorf("Rotation after 10 frames of delta 1 = %v, want 10", got)
	}
}

func TestStopBeforeCallback(t *testing.T) {
	sched := &recording.ManualScheduler{}
	rendered := 0
	d := New(sched, func(scene.State) { rendered++ })
	h := d.Start()
	sched.Run(3)
	requests := sched.Requests()

	h.Stop()
	if !h.Stopped() {
		t.Error("Stopped() = false after Stop")
	}
	sched.Advance() // the in-flight callback
	if rendered != 3 {
		t.Errorf("rendered %d frames, want 3 (pending callback skips render)", rendered)
	}
	if sched.Requests() != requests {
		t.Errorf("RequestFrame called %d more times after Stop", sched.Requests()-requests)
	}
	if sched.Pending() != 0 || d.State() != Idle {
		t.Errorf("pending=%d state=%v, want 0 Idle", sched.Pending(), d.State())
	}
}

func TestStopDuringRender(t *testing.T) {
	sched := &recording.ManualScheduler{}
	var h *Handle
	rendered := 0
	d := New(sched, func(scene.State) {
		rendered++
		if rendered == 2 {
			h.Stop()
		}
	})
	h = d.Start()
	sched.Run(10)
	if rendered != 2 {
		t.Errorf("rendered %d frames, want 2", rendered)
	}
	if d.State() != Idle || sched.Pending() != 0 {
		t.Errorf("state=%v pending=%d after stop in render", d.State(), sched.Pending())
	}
	// The rotation still advanced for the frame that was rendered.
	if got := d.Scene().Rotation; got < 0.0199 || got > 0.0201 {
		t.Errorf("Rotation = %v, want 0.02", got)
	}
}

func TestDriverRegistersOncePerFrame(t *testing.T) {
	sched := &countingScheduler{}
	d := New(sched, func(scene.State) {})
	d.Start()
	for i := range 3 {
		sched.fns[i]()
	}
	if len(sched.fns) != 4 {
		t.Fatalf("registrations = %d, want 4", len(sched.fns))
	}
	if d.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", d.Frames())
	}
}

func TestStartWhileScheduled(t *testing.T) {
	sched := &recording.ManualScheduler{}
	d := New(sched, func(scene.State) {})
	first := d.Start()
	second := d.Start()
	if sched.Pending() != 1 {
		t.Errorf("pending = %d, want 1", sched.Pending())
	}
	first.Stop()
	sched.Advance()
	if d.Frames() != 1 {
		t.Errorf("stopping a replaced handle cancelled the loop")
	}
	second.Stop()
	sched.Advance()
	if d.State() != Idle {
		t.Errorf("State() = %v, want Idle", d.State())
	}
}

func TestRestartAfterStop(t *testing.T) {
	sched := &recording.ManualScheduler{}
	d := New(sched, func(scene.State) {})
	h := d.Start()
	sched.Run(2)
	h.Stop()
	sched.Advance()

	d.Start()
	sched.Run(2)
	if d.Frames() != 4 {
		t.Errorf("Frames() = %d, want 4", d.Frames())
	}
	if got := d.Scene().Rotation; got < 0.0399 || got > 0.0401 {
		t.Errorf("Rotation = %v, want 0.04 (not reset)", got)
	}
}

func TestNilHandle(t *testing.T) {
	var h *Handle
	h.Stop()
	if h.Stopped() {
		t.Error("nil handle reports stopped")
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "Idle" || Scheduled.String() != "Scheduled" || State(9).String() != "Unknown" {
		t.Error("unexpected State names")
	}
}
