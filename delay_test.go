package tooltip

import (
	"testing"
	"time"
)

// advance runs the scheduler for n frames of dt seconds.
func advance(d *DelayScheduler, n int, dt float32) {
	for range n {
		d.Update(dt)
	}
}

func TestVisibilityStateString(t *testing.T) {
	tests := map[VisibilityState]string{
		StateHidden:         "hidden",
		StatePendingShow:    "pending-show",
		StateVisible:        "visible",
		StatePendingHide:    "pending-hide",
		VisibilityState(42): "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}

func TestScheduleShowFiresAfterDelay(t *testing.T) {
	d := NewDelayScheduler()
	fired := 0
	d.ScheduleShow(100*time.Millisecond, func() { fired++ })

	if d.State() != StatePendingShow || !d.Pending() {
		t.Fatalf("state = %v, pending = %v", d.State(), d.Pending())
	}
	// The first update is the scheduling frame and does not count.
	advance(d, 3, 0.04)
	if fired != 0 {
		t.Fatal("fired before the delay elapsed")
	}
	advance(d, 1, 0.04)
	if fired != 1 || d.State() != StateVisible || d.Pending() {
		t.Errorf("fired = %d, state = %v, pending = %v", fired, d.State(), d.Pending())
	}
	advance(d, 5, 0.04)
	if fired != 1 {
		t.Errorf("fired %d times, want once", fired)
	}
}

func TestZeroDelayWaitsForTick(t *testing.T) {
	d := NewDelayScheduler()
	fired := false
	d.ScheduleShow(0, func() { fired = true })
	if fired {
		t.Fatal("zero delay must not fire synchronously")
	}
	d.Update(0)
	if !fired || d.State() != StateVisible {
		t.Errorf("fired = %v, state = %v", fired, d.State())
	}
}

func TestSchedulingFrameDoesNotCount(t *testing.T) {
	d := NewDelayScheduler()
	fired := false
	d.ScheduleShow(15*time.Millisecond, func() { fired = true })

	d.Update(1.0 / 60)
	if fired || d.State() != StatePendingShow {
		t.Fatalf("fired = %v, state = %v after the scheduling frame", fired, d.State())
	}
	d.Update(1.0 / 60)
	if !fired || d.State() != StateVisible {
		t.Errorf("fired = %v, state = %v after one full frame", fired, d.State())
	}
}

func TestRescheduleResetsFreshFrame(t *testing.T) {
	d := NewDelayScheduler()
	fired := 0
	d.ScheduleShow(50*time.Millisecond, func() { fired++ })
	advance(d, 2, 0.04)
	d.ScheduleShow(50*time.Millisecond, func() { fired++ })
	advance(d, 2, 0.04)
	if fired != 0 {
		t.Fatal("rescheduled timer should restart from its own scheduling frame")
	}
	advance(d, 1, 0.04)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestNegativeDelayTreatedAsZero(t *testing.T) {
	d := NewDelayScheduler()
	fired := false
	d.ScheduleHide(-time.Second, func() { fired = true })
	d.Update(1.0 / 60)
	if !fired || d.State() != StateHidden {
		t.Errorf("fired = %v, state = %v", fired, d.State())
	}
}

func TestScheduleReplacesPending(t *testing.T) {
	d := NewDelayScheduler()
	first, second := 0, 0
	d.ScheduleShow(50*time.Millisecond, func() { first++ })
	d.ScheduleHide(50*time.Millisecond, func() { second++ })
	advance(d, 10, 0.05)

	if first != 0 || second != 1 {
		t.Errorf("first = %d, second = %d, want 0 and 1", first, second)
	}
}

func TestCancelPending(t *testing.T) {
	tests := []struct {
		name  string
		setup func(d *DelayScheduler)
		want  VisibilityState
	}{
		{"pending show", func(d *DelayScheduler) { d.ScheduleShow(time.Second, nil) }, StateHidden},
		{"pending hide", func(d *DelayScheduler) { d.ScheduleHide(time.Second, nil) }, StateVisible},
		{"nothing pending", func(d *DelayScheduler) { d.Reset(true) }, StateVisible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDelayScheduler()
			tt.setup(d)
			d.CancelPending()
			if d.State() != tt.want || d.Pending() {
				t.Errorf("state = %v, pending = %v, want %v", d.State(), d.Pending(), tt.want)
			}
		})
	}
}

func TestEnterThenLeaveNeverShows(t *testing.T) {
	d := NewDelayScheduler()
	shown := false
	if !d.Enter(200*time.Millisecond, func() { shown = true }) {
		t.Fatal("Enter from hidden should schedule a show")
	}
	advance(d, 3, 0.05)
	if d.Leave(0, func() {}) {
		t.Error("Leave during pending show should not schedule a hide")
	}
	advance(d, 20, 0.05)
	if shown || d.State() != StateHidden {
		t.Errorf("shown = %v, state = %v", shown, d.State())
	}
}

func TestEnterDuringPendingShowRestartsDelay(t *testing.T) {
	d := NewDelayScheduler()
	shown := 0
	show := func() { shown++ }
	d.Enter(100*time.Millisecond, show)
	advance(d, 3, 0.025)
	d.Enter(100*time.Millisecond, show)
	advance(d, 3, 0.025)
	if shown != 0 {
		t.Fatal("restart should postpone the show")
	}
	advance(d, 3, 0.025)
	if shown != 1 {
		t.Errorf("shown = %d, want 1", shown)
	}
}

func TestEnterCancelsPendingHide(t *testing.T) {
	d := NewDelayScheduler()
	d.Reset(true)
	hidden := false
	if !d.Leave(100*time.Millisecond, func() { hidden = true }) {
		t.Fatal("Leave from visible should schedule a hide")
	}
	if d.State() != StatePendingHide {
		t.Fatalf("state = %v, want pending-hide", d.State())
	}
	reshown := false
	if d.Enter(time.Second, func() { reshown = true }) {
		t.Error("Enter during pending hide should not schedule a show")
	}
	advance(d, 30, 0.05)
	if hidden || reshown || d.State() != StateVisible {
		t.Errorf("hidden = %v, reshown = %v, state = %v", hidden, reshown, d.State())
	}
}

func TestEnterWhileVisibleIsNoop(t *testing.T) {
	d := NewDelayScheduler()
	d.Reset(true)
	if d.Enter(time.Second, func() {}) {
		t.Error("Enter while visible should not schedule")
	}
	if d.State() != StateVisible || d.Pending() {
		t.Errorf("state = %v, pending = %v", d.State(), d.Pending())
	}
}

func TestLeaveWhileHiddenIsNoop(t *testing.T) {
	d := NewDelayScheduler()
	if d.Leave(0, func() { t.Error("hide should not run") }) {
		t.Error("Leave while hidden should not schedule")
	}
	d.Update(1)
}

func TestLeaveDuringPendingHideKeepsTimer(t *testing.T) {
	d := NewDelayScheduler()
	d.Reset(true)
	hides := 0
	d.Leave(100*time.Millisecond, func() { hides++ })
	advance(d, 2, 0.06)
	if d.Leave(100*time.Millisecond, func() { hides++ }) {
		t.Error("second Leave should not reschedule")
	}
	advance(d, 1, 0.06)
	if hides != 1 || d.State() != StateHidden {
		t.Errorf("hides = %d, state = %v", hides, d.State())
	}
}

func TestCallbackMayReschedule(t *testing.T) {
	d := NewDelayScheduler()
	d.ScheduleShow(0, func() {
		d.ScheduleHide(0, nil)
	})
	d.Update(0)
	if d.State() != StatePendingHide || !d.Pending() {
		t.Errorf("state = %v, pending = %v", d.State(), d.Pending())
	}
	d.Update(0)
	if d.State() != StateHidden {
		t.Errorf("state = %v, want hidden", d.State())
	}
}
