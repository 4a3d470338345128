package tooltip

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// VisibilityState is the tooltip's position in the show/hide state machine.
type VisibilityState uint8

const (
	StateHidden VisibilityState = iota
	StatePendingShow
	StateVisible
	StatePendingHide
)

// String returns the state name.
func (s VisibilityState) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StatePendingShow:
		return "pending-show"
	case StateVisible:
		return "visible"
	case StatePendingHide:
		return "pending-hide"
	default:
		return "unknown"
	}
}

// DelayScheduler owns the single show/hide timer of one tooltip. Timers are
// advanced by Update with the frame delta; a callback never runs inside the
// call that scheduled it, even with a zero delay.
//
// Delays are measured from the scheduling event. The first Update after a
// timer is scheduled belongs to the frame the event arrived in and advances
// it by zero, so only a zero delay completes there.
//
// At most one timer is pending. Scheduling a new one replaces the old.
type DelayScheduler struct {
	state VisibilityState
	timer *gween.Tween
	fire  func()
	// fresh marks a timer that has not yet seen an Update.
	fresh bool
}

// NewDelayScheduler returns a scheduler in the Hidden state.
func NewDelayScheduler() *DelayScheduler {
	return &DelayScheduler{}
}

// State returns the current state.
func (d *DelayScheduler) State() VisibilityState {
	return d.state
}

// Pending reports whether a timer is outstanding.
func (d *DelayScheduler) Pending() bool {
	return d.timer != nil
}

// ScheduleShow moves to PendingShow and runs fn once delay has elapsed,
// replacing any outstanding timer.
func (d *DelayScheduler) ScheduleShow(delay time.Duration, fn func()) {
	d.schedule(StatePendingShow, delay, fn)
}

// ScheduleHide moves to PendingHide and runs fn once delay has elapsed,
// replacing any outstanding timer.
func (d *DelayScheduler) ScheduleHide(delay time.Duration, fn func()) {
	d.schedule(StatePendingHide, delay, fn)
}

func (d *DelayScheduler) schedule(state VisibilityState, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	d.state = state
	d.timer = gween.New(0, 1, float32(delay.Seconds()), ease.Linear)
	d.fire = fn
	d.fresh = true
}

// CancelPending drops the outstanding timer without running it. A pending
// show falls back to Hidden and a pending hide to Visible.
func (d *DelayScheduler) CancelPending() {
	switch d.state {
	case StatePendingShow:
		d.state = StateHidden
	case StatePendingHide:
		d.state = StateVisible
	}
	d.timer = nil
	d.fire = nil
}

// Reset forces a settled state, dropping any timer.
func (d *DelayScheduler) Reset(visible bool) {
	d.timer = nil
	d.fire = nil
	if visible {
		d.state = StateVisible
	} else {
		d.state = StateHidden
	}
}

// Enter handles a pointer entering a trigger. From Hidden it schedules a
// show; during PendingShow the delay restarts. A pending hide is cancelled
// and the tooltip stays Visible without re-running the show delay. It
// reports whether a show was scheduled.
func (d *DelayScheduler) Enter(delay time.Duration, onShow func()) bool {
	switch d.state {
	case StateHidden, StatePendingShow:
		d.ScheduleShow(delay, onShow)
		return true
	case StatePendingHide:
		d.CancelPending()
	}
	return false
}

// Leave handles the pointer leaving. A pending show is cancelled and nothing
// is ever shown; a visible tooltip schedules its hide. It reports whether a
// hide was scheduled.
func (d *DelayScheduler) Leave(delay time.Duration, onHide func()) bool {
	switch d.state {
	case StatePendingShow:
		d.CancelPending()
	case StateVisible:
		d.ScheduleHide(delay, onHide)
		return true
	}
	return false
}

// Update advances the outstanding timer by dt seconds and fires it when
// finished. A timer scheduled since the previous Update is not advanced. The state settles before the callback runs, so the callback may
// schedule again.
func (d *DelayScheduler) Update(dt float32) {
	if d.timer == nil {
		return
	}
	if d.fresh {
		d.fresh = false
		dt = 0
	}
	if _, done := d.timer.Update(dt); !done {
		return
	}
	fn := d.fire
	d.timer = nil
	d.fire = nil
	switch d.state {
	case StatePendingShow:
		d.state = StateVisible
	case StatePendingHide:
		d.state = StateHidden
	}
	if fn != nil {
		fn()
	}
}
