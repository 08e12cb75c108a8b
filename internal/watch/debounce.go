package watch

import "time"

// debouncer is one cancel-and-replace timer. It is owned by the watch loop
// goroutine and must not be shared. At most one timer is pending at a time.
type debouncer struct {
	quiet time.Duration
	timer *time.Timer
}

func newDebouncer(quiet time.Duration) *debouncer {
	return &debouncer{quiet: quiet}
}

// reset cancels any pending timer and starts a fresh quiet period.
func (d *debouncer) reset() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.NewTimer(d.quiet)
}

// C returns the pending timer's channel, or nil when idle. Receiving from a
// nil channel blocks forever, which keeps the loop's select case inert.
func (d *debouncer) C() <-chan time.Time {
	if d.timer == nil {
		return nil
	}
	return d.timer.C
}

// fired marks the pending timer as consumed.
func (d *debouncer) fired() {
	d.timer = nil
}

// pending reports whether a timer is outstanding.
func (d *debouncer) pending() bool {
	return d.timer != nil
}

// stop cancels the pending timer without firing it.
func (d *debouncer) stop() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
