package schedule

import "time"

// Frames is a Scheduler driven by elapsed time reported by the caller instead
// of the wall clock. Frame-based engines feed it their frame delta; tests feed
// it exact durations.
//
//	frames.Elapse(dt)
//	for frames.Fire() {
//		ctrl.Tick()
//	}
type Frames struct {
	period  time.Duration
	elapsed time.Duration
	active  bool
	gen     uint64
}

// NewFrames creates an idle frame scheduler.
func NewFrames() *Frames {
	return &Frames{}
}

// Every arms a repeating tick and resets the accumulated time.
func (f *Frames) Every(period time.Duration) Timer {
	f.gen++
	f.period = period
	f.elapsed = 0
	f.active = period > 0
	return framesTimer{owner: f, gen: f.gen}
}

// Elapse adds time to the accumulator. It is ignored while idle so that a
// resumed tick starts a full period later.
func (f *Frames) Elapse(dt time.Duration) {
	if f.active {
		f.elapsed += dt
	}
}

// Fire consumes one period from the accumulator and reports whether a tick is
// due. Callers loop on it because a long frame can cover several periods.
// Fire returns false as soon as the timer is stopped, even mid-loop.
func (f *Frames) Fire() bool {
	if !f.active || f.elapsed < f.period {
		return false
	}
	f.elapsed -= f.period
	return true
}

// Active reports whether a tick is armed.
func (f *Frames) Active() bool {
	return f.active
}

// Period returns the period of the last armed tick.
func (f *Frames) Period() time.Duration {
	return f.period
}

type framesTimer struct {
	owner *Frames
	gen   uint64
}

func (h framesTimer) Stop() {
	if h.owner.gen == h.gen {
		h.owner.active = false
		h.owner.elapsed = 0
	}
}
