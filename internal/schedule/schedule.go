// Package schedule provides repeating tick sources with synchronous cancel
// handles. The snake controller acquires a Timer when ticking starts and
// releases it on pause, reset or game over; once Stop returns, no tick from
// that Timer reaches the controller.
package schedule

import (
	"time"
)

// Scheduler starts a repeating task.
type Scheduler interface {
	// Every arms a repeating tick with the given period and returns its handle.
	// Arming a new tick supersedes any tick armed earlier by the same Scheduler.
	Every(period time.Duration) Timer
}

// Timer is the cancel handle of a repeating tick.
type Timer interface {
	// Stop cancels the tick. It is safe to call more than once.
	Stop()
}

// Ticker is a wall-clock Scheduler for select-loop frontends.
// The owner selects on C(); after Stop, C() returns nil so stale values left in
// the underlying time.Ticker channel are never observed.
type Ticker struct {
	ticker *time.Ticker
	gen    uint64
}

// NewTicker creates an idle Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Every arms the ticker, stopping any previous one.
func (t *Ticker) Every(period time.Duration) Timer {
	t.stop()
	t.gen++
	t.ticker = time.NewTicker(period)
	return tickerTimer{owner: t, gen: t.gen}
}

// C returns the channel of the armed ticker, or nil when idle.
// A nil channel blocks forever inside select, which disables the case.
func (t *Ticker) C() <-chan time.Time {
	if t.ticker == nil {
		return nil
	}
	return t.ticker.C
}

// Active reports whether a tick is armed.
func (t *Ticker) Active() bool {
	return t.ticker != nil
}

func (t *Ticker) stop() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
}

type tickerTimer struct {
	owner *Ticker
	gen   uint64
}

// Stop releases the ticker if this handle is still the current one.
func (h tickerTimer) Stop() {
	if h.owner.gen == h.gen {
		h.owner.stop()
	}
}

// Close stops any armed ticker. Frontends call it on exit so that a running
// game does not leave a time.Ticker behind.
func (t *Ticker) Close() {
	t.stop()
}
