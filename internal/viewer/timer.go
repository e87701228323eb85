package viewer

import (
	"sync"
	"time"
)

// Timer runs load completions on wall-clock time. Scheduling a ticket
// cancels whatever was scheduled before it, so at most one completion is
// ever delivered per burst of selections.
type Timer struct {
	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewTimer returns an idle Timer.
func NewTimer() *Timer { return &Timer{} }

// Schedule calls fire with t once t.Delay has elapsed, unless another
// Schedule or Stop happens first.
func (tm *Timer) Schedule(t Ticket, fire func(Ticket)) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.seq++
	seq := tm.seq

	if tm.timer != nil {
		tm.timer.Stop()
	}
	tm.timer = time.AfterFunc(t.Delay, func() {
		tm.mu.Lock()
		// Stop can lose the race with a timer that already fired.
		current := seq == tm.seq
		if current {
			tm.timer = nil
		}
		tm.mu.Unlock()
		if current {
			fire(t)
		}
	})
}

// Stop drops any pending completion.
func (tm *Timer) Stop() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.seq++
	if tm.timer != nil {
		tm.timer.Stop()
		tm.timer = nil
	}
}

// Pending reports whether a completion is scheduled and not yet delivered.
func (tm *Timer) Pending() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.timer != nil
}
