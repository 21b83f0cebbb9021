package wake

import (
	"sort"
	"time"
)

// Timer is a pending delayed action.
type Timer interface {
	// Stop cancels the timer. Returns false if it already fired or was stopped.
	Stop() bool
}

// Scheduler schedules delayed actions and reports the current time.
type Scheduler interface {
	Now() time.Time
	Schedule(d time.Duration, fn func()) Timer
}

// ManualClock is a Scheduler driven by explicit Advance calls.
// Timers fire in deadline order; timers sharing a deadline fire in the
// order they were scheduled.
type ManualClock struct {
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	clock    *ManualClock
	seq      uint64
	deadline time.Time
	fn       func()
	done     bool
}

// NewManualClock creates a clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements Scheduler.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Schedule implements Scheduler.
func (c *ManualClock) Schedule(d time.Duration, fn func()) Timer {
	c.seq++
	t := &manualTimer{clock: c, seq: c.seq, deadline: c.now.Add(d), fn: fn}
	c.pending = append(c.pending, t)
	return t
}

// Pending returns the number of live timers.
func (c *ManualClock) Pending() int {
	n := 0
	for _, t := range c.pending {
		if !t.done {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing every timer whose deadline
// falls at or before the new time. Timers scheduled by a firing callback
// are eligible within the same Advance.
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.deadline
		next.done = true
		c.compact()
		next.fn()
	}
	c.now = target
}

func (c *ManualClock) nextDue(target time.Time) *manualTimer {
	live := make([]*manualTimer, 0, len(c.pending))
	for _, t := range c.pending {
		if !t.done && !t.deadline.After(target) {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].deadline.Equal(live[j].deadline) {
			return live[i].seq < live[j].seq
		}
		return live[i].deadline.Before(live[j].deadline)
	})
	return live[0]
}

func (c *ManualClock) compact() {
	kept := c.pending[:0]
	for _, t := range c.pending {
		if !t.done {
			kept = append(kept, t)
		}
	}
	c.pending = kept
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.clock.compact()
	return true
}
