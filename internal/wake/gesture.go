package wake

import "time"

// ResetWindow is how long a single tap waits for its partner.
const ResetWindow = 500 * time.Millisecond

// State is the detector's position in the wake gesture.
type State int

const (
	StateIdle State = iota
	StatePendingSecondTap
	StateAwakening
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePendingSecondTap:
		return "PendingSecondTap"
	case StateAwakening:
		return "Awakening"
	default:
		return "Unknown"
	}
}

// GestureState is the mutable record owned by the Detector.
// Once Awakening is true TapCount no longer changes.
type GestureState struct {
	TapCount  int
	Awakening bool
}

// Detector turns taps into at most one wake per lifetime.
type Detector struct {
	sched     Scheduler
	seq       *Sequencer
	state     GestureState
	wakeTimer Timer
	closed    bool
}

// NewDetector creates a detector that begins seq on a double tap.
func NewDetector(sched Scheduler, seq *Sequencer) *Detector {
	return &Detector{sched: sched, seq: seq}
}

// RegisterTap records one tap. Taps after Awakening or Close are ignored.
func (d *Detector) RegisterTap() {
	if d.closed || d.state.Awakening {
		return
	}
	d.state.TapCount++
	d.stopWakeTimer()
	if d.state.TapCount == 1 {
		d.wakeTimer = d.sched.Schedule(ResetWindow, d.resetTaps)
		return
	}
	d.state.Awakening = true
	d.seq.Begin()
}

// Close tears the detector down: pending timers are cancelled and the
// dismiss callback will never fire.
func (d *Detector) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.stopWakeTimer()
	d.seq.Teardown()
}

// State returns the current gesture state machine position.
func (d *Detector) State() State {
	switch {
	case d.state.Awakening:
		return StateAwakening
	case d.state.TapCount == 1:
		return StatePendingSecondTap
	default:
		return StateIdle
	}
}

// Snapshot returns a copy of the gesture state.
func (d *Detector) Snapshot() GestureState {
	return d.state
}

// Sequencer returns the reveal sequencer driven by this detector.
func (d *Detector) Sequencer() *Sequencer {
	return d.seq
}

func (d *Detector) resetTaps() {
	d.wakeTimer = nil
	if d.state.Awakening {
		return
	}
	d.state.TapCount = 0
}

func (d *Detector) stopWakeTimer() {
	if d.wakeTimer != nil {
		d.wakeTimer.Stop()
		d.wakeTimer = nil
	}
}
