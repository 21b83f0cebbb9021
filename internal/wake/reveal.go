package wake

import (
	"log"
	"time"
)

const (
	// RevealDelay is the time from entering Awakening to the dismiss callback.
	RevealDelay = 1500 * time.Millisecond
	// FadeDuration is how long the overlay content takes to fade out.
	FadeDuration = 500 * time.Millisecond
)

// Cue is the boot sound played when the reveal begins.
type Cue interface {
	Play() error
}

// CueFunc adapts a function to Cue.
type CueFunc func() error

// Play implements Cue.
func (f CueFunc) Play() error { return f() }

// CueOutcome records what happened when the boot cue was attempted.
type CueOutcome string

const (
	CueDisabled CueOutcome = "disabled"
	CuePlayed   CueOutcome = "played"
	CueFailed   CueOutcome = "failed"
)

// Observer receives reveal lifecycle notifications.
type Observer interface {
	RevealStarted(at time.Time, cue CueOutcome)
	RevealDismissed(at time.Time)
	RevealCancelled(at time.Time)
}

// RevealFrame is the presentation state of the reveal at a point in time.
type RevealFrame struct {
	ContentOpacity float64 // 1 = fully visible, 0 = gone
	PanelShift     float64 // 0 = panels closed, 1 = fully retracted
}

// Sequencer drives the reveal once Awakening is entered and guarantees the
// dismiss callback fires at most once.
type Sequencer struct {
	sched     Scheduler
	cue       Cue
	onDismiss func()
	observer  Observer

	timer     Timer
	started   bool
	startedAt time.Time
	dismissed bool
	torn      bool
}

// NewSequencer creates a sequencer. cue may be nil (no sound).
func NewSequencer(sched Scheduler, cue Cue, onDismiss func()) *Sequencer {
	return &Sequencer{sched: sched, cue: cue, onDismiss: onDismiss}
}

// SetObserver attaches an observer. Must be called before Begin.
func (s *Sequencer) SetObserver(o Observer) {
	s.observer = o
}

// Begin starts the reveal: plays the cue and arms the dismiss timer.
// Calls after the first, or after Teardown, are no-ops.
func (s *Sequencer) Begin() {
	if s.started || s.torn {
		return
	}
	s.started = true
	s.startedAt = s.sched.Now()
	outcome := s.playCue()
	s.timer = s.sched.Schedule(RevealDelay, s.dismiss)
	if s.observer != nil {
		s.observer.RevealStarted(s.startedAt, outcome)
	}
}

// Teardown cancels a pending dismiss. Safe to call any number of times.
func (s *Sequencer) Teardown() {
	if s.torn {
		return
	}
	s.torn = true
	if s.timer != nil && s.timer.Stop() && s.observer != nil {
		s.observer.RevealCancelled(s.sched.Now())
	}
	s.timer = nil
}

// Started reports whether Begin has run.
func (s *Sequencer) Started() bool { return s.started }

// Dismissed reports whether the dismiss callback has fired.
func (s *Sequencer) Dismissed() bool { return s.dismissed }

// Frame returns the reveal presentation state at now.
func (s *Sequencer) Frame(now time.Time) RevealFrame {
	if !s.started {
		return RevealFrame{ContentOpacity: 1}
	}
	elapsed := now.Sub(s.startedAt)
	return RevealFrame{
		ContentOpacity: 1 - progress(elapsed, FadeDuration),
		PanelShift:     easeInOutCubic(progress(elapsed, RevealDelay)),
	}
}

func (s *Sequencer) dismiss() {
	s.timer = nil
	if s.dismissed || s.torn {
		return
	}
	s.dismissed = true
	if s.observer != nil {
		s.observer.RevealDismissed(s.sched.Now())
	}
	if s.onDismiss != nil {
		s.onDismiss()
	}
}

// playCue never lets a cue failure escape.
func (s *Sequencer) playCue() (outcome CueOutcome) {
	if s.cue == nil {
		return CueDisabled
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("wake: boot cue panicked: %v", r)
			outcome = CueFailed
		}
	}()
	if err := s.cue.Play(); err != nil {
		log.Printf("wake: boot cue failed: %v", err)
		return CueFailed
	}
	return CuePlayed
}

func progress(elapsed, total time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= total {
		return 1
	}
	return float64(elapsed) / float64(total)
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}
