package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cyberfolio/internal/wake"
)

// teaScheduler implements wake.Scheduler on top of tea.Tick. Each timer
// becomes a command whose timerFiredMsg is routed back through Update, so
// callbacks always run on the Bubble Tea event loop.
type teaScheduler struct {
	now     func() time.Time
	nextID  uint64
	pending map[uint64]func()
	cmds    []tea.Cmd
}

var _ wake.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler(now func() time.Time) *teaScheduler {
	if now == nil {
		now = time.Now
	}
	return &teaScheduler{now: now, pending: make(map[uint64]func())}
}

// Now implements wake.Scheduler.
func (s *teaScheduler) Now() time.Time {
	return s.now()
}

// Schedule implements wake.Scheduler. The tick command is queued until
// the next flush.
func (s *teaScheduler) Schedule(d time.Duration, fn func()) wake.Timer {
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return teaTimer{s: s, id: id}
}

// fire runs the callback for id unless it was stopped.
func (s *teaScheduler) fire(id uint64) {
	fn, ok := s.pending[id]
	if !ok {
		return
	}
	delete(s.pending, id)
	fn()
}

// flush hands queued tick commands to the runtime.
func (s *teaScheduler) flush() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// live returns the number of timers that have neither fired nor stopped.
func (s *teaScheduler) live() int {
	return len(s.pending)
}

type teaTimer struct {
	s  *teaScheduler
	id uint64
}

// Stop implements wake.Timer.
func (t teaTimer) Stop() bool {
	if _, ok := t.s.pending[t.id]; !ok {
		return false
	}
	delete(t.s.pending, t.id)
	return true
}
