package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cyberfolio/internal/wake"
)

var testEpoch = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

// fakeNow is a settable clock for frame-dependent rendering.
type fakeNow struct {
	t time.Time
}

func (f *fakeNow) Now() time.Time { return f.t }

func (f *fakeNow) advance(d time.Duration) { f.t = f.t.Add(d) }

type countingObserver struct {
	started, dismissed, cancelled int
}

func (c *countingObserver) RevealStarted(time.Time, wake.CueOutcome) { c.started++ }
func (c *countingObserver) RevealDismissed(time.Time)                { c.dismissed++ }
func (c *countingObserver) RevealCancelled(time.Time)                { c.cancelled++ }

type testApp struct {
	*appModelAdapter
	clock    *fakeNow
	observer *countingObserver
	copied   []string
}

func newTestApp(t *testing.T, cue wake.Cue) *testApp {
	t.Helper()
	ta := &testApp{clock: &fakeNow{t: testEpoch}, observer: &countingObserver{}}
	m := NewAppModel(Options{
		Cue:        cue,
		Observer:   ta.observer,
		MatrixSeed: 7,
		Now:        ta.clock.Now,
		CopyText: func(s string) error {
			ta.copied = append(ta.copied, s)
			return nil
		},
	})
	ta.appModelAdapter = m.AsTeaModel().(*appModelAdapter)
	ta.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return ta
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// wakeUp double-taps and fires the reveal timer.
func (ta *testApp) wakeUp(t *testing.T) {
	t.Helper()
	ta.Update(click(10, 10))
	ta.Update(click(10, 10))
	ta.clock.advance(wake.RevealDelay)
	ta.Update(timerFiredMsg{id: 2})
	if ta.Wake != nil {
		t.Fatal("expected wake overlay to be dismissed")
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
