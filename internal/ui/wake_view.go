package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cyberfolio/internal/logo"
	"cyberfolio/internal/ui/textutil"
	"cyberfolio/internal/wake"
)

const (
	wakePrompt    = "TAP TWICE TO WAKE UP"
	wakeSleeping  = "SYSTEM SLEEPING"
	wakeBooting   = "INITIALIZING..."
	emblemCols    = 16
	emblemRows    = 8
	pulsePeriod   = 2 * time.Second
	binaryOpacity = 0.12
)

var (
	binaryTopLeft     = []string{"01001000 01000101 01001100", "01001100 01001111 00100001"}
	binaryBottomRight = []string{"01010111 01000001 01001011", "01000101 00100000 01010101"}
)

// WakeView is the full-screen overlay shown until the double tap completes
// its reveal. Left mouse presses are taps.
type WakeView struct {
	detector      *wake.Detector
	now           func() time.Time
	width, height int
}

// Ensure WakeView implements View.
var _ View = (*WakeView)(nil)

// NewWakeView creates the overlay around detector.
func NewWakeView(detector *wake.Detector, now func() time.Time) *WakeView {
	if now == nil {
		now = time.Now
	}
	return &WakeView{detector: detector, now: now}
}

// Detector returns the gesture detector behind the overlay.
func (w *WakeView) Detector() *wake.Detector {
	return w.detector
}

// Init implements View.
func (w *WakeView) Init() tea.Cmd { return nil }

// Update implements View.
func (w *WakeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			w.detector.RegisterTap()
		}
	}
	return w, nil
}

// Close tears down the overlay; a pending dismiss will not fire.
func (w *WakeView) Close() {
	w.detector.Close()
}

// View implements View. It renders the sleeping screen on its own.
func (w *WakeView) View() string {
	return strings.Join(w.screen(w.frame()), "\n")
}

// Compose renders the overlay over base, a fully rendered main screen of
// the same size. Rows uncovered by the retracting panels show base.
func (w *WakeView) Compose(base string) string {
	f := w.frame()
	if f.PanelShift <= 0 {
		return strings.Join(w.screen(f), "\n")
	}
	lid := eyelidRows(w.height, f.PanelShift)
	overlay := w.screen(f)
	rows := strings.Split(base, "\n")
	for len(rows) < w.height {
		rows = append(rows, "")
	}
	for y := 0; y < w.height; y++ {
		if y < lid || y >= w.height-lid {
			rows[y] = overlay[y]
		}
	}
	return strings.Join(rows[:w.height], "\n")
}

// eyelidRows returns how many rows each panel still covers.
func eyelidRows(height int, shift float64) int {
	half := float64(height) / 2
	return int(math.Ceil(half * (1 - shift)))
}

func (w *WakeView) frame() wake.RevealFrame {
	return w.detector.Sequencer().Frame(w.now())
}

// screen draws the black overlay with content faded to f.ContentOpacity.
func (w *WakeView) screen(f wake.RevealFrame) []string {
	width, height := max(w.width, 1), max(w.height, 1)
	black := lipgloss.NewStyle().Background(lipgloss.Color(ColorBlack))
	fade := 1 - f.ContentOpacity
	ink := func(hex string) lipgloss.Style {
		return black.Foreground(lipgloss.Color(blend(hex, ColorBlack, fade)))
	}

	rows := blankRows(width, height)
	for i := range rows {
		rows[i] = black.Render(rows[i])
	}

	state := w.detector.Snapshot()
	status := fmt.Sprintf("TAP COUNT: %d", state.TapCount)
	if state.Awakening {
		status = wakeBooting
	}
	pulse := 0.5 + 0.5*math.Cos(2*math.Pi*float64(w.now().UnixMilli()%pulsePeriod.Milliseconds())/float64(pulsePeriod.Milliseconds()))
	prompt := ink(blend(ColorCyan, ColorBlack, 0.5*(1-pulse))).Bold(true).
		Render(textutil.Letterspace(wakePrompt))
	sleeping := ink(blend(ColorCyan, ColorBlack, 0.4)).
		Render("<   " + textutil.Letterspace(wakeSleeping) + "   >")

	var blocks []string
	if f.ContentOpacity > 0.5 {
		blocks = append(blocks, logo.Render(logo.Lambda, emblemCols, emblemRows), "")
	}
	blocks = append(blocks, prompt, "", sleeping, "", "", ink(ColorFaint).Render(status))

	content := lipgloss.JoinVertical(lipgloss.Center, blocks...)
	cw, ch := lipgloss.Width(content), lipgloss.Height(content)
	overlayBlock(rows, content, (width-cw)/2, (height-ch)/2)

	dim := ink(blend(ColorCyan, ColorBlack, 1-binaryOpacity))
	if height > 6 && width > 40 {
		for i, line := range binaryTopLeft {
			overlayBlock(rows, dim.Render(line), 4, 2+i)
		}
		for i, line := range binaryBottomRight {
			overlayBlock(rows, dim.Render(line), width-4-textutil.Width(line), height-4+i)
		}
	}
	return rows
}
