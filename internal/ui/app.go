package ui

import (
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cyberfolio/internal/wake"
)

const (
	frameMaxWidth        = 110
	defaultFrameInterval = 50 * time.Millisecond
)

// Options configures NewAppModel.
type Options struct {
	Cue           wake.Cue      // boot sound; nil = silent
	Observer      wake.Observer // reveal lifecycle hook; may be nil
	FrameInterval time.Duration
	MatrixSeed    int64
	Now           func() time.Time
	CopyText      func(string) error
}

// AppModel is the root model. The wake overlay sits on top of the main
// frame until the reveal dismisses it; the frame then routes between the
// HOME and FAVOURITES sections.
type AppModel struct {
	Section    Section
	Home       *HomeView
	Favourites *FavouritesView
	Overlays   OverlayStack
	Wake       *WakeView // nil once dismissed
	Matrix     *MatrixRain

	keys          keyMap
	help          help.Model
	pulse         spinner.Model
	sched         *teaScheduler
	now           func() time.Time
	started       time.Time
	frameInterval time.Duration
	copyText      func(string) error
	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model with the wake overlay up.
func NewAppModel(opts Options) *AppModel {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	seed := opts.MatrixSeed
	if seed == 0 {
		seed = now().UnixNano()
	}

	a := &AppModel{
		Section:       SectionHome,
		Home:          NewHomeView(),
		Favourites:    NewFavouritesView(),
		Matrix:        NewMatrixRain(seed),
		keys:          newKeyMap(),
		help:          help.New(),
		pulse:         spinner.New(spinner.WithSpinner(spinner.Pulse), spinner.WithStyle(Styles.Status)),
		sched:         newTeaScheduler(now),
		now:           now,
		started:       now(),
		frameInterval: interval,
		copyText:      copyText,
	}

	seq := wake.NewSequencer(a.sched, opts.Cue, a.dismissWake)
	if opts.Observer != nil {
		seq.SetObserver(opts.Observer)
	}
	a.Wake = NewWakeView(wake.NewDetector(a.sched, seq), now)
	a.Overlays.Push(Overlay{View: a.Wake})
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Select switches the visible section. Any section is reachable from any other.
func (m *AppModel) Select(s Section) {
	m.Section = s
}

// Teardown closes the wake overlay so no pending dismiss fires.
func (m *AppModel) Teardown() {
	if m.Wake != nil {
		m.Wake.Close()
	}
}

// dismissWake is the overlay's onWake callback.
func (m *AppModel) dismissWake() {
	if m.Wake == nil {
		return
	}
	m.Overlays.Remove(m.Wake)
	m.Wake = nil
	log.Printf("ui: wake overlay dismissed")
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.frameCmd(), a.pulse.Tick)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		a.Overlays.UpdateTop(msg)
		return a, nil
	case frameMsg:
		a.Home.Update(msg)
		return a, a.frameCmd()
	case timerFiredMsg:
		a.sched.fire(msg.id)
		return a, a.sched.flush()
	case spinner.TickMsg:
		var cmd tea.Cmd
		a.pulse, cmd = a.pulse.Update(msg)
		return a, cmd
	case clipboardResultMsg:
		if msg.err != nil {
			log.Printf("ui: copy %q: %v", msg.title, msg.err)
		}
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.Teardown()
			return a, tea.Quit
		}
	}

	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, tea.Batch(cmd, a.sched.flush())
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		a.handleMouse(msg)
	}
	return a, nil
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Home):
		a.Select(SectionHome)
	case key.Matches(msg, a.keys.Favourites):
		a.Select(SectionFavourites)
	case key.Matches(msg, a.keys.NextSection):
		a.Select(a.Section.Next())
	case key.Matches(msg, a.keys.PrevSection):
		a.Select(a.Section.Prev())
	}
	if a.Section != SectionFavourites {
		return nil
	}
	switch {
	case key.Matches(msg, a.keys.PrevCard):
		a.Favourites.FocusPrev()
	case key.Matches(msg, a.keys.NextCard):
		a.Favourites.FocusNext()
	case key.Matches(msg, a.keys.Flip):
		a.Favourites.FlipFocused()
	case key.Matches(msg, a.keys.Copy):
		return a.copyFocusedCmd()
	}
	return nil
}

func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	l := a.layout()
	if msg.Y == l.innerY {
		_, hits := renderNav(a.Section, "", l.innerW)
		for _, h := range hits {
			if msg.X >= l.innerX+h.x && msg.X < l.innerX+h.x+h.width {
				a.Select(h.section)
				return
			}
		}
	}
	if a.Section == SectionFavourites {
		a.Favourites.ClickCard(msg.X-l.innerX, msg.Y-l.contentY)
	}
}

// copyFocusedCmd copies the focused card's list to the clipboard.
func (a *appModelAdapter) copyFocusedCmd() tea.Cmd {
	card := a.Favourites.FocusedCard()
	if card == nil || !card.Flippable() {
		return nil
	}
	title, text, copyText := card.Title, card.ListText(), a.copyText
	return func() tea.Msg {
		return clipboardResultMsg{title: title, err: copyText(text)}
	}
}

func (a *appModelAdapter) frameCmd() tea.Cmd {
	return tea.Tick(a.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *AppModel) resize(w, h int) {
	m.width, m.height = w, h
	l := m.layout()
	m.Home.SetWidth(l.innerW)
	m.Favourites.SetWidth(l.innerW)
	m.help.Width = l.innerW
}

// frameLayout positions the main frame on screen.
type frameLayout struct {
	x, y, w, h     int // outer frame box
	innerX, innerY int // first content cell (nav line)
	innerW, innerH int
	contentY       int // first row of the section panel
	contentH       int
}

func (m *AppModel) layout() frameLayout {
	var l frameLayout
	l.w = min(m.width-4, frameMaxWidth)
	if l.w < 40 {
		l.w = max(m.width, 1)
	}
	l.h = max(m.height-3, 12)
	l.x = max((m.width-l.w)/2, 0)
	l.y = 1
	l.innerX = l.x + 3 // border + padding
	l.innerY = l.y + 1
	l.innerW = max(l.w-6, 1)
	l.innerH = l.h - 2
	l.contentY = l.innerY + 3 // nav, rule, blank
	l.contentH = max(l.innerH-3-3, 1) // footer rule, footer, help
	return l
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	l := a.layout()
	rows := a.Matrix.Render(a.width, a.height, a.now().Sub(a.started))
	overlayBlock(rows, a.renderFrame(l), l.x, l.y)
	overlayBlock(rows, hudLeft(), 4, a.height-1)
	right := hudRight()
	overlayBlock(rows, right, a.width-4-lipgloss.Width(right), a.height-2)
	drawCorners(rows, a.width)
	base := strings.Join(rows, "\n")

	if a.Wake != nil && a.Overlays.Len() > 0 {
		return a.Wake.Compose(base)
	}
	return base
}

func (a *appModelAdapter) renderFrame(l frameLayout) string {
	nav, _ := renderNav(a.Section, a.pulse.View(), l.innerW)
	body := fitLines(a.currentView().View(), l.contentH)
	footer := renderFooter(l.innerW) + "\n" + a.help.View(a.keys)
	inner := nav + "\n\n" + body + "\n" + footer
	return Styles.Frame.
		Width(l.w - 2).
		Height(l.innerH).
		MaxHeight(l.h).
		Render(inner)
}

func (a *appModelAdapter) currentView() View {
	switch a.Section {
	case SectionFavourites:
		return a.Favourites
	default:
		return a.Home
	}
}

// fitLines pads or cuts s to exactly n lines.
func fitLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
