package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cyberfolio/internal/logo"
)

const (
	homeKicker  = "> WELCOME_TO //"
	homeTitle   = "SRIJITH'S POPCULTURE PORTFOLIO"
	homeTagline = "Hey fellow gooners, this site shows my interests and obsessions so feel free to check it out! :P"
	homeHub     = "Welcome to the main hub. Navigate to different sections using the menu above."
	avatarCols  = 16
	avatarRows  = 8
	glitchCycle = 3 * time.Second
)

// HomeView is the landing panel: header, avatar and hub text.
type HomeView struct {
	width  int
	glitch bool
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates the home panel.
func NewHomeView() *HomeView {
	return &HomeView{}
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd { return nil }

// SetWidth sets the available width in cells.
func (h *HomeView) SetWidth(w int) { h.width = w }

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	if t, ok := msg.(frameMsg); ok {
		h.glitch = glitchAt(time.Time(t))
	}
	return h, nil
}

// glitchAt reports whether the title shows its chromatic split at t.
// The split flashes twice per glitchCycle.
func glitchAt(t time.Time) bool {
	ms := t.UnixMilli() % glitchCycle.Milliseconds()
	return ms < 120 || (ms > 1500 && ms < 1560)
}

// View implements View.
func (h *HomeView) View() string {
	avatar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorCyan)).
		Render(logo.Render(logo.Lambda, avatarCols, avatarRows))

	textWidth := max(20, h.width-lipgloss.Width(avatar)-4)
	title := Styles.Title.Render(homeTitle)
	if h.glitch {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMagenta)).Render(" "+homeTitle[:len(homeTitle)/2]) +
			lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCyan)).Render(homeTitle[len(homeTitle)/2:])
	}
	intro := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Kicker.Render(homeKicker),
		title,
		"",
		Styles.Tagline.Width(min(textWidth, 60)).Render(homeTagline),
	)
	gap := max(2, h.width-lipgloss.Width(intro)-lipgloss.Width(avatar))
	header := lipgloss.JoinHorizontal(lipgloss.Top, intro, lipgloss.NewStyle().Width(gap).Render(""), avatar)

	hub := Styles.Body.Render(homeHub)
	if h.width > 0 {
		hub = Styles.Body.Width(h.width).Align(lipgloss.Center).Render(homeHub)
	}
	return header + "\n\n\n" + hub
}
