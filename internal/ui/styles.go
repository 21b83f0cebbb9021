package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme colors used throughout the UI
const (
	ColorCyan    = "#00f0ff" // titles, active tab, rain
	ColorPink    = "#ff2a6d" // pink card borders
	ColorFuchsia = "#d946ef" // status, HUD right
	ColorMagenta = "#ff00ff" // list bullets
	ColorBlack   = "#000000" // wake overlay
	ColorNight   = "#0a0a12" // page background
	ColorText    = "#ffffff"
	ColorMuted   = "#9ca3af" // gray-400
	ColorDim     = "#6b7280" // gray-500
	ColorFaint   = "#4b5563" // gray-600
	ColorGreen   = "#4ade80"
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Frame      lipgloss.Style // main rounded frame
	TabActive  lipgloss.Style
	TabIdle    lipgloss.Style
	Status     lipgloss.Style // "SYSTEM v2.087"
	Kicker     lipgloss.Style // small cyan label above titles
	Title      lipgloss.Style
	Tagline    lipgloss.Style
	Body       lipgloss.Style
	Muted      lipgloss.Style
	Faint      lipgloss.Style
	Accent     lipgloss.Style
	Bullet     lipgloss.Style
	Nominal    lipgloss.Style
	CardTitle  lipgloss.Style
	CardHint   lipgloss.Style
	CardList   lipgloss.Style
	Rule       lipgloss.Style
	HUDLeft    lipgloss.Style
	HUDRight   lipgloss.Style
	CornerTop  lipgloss.Style
	CornerBase lipgloss.Style
}{
	Frame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#0e6d75")).
		Background(lipgloss.Color(ColorNight)).
		Padding(0, 2),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorCyan)).
		Bold(true).
		Underline(true).
		Padding(0, 2),
	TabIdle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	Status:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFuchsia)),
	Kicker:    lipgloss.NewStyle().Foreground(lipgloss.Color(blend(ColorCyan, ColorNight, 0.4))),
	Title:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)).Bold(true),
	Tagline:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Body:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim)),
	Faint:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFaint)),
	Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCyan)),
	Bullet:    lipgloss.NewStyle().Foreground(lipgloss.Color(blend(ColorMagenta, ColorNight, 0.3))),
	Nominal:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
	CardTitle: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)).Bold(true),
	CardHint:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCyan)),
	CardList:  lipgloss.NewStyle().Foreground(lipgloss.Color("#d1d5db")),
	Rule:      lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")),
	HUDLeft:   lipgloss.NewStyle().Foreground(lipgloss.Color(blend(ColorCyan, ColorNight, 0.6))),
	HUDRight:  lipgloss.NewStyle().Foreground(lipgloss.Color(blend(ColorFuchsia, ColorNight, 0.6))),
	CornerTop: lipgloss.NewStyle().Foreground(lipgloss.Color(blend(ColorCyan, ColorNight, 0.8))),
	CornerBase: lipgloss.NewStyle().
		Foreground(lipgloss.Color(blend(ColorFuchsia, ColorNight, 0.8))),
}

// blend mixes from toward to by t (0 = from, 1 = to) and returns a hex colour.
func blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	if t <= 0 {
		return a.Hex()
	}
	if t >= 1 {
		return b.Hex()
	}
	return a.BlendRgb(b, t).Clamped().Hex()
}
