package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cyberfolio/internal/ui/textutil"
)

const (
	statusLabel   = "SYSTEM v2.087"
	footerCraft   = "CRAFTED WITH NEURAL PRECISION"
	footerNominal = "ALL SYSTEMS NOMINAL"
	tabGap        = 2
)

// tabHit is the horizontal extent of a nav tab, relative to the nav line.
type tabHit struct {
	x, width int
	section  Section
}

// renderNav draws the tab bar and returns the tab extents.
func renderNav(active Section, pulse string, width int) (string, []tabHit) {
	var (
		parts []string
		hits  []tabHit
		x     int
	)
	for i, s := range Sections {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", tabGap))
			x += tabGap
		}
		style := Styles.TabIdle
		if s == active {
			style = Styles.TabActive
		}
		label := style.Render(s.String())
		w := lipgloss.Width(label)
		hits = append(hits, tabHit{x: x, width: w, section: s})
		parts = append(parts, label)
		x += w
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	status := Styles.Status.Render(pulse + " " + statusLabel)
	line := textutil.Spread(tabs, status, width)
	rule := Styles.Rule.Render(strings.Repeat("─", max(width, 0)))
	return line + "\n" + rule, hits
}

// renderFooter draws the page footer.
func renderFooter(width int) string {
	left := Styles.Accent.Faint(true).Render("<>") + " " +
		Styles.Muted.Render(footerCraft) + " " +
		Styles.Bullet.Render("</>")
	right := Styles.Nominal.Render("●") + " " + Styles.Muted.Render(footerNominal)
	rule := Styles.Rule.Render(strings.Repeat("─", max(width, 0)))
	return rule + "\n" + textutil.Spread(left, right, width)
}

// hudLeft is the crosshair readout anchored bottom-left.
func hudLeft() string {
	return Styles.HUDLeft.Render("─┼─ X: 0042 Y: 0087")
}

// hudRight is the power/network readout anchored bottom-right.
func hudRight() string {
	return Styles.HUDRight.Render("PWR: ████████░░ 82%\nNET: ██████████ 100%")
}

// drawCorners paints the four corner brackets onto rows.
func drawCorners(rows []string, width int) {
	h := len(rows)
	if h < 4 || width < 8 {
		return
	}
	overlayBlock(rows, Styles.CornerTop.Render("┏━━"), 0, 0)
	overlayBlock(rows, Styles.CornerTop.Render("┃"), 0, 1)
	overlayBlock(rows, Styles.CornerTop.Render("━━┓"), width-3, 0)
	overlayBlock(rows, Styles.CornerTop.Render("┃"), width-1, 1)
	overlayBlock(rows, Styles.CornerBase.Render("┃"), 0, h-2)
	overlayBlock(rows, Styles.CornerBase.Render("┗━━"), 0, h-1)
	overlayBlock(rows, Styles.CornerBase.Render("┃"), width-1, h-2)
	overlayBlock(rows, Styles.CornerBase.Render("━━┛"), width-3, h-1)
}
