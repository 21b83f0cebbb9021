package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayLine writes fg over base starting at cell x. base keeps its
// cells to the left and right of fg.
func overlayLine(base, fg string, x int) string {
	if x < 0 {
		fg = ansi.TruncateLeft(fg, -x, "")
		x = 0
	}
	left := ansi.Truncate(base, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	fw := ansi.StringWidth(fg)
	right := ansi.TruncateLeft(base, x+fw, "")
	return left + fg + ansi.ResetStyle + right
}

// overlayBlock writes every line of block onto rows starting at (x, y).
// Lines that fall outside rows are dropped.
func overlayBlock(rows []string, block string, x, y int) {
	for i, line := range strings.Split(block, "\n") {
		r := y + i
		if r < 0 || r >= len(rows) {
			continue
		}
		rows[r] = overlayLine(rows[r], line, x)
	}
}

// blankRows returns h rows of w spaces.
func blankRows(w, h int) []string {
	rows := make([]string, h)
	line := strings.Repeat(" ", max(w, 0))
	for i := range rows {
		rows[i] = line
	}
	return rows
}
