// Package textutil provides cell-width text helpers. Styled input is
// measured and cut without counting its escape sequences.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TruncateEllipsis is appended when text is cut short.
const TruncateEllipsis = "…"

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth cells, ending in an ellipsis when
// anything was removed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, TruncateEllipsis)
}

// Center pads s on both sides to width cells; extra space goes right.
func Center(s string, width int) string {
	s = Truncate(s, width)
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Spread places left and right at opposite ends of width cells.
func Spread(left, right string, width int) string {
	gap := width - Width(left) - Width(right)
	if gap < 1 {
		return Truncate(left+" "+right, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

// Letterspace inserts one space between the runes of s.
func Letterspace(s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	var sb strings.Builder
	for i, r := range runes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
