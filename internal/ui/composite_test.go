package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestOverlayLine(t *testing.T) {
	got := ansi.Strip(overlayLine("..........", "ab", 3))
	assert.Equal(t, "...ab.....", got)

	got = ansi.Strip(overlayLine("...", "abcd", 1))
	assert.Equal(t, ".abcd", got)

	got = ansi.Strip(overlayLine("....", "xy", 6))
	assert.Equal(t, "....  xy", got)

	got = ansi.Strip(overlayLine("....", "xyz", -1))
	assert.Equal(t, "yz..", got)
}

func TestOverlayBlock(t *testing.T) {
	rows := blankRows(6, 3)
	overlayBlock(rows, "ab\ncd\nef", 2, 1)
	assert.Equal(t, "      ", rows[0])
	assert.Equal(t, "  ab  ", ansi.Strip(rows[1]))
	assert.Equal(t, "  cd  ", ansi.Strip(rows[2]))
}
