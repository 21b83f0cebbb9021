package ui

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	matrixGlyphs  = "01アイウエオカキクケコ"
	matrixColumns = 50
	// matrixLevels quantises glyph opacity so styles can be reused.
	matrixLevels = 8
	// matrixIntensity dims the whole rain, like a 20% opacity layer.
	matrixIntensity = 0.35
)

// rainColumn is one falling strand.
type rainColumn struct {
	glyphs []rune
	delay  time.Duration
	period time.Duration // time for one full fall
}

// MatrixRain is the animated background.
type MatrixRain struct {
	columns []rainColumn
	styles  [matrixLevels + 1]lipgloss.Style
}

// NewMatrixRain builds matrixColumns strands from seed. Equal seeds yield
// identical rain.
func NewMatrixRain(seed int64) *MatrixRain {
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	glyphs := []rune(matrixGlyphs)
	m := &MatrixRain{columns: make([]rainColumn, matrixColumns)}
	for i := range m.columns {
		n := r.IntN(15) + 5
		col := rainColumn{
			glyphs: make([]rune, n),
			delay:  time.Duration(r.Float64() * float64(10*time.Second)),
			period: time.Duration((r.Float64()*10 + 5) * float64(time.Second)),
		}
		for j := range col.glyphs {
			col.glyphs[j] = glyphs[r.IntN(len(glyphs))]
		}
		m.columns[i] = col
	}
	for lvl := range m.styles {
		opacity := float64(lvl) / matrixLevels * matrixIntensity
		m.styles[lvl] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(blend(ColorNight, ColorCyan, opacity)))
	}
	return m
}

// Head returns the row of the first glyph of column i after elapsed, for a
// screen h rows tall. ok is false before the column's delay has passed.
func (m *MatrixRain) Head(i int, elapsed time.Duration, h int) (row int, ok bool) {
	col := m.columns[i]
	t := elapsed - col.delay
	if t < 0 {
		return 0, false
	}
	n := len(col.glyphs)
	frac := float64(t%col.period) / float64(col.period)
	return int(math.Floor(frac*float64(h+n))) - n, true
}

// Render draws the rain into w×h cells.
func (m *MatrixRain) Render(w, h int, elapsed time.Duration) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	spacing := max(2, w/matrixColumns)
	type cell struct {
		x     int
		glyph string
	}
	cells := make([][]cell, h)
	for i, col := range m.columns {
		x := i * spacing
		if x+2 > w {
			break
		}
		head, ok := m.Head(i, elapsed, h)
		if !ok {
			continue
		}
		n := len(col.glyphs)
		for j, g := range col.glyphs {
			y := head + j
			if y < 0 || y >= h {
				continue
			}
			opacity := 1 - float64(j)/float64(n)*0.7
			lvl := int(math.Round(opacity * matrixLevels))
			s := string(g)
			if runewidth.RuneWidth(g) < 2 {
				s += " "
			}
			cells[y] = append(cells[y], cell{x: x, glyph: m.styles[lvl].Render(s)})
		}
	}
	rows := make([]string, h)
	for y := range rows {
		var sb strings.Builder
		cursor := 0
		for _, c := range cells[y] {
			sb.WriteString(strings.Repeat(" ", c.x-cursor))
			sb.WriteString(c.glyph)
			cursor = c.x + 2
		}
		sb.WriteString(strings.Repeat(" ", max(0, w-cursor)))
		rows[y] = sb.String()
	}
	return rows
}
