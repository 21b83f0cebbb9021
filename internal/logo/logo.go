// Package logo draws the portfolio emblems as vector art and rasterises
// them into terminal half-block cells.
package logo

import (
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Logo identifies one emblem.
type Logo int

const (
	Lambda Logo = iota
	HunterXHunter
	DropoutBear
	Fsociety
)

func (l Logo) String() string {
	switch l {
	case Lambda:
		return "lambda"
	case HunterXHunter:
		return "hxh"
	case DropoutBear:
		return "dropout"
	case Fsociety:
		return "fsociety"
	default:
		return "unknown"
	}
}

// supersample is the drawing resolution multiplier before downscaling.
const supersample = 4

// Rasterize draws l into a w×h image.
func Rasterize(l Logo, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}
	vw, vh, paint := artwork(l)
	dc := gg.NewContext(w*supersample, h*supersample)
	sx := float64(w*supersample) / vw
	sy := float64(h*supersample) / vh
	paint(&canvas{dc: dc, sx: sx, sy: sy})
	draw.CatmullRom.Scale(dst, dst.Bounds(), dc.Image(), dc.Image().Bounds(), draw.Over, nil)
	return dst
}

// Cells renders img as rows of "▀" glyphs, two pixels per cell.
func Cells(img image.Image) string {
	b := img.Bounds()
	lines := make([]string, 0, (b.Dy()+1)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.At(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.At(x, y+1)
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(Hex(top))).
				Background(lipgloss.Color(Hex(bottom))).
				Render("▀"))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// Hex formats c as #rrggbb, ignoring alpha.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return colorful.Color{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}.Hex()
}

type cacheKey struct {
	logo       Logo
	cols, rows int
}

var (
	cacheMu sync.Mutex
	cache   = map[cacheKey]string{}
)

// Render returns l as a cols×rows block of terminal cells. Results are cached.
func Render(l Logo, cols, rows int) string {
	key := cacheKey{l, cols, rows}
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if s, ok := cache[key]; ok {
		return s
	}
	s := Cells(Rasterize(l, cols, rows*2))
	cache[key] = s
	return s
}
