package logo

import (
	"image/color"
	"log"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// canvas maps viewBox coordinates onto a gg context.
type canvas struct {
	dc     *gg.Context
	sx, sy float64
}

func (c *canvas) x(v float64) float64 { return v * c.sx }
func (c *canvas) y(v float64) float64 { return v * c.sy }
func (c *canvas) w(v float64) float64 { return v * (c.sx + c.sy) / 2 }

func (c *canvas) rect(x, y, w, h float64, hex string) {
	c.setColor(hex, 1)
	c.dc.DrawRectangle(c.x(x), c.y(y), c.x(w), c.y(h))
	c.dc.Fill()
}

func (c *canvas) line(x1, y1, x2, y2, width float64, hex string, alpha float64) {
	c.setColor(hex, alpha)
	c.dc.SetLineWidth(c.w(width))
	c.dc.DrawLine(c.x(x1), c.y(y1), c.x(x2), c.y(y2))
	c.dc.Stroke()
}

func (c *canvas) circle(cx, cy, r float64, fill string, alpha float64) {
	c.setColor(fill, alpha)
	c.dc.DrawEllipse(c.x(cx), c.y(cy), c.x(r), c.y(r))
	c.dc.Fill()
}

func (c *canvas) ring(cx, cy, r, width float64, stroke string, alpha float64) {
	c.setColor(stroke, alpha)
	c.dc.SetLineWidth(c.w(width))
	c.dc.DrawEllipse(c.x(cx), c.y(cy), c.x(r), c.y(r))
	c.dc.Stroke()
}

func (c *canvas) ellipse(cx, cy, rx, ry float64, fill string) {
	c.setColor(fill, 1)
	c.dc.DrawEllipse(c.x(cx), c.y(cy), c.x(rx), c.y(ry))
	c.dc.Fill()
}

// quadLoop fills a closed path of quadratic segments: start, then
// (control, end) pairs.
func (c *canvas) quadLoop(fill string, start [2]float64, segs ...[4]float64) {
	c.dc.MoveTo(c.x(start[0]), c.y(start[1]))
	for _, s := range segs {
		c.dc.QuadraticTo(c.x(s[0]), c.y(s[1]), c.x(s[2]), c.y(s[3]))
	}
	c.dc.ClosePath()
	c.setColor(fill, 1)
	c.dc.Fill()
}

func (c *canvas) quad(x1, y1, cx, cy, x2, y2, width float64, stroke string) {
	c.dc.MoveTo(c.x(x1), c.y(y1))
	c.dc.QuadraticTo(c.x(cx), c.y(cy), c.x(x2), c.y(y2))
	c.setColor(stroke, 1)
	c.dc.SetLineWidth(c.w(width))
	c.dc.Stroke()
}

func (c *canvas) glyph(s string, cx, cy, size float64, hex string) {
	face := monoFace(c.y(size))
	if face == nil {
		return
	}
	c.dc.SetFontFace(face)
	c.setColor(hex, 1)
	c.dc.DrawStringAnchored(s, c.x(cx), c.y(cy), 0.5, 0.5)
}

func (c *canvas) setColor(hex string, alpha float64) {
	rgb := parseHex(hex)
	c.dc.SetRGBA(float64(rgb.R)/255, float64(rgb.G)/255, float64(rgb.B)/255, alpha)
}

// parseHex decodes #rrggbb. Malformed input paints black.
func parseHex(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

var (
	monoOnce sync.Once
	monoFont *truetype.Font
)

func monoFace(size float64) font.Face {
	monoOnce.Do(func() {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			log.Printf("logo: parse font: %v", err)
			return
		}
		monoFont = f
	})
	if monoFont == nil {
		return nil
	}
	return truetype.NewFace(monoFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
