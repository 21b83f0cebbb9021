package logo

// artwork returns the viewBox size and painter for l.
func artwork(l Logo) (w, h float64, paint func(*canvas)) {
	switch l {
	case HunterXHunter:
		return 200, 150, paintHunter
	case DropoutBear:
		return 200, 150, paintBear
	case Fsociety:
		return 200, 150, paintMask
	default:
		return 64, 64, paintLambda
	}
}

const (
	cyan    = "#00f0ff"
	magenta = "#ff00ff"
	pink    = "#ff2a6d"
	night   = "#0a0a15"
)

func paintLambda(c *canvas) {
	c.rect(0, 0, 64, 64, "#111827")
	c.ring(32, 32, 28, 2, cyan, 0.3)
	c.ring(32, 32, 24, 1, cyan, 0.5)
	c.glyph("λ", 32, 34, 40, cyan)
	c.circle(50, 14, 4, magenta, 0.8)
	c.line(8, 32, 4, 32, 1, cyan, 0.4)
	c.line(56, 32, 60, 32, 1, cyan, 0.4)
}

func paintHunter(c *canvas) {
	c.rect(0, 0, 200, 150, night)
	c.line(40, 20, 160, 130, 5, pink, 0.5)
	c.line(160, 20, 40, 130, 5, pink, 0.5)

	c.dc.SetLineCapRound()
	for _, x := range []float64{40, 70, 130, 160} {
		c.line(x, 40, x, 110, 8, cyan, 1)
	}
	c.line(40, 75, 70, 75, 8, cyan, 1)
	c.line(130, 75, 160, 75, 8, cyan, 1)

	c.line(90, 65, 110, 85, 4, magenta, 1)
	c.line(110, 65, 90, 85, 4, magenta, 1)
	c.dc.SetLineCapButt()
}

func paintBear(c *canvas) {
	const (
		brown = "#8b4513"
		tan   = "#cd853f"
		gold  = "#ffd700"
	)
	c.rect(0, 0, 200, 150, night)

	c.circle(55, 45, 15, gold, 1)
	c.circle(55, 45, 13, brown, 1)
	c.circle(55, 45, 8, tan, 1)
	c.circle(145, 45, 15, gold, 1)
	c.circle(145, 45, 13, brown, 1)
	c.circle(145, 45, 8, tan, 1)

	c.quadLoop(brown, [2]float64{60, 50},
		[4]float64{100, 30, 140, 50},
		[4]float64{150, 80, 140, 100},
		[4]float64{100, 120, 60, 100},
		[4]float64{50, 80, 60, 50},
	)
	c.quadLoop(tan, [2]float64{70, 60},
		[4]float64{100, 50, 130, 60},
		[4]float64{135, 80, 130, 95},
		[4]float64{100, 105, 70, 95},
		[4]float64{65, 80, 70, 60},
	)

	for _, x := range []float64{85, 115} {
		c.circle(x, 70, 10, "#ffffff", 1)
		c.circle(x, 70, 3, "#000000", 1)
	}
	c.ellipse(100, 85, 15, 10, "#deb887")
	c.ellipse(100, 82, 6, 4, "#000000")
	c.quad(90, 95, 100, 105, 110, 95, 2, "#000000")

	c.setColor(magenta, 0.3)
	c.dc.DrawRoundedRectangle(c.x(75), c.y(65), c.x(50), c.y(15), c.w(2))
	c.dc.Fill()
	c.line(40, 72, 160, 72, 1, magenta, 0.5)
}

func paintMask(c *canvas) {
	c.rect(0, 0, 200, 150, night)

	c.quadLoop("#fdfdfd", [2]float64{60, 40},
		[4]float64{100, 30, 140, 40},
		[4]float64{155, 80, 140, 115},
		[4]float64{100, 135, 60, 115},
		[4]float64{45, 80, 60, 40},
	)

	// hat
	c.dc.MoveTo(c.x(65), c.y(35))
	c.dc.LineTo(c.x(135), c.y(35))
	c.dc.LineTo(c.x(125), c.y(10))
	c.dc.LineTo(c.x(75), c.y(10))
	c.dc.ClosePath()
	c.setColor("#000000", 1)
	c.dc.Fill()
	c.rect(55, 35, 90, 7, "#000000")

	c.circle(75, 95, 12, "#ff4d4d", 0.35)
	c.circle(125, 95, 12, "#ff4d4d", 0.35)

	for _, x := range []float64{70, 100} {
		c.quadLoop("#ffffff", [2]float64{x, 65},
			[4]float64{x + 15, 55, x + 30, 65},
			[4]float64{x + 15, 75, x, 65},
		)
		c.circle(x+15, 65, 3, "#000000", 1)
	}
	c.quad(72, 58, 85, 52, 98, 58, 2, "#000000")
	c.quad(102, 58, 115, 52, 128, 58, 2, "#000000")

	c.quadLoop("#000000", [2]float64{75, 100},
		[4]float64{100, 85, 125, 100},
		[4]float64{145, 95, 150, 110},
		[4]float64{125, 105, 100, 100},
		[4]float64{75, 105, 50, 110},
		[4]float64{55, 95, 75, 100},
	)
	c.quad(85, 115, 100, 125, 115, 115, 1.5, "#000000")

	c.rect(50, 70, 100, 1, cyan)
	c.rect(50, 100, 100, 1, magenta)
}
