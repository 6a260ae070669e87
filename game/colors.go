package game

import (
	"image/color"

	"librarydefender/sim"
)

// Color constants
var (
	colorBackground = color.RGBA{245, 238, 220, 255} // parchment
	colorMenuBack   = color.RGBA{30, 24, 40, 255}
	colorText       = color.RGBA{40, 30, 20, 255}
	colorMenuText   = color.RGBA{235, 225, 200, 255}
	colorHighlight  = color.RGBA{200, 150, 60, 255}
	colorItem       = color.RGBA{70, 60, 90, 255}
	colorWall       = color.RGBA{90, 70, 50, 255}
	colorShelf      = color.RGBA{140, 90, 40, 255}
	colorFurniture  = color.RGBA{170, 130, 90, 255}
	colorHealthBack = color.RGBA{100, 0, 0, 255}
	colorHealth     = color.RGBA{0, 200, 0, 255}
	colorShield     = color.RGBA{255, 215, 0, 255}
	colorNoise      = color.RGBA{220, 60, 40, 255}
	colorNoiseBack  = color.RGBA{60, 50, 40, 255}
	colorShush      = color.RGBA{100, 100, 255, 255}
	colorAura       = color.NRGBA{180, 220, 255, 90}
	colorFreeze     = color.NRGBA{120, 200, 255, 50}
	colorDust       = color.NRGBA{235, 225, 200, 110}
	colorBook       = color.RGBA{139, 69, 19, 255}
	colorMegaBook   = color.RGBA{255, 165, 0, 255}
)

// rgba converts a simulation color to an opaque display color
func rgba(c sim.RGB) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// fadeColor scales a color's alpha by f in [0,1]; the result is premultiplied
func fadeColor(c color.RGBA, f float64) color.RGBA {
	f = max(0, min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
