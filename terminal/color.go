package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/render"
)

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB; ColorDefault maps to black
func TcellToRGB(c tcell.Color) render.RGB {
	if c == tcell.ColorDefault {
		return render.RGBBlack
	}
	r, g, b := c.RGB()
	return render.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}
