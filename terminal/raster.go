package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/vmath"
)

// Glyphs used for rasterized geometry
const (
	runeFill       = '█'
	runeDot        = '·'
	runeHorizontal = '-'
	runeVertical   = '|'
	runeRising     = '/'
	runeFalling    = '\\'
)

// Backend draws render batches onto a tcell screen
// Submit clears and draws; the caller shows the screen
type Backend struct {
	screen tcell.Screen
	bg     tcell.Style
}

// NewBackend wraps an initialized screen
func NewBackend(screen tcell.Screen) *Backend {
	return &Backend{
		screen: screen,
		bg:     tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// Screen returns the screen size in pixels for cells of cellW x cellH pixels
func (b *Backend) Screen(cellW, cellH float64) (float64, float64) {
	w, h := b.screen.Size()
	return float64(w) * cellW, float64(h) * cellH
}

type cell struct{ x, y int }

func (b *Backend) toCell(p vmath.V2, w, h int) cell {
	return cell{
		x: int(math.Floor((p.X + 1) * 0.5 * float64(w))),
		y: int(math.Floor((1 - p.Y) * 0.5 * float64(h))),
	}
}

func (b *Backend) set(c cell, r rune, style tcell.Style, w, h int) {
	if c.x < 0 || c.y < 0 || c.x >= w || c.y >= h {
		return
	}
	b.screen.SetContent(c.x, c.y, r, nil, style)
}

func (b *Backend) Submit(batch *render.Batch) {
	b.screen.SetStyle(b.bg)
	b.screen.Clear()
	w, h := b.screen.Size()
	if w == 0 || h == 0 {
		return
	}

	qv, qi := batch.Quads()
	for k := 0; k+2 < len(qi); k += 3 {
		b.fillTriangle(qv[qi[k]], qv[qi[k+1]], qv[qi[k+2]], w, h)
	}

	lv, li := batch.Lines()
	for k := 0; k+1 < len(li); k += 2 {
		b.drawLine(lv[li[k]], lv[li[k+1]], w, h)
	}
}

// drawLine is Bresenham over cells with a glyph chosen by slope
func (b *Backend) drawLine(v0, v1 render.Vertex, w, h int) {
	style := b.bg.Foreground(RGBToTcell(v0.Color))
	c0, c1 := b.toCell(v0.P, w, h), b.toCell(v1.P, w, h)

	dx := abs(c1.x - c0.x)
	dy := -abs(c1.y - c0.y)
	sx, sy := 1, 1
	if c0.x > c1.x {
		sx = -1
	}
	if c0.y > c1.y {
		sy = -1
	}

	r := slopeRune(c1.x-c0.x, c1.y-c0.y)
	err := dx + dy
	x, y := c0.x, c0.y
	for {
		b.set(cell{x, y}, r, style, w, h)
		if x == c1.x && y == c1.y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// slopeRune picks a glyph for a cell-space direction; cell y grows downward
func slopeRune(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady*2 < adx:
		return runeHorizontal
	case adx*2 < ady:
		return runeVertical
	case (dx > 0) == (dy > 0):
		return runeFalling
	default:
		return runeRising
	}
}

// fillTriangle fills cells whose centers fall inside the triangle
// Triangles smaller than a cell still mark the cell under their centroid
func (b *Backend) fillTriangle(a, bv, c render.Vertex, w, h int) {
	style := b.bg.Foreground(RGBToTcell(a.Color))
	fw, fh := float64(w), float64(h)
	toCellSpace := func(p vmath.V2) vmath.V2 {
		return vmath.V2{X: (p.X + 1) * 0.5 * fw, Y: (1 - p.Y) * 0.5 * fh}
	}
	p0, p1, p2 := toCellSpace(a.P), toCellSpace(bv.P), toCellSpace(c.P)

	minX := int(math.Floor(min(p0.X, p1.X, p2.X)))
	maxX := int(math.Ceil(max(p0.X, p1.X, p2.X)))
	minY := int(math.Floor(min(p0.Y, p1.Y, p2.Y)))
	maxY := int(math.Ceil(max(p0.Y, p1.Y, p2.Y)))
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, w-1), min(maxY, h-1)

	area := p1.Sub(p0).Cross(p2.Sub(p0))
	filled := false
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			q := vmath.V2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			w0 := p1.Sub(q).Cross(p2.Sub(q))
			w1 := p2.Sub(q).Cross(p0.Sub(q))
			w2 := p0.Sub(q).Cross(p1.Sub(q))
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				b.screen.SetContent(x, y, runeFill, nil, style)
				filled = true
			}
		}
	}
	if !filled {
		centroid := p0.Add(p1).Add(p2).Scale(1.0 / 3)
		b.set(cell{int(math.Floor(centroid.X)), int(math.Floor(centroid.Y))}, runeDot, style, w, h)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
