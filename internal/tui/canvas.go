package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style classes for canvas cells. Runs of the same class are emitted as
// one styled chunk.
type class uint8

const (
	classNone class = iota
	classGrid
	classEdge
	classNode
	classLabel
	classPlaceholder
	classCreature
)

var classStyles = map[class]lipgloss.Style{
	classGrid:        lipgloss.NewStyle().Foreground(lipgloss.Color("#313244")),
	classEdge:        lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
	classNode:        lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
	classLabel:       lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")),
	classPlaceholder: lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")),
}

// skip marks the shadow cell behind a double-width rune.
const skip rune = 0

// canvas is a write-only grid of styled runes, one frame of the viewer.
type canvas struct {
	w, h   int
	runes  [][]rune
	styles [][]class
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h}
	c.runes = make([][]rune, h)
	c.styles = make([][]class, h)
	for y := 0; y < h; y++ {
		c.runes[y] = make([]rune, w)
		c.styles[y] = make([]class, w)
		for x := 0; x < w; x++ {
			c.runes[y][x] = ' '
		}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, cl class) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.styles[y][x] = cl
}

// setWide places a double-width rune and shadows the following cell so
// the row stays aligned.
func (c *canvas) setWide(x, y int, r rune, cl class) {
	c.set(x, y, r, cl)
	if x+1 < c.w {
		c.set(x+1, y, skip, cl)
	}
}

// text writes a clipped horizontal string.
func (c *canvas) text(x, y int, s string, cl class) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, cl)
	}
}

// line draws a Bresenham segment, choosing a glyph from the dominant
// direction of travel.
func (c *canvas) line(x0, y0, x1, y1 int, cl class) {
	g := lineGlyph(x1-x0, y1-y0)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.set(x0, y0, g, cl)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// dotted draws a segment with a fixed glyph, used for the background
// grid so it stays visually beneath everything else.
func (c *canvas) dotted(x0, y0, x1, y1 int, g rune, cl class) {
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			c.set(x0, y, g, cl)
		}
		return
	}
	if y0 > y1 {
		// Grid segments are axis-aligned; anything else is a bug in
		// the caller.
		return
	}
	for x := x0; x <= x1; x++ {
		c.set(x, y0, g, cl)
	}
}

// box draws a rounded node body. Bodies smaller than the border itself
// collapse to a single marker.
func (c *canvas) box(x0, y0, x1, y1 int, label string, cl, labelCl class) {
	w := x1 - x0
	h := y1 - y0
	if w < 2 || h < 1 {
		c.set((x0+x1)/2, (y0+y1)/2, '▫', cl)
		return
	}

	c.set(x0, y0, '╭', cl)
	c.set(x1, y0, '╮', cl)
	c.set(x0, y1, '╰', cl)
	c.set(x1, y1, '╯', cl)
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─', cl)
		c.set(x, y1, '─', cl)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│', cl)
		c.set(x1, y, '│', cl)
	}

	inner := w - 1
	if inner < 1 || label == "" {
		return
	}
	r := []rune(label)
	if len(r) > inner {
		r = r[:inner]
	}
	lx := x0 + 1 + (inner-len(r))/2
	ly := (y0 + y1) / 2
	c.text(lx, ly, string(r), labelCl)
}

// String renders the canvas with per-run styling.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		x := 0
		for x < c.w {
			if c.runes[y][x] == skip {
				x++
				continue
			}
			cl := c.styles[y][x]
			var run strings.Builder
			for x < c.w && c.styles[y][x] == cl {
				if c.runes[y][x] != skip {
					run.WriteRune(c.runes[y][x])
				}
				x++
			}
			if st, ok := classStyles[cl]; ok {
				b.WriteString(st.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// lineGlyph picks a rune for a segment by its dominant direction.
func lineGlyph(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady == 0 || adx > 2*ady:
		return '─'
	case adx == 0 || ady > 2*adx:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// arrowGlyph picks a rune for an arrowhead by the edge's direction of
// arrival at the target.
func arrowGlyph(dx, dy float64) rune {
	if absf(dy) >= absf(dx) {
		if dy >= 0 {
			return '▼'
		}
		return '▲'
	}
	if dx >= 0 {
		return '▶'
	}
	return '◀'
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
