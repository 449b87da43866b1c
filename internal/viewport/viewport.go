// Package viewport owns the pan/zoom transform between scene and
// screen coordinates, fit-to-content framing, and background grid
// geometry.
package viewport

import (
	"github.com/frankdc/hogview/internal/geom"
	"github.com/frankdc/hogview/internal/scene"
)

const (
	// ZoomStep is the multiplicative factor per discrete zoom-in
	// input; zoom-out uses its reciprocal, so equal numbers of ins and
	// outs cancel exactly (up to floating point).
	ZoomStep = 1.1

	// FitShrink is the deterministic zoom-out applied after framing
	// content, so it doesn't touch the edges.
	FitShrink = 0.9

	// GridSpacing is the background grid pitch in scene units.
	GridSpacing = 50.0
)

// View is the current transform: screen = scene*Scale + Offset.
type View struct {
	Scale            float64
	OffsetX, OffsetY float64
}

// NewView returns the identity transform.
func NewView() View {
	return View{Scale: 1}
}

// ToScreen maps a scene point to screen coordinates.
func (v View) ToScreen(p geom.Point) geom.Point {
	return geom.Point{X: p.X*v.Scale + v.OffsetX, Y: p.Y*v.Scale + v.OffsetY}
}

// ToScene maps a screen point back to scene coordinates.
func (v View) ToScene(p geom.Point) geom.Point {
	return geom.Point{X: (p.X - v.OffsetX) / v.Scale, Y: (p.Y - v.OffsetY) / v.Scale}
}

// Visible returns the scene rectangle covered by a w-by-h screen.
func (v View) Visible(w, h float64) geom.Rect {
	tl := v.ToScene(geom.Point{})
	br := v.ToScene(geom.Point{X: w, Y: h})
	return geom.Rect{MinX: tl.X, MinY: tl.Y, MaxX: br.X, MaxY: br.Y}
}

// FitToContent frames bounds inside a w-by-h screen: uniform scale
// preserving aspect ratio, content centered, then one FitShrink step.
func (v *View) FitToContent(bounds geom.Rect, w, h float64) {
	if !bounds.Valid() || w <= 0 || h <= 0 {
		v.Scale = 1
		v.OffsetX = w / 2
		v.OffsetY = h / 2
		return
	}

	sx := w / bounds.Width()
	sy := h / bounds.Height()
	s := sx
	if sy < s {
		s = sy
	}
	s *= FitShrink

	v.Scale = s
	c := bounds.Center()
	v.OffsetX = w/2 - c.X*s
	v.OffsetY = h/2 - c.Y*s
}

// Zoom scales the view by factor around a fixed screen anchor, so the
// scene point under the anchor stays put. Factors compose
// multiplicatively.
func (v *View) Zoom(factor float64, anchor geom.Point) {
	v.Scale *= factor
	v.OffsetX = anchor.X - (anchor.X-v.OffsetX)*factor
	v.OffsetY = anchor.Y - (anchor.Y-v.OffsetY)*factor
}

// Pan shifts the view by a screen-space delta.
func (v *View) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// GridLines returns the background grid for a visible scene rectangle:
// vertical and horizontal lines at GridSpacing, aligned to multiples of
// the spacing and independent of pan/zoom except for which lines fall
// inside the rectangle.
func GridLines(visible geom.Rect, spacing float64) []scene.Line {
	if spacing <= 0 || !visible.Valid() {
		return nil
	}

	left := float64(int(visible.MinX) - int(visible.MinX)%int(spacing))
	top := float64(int(visible.MinY) - int(visible.MinY)%int(spacing))

	var lines []scene.Line
	for x := left; x < visible.MaxX; x += spacing {
		lines = append(lines, scene.Line{X1: x, Y1: visible.MinY, X2: x, Y2: visible.MaxY, Depth: scene.DepthGrid})
	}
	for y := top; y < visible.MaxY; y += spacing {
		lines = append(lines, scene.Line{X1: visible.MinX, Y1: y, X2: visible.MaxX, Y2: y, Depth: scene.DepthGrid})
	}
	return lines
}
