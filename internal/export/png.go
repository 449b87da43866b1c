// Package export renders a scene to a PNG image. It draws the same
// primitives the terminal viewer does, with real vector shapes and a
// truetype face instead of cells.
package export

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/frankdc/hogview/internal/scene"
	"github.com/frankdc/hogview/internal/viewport"
)

// Palette matches the viewer theme.
var (
	colBackground  = parseHex("#11111b")
	colGrid        = parseHex("#1e1e2e")
	colNodeFill    = parseHex("#313244")
	colNodeBorder  = parseHex("#89b4fa")
	colEdge        = parseHex("#a6adc8")
	colText        = parseHex("#cdd6f4")
	colPlaceholder = parseHex("#6c7086")
)

const fontSize = 13.0

// WritePNG renders sc into a PNG file at path, framing the scene
// bounds one-to-one.
func WritePNG(sc *scene.Scene, path string) error {
	return WritePNGFit(sc, path, 0, 0)
}

// WritePNGFit renders sc like WritePNG, uniformly scaled so the image
// fits within fitW by fitH pixels. A zero dimension leaves that axis
// unconstrained; both zero means no scaling at all.
func WritePNGFit(sc *scene.Scene, path string, fitW, fitH int) error {
	b := sc.Bounds()
	if !b.Valid() {
		return fmt.Errorf("scene has no drawable bounds")
	}

	s := 1.0
	if fitW > 0 || fitH > 0 {
		s = math.Inf(1)
		if fitW > 0 {
			s = math.Min(s, float64(fitW)/b.Width())
		}
		if fitH > 0 {
			s = math.Min(s, float64(fitH)/b.Height())
		}
	}

	w := int(b.Width() * s)
	h := int(b.Height() * s)
	dc := gg.NewContext(w, h)
	dc.SetColor(colBackground)
	dc.Clear()

	// Scene coordinates -> image coordinates.
	dc.Scale(s, s)
	dc.Translate(-b.MinX, -b.MinY)

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	// Glyph size sits outside the path transform, so it scales here.
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize * s,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	drawGrid(dc, sc)

	if sc.Message != "" {
		dc.SetColor(colPlaceholder)
		c := b.Center()
		dc.DrawStringWrapped(sc.Message, c.X, c.Y, 0.5, 0.5, b.Width(), 1.4, gg.AlignCenter)
		return dc.SavePNG(path)
	}

	// Edges and arrows sit beneath nodes.
	dc.SetColor(colEdge)
	dc.SetLineWidth(1.5)
	for _, l := range sc.Lines {
		dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
		dc.Stroke()
	}
	for _, a := range sc.Arrows {
		dc.MoveTo(a.Tip.X, a.Tip.Y)
		dc.LineTo(a.Left.X, a.Left.Y)
		dc.LineTo(a.Right.X, a.Right.Y)
		dc.ClosePath()
		dc.Fill()
	}

	for _, r := range sc.Rects {
		dc.DrawRoundedRectangle(r.Rect.MinX, r.Rect.MinY, r.Rect.Width(), r.Rect.Height(), r.Radius)
		dc.SetColor(colNodeFill)
		dc.FillPreserve()
		dc.SetColor(colNodeBorder)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	dc.SetColor(colText)
	for _, t := range sc.Texts {
		c := t.Rect.Center()
		dc.DrawStringAnchored(t.S, c.X, c.Y, 0.5, 0.5)
	}

	return dc.SavePNG(path)
}

func drawGrid(dc *gg.Context, sc *scene.Scene) {
	dc.SetColor(colGrid)
	dc.SetLineWidth(0.5)
	for _, l := range viewport.GridLines(sc.Bounds(), viewport.GridSpacing) {
		dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
		dc.Stroke()
	}
}

// parseHex converts "#rrggbb" to a color; the palette is static so a
// bad constant is a programming error.
func parseHex(s string) color.Color {
	var r, g, b uint8
	fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
