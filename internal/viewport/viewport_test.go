package viewport

import (
	"math"
	"testing"

	"github.com/frankdc/hogview/internal/geom"
	"github.com/frankdc/hogview/internal/scene"
)

func TestZoomInvertibility(t *testing.T) {
	v := NewView()
	v.Pan(37, -12)
	orig := v

	anchor := geom.Point{X: 400, Y: 300}
	for i := 0; i < 7; i++ {
		v.Zoom(ZoomStep, anchor)
	}
	for i := 0; i < 7; i++ {
		v.Zoom(1/ZoomStep, anchor)
	}

	if math.Abs(v.Scale-orig.Scale) > 1e-9 {
		t.Errorf("scale drifted: %v vs %v", v.Scale, orig.Scale)
	}
	if math.Abs(v.OffsetX-orig.OffsetX) > 1e-9 || math.Abs(v.OffsetY-orig.OffsetY) > 1e-9 {
		t.Errorf("offset drifted: (%v,%v) vs (%v,%v)", v.OffsetX, v.OffsetY, orig.OffsetX, orig.OffsetY)
	}
}

func TestZoomAnchorInvariance(t *testing.T) {
	v := NewView()
	v.Pan(50, 80)

	anchor := geom.Point{X: 320, Y: 240}
	under := v.ToScene(anchor)

	v.Zoom(ZoomStep, anchor)
	after := v.ToScene(anchor)

	if math.Abs(after.X-under.X) > 1e-9 || math.Abs(after.Y-under.Y) > 1e-9 {
		t.Errorf("scene point under anchor moved: %+v vs %+v", after, under)
	}
}

func TestToScreenToSceneRoundtrip(t *testing.T) {
	v := View{Scale: 1.331, OffsetX: -42, OffsetY: 17}
	p := geom.Point{X: 123.4, Y: -567.8}

	back := v.ToScene(v.ToScreen(p))
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
		t.Errorf("roundtrip moved the point: %+v vs %+v", back, p)
	}
}

func TestFitToContent(t *testing.T) {
	v := NewView()
	bounds := geom.Rect{MinX: -50, MinY: -50, MaxX: 750, MaxY: 350}
	w, h := 800.0, 600.0

	v.FitToContent(bounds, w, h)

	sx := w / bounds.Width()
	sy := h / bounds.Height()
	want := math.Min(sx, sy) * FitShrink
	if math.Abs(v.Scale-want) > 1e-9 {
		t.Errorf("scale = %v, want %v", v.Scale, want)
	}

	// Content center lands on the screen center.
	c := v.ToScreen(bounds.Center())
	if math.Abs(c.X-w/2) > 1e-9 || math.Abs(c.Y-h/2) > 1e-9 {
		t.Errorf("center at (%v,%v), want (%v,%v)", c.X, c.Y, w/2, h/2)
	}

	// The framed content stays inside the screen.
	tl := v.ToScreen(geom.Point{X: bounds.MinX, Y: bounds.MinY})
	br := v.ToScreen(geom.Point{X: bounds.MaxX, Y: bounds.MaxY})
	if tl.X < 0 || tl.Y < 0 || br.X > w || br.Y > h {
		t.Errorf("content spills out: tl=%+v br=%+v", tl, br)
	}
}

func TestFitToContentDegenerate(t *testing.T) {
	v := NewView()
	v.FitToContent(geom.Rect{}, 800, 600)

	if v.Scale != 1 {
		t.Errorf("scale = %v, want 1", v.Scale)
	}
	if v.OffsetX != 400 || v.OffsetY != 300 {
		t.Errorf("offset = (%v,%v), want screen center", v.OffsetX, v.OffsetY)
	}
}

func TestGridLinesAlignment(t *testing.T) {
	visible := geom.Rect{MinX: 130, MinY: 270, MaxX: 430, MaxY: 470}
	lines := GridLines(visible, GridSpacing)

	if len(lines) == 0 {
		t.Fatal("no grid lines for a valid rectangle")
	}
	for _, ln := range lines {
		if ln.Depth != scene.DepthGrid {
			t.Fatalf("grid line at depth %d", ln.Depth)
		}
		if ln.X1 == ln.X2 {
			if math.Mod(ln.X1, GridSpacing) != 0 {
				t.Errorf("vertical line at x=%v not on the grid", ln.X1)
			}
		} else if math.Mod(ln.Y1, GridSpacing) != 0 {
			t.Errorf("horizontal line at y=%v not on the grid", ln.Y1)
		}
	}
}

func TestGridLinesStableUnderPan(t *testing.T) {
	// The same grid coordinates appear whichever window covers them.
	a := GridLines(geom.Rect{MinX: 0, MinY: 0, MaxX: 200, MaxY: 200}, GridSpacing)
	b := GridLines(geom.Rect{MinX: 70, MinY: 70, MaxX: 270, MaxY: 270}, GridSpacing)

	xs := map[float64]bool{}
	for _, ln := range a {
		if ln.X1 == ln.X2 {
			xs[ln.X1] = true
		}
	}
	for _, ln := range b {
		if ln.X1 == ln.X2 && ln.X1 >= 100 && ln.X1 <= 200 {
			if !xs[ln.X1] {
				t.Errorf("line at x=%v missing from the overlapping window", ln.X1)
			}
		}
	}
}

func TestGridLinesInvalidInput(t *testing.T) {
	if got := GridLines(geom.Rect{MinX: 10, MinY: 10, MaxX: 5, MaxY: 5}, GridSpacing); got != nil {
		t.Errorf("invalid rect: got %d lines", len(got))
	}
	if got := GridLines(geom.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}, 0); got != nil {
		t.Errorf("zero spacing: got %d lines", len(got))
	}
}
