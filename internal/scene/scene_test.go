package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/frankdc/hogview/internal/dot"
	"github.com/frankdc/hogview/internal/layout"
	"github.com/frankdc/hogview/internal/model"
)

func buildGraph(t *testing.T, text string) *model.Graph {
	t.Helper()
	g := model.Build(dot.Parse(text))
	layout.Apply(g)
	return g
}

func TestTruncateLabel(t *testing.T) {
	long := strings.Repeat("x", 5) + strings.Repeat("y", 20) // len 25
	got := TruncateLabel(long)
	want := "..." + strings.Repeat("y", 20)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	short := strings.Repeat("a", 20)
	if TruncateLabel(short) != short {
		t.Errorf("labels of length <= %d must pass through unchanged", MaxLabelLen)
	}
	if TruncateLabel("") != "" {
		t.Error("empty label must pass through")
	}
}

func TestRenderNodes(t *testing.T) {
	g := buildGraph(t, "\"A\" [label=\"main\"]\n\"B\" [label=\"run\"]")
	sc := Render(g)

	if len(sc.Rects) != 2 || len(sc.Texts) != 2 {
		t.Fatalf("expected 2 rects and 2 texts, got %d/%d", len(sc.Rects), len(sc.Texts))
	}
	if sc.Message != "" {
		t.Error("graph scene must not carry a placeholder message")
	}
	r := sc.Rects[0].Rect
	if r.Width() != model.NodeWidth || r.Height() != model.NodeHeight {
		t.Errorf("node shape must be fixed-size, got %vx%v", r.Width(), r.Height())
	}
}

func TestRenderEdgeEndpoints(t *testing.T) {
	g := buildGraph(t, "\"A\" [label=\"a\"]\n\"B\" [label=\"b\"]\n\"A\" -> \"B\"")
	sc := Render(g)

	if len(sc.Lines) != 1 || len(sc.Arrows) != 1 {
		t.Fatalf("expected 1 line and 1 arrow, got %d/%d", len(sc.Lines), len(sc.Arrows))
	}

	a := g.Lookup("A")
	b := g.Lookup("B")
	l := sc.Lines[0]
	if l.X1 != a.X+model.NodeWidth/2 || l.Y1 != a.Y+model.NodeHeight {
		t.Errorf("edge must leave the source bottom-center, got (%v,%v)", l.X1, l.Y1)
	}
	if l.X2 != b.X+model.NodeWidth/2 || l.Y2 != b.Y {
		t.Errorf("edge must enter the target top-center, got (%v,%v)", l.X2, l.Y2)
	}
	if sc.Arrows[0].Tip.X != l.X2 || sc.Arrows[0].Tip.Y != l.Y2 {
		t.Error("arrowhead must be anchored at the target point")
	}
}

func TestRenderDropsDanglingEdges(t *testing.T) {
	g := buildGraph(t, "\"A\" [label=\"a\"]\n\"B\" [label=\"b\"]\n\"A\" -> \"C\"")
	sc := Render(g)

	if g.EdgeCount() != 1 {
		t.Fatal("model must retain the dangling edge")
	}
	if len(sc.Lines) != 0 || len(sc.Arrows) != 0 {
		t.Errorf("dangling edge must not render, got %d lines %d arrows", len(sc.Lines), len(sc.Arrows))
	}
}

func TestRenderDepthOrder(t *testing.T) {
	g := buildGraph(t, "\"A\" [label=\"a\"]\n\"B\" [label=\"b\"]\n\"A\" -> \"B\"")
	sc := Render(g)

	if sc.Lines[0].Depth >= sc.Rects[0].Depth {
		t.Error("edges must sit beneath nodes")
	}
	if sc.Arrows[0].Depth >= sc.Rects[0].Depth {
		t.Error("arrows must sit beneath nodes")
	}
}

func TestArrowGeometry(t *testing.T) {
	// Straight-down edge: back corners sit above the tip, offset
	// symmetrically by sin/cos of 30 degrees times the arrow length.
	a := arrowAt(0, 0, 0, 100)

	wantDY := math.Cos(math.Pi/6) * ArrowSize
	wantDX := math.Sin(math.Pi/6) * ArrowSize

	if math.Abs(a.Tip.Y-a.Left.Y-wantDY) > 1e-9 {
		t.Errorf("left corner vertical offset: got %v, want %v", a.Tip.Y-a.Left.Y, wantDY)
	}
	if math.Abs(a.Left.X+a.Right.X) > 1e-9 {
		t.Errorf("back corners must be symmetric about the edge, got %v and %v", a.Left.X, a.Right.X)
	}
	if math.Abs(math.Abs(a.Left.X)-wantDX) > 1e-9 {
		t.Errorf("left corner horizontal offset: got %v, want %v", math.Abs(a.Left.X), wantDX)
	}
}

func TestRenderBounds(t *testing.T) {
	g := buildGraph(t, "\"A\" [label=\"a\"]")
	sc := Render(g)

	b := sc.Bounds()
	if b.MinX != -GraphMargin || b.MinY != -GraphMargin {
		t.Errorf("bounds must be padded by the graph margin, got %+v", b)
	}
	if b.MaxX != model.NodeWidth+GraphMargin || b.MaxY != model.NodeHeight+GraphMargin {
		t.Errorf("bounds max wrong: %+v", b)
	}
}

func TestRenderPlaceholder(t *testing.T) {
	sc := RenderPlaceholder("nothing here")

	if sc.Message != "nothing here" {
		t.Errorf("got message %q", sc.Message)
	}
	if len(sc.Rects)+len(sc.Lines)+len(sc.Arrows)+len(sc.Texts) != 0 {
		t.Error("placeholder scene must carry no graph drawables")
	}
	if !sc.Bounds().Valid() {
		t.Error("placeholder scene still needs bounds for sprite confinement")
	}
	c := sc.Bounds().Center()
	if c.X != 0 || c.Y != 0 {
		t.Errorf("placeholder bounds must be centered on the origin, got %+v", c)
	}
}
