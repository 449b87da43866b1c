// Package scene converts a laid-out graph into drawable primitives and
// owns the Empty/Placeholder/Graph state machine for the visualization
// area. Renderers (terminal and PNG) consume the primitives; they never
// touch the model directly.
package scene

import (
	"math"
	"strings"

	"github.com/frankdc/hogview/internal/geom"
	"github.com/frankdc/hogview/internal/model"
)

const (
	CornerRadius = 8.0
	ArrowSize    = 10.0

	// Labels longer than this are shown by suffix: "..." + last
	// MaxLabelLen characters.
	MaxLabelLen = 20

	// Content bounds padding around a rendered graph, and the larger
	// padding used around a placeholder message.
	GraphMargin       = 50.0
	PlaceholderMargin = 100.0

	// Rough glyph cell used to size placeholder text, which has no
	// layout of its own.
	charW = 8.0
	charH = 18.0
)

// Depth layers. Edges and arrows sit beneath nodes.
const (
	DepthGrid  = -2
	DepthEdge  = -1
	DepthNode  = 0
	DepthLabel = 1
)

// RoundedRect is a node body.
type RoundedRect struct {
	Rect   geom.Rect
	Radius float64
	Depth  int
}

// Text is a string centered inside a rectangle.
type Text struct {
	S     string
	Rect  geom.Rect
	Depth int
}

// Line is a straight edge segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Depth          int
}

// Arrow is a filled triangle anchored at the target end of an edge.
type Arrow struct {
	Tip, Left, Right geom.Point
	Depth            int
}

// Scene is one drawable frame: either graph content or a single
// centered placeholder message, never both.
type Scene struct {
	Rects  []RoundedRect
	Texts  []Text
	Lines  []Line
	Arrows []Arrow

	// Message is the placeholder text. Non-empty means the scene has
	// no graph content.
	Message string

	bounds geom.Rect
}

// Bounds returns the padded content rectangle, used for fit-to-content
// and for confining creature sprites.
func (s *Scene) Bounds() geom.Rect { return s.bounds }

// TruncateLabel applies the display policy for long labels: keep the
// last MaxLabelLen characters and prefix an ellipsis marker. Labels are
// shown by suffix, not prefix.
func TruncateLabel(label string) string {
	r := []rune(label)
	if len(r) <= MaxLabelLen {
		return label
	}
	return "..." + string(r[len(r)-MaxLabelLen:])
}

// Render converts a laid-out graph into drawables. Every node becomes a
// fixed-size rounded shape with its (truncated) label centered inside.
// Every edge whose endpoints both exist becomes a line from the
// bottom-center of the source to the top-center of the target plus an
// arrowhead; edges referencing unknown identities are skipped silently.
func Render(g *model.Graph) *Scene {
	s := &Scene{}

	for _, n := range g.Nodes() {
		r := geom.RectAt(n.X, n.Y, model.NodeWidth, model.NodeHeight)
		s.Rects = append(s.Rects, RoundedRect{Rect: r, Radius: CornerRadius, Depth: DepthNode})
		s.Texts = append(s.Texts, Text{S: TruncateLabel(n.Label), Rect: r, Depth: DepthLabel})
		s.bounds = s.bounds.Union(r)
	}

	for _, e := range g.Edges {
		from := g.Lookup(e.From)
		to := g.Lookup(e.To)
		if from == nil || to == nil {
			continue
		}
		x1 := from.X + model.NodeWidth/2
		y1 := from.Y + model.NodeHeight
		x2 := to.X + model.NodeWidth/2
		y2 := to.Y
		s.Lines = append(s.Lines, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Depth: DepthEdge})
		s.Arrows = append(s.Arrows, arrowAt(x1, y1, x2, y2))
	}

	s.bounds = s.bounds.Pad(GraphMargin)
	return s
}

// arrowAt computes the filled triangle for the target end of an edge.
// The two back vertices are the tip pulled back by ArrowSize along
// directions rotated ±30° from the edge angle.
func arrowAt(x1, y1, x2, y2 float64) Arrow {
	angle := math.Atan2(y2-y1, x2-x1)
	return Arrow{
		Tip: geom.Point{X: x2, Y: y2},
		Left: geom.Point{
			X: x2 - math.Cos(angle-math.Pi/6)*ArrowSize,
			Y: y2 - math.Sin(angle-math.Pi/6)*ArrowSize,
		},
		Right: geom.Point{
			X: x2 - math.Cos(angle+math.Pi/6)*ArrowSize,
			Y: y2 - math.Sin(angle+math.Pi/6)*ArrowSize,
		},
		Depth: DepthEdge,
	}
}

// RenderPlaceholder produces a scene holding only a centered message.
func RenderPlaceholder(message string) *Scene {
	w, h := measure(message)
	r := geom.RectAt(-w/2, -h/2, w, h)
	return &Scene{
		Message: message,
		bounds:  r.Pad(PlaceholderMargin),
	}
}

// measure estimates the extent of a multi-line message using a fixed
// glyph cell; placeholder text is never laid out precisely.
func measure(message string) (w, h float64) {
	lines := strings.Split(message, "\n")
	max := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > max {
			max = n
		}
	}
	return float64(max) * charW, float64(len(lines)) * charH
}
