package layout

import (
	"fmt"
	"testing"

	"github.com/frankdc/hogview/internal/dot"
	"github.com/frankdc/hogview/internal/model"
)

func buildN(t *testing.T, n int) *model.Graph {
	t.Helper()
	var doc dot.Document
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("n%02d", i)
		doc.Nodes = append(doc.Nodes, dot.NodeDecl{ID: id, Label: id})
	}
	return model.Build(doc)
}

func TestApplyGridPositions(t *testing.T) {
	for _, n := range []int{0, 1, 5, 6, 13} {
		g := buildN(t, n)
		Apply(g)

		for i, node := range g.Nodes() {
			wantX := float64(i%MaxCols) * SpacingX
			wantY := float64(i/MaxCols) * SpacingY
			if node.X != wantX || node.Y != wantY {
				t.Errorf("n=%d node %d: got (%v,%v), want (%v,%v)", n, i, node.X, node.Y, wantX, wantY)
			}
		}
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	a := buildN(t, 13)
	b := buildN(t, 13)
	Apply(a)
	Apply(b)

	an, bn := a.Nodes(), b.Nodes()
	for i := range an {
		if an[i].X != bn[i].X || an[i].Y != bn[i].Y {
			t.Fatalf("node %d differs between identical inputs", i)
		}
	}
}

func TestApplyUsesDeclarationOrderNotIDOrder(t *testing.T) {
	g := model.Build(dot.Document{Nodes: []dot.NodeDecl{
		{ID: "zz", Label: "zz"},
		{ID: "aa", Label: "aa"},
	}})
	Apply(g)

	if g.Lookup("zz").X != 0 {
		t.Error("first-declared node must take the first grid slot")
	}
	if g.Lookup("aa").X != SpacingX {
		t.Error("second-declared node must take the second grid slot")
	}
}
