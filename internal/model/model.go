package model

import "github.com/frankdc/hogview/internal/dot"

// Every node is drawn at the same fixed size.
const (
	NodeWidth  = 120.0
	NodeHeight = 50.0
)

// Node is a graph vertex with a stable identity, a display label and a
// position assigned by layout.
type Node struct {
	ID    string
	Label string
	X, Y  float64
}

// Edge is a directed relation between two node identities. Edges have
// no identity of their own; they are rebuilt on every load.
type Edge struct {
	From string
	To   string
}

// Graph holds the nodes and edges of one loaded call graph. Nodes keep
// the order they were first declared in, because layout assigns
// positions by that order.
type Graph struct {
	nodes map[string]*Node
	order []string
	Edges []Edge
}

// Build constructs a fresh Graph from parsed declarations. Re-declaring
// an identity is idempotent: the first label wins and no second node is
// created. Edges are kept verbatim, including duplicates, self-loops
// and references to undeclared identities; those are filtered at render
// time, not here.
func Build(doc dot.Document) *Graph {
	g := &Graph{nodes: make(map[string]*Node, len(doc.Nodes))}
	for _, n := range doc.Nodes {
		g.insert(n.ID, n.Label)
	}
	for _, e := range doc.Edges {
		g.Edges = append(g.Edges, Edge{From: e.From, To: e.To})
	}
	return g
}

func (g *Graph) insert(id, label string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &Node{ID: id, Label: label}
	g.order = append(g.order, id)
}

// Lookup returns the node for id, or nil if it was never declared.
func (g *Graph) Lookup(id string) *Node {
	return g.nodes[id]
}

// Nodes returns the nodes in declaration order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of retained edges, dangling included.
func (g *Graph) EdgeCount() int { return len(g.Edges) }
