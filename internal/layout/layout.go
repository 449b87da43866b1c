// Package layout places graph nodes on a fixed grid. The column count
// and row-major fill order are part of the contract: identical input
// must yield identical positions.
package layout

import "github.com/frankdc/hogview/internal/model"

const (
	MaxCols  = 5
	SpacingX = 200.0
	SpacingY = 120.0
)

// Apply assigns a position to every node in declaration order,
// advancing one column per node and wrapping to a new row after
// MaxCols columns. No attempt is made to reduce edge crossings.
func Apply(g *model.Graph) {
	col, row := 0, 0
	for _, n := range g.Nodes() {
		n.X = float64(col) * SpacingX
		n.Y = float64(row) * SpacingY
		col++
		if col >= MaxCols {
			col = 0
			row++
		}
	}
}
