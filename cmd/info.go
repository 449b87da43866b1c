package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frankdc/hogview/internal/dot"
	"github.com/frankdc/hogview/internal/layout"
	"github.com/frankdc/hogview/internal/model"
	"github.com/frankdc/hogview/internal/ui"
)

// infoCmd summarizes a graph description without rendering it.
func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <graph.dot>",
		Short: "Show summary statistics for a graph description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := dot.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			g := model.Build(doc)

			dangling := 0
			for _, e := range g.Edges {
				if g.Lookup(e.From) == nil || g.Lookup(e.To) == nil {
					dangling++
				}
			}

			rows := [][]string{
				{"Nodes", fmt.Sprintf("%d", g.NodeCount())},
				{"Edges", fmt.Sprintf("%d", g.EdgeCount())},
				{"Dangling edges", fmt.Sprintf("%d", dangling)},
				{"Grid", gridShape(g.NodeCount())},
			}

			ui.Banner(args[0])
			ui.Table([]string{"Metric", "Value"}, rows)
			return nil
		},
	}
}

// gridShape describes the layout grid a node count produces.
func gridShape(n int) string {
	if n == 0 {
		return "empty"
	}
	cols := n
	if cols > layout.MaxCols {
		cols = layout.MaxCols
	}
	rows := (n + layout.MaxCols - 1) / layout.MaxCols
	return fmt.Sprintf("%d x %d", cols, rows)
}
