package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frankdc/hogview/internal/dot"
	"github.com/frankdc/hogview/internal/export"
	"github.com/frankdc/hogview/internal/layout"
	"github.com/frankdc/hogview/internal/model"
	"github.com/frankdc/hogview/internal/scene"
	"github.com/frankdc/hogview/internal/ui"
)

// renderCmd renders a graph description straight to a PNG.
func renderCmd() *cobra.Command {
	var (
		out       string
		fitWidth  int
		fitHeight int
	)

	cmd := &cobra.Command{
		Use:   "render <graph.dot>",
		Short: "Render a graph description to a PNG image",
		Long: `Parse a graph description, lay it out, and write a PNG image
without opening the viewer.

  hogview render out.dot
  hogview render out.dot -o graph.png
  hogview render out.dot --fit-width 1920`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := dot.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			g := model.Build(doc)
			var sc *scene.Scene
			if g.NodeCount() == 0 {
				sc = scene.RenderPlaceholder(scene.NoNodesMessage)
			} else {
				layout.Apply(g)
				sc = scene.Render(g)
			}

			if out == "" {
				out = strings.TrimSuffix(args[0], ".dot") + ".png"
			}
			if err := export.WritePNGFit(sc, out, fitWidth, fitHeight); err != nil {
				return fmt.Errorf("render %s: %w", out, err)
			}

			fmt.Printf("  %s wrote %s (%d nodes, %d edges)\n",
				ui.StatusIcon(true), out, g.NodeCount(), g.EdgeCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output PNG path (default: input with .png)")
	cmd.Flags().IntVar(&fitWidth, "fit-width", 0, "Scale the image to fit this width in pixels")
	cmd.Flags().IntVar(&fitHeight, "fit-height", 0, "Scale the image to fit this height in pixels")

	return cmd
}
