package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/frankdc/hogview/internal/analysis"
	"github.com/frankdc/hogview/internal/config"
	"github.com/frankdc/hogview/internal/state"
	"github.com/frankdc/hogview/internal/tui"
)

// viewCmd opens the interactive viewer.
func viewCmd() *cobra.Command {
	var (
		watch       bool
		noCreatures bool
		folder      string
	)

	cmd := &cobra.Command{
		Use:   "view [graph.dot]",
		Short: "Open the interactive graph viewer",
		Long: `Open a graph description in the interactive terminal viewer.

With no argument, the last analyzed output is reopened if one is
remembered; otherwise the viewer starts empty and an analysis can be
triggered with 'r'.

  hogview view out.dot            # view a graph file
  hogview view out.dot --watch    # reload whenever the file changes
  hogview view --folder ~/proj    # start empty, analyze ~/proj on 'r'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			st := state.Load()

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else if st.LastOutput != "" {
				path = st.LastOutput
			}
			if folder == "" {
				folder = st.LastFolder
			}

			creatures := 0
			if cfg.Creatures.Enabled && !noCreatures {
				creatures = cfg.Creatures.Count
			}

			m, err := tui.New(tui.Options{
				Path:      path,
				Folder:    folder,
				Watch:     watch,
				Creatures: creatures,
				ShowGrid:  cfg.UI.Grid,
				Runner: &analysis.Runner{
					Binary: cfg.Analyzer.Binary,
					Engine: cfg.Analyzer.Engine,
				},
			})
			if err != nil {
				return err
			}
			defer m.Close()

			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("viewer: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the file when it changes")
	cmd.Flags().BoolVar(&noCreatures, "no-creatures", false, "Disable the hedgehog sprites")
	cmd.Flags().StringVar(&folder, "folder", "", "Workspace folder for analysis runs")

	return cmd
}
