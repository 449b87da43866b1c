package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/frankdc/hogview/internal/analysis"
	"github.com/frankdc/hogview/internal/config"
	"github.com/frankdc/hogview/internal/project"
	"github.com/frankdc/hogview/internal/state"
	"github.com/frankdc/hogview/internal/tui"
	"github.com/frankdc/hogview/internal/ui"
)

// analyzeCmd runs the external analyzer on a workspace and opens the
// result in the viewer.
func analyzeCmd() *cobra.Command {
	var (
		engine string
		output string
		noView bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [folder]",
		Short: "Run the analyzer on a workspace and view the call graph",
		Long: `Run the external analyzer against a workspace folder and open the
produced call graph in the viewer.

The folder defaults to the last one analyzed. On success the folder is
remembered for the next run.

  hogview analyze ~/src/myproj
  hogview analyze                   # reuse the last folder
  hogview analyze ~/src/p --no-view # just report, don't open the viewer`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			folder := ""
			if len(args) == 1 {
				folder = args[0]
			} else {
				folder = state.Load().LastFolder
			}
			if folder == "" {
				return fmt.Errorf("no folder given and none remembered — run: hogview analyze <folder>")
			}

			files, err := project.Scan(folder)
			if err != nil {
				return fmt.Errorf("scan %s: %w", folder, err)
			}
			ui.Banner(fmt.Sprintf("analyzing %s (%d source files)", folder, len(files)))
			if len(files) > 0 {
				rows := make([][]string, len(files))
				for i, f := range files {
					rows[i] = []string{f}
				}
				ui.Table([]string{"Source file"}, rows)
				fmt.Println()
			}

			if engine == "" {
				engine = cfg.Analyzer.Engine
			}
			if output == "" {
				output = filepath.Join(os.TempDir(), "hogview_output.dot")
			}

			runner := &analysis.Runner{
				Binary: cfg.Analyzer.Binary,
				Engine: engine,
				Output: output,
			}
			ch, err := runner.Start(context.Background(), folder)
			if err != nil {
				return err
			}
			res := <-ch

			if !res.OK() {
				ui.Bad.Println("  " + res.Message)
				return fmt.Errorf("analysis failed")
			}

			if err := state.Remember(folder, output); err != nil {
				ui.Warn.Printf("  could not remember folder: %v\n", err)
			}
			fmt.Printf("  %s analysis complete — output in %s\n", ui.StatusIcon(true), output)

			if noView {
				return nil
			}

			creatures := 0
			if cfg.Creatures.Enabled {
				creatures = cfg.Creatures.Count
			}
			m, err := tui.New(tui.Options{
				Path:      output,
				Folder:    folder,
				Creatures: creatures,
				ShowGrid:  cfg.UI.Grid,
				Runner:    runner,
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

	cmd.Flags().StringVar(&engine, "engine", "", "Analysis engine (default from config)")
	cmd.Flags().StringVar(&output, "output", "", "Path for the produced graph file")
	cmd.Flags().BoolVar(&noView, "no-view", false, "Report only, don't open the viewer")

	return cmd
}
