package cmd

import (
	"github.com/spf13/cobra"

	"github.com/frankdc/hogview/internal/config"
	"github.com/frankdc/hogview/internal/ui"
)

var version = "0.4.0"

var rootCmd = &cobra.Command{
	Use:   "hogview",
	Short: "hogview — interactive call-graph viewer",
	Long: ui.Brand.Sprint(ui.Hog+" hogview") + " — explore call graphs from static analysis\n" +
		ui.Subtle.Sprint("Run the analyzer on a workspace and browse the result as a node/edge diagram"),
	Version: version + " " + ui.Hog,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetEnabled(config.Load().UI.Color)
	},
}

func init() {
	rootCmd.SetVersionTemplate("hogview {{ .Version }}\n")

	rootCmd.AddCommand(
		viewCmd(),
		analyzeCmd(),
		renderCmd(),
		infoCmd(),
		completionCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
