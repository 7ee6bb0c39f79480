package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	canopylog "github.com/canopy-esg/canopy/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for canopy.
var rootCmd = &cobra.Command{
	Use:   "canopy",
	Short: "ESG and sustainability analytics dashboard",
	Long: `Canopy scores environmental, social and governance performance and
presents it as a three-tab dashboard: headline scores and risk, detailed
metrics, and regulatory reporting alignment. Panels render to the terminal,
JSON, Markdown or HTML, and the dashboard can be served over HTTP or to AI
agents over MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		canopylog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(narrateCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
