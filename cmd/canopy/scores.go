package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/canopy-esg/canopy/internal/config"
	"github.com/canopy-esg/canopy/internal/view"
)

var scoresPeriod string

// scoresCmd prints the score engine result as JSON.
var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the ESG scores as JSON",
	Long: `Compute the environmental, social, governance and overall scores and the
sustainability risk level, and print them with the raw metrics as JSON.`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVarP(&scoresPeriod, "period", "p", "", "reporting period, e.g. 2024-Q4")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(&config.Config{DefaultPeriod: scoresPeriod, NoColor: noColor})
	if err != nil {
		return err
	}
	state, err := startState(cfg)
	if err != nil {
		return err
	}

	snap := view.NewController(view.WithInitialState(state)).Snapshot()
	data, err := json.MarshalIndent(snap.ScoresOrZero(), "", "  ")
	if err != nil {
		return exitError(ExitRenderFailure, "canopy: marshal scores (%v)", err)
	}
	return printJSON(cmd.OutOrStdout(), data)
}
