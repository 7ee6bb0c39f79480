package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canopy-esg/canopy/internal/config"
	"github.com/canopy-esg/canopy/internal/llm"
	"github.com/canopy-esg/canopy/internal/narrative"
	"github.com/canopy-esg/canopy/internal/view"
)

// Narrate-specific flag values.
var (
	narratePeriod    string
	narrateModel     string
	narrateMaxTokens int
	narrateJSON      bool
)

// newProvider builds the language model client. Tests replace it.
var newProvider = func(model string) (llm.Provider, error) {
	return llm.NewAnthropicProvider(llm.WithModel(model))
}

// narrateCmd writes an executive summary of the scores with an LLM.
var narrateCmd = &cobra.Command{
	Use:   "narrate",
	Short: "Write an executive summary of the ESG scores",
	Long: `Ask a language model for a short board-level summary of the scores, risk
level, trends and framework alignment for a reporting period.

Requires ANTHROPIC_API_KEY. The model and token limit default to the
narrative section of .canopy.yaml.`,
	Args: cobra.NoArgs,
	RunE: runNarrate,
}

func init() {
	narrateCmd.Flags().StringVarP(&narratePeriod, "period", "p", "", "reporting period, e.g. 2024-Q4")
	narrateCmd.Flags().StringVar(&narrateModel, "model", "", "model name (default "+llm.DefaultModel+")")
	narrateCmd.Flags().IntVar(&narrateMaxTokens, "max-tokens", 0, "maximum tokens in the summary")
	narrateCmd.Flags().BoolVar(&narrateJSON, "json", false, "print the summary and its scores as JSON")
}

func runNarrate(cmd *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(&config.Config{
		DefaultPeriod: narratePeriod,
		NoColor:       noColor,
		Narrative:     config.NarrativeConfig{Model: narrateModel, MaxTokens: narrateMaxTokens},
	})
	if err != nil {
		return err
	}
	state, err := startState(cfg)
	if err != nil {
		return err
	}

	provider, err := newProvider(cfg.Narrative.Model)
	if err != nil {
		if errors.Is(err, llm.ErrNoAPIKey) {
			return exitError(ExitInvalidArgs, "canopy: narrate needs ANTHROPIC_API_KEY")
		}
		return exitError(ExitInvalidArgs, "canopy: %v", err)
	}

	snap := view.NewController(view.WithInitialState(state)).Snapshot()
	summary, err := narrative.Generate(cmd.Context(), provider, snap, narrative.Options{
		Model:     cfg.Narrative.Model,
		MaxTokens: cfg.Narrative.MaxTokens,
	})
	if err != nil {
		return exitError(ExitRenderFailure, "canopy: %v", err)
	}

	w := cmd.OutOrStdout()
	if narrateJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return exitError(ExitRenderFailure, "canopy: marshal summary (%v)", err)
		}
		return printJSON(w, data)
	}

	_, _ = fmt.Fprintf(w, "Executive Summary (%s)\n\n%s\n", summary.Period.Label(), summary.Text)
	if summary.Partial {
		_, _ = fmt.Fprintln(w, "\n[summary cut short at the token limit]")
	}
	return nil
}
