package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/canopy-esg/canopy/internal/config"
	"github.com/canopy-esg/canopy/internal/output"
	"github.com/canopy-esg/canopy/internal/view"
)

// Render-specific flag values.
var (
	renderTab      string
	renderPeriod   string
	renderFormat   string
	renderOutput   string
	renderSections string
)

// renderCmd renders one dashboard panel.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a dashboard panel",
	Long: `Render one tab of the ESG dashboard for a reporting period.

Tabs: dashboard, metrics, regulatory. Periods: 2024-Q4 (default) back to
2024-Q1; the display form "Q3 2024" is accepted too. Defaults come from
.canopy.yaml when present.

Examples:
  canopy render
  canopy render --tab metrics --period 2024-Q3
  canopy render --tab regulatory --format html -o esg.html
  canopy render --format json --sections score-cards,risk`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderTab, "tab", "t", "", "panel to render: dashboard, metrics, regulatory")
	renderCmd.Flags().StringVarP(&renderPeriod, "period", "p", "", "reporting period, e.g. 2024-Q4")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format: "+strings.Join(output.Names(), ", "))
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file path (default: stdout)")
	renderCmd.Flags().StringVar(&renderSections, "sections", "", "comma-separated list of sections to include (text and json)")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(&config.Config{
		DefaultTab:    renderTab,
		DefaultPeriod: renderPeriod,
		OutputFormat:  renderFormat,
		NoColor:       noColor,
	})
	if err != nil {
		return err
	}
	state, err := startState(cfg)
	if err != nil {
		return err
	}

	formatter, err := output.GetFormatter(cfg.OutputFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "canopy: %v", err)
	}
	if renderSections != "" {
		sf, ok := formatter.(output.SectionFilter)
		if !ok {
			return exitError(ExitInvalidArgs, "canopy: --sections is not supported by the %s format", formatter.Name())
		}
		formatter = sf.WithSections(splitList(renderSections))
	}

	ctrl := view.NewController(view.WithInitialState(state))
	snap := ctrl.Snapshot()

	var w io.Writer = cmd.OutOrStdout()
	if renderOutput != "" {
		f, err := os.Create(renderOutput) //nolint:gosec // user-specified output path
		if err != nil {
			return exitError(ExitRenderFailure, "canopy: cannot create output file %q (%v)", renderOutput, err)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
		// Escape codes do not belong in files.
		color.NoColor = true
	}

	slog.Info("rendering panel", "tab", state.Tab, "period", state.Period, "format", formatter.Name())
	if err := formatter.Format(&snap, w); err != nil {
		return exitError(ExitRenderFailure, "canopy: rendering failed (%v)", err)
	}
	if renderOutput != "" {
		slog.Info("panel written", "path", renderOutput)
	}
	return nil
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// printJSON writes one JSON document followed by a newline.
func printJSON(w io.Writer, data []byte) error {
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return exitError(ExitRenderFailure, "canopy: write output (%v)", err)
	}
	return nil
}
