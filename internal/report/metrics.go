package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/canopy-esg/canopy/internal/catalog"
	"github.com/canopy-esg/canopy/internal/view"
)

func init() {
	Register(&pillarMetricsSection{pillar: "environmental", title: "Environmental Metrics"})
	Register(&pillarMetricsSection{pillar: "social", title: "Social Metrics"})
	Register(&pillarMetricsSection{pillar: "governance", title: "Governance Metrics"})
	Register(&analysisSummarySection{})
}

// pillarMetricsSection lists the raw metrics behind one pillar score.
type pillarMetricsSection struct {
	pillar string
	title  string
	rows   []MetricRow
}

func (s *pillarMetricsSection) Name() string { return s.pillar + "-metrics" }
func (s *pillarMetricsSection) Description() string {
	return "Raw " + s.pillar + " metrics behind the pillar score"
}
func (s *pillarMetricsSection) Tab() view.Tab { return view.DetailedMetrics }

func (s *pillarMetricsSection) Analyze(snap *view.Snapshot) error {
	p := BuildPanel(snap)
	if !p.Computed {
		return fmt.Errorf("%s: %w", s.Name(), ErrScoresNotAvailable)
	}
	s.rows = p.MetricsFor(s.pillar)
	return nil
}

func (s *pillarMetricsSection) Render(w io.Writer) error {
	writeTitle(w, s.title)
	tbl := NewTable(
		Column{Header: "Metric"},
		Column{Header: "Value", Align: AlignRight},
		Column{Header: "Note"},
	)
	for _, r := range s.rows {
		tbl.AddRow(r.Label, r.Value, r.Caption)
	}
	return renderTable(w, tbl)
}

// analysisSummarySection describes the data behind the dashboard.
type analysisSummarySection struct {
	summary catalog.Summary
}

func (s *analysisSummarySection) Name() string        { return "analysis-summary" }
func (s *analysisSummarySection) Description() string { return "Data analysis summary" }
func (s *analysisSummarySection) Tab() view.Tab       { return view.DetailedMetrics }

func (s *analysisSummarySection) Analyze(snap *view.Snapshot) error {
	s.summary = BuildPanel(snap).Catalog.Summary
	return nil
}

func (s *analysisSummarySection) Render(w io.Writer) error {
	writeTitle(w, "Data Analysis Summary")
	sum := s.summary
	_, _ = fmt.Fprintf(w, "  Total Data Points Analyzed: %s\n", humanize.Comma(int64(sum.DataPoints)))
	_, _ = fmt.Fprintf(w, "  Reporting Period: %s\n", sum.ReportingPeriod)
	_, _ = fmt.Fprintf(w, "  Data Sources: %s\n", strings.Join(sum.DataSources, ", "))
	_, _ = fmt.Fprintf(w, "  Accuracy Rate: %s%% (%d%% improvement vs. manual reporting)\n\n",
		FormatScore(sum.AccuracyRate), sum.AccuracyImprovementPct)
	return nil
}
