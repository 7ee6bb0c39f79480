package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopy-esg/canopy/internal/esg"
	"github.com/canopy-esg/canopy/internal/view"
)

func TestBuildPanel_Baseline(t *testing.T) {
	p := BuildPanel(snapshotFor(view.Dashboard))

	assert.True(t, p.Computed)
	assert.Equal(t, "Q4 2024", p.PeriodLabel)
	assert.Equal(t, esg.RiskMedium, p.Risk)

	require.Len(t, p.Cards, 4)
	assert.Equal(t, "Overall ESG Score", p.Cards[0].Label)
	assert.Equal(t, 65.3, p.Cards[0].Score)
	assert.Equal(t, esg.BandFair, p.Cards[0].Band)
	assert.Equal(t, "↑ 8% from last quarter", p.Cards[0].Caption, "caption does not follow live scores")

	assert.Equal(t, esg.BandPoor, p.Cards[1].Band)
	assert.Equal(t, "Energy & Emissions", p.Cards[1].Caption)
	assert.Equal(t, esg.BandFair, p.Cards[2].Band)
	assert.Equal(t, esg.BandGood, p.Cards[3].Band)

	require.Len(t, p.Trend, 8)
	assert.Equal(t, 65.3, p.Trend[7].Overall)
	require.NotNil(t, p.Trends)
	assert.Len(t, p.Trends.Lines, 4)

	assert.Len(t, p.Metrics, 9)
	env := p.MetricsFor("environmental")
	require.Len(t, env, 3)
	assert.Equal(t, "Carbon Emissions", env[0].Label)
	assert.Equal(t, "45,000", env[0].Value)
	assert.Equal(t, 45000.0, env[0].Raw)
	assert.Empty(t, p.MetricsFor("unknown"))
}

func TestBuildPanel_NotComputed(t *testing.T) {
	p := BuildPanel(&view.Snapshot{State: view.State{Tab: view.DetailedMetrics, Period: view.Period2024Q1}})

	assert.False(t, p.Computed)
	assert.Equal(t, "Q1 2024", p.PeriodLabel)
	assert.Equal(t, esg.RiskMedium, p.Risk, "risk displays as Medium before computation")
	for _, c := range p.Cards {
		assert.Equal(t, 0.0, c.Score)
		assert.Equal(t, esg.BandPoor, c.Band)
	}
	assert.Equal(t, "↑ 8% from last quarter", p.Cards[0].Caption)
	assert.Empty(t, p.Metrics)
	assert.Equal(t, 81.0, p.Trend[7].Overall)
}

func TestBuildPanel_Nil(t *testing.T) {
	p := BuildPanel(nil)
	assert.Equal(t, view.InitialState(), p.State)
	assert.False(t, p.Computed)
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "65.3", FormatScore(65.3))
	assert.Equal(t, "40", FormatScore(40))
	assert.Equal(t, "-22.4", FormatScore(-22.4))
}

func TestFormatMetric(t *testing.T) {
	assert.Equal(t, "45,000", FormatMetric("carbon_emissions", 45000))
	assert.Equal(t, "42%", FormatMetric("renewable_energy", 42))
	assert.Equal(t, "32", FormatMetric("training_hours", 32))
	assert.Equal(t, "2.5", FormatMetric("community_investment", 2.5))
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "+1.7", formatDelta(1.7))
	assert.Equal(t, "-34.8", formatDelta(-34.8))
	assert.Equal(t, "0", formatDelta(0))
}

func TestBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 17)+strings.Repeat("░", 3), bar(85))
	assert.Equal(t, strings.Repeat("░", barWidth), bar(-5))
	assert.Equal(t, strings.Repeat("█", barWidth), bar(140))
}

func TestColorHelpers_NoColor(t *testing.T) {
	assert.Equal(t, "65.3", ColorScore("65.3"))
	assert.Equal(t, "n/a", ColorScore("n/a"))
	assert.Equal(t, "High", ColorRiskLevel("High"))
	assert.Equal(t, "elevated", ColorSeverity("elevated"))
	assert.Equal(t, "Partial", ColorStatus("Partial"))
	assert.Equal(t, "good", ColorBand("good"))
	assert.Equal(t, "stable", ColorDirection("stable"))
}
