// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

package esg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_Baseline(t *testing.T) {
	res := Calculate(BaselineMetrics())

	assert.Equal(t, 40.2, res.Environmental)
	assert.Equal(t, 70.2, res.Social)
	assert.Equal(t, 88.7, res.Governance)
	assert.Equal(t, 65.3, res.Overall)
	assert.Equal(t, RiskMedium, res.RiskLevel)
	assert.Equal(t, BaselineMetrics(), res.RawMetrics)
}

func TestCalculate_Idempotent(t *testing.T) {
	first := Calculate(BaselineMetrics())
	second := Calculate(BaselineMetrics())
	assert.Equal(t, first, second)
}

func TestCalculate_NoClamping(t *testing.T) {
	t.Run("above_hundred", func(t *testing.T) {
		m := RawMetrics{
			Environmental: EnvironmentalMetrics{WasteRecyclingPercent: 100, RenewableEnergyPercent: 100},
			Social:        SocialMetrics{GenderDiversityPercent: 100, TrainingHoursPerEmployee: 80},
			Governance: GovernanceMetrics{
				BoardIndependencePercent:        100,
				EthicsTrainingCompletionPercent: 100,
				ComplianceScorePercent:          100,
			},
		}
		res := Calculate(m)
		assert.InDelta(t, 100.0, res.Environmental, 0.001)
		assert.InDelta(t, 120.0, res.Social, 0.001)
		assert.InDelta(t, 100.0, res.Governance, 0.001)
		assert.InDelta(t, 107.0, res.Overall, 0.001)
		assert.Equal(t, RiskLow, res.RiskLevel)
	})

	t.Run("negative", func(t *testing.T) {
		m := RawMetrics{
			Environmental: EnvironmentalMetrics{CarbonEmissionsTonnesCO2e: 100000},
			Social:        SocialMetrics{EmployeeTurnoverPercent: 60, SafetyIncidentsPer100Employees: 40},
		}
		res := Calculate(m)
		assert.InDelta(t, -30.0, res.Environmental, 0.001)
		assert.InDelta(t, -34.0, res.Social, 0.001)
		assert.InDelta(t, 0.0, res.Governance, 0.001)
		assert.InDelta(t, -22.4, res.Overall, 0.001)
		assert.Equal(t, RiskHigh, res.RiskLevel)
	})

	t.Run("out_of_range_percent", func(t *testing.T) {
		m := BaselineMetrics()
		m.Environmental.WasteRecyclingPercent = 250
		m.Environmental.RenewableEnergyPercent = 300
		res := Calculate(m)
		assert.InDelta(t, 198.0, res.Environmental, 0.001)
		assert.InDelta(t, 120.5, res.Overall, 0.001)
	})
}

func TestCalculate_UnusedMetricsDoNotAffectScores(t *testing.T) {
	base := Calculate(BaselineMetrics())

	m := BaselineMetrics()
	m.Environmental.EnergyConsumptionMWh = 1
	m.Environmental.WaterUsageCubicMeters = 1
	m.Social.CommunityInvestmentMillionUSD = 99
	m.Governance.DataBreachesCount = 7
	m.Governance.WhistleblowerCasesCount = 40
	res := Calculate(m)

	assert.Equal(t, base.Overall, res.Overall)
	assert.Equal(t, base.Environmental, res.Environmental)
	assert.Equal(t, base.Social, res.Social)
	assert.Equal(t, base.Governance, res.Governance)
	assert.NotEqual(t, base.RawMetrics, res.RawMetrics)
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{65.25, 65.3},
		{0.05, 0.1},
		{-0.25, -0.2},
		{74.94, 74.9},
		{59.95, 60.0},
		{40.2, 40.2},
		{0, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round1(tt.in), 1e-9, "Round1(%v)", tt.in)
	}
}

func TestClassifyRisk_Boundaries(t *testing.T) {
	tests := []struct {
		overall float64
		want    RiskLevel
	}{
		{100, RiskLow},
		{75.0, RiskLow},
		{74.9, RiskMedium},
		{65.3, RiskMedium},
		{60.0, RiskMedium},
		{59.9, RiskHigh},
		{0, RiskHigh},
		{-12, RiskHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRisk(tt.overall), "ClassifyRisk(%v)", tt.overall)
	}
}

func TestCalculate_ClassifiesRoundedOverall(t *testing.T) {
	// With every other input zero, overall = 28 + 0.12*ComplianceScorePercent.
	tests := []struct {
		name       string
		compliance float64
		overall    float64
		want       RiskLevel
	}{
		{"rounds_up_to_low", 391.3, 75.0, RiskLow},       // 74.956
		{"rounds_up_to_medium", 266.5, 60.0, RiskMedium}, // 59.98
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Calculate(RawMetrics{Governance: GovernanceMetrics{ComplianceScorePercent: tt.compliance}})
			assert.Equal(t, tt.overall, res.Overall)
			assert.Equal(t, tt.want, res.RiskLevel)
		})
	}
}

func TestDisplayRisk_DefaultsToMedium(t *testing.T) {
	assert.Equal(t, RiskMedium, DisplayRisk(""))
	assert.Equal(t, RiskHigh, DisplayRisk(RiskHigh))
}

func TestScoreBand(t *testing.T) {
	assert.Equal(t, BandGood, ScoreBand(88.7))
	assert.Equal(t, BandGood, ScoreBand(75))
	assert.Equal(t, BandFair, ScoreBand(70.2))
	assert.Equal(t, BandFair, ScoreBand(60))
	assert.Equal(t, BandPoor, ScoreBand(40.2))
	assert.Equal(t, BandPoor, ScoreBand(0))
}

func TestRiskLevel_Band(t *testing.T) {
	assert.Equal(t, BandGood, RiskLow.Band())
	assert.Equal(t, BandFair, RiskMedium.Band())
	assert.Equal(t, BandPoor, RiskHigh.Band())
	assert.Equal(t, BandFair, RiskLevel("").Band())
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	require.NoError(t, w.Validate())
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
}

func TestWeights_Validate(t *testing.T) {
	err := Weights{Environmental: 0.5, Social: 0.5, Governance: 0.5}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")

	err = Weights{Environmental: 1.2, Social: -0.2}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}
