// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

package esg

import "math"

// ScoreResult is the output of the score engine for one computation.
// All scores are rounded to one decimal place.
type ScoreResult struct {
	Environmental float64    `json:"environmental"`
	Social        float64    `json:"social"`
	Governance    float64    `json:"governance"`
	Overall       float64    `json:"overall"`
	RiskLevel     RiskLevel  `json:"risk_level"`
	RawMetrics    RawMetrics `json:"raw_metrics"`
}

// Calculate scores the given metrics. It is a pure function: inputs are not
// range-checked and scores are not clamped, so out-of-range metrics produce
// out-of-range scores.
//
// Every product is converted explicitly before it is summed. Without the
// conversion the compiler may fuse a multiply-add on some architectures,
// which moves half-way values such as 65.25 across the rounding boundary.
func Calculate(m RawMetrics) ScoreResult {
	env := environmentalScore(m.Environmental)
	soc := socialScore(m.Social)
	gov := governanceScore(m.Governance)

	w := DefaultWeights()
	overall := float64(env*w.Environmental) +
		float64(soc*w.Social) +
		float64(gov*w.Governance)

	rounded := Round1(overall)
	return ScoreResult{
		Environmental: Round1(env),
		Social:        Round1(soc),
		Governance:    Round1(gov),
		Overall:       rounded,
		RiskLevel:     ClassifyRisk(rounded),
		RawMetrics:    m,
	}
}

func environmentalScore(e EnvironmentalMetrics) float64 {
	return float64((100-e.CarbonEmissionsTonnesCO2e/500)*0.3) +
		float64(e.WasteRecyclingPercent*0.3) +
		float64(e.RenewableEnergyPercent*0.4)
}

func socialScore(s SocialMetrics) float64 {
	return float64((100-float64(s.EmployeeTurnoverPercent*2))*0.2) +
		float64(s.GenderDiversityPercent*0.3) +
		float64((s.TrainingHoursPerEmployee/40*100)*0.2) +
		float64((100-float64(s.SafetyIncidentsPer100Employees*5))*0.3)
}

func governanceScore(g GovernanceMetrics) float64 {
	return float64(g.BoardIndependencePercent*0.3) +
		float64(g.EthicsTrainingCompletionPercent*0.3) +
		float64(g.ComplianceScorePercent*0.4)
}

// Round1 rounds x to one decimal place, half up.
func Round1(x float64) float64 {
	return math.Floor(float64(x*10)+0.5) / 10
}
