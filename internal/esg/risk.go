package esg

// RiskLevel is the sustainability risk classification derived from the
// overall score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Risk thresholds, applied to the rounded overall score.
const (
	lowRiskFloor    = 75.0
	mediumRiskFloor = 60.0
)

// ClassifyRisk maps an overall score to a risk level.
func ClassifyRisk(overall float64) RiskLevel {
	switch {
	case overall >= lowRiskFloor:
		return RiskLow
	case overall >= mediumRiskFloor:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// DisplayRisk returns the level to show for r. An empty level (no score
// computed yet) displays as Medium.
func DisplayRisk(r RiskLevel) RiskLevel {
	if r == "" {
		return RiskMedium
	}
	return r
}

// Band is a display classification for a single score.
type Band string

const (
	BandGood Band = "good"
	BandFair Band = "fair"
	BandPoor Band = "poor"
)

// ScoreBand classifies a score for coloring. It uses the same floors as the
// risk thresholds.
func ScoreBand(score float64) Band {
	switch {
	case score >= lowRiskFloor:
		return BandGood
	case score >= mediumRiskFloor:
		return BandFair
	default:
		return BandPoor
	}
}

// Band returns the display band matching the risk level: Low risk is good,
// High risk is poor. Unknown levels are treated as fair.
func (r RiskLevel) Band() Band {
	switch r {
	case RiskLow:
		return BandGood
	case RiskHigh:
		return BandPoor
	default:
		return BandFair
	}
}
