package esg

import (
	"fmt"
	"math"
)

// Weights is the contribution of each pillar to the overall score.
type Weights struct {
	Environmental float64 `json:"environmental"`
	Social        float64 `json:"social"`
	Governance    float64 `json:"governance"`
}

// DefaultWeights returns the fixed pillar weights used by Calculate.
func DefaultWeights() Weights {
	return Weights{
		Environmental: 0.35,
		Social:        0.35,
		Governance:    0.30,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Environmental + w.Social + w.Governance
}

// Validate checks that weights are non-negative and sum to 1.0 (±0.001).
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"environmental": w.Environmental,
		"social":        w.Social,
		"governance":    w.Governance,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s: must be non-negative, got %g", name, v)
		}
	}
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights must sum to 1.0, got %.3f", w.Sum())
	}
	return nil
}
