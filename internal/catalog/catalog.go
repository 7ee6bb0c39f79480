// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

// Package catalog provides the static presentation content of the dashboard:
// historical trends, framework alignment, the risk matrix, disclosure tables
// and report downloads. The content is an embedded TOML document.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/canopy-esg/canopy/internal/esg"
)

//go:embed catalog.toml
var catalogTOML string

// Catalog is the parsed presentation content.
type Catalog struct {
	Summary     Summary        `toml:"summary" json:"summary"`
	Pillars     PillarCaptions `toml:"pillars" json:"pillars"`
	Trend       []TrendPoint   `toml:"trend" json:"trend"`
	Frameworks  []Framework    `toml:"frameworks" json:"frameworks"`
	Risks       []Risk         `toml:"risks" json:"risks"`
	Indicators  []Indicator    `toml:"indicators" json:"indicators"`
	MetricCards []MetricCard   `toml:"metric_cards" json:"metric_cards"`
	GRI         []GRIItem      `toml:"gri" json:"gri"`
	SASB        []SASBItem     `toml:"sasb" json:"sasb"`
	TCFD        []TCFDPillar   `toml:"tcfd" json:"tcfd"`
	Downloads   []Download     `toml:"downloads" json:"downloads"`
}

// Summary holds the footer statistics and the analysis summary text.
type Summary struct {
	DataPoints             int      `toml:"data_points" json:"data_points"`
	AccuracyRate           float64  `toml:"accuracy_rate" json:"accuracy_rate"`
	AccuracyImprovementPct int      `toml:"accuracy_improvement_pct" json:"accuracy_improvement_pct"`
	Frameworks             int      `toml:"frameworks" json:"frameworks"`
	Monitoring             string   `toml:"monitoring" json:"monitoring"`
	ReportingPeriod        string   `toml:"reporting_period" json:"reporting_period"`
	DataSources            []string `toml:"data_sources" json:"data_sources"`
	OverallCaption         string   `toml:"overall_caption" json:"overall_caption"`
}

// PillarCaptions are the subtitles shown under each pillar score card.
type PillarCaptions struct {
	Environmental string `toml:"environmental" json:"environmental"`
	Social        string `toml:"social" json:"social"`
	Governance    string `toml:"governance" json:"governance"`
}

// TrendPoint is one quarter of historical pillar scores. A live point is
// replaced by computed scores when they are available.
type TrendPoint struct {
	Quarter       string  `toml:"quarter" json:"quarter"`
	Live          bool    `toml:"live" json:"live,omitempty"`
	Environmental float64 `toml:"environmental" json:"environmental"`
	Social        float64 `toml:"social" json:"social"`
	Governance    float64 `toml:"governance" json:"governance"`
	Overall       float64 `toml:"overall" json:"overall"`
}

// Framework is a reporting framework and its alignment score.
type Framework struct {
	Name  string `toml:"name" json:"name"`
	Score int    `toml:"score" json:"score"`
}

// Risk is one row of the risk matrix.
type Risk struct {
	Category   string `toml:"category" json:"category"`
	Likelihood int    `toml:"likelihood" json:"likelihood"`
	Impact     int    `toml:"impact" json:"impact"`
	Score      int    `toml:"score" json:"score"`
}

// Severity buckets a risk score: 10 and above is high, 6 and above is
// elevated, anything lower is low.
func (r Risk) Severity() string {
	switch {
	case r.Score >= 10:
		return "high"
	case r.Score >= 6:
		return "elevated"
	default:
		return "low"
	}
}

// Indicator is a key risk indicator with a status of "ok" or "watch".
type Indicator struct {
	Name   string `toml:"name" json:"name"`
	Status string `toml:"status" json:"status"`
}

// MetricCard describes how one raw metric is shown on the metrics panel.
type MetricCard struct {
	Pillar  string `toml:"pillar" json:"pillar"`
	Label   string `toml:"label" json:"label"`
	Metric  string `toml:"metric" json:"metric"`
	Caption string `toml:"caption" json:"caption"`
}

// GRIItem is a GRI standard and its compliance status.
type GRIItem struct {
	Standard string `toml:"standard" json:"standard"`
	Status   string `toml:"status" json:"status"`
}

// SASBItem is a SASB topic and its materiality assessment.
type SASBItem struct {
	Topic      string `toml:"topic" json:"topic"`
	Assessment string `toml:"assessment" json:"assessment"`
}

// TCFDPillar is one TCFD disclosure pillar.
type TCFDPillar struct {
	Pillar     string `toml:"pillar" json:"pillar"`
	Disclosure string `toml:"disclosure" json:"disclosure"`
}

// Download is a report listed on the regulatory panel. Downloads are inert:
// nothing is generated when one is requested.
type Download struct {
	ID    string `toml:"id" json:"id"`
	Title string `toml:"title" json:"title"`
}

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Load returns the embedded catalog, parsing it on first use.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(catalogTOML)
	})
	return loaded, loadErr
}

// MustLoad is like Load but panics if the embedded catalog is invalid.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a catalog document. Unknown keys are rejected.
func Parse(doc string) (*Catalog, error) {
	var c Catalog
	md, err := toml.Decode(doc, &c)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("decode catalog: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	live := 0
	for _, p := range c.Trend {
		if p.Live {
			live++
		}
	}
	if live > 1 {
		return fmt.Errorf("catalog: %d live trend points, at most one allowed", live)
	}
	seen := make(map[string]bool, len(c.Downloads))
	for _, d := range c.Downloads {
		if d.ID == "" {
			return fmt.Errorf("catalog: download %q has no id", d.Title)
		}
		if seen[d.ID] {
			return fmt.Errorf("catalog: duplicate download id %q", d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}

// TrendSeries returns the historical trend with the live quarter filled in
// from res. Each live field falls back to its catalog value when the
// computed score is zero. Earlier quarters are never derived from scores.
func (c *Catalog) TrendSeries(res esg.ScoreResult) []TrendPoint {
	out := make([]TrendPoint, len(c.Trend))
	copy(out, c.Trend)
	for i := range out {
		if !out[i].Live {
			continue
		}
		out[i].Environmental = orFallback(res.Environmental, out[i].Environmental)
		out[i].Social = orFallback(res.Social, out[i].Social)
		out[i].Governance = orFallback(res.Governance, out[i].Governance)
		out[i].Overall = orFallback(res.Overall, out[i].Overall)
	}
	return out
}

func orFallback(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

// Download returns the download with the given id.
func (c *Catalog) Download(id string) (Download, bool) {
	for _, d := range c.Downloads {
		if d.ID == id {
			return d, true
		}
	}
	return Download{}, false
}

// MetricValue returns the raw value behind a metric card key and whether
// the key is known.
func MetricValue(m esg.RawMetrics, key string) (float64, bool) {
	switch key {
	case "carbon_emissions":
		return m.Environmental.CarbonEmissionsTonnesCO2e, true
	case "energy_consumption":
		return m.Environmental.EnergyConsumptionMWh, true
	case "water_usage":
		return m.Environmental.WaterUsageCubicMeters, true
	case "waste_recycling":
		return m.Environmental.WasteRecyclingPercent, true
	case "renewable_energy":
		return m.Environmental.RenewableEnergyPercent, true
	case "employee_turnover":
		return m.Social.EmployeeTurnoverPercent, true
	case "gender_diversity":
		return m.Social.GenderDiversityPercent, true
	case "training_hours":
		return m.Social.TrainingHoursPerEmployee, true
	case "safety_incidents":
		return m.Social.SafetyIncidentsPer100Employees, true
	case "community_investment":
		return m.Social.CommunityInvestmentMillionUSD, true
	case "board_independence":
		return m.Governance.BoardIndependencePercent, true
	case "ethics_training":
		return m.Governance.EthicsTrainingCompletionPercent, true
	case "data_breaches":
		return float64(m.Governance.DataBreachesCount), true
	case "whistleblower_cases":
		return float64(m.Governance.WhistleblowerCasesCount), true
	case "compliance_score":
		return m.Governance.ComplianceScorePercent, true
	default:
		return 0, false
	}
}

// IsPercentMetric reports whether the metric is expressed as a percentage.
func IsPercentMetric(key string) bool {
	switch key {
	case "waste_recycling", "renewable_energy", "employee_turnover", "gender_diversity",
		"board_independence", "ethics_training", "compliance_score":
		return true
	}
	return false
}
