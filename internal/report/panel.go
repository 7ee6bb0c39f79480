// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

package report

import (
	"github.com/canopy-esg/canopy/internal/catalog"
	"github.com/canopy-esg/canopy/internal/esg"
	"github.com/canopy-esg/canopy/internal/trend"
	"github.com/canopy-esg/canopy/internal/view"
)

// Dashboard titles.
const (
	Title    = "ESG & Sustainability Analytics Platform"
	Subtitle = "Enterprise-Grade ESG Performance Management"
)

// Card is one score card on the dashboard.
type Card struct {
	Label   string   `json:"label"`
	Score   float64  `json:"score"`
	Band    esg.Band `json:"band"`
	Caption string   `json:"caption"`
}

// MetricRow is one raw metric shown on the metrics panel.
type MetricRow struct {
	Pillar  string  `json:"pillar"`
	Label   string  `json:"label"`
	Metric  string  `json:"metric"`
	Raw     float64 `json:"raw"`
	Value   string  `json:"value"`
	Caption string  `json:"caption"`
}

// Panel is the display model of a snapshot with display defaults applied:
// zero scores and a Medium risk before anything has been computed.
type Panel struct {
	State       view.State           `json:"state"`
	PeriodLabel string               `json:"period_label"`
	Computed    bool                 `json:"computed"`
	Scores      esg.ScoreResult      `json:"scores"`
	Risk        esg.RiskLevel        `json:"risk"`
	Cards       []Card               `json:"cards"`
	Trend       []catalog.TrendPoint `json:"trend"`
	Trends      *trend.Result        `json:"trends,omitempty"`
	Metrics     []MetricRow          `json:"metrics,omitempty"`
	Catalog     *catalog.Catalog     `json:"-"`
}

// BuildPanel derives the display model from a snapshot. A nil snapshot is
// treated as the initial state with nothing computed.
func BuildPanel(snap *view.Snapshot) *Panel {
	if snap == nil {
		snap = &view.Snapshot{State: view.InitialState()}
	}
	c := catalog.MustLoad()
	res := snap.ScoresOrZero()
	series := c.TrendSeries(res)

	p := &Panel{
		State:       snap.State,
		PeriodLabel: snap.State.Period.Label(),
		Computed:    snap.Scores != nil,
		Scores:      res,
		Risk:        esg.DisplayRisk(res.RiskLevel),
		Trend:       series,
		Trends:      trend.Compute(series),
		Catalog:     c,
	}

	p.Cards = []Card{
		{Label: "Overall ESG Score", Score: res.Overall, Caption: c.Summary.OverallCaption},
		{Label: "Environmental", Score: res.Environmental, Caption: c.Pillars.Environmental},
		{Label: "Social", Score: res.Social, Caption: c.Pillars.Social},
		{Label: "Governance", Score: res.Governance, Caption: c.Pillars.Governance},
	}
	for i := range p.Cards {
		p.Cards[i].Band = esg.ScoreBand(p.Cards[i].Score)
	}

	if p.Computed {
		for _, mc := range c.MetricCards {
			v, ok := catalog.MetricValue(res.RawMetrics, mc.Metric)
			if !ok {
				continue
			}
			p.Metrics = append(p.Metrics, MetricRow{
				Pillar:  mc.Pillar,
				Label:   mc.Label,
				Metric:  mc.Metric,
				Raw:     v,
				Value:   FormatMetric(mc.Metric, v),
				Caption: mc.Caption,
			})
		}
	}
	return p
}

// MetricsFor returns the metric rows of one pillar.
func (p *Panel) MetricsFor(pillar string) []MetricRow {
	var out []MetricRow
	for _, m := range p.Metrics {
		if m.Pillar == pillar {
			out = append(out, m)
		}
	}
	return out
}
