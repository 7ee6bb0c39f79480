// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopy-esg/canopy/internal/esg"
)

func TestParseTab(t *testing.T) {
	tests := []struct {
		in   string
		want Tab
	}{
		{"dashboard", Dashboard},
		{"Dashboard", Dashboard},
		{"metrics", DetailedMetrics},
		{"Detailed Metrics", DetailedMetrics},
		{"detailed-metrics", DetailedMetrics},
		{"regulatory", RegulatoryReporting},
		{" REGULATORY REPORTING ", RegulatoryReporting},
	}
	for _, tt := range tests {
		got, err := ParseTab(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseTab("settings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tab")
}

func TestTab_StringAndTitle(t *testing.T) {
	assert.Equal(t, "metrics", DetailedMetrics.String())
	assert.Equal(t, "Regulatory Reporting", RegulatoryReporting.Title())
	assert.Equal(t, "tab(7)", Tab(7).String())
	assert.False(t, Tab(-1).Valid())
}

func TestTab_JSON(t *testing.T) {
	data, err := json.Marshal(State{Tab: RegulatoryReporting, Period: Period2024Q2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tab":"regulatory","period":"2024-Q2"}`, string(data))

	var s State
	require.NoError(t, json.Unmarshal([]byte(`{"tab":"metrics","period":"2024-Q1"}`), &s))
	assert.Equal(t, DetailedMetrics, s.Tab)
	assert.Equal(t, Period2024Q1, s.Period)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2024-Q3")
	require.NoError(t, err)
	assert.Equal(t, Period2024Q3, p)

	p, err = ParsePeriod("q1 2024")
	require.NoError(t, err)
	assert.Equal(t, Period2024Q1, p)

	_, err = ParsePeriod("2023-Q4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2024-Q4")
}

func TestPeriod_Label(t *testing.T) {
	assert.Equal(t, "Q4 2024", Period2024Q4.Label())
	assert.Equal(t, "odd", Period("odd").Label())
}

func TestReduce(t *testing.T) {
	s := InitialState()
	assert.Equal(t, Dashboard, s.Tab)
	assert.Equal(t, Period2024Q4, s.Period)

	s = Reduce(s, SelectTab{Tab: RegulatoryReporting})
	assert.Equal(t, RegulatoryReporting, s.Tab)
	assert.Equal(t, Period2024Q4, s.Period)

	s = Reduce(s, SelectPeriod{Period: Period2024Q2})
	assert.Equal(t, RegulatoryReporting, s.Tab)
	assert.Equal(t, Period2024Q2, s.Period)

	// Invalid values are ignored.
	assert.Equal(t, s, Reduce(s, SelectTab{Tab: Tab(9)}))
	assert.Equal(t, s, Reduce(s, SelectPeriod{Period: "1999-Q1"}))
}

func TestController_InitialComputation(t *testing.T) {
	c := NewController()

	assert.Equal(t, InitialState(), c.State())
	assert.Equal(t, 1, c.Recomputations())

	res, ok := c.Scores()
	require.True(t, ok)
	assert.Equal(t, 65.3, res.Overall)
	assert.Equal(t, esg.RiskMedium, res.RiskLevel)
}

func TestController_TabTransitions(t *testing.T) {
	c := NewController()

	for _, tab := range []Tab{Dashboard, DetailedMetrics, RegulatoryReporting} {
		c.SelectTab(tab)
		assert.Equal(t, tab, c.State().Tab)

		active := 0
		for _, candidate := range Tabs() {
			if candidate == c.State().Tab {
				active++
			}
		}
		assert.Equal(t, 1, active)
	}

	before := c.Snapshot()
	c.SelectTab(RegulatoryReporting)
	assert.Equal(t, before, c.Snapshot(), "selecting the active tab is a no-op")

	c.SelectTab(Dashboard)
	assert.Equal(t, 1, c.Recomputations(), "tab changes never recompute")
}

func TestController_PeriodChangeRecomputes(t *testing.T) {
	calls := 0
	var periods []Period
	c := NewController(WithScoreFunc(func(p Period) esg.ScoreResult {
		calls++
		periods = append(periods, p)
		return BaselineScores(p)
	}))
	require.Equal(t, 1, calls)

	first, _ := c.Scores()
	for _, p := range []Period{Period2024Q3, Period2024Q2, Period2024Q1, Period2024Q4} {
		c.SelectPeriod(p)
		got, ok := c.Scores()
		require.True(t, ok)
		assert.Equal(t, first, got, "period does not change the inputs")
	}

	assert.Equal(t, 5, calls)
	assert.Equal(t, 5, c.Recomputations())
	assert.Equal(t, []Period{Period2024Q4, Period2024Q3, Period2024Q2, Period2024Q1, Period2024Q4}, periods)
}

func TestController_SamePeriodIsNoop(t *testing.T) {
	c := NewController()
	c.SelectPeriod(Period2024Q4)
	assert.Equal(t, 1, c.Recomputations())

	c.SelectPeriod("2030-Q1")
	assert.Equal(t, 1, c.Recomputations())
	assert.Equal(t, Period2024Q4, c.State().Period)
}

func TestController_Observer(t *testing.T) {
	var seen []Period
	c := NewController(WithObserver(func(p Period, res esg.ScoreResult) {
		seen = append(seen, p)
		assert.Equal(t, 65.3, res.Overall)
	}))
	c.SelectPeriod(Period2024Q1)

	assert.Equal(t, []Period{Period2024Q4, Period2024Q1}, seen)
}

func TestController_InitialStateOption(t *testing.T) {
	c := NewController(WithInitialState(State{Tab: DetailedMetrics, Period: Period2024Q2}))
	assert.Equal(t, State{Tab: DetailedMetrics, Period: Period2024Q2}, c.State())
	assert.Equal(t, 1, c.Recomputations())

	c = NewController(WithInitialState(State{Tab: Tab(42), Period: "bogus"}))
	assert.Equal(t, InitialState(), c.State())
}

func TestController_Dispatch(t *testing.T) {
	c := NewController()
	c.Dispatch(SelectTab{Tab: DetailedMetrics})
	c.Dispatch(SelectPeriod{Period: Period2024Q3})

	assert.Equal(t, State{Tab: DetailedMetrics, Period: Period2024Q3}, c.State())
	assert.Equal(t, 2, c.Recomputations())
}

func TestSnapshot_ScoresOrZero(t *testing.T) {
	var empty Snapshot
	assert.Equal(t, esg.ScoreResult{}, empty.ScoresOrZero())

	snap := NewController().Snapshot()
	require.NotNil(t, snap.Scores)
	assert.Equal(t, 40.2, snap.ScoresOrZero().Environmental)
	assert.Equal(t, 1, snap.Recomputations)
}
