// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

// Package trend derives per-pillar trend lines from the quarterly score
// series shown on the dashboard.
package trend

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/canopy-esg/canopy/internal/catalog"
	"github.com/canopy-esg/canopy/internal/esg"
)

// Deadband is the score change, in points, at or below which a pillar is
// reported as stable.
const Deadband = 1.0

// Direction describes whether a score is improving, stable, or degrading.
type Direction string

const (
	Improving Direction = "improving"
	Stable    Direction = "stable"
	Degrading Direction = "degrading"
)

// Pillar names, in display order.
const (
	Environmental = "Environmental"
	Social        = "Social"
	Governance    = "Governance"
	Overall       = "Overall"
)

// Line captures the change of one pillar between the last two quarters and
// its least-squares slope per quarter over the whole series.
type Line struct {
	Pillar    string    `json:"pillar"`
	Current   float64   `json:"current"`
	Previous  float64   `json:"previous"`
	Delta     float64   `json:"delta"`
	Slope     float64   `json:"slope"`
	Direction Direction `json:"direction"`
}

// Result holds the trend lines for every pillar.
type Result struct {
	Lines      []Line `json:"lines"`
	From       string `json:"from"`
	To         string `json:"to"`
	DataPoints int    `json:"data_points"`
}

// Line returns the line for the named pillar.
func (r *Result) Line(pillar string) (Line, bool) {
	for _, l := range r.Lines {
		if l.Pillar == pillar {
			return l, true
		}
	}
	return Line{}, false
}

// Compute builds trend lines from a quarterly series ordered oldest first.
// It returns nil when fewer than two points are available.
func Compute(points []catalog.TrendPoint) *Result {
	if len(points) < 2 {
		return nil
	}

	xs := make([]float64, len(points))
	for i := range xs {
		xs[i] = float64(i)
	}

	series := []struct {
		name string
		get  func(catalog.TrendPoint) float64
	}{
		{Environmental, func(p catalog.TrendPoint) float64 { return p.Environmental }},
		{Social, func(p catalog.TrendPoint) float64 { return p.Social }},
		{Governance, func(p catalog.TrendPoint) float64 { return p.Governance }},
		{Overall, func(p catalog.TrendPoint) float64 { return p.Overall }},
	}

	res := &Result{
		From:       points[0].Quarter,
		To:         points[len(points)-1].Quarter,
		DataPoints: len(points),
	}
	ys := make([]float64, len(points))
	for _, s := range series {
		for i, p := range points {
			ys[i] = s.get(p)
		}
		prev := ys[len(ys)-2]
		cur := ys[len(ys)-1]
		_, slope := stat.LinearRegression(xs, ys, nil, false)
		res.Lines = append(res.Lines, Line{
			Pillar:    s.name,
			Current:   cur,
			Previous:  prev,
			Delta:     esg.Round1(cur - prev),
			Slope:     math.Round(slope*100) / 100,
			Direction: Classify(prev, cur),
		})
	}
	return res
}

// Classify compares two scores. Higher scores are better.
func Classify(prev, cur float64) Direction {
	d := cur - prev
	switch {
	case math.Abs(d) <= Deadband:
		return Stable
	case d > 0:
		return Improving
	default:
		return Degrading
	}
}

// QuarterChange returns the percentage change of the overall score between
// the last two points, and false when there are fewer than two points or the
// previous score is zero.
func QuarterChange(points []catalog.TrendPoint) (float64, bool) {
	if len(points) < 2 {
		return 0, false
	}
	prev := points[len(points)-2].Overall
	cur := points[len(points)-1].Overall
	if prev == 0 {
		return 0, false
	}
	return (cur - prev) / prev * 100, true
}
