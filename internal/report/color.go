// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"

	"github.com/fatih/color"

	"github.com/canopy-esg/canopy/internal/esg"
)

// Shared color printers for panel sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
	colorFaint  = color.New(color.Faint)
)

// ColorBand colors a value by its score band label.
func ColorBand(val string) string {
	switch esg.Band(val) {
	case esg.BandGood:
		return colorGreen.Sprint(val)
	case esg.BandFair:
		return colorYellow.Sprint(val)
	case esg.BandPoor:
		return colorRed.Sprint(val)
	default:
		return val
	}
}

// ColorScore colors a formatted score by the band of its numeric value.
// Values that do not parse are returned unchanged.
func ColorScore(val string) string {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return val
	}
	return paint(esg.ScoreBand(f), val)
}

// ColorRiskLevel colors Low/Medium/High risk labels.
func ColorRiskLevel(val string) string {
	return paint(esg.RiskLevel(val).Band(), val)
}

// ColorSeverity colors risk matrix severities.
func ColorSeverity(val string) string {
	switch val {
	case "high":
		return colorRed.Sprint(val)
	case "elevated":
		return colorYellow.Sprint(val)
	case "low":
		return colorGreen.Sprint(val)
	default:
		return val
	}
}

// ColorStatus colors compliance and indicator statuses.
func ColorStatus(val string) string {
	switch val {
	case "Compliant", "ok":
		return colorGreen.Sprint(val)
	case "Partial", "watch":
		return colorYellow.Sprint(val)
	case "Material":
		return colorRed.Sprint(val)
	default:
		return val
	}
}

// ColorDirection colors trend direction labels.
func ColorDirection(val string) string {
	switch val {
	case "improving":
		return colorGreen.Sprint(val)
	case "degrading":
		return colorRed.Sprint(val)
	default:
		return val
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

func paint(b esg.Band, val string) string {
	switch b {
	case esg.BandGood:
		return colorGreen.Sprint(val)
	case esg.BandPoor:
		return colorRed.Sprint(val)
	default:
		return colorYellow.Sprint(val)
	}
}
