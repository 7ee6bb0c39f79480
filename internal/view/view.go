// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

// Package view tracks which dashboard panel is active and which reporting
// period is selected. State changes go through a pure reducer; the
// Controller owns the state and recomputes scores when the period changes.
package view

import (
	"fmt"
	"strings"
)

// Tab identifies one of the mutually exclusive dashboard panels.
type Tab int

const (
	// Dashboard is the summary panel and the initial tab.
	Dashboard Tab = iota
	// DetailedMetrics lists the raw metric values per pillar.
	DetailedMetrics
	// RegulatoryReporting shows framework alignment and disclosures.
	RegulatoryReporting
)

var tabNames = [...]string{"dashboard", "metrics", "regulatory"}

var tabTitles = [...]string{"Dashboard", "Detailed Metrics", "Regulatory Reporting"}

// Tabs returns all tabs in display order.
func Tabs() []Tab {
	return []Tab{Dashboard, DetailedMetrics, RegulatoryReporting}
}

// String returns the short identifier used in flags and URLs.
func (t Tab) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tab(%d)", int(t))
	}
	return tabNames[t]
}

// Title returns the human-readable tab label.
func (t Tab) Title() string {
	if !t.Valid() {
		return t.String()
	}
	return tabTitles[t]
}

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	return t >= Dashboard && t <= RegulatoryReporting
}

// ParseTab accepts a short identifier ("metrics") or a title
// ("Detailed Metrics"), case-insensitively.
func ParseTab(s string) (Tab, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tabs() {
		if norm == tabNames[t] || norm == strings.ToLower(tabTitles[t]) {
			return t, nil
		}
	}
	switch norm {
	case "detailed-metrics", "detailed_metrics", "detailedmetrics":
		return DetailedMetrics, nil
	case "regulatory-reporting", "regulatory_reporting", "regulatoryreporting":
		return RegulatoryReporting, nil
	}
	return Dashboard, fmt.Errorf("unknown tab %q (valid: %s)", s, strings.Join(tabNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (t Tab) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tab) UnmarshalText(b []byte) error {
	parsed, err := ParseTab(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Period is a reporting period label such as "2024-Q4".
type Period string

const (
	Period2024Q4 Period = "2024-Q4"
	Period2024Q3 Period = "2024-Q3"
	Period2024Q2 Period = "2024-Q2"
	Period2024Q1 Period = "2024-Q1"
)

// DefaultPeriod is the period selected on startup.
const DefaultPeriod = Period2024Q4

// Periods returns the selectable periods, most recent first.
func Periods() []Period {
	return []Period{Period2024Q4, Period2024Q3, Period2024Q2, Period2024Q1}
}

// Valid reports whether p is one of the selectable periods.
func (p Period) Valid() bool {
	for _, known := range Periods() {
		if p == known {
			return true
		}
	}
	return false
}

// Label returns the display form, e.g. "Q4 2024".
func (p Period) Label() string {
	year, quarter, ok := strings.Cut(string(p), "-")
	if !ok {
		return string(p)
	}
	return quarter + " " + year
}

// ParsePeriod accepts "2024-Q4" or the display form "Q4 2024".
func ParsePeriod(s string) (Period, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	for _, p := range Periods() {
		if norm == string(p) || norm == strings.ToUpper(p.Label()) {
			return p, nil
		}
	}
	names := make([]string, 0, len(Periods()))
	for _, p := range Periods() {
		names = append(names, string(p))
	}
	return "", fmt.Errorf("unknown period %q (valid: %s)", s, strings.Join(names, ", "))
}
