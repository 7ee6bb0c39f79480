// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/canopy-esg/canopy/internal/view"
)

func init() {
	Register(&trendsSection{})
}

// trendsSection shows the quarterly score history and per-pillar trend lines.
type trendsSection struct {
	panel *Panel
}

func (s *trendsSection) Name() string        { return "trends" }
func (s *trendsSection) Description() string { return "ESG performance trends by quarter" }
func (s *trendsSection) Tab() view.Tab       { return view.Dashboard }

func (s *trendsSection) Analyze(snap *view.Snapshot) error {
	s.panel = BuildPanel(snap)
	return nil
}

func (s *trendsSection) Render(w io.Writer) error {
	writeTitle(w, "ESG Performance Trends")

	history := NewTable(
		Column{Header: "Quarter"},
		Column{Header: "Environmental", Align: AlignRight},
		Column{Header: "Social", Align: AlignRight},
		Column{Header: "Governance", Align: AlignRight},
		Column{Header: "Overall", Align: AlignRight, Color: ColorScore},
	)
	for _, p := range s.panel.Trend {
		q := p.Quarter
		if p.Live {
			q += " *"
		}
		history.AddRow(q, FormatScore(p.Environmental), FormatScore(p.Social),
			FormatScore(p.Governance), FormatScore(p.Overall))
	}
	if err := history.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "  * current quarter\n\n")

	t := s.panel.Trends
	if t == nil {
		return nil
	}
	_, _ = fmt.Fprintf(w, "  Change %s to %s over %d quarters\n", t.From, t.To, t.DataPoints)
	lines := NewTable(
		Column{Header: "Pillar"},
		Column{Header: "Current", Align: AlignRight},
		Column{Header: "Previous", Align: AlignRight},
		Column{Header: "Delta", Align: AlignRight},
		Column{Header: "Slope", Align: AlignRight},
		Column{Header: "Direction", Color: ColorDirection},
	)
	for _, l := range t.Lines {
		lines.AddRow(l.Pillar, FormatScore(l.Current), FormatScore(l.Previous),
			formatDelta(l.Delta), formatSlope(l.Slope), string(l.Direction))
	}
	return renderTable(w, lines)
}
