// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/canopy-esg/canopy/internal/catalog"
	"github.com/canopy-esg/canopy/internal/esg"
	"github.com/canopy-esg/canopy/internal/view"
)

func init() {
	Register(&scoreCardsSection{})
	Register(&riskSection{})
}

// scoreCardsSection shows the overall and per-pillar score cards.
type scoreCardsSection struct {
	cards []Card
}

func (s *scoreCardsSection) Name() string        { return "score-cards" }
func (s *scoreCardsSection) Description() string { return "Overall and per-pillar ESG scores" }
func (s *scoreCardsSection) Tab() view.Tab       { return view.Dashboard }

func (s *scoreCardsSection) Analyze(snap *view.Snapshot) error {
	s.cards = BuildPanel(snap).Cards
	return nil
}

func (s *scoreCardsSection) Render(w io.Writer) error {
	writeTitle(w, "ESG Scores")

	tbl := NewTable(
		Column{Header: "Card"},
		Column{Header: "Score", Align: AlignRight, Color: ColorScore},
		Column{Header: "Band", Color: ColorBand},
		Column{Header: "Note"},
	)
	for _, c := range s.cards {
		tbl.AddRow(c.Label, FormatScore(c.Score), string(c.Band), c.Caption)
	}
	return renderTable(w, tbl)
}

// riskSection shows the risk level, the risk matrix and key risk indicators.
type riskSection struct {
	level      esg.RiskLevel
	risks      []catalog.Risk
	indicators []catalog.Indicator
}

func (s *riskSection) Name() string        { return "risk" }
func (s *riskSection) Description() string { return "Sustainability risk level, risk matrix and key indicators" }
func (s *riskSection) Tab() view.Tab       { return view.Dashboard }

func (s *riskSection) Analyze(snap *view.Snapshot) error {
	p := BuildPanel(snap)
	s.level = p.Risk
	s.risks = p.Catalog.Risks
	s.indicators = p.Catalog.Indicators
	return nil
}

func (s *riskSection) Render(w io.Writer) error {
	writeTitle(w, "Sustainability Risk Level")
	_, _ = fmt.Fprintf(w, "  Risk level: %s\n\n", ColorRiskLevel(string(s.level)))

	_, _ = fmt.Fprintf(w, "  Risk Matrix\n")
	matrix := NewTable(
		Column{Header: "Category"},
		Column{Header: "Likelihood", Align: AlignRight},
		Column{Header: "Impact", Align: AlignRight},
		Column{Header: "Score", Align: AlignRight},
		Column{Header: "Severity", Color: ColorSeverity},
	)
	for _, r := range s.risks {
		matrix.AddRow(r.Category, itoa(r.Likelihood), itoa(r.Impact), itoa(r.Score), r.Severity())
	}
	if err := renderTable(w, matrix); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "  Key Risk Indicators\n")
	kri := NewTable(
		Column{Header: "Indicator"},
		Column{Header: "Status", Color: ColorStatus},
	)
	for _, ind := range s.indicators {
		kri.AddRow(ind.Name, ind.Status)
	}
	return renderTable(w, kri)
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle(title))
	_, _ = fmt.Fprintf(w, "%s\n", underline(title))
}

// renderTable renders tbl followed by a blank line.
func renderTable(w io.Writer, tbl *Table) error {
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}
