// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/canopy-esg/canopy/internal/catalog"
	"github.com/canopy-esg/canopy/internal/view"
)

func init() {
	Register(&frameworksSection{})
	Register(&griSection{})
	Register(&sasbSection{})
	Register(&tcfdSection{})
	Register(&downloadsSection{})
}

// barWidth is the number of cells a score of 100 fills.
const barWidth = 20

// frameworksSection shows the alignment score for each reporting framework.
type frameworksSection struct {
	frameworks []catalog.Framework
}

func (s *frameworksSection) Name() string        { return "frameworks" }
func (s *frameworksSection) Description() string { return "Regulatory framework alignment" }
func (s *frameworksSection) Tab() view.Tab       { return view.RegulatoryReporting }

func (s *frameworksSection) Analyze(snap *view.Snapshot) error {
	s.frameworks = BuildPanel(snap).Catalog.Frameworks
	return nil
}

func (s *frameworksSection) Render(w io.Writer) error {
	writeTitle(w, "Regulatory Framework Alignment")
	tbl := NewTable(
		Column{Header: "Framework"},
		Column{Header: "Score", Align: AlignRight, Color: ColorScore},
		Column{Header: ""},
	)
	for _, f := range s.frameworks {
		tbl.AddRow(f.Name, itoa(f.Score), bar(f.Score))
	}
	return renderTable(w, tbl)
}

// bar draws a horizontal bar for a 0-100 score.
func bar(score int) string {
	n := min(max(score*barWidth/100, 0), barWidth)
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}

// griSection shows GRI standards compliance.
type griSection struct {
	items []catalog.GRIItem
}

func (s *griSection) Name() string        { return "gri" }
func (s *griSection) Description() string { return "GRI standards compliance" }
func (s *griSection) Tab() view.Tab       { return view.RegulatoryReporting }

func (s *griSection) Analyze(snap *view.Snapshot) error {
	s.items = BuildPanel(snap).Catalog.GRI
	return nil
}

func (s *griSection) Render(w io.Writer) error {
	writeTitle(w, "GRI Standards Compliance")
	tbl := NewTable(Column{Header: "Standard"}, Column{Header: "Status", Color: ColorStatus})
	for _, it := range s.items {
		tbl.AddRow(it.Standard, it.Status)
	}
	return renderTable(w, tbl)
}

// sasbSection shows the SASB materiality assessment.
type sasbSection struct {
	items []catalog.SASBItem
}

func (s *sasbSection) Name() string        { return "sasb" }
func (s *sasbSection) Description() string { return "SASB materiality assessment" }
func (s *sasbSection) Tab() view.Tab       { return view.RegulatoryReporting }

func (s *sasbSection) Analyze(snap *view.Snapshot) error {
	s.items = BuildPanel(snap).Catalog.SASB
	return nil
}

func (s *sasbSection) Render(w io.Writer) error {
	writeTitle(w, "SASB Materiality Assessment")
	tbl := NewTable(Column{Header: "Topic"}, Column{Header: "Assessment", Color: ColorStatus})
	for _, it := range s.items {
		tbl.AddRow(it.Topic, it.Assessment)
	}
	return renderTable(w, tbl)
}

// tcfdSection shows the four TCFD disclosure pillars.
type tcfdSection struct {
	pillars []catalog.TCFDPillar
}

func (s *tcfdSection) Name() string        { return "tcfd" }
func (s *tcfdSection) Description() string { return "TCFD climate disclosure" }
func (s *tcfdSection) Tab() view.Tab       { return view.RegulatoryReporting }

func (s *tcfdSection) Analyze(snap *view.Snapshot) error {
	s.pillars = BuildPanel(snap).Catalog.TCFD
	return nil
}

func (s *tcfdSection) Render(w io.Writer) error {
	writeTitle(w, "TCFD Climate Disclosure")
	for _, p := range s.pillars {
		_, _ = fmt.Fprintf(w, "  %s\n", colorBold.Sprint(p.Pillar))
		_, _ = fmt.Fprintf(w, "    %s\n", p.Disclosure)
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}

// downloadsSection lists the report packages. They are not generated.
type downloadsSection struct {
	downloads []catalog.Download
}

func (s *downloadsSection) Name() string        { return "downloads" }
func (s *downloadsSection) Description() string { return "Report generation" }
func (s *downloadsSection) Tab() view.Tab       { return view.RegulatoryReporting }

func (s *downloadsSection) Analyze(snap *view.Snapshot) error {
	s.downloads = BuildPanel(snap).Catalog.Downloads
	return nil
}

func (s *downloadsSection) Render(w io.Writer) error {
	writeTitle(w, "Report Generation")
	tbl := NewTable(Column{Header: "ID"}, Column{Header: "Report"})
	for _, d := range s.downloads {
		tbl.AddRow(d.ID, d.Title)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "  %s\n\n", colorFaint.Sprint("Report generation is not available in this edition."))
	return nil
}
