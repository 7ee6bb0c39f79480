package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/canopy-esg/canopy/internal/esg"
	"github.com/canopy-esg/canopy/internal/trend"
	"github.com/canopy-esg/canopy/internal/view"
)

// renderMu serializes Analyze/Render pairs; registered sections keep the
// analyzed state between the two calls.
var renderMu sync.Mutex

// PanelJSON is the top-level JSON structure for --format json output.
type PanelJSON struct {
	Title          string          `json:"title"`
	Tab            view.Tab        `json:"tab"`
	Period         view.Period     `json:"period"`
	PeriodLabel    string          `json:"period_label"`
	Computed       bool            `json:"computed"`
	Scores         esg.ScoreResult `json:"scores"`
	Risk           esg.RiskLevel   `json:"risk"`
	Recomputations int             `json:"recomputations"`
	Cards          []Card          `json:"cards"`
	Trends         *trend.Result   `json:"trends,omitempty"`
	Sections       []SectionJSON   `json:"sections,omitempty"`
}

// SectionJSON is the JSON representation of a single panel section.
type SectionJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`            // "ok", "skipped"
	Content     string `json:"content,omitempty"` // rendered text
}

// RenderPanel writes the terminal rendering of the active panel: header with
// the tab bar, the active tab's sections and the footer statistics. A
// non-empty filter limits which of the active tab's sections are rendered.
func RenderPanel(snap *view.Snapshot, filter []string, w io.Writer) error {
	p := BuildPanel(snap)
	writeHeader(w, p)

	sections, err := renderSections(snap, p.State.Tab, filter)
	if err != nil {
		return err
	}
	for _, sj := range sections {
		if sj.Status == "skipped" {
			writeTitle(w, sj.Description)
			_, _ = fmt.Fprintf(w, "  %s\n\n", colorFaint.Sprint("No scores computed yet."))
			continue
		}
		if _, err := io.WriteString(w, sj.Content); err != nil {
			return fmt.Errorf("write panel: %w", err)
		}
	}

	writeFooter(w, p)
	return nil
}

func writeHeader(w io.Writer, p *Panel) {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle(Title))
	_, _ = fmt.Fprintf(w, "%s\n\n", Subtitle)
	_, _ = fmt.Fprintf(w, "Period: %s\n\n", p.PeriodLabel)
	_, _ = fmt.Fprintf(w, "%s\n", TabBar(p.State.Tab))
	_, _ = fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", tabBarWidth()))
}

// TabBar renders the tab labels with the active tab bracketed.
func TabBar(active view.Tab) string {
	parts := make([]string, 0, len(view.Tabs()))
	for _, t := range view.Tabs() {
		if t == active {
			parts = append(parts, colorGreen.Sprint(tabLabel(t, active)))
		} else {
			parts = append(parts, colorFaint.Sprint(tabLabel(t, active)))
		}
	}
	return strings.Join(parts, " ")
}

func tabLabel(t, active view.Tab) string {
	if t == active {
		return "[" + t.Title() + "]"
	}
	return " " + t.Title() + " "
}

// tabBarWidth is the printed width of TabBar without color codes.
func tabBarWidth() int {
	n := len(view.Tabs()) - 1
	for _, t := range view.Tabs() {
		n += width(t.Title()) + 2
	}
	return n
}

func writeFooter(w io.Writer, p *Panel) {
	sum := p.Catalog.Summary
	stats := []string{
		humanize.Comma(int64(sum.DataPoints)) + " Data Points Analyzed",
		fmt.Sprintf("%d%% Accuracy Improvement", sum.AccuracyImprovementPct),
		fmt.Sprintf("%d Regulatory Frameworks", sum.Frameworks),
		sum.Monitoring + " Risk Monitoring",
	}
	_, _ = fmt.Fprintf(w, "%s\n", strings.Repeat("-", 40))
	_, _ = fmt.Fprintf(w, "%s\n", strings.Join(stats, " | "))
}

// BuildJSON assembles the machine-readable form of the active panel.
func BuildJSON(snap *view.Snapshot, filter []string) (*PanelJSON, error) {
	p := BuildPanel(snap)
	out := &PanelJSON{
		Title:       Title,
		Tab:         p.State.Tab,
		Period:      p.State.Period,
		PeriodLabel: p.PeriodLabel,
		Computed:    p.Computed,
		Scores:      p.Scores,
		Risk:        p.Risk,
		Cards:       p.Cards,
		Trends:      p.Trends,
	}
	if snap != nil {
		out.Recomputations = snap.Recomputations
	}

	sections, err := renderSections(snap, p.State.Tab, filter)
	if err != nil {
		return nil, err
	}
	out.Sections = sections
	return out, nil
}

// RenderJSON writes the active panel as machine-readable JSON.
func RenderJSON(snap *view.Snapshot, filter []string, w io.Writer) error {
	out, err := BuildJSON(snap, filter)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderSections(snap *view.Snapshot, tab view.Tab, filter []string) ([]SectionJSON, error) {
	renderMu.Lock()
	defer renderMu.Unlock()

	var out []SectionJSON
	for _, name := range ResolveSections(tab, filter) {
		sec := Get(name)
		if sec == nil {
			continue
		}

		sj := SectionJSON{
			Name:        sec.Name(),
			Description: sec.Description(),
		}

		if err := sec.Analyze(snap); err != nil {
			if errors.Is(err, ErrScoresNotAvailable) {
				sj.Status = "skipped"
				out = append(out, sj)
				continue
			}
			return nil, fmt.Errorf("section %s: %w", name, err)
		}

		sj.Status = "ok"
		var buf bytes.Buffer
		if err := sec.Render(&buf); err != nil {
			return nil, fmt.Errorf("section %s render: %w", name, err)
		}
		sj.Content = buf.String()
		out = append(out, sj)
	}
	return out, nil
}

// ResolveSections determines which sections of tab to render. If filter is
// empty, all of the tab's sections are used; otherwise only the filtered
// names that belong to tab, in registration order.
func ResolveSections(tab view.Tab, filter []string) []string {
	onTab := ForTab(tab)
	if len(filter) == 0 {
		return onTab
	}

	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		wanted[strings.TrimSpace(name)] = true
	}

	var names []string
	for _, name := range onTab {
		if wanted[name] {
			names = append(names, name)
		}
	}
	return names
}
