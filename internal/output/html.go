package output

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/canopy-esg/canopy/internal/catalog"
	"github.com/canopy-esg/canopy/internal/report"
	"github.com/canopy-esg/canopy/internal/view"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// Chart geometry in SVG user units.
const (
	chartWidth   = 600
	chartPadLeft = 40
	chartPadTop  = 20
	chartPlotH   = 200
)

// HTMLFormatter writes the active panel as a self-contained HTML page.
type HTMLFormatter struct {
	// BasePath is the URL path tab links and the period form point at.
	// Empty means the page links to itself.
	BasePath string

	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// Format writes the panel as an HTML page to w.
func (h *HTMLFormatter) Format(snap *view.Snapshot, w io.Writer) error {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"score": report.FormatScore,
		}).Parse(htmlTemplate))
	})

	now := time.Now()
	if h.nowFunc != nil {
		now = h.nowFunc()
	}

	data := buildHTMLData(report.BuildPanel(snap), h.BasePath, now)
	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the HTML page.
type htmlData struct {
	Title       string
	Subtitle    string
	GeneratedAt string
	BasePath    string
	Tab         string
	Tabs        []htmlTab
	Periods     []htmlOption
	Panel       *report.Panel
	Catalog     *catalog.Catalog
	TrendLines  []htmlSeries
	TrendAxis   []htmlLabel
	Bars        []htmlBar
	Footer      []htmlStat
}

type htmlTab struct {
	Label  string
	Href   string
	Active bool
}

type htmlOption struct {
	Value    string
	Label    string
	Selected bool
}

type htmlSeries struct {
	Name   string
	Color  string
	Points string
	Width  int
}

type htmlLabel struct {
	Text string
	X    int
}

type htmlBar struct {
	Label  string
	Score  int
	X      int
	Y      int
	Width  int
	Height int
}

type htmlStat struct {
	Value string
	Label string
	Class string
}

func buildHTMLData(p *report.Panel, basePath string, now time.Time) htmlData {
	data := htmlData{
		Title:       report.Title,
		Subtitle:    report.Subtitle,
		GeneratedAt: now.UTC().Format("2006-01-02 15:04 UTC"),
		BasePath:    basePath,
		Tab:         p.State.Tab.String(),
		Panel:       p,
		Catalog:     p.Catalog,
	}

	for _, t := range view.Tabs() {
		data.Tabs = append(data.Tabs, htmlTab{
			Label:  t.Title(),
			Href:   pageHref(basePath, t, p.State.Period),
			Active: t == p.State.Tab,
		})
	}
	for _, per := range view.Periods() {
		data.Periods = append(data.Periods, htmlOption{
			Value:    string(per),
			Label:    per.Label(),
			Selected: per == p.State.Period,
		})
	}

	data.TrendLines, data.TrendAxis = trendChart(p.Trend)
	data.Bars = frameworkBars(p.Catalog.Frameworks)

	sum := p.Catalog.Summary
	data.Footer = []htmlStat{
		{Value: humanize.Comma(int64(sum.DataPoints)), Label: "Data Points Analyzed", Class: "green"},
		{Value: strconv.Itoa(sum.AccuracyImprovementPct) + "%", Label: "Accuracy Improvement", Class: "blue"},
		{Value: strconv.Itoa(sum.Frameworks), Label: "Regulatory Frameworks", Class: "purple"},
		{Value: sum.Monitoring, Label: "Risk Monitoring", Class: "orange"},
	}
	return data
}

// pageHref builds the link that selects tab while keeping period.
func pageHref(basePath string, tab view.Tab, period view.Period) string {
	q := url.Values{}
	q.Set("tab", tab.String())
	q.Set("period", string(period))
	return basePath + "?" + q.Encode()
}

// trendChart lays out one polyline per pillar on a 0-100 scale.
func trendChart(points []catalog.TrendPoint) ([]htmlSeries, []htmlLabel) {
	if len(points) == 0 {
		return nil, nil
	}
	step := 0.0
	if len(points) > 1 {
		step = float64(chartWidth-2*chartPadLeft) / float64(len(points)-1)
	}
	x := func(i int) float64 { return chartPadLeft + float64(i)*step }
	y := func(v float64) float64 { return chartPadTop + chartPlotH - v*chartPlotH/100 }

	series := []struct {
		name  string
		color string
		width int
		get   func(catalog.TrendPoint) float64
	}{
		{"Environmental", "#10b981", 2, func(p catalog.TrendPoint) float64 { return p.Environmental }},
		{"Social", "#3b82f6", 2, func(p catalog.TrendPoint) float64 { return p.Social }},
		{"Governance", "#f59e0b", 2, func(p catalog.TrendPoint) float64 { return p.Governance }},
		{"Overall", "#8b5cf6", 3, func(p catalog.TrendPoint) float64 { return p.Overall }},
	}

	lines := make([]htmlSeries, 0, len(series))
	for _, s := range series {
		coords := make([]string, len(points))
		for i, p := range points {
			coords[i] = fmt.Sprintf("%.1f,%.1f", x(i), y(s.get(p)))
		}
		lines = append(lines, htmlSeries{Name: s.name, Color: s.color, Width: s.width, Points: strings.Join(coords, " ")})
	}

	axis := make([]htmlLabel, len(points))
	for i, p := range points {
		axis[i] = htmlLabel{Text: p.Quarter, X: int(x(i))}
	}
	return lines, axis
}

// frameworkBars lays out one vertical bar per framework on a 0-100 scale.
func frameworkBars(frameworks []catalog.Framework) []htmlBar {
	if len(frameworks) == 0 {
		return nil
	}
	slot := (chartWidth - 2*chartPadLeft) / len(frameworks)
	bars := make([]htmlBar, len(frameworks))
	for i, f := range frameworks {
		h := min(max(f.Score, 0), 100) * chartPlotH / 100
		bars[i] = htmlBar{
			Label:  f.Name,
			Score:  f.Score,
			X:      chartPadLeft + i*slot + slot/4,
			Y:      chartPadTop + chartPlotH - h,
			Width:  slot / 2,
			Height: h,
		}
	}
	return bars
}
