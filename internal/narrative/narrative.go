// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

// Package narrative writes an executive summary of the current ESG scores
// with a language model.
package narrative

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/canopy-esg/canopy/internal/catalog"
	"github.com/canopy-esg/canopy/internal/esg"
	"github.com/canopy-esg/canopy/internal/llm"
	"github.com/canopy-esg/canopy/internal/trend"
	"github.com/canopy-esg/canopy/internal/view"
)

// ErrNoScores is returned when the snapshot has no computed scores.
var ErrNoScores = errors.New("narrative: no scores computed")

const systemPrompt = `You are a sustainability analyst writing for a board of directors.
Write a concise executive summary (at most three short paragraphs) of the
ESG results you are given. Cover overall standing and risk level, the
strongest and weakest pillar, the direction of the trends, and reporting
framework readiness. Use only the figures provided. Plain text, no headings.`

// Options tunes a Generate call.
type Options struct {
	Model     string
	MaxTokens int
}

// Summary is a generated narrative plus the facts it was written from.
type Summary struct {
	Period  view.Period     `json:"period"`
	Scores  esg.ScoreResult `json:"scores"`
	Text    string          `json:"text"`
	Model   string          `json:"model"`
	Partial bool            `json:"partial,omitempty"`
}

// Generate asks p for an executive summary of snap.
func Generate(ctx context.Context, p llm.Provider, snap view.Snapshot, opts Options) (*Summary, error) {
	if snap.Scores == nil {
		return nil, ErrNoScores
	}

	prompt := BuildPrompt(snap)
	slog.Debug("requesting narrative", "period", snap.State.Period, "prompt_bytes", len(prompt))

	resp, err := p.Complete(ctx, llm.Request{
		System:    systemPrompt,
		Prompt:    prompt,
		Model:     opts.Model,
		MaxTokens: opts.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("narrative: %w", err)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return nil, errors.New("narrative: model returned no text")
	}
	if resp.Truncated() {
		slog.Warn("narrative truncated at token limit", "max_tokens", opts.MaxTokens)
	}
	slog.Info("narrative generated", "model", resp.Model,
		"input_tokens", resp.Usage.InputTokens, "output_tokens", resp.Usage.OutputTokens)

	return &Summary{
		Period:  snap.State.Period,
		Scores:  *snap.Scores,
		Text:    text,
		Model:   resp.Model,
		Partial: resp.Truncated(),
	}, nil
}

// BuildPrompt lists the facts the summary is written from.
func BuildPrompt(snap view.Snapshot) string {
	res := snap.ScoresOrZero()
	c := catalog.MustLoad()

	var b strings.Builder
	fmt.Fprintf(&b, "Reporting period: %s\n\n", snap.State.Period.Label())

	b.WriteString("Scores (0-100):\n")
	fmt.Fprintf(&b, "- Overall: %.1f (risk level %s)\n", res.Overall, esg.DisplayRisk(res.RiskLevel))
	fmt.Fprintf(&b, "- Environmental: %.1f\n", res.Environmental)
	fmt.Fprintf(&b, "- Social: %.1f\n", res.Social)
	fmt.Fprintf(&b, "- Governance: %.1f\n", res.Governance)

	series := c.TrendSeries(res)
	if pct, ok := trend.QuarterChange(series); ok {
		fmt.Fprintf(&b, "- Overall change vs previous quarter: %+.1f%%\n", pct)
	}

	if tr := trend.Compute(series); tr != nil {
		fmt.Fprintf(&b, "\nTrends from %s to %s:\n", tr.From, tr.To)
		for _, l := range tr.Lines {
			fmt.Fprintf(&b, "- %s: %s (%+.1f vs previous quarter, slope %+.2f per quarter)\n",
				l.Pillar, l.Direction, l.Delta, l.Slope)
		}
	}

	b.WriteString("\nRisk matrix (likelihood x impact):\n")
	for _, r := range c.Risks {
		fmt.Fprintf(&b, "- %s: %d (%s)\n", r.Category, r.Score, r.Severity())
	}

	b.WriteString("\nFramework alignment:\n")
	for _, f := range c.Frameworks {
		fmt.Fprintf(&b, "- %s: %d%%\n", f.Name, f.Score)
	}

	b.WriteString("\nKey risk indicators:\n")
	for _, ind := range c.Indicators {
		fmt.Fprintf(&b, "- %s: %s\n", ind.Name, ind.Status)
	}
	return b.String()
}
