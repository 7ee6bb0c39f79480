package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/canopy-esg/canopy/internal/config"
	"github.com/canopy-esg/canopy/internal/output"
	"github.com/canopy-esg/canopy/internal/view"
)

// ScoresInput is the input schema for the scores MCP tool.
type ScoresInput struct {
	Path   string `json:"path,omitempty" jsonschema:"Project directory whose .canopy.yaml supplies defaults (defaults to current directory)"`
	Period string `json:"period,omitempty" jsonschema:"Reporting period, e.g. 2024-Q4 or Q4 2024 (default: configured period)"`
}

// PanelInput is the input schema for the panel MCP tool.
type PanelInput struct {
	Path     string `json:"path,omitempty" jsonschema:"Project directory whose .canopy.yaml supplies defaults (defaults to current directory)"`
	Tab      string `json:"tab,omitempty" jsonschema:"Panel to render: dashboard, metrics or regulatory (default: configured tab)"`
	Period   string `json:"period,omitempty" jsonschema:"Reporting period, e.g. 2024-Q4 or Q4 2024 (default: configured period)"`
	Format   string `json:"format,omitempty" jsonschema:"Output format: json, text, markdown, html (default: json)"`
	Sections string `json:"sections,omitempty" jsonschema:"Comma-separated list of sections to include (json and text only)"`
}

// OptionsInput is the input schema for the options MCP tool.
type OptionsInput struct{}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all canopy tools to the MCP server.
func registerTools(server *mcp.Server) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scores",
		Description: "Compute the environmental, social, governance and overall ESG scores and the sustainability risk level for a reporting period.",
		Annotations: readOnly,
	}, handleScores)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "panel",
		Description: "Render one dashboard panel (dashboard, detailed metrics or regulatory reporting) for a reporting period.",
		Annotations: readOnly,
	}, handlePanel)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "options",
		Description: "List the selectable tabs, reporting periods and output formats.",
		Annotations: readOnly,
	}, handleOptions)
}

// resolveState applies the tool's tab and period on top of the configured
// startup state of the project at path.
func resolveState(path, tab, period string) (view.State, error) {
	dir, err := ResolvePath(path)
	if err != nil {
		return view.State{}, err
	}
	cfg, err := config.Load(dir.ConfigDir)
	if err != nil {
		return view.State{}, fmt.Errorf("failed to load config: %w", err)
	}
	state, err := cfg.ViewState()
	if err != nil {
		return view.State{}, fmt.Errorf("invalid config: %w", err)
	}

	if tab != "" {
		if state.Tab, err = view.ParseTab(tab); err != nil {
			return view.State{}, err
		}
	}
	if period != "" {
		if state.Period, err = view.ParsePeriod(period); err != nil {
			return view.State{}, err
		}
	}
	return state, nil
}

func handleScores(_ context.Context, _ *mcp.CallToolRequest, input ScoresInput) (*mcp.CallToolResult, any, error) {
	state, err := resolveState(input.Path, "", input.Period)
	if err != nil {
		return nil, nil, err
	}

	snap := view.NewController(view.WithInitialState(state)).Snapshot()
	data, err := json.MarshalIndent(struct {
		Period string `json:"period"`
		Label  string `json:"period_label"`
		Scores any    `json:"scores"`
	}{string(state.Period), state.Period.Label(), snap.ScoresOrZero()}, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal scores: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

func handlePanel(_ context.Context, _ *mcp.CallToolRequest, input PanelInput) (*mcp.CallToolResult, any, error) {
	format := "json"
	if input.Format != "" {
		format = input.Format
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}

	if input.Sections != "" {
		sf, ok := formatter.(output.SectionFilter)
		if !ok {
			return nil, nil, fmt.Errorf("format %q does not support section filtering", format)
		}
		formatter = sf.WithSections(splitAndTrim(input.Sections))
	}

	state, err := resolveState(input.Path, input.Tab, input.Period)
	if err != nil {
		return nil, nil, err
	}

	snap := view.NewController(view.WithInitialState(state)).Snapshot()
	var buf bytes.Buffer
	if err := formatter.Format(&snap, &buf); err != nil {
		return nil, nil, fmt.Errorf("render failed: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

func handleOptions(_ context.Context, _ *mcp.CallToolRequest, _ OptionsInput) (*mcp.CallToolResult, any, error) {
	type tabInfo struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	type periodInfo struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}
	var opts struct {
		Tabs    []tabInfo    `json:"tabs"`
		Periods []periodInfo `json:"periods"`
		Formats []string     `json:"formats"`
	}
	for _, t := range view.Tabs() {
		opts.Tabs = append(opts.Tabs, tabInfo{ID: t.String(), Title: t.Title()})
	}
	for _, p := range view.Periods() {
		opts.Periods = append(opts.Periods, periodInfo{ID: string(p), Label: p.Label()})
	}
	opts.Formats = output.Names()

	data, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal options: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
