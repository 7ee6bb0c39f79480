package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_DefaultDashboard(t *testing.T) {
	isolate(t)
	out, err := runCmd(t, context.Background(), "render")
	require.NoError(t, err)

	assert.Contains(t, out, "ESG & Sustainability Analytics Platform")
	assert.Contains(t, out, "Period: Q4 2024")
	assert.Contains(t, out, "[Dashboard]")
	assert.Contains(t, out, "65.3")
}

func TestRender_TabAndPeriodFlags(t *testing.T) {
	isolate(t)
	out, err := runCmd(t, context.Background(), "render", "--tab", "Detailed Metrics", "--period", "Q2 2024")
	require.NoError(t, err)
	assert.Contains(t, out, "Period: Q2 2024")
	assert.Contains(t, out, "[Detailed Metrics]")
	assert.Contains(t, out, "Data Analysis Summary")
}

func TestRender_ConfigDefaults(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "default_tab: regulatory\noutput_format: markdown\n")

	out, err := runCmd(t, context.Background(), "render")
	require.NoError(t, err)
	assert.Contains(t, out, "# ESG & Sustainability Analytics Platform")
	assert.Contains(t, out, "**Regulatory Reporting**")

	// Flags beat the file.
	out, err = runCmd(t, context.Background(), "render", "--tab", "dashboard", "--format", "json")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "dashboard", doc["tab"])
}

func TestRender_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("CANOPY_DEFAULT_PERIOD", "2024-Q1")

	out, err := runCmd(t, context.Background(), "render", "--format", "json")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "2024-Q1", doc["period"])
}

func TestRender_Sections(t *testing.T) {
	isolate(t)
	out, err := runCmd(t, context.Background(), "render", "--format", "json", "--sections", "risk")
	require.NoError(t, err)

	var doc struct {
		Sections []struct {
			Name string `json:"name"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "risk", doc.Sections[0].Name)
}

func TestRender_OutputFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "esg.html")

	out, err := runCmd(t, context.Background(), "render", "--tab", "regulatory", "--format", "html", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<main id="regulatory">`)
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"unknown tab", []string{"render", "--tab", "overview"}, ExitInvalidArgs, "default_tab"},
		{"unknown period", []string{"render", "--period", "2023-Q4"}, ExitInvalidArgs, "default_period"},
		{"unknown format", []string{"render", "--format", "pdf"}, ExitInvalidArgs, "output_format"},
		{"sections on html", []string{"render", "--format", "html", "--sections", "risk"}, ExitInvalidArgs, "--sections"},
		{"bad output path", []string{"render", "-o", "/nonexistent/dir/out.txt"}, ExitRenderFailure, "cannot create output file"},
		{"positional arg", []string{"render", "extra"}, -1, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := runCmd(t, context.Background(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCode(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRender_InvalidConfigFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "default_tab: [not, a, string\n")

	_, err := runCmd(t, context.Background(), "render")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCode(err))
	assert.Contains(t, err.Error(), ".canopy.yaml")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b ,"))
	assert.Nil(t, splitList(""))
}

func TestScores(t *testing.T) {
	isolate(t)
	out, err := runCmd(t, context.Background(), "scores", "--period", "2024-Q3")
	require.NoError(t, err)

	var res struct {
		Environmental float64 `json:"environmental"`
		Social        float64 `json:"social"`
		Governance    float64 `json:"governance"`
		Overall       float64 `json:"overall"`
		RiskLevel     string  `json:"risk_level"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 40.2, res.Environmental, 1e-9)
	assert.InDelta(t, 70.2, res.Social, 1e-9)
	assert.InDelta(t, 88.7, res.Governance, 1e-9)
	assert.InDelta(t, 65.3, res.Overall, 1e-9)
	assert.Equal(t, "Medium", res.RiskLevel)

	_, err = runCmd(t, context.Background(), "scores", "--period", "someday")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCode(err))
}
