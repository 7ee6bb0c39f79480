package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopy-esg/canopy/internal/llm"
)

func TestNewAnthropicProvider_WithAPIKey(t *testing.T) {
	p, err := llm.NewAnthropicProvider(llm.WithAPIKey("test-key-123"))
	require.NoError(t, err)
	assert.Equal(t, llm.DefaultModel, p.Model())
	assert.Equal(t, 2, p.MaxRetries())
}

func TestNewAnthropicProvider_FromEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-test-key")

	p, err := llm.NewAnthropicProvider()
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestNewAnthropicProvider_NoKeyError(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	p, err := llm.NewAnthropicProvider()
	assert.Nil(t, p)
	require.ErrorIs(t, err, llm.ErrNoAPIKey)
}

func TestNewAnthropicProvider_Options(t *testing.T) {
	p, err := llm.NewAnthropicProvider(
		llm.WithAPIKey("k"),
		llm.WithModel("claude-haiku-4-5"),
		llm.WithMaxRetries(0),
	)
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5", p.Model())
	assert.Equal(t, 0, p.MaxRetries())

	p, err = llm.NewAnthropicProvider(llm.WithAPIKey("k"), llm.WithModel(""))
	require.NoError(t, err)
	assert.Equal(t, llm.DefaultModel, p.Model(), "empty model keeps the default")
}

// message is the JSON shape returned by the Messages API.
type message struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Role       string    `json:"role"`
	Content    []content `json:"content"`
	Model      string    `json:"model"`
	StopReason string    `json:"stop_reason"`
	Usage      usage     `json:"usage"`
}

type content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// newTestProvider serves resp from an httptest server and captures the
// decoded request body.
func newTestProvider(t *testing.T, resp message, status int, captured *map[string]any) *llm.AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				*captured = body
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	p, err := llm.NewAnthropicProvider(
		llm.WithAPIKey("test-key"),
		llm.WithBaseURL(srv.URL),
		llm.WithMaxRetries(0),
	)
	require.NoError(t, err)
	return p
}

func okMessage(texts ...string) message {
	m := message{
		ID:         "msg_test",
		Type:       "message",
		Role:       "assistant",
		Model:      llm.DefaultModel,
		StopReason: "end_turn",
		Usage:      usage{InputTokens: 120, OutputTokens: 40},
	}
	for _, s := range texts {
		m.Content = append(m.Content, content{Type: "text", Text: s})
	}
	return m
}

func TestComplete_Defaults(t *testing.T) {
	var captured map[string]any
	p := newTestProvider(t, okMessage("Overall ESG performance is moderate."), http.StatusOK, &captured)

	resp, err := p.Complete(context.Background(), llm.Request{Prompt: "summarize"})
	require.NoError(t, err)

	assert.Equal(t, "Overall ESG performance is moderate.", resp.Content)
	assert.Equal(t, llm.DefaultModel, resp.Model)
	assert.Equal(t, "end_turn", resp.StopReason)
	assert.False(t, resp.Truncated())
	assert.Equal(t, 120, resp.Usage.InputTokens)
	assert.Equal(t, 40, resp.Usage.OutputTokens)

	assert.Equal(t, llm.DefaultModel, captured["model"])
	assert.Equal(t, float64(1024), captured["max_tokens"])
	assert.NotContains(t, captured, "system")
	assert.NotContains(t, captured, "temperature")
}

func TestComplete_RequestOverrides(t *testing.T) {
	var captured map[string]any
	p := newTestProvider(t, okMessage("ok"), http.StatusOK, &captured)

	temp := 0.2
	_, err := p.Complete(context.Background(), llm.Request{
		System:        "You are an ESG analyst.",
		Prompt:        "summarize",
		Model:         "claude-haiku-4-5",
		MaxTokens:     300,
		Temperature:   &temp,
		StopSequences: []string{"END"},
	})
	require.NoError(t, err)

	assert.Equal(t, "claude-haiku-4-5", captured["model"])
	assert.Equal(t, float64(300), captured["max_tokens"])
	assert.InDelta(t, 0.2, captured["temperature"], 1e-9)
	assert.Equal(t, []any{"END"}, captured["stop_sequences"])

	system, ok := captured["system"].([]any)
	require.True(t, ok)
	require.Len(t, system, 1)
	assert.Equal(t, "You are an ESG analyst.", system[0].(map[string]any)["text"])
}

func TestComplete_MultipleTextBlocks(t *testing.T) {
	p := newTestProvider(t, okMessage("Scores are stable. ", "Governance leads."), http.StatusOK, nil)

	resp, err := p.Complete(context.Background(), llm.Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Scores are stable. Governance leads.", resp.Content)
}

func TestComplete_Truncated(t *testing.T) {
	m := okMessage("partial")
	m.StopReason = "max_tokens"
	p := newTestProvider(t, m, http.StatusOK, nil)

	resp, err := p.Complete(context.Background(), llm.Request{Prompt: "x"})
	require.NoError(t, err)
	assert.True(t, resp.Truncated())
}

func TestComplete_APIError(t *testing.T) {
	p := newTestProvider(t, message{}, http.StatusBadRequest, nil)

	_, err := p.Complete(context.Background(), llm.Request{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic: completion failed")
}
