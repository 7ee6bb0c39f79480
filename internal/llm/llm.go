// Package llm provides a provider-agnostic completion interface used to
// write narrative summaries of ESG results.
package llm

import "context"

// Provider abstracts an LLM API behind a single synchronous completion method.
type Provider interface {
	// Complete sends a prompt to the model and returns the response.
	// Implementations must respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single completion request.
type Request struct {
	// System sets the system instruction.
	System string

	// Prompt is the user message.
	Prompt string

	// Model overrides the provider's default model when non-empty.
	Model string

	// MaxTokens limits the response length. Zero means the provider default.
	MaxTokens int

	// Temperature controls randomness. Nil means the provider default.
	Temperature *float64

	// StopSequences end generation early when produced.
	StopSequences []string
}

// Response holds the result of a completion call.
type Response struct {
	Content    string
	Model      string
	StopReason string
	Usage      Usage
}

// Usage tracks input and output token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Truncated reports whether the model stopped because it hit MaxTokens.
func (r *Response) Truncated() bool {
	return r.StopReason == "max_tokens"
}
