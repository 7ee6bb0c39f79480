package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned reply for MockProvider.
type MockResponse struct {
	Content    string
	StopReason string
	Err        error
}

// MockProvider returns canned responses in order and records every request.
// Once the responses run out it keeps returning the last one.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []Request
	next      int
}

// Compile-time interface check.
var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates a mock. With no responses Complete returns an
// empty Response.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Complete returns the next canned response.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)

	if len(m.responses) == 0 {
		return &Response{Model: "mock", StopReason: "end_turn"}, nil
	}
	r := m.responses[m.next]
	if m.next < len(m.responses)-1 {
		m.next++
	}
	if r.Err != nil {
		return nil, r.Err
	}

	stop := r.StopReason
	if stop == "" {
		stop = "end_turn"
	}
	return &Response{
		Content:    r.Content,
		Model:      "mock",
		StopReason: stop,
		Usage:      Usage{InputTokens: len(req.System) + len(req.Prompt), OutputTokens: len(r.Content)},
	}, nil
}

// Calls returns a copy of the recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset clears the call history and rewinds to the first response.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.next = 0
}
