package llm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_EmptyResponses(t *testing.T) {
	resp, err := NewMockProvider().Complete(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Empty(t, resp.Content)
	assert.Equal(t, "mock", resp.Model)
	assert.Equal(t, "end_turn", resp.StopReason)
}

func TestMockProvider_SequenceStaysOnLast(t *testing.T) {
	m := NewMockProvider(MockResponse{Content: "first"}, MockResponse{Content: "second"})
	ctx := context.Background()

	for _, want := range []string{"first", "second", "second"} {
		resp, err := m.Complete(ctx, Request{})
		require.NoError(t, err)
		assert.Equal(t, want, resp.Content)
	}
}

func TestMockProvider_ErrorAndStopReason(t *testing.T) {
	boom := errors.New("overloaded")
	m := NewMockProvider(MockResponse{Err: boom}, MockResponse{Content: "cut", StopReason: "max_tokens"})

	_, err := m.Complete(context.Background(), Request{})
	require.ErrorIs(t, err, boom)

	resp, err := m.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.True(t, resp.Truncated())
}

func TestMockProvider_CallHistoryAndReset(t *testing.T) {
	m := NewMockProvider(MockResponse{Content: "a"}, MockResponse{Content: "b"})
	ctx := context.Background()

	_, _ = m.Complete(ctx, Request{System: "sys", Prompt: "one"})
	_, _ = m.Complete(ctx, Request{Prompt: "two"})

	calls := m.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "sys", calls[0].System)
	assert.Equal(t, "two", calls[1].Prompt)

	calls[0].Prompt = "mutated"
	assert.Equal(t, "one", m.Calls()[0].Prompt, "Calls returns a copy")

	m.Reset()
	assert.Empty(t, m.Calls())
	resp, err := m.Complete(ctx, Request{})
	require.NoError(t, err)
	assert.Equal(t, "a", resp.Content)
}

func TestMockProvider_Usage(t *testing.T) {
	resp, err := NewMockProvider(MockResponse{Content: "12345"}).Complete(context.Background(), Request{System: "ab", Prompt: "cde"})
	require.NoError(t, err)
	assert.Equal(t, Usage{InputTokens: 5, OutputTokens: 5}, resp.Usage)
}

func TestMockProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMockProvider(MockResponse{Content: "never"})
	_, err := m.Complete(ctx, Request{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Calls())
}

func TestMockProvider_ConcurrentAccess(t *testing.T) {
	m := NewMockProvider(MockResponse{Content: "x"})
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Complete(context.Background(), Request{})
		}()
	}
	wg.Wait()
	assert.Len(t, m.Calls(), 20)
}

func TestResponse_Truncated(t *testing.T) {
	assert.True(t, (&Response{StopReason: "max_tokens"}).Truncated())
	assert.False(t, (&Response{StopReason: "stop_sequence"}).Truncated())
}
