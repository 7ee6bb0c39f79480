package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeFlags(t *testing.T) {
	for _, name := range []string{"addr", "metrics-addr", "log-json"} {
		assert.NotNil(t, serveCmd.Flags().Lookup(name), "--%s not registered", name)
	}
}

func TestServe_StopsWithContext(t *testing.T) {
	isolate(t)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := runCmd(t, ctx, "serve", "--addr", "127.0.0.1:0")
	require.NoError(t, err)
}

func TestServe_InvalidAddr(t *testing.T) {
	isolate(t)
	_, err := runCmd(t, context.Background(), "serve", "--addr", "no-port")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCode(err))
	assert.Contains(t, err.Error(), "serve.addr")
}

func TestServe_SameMetricsAddr(t *testing.T) {
	isolate(t)
	_, err := runCmd(t, context.Background(), "serve", "--addr", "127.0.0.1:9000", "--metrics-addr", "127.0.0.1:9000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}
