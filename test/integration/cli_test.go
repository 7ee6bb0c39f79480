// Package integration contains end-to-end tests for canopy.
//
// These tests build the canopy binary and run it as a user would, checking
// output, exit codes and the config file round trip.
package integration

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
	buildOut  []byte
)

// repoRoot returns the repository root directory.
func repoRoot(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")
	// test/integration/cli_test.go -> repo root
	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

// buildBinary compiles canopy once per test run.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in -short mode")
	}
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "canopy-integration")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "canopy")
		cmd := exec.Command("go", "build", "-ldflags", "-X main.Version=0.9.1", "-o", binPath, "./cmd/canopy") //nolint:gosec // test helper
		cmd.Dir = repoRoot(t)
		buildOut, buildErr = cmd.CombinedOutput()
	})
	require.NoError(t, buildErr, "go build failed:\n%s", buildOut)
	return binPath
}

// run executes the binary in dir with an isolated environment.
func run(t *testing.T, dir string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	cmd := exec.Command(buildBinary(t), args...) //nolint:gosec // test binary
	cmd.Dir = dir
	cmd.Env = []string{
		"HOME=" + dir,
		"XDG_CONFIG_HOME=" + filepath.Join(dir, ".config"),
		"PATH=" + os.Getenv("PATH"),
	}
	var out, errOut strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	default:
		require.NoError(t, err)
	}
	return out.String(), errOut.String(), code
}

func TestVersion(t *testing.T) {
	out, _, code := run(t, t.TempDir(), "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "canopy v0.9.1\n", out)
}

func TestScores_Baseline(t *testing.T) {
	out, _, code := run(t, t.TempDir(), "scores")
	require.Equal(t, 0, code)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 65.3, res["overall"], 1e-9)
	assert.Equal(t, "Medium", res["risk_level"])
}

func TestRender_EveryTabAndFormat(t *testing.T) {
	dir := t.TempDir()
	for _, tab := range []string{"dashboard", "metrics", "regulatory"} {
		for _, format := range []string{"text", "json", "markdown", "html"} {
			out, stderr, code := run(t, dir, "render", "--no-color", "--tab", tab, "--format", format)
			assert.Equal(t, 0, code, "%s/%s: %s", tab, format, stderr)
			assert.NotEmpty(t, out, "%s/%s", tab, format)
			assert.NotContains(t, out, "\x1b[", "%s/%s contains escape codes", tab, format)
		}
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	dir := t.TempDir()
	first, _, code := run(t, dir, "render", "--tab", "metrics", "--format", "markdown")
	require.Equal(t, 0, code)
	second, _, _ := run(t, dir, "render", "--tab", "metrics", "--format", "markdown")
	assert.Equal(t, first, second)
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()

	_, stderr, code := run(t, dir, "render", "--tab", "overview")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "canopy:")
	assert.Contains(t, stderr, "unknown tab")

	_, _, code = run(t, dir, "render", "-o", filepath.Join(dir, "missing", "out.txt"))
	assert.Equal(t, 2, code)
}

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()

	_, stderr, code := run(t, dir, "config", "init")
	require.Equal(t, 0, code, stderr)
	_, stderr, code = run(t, dir, "config", "set", "default_tab", "regulatory")
	require.Equal(t, 0, code, stderr)
	_, _, code = run(t, dir, "config", "validate")
	require.Equal(t, 0, code)

	out, _, code := run(t, dir, "render", "--format", "json")
	require.Equal(t, 0, code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "regulatory", doc["tab"])
}
