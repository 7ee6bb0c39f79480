// Package redact strips credentials from strings before they reach the
// terminal, logs, or HTTP responses.
package redact

import (
	"os"
	"regexp"
	"strings"
	"sync"
)

// Placeholder replaces every redacted value.
const Placeholder = "[REDACTED]"

// secretEnvVars name the environment variables whose values must never be
// printed.
var secretEnvVars = []string{
	"ANTHROPIC_API_KEY",
	"ANTHROPIC_AUTH_TOKEN",
	"CANOPY_NARRATIVE__API_KEY",
}

// keyPattern matches Anthropic API keys that did not come from the
// environment, e.g. ones passed on the command line.
var keyPattern = regexp.MustCompile(`sk-ant-[A-Za-z0-9_\-]{8,}`)

var (
	secrets     []string
	secretsOnce sync.Once
)

func loadSecrets() {
	for _, name := range secretEnvVars {
		// Short values would redact ordinary words.
		if v := os.Getenv(name); len(v) >= 8 {
			secrets = append(secrets, v)
		}
	}
}

// ResetForTest forgets the cached environment values so a test can change
// them with t.Setenv.
func ResetForTest() {
	secrets = nil
	secretsOnce = sync.Once{}
}

// String returns s with known secret values and anything shaped like an
// API key replaced by Placeholder. Environment values are read once.
func String(s string) string {
	secretsOnce.Do(loadSecrets)
	for _, v := range secrets {
		s = strings.ReplaceAll(s, v, Placeholder)
	}
	return keyPattern.ReplaceAllString(s, Placeholder)
}

// Error is String applied to err's message. A nil err yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
