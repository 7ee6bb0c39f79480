package main

import "fmt"

// Exit codes for the canopy CLI.
const (
	ExitOK            = 0 // Command succeeded.
	ExitInvalidArgs   = 1 // Invalid arguments, flags or configuration.
	ExitRenderFailure = 2 // Output could not be produced or written.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitRenderFailure:
			msg = "canopy: rendering failed"
		default:
			msg = "canopy: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
