package errors

import (
	"fmt"
	"strings"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common CLI failure conditions.
var (
	// ErrInvalidFlag indicates a flag value was rejected.
	ErrInvalidFlag = New("invalid flag value")

	// ErrExists indicates a file would be overwritten without --force.
	ErrExists = New("file already exists")
)

// ExitError carries the exit code a CLI failure ends the process with.
type ExitError struct {
	Err  error
	Code int
	// Suggestion is printed after the error and its hints.
	Suggestion string
}

func exitError(err error, code int, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: code, Suggestion: suggestion}
}

// NewExitError attaches code to err. A nil err yields an ExitError whose
// message names the code.
func NewExitError(err error, code int) *ExitError {
	return exitError(err, code, "")
}

// NewUserError marks err as caused by input or configuration.
func NewUserError(err error, suggestion string) *ExitError {
	return exitError(err, ExitUser, suggestion)
}

// NewSystemError marks err as an I/O or environment failure.
func NewSystemError(err error, suggestion string) *ExitError {
	return exitError(err, ExitSystem, suggestion)
}

// NewConfigError marks err as a Dzl.toml problem and points at doctor.
func NewConfigError(err error) *ExitError {
	return exitError(err, ExitUser, "Run: dzl doctor")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Code returns the process exit code for err: ExitSuccess for nil, the
// code of the outermost ExitError in the chain, else ExitUser.
func Code(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}

// Suggestion returns the suggestion of the outermost ExitError in the chain.
func Suggestion(err error) string {
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Suggestion
	}
	return ""
}

// Hints returns the user-facing hints attached anywhere in the chain, one
// per line of text, without the separators FlattenHints inserts.
func Hints(err error) []string {
	var hints []string
	for h := range strings.SplitSeq(FlattenHints(err), "\n") {
		if h = strings.TrimSpace(h); h != "" && !strings.HasPrefix(h, "--") {
			hints = append(hints, h)
		}
	}
	return hints
}
