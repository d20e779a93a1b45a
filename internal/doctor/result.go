// Package doctor diagnoses dzl configuration and log file problems.
package doctor

import "github.com/thoreinstein/dzl/internal/errors"

// Status is the outcome class of a check.
type Status int

const (
	// StatusPass indicates the check passed without issues.
	StatusPass Status = iota

	// StatusInfo indicates informational output, not a problem.
	StatusInfo

	// StatusWarning indicates a potential issue that doesn't prevent logging.
	StatusWarning

	// StatusError indicates a problem that will make logging fail.
	StatusError
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusInfo:
		return "info"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	for c := StatusPass; c <= StatusError; c++ {
		if c.String() == string(text) {
			*s = c
			return nil
		}
	}
	return errors.Newf("unknown status %q", text)
}

// CheckResult represents the outcome of a single diagnostic check.
type CheckResult struct {
	// Name is the identifier for this check.
	Name string `json:"name"`

	// Category groups related checks (e.g., "config", "logfile").
	Category string `json:"category"`

	// Status is the outcome class.
	Status Status `json:"status"`

	// Message describes the check outcome.
	Message string `json:"message"`

	// Details contains additional context about the check result.
	// Keys and values depend on the specific check.
	Details map[string]any `json:"details,omitempty"`

	// Hint provides guidance on how to resolve the issue.
	Hint string `json:"hint,omitempty"`
}

// Summary aggregates counts of check results by status.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}
