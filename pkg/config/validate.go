package config

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/dzl/pkg/dzl"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidLevel indicates log_level is not a recognized level name.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a File for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(f File) []error {
	var errs []error

	if _, err := dzl.ParseLevel(f.LogLevel); err != nil {
		errs = append(errs, &FieldError{
			Field: KeyLogLevel,
			Value: f.LogLevel,
			Err:   errors.WithHint(ErrInvalidLevel, errors.FlattenHints(err)),
		})
	}

	if err := validatePath(f.LogPath); err != nil {
		errs = append(errs, &FieldError{
			Field: KeyLogPath,
			Value: f.LogPath,
			Err:   err,
		})
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if path == "" {
		return ErrInvalidPath
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	if filepath.Clean(path) == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents an error for a specific configuration key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + quote(e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, "\x00", `\x00`) + `"`
}

// validationError folds field errors into one error marked dzl.ErrParse,
// keeping every field's hints.
func validationError(errs []error) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}

	err := errors.Newf("invalid configuration: %s", strings.Join(msgs, "; "))
	for _, e := range errs {
		for _, h := range errors.GetAllHints(e) {
			err = errors.WithHint(err, h)
		}
	}
	return errors.Mark(err, dzl.ErrParse)
}
