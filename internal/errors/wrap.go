package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// New creates an error with a stack trace.
func New(msg string) error { return crdb.New(msg) }

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...any) error { return crdb.Newf(format, args...) }

// Wrap annotates err with msg. It returns nil if err is nil.
func Wrap(err error, msg string) error { return crdb.Wrap(err, msg) }

// Wrapf annotates err with a formatted message. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error { return crdb.Wrapf(err, format, args...) }

// Is reports whether any error in err's chain matches reference.
func Is(err, reference error) bool { return crdb.Is(err, reference) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return crdb.As(err, target) }

// Mark attaches reference as an identity to err so Is(err, reference) holds.
func Mark(err, reference error) error { return crdb.Mark(err, reference) }

// WithHint attaches a user-facing hint to err.
func WithHint(err error, hint string) error { return crdb.WithHint(err, hint) }

// FlattenHints returns every hint in err's chain joined by newlines.
func FlattenHints(err error) string { return crdb.FlattenHints(err) }
