// Package errors provides error handling conventions for the dzl CLI.
//
// This package defines exit code constants following standard Unix
// conventions, an ExitError type that carries an exit code and an optional
// suggestion, and thin re-exports of [github.com/cockroachdb/errors] so
// command code can wrap and classify errors through a single import.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid flags, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] attaches an exit code and an optional suggestion to a cause.
// [Code], [Suggestion] and [Hints] resolve them from an arbitrarily wrapped
// error at the point the process exits:
//
//	err := errors.NewUserError(cause, "Check log_level in Dzl.toml")
//	os.Exit(errors.Code(errors.Wrap(err, "executing root command")))
package errors
