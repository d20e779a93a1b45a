// Package logging provides the diagnostic channel used by dzl itself.
//
// Diagnostics are the messages dzl emits about its own operation: a log
// file that had to be recreated, a rewrite that failed, a console write that
// was lost. They are never mixed into the log file. All loggers are based on
// the standard library's [log/slog] package and render one line per record
// through [Handler].
//
// # Basic Usage
//
//	diag := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Output: os.Stderr,
//		Prefix: "dzl",
//	})
//	diag.Warn("log file write failed", "path", "dzl.log", "error", err)
//
// # Testing
//
// For tests, use [ForTest] to capture diagnostics via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		diag := logging.ForTest(t)
//		// diagnostics appear in test output on failure
//	}
//
// # Quiet Mode
//
// Use [NewDiscard] when diagnostics should be suppressed entirely:
//
//	diag := logging.NewDiscard()
package logging
