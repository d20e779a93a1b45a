package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
)

// LevelTrace is one step below slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

// DefaultPrefix tags every diagnostic line written by dzl.
const DefaultPrefix = "dzl"

// Config holds the configuration for creating a new diagnostic logger.
type Config struct {
	// Level sets the minimum level. Diagnostics below this level are discarded.
	Level slog.Level
	// Output is where diagnostics are written. Defaults to os.Stderr if nil.
	Output io.Writer
	// Prefix is written in brackets at the start of every line. Empty disables it.
	Prefix string
}

// New creates a diagnostic logger with the given configuration.
// If cfg.Output is nil, it defaults to os.Stderr.
func New(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	h := NewHandler(output, &slog.HandlerOptions{Level: cfg.Level})
	h.prefix = cfg.Prefix

	return slog.New(h)
}

// Default returns the diagnostic logger dzl uses when the host supplies none.
// It logs at Info level to stderr with the dzl prefix.
func Default() *slog.Logger {
	return New(Config{
		Level:  slog.LevelInfo,
		Output: os.Stderr,
		Prefix: DefaultPrefix,
	})
}

// NewDiscard creates a logger that discards all output.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LevelFromVerbosity maps a count of -v flags to a diagnostic level.
// Zero or negative counts keep only warnings and errors.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or Default if there is none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	return Default()
}

// testWriter adapts testing.T to io.Writer for use with slog handlers.
type testWriter struct {
	t *testing.T
}

// Write implements io.Writer by logging to the test.
func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	// Trim trailing newline since t.Log adds its own
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.t.Log(msg)
	return len(p), nil
}

// ForTest creates a logger that writes to the test's log output.
// Log messages appear only when the test fails or when running with -v.
// The logger is configured at trace level to capture all messages.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  LevelTrace,
		Output: &testWriter{t: t},
	})
}
