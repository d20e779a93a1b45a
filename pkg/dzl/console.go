package dzl

import (
	"io"
	"log/slog"
)

// ConsoleSink writes decorated text to the terminal streams.
// Error entries go to the error stream; everything else to the output stream.
type ConsoleSink struct {
	out    io.Writer
	errOut io.Writer
	diag   *slog.Logger
}

// NewConsoleSink returns a sink writing to out and errOut. Failed writes are
// reported on diag.
func NewConsoleSink(out, errOut io.Writer, diag *slog.Logger) *ConsoleSink {
	return &ConsoleSink{out: out, errOut: errOut, diag: diag}
}

// Emit writes text to the stream selected by s. A write failure is reported
// as a diagnostic and otherwise ignored.
func (c *ConsoleSink) Emit(text string, s Severity) {
	w, stream := c.out, "stdout"
	if s.Level == LevelError {
		w, stream = c.errOut, "stderr"
	}

	if _, err := io.WriteString(w, text); err != nil {
		c.diag.Warn("console write failed", "stream", stream, "error", err)
	}
}
