package dzl

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/dzl/internal/logging"
)

// ColorMode selects when console output is colored.
type ColorMode = logging.ColorMode

// Color modes.
const (
	ColorAuto   = logging.ColorAuto
	ColorAlways = logging.ColorAlways
	ColorNever  = logging.ColorNever
)

// Logger filters, renders and dispatches entries to the console and,
// when enabled, to the log file.
//
// A Logger is safe for concurrent use; calls are serialized so that
// concurrent appends to the log file are never lost.
type Logger struct {
	mu        sync.Mutex
	cfg       Config
	formatter *Formatter
	console   *ConsoleSink
	file      *FileSink
	clock     func() time.Time
	last      time.Time

	out       io.Writer
	errOut    io.Writer
	diag      *slog.Logger
	colorMode ColorMode
	icons     bool
	profile   *Profile
}

// DefaultDiagnosticLevel is the level of the diagnostic logger used when
// WithDiagnostics is not given.
const DefaultDiagnosticLevel = slog.LevelWarn

// Option configures a Logger instance.
type Option func(*Logger)

// WithOutput sets the console streams. Defaults are os.Stdout and os.Stderr.
func WithOutput(out, errOut io.Writer) Option {
	return func(l *Logger) {
		l.out = out
		l.errOut = errOut
	}
}

// WithDiagnostics sets the logger that receives dzl's own diagnostics.
// The default writes single lines to the error stream at Warn level, so
// routine notices such as a recreated log file are only seen through a
// logger supplied here.
func WithDiagnostics(diag *slog.Logger) Option {
	return func(l *Logger) {
		l.diag = diag
	}
}

// WithColorMode sets when console output is colored. Default is ColorAuto,
// resolved against the output stream.
func WithColorMode(mode ColorMode) Option {
	return func(l *Logger) {
		l.colorMode = mode
	}
}

// WithIcons enables severity icons on console output.
func WithIcons(on bool) Option {
	return func(l *Logger) {
		l.icons = on
	}
}

// WithProfile sets the decoration profile directly, overriding
// WithColorMode and WithIcons.
func WithProfile(p Profile) Option {
	return func(l *Logger) {
		l.profile = &p
	}
}

// WithClock sets the time source for entry timestamps.
func WithClock(clock func() time.Time) Option {
	return func(l *Logger) {
		l.clock = clock
	}
}

// New creates a Logger holding cfg.
func New(cfg Config, opts ...Option) *Logger {
	l := &Logger{
		cfg:       cfg.clone(),
		clock:     time.Now,
		out:       os.Stdout,
		errOut:    os.Stderr,
		colorMode: ColorAuto,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.diag == nil {
		l.diag = logging.New(logging.Config{
			Level:  DefaultDiagnosticLevel,
			Output: l.errOut,
			Prefix: logging.DefaultPrefix,
		})
	}

	profile := Profile{
		Color: logging.UseColor(l.colorMode, l.out),
		Icons: l.icons,
	}
	if l.profile != nil {
		profile = *l.profile
	}

	l.formatter = NewFormatter(profile)
	l.console = NewConsoleSink(l.out, l.errOut, l.diag)
	l.file = NewFileSink(l.cfg.LogPath, l.diag)

	return l
}

// Config returns a copy of the active configuration.
func (l *Logger) Config() Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.clone()
}

// Profile returns the console decoration in effect.
func (l *Logger) Profile() Profile {
	return l.formatter.Profile()
}

// Init prepares the log file: it creates the file if missing and appends
// one informational entry recording the initialization. The entry bypasses
// the threshold and the console. Init does nothing when file logging is
// disabled.
//
// Unlike logging calls, Init reports every failure. Returned errors are
// marked ErrInit and ErrIO.
func (l *Logger) Init() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.cfg.FileLoggingEnabled {
		return nil
	}

	if err := l.file.Ensure(); err != nil {
		return errors.Mark(err, ErrInit)
	}

	plain, _ := l.formatter.Render(Entry{
		Severity: Builtin(LevelInfo),
		Message:  "dzl initialized, logging to " + l.file.Path(),
		Time:     l.now(),
	})
	if err := l.file.Append(plain); err != nil {
		return errors.Mark(errors.Wrap(err, "writing initialization entry"), ErrInit)
	}

	l.diag.Debug("log file initialized", "path", l.file.Path())
	return nil
}

// Reload replaces the active configuration with the one p supplies. If p
// fails, the previous configuration stays in effect. Reload does not
// initialize a new log path; call Init for that.
func (l *Logger) Reload(p Provider) error {
	if p == nil {
		return errors.New("reloading configuration: nil provider")
	}
	cfg, err := p.Load()
	if err != nil {
		return errors.Wrap(err, "reloading configuration")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.cfg = cfg.clone()
	l.file = NewFileSink(l.cfg.LogPath, l.diag)
	return nil
}

// Log emits message at severity s.
//
// Entries below the threshold produce no output at all. Passing entries are
// written to the console and, if enabled, appended to the log file. File
// failures are reported as diagnostics and never returned.
func (l *Logger) Log(s Severity, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !Passes(l.cfg.Threshold, s) {
		return
	}

	plain, decorated := l.formatter.Render(Entry{
		Severity: s,
		Message:  message,
		Time:     l.now(),
	})

	l.console.Emit(decorated, s)

	if !l.cfg.FileLoggingEnabled {
		return
	}
	if err := l.file.Append(plain); err != nil {
		l.diag.Error("log file write failed", "path", l.file.Path(), "error", err)
	}
}

// Trace emits message at trace level.
func (l *Logger) Trace(message string) { l.Log(Builtin(LevelTrace), message) }

// Debug emits message at debug level.
func (l *Logger) Debug(message string) { l.Log(Builtin(LevelDebug), message) }

// Info emits message at info level.
func (l *Logger) Info(message string) { l.Log(Builtin(LevelInfo), message) }

// Warn emits message at warn level.
func (l *Logger) Warn(message string) { l.Log(Builtin(LevelWarn), message) }

// Error emits message at error level. It is written to the error stream.
func (l *Logger) Error(message string) { l.Log(Builtin(LevelError), message) }

// Custom emits message under a caller-chosen label. Custom entries are
// never filtered.
func (l *Logger) Custom(label, message string) { l.Log(Labeled(label), message) }

// now returns the entry time, never earlier than the previous entry's.
// Callers hold l.mu.
func (l *Logger) now() time.Time {
	// Drop the monotonic reading so the comparison uses the wall clock
	// that is actually rendered.
	t := l.clock().Round(0)
	if t.Before(l.last) {
		t = l.last
	}
	l.last = t
	return t
}

func (c Config) clone() Config {
	if c.Threshold != nil {
		c.Threshold = c.Threshold.Ptr()
	}
	return c
}
