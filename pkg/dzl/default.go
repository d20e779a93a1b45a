package dzl

import "sync/atomic"

var std atomic.Pointer[Logger]

func init() {
	std.Store(New(DefaultConfig()))
}

// Default returns the Logger used by the package-level functions. Until
// Init or SetDefault is called it holds DefaultConfig.
func Default() *Logger {
	return std.Load()
}

// SetDefault makes l the Logger used by the package-level functions.
// A nil l is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		std.Store(l)
	}
}

// Init installs a new default Logger holding cfg and runs its Init.
// The new Logger is installed even if Init fails, so later calls still log
// to the console on a best-effort basis.
func Init(cfg Config, opts ...Option) error {
	l := New(cfg, opts...)
	SetDefault(l)
	return l.Init()
}

// Log emits message at severity s on the default Logger.
func Log(s Severity, message string) { Default().Log(s, message) }

// Trace emits message at trace level on the default Logger.
func Trace(message string) { Default().Trace(message) }

// Debug emits message at debug level on the default Logger.
func Debug(message string) { Default().Debug(message) }

// Info emits message at info level on the default Logger.
func Info(message string) { Default().Info(message) }

// Warn emits message at warn level on the default Logger.
func Warn(message string) { Default().Warn(message) }

// Error emits message at error level on the default Logger.
func Error(message string) { Default().Error(message) }

// Custom emits message under label on the default Logger.
func Custom(label, message string) { Default().Custom(label, message) }
