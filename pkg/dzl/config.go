package dzl

// DefaultLogPath is the log file used when the configuration names none.
const DefaultLogPath = "dzl.log"

// Config is the active configuration of a Logger.
type Config struct {
	// FileLoggingEnabled persists passing entries to LogPath.
	FileLoggingEnabled bool
	// LogPath is the log file, relative to the working directory unless absolute.
	LogPath string
	// Threshold is the minimum built-in level emitted. Nil, or LevelCustom,
	// emits everything.
	Threshold *Level
}

// DefaultConfig returns file logging to dzl.log with a custom threshold,
// which filters nothing.
func DefaultConfig() Config {
	return Config{
		FileLoggingEnabled: true,
		LogPath:            DefaultLogPath,
		Threshold:          LevelCustom.Ptr(),
	}
}

// Provider supplies configuration to Logger.Reload.
type Provider interface {
	Load() (Config, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() (Config, error)

// Load calls f.
func (f ProviderFunc) Load() (Config, error) {
	return f()
}

// Static returns a Provider that always yields cfg.
func Static(cfg Config) Provider {
	return ProviderFunc(func() (Config, error) { return cfg, nil })
}
