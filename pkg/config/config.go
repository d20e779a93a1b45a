package config

import (
	"io/fs"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/dzl/internal/paths"
	"github.com/thoreinstein/dzl/pkg/dzl"
)

// Configuration keys.
const (
	KeyFileLoggingEnabled = "file_logging_enabled"
	KeyLogPath            = "log_path"
	KeyLogLevel           = "log_level"

	// keyWriteToLogFile is the legacy spelling of KeyFileLoggingEnabled.
	keyWriteToLogFile = "write_to_log_file"
)

// EnvPrefix prefixes environment overrides, e.g. DZL_LOG_LEVEL.
const EnvPrefix = "DZL"

// Keys lists the recognized configuration keys in file order.
func Keys() []string {
	return []string{KeyFileLoggingEnabled, KeyLogPath, KeyLogLevel}
}

// File is the on-disk form of Dzl.toml.
type File struct {
	FileLoggingEnabled bool   `toml:"file_logging_enabled" yaml:"file_logging_enabled"`
	LogPath            string `toml:"log_path" yaml:"log_path"`
	LogLevel           string `toml:"log_level" yaml:"log_level"`
}

// Default returns the configuration used when no file is found.
func Default() File {
	return FromConfig(dzl.DefaultConfig())
}

// FromConfig returns the file form of cfg. A nil threshold becomes custom.
func FromConfig(cfg dzl.Config) File {
	level := dzl.LevelCustom
	if cfg.Threshold != nil {
		level = *cfg.Threshold
	}
	return File{
		FileLoggingEnabled: cfg.FileLoggingEnabled,
		LogPath:            cfg.LogPath,
		LogLevel:           string(level),
	}
}

// Config converts f to the Logger configuration. It fails with an error
// marked dzl.ErrParse if f does not validate.
func (f File) Config() (dzl.Config, error) {
	if errs := Validate(f); len(errs) > 0 {
		return dzl.Config{}, validationError(errs)
	}
	level, err := dzl.ParseLevel(f.LogLevel)
	if err != nil {
		return dzl.Config{}, err
	}
	return dzl.Config{
		FileLoggingEnabled: f.FileLoggingEnabled,
		LogPath:            f.LogPath,
		Threshold:          level.Ptr(),
	}, nil
}

// Read reads the configuration file without validating it.
// If path is provided, that file must exist.
// If path is empty, Dzl.toml is searched in the current directory and then
// the global config directory; defaults apply when neither has one.
// It returns the file used, or "" when defaults applied. A file that fails
// to parse is still reported.
func Read(path string) (File, string, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var parseErr viper.ConfigParseError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load; defaults apply.
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			err = errors.WithHint(errors.Wrapf(err, "config file not found at %s", path),
				"create one with: dzl config init")
			return File{}, "", errors.Mark(err, dzl.ErrIO)
		case errors.As(err, &parseErr):
			err = errors.WithHint(errors.Wrapf(err, "parsing config file %s", v.ConfigFileUsed()),
				"config files are TOML, e.g. log_level = \"warn\"")
			return File{}, v.ConfigFileUsed(), errors.Mark(err, dzl.ErrParse)
		default:
			return File{}, "", errors.Mark(errors.Wrap(err, "reading config file"), dzl.ErrIO)
		}
	}

	// Registering after the read moves a legacy value onto the real key.
	if !v.InConfig(KeyFileLoggingEnabled) {
		v.RegisterAlias(keyWriteToLogFile, KeyFileLoggingEnabled)
	}

	f := File{
		FileLoggingEnabled: v.GetBool(KeyFileLoggingEnabled),
		LogPath:            v.GetString(KeyLogPath),
		LogLevel:           v.GetString(KeyLogLevel),
	}
	return f, v.ConfigFileUsed(), nil
}

// Load reads and validates the configuration. See Read for how path is
// resolved. An unrecognized level or path fails with an error marked
// dzl.ErrParse; an unreadable file with one marked dzl.ErrIO.
func Load(path string) (dzl.Config, error) {
	f, _, err := Read(path)
	if err != nil {
		return dzl.Config{}, err
	}
	return f.Config()
}

// Provider loads Dzl.toml for dzl.Logger.Reload.
type Provider struct {
	// Path is an explicit config file. Empty searches the default locations.
	Path string
}

// Load implements dzl.Provider.
func (p Provider) Load() (dzl.Config, error) {
	return Load(p.Path)
}

var _ dzl.Provider = Provider{}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName(trimExt(paths.ConfigFileName))
	v.SetConfigType("toml")

	for _, dir := range paths.SearchDirs() {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := Default()
	v.SetDefault(KeyFileLoggingEnabled, def.FileLoggingEnabled)
	v.SetDefault(KeyLogPath, def.LogPath)
	v.SetDefault(KeyLogLevel, def.LogLevel)

	return v
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
