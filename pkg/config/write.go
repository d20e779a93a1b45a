package config

import (
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/dzl/internal/paths"
	"github.com/thoreinstein/dzl/pkg/dzl"
	"github.com/thoreinstein/dzl/pkg/fileutil"
)

// Write validates f and writes it to path as TOML, creating the parent
// directory if needed. Existing files are replaced atomically and keep
// their permissions.
func Write(path string, f File) error {
	if errs := Validate(f); len(errs) > 0 {
		return validationError(errs)
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Mark(errors.Wrapf(err, "creating config directory for %s", path), dzl.ErrIO)
	}

	perm := fileutil.FileMode(path, fileutil.DefaultFilePerm)
	if err := fileutil.AtomicWriteTOML(path, f, perm); err != nil {
		return errors.Mark(errors.Wrapf(err, "writing config file %s", path), dzl.ErrIO)
	}
	return nil
}

// Set returns f with key set to value. Booleans accept true or false.
// Unknown keys fail with ErrUnknownKey; invalid values are reported by
// Validate when the result is written.
func Set(f File, key, value string) (File, error) {
	switch key {
	case KeyFileLoggingEnabled, keyWriteToLogFile:
		switch value {
		case "true":
			f.FileLoggingEnabled = true
		case "false":
			f.FileLoggingEnabled = false
		default:
			return f, errors.WithHint(errors.Newf("%s: invalid boolean %q", key, value), "use true or false")
		}
	case KeyLogPath:
		f.LogPath = value
	case KeyLogLevel:
		f.LogLevel = value
	default:
		return f, errors.WithHintf(errors.Mark(errors.Newf("unknown key %q", key), ErrUnknownKey),
			"known keys: %s, %s, %s", KeyFileLoggingEnabled, KeyLogPath, KeyLogLevel)
	}
	return f, nil
}

// ErrUnknownKey indicates a configuration key is not recognized.
var ErrUnknownKey = errors.New("unknown configuration key")
