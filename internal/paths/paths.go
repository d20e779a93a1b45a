package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG config home.
const AppName = "dzl"

// ConfigFileName is the name of the dzl configuration file.
const ConfigFileName = "Dzl.toml"

// ConfigDirEnv overrides the global configuration directory when set.
const ConfigDirEnv = "DZL_CONFIG_DIR"

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the global dzl configuration directory.
// Returns $DZL_CONFIG_DIR when set, otherwise <ConfigHome>/dzl.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// GlobalConfigFile returns the path of the global Dzl.toml.
func GlobalConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// SearchDirs returns the directories searched for Dzl.toml, in order of
// precedence: the current directory, then the global config directory.
func SearchDirs() []string {
	return []string{".", ConfigDir()}
}
