// Package paths resolves the directories dzl reads its configuration from.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux the global configuration lives under
// ~/.config/dzl, on macOS under ~/Library/Application Support/dzl.
//
// The DZL_CONFIG_DIR environment variable overrides the global directory,
// which keeps tests and sandboxed hosts away from the user's real config.
package paths
