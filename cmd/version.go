// Package cmd holds the build metadata of the dzl binary, set with
// -ldflags "-X github.com/thoreinstein/dzl/cmd.Version=...".
package cmd

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// BuildInfo returns the version report printed by dzl version.
func BuildInfo() string {
	return fmt.Sprintf("dzl version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
