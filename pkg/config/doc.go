// Package config loads and writes dzl's Dzl.toml configuration.
//
// # Configuration File
//
// Dzl.toml is read from the current directory, then from the global config
// directory ($DZL_CONFIG_DIR, or dzl under the XDG config home). Keys:
//
//	file_logging_enabled = true   # write_to_log_file is accepted as well
//	log_path = "dzl.log"
//	log_level = "custom"          # trace, debug, info, warn, error or custom
//
// Each key can be overridden with an environment variable prefixed DZL_,
// e.g. DZL_LOG_LEVEL=warn.
//
// # Loading Configuration
//
// [Load] returns a validated [dzl.Config]:
//
//	cfg, err := config.Load("")
//	if errors.Is(err, dzl.ErrParse) {
//	    // bad level or malformed TOML
//	}
//
// [Provider] plugs the loader into [dzl.Logger.Reload].
//
// # Validation
//
// [Validate] reports every invalid field of a [File] without loading it.
package config
