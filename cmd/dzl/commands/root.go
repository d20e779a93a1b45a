// Package commands implements the CLI commands for dzl.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dzl/cmd"
	"github.com/thoreinstein/dzl/internal/errors"
	"github.com/thoreinstein/dzl/internal/logging"
)

// configPath holds the value of the --config flag.
var configPath string

// colorFlag holds the value of the --color flag.
var colorFlag string

// icons holds the value of the --icons flag.
var icons bool

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to Dzl.toml (default: ./Dzl.toml, then the global config)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", string(logging.ColorAuto),
		"color console output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&icons, "icons", false,
		"prefix console output with severity icons")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase diagnostic verbosity (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"only report diagnostic errors")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("dzl version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "dzl",
	Short: "Leveled logging from the command line",
	Long: `dzl writes leveled log entries to the console and, when enabled, to a
log file. The threshold, log path and file logging switch come from Dzl.toml,
searched in the current directory and then the global config directory.

Entries below the configured level are dropped. Error entries go to stderr,
everything else to stdout. Custom entries carry their own label and are never
filtered.`,
	Example: `  # Create a Dzl.toml with defaults
  dzl config init

  # Create the log file and record the initialization
  dzl init

  # Emit entries
  dzl info "server started"
  dzl custom AUDIT "user created"

  See Also: dzl config, dzl init`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		_, err := colorMode()
		return err
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the diagnostic logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.ErrInvalidFlag, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("DZL_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Output: cmd.ErrOrStderr(),
		Prefix: logging.DefaultPrefix,
	})
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// colorMode parses the --color flag.
func colorMode() (logging.ColorMode, error) {
	mode, err := logging.ParseColorMode(colorFlag)
	if err != nil {
		return "", errors.NewUserError(errors.Mark(err, errors.ErrInvalidFlag),
			"Run 'dzl --help' to see valid color modes")
	}
	return mode, nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
