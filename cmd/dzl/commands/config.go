package commands

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dzl/internal/editor"
	"github.com/thoreinstein/dzl/internal/errors"
	"github.com/thoreinstein/dzl/internal/logging"
	"github.com/thoreinstein/dzl/internal/paths"
	"github.com/thoreinstein/dzl/pkg/config"
	"github.com/thoreinstein/dzl/pkg/dzl"
)

var (
	showFormat   string
	configGlobal bool
	configForce  bool
)

// stdinIsTTY and pickLevel are replaced in tests.
var (
	stdinIsTTY = func() bool { return logging.IsTTY(os.Stdin) }
	pickLevel  = pickLevelInteractive
)

func init() {
	configShowCmd.Flags().StringVar(&showFormat, "format", "yaml", "output format: yaml, toml")
	configInitCmd.Flags().BoolVar(&configGlobal, "global", false, "write the global config instead of ./Dzl.toml")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "update the global config instead of ./Dzl.toml")
	configEditCmd.Flags().BoolVar(&configGlobal, "global", false, "edit the global config instead of ./Dzl.toml")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dzl configuration",
	Long: `Manage Dzl.toml.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show the effective configuration
  dzl config

  # Only log warnings and errors
  dzl config set log_level warn

See Also: dzl init`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration dzl would use, after environment overrides, and the
file it came from.`,
	Example: `  dzl config show
  dzl config show --format toml`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default Dzl.toml",
	Long: `Write a Dzl.toml holding the default configuration to the current
directory, or with --global to the global config directory.`,
	Example: `  dzl config init
  dzl config init --global --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a configuration value",
	Long: `Set one key in Dzl.toml, creating the file if needed.

Keys: file_logging_enabled (true or false), log_path, log_level.
When log_level is given without a value on a terminal, the level is picked
interactively. Environment overrides in effect are written as well.`,
	Example: `  dzl config set log_level warn
  dzl config set file_logging_enabled false
  dzl config set log_level            # pick interactively`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open Dzl.toml in $EDITOR",
	Long: `Open the configuration file in your editor and validate it afterwards.

Uses $EDITOR, then $VISUAL, then nano or vi. If no Dzl.toml exists, one with
the defaults is created first.`,
	Example: `  dzl config edit
  EDITOR=nano dzl config edit --global`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	f, used, err := config.Read(configPath)
	if err != nil {
		return classify(err)
	}

	var data []byte
	switch showFormat {
	case "yaml":
		data, err = yaml.Marshal(f)
	case "toml":
		data, err = toml.Marshal(f)
	default:
		return errors.NewUserError(
			errors.Mark(errors.Newf("unknown format %q", showFormat), errors.ErrInvalidFlag),
			"use --format yaml or --format toml")
	}
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	source := used
	if source == "" {
		source = "defaults"
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "# source: %s\n", source)
	_, err = w.Write(data)
	return errors.Wrap(err, "writing config")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	target := configTarget("")

	if _, err := os.Stat(target); err == nil && !configForce {
		return errors.NewUserError(errors.Wrapf(errors.ErrExists, "%s", target), "Use --force to overwrite")
	}

	if err := config.Write(target, config.Default()); err != nil {
		return classify(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", target)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]

	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case key == config.KeyLogLevel && stdinIsTTY():
		picked, err := pickLevel()
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "picking log level")
		}
		value = picked
	default:
		return errors.NewUserError(errors.Newf("missing value for %s", key), "Run: dzl config set <key> <value>")
	}

	f, used, err := readForUpdate()
	if err != nil {
		return classify(err)
	}

	f, err = config.Set(f, key, value)
	if err != nil {
		return classify(err)
	}

	target := configTarget(used)
	if err := config.Write(target, f); err != nil {
		return classify(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, target)
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	_, used, err := readForUpdate()
	if err != nil && !errors.Is(err, dzl.ErrParse) {
		return classify(err)
	}

	target := configTarget(used)
	if _, err := os.Stat(target); errors.Is(err, fs.ErrNotExist) {
		if err := config.Write(target, config.Default()); err != nil {
			return classify(err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Location: %s\n", target)
	if err := editor.Open(target, editor.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to an installed editor")
	}

	if _, err := config.Load(target); err != nil {
		return errors.NewUserError(errors.Wrap(err, "edited config is invalid"), "Run: dzl config edit")
	}
	return nil
}

// readForUpdate reads the file config set modifies. A named file that does
// not exist yet starts from the defaults.
func readForUpdate() (config.File, string, error) {
	path := configPath
	if path == "" && configGlobal {
		path = paths.GlobalConfigFile()
	}
	if path == "" {
		return config.Read("")
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.Default(), path, nil
	}
	return config.Read(path)
}

// configTarget returns the file a config command writes: --config if set,
// the global file with --global, else the file in use or ./Dzl.toml.
func configTarget(used string) string {
	switch {
	case configPath != "":
		return configPath
	case configGlobal:
		return paths.GlobalConfigFile()
	case used != "":
		return used
	default:
		return paths.ConfigFileName
	}
}

func pickLevelInteractive() (string, error) {
	levels := dzl.Levels()
	idx, err := fuzzyfinder.Find(
		levels,
		func(i int) string { return string(levels[i]) },
		fuzzyfinder.WithPromptString("log_level> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return levelDescription(levels[i])
		}),
	)
	if err != nil {
		return "", err
	}
	return string(levels[idx]), nil
}

func levelDescription(l dzl.Level) string {
	if l == dzl.LevelCustom {
		return "Emit everything."
	}
	var shown []string
	for _, other := range dzl.Levels() {
		if dzl.Passes(l.Ptr(), dzl.Builtin(other)) && other != dzl.LevelCustom {
			shown = append(shown, string(other))
		}
	}
	return "Emit " + strings.Join(shown, ", ") + " and custom entries."
}
