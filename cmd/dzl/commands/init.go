package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the log file and record the initialization",
	Long: `Create the configured log file if it does not exist and append one INFO
entry recording where dzl is logging. The entry is not shown on the console
and is written regardless of log_level.

Does nothing when file logging is disabled. Unlike the logging commands,
init fails when the log file cannot be written.`,
	Example: `  # Initialize using ./Dzl.toml or the global config
  dzl init

  # Initialize with an explicit config
  dzl init --config ./deploy/Dzl.toml

  See Also: dzl config init`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	l, err := newLogger(cmd)
	if err != nil {
		return err
	}

	cfg := l.Config()
	if !cfg.FileLoggingEnabled {
		fmt.Fprintln(cmd.OutOrStdout(), "File logging is disabled")
		return nil
	}

	if err := l.Init(); err != nil {
		return classify(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logging to %s\n", cfg.LogPath)
	return nil
}
