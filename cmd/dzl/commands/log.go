package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dzl/pkg/dzl"
)

func init() {
	for _, level := range []dzl.Level{
		dzl.LevelTrace,
		dzl.LevelDebug,
		dzl.LevelInfo,
		dzl.LevelWarn,
		dzl.LevelError,
	} {
		rootCmd.AddCommand(newLevelCmd(level))
	}
	rootCmd.AddCommand(customCmd)
}

// newLevelCmd returns the command emitting one entry at level.
func newLevelCmd(level dzl.Level) *cobra.Command {
	stream := "stdout"
	if level == dzl.LevelError {
		stream = "stderr"
	}

	return &cobra.Command{
		Use:   string(level) + " <message...>",
		Short: "Emit a " + string(level) + " entry",
		Long: `Emit one ` + strings.ToUpper(string(level)) + ` entry. The arguments are joined with spaces.

The entry is written to ` + stream + ` and appended to the log file when file
logging is enabled. Nothing is written if the configured log_level is higher.`,
		Example: `  dzl ` + string(level) + ` "cache warmed"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cmd)
			if err != nil {
				return err
			}
			l.Log(dzl.Builtin(level), strings.Join(args, " "))
			return nil
		},
	}
}

var customCmd = &cobra.Command{
	Use:   "custom <label> <message...>",
	Short: "Emit an entry with a custom label",
	Long: `Emit one entry rendered with label in place of the level name.

Custom entries are never filtered by log_level.`,
	Example: `  dzl custom AUDIT "user alice created"

  See Also: dzl info`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(cmd)
		if err != nil {
			return err
		}
		l.Custom(args[0], strings.Join(args[1:], " "))
		return nil
	},
}
