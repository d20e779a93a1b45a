package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dzl/internal/doctor"
	"github.com/thoreinstein/dzl/internal/errors"
	"github.com/thoreinstein/dzl/pkg/config"
)

var (
	doctorJSON bool
	doctorAll  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show every check, including passed ones")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and log file issues",
	Long: `Run diagnostic checks on the dzl configuration and the log file.

Reports a Dzl.toml that does not load, a log directory that does not exist,
a log file that is not UTF-8 text or not writable, and a log file large
enough to make appends slow.

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	mode, err := colorMode()
	if err != nil {
		return err
	}

	runner := doctor.NewRunner(&doctor.ConfigCheck{Path: configPath})
	if cfg, err := config.Load(configPath); err == nil {
		runner.AddCheck(&doctor.LogFileCheck{Config: cfg})
	}
	runner.AddCheck(&doctor.TerminalCheck{Out: cmd.OutOrStdout(), Mode: mode})

	report := runner.Run()

	w := cmd.OutOrStdout()
	if doctorJSON {
		err = outputDoctorJSON(w, report)
	} else {
		outputDoctorText(w, report)
	}
	if err != nil {
		return err
	}

	if report.HasErrors() {
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	}
	if report.HasWarnings() {
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	}
	return nil
}

func outputDoctorJSON(w io.Writer, report *doctor.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(report), "encoding JSON")
}

func outputDoctorText(w io.Writer, report *doctor.Report) {
	for _, result := range report.Results {
		problem := result.Status == doctor.StatusError || result.Status == doctor.StatusWarning
		if !doctorAll && !problem && result.Status != doctor.StatusInfo {
			continue
		}

		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if result.Hint != "" && (problem || doctorAll) {
			fmt.Fprintf(w, "  hint: %s\n", result.Hint)
		}
	}

	fmt.Fprintf(w, "\nSummary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusPass:
		return "✓"
	case doctor.StatusInfo:
		return "ℹ"
	case doctor.StatusWarning:
		return "⚠"
	case doctor.StatusError:
		return "✗"
	default:
		return "?"
	}
}

// errDoctorWarnings is reported with exit code 1.
var errDoctorWarnings = errors.New("doctor found warnings")

// errDoctorErrors is reported with exit code 2.
var errDoctorErrors = errors.New("doctor found errors")
