package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dzl/internal/errors"
	"github.com/thoreinstein/dzl/internal/logging"
	"github.com/thoreinstein/dzl/pkg/config"
	"github.com/thoreinstein/dzl/pkg/dzl"
)

// newLogger loads the configuration selected by --config and returns a
// Logger writing to the command's streams.
func newLogger(cmd *cobra.Command) (*dzl.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, classify(err)
	}

	mode, err := colorMode()
	if err != nil {
		return nil, err
	}

	return dzl.New(cfg,
		dzl.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		dzl.WithDiagnostics(logging.FromContext(cmd.Context())),
		dzl.WithColorMode(mode),
		dzl.WithIcons(icons),
	), nil
}

// classify attaches an exit code to err based on its kind.
// Errors that already carry an exit code are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *errors.ExitError
	switch {
	case errors.As(err, &exitErr):
		return err
	case errors.Is(err, dzl.ErrParse), errors.Is(err, config.ErrUnknownKey):
		return errors.NewConfigError(err)
	case errors.Is(err, dzl.ErrIO):
		return errors.NewSystemError(err, "Check that the path exists and is writable")
	default:
		return errors.NewExitError(err, errors.ExitUser)
	}
}

// Report writes err, its hints and any suggestion to w and returns the
// exit code for the process.
func Report(w io.Writer, err error) int {
	if err == nil {
		return errors.ExitSuccess
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	for _, h := range errors.Hints(err) {
		fmt.Fprintf(w, "Hint: %s\n", h)
	}
	if s := errors.Suggestion(err); s != "" {
		fmt.Fprintln(w, s)
	}
	return errors.Code(err)
}
