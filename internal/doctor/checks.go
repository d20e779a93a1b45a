package doctor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/dzl/internal/errors"
	"github.com/thoreinstein/dzl/internal/logging"
	"github.com/thoreinstein/dzl/pkg/config"
	"github.com/thoreinstein/dzl/pkg/dzl"
	"github.com/thoreinstein/dzl/pkg/fileutil"
)

// LargeLogSize is the log file size above which LogFileCheck warns. Every
// append rewrites the whole file, so appends slow down as it grows.
const LargeLogSize = 10 << 20

// ConfigCheck loads Dzl.toml and reports where it came from and whether it
// is valid.
type ConfigCheck struct {
	// Path is an explicit config file. Empty searches the default locations.
	Path string
}

var _ Check = (*ConfigCheck)(nil)

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string { return "config-file" }

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string { return "config" }

// Run executes the check.
func (c *ConfigCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	f, used, err := config.Read(c.Path)
	if err != nil {
		result.Status = StatusError
		result.Message = err.Error()
		result.Hint = errors.FlattenHints(err)
		return result
	}

	result.Details = map[string]any{
		config.KeyFileLoggingEnabled: f.FileLoggingEnabled,
		config.KeyLogPath:            f.LogPath,
		config.KeyLogLevel:           f.LogLevel,
	}
	if used != "" {
		result.Details["file"] = used
	}

	if errs := config.Validate(f); len(errs) > 0 {
		var msgs, hints []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
			if h := errors.FlattenHints(e); h != "" {
				hints = append(hints, h)
			}
		}
		result.Status = StatusError
		result.Message = strings.Join(msgs, "; ")
		result.Hint = strings.Join(hints, "; ")
		return result
	}

	if used == "" {
		result.Status = StatusInfo
		result.Message = "no Dzl.toml found, using defaults"
		result.Hint = "create one with: dzl config init"
		return result
	}

	result.Status = StatusPass
	result.Message = "loaded " + used
	return result
}

// LogFileCheck verifies the configured log file can be appended to.
type LogFileCheck struct {
	Config dzl.Config
}

var _ Check = (*LogFileCheck)(nil)

// Name returns the unique identifier for this check.
func (c *LogFileCheck) Name() string { return "log-file" }

// Category returns the grouping for this check.
func (c *LogFileCheck) Category() string { return "logfile" }

// Run executes the check.
func (c *LogFileCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	if !c.Config.FileLoggingEnabled {
		result.Status = StatusInfo
		result.Message = "file logging is disabled"
		return result
	}

	path := c.Config.LogPath
	result.Details = map[string]any{"path": path}

	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		result.Status = StatusError
		result.Message = fmt.Sprintf("directory %s does not exist", dir)
		result.Hint = "mkdir -p " + dir
		return result
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = StatusPass
		result.Message = "log file does not exist yet and will be created"
		return result
	}
	if err != nil {
		result.Status = StatusError
		result.Message = fmt.Sprintf("cannot stat log file: %v", err)
		return result
	}
	if info.IsDir() {
		result.Status = StatusError
		result.Message = path + " is a directory"
		result.Hint = "set log_path to a file"
		return result
	}

	result.Details["size"] = info.Size()
	result.Details["permissions"] = fmt.Sprintf("%04o", info.Mode().Perm())

	if _, err := fileutil.ReadText(path); err != nil {
		result.Status = StatusError
		if errors.Is(err, fileutil.ErrNotUTF8) {
			result.Message = "log file is not valid UTF-8; appends will fail"
			result.Hint = "move " + path + " aside"
		} else {
			result.Message = fmt.Sprintf("log file is not readable: %v", err)
			result.Hint = "chmod 644 " + path
		}
		return result
	}

	if err := checkWritable(path); err != nil {
		result.Status = StatusError
		result.Message = fmt.Sprintf("log file is not writable: %v", err)
		result.Hint = "chmod 644 " + path
		return result
	}

	if info.Size() > LargeLogSize {
		result.Status = StatusWarning
		result.Message = fmt.Sprintf("log file is %d bytes; every append rewrites it", info.Size())
		result.Hint = "rotate or truncate " + path
		return result
	}

	result.Status = StatusPass
	result.Message = "log file is appendable"
	return result
}

// checkWritable opens path for writing without modifying it.
func checkWritable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	return f.Close()
}

// TerminalCheck reports whether console output will be colored.
type TerminalCheck struct {
	Out  io.Writer
	Mode logging.ColorMode
}

var _ Check = (*TerminalCheck)(nil)

// Name returns the unique identifier for this check.
func (c *TerminalCheck) Name() string { return "terminal" }

// Category returns the grouping for this check.
func (c *TerminalCheck) Category() string { return "console" }

// Run executes the check.
func (c *TerminalCheck) Run() *CheckResult {
	tty := logging.IsTTY(c.Out)
	colored := logging.UseColor(c.Mode, c.Out)

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   StatusInfo,
		Details: map[string]any{
			"tty":   tty,
			"color": string(c.Mode),
		},
	}

	switch {
	case colored:
		result.Message = "console output is colored"
	case c.Mode == logging.ColorNever:
		result.Message = "colors disabled by --color never"
	case !tty:
		result.Message = "console is not a terminal; colors disabled"
	default:
		result.Message = "colors disabled by NO_COLOR or TERM=dumb"
	}
	return result
}
