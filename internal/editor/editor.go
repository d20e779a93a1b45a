// Package editor launches the user's preferred text editor.
package editor

import (
	"io"
	"os"
	"os/exec"

	"github.com/thoreinstein/dzl/internal/errors"
)

// Streams are the standard streams handed to the editor process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Open runs the user's editor on path and waits for it to exit.
func Open(path string, s Streams) error {
	name := Detect()

	cmd := exec.Command(name, path)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", name)
	}
	return nil
}

// Detect returns the editor command: $EDITOR, then $VISUAL, then nano if
// installed, else vi.
func Detect() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
