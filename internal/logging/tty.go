package logging

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// ColorMode selects when terminal colors are used.
type ColorMode string

const (
	// ColorAuto colors output only when the writer supports it.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables colors.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a flag value to a ColorMode. An empty string is auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", errors.Newf("unknown color mode %q (valid: auto, always, never)", s)
	}
}

// UseColor resolves mode against w.
func UseColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return SupportsColor(w)
	}
}

// IsTTY returns true if the given writer is a terminal.
// It supports os.File and any wrapper that provides an Fd() method.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor returns true if the given writer supports ANSI color codes.
// It returns false if:
//   - The writer is not a TTY
//   - The NO_COLOR environment variable is set
//   - The TERM environment variable is set to "dumb"
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	// Respect NO_COLOR standard (https://no-color.org)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if term := os.Getenv("TERM"); term == "dumb" {
		return false
	}

	return isTTY
}
