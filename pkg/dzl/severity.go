package dzl

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Level names a severity category.
type Level string

// Built-in levels, plus the custom category.
const (
	LevelTrace  Level = "trace"
	LevelDebug  Level = "debug"
	LevelInfo   Level = "info"
	LevelWarn   Level = "warn"
	LevelError  Level = "error"
	LevelCustom Level = "custom"
)

// ranks is the total order over built-in levels. LevelCustom is
// deliberately absent.
var ranks = map[Level]int{
	LevelTrace: 0,
	LevelDebug: 1,
	LevelInfo:  2,
	LevelWarn:  3,
	LevelError: 4,
}

// Levels returns every level name accepted by ParseLevel, lowest rank first
// and custom last.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCustom}
}

// Rank returns the position of l in the built-in order. ok is false for
// LevelCustom and unknown levels.
func Rank(l Level) (rank int, ok bool) {
	rank, ok = ranks[l]
	return rank, ok
}

// Compare orders two built-in levels, returning -1, 0 or +1.
// It returns ErrIncomparable if either level has no rank.
func Compare(a, b Level) (int, error) {
	ra, okA := Rank(a)
	rb, okB := Rank(b)
	if !okA || !okB {
		return 0, errors.Wrapf(ErrIncomparable, "comparing %q with %q", a, b)
	}
	switch {
	case ra < rb:
		return -1, nil
	case ra > rb:
		return 1, nil
	default:
		return 0, nil
	}
}

// ParseLevel converts a configuration value to a Level. Only the exact
// lowercase names returned by Levels are accepted.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if _, ok := ranks[l]; ok || l == LevelCustom {
		return l, nil
	}
	err := errors.Newf("unknown log level %q", s)
	err = errors.WithHint(err, "valid levels: "+levelList())
	return "", errors.Mark(err, ErrParse)
}

func levelList() string {
	names := make([]string, 0, len(ranks)+1)
	for _, l := range Levels() {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}

// String returns the lowercase level name.
func (l Level) String() string {
	return string(l)
}

// Ptr returns a pointer to a copy of l, for use as a Config threshold.
func (l Level) Ptr() *Level {
	return &l
}

// Severity is the category of a single entry: a built-in level, or a
// custom category carrying a caller-chosen label.
type Severity struct {
	Level Level
	// Label is rendered in place of the level name for custom severities.
	Label string
}

// Builtin returns the severity for a built-in level.
func Builtin(l Level) Severity {
	return Severity{Level: l}
}

// Labeled returns a custom severity rendered as label.
func Labeled(label string) Severity {
	return Severity{Level: LevelCustom, Label: label}
}

// IsCustom reports whether s is a custom severity.
func (s Severity) IsCustom() bool {
	return s.Level == LevelCustom
}

// Name returns the label written to the log line: the uppercase level name
// for built-in levels, the carried label verbatim for custom ones.
func (s Severity) Name() string {
	if s.IsCustom() {
		return s.Label
	}
	return strings.ToUpper(string(s.Level))
}
