package dzl

import (
	"strings"

	"github.com/fatih/color"
)

// TimestampLayout renders local time with nanosecond precision and the
// UTC offset. The fractional part is fixed-width.
const TimestampLayout = "2006-01-02 15:04:05.000000000 -07:00"

// Profile selects the console decoration. The zero Profile decorates
// nothing, so the decorated form equals the plain form.
type Profile struct {
	// Color wraps each line in a foreground color chosen by severity.
	Color bool
	// Icons prefixes each line with a one-rune severity icon.
	Icons bool
}

// style is the decoration of one severity.
type style struct {
	attrs []color.Attribute
	icon  string
}

var styles = map[Level]style{
	LevelTrace:  {attrs: []color.Attribute{color.FgCyan}, icon: "·"},
	LevelDebug:  {attrs: []color.Attribute{color.FgHiCyan}, icon: "•"},
	LevelInfo:   {attrs: []color.Attribute{color.FgGreen}, icon: "ℹ"},
	LevelWarn:   {attrs: []color.Attribute{color.FgYellow}, icon: "⚠"},
	LevelError:  {attrs: []color.Attribute{color.FgRed, color.Bold}, icon: "✖"},
	LevelCustom: {attrs: []color.Attribute{color.FgBlue}, icon: "★"},
}

// Formatter renders entries to text.
type Formatter struct {
	layout  string
	profile Profile
	colors  map[Level]*color.Color
}

// NewFormatter returns a Formatter decorating console text per profile.
func NewFormatter(profile Profile) *Formatter {
	f := &Formatter{
		layout:  TimestampLayout,
		profile: profile,
		colors:  make(map[Level]*color.Color, len(styles)),
	}
	for l, s := range styles {
		c := color.New(s.attrs...)
		// The profile has already been resolved against the terminal, so
		// override fatih/color's own stdout detection.
		if profile.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		f.colors[l] = c
	}
	return f
}

// Profile returns the decoration profile of f.
func (f *Formatter) Profile() Profile {
	return f.profile
}

// Render returns the plain form, written to the log file, and the
// decorated form, written to the console. Both end in a single newline.
func (f *Formatter) Render(e Entry) (plain, decorated string) {
	line := f.line(e)
	plain = line + "\n"

	if !f.profile.Color && !f.profile.Icons {
		return plain, plain
	}

	key := e.Severity.Level
	if _, ok := styles[key]; !ok {
		key = LevelInfo
	}

	var b strings.Builder
	if f.profile.Icons {
		b.WriteString(styles[key].icon)
		b.WriteByte(' ')
	}
	if f.profile.Color {
		b.WriteString(f.colors[key].Sprint(line))
	} else {
		b.WriteString(line)
	}
	b.WriteByte('\n')

	return plain, b.String()
}

func (f *Formatter) line(e Entry) string {
	var b strings.Builder
	b.Grow(len(f.layout) + len(e.Message) + 16)
	b.WriteString(e.Time.Format(f.layout))
	b.WriteByte(' ')
	b.WriteString(e.Severity.Name())
	b.WriteByte(' ')
	b.WriteString(e.Message)
	return b.String()
}
