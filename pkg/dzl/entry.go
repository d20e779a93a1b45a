package dzl

import "time"

// Entry is a single log message as seen by the pipeline.
// Entries are created per call and never stored; only their rendered
// text is durable.
type Entry struct {
	Severity Severity
	Message  string
	Time     time.Time
}
