package dzl

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/dzl/pkg/fileutil"
)

// FileSink persists plain text to a log file.
//
// Each Append reads the whole file, concatenates the new text and rewrites
// the file in place. Symlinks are followed and the file keeps its inode and
// mode, so readers holding it open keep seeing new lines. The cost of a
// call grows with the file size, a crash mid-write can truncate the file,
// and two writers racing on the same path can each rewrite from the same
// old content so that one append is lost.
// A Logger serializes its own appends; nothing coordinates separate
// Loggers or processes.
type FileSink struct {
	path string
	diag *slog.Logger
}

// NewFileSink returns a sink for the file at path.
func NewFileSink(path string, diag *slog.Logger) *FileSink {
	return &FileSink{path: path, diag: diag}
}

// Path returns the file the sink writes.
func (s *FileSink) Path() string {
	return s.path
}

// Ensure creates an empty file at the sink's path if none exists.
func (s *FileSink) Ensure() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Mark(errors.Wrapf(err, "checking log file %s", s.path), ErrIO)
	}
	return s.create()
}

// Append adds text to the end of the file.
//
// A missing file is created once and the read retried; any other read
// failure, including content that is not valid UTF-8, is returned without
// retrying, as is a failed rewrite. Returned errors are marked ErrIO.
func (s *FileSink) Append(text string) error {
	content, err := fileutil.ReadText(s.path)
	if os.IsNotExist(err) {
		s.diag.Info("log file was not present, created", "path", s.path)
		if err := s.create(); err != nil {
			return err
		}
		content, err = fileutil.ReadText(s.path)
	}
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "reading log file %s", s.path), ErrIO)
	}

	if err := os.WriteFile(s.path, []byte(content+text), fileutil.DefaultFilePerm); err != nil {
		return errors.Mark(errors.Wrapf(err, "rewriting log file %s", s.path), ErrIO)
	}
	return nil
}

func (s *FileSink) create() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, fileutil.DefaultFilePerm)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "creating log file %s", s.path), ErrIO)
	}
	if err := f.Close(); err != nil {
		return errors.Mark(errors.Wrapf(err, "closing log file %s", s.path), ErrIO)
	}
	return nil
}
