package fileutil

import (
	"os"
	"unicode/utf8"

	"github.com/thoreinstein/dzl/internal/errors"
)

// ErrNotUTF8 indicates that a file's content is not valid UTF-8 text.
var ErrNotUTF8 = errors.New("file content is not valid UTF-8")

// ReadText reads the whole file at path and returns it as a string.
//
// Errors from the file system are returned unwrapped so callers can test
// them with os.IsNotExist and friends. Content that is not valid UTF-8
// yields ErrNotUTF8.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", errors.Wrapf(ErrNotUTF8, "reading %s", path)
	}

	return string(data), nil
}
