package dzl

import (
	"github.com/cockroachdb/errors"
)

// Error kinds. Use errors.Is to classify an error returned by this package
// or by the config loader; the kinds are attached with errors.Mark and
// survive further wrapping.
var (
	// ErrIO marks file-not-found, permission and other OS-level I/O failures.
	ErrIO = errors.New("dzl: i/o error")

	// ErrParse marks malformed configuration and unrecognized level names.
	ErrParse = errors.New("dzl: parse error")

	// ErrInit marks failures of Logger.Init. They are always fatal.
	ErrInit = errors.New("dzl: initialization failed")

	// ErrIncomparable is returned by Compare when a level has no rank.
	ErrIncomparable = errors.New("dzl: levels are not comparable")
)
