package codegen

import (
	"errors"
	"fmt"
	iofs "io/fs"
)

// IOError wraps a filesystem failure while writing or reading the target file.
type IOError struct {
	Op   string // "write" or "read"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("codegen: %s %s: %v", e.Op, e.Path, unwrapPathError(e.Err))
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// MismatchError reports that generated content differs from the file on disk.
// The diff itself is written to the diagnostic stream, not carried here.
type MismatchError struct{}

func (MismatchError) Error() string {
	return "Code-gen failed"
}

// ErrMismatch can be used with errors.Is to detect a stale generated file.
var ErrMismatch error = MismatchError{}

func unwrapPathError(err error) error {
	var pe *iofs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
