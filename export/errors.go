package export

import (
	"errors"
	"fmt"
)

var (
	// ErrIO matches every filesystem or encoder failure during export.
	ErrIO = errors.New("export: i/o failure")

	// ErrNoFrame is returned for a table that was never materialized.
	ErrNoFrame = errors.New("export: table has no frame")

	// ErrUnknownFormat is returned for a format outside the closed set.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrUnknownEncoding is returned when an output encoding name is not
	// recognised.
	ErrUnknownEncoding = errors.New("export: unknown encoding")
)

// Error describes a failed export step.
type Error struct {
	Op     string // create, write, close, mkdir, zip
	Path   string
	Format Format // meaningful for create, write and close
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports ErrIO for every *Error.
func (e *Error) Is(target error) bool {
	return target == ErrIO
}
