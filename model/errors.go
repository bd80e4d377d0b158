package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is returned when column or row intervals are empty,
	// out of order or not contiguous.
	ErrMalformedGrid = errors.New("model: malformed grid")

	// ErrUnanchoredLine marks a segment whose starting extremity matched no
	// grid coordinate within tolerance. Such segments set no flags.
	ErrUnanchoredLine = errors.New("model: unanchored line")

	// ErrCellOutOfRange is returned for row/column indices outside the grid.
	ErrCellOutOfRange = errors.New("model: cell out of range")
)

// GridError describes why a proposed grid was rejected.
type GridError struct {
	Axis   string // "column" or "row"
	Index  int    // offending interval, -1 for the list as a whole
	Reason string
}

func (e *GridError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s intervals: %s", ErrMalformedGrid, e.Axis, e.Reason)
	}
	return fmt.Sprintf("%v: %s %d: %s", ErrMalformedGrid, e.Axis, e.Index, e.Reason)
}

func (e *GridError) Unwrap() error {
	return ErrMalformedGrid
}

// LineError reports a segment that could not be anchored to the grid.
type LineError struct {
	Orientation Orientation
	Index       int // position in the input list
	Segment     Segment
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%v: %s segment %d %s", ErrUnanchoredLine, e.Orientation, e.Index, e.Segment)
}

func (e *LineError) Unwrap() error {
	return ErrUnanchoredLine
}

// UnanchoredLines extracts every LineError from err, which is typically the
// joined error returned by [Table.SetEdges].
func UnanchoredLines(err error) []*LineError {
	switch e := err.(type) {
	case nil:
		return nil
	case *LineError:
		return []*LineError{e}
	case interface{ Unwrap() []error }:
		var out []*LineError
		for _, inner := range e.Unwrap() {
			out = append(out, UnanchoredLines(inner)...)
		}
		return out
	}

	var le *LineError
	if errors.As(err, &le) {
		return []*LineError{le}
	}
	return nil
}
