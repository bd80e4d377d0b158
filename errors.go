package lattice

import (
	"errors"
	"fmt"
)

// ErrNameCollision is returned when two tables in one export share a
// (page, order) pair and would be written to the same file or sheet.
var ErrNameCollision = errors.New("lattice: export name collision")

// CollisionError identifies the two colliding tables by list index.
type CollisionError struct {
	Page, Order   int
	First, Second int
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("lattice: tables %d and %d both export as page-%d-table-%d",
		e.First, e.Second, e.Page, e.Order)
}

func (e *CollisionError) Unwrap() error { return ErrNameCollision }
