package model

import (
	"fmt"
	"strings"
)

// Cell is one unit of a table grid, in PDF coordinates (origin at the
// bottom-left of the page).
//
// The boundary flags record which sides are ruled by a detected line. They
// start false and are only ever set to true. The span flags are derived from
// the boundary flags by [Table.SetSpan].
type Cell struct {
	X1, Y1 float64 // left-bottom corner
	X2, Y2 float64 // right-top corner

	Left   bool
	Right  bool
	Top    bool
	Bottom bool

	HSpan bool // merges with a horizontal neighbour
	VSpan bool // merges with a vertical neighbour

	text []byte
}

// NewCell creates an unbounded cell with no text.
func NewCell(x1, y1, x2, y2 float64) Cell {
	return Cell{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// LB returns the left-bottom corner
func (c *Cell) LB() Point { return Point{c.X1, c.Y1} }

// LT returns the left-top corner
func (c *Cell) LT() Point { return Point{c.X1, c.Y2} }

// RB returns the right-bottom corner
func (c *Cell) RB() Point { return Point{c.X2, c.Y1} }

// RT returns the right-top corner
func (c *Cell) RT() Point { return Point{c.X2, c.Y2} }

// BBox returns the cell rectangle
func (c *Cell) BBox() BBox {
	return NewBBoxFromPoints(c.LB(), c.RT())
}

// AppendText adds s to the end of the cell's text. Successive calls
// concatenate without a separator.
func (c *Cell) AppendText(s string) {
	c.text = append(c.text, s...)
}

// Text returns the accumulated text with leading and trailing whitespace
// removed.
func (c *Cell) Text() string {
	return strings.TrimSpace(string(c.text))
}

// Bound returns the number of ruled sides, 0 through 4.
func (c *Cell) Bound() int {
	n := 0
	for _, b := range [...]bool{c.Left, c.Right, c.Top, c.Bottom} {
		if b {
			n++
		}
	}
	return n
}

// Clone returns a copy of the cell that shares no text buffer with c.
func (c *Cell) Clone() Cell {
	cp := *c
	cp.text = append([]byte(nil), c.text...)
	return cp
}

func (c *Cell) String() string {
	return fmt.Sprintf("<Cell x1=%g y1=%g x2=%g y2=%g>", c.X1, c.Y1, c.X2, c.Y2)
}
