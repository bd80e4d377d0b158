package tables

import (
	"fmt"

	"github.com/tsawler/lattice/model"
)

// Locate returns the cell containing p. Points on a shared boundary belong
// to the cell to the right and below.
func (s *Spanned) Locate(p model.Point) (row, col int, ok bool) {
	t := s.table
	row, col = -1, -1
	for i, c := range t.Cols {
		if p.X >= c.Left && p.X <= c.Right {
			col = i
		}
		if col != -1 && p.X < c.Right {
			break
		}
	}
	for i, r := range t.Rows {
		if p.Y <= r.Top && p.Y >= r.Bottom {
			row = i
		}
		if row != -1 && p.Y > r.Bottom {
			break
		}
	}
	return row, col, row != -1 && col != -1
}

// Place appends a fragment's text to the cell containing the centre of its
// box and records the share of the box lying outside that cell as a
// placement error.
func (s *Spanned) Place(frag model.TextFragment) (row, col int, err error) {
	row, col, ok := s.Locate(frag.BBox.Center())
	if !ok {
		return -1, -1, fmt.Errorf("%w: fragment %q at %v", model.ErrCellOutOfRange, frag.Text, frag.BBox)
	}

	cell := s.table.Cell(row, col)
	cell.AppendText(frag.Text)

	if area := frag.BBox.Area(); area > 0 {
		inside := frag.BBox.Intersection(cell.BBox()).Area()
		s.AddPlacementError(1 - inside/area)
	} else {
		s.AddPlacementError(0)
	}
	return row, col, nil
}
