package model

import (
	"errors"
	"fmt"

	"github.com/tsawler/lattice/internal/match"
)

// contiguityEpsilon absorbs floating point noise when checking that
// neighbouring intervals share a boundary.
const contiguityEpsilon = 1e-9

// Column is a column interval, Left < Right.
type Column struct {
	Left, Right float64
}

// Row is a row interval, Top > Bottom (PDF coordinates grow upwards).
type Row struct {
	Top, Bottom float64
}

// Table is a fixed grid of cells built from column and row intervals.
//
// A table is driven through boundary assignment ([Table.SetEdges],
// [Table.SetBorder], [Table.SetAllEdges]), then [Table.SetSpan], then text
// placement, then materialization into a [Frame]. The tables package wraps
// that sequence in phase types so it cannot be run out of order.
type Table struct {
	Cols  []Column // left to right
	Rows  []Row    // top to bottom
	Cells [][]Cell // Cells[row][col]

	Frame      *Frame  // materialized result, nil until text placement is done
	Shape      [2]int  // rows, columns of Frame
	Accuracy   float64 // text placement accuracy, 0-100
	Whitespace float64 // percentage of empty cells, 0-100
	Order      int     // table number on the page, 1-based; 0 if unset
	Page       int     // page number, 1-based; 0 if unset
}

// NewTable builds the grid for the given intervals. Columns must increase,
// rows must decrease, and neighbours must share their boundary.
func NewTable(cols []Column, rows []Row) (*Table, error) {
	if err := validateColumns(cols); err != nil {
		return nil, err
	}
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	t := &Table{
		Cols:  append([]Column(nil), cols...),
		Rows:  append([]Row(nil), rows...),
		Cells: make([][]Cell, len(rows)),
	}
	for r, row := range t.Rows {
		t.Cells[r] = make([]Cell, len(t.Cols))
		for c, col := range t.Cols {
			t.Cells[r][c] = NewCell(col.Left, row.Bottom, col.Right, row.Top)
		}
	}
	return t, nil
}

func validateColumns(cols []Column) error {
	if len(cols) == 0 {
		return &GridError{Axis: "column", Index: -1, Reason: "empty"}
	}
	for i, c := range cols {
		if c.Right <= c.Left {
			return &GridError{Axis: "column", Index: i, Reason: fmt.Sprintf("right %g not greater than left %g", c.Right, c.Left)}
		}
		if i > 0 && !match.Close(cols[i-1].Right, c.Left, contiguityEpsilon) {
			return &GridError{Axis: "column", Index: i, Reason: fmt.Sprintf("left %g does not meet previous right %g", c.Left, cols[i-1].Right)}
		}
	}
	return nil
}

func validateRows(rows []Row) error {
	if len(rows) == 0 {
		return &GridError{Axis: "row", Index: -1, Reason: "empty"}
	}
	for i, r := range rows {
		if r.Top <= r.Bottom {
			return &GridError{Axis: "row", Index: i, Reason: fmt.Sprintf("top %g not greater than bottom %g", r.Top, r.Bottom)}
		}
		if i > 0 && !match.Close(rows[i-1].Bottom, r.Top, contiguityEpsilon) {
			return &GridError{Axis: "row", Index: i, Reason: fmt.Sprintf("top %g does not meet previous bottom %g", r.Top, rows[i-1].Bottom)}
		}
	}
	return nil
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns
func (t *Table) ColCount() int {
	return len(t.Cols)
}

// Cell returns the cell at the given row and column (0-indexed), or nil if
// the position is outside the grid.
func (t *Table) Cell(row, col int) *Cell {
	if row < 0 || row >= len(t.Cells) {
		return nil
	}
	if col < 0 || col >= len(t.Cells[row]) {
		return nil
	}
	return &t.Cells[row][col]
}

// BBox returns the extent of the whole grid.
func (t *Table) BBox() BBox {
	return NewBBoxFromPoints(
		Point{t.Cols[0].Left, t.Rows[len(t.Rows)-1].Bottom},
		Point{t.Cols[len(t.Cols)-1].Right, t.Rows[0].Top},
	)
}

func (t *Table) colLefts() []float64 {
	xs := make([]float64, len(t.Cols))
	for i, c := range t.Cols {
		xs[i] = c.Left
	}
	return xs
}

func (t *Table) rowTops() []float64 {
	ys := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		ys[i] = r.Top
	}
	return ys
}

// SetAllEdges marks every side of every cell as ruled. It is used when the
// table is assumed to be fully ruled and no lines were detected.
func (t *Table) SetAllEdges() {
	for r := range t.Cells {
		for c := range t.Cells[r] {
			cell := &t.Cells[r][c]
			cell.Left, cell.Right, cell.Top, cell.Bottom = true, true, true, true
		}
	}
}

// SetBorder marks the outer perimeter of the grid as ruled.
func (t *Table) SetBorder() {
	lastCol := len(t.Cols) - 1
	lastRow := len(t.Rows) - 1
	for r := range t.Rows {
		t.Cells[r][0].Left = true
		t.Cells[r][lastCol].Right = true
	}
	for c := range t.Cols {
		t.Cells[0][c].Top = true
		t.Cells[lastRow][c].Bottom = true
	}
}

// SetEdges marks cell sides that coincide, within tol, with a detected
// segment.
//
// A vertical segment is anchored by its upper end to a row top; if its lower
// end matches no row top it is taken to run to the bottom of the table. Its
// x is matched against column lefts: column 0 rules the left side of the
// table, an interior column L rules the boundary between L-1 and L, and no
// match at all means the right side of the table. Horizontal segments are
// handled the same way with rows and columns swapped.
//
// Segments whose starting end matches nothing set no flags. They are
// returned as a joined error of *LineError values; all other segments have
// been applied regardless, so callers may treat the error as a report.
func (t *Table) SetEdges(vertical, horizontal []Segment, tol float64) error {
	lefts := t.colLefts()
	tops := t.rowTops()

	var errs []error
	for i, v := range vertical {
		if !t.applyVertical(v, lefts, tops, tol) {
			errs = append(errs, &LineError{Orientation: Vertical, Index: i, Segment: v})
		}
	}
	for i, h := range horizontal {
		if !t.applyHorizontal(h, lefts, tops, tol) {
			errs = append(errs, &LineError{Orientation: Horizontal, Index: i, Segment: h})
		}
	}
	return errors.Join(errs...)
}

func (t *Table) applyVertical(v Segment, lefts, tops []float64, tol float64) bool {
	start, ok := match.First(tops, v.Upper(), tol)
	if !ok {
		return false
	}
	end, ok := match.First(tops, v.Lower(), tol)
	if !ok {
		end = len(t.Rows)
	}

	// with several columns in tolerance the leftmost one is ruled
	cols := match.Indices(lefts, v.X(), tol)
	last := len(t.Cols) - 1
	for r := start; r < end; r++ {
		switch {
		case len(cols) == 0:
			t.Cells[r][last].Right = true
		case cols[0] == 0:
			t.Cells[r][0].Left = true
		default:
			l := cols[0]
			t.Cells[r][l].Left = true
			t.Cells[r][l-1].Right = true
		}
	}
	return true
}

func (t *Table) applyHorizontal(h Segment, lefts, tops []float64, tol float64) bool {
	start, ok := match.First(lefts, h.Start(), tol)
	if !ok {
		return false
	}
	end, ok := match.First(lefts, h.End(), tol)
	if !ok {
		end = len(t.Cols)
	}

	// likewise the topmost row
	rows := match.Indices(tops, h.Y(), tol)
	last := len(t.Rows) - 1
	for c := start; c < end; c++ {
		switch {
		case len(rows) == 0:
			t.Cells[last][c].Bottom = true
		case rows[0] == 0:
			t.Cells[0][c].Top = true
		default:
			l := rows[0]
			t.Cells[l][c].Top = true
			t.Cells[l-1][c].Bottom = true
		}
	}
	return true
}

// SetSpan classifies cells with missing sides as spanning.
//
// A cell missing exactly one side continues into the neighbour on that side:
// a missing left or right gives HSpan, a missing top or bottom gives VSpan. A
// cell ruled only left and right is a vertical span, one ruled only top and
// bottom a horizontal span. Two orthogonal sides, one side or none leave the
// cell unclassified.
func (t *Table) SetSpan() {
	for r := range t.Cells {
		for c := range t.Cells[r] {
			cell := &t.Cells[r][c]
			switch cell.Bound() {
			case 3:
				if !cell.Left || !cell.Right {
					cell.HSpan = true
				} else {
					cell.VSpan = true
				}
			case 2:
				if cell.Left && cell.Right {
					cell.VSpan = true
				} else if cell.Top && cell.Bottom {
					cell.HSpan = true
				}
			}
		}
	}
}

// Data returns the trimmed text of every cell, row by row.
func (t *Table) Data() [][]string {
	d := make([][]string, len(t.Cells))
	for r := range t.Cells {
		d[r] = make([]string, len(t.Cells[r]))
		for c := range t.Cells[r] {
			d[r][c] = t.Cells[r][c].Text()
		}
	}
	return d
}

// ParsingReport summarises extraction quality for one table.
type ParsingReport struct {
	Accuracy   float64 `json:"accuracy" yaml:"accuracy"`
	Whitespace float64 `json:"whitespace" yaml:"whitespace"`
	Order      int     `json:"order,omitempty" yaml:"order,omitempty"`
	Page       int     `json:"page,omitempty" yaml:"page,omitempty"`
}

// ParsingReport returns the stored quality metrics. Nothing is recomputed.
func (t *Table) ParsingReport() ParsingReport {
	return ParsingReport{
		Accuracy:   t.Accuracy,
		Whitespace: t.Whitespace,
		Order:      t.Order,
		Page:       t.Page,
	}
}

// Name returns the page/order label used for export file and sheet names.
func (t *Table) Name() string {
	return fmt.Sprintf("page-%d-table-%d", t.Page, t.Order)
}

func (t *Table) String() string {
	return fmt.Sprintf("<Table shape=(%d, %d)>", t.Shape[0], t.Shape[1])
}
