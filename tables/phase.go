package tables

import (
	"fmt"

	"github.com/tsawler/lattice/model"
)

// The phase types below hold a single *model.Table and hand it on as the
// table moves through reconstruction. Each transition consumes its
// receiver: once a Grid has produced a Bounded, the Grid must not be used
// again.

// Grid is a freshly constructed table with no boundaries assigned.
type Grid struct {
	table *model.Table
}

// NewGrid builds a grid from column and row intervals.
func NewGrid(cols []model.Column, rows []model.Row) (*Grid, error) {
	t, err := model.NewTable(cols, rows)
	if err != nil {
		return nil, err
	}
	return &Grid{table: t}, nil
}

// Size returns the number of rows and columns.
func (g *Grid) Size() (rows, cols int) {
	return g.table.RowCount(), g.table.ColCount()
}

// SetAllEdges rules every side of every cell.
func (g *Grid) SetAllEdges() *Bounded {
	g.table.SetAllEdges()
	return &Bounded{table: g.table}
}

// SetEdges rules cell sides matched by the segments. See
// [model.Table.SetEdges] for the matching rules and the meaning of the
// returned error; the returned Bounded is always usable.
func (g *Grid) SetEdges(vertical, horizontal []model.Segment, tol float64) (*Bounded, error) {
	err := g.table.SetEdges(vertical, horizontal, tol)
	return &Bounded{table: g.table}, err
}

// SetBorder rules only the outer perimeter.
func (g *Grid) SetBorder() *Bounded {
	g.table.SetBorder()
	return &Bounded{table: g.table}
}

// Bounded is a table with at least one boundary assignment applied.
// Further assignments only add flags.
type Bounded struct {
	table *model.Table
}

// SetEdges applies additional segments.
func (b *Bounded) SetEdges(vertical, horizontal []model.Segment, tol float64) (*Bounded, error) {
	err := b.table.SetEdges(vertical, horizontal, tol)
	return b, err
}

// SetBorder rules the outer perimeter.
func (b *Bounded) SetBorder() *Bounded {
	b.table.SetBorder()
	return b
}

// Cell returns a copy of the cell at row, col.
func (b *Bounded) Cell(row, col int) (model.Cell, bool) {
	return cellCopy(b.table, row, col)
}

// SetSpan infers span flags and moves the table to text placement.
func (b *Bounded) SetSpan() *Spanned {
	b.table.SetSpan()
	return &Spanned{table: b.table}
}

// Spanned is a table with boundary and span flags final. Text is placed
// into its cells before it is materialized.
type Spanned struct {
	table  *model.Table
	errors []float64
}

// Size returns the number of rows and columns.
func (s *Spanned) Size() (rows, cols int) {
	return s.table.RowCount(), s.table.ColCount()
}

// Cell returns a copy of the cell at row, col. Placement code uses it to
// read cell geometry and span flags.
func (s *Spanned) Cell(row, col int) (model.Cell, bool) {
	return cellCopy(s.table, row, col)
}

// AppendText appends text to the cell at row, col.
func (s *Spanned) AppendText(row, col int, text string) error {
	c := s.table.Cell(row, col)
	if c == nil {
		return fmt.Errorf("%w: (%d, %d) in %dx%d grid",
			model.ErrCellOutOfRange, row, col, s.table.RowCount(), s.table.ColCount())
	}
	c.AppendText(text)
	return nil
}

// AddPlacementError records the fraction (0-1) of a text fragment that fell
// outside the cell it was assigned to.
func (s *Spanned) AddPlacementError(e float64) {
	s.errors = append(s.errors, e)
}

// Materialize freezes the cell text into the table's Frame and fills in
// the quality metrics and page position. The Spanned must not be used
// afterwards.
func (s *Spanned) Materialize(page, order int) *model.Table {
	t := s.table
	data := t.Data()

	t.Frame = model.NewFrame(data)
	t.Shape = t.Frame.Shape()
	t.Whitespace = ComputeWhitespace(data)
	t.Accuracy = ComputeAccuracy(s.errors)
	t.Page = page
	t.Order = order
	return t
}

func cellCopy(t *model.Table, row, col int) (model.Cell, bool) {
	c := t.Cell(row, col)
	if c == nil {
		return model.Cell{}, false
	}
	return c.Clone(), true
}
