package tables

import (
	"errors"
	"testing"

	"github.com/tsawler/lattice/model"
)

func TestNewGridProposer(t *testing.T) {
	gp := NewGridProposer()
	if gp == nil {
		t.Fatal("NewGridProposer returned nil")
	}
	if gp.AlignmentTolerance != 2.0 {
		t.Errorf("Expected AlignmentTolerance 2.0, got %f", gp.AlignmentTolerance)
	}
	if gp.MinLineLength != 10.0 {
		t.Errorf("Expected MinLineLength 10.0, got %f", gp.MinLineLength)
	}
}

// Helper to create horizontal segments
func makeHLine(y, x1, x2 float64) model.Segment {
	return model.NewHorizontalSegment(y, x1, x2)
}

// Helper to create vertical segments
func makeVLine(x, y1, y2 float64) model.Segment {
	return model.NewVerticalSegment(x, y1, y2)
}

func TestGridProposer_SimpleGrid(t *testing.T) {
	gp := NewGridProposer()

	// 2x2 grid: 3 horizontal lines, 3 vertical lines
	horizontals := []model.Segment{
		makeHLine(100, 0, 200), // Top
		makeHLine(50, 0, 200),  // Middle
		makeHLine(0, 0, 200),   // Bottom
	}
	verticals := []model.Segment{
		makeVLine(0, 0, 100),   // Left
		makeVLine(100, 0, 100), // Middle
		makeVLine(200, 0, 100), // Right
	}

	p, err := gp.Propose(verticals, horizontals)
	if err != nil {
		t.Fatalf("Propose() failed: %v", err)
	}

	wantCols := []model.Column{{Left: 0, Right: 100}, {Left: 100, Right: 200}}
	wantRows := []model.Row{{Top: 100, Bottom: 50}, {Top: 50, Bottom: 0}}
	if len(p.Cols) != 2 || p.Cols[0] != wantCols[0] || p.Cols[1] != wantCols[1] {
		t.Errorf("Cols = %v, want %v", p.Cols, wantCols)
	}
	if len(p.Rows) != 2 || p.Rows[0] != wantRows[0] || p.Rows[1] != wantRows[1] {
		t.Errorf("Rows = %v, want %v", p.Rows, wantRows)
	}
	if len(p.Vertical) != 3 || len(p.Horizontal) != 3 {
		t.Error("Proposal should carry the input segments")
	}
}

func TestGridProposer_LargerGrid(t *testing.T) {
	gp := NewGridProposer()

	// 3x4 grid: 4 horizontal lines, 5 vertical lines
	horizontals := []model.Segment{
		makeHLine(300, 0, 400),
		makeHLine(200, 0, 400),
		makeHLine(100, 0, 400),
		makeHLine(0, 0, 400),
	}
	verticals := []model.Segment{
		makeVLine(0, 0, 300),
		makeVLine(100, 0, 300),
		makeVLine(200, 0, 300),
		makeVLine(300, 0, 300),
		makeVLine(400, 0, 300),
	}

	p, err := gp.Propose(verticals, horizontals)
	if err != nil {
		t.Fatalf("Propose() failed: %v", err)
	}
	if len(p.Rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(p.Rows))
	}
	if len(p.Cols) != 4 {
		t.Errorf("Expected 4 cols, got %d", len(p.Cols))
	}
	if bbox := p.BBox(); bbox != (model.BBox{X: 0, Y: 0, Width: 400, Height: 300}) {
		t.Errorf("BBox() = %+v", bbox)
	}
}

func TestGridProposer_AlignedLinesGrouping(t *testing.T) {
	gp := NewGridProposer()

	// split top rule, second half 1pt off
	horizontals := []model.Segment{
		makeHLine(100, 0, 100),
		makeHLine(101, 100, 200),
		makeHLine(50, 0, 200),
		makeHLine(0, 0, 200),
	}
	verticals := []model.Segment{
		makeVLine(0, 0, 100),
		makeVLine(100, 0, 100),
		makeVLine(200, 0, 100),
	}

	p, err := gp.Propose(verticals, horizontals)
	if err != nil {
		t.Fatalf("Propose() failed: %v", err)
	}
	if len(p.Rows) != 2 {
		t.Errorf("Expected 2 rows (misaligned lines should group), got %d", len(p.Rows))
	}
	if p.Rows[0].Top != 100.5 {
		t.Errorf("Expected averaged top 100.5, got %f", p.Rows[0].Top)
	}
}

func TestGridProposer_InsufficientLines(t *testing.T) {
	gp := NewGridProposer()

	horizontals := []model.Segment{
		makeHLine(100, 0, 200),
	}
	verticals := []model.Segment{
		makeVLine(0, 0, 100),
		makeVLine(100, 0, 100),
	}

	_, err := gp.Propose(verticals, horizontals)
	if !errors.Is(err, ErrNoGrid) {
		t.Errorf("Expected ErrNoGrid with insufficient lines, got %v", err)
	}
}

func TestGridProposer_ShortLinesFiltered(t *testing.T) {
	gp := NewGridProposer()
	gp.MinLineLength = 50.0

	horizontals := []model.Segment{
		makeHLine(100, 0, 200),
		makeHLine(50, 0, 200),
		makeHLine(0, 0, 200),
		makeHLine(75, 100, 110), // Too short
	}
	verticals := []model.Segment{
		makeVLine(0, 0, 100),
		makeVLine(100, 0, 100),
		makeVLine(200, 0, 100),
		makeVLine(150, 50, 60), // Too short
	}

	p, err := gp.Propose(verticals, horizontals)
	if err != nil {
		t.Fatalf("Propose() failed: %v", err)
	}
	if len(p.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(p.Rows))
	}
	if len(p.Cols) != 2 {
		t.Errorf("Expected 2 cols, got %d", len(p.Cols))
	}
}

func TestGridProposer_Confidence(t *testing.T) {
	gp := NewGridProposer()

	horizontals := []model.Segment{
		makeHLine(100, 0, 200),
		makeHLine(50, 0, 200),
		makeHLine(0, 0, 200),
	}
	verticals := []model.Segment{
		makeVLine(0, 0, 100),
		makeVLine(100, 0, 100),
		makeVLine(200, 0, 100),
	}

	p, err := gp.Propose(verticals, horizontals)
	if err != nil {
		t.Fatal(err)
	}
	// regular 2x2, full outline: 0.2 + 0.3 + 0.4
	if p.Confidence < 0.89 || p.Confidence > 0.91 {
		t.Errorf("Expected confidence 0.9 for regular ruled grid, got %f", p.Confidence)
	}

	// outline only half drawn
	horizontals[0] = makeHLine(100, 0, 100)
	p, err = gp.Propose(verticals, horizontals)
	if err != nil {
		t.Fatal(err)
	}
	if p.Confidence >= 0.9 {
		t.Errorf("Expected lower confidence for partial outline, got %f", p.Confidence)
	}
}

func TestProposalFeedsGrid(t *testing.T) {
	gp := NewGridProposer()

	horizontals := []model.Segment{
		makeHLine(100, 0, 200),
		makeHLine(50, 0, 200),
		makeHLine(0, 0, 200),
	}
	verticals := []model.Segment{
		makeVLine(0, 0, 100),
		makeVLine(100, 0, 100),
		makeVLine(200, 0, 100),
	}

	p, err := gp.Propose(verticals, horizontals)
	if err != nil {
		t.Fatal(err)
	}

	spanned, warnings, err := Reconstruct(p, DefaultConfig())
	if err != nil {
		t.Fatalf("Reconstruct() failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected every segment anchored, got %d warnings", len(warnings))
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			cell, _ := spanned.Cell(r, c)
			if cell.Bound() != 4 {
				t.Errorf("cell(%d,%d) bound = %d, want 4", r, c, cell.Bound())
			}
		}
	}
}

func TestCoefficientOfVariation(t *testing.T) {
	if cv := coefficientOfVariation([]float64{5}); cv != 0 {
		t.Errorf("single value CV = %f, want 0", cv)
	}
	if cv := coefficientOfVariation([]float64{10, 10, 10}); cv != 0 {
		t.Errorf("constant CV = %f, want 0", cv)
	}
	if cv := coefficientOfVariation([]float64{0, 0}); cv != 0 {
		t.Errorf("zero mean CV = %f, want 0", cv)
	}
	if cv := coefficientOfVariation([]float64{5, 15}); cv != 0.5 {
		t.Errorf("CV = %f, want 0.5", cv)
	}
}
