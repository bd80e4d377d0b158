package tables

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/lattice/model"
)

var (
	testCols = []model.Column{{Left: 0, Right: 10}, {Left: 10, Right: 20}}
	testRows = []model.Row{{Top: 20, Bottom: 10}, {Top: 10, Bottom: 0}}
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(testCols, testRows)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	if r, c := g.Size(); r != 2 || c != 2 {
		t.Errorf("Size() = %d, %d; want 2, 2", r, c)
	}

	_, err = NewGrid(nil, testRows)
	if !errors.Is(err, model.ErrMalformedGrid) {
		t.Errorf("NewGrid(nil cols) error = %v, want ErrMalformedGrid", err)
	}
}

func TestPhases_Lattice(t *testing.T) {
	g, err := NewGrid(testCols, testRows)
	if err != nil {
		t.Fatal(err)
	}

	// interior vertical only; the border supplies the rest
	bounded, err := g.SetEdges([]model.Segment{model.NewVerticalSegment(10, 20, 0)}, nil, 2)
	if err != nil {
		t.Fatalf("SetEdges() error = %v", err)
	}
	spanned := bounded.SetBorder().SetSpan()

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			cell, ok := spanned.Cell(r, c)
			if !ok {
				t.Fatalf("Cell(%d,%d) not found", r, c)
			}
			// left, right and one of top/bottom: a vertical merge
			if cell.Bound() != 3 || !cell.VSpan || cell.HSpan {
				t.Errorf("cell(%d,%d) bound=%d hspan=%v vspan=%v", r, c, cell.Bound(), cell.HSpan, cell.VSpan)
			}
		}
	}
}

func TestPhases_BoundedCellIsCopy(t *testing.T) {
	g, err := NewGrid(testCols, testRows)
	if err != nil {
		t.Fatal(err)
	}
	b := g.SetBorder()

	cell, ok := b.Cell(0, 0)
	if !ok || !cell.Left || !cell.Top || cell.Right || cell.Bottom {
		t.Fatalf("Cell(0,0) = %+v", cell)
	}
	cell.Right = true

	again, _ := b.Cell(0, 0)
	if again.Right {
		t.Error("Cell() should return a copy")
	}
	if _, ok := b.Cell(5, 5); ok {
		t.Error("Cell() out of range should report false")
	}
}

func TestSpanned_AppendTextAndMaterialize(t *testing.T) {
	g, err := NewGrid(testCols, testRows)
	if err != nil {
		t.Fatal(err)
	}
	s := g.SetAllEdges().SetSpan()

	if err := s.AppendText(0, 0, "Na"); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendText(0, 0, "me "); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendText(1, 1, " 42"); err != nil {
		t.Fatal(err)
	}
	s.AddPlacementError(0.1)
	s.AddPlacementError(0.3)

	err = s.AppendText(2, 0, "x")
	if !errors.Is(err, model.ErrCellOutOfRange) {
		t.Errorf("AppendText out of range error = %v", err)
	}

	tbl := s.Materialize(3, 1)

	if tbl.Page != 3 || tbl.Order != 1 {
		t.Errorf("page/order = %d/%d", tbl.Page, tbl.Order)
	}
	wantData := [][]string{{"Name", ""}, {"", "42"}}
	if !reflect.DeepEqual(tbl.Frame.Records, wantData) {
		t.Errorf("Frame.Records = %q, want %q", tbl.Frame.Records, wantData)
	}
	if tbl.Shape != [2]int{2, 2} {
		t.Errorf("Shape = %v", tbl.Shape)
	}
	if tbl.Whitespace != 50 {
		t.Errorf("Whitespace = %f, want 50", tbl.Whitespace)
	}
	if tbl.Accuracy < 79.999 || tbl.Accuracy > 80.001 {
		t.Errorf("Accuracy = %f, want 80", tbl.Accuracy)
	}
	if tbl.String() != "<Table shape=(2, 2)>" {
		t.Errorf("String() = %q", tbl.String())
	}
}

func TestReconstruct_Scenario(t *testing.T) {
	p := &Proposal{
		Cols:     testCols,
		Rows:     testRows,
		Vertical: []model.Segment{{X1: 0, Y1: 20, X2: 0, Y2: 0}},
	}

	spanned, warnings, err := Reconstruct(p, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}

	// border is ruled by the lattice flavor as well
	for r := 0; r < 2; r++ {
		cell, _ := spanned.Cell(r, 0)
		if !cell.Left {
			t.Errorf("cell(%d,0).Left not set", r)
		}
	}
}

func TestReconstruct_StreamAndEmpty(t *testing.T) {
	tests := []struct {
		name string
		p    *Proposal
		cfg  Config
	}{
		{
			name: "stream flavor ignores segments",
			p:    &Proposal{Cols: testCols, Rows: testRows, Vertical: []model.Segment{model.NewVerticalSegment(99, 99, 0)}},
			cfg:  Config{Flavor: Stream, JointTolerance: 2},
		},
		{
			name: "no segments",
			p:    &Proposal{Cols: testCols, Rows: testRows},
			cfg:  DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, warnings, err := Reconstruct(tt.p, tt.cfg)
			if err != nil {
				t.Fatal(err)
			}
			if warnings != nil {
				t.Errorf("warnings = %v", warnings)
			}
			for r := 0; r < 2; r++ {
				for c := 0; c < 2; c++ {
					cell, _ := s.Cell(r, c)
					if cell.Bound() != 4 || cell.HSpan || cell.VSpan {
						t.Errorf("cell(%d,%d) = %+v", r, c, cell)
					}
				}
			}
		})
	}
}

func TestReconstruct_Warnings(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	p := &Proposal{
		Cols:       testCols,
		Rows:       testRows,
		Horizontal: []model.Segment{model.NewHorizontalSegment(10, 50, 60)},
	}

	_, warnings, err := Reconstruct(p, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Orientation != model.Horizontal {
		t.Fatalf("warnings = %v", warnings)
	}
	if !strings.Contains(buf.String(), "segment not anchored to grid") {
		t.Errorf("expected warning in log, got %q", buf.String())
	}
}

func TestReconstruct_Malformed(t *testing.T) {
	p := &Proposal{
		Cols: []model.Column{{Left: 0, Right: 10}, {Left: 11, Right: 20}},
		Rows: testRows,
	}
	_, _, err := Reconstruct(p, DefaultConfig())
	if !errors.Is(err, model.ErrMalformedGrid) {
		t.Errorf("error = %v, want ErrMalformedGrid", err)
	}
}
