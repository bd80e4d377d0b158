// Package manifest reads the job files consumed by the lattice command.
//
// A manifest lists, per table, the proposed grid and/or the detected line
// segments together with the text to place. YAML and JSON are both accepted
// and validated against an embedded JSON schema before decoding:
//
//	format: csv
//	tables:
//	  - page: 1
//	    order: 1
//	    cols: [[0, 10], [10, 20]]
//	    rows: [[20, 10], [10, 0]]
//	    vertical: [[0, 20, 0, 0]]
//	    cells:
//	      - {row: 0, col: 0, text: Name}
//
// Segments and boxes are [x1, y1, x2, y2] in page coordinates with the
// origin at the bottom left.
package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/lattice/model"
)

// ErrInvalid is returned when a manifest does not match the schema.
var ErrInvalid = errors.New("manifest: invalid")

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("failed to load manifest schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("schema.json")
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile manifest schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Manifest describes one export job.
type Manifest struct {
	Output   string      `yaml:"output,omitempty"`
	Format   string      `yaml:"format,omitempty"`
	Compress *bool       `yaml:"compress,omitempty"`
	Encoding string      `yaml:"encoding,omitempty"`
	Tables   []TableSpec `yaml:"tables"`
}

// TableSpec describes one table on a page.
type TableSpec struct {
	Page       int         `yaml:"page"`
	Order      int         `yaml:"order"`
	Flavor     string      `yaml:"flavor,omitempty"`
	Tolerance  *float64    `yaml:"tolerance,omitempty"`
	Cols       [][]float64 `yaml:"cols,omitempty"`
	Rows       [][]float64 `yaml:"rows,omitempty"`
	Vertical   [][]float64 `yaml:"vertical,omitempty"`
	Horizontal [][]float64 `yaml:"horizontal,omitempty"`
	Cells      []CellText  `yaml:"cells,omitempty"`
	Fragments  []Fragment  `yaml:"fragments,omitempty"`
	Images     [][]float64 `yaml:"images,omitempty"`
	Errors     []float64   `yaml:"errors,omitempty"`
}

// CellText is text placed directly into a cell.
type CellText struct {
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
	Text string `yaml:"text"`
}

// Fragment is positioned text placed by the centre of its box.
type Fragment struct {
	Text     string    `yaml:"text"`
	BBox     []float64 `yaml:"bbox"`
	FontSize float64   `yaml:"font_size,omitempty"`
	FontName string    `yaml:"font_name,omitempty"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse validates data, YAML or JSON, and decodes it.
func Parse(data []byte) (*Manifest, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	// round-trip through JSON so the validator sees JSON value types
	doc, err := toJSONValue(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	s, err := schema()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &m, nil
}

func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Columns returns the column intervals.
func (ts *TableSpec) Columns() []model.Column {
	cols := make([]model.Column, len(ts.Cols))
	for i, c := range ts.Cols {
		cols[i] = model.Column{Left: c[0], Right: c[1]}
	}
	return cols
}

// RowIntervals returns the row intervals.
func (ts *TableSpec) RowIntervals() []model.Row {
	rows := make([]model.Row, len(ts.Rows))
	for i, r := range ts.Rows {
		rows[i] = model.Row{Top: r[0], Bottom: r[1]}
	}
	return rows
}

// HasGrid reports whether explicit intervals were given.
func (ts *TableSpec) HasGrid() bool {
	return len(ts.Cols) > 0 && len(ts.Rows) > 0
}

// Segments returns the vertical and horizontal segments.
func (ts *TableSpec) Segments() (vertical, horizontal []model.Segment) {
	return toSegments(ts.Vertical), toSegments(ts.Horizontal)
}

func toSegments(quads [][]float64) []model.Segment {
	segs := make([]model.Segment, len(quads))
	for i, q := range quads {
		segs[i] = model.Segment{X1: q[0], Y1: q[1], X2: q[2], Y2: q[3]}
	}
	return segs
}

func toBBox(q []float64) model.BBox {
	return model.NewBBoxFromPoints(model.Point{X: q[0], Y: q[1]}, model.Point{X: q[2], Y: q[3]})
}

// TextFragments returns the fragments as model values.
func (ts *TableSpec) TextFragments() []model.TextFragment {
	frags := make([]model.TextFragment, len(ts.Fragments))
	for i, f := range ts.Fragments {
		frags[i] = model.TextFragment{
			Text:     f.Text,
			BBox:     toBBox(f.BBox),
			FontSize: f.FontSize,
			FontName: f.FontName,
		}
	}
	return frags
}

// Geometry returns the table's detection artifacts. The table box is taken
// from the grid when one is given.
func (ts *TableSpec) Geometry() *model.Geometry {
	v, h := ts.Segments()
	g := &model.Geometry{
		Text:     ts.TextFragments(),
		Segments: append(v, h...),
	}
	for _, q := range ts.Images {
		g.Images = append(g.Images, toBBox(q))
	}
	if ts.HasGrid() {
		cols, rows := ts.Columns(), ts.RowIntervals()
		g.Tables = append(g.Tables, model.NewBBoxFromPoints(
			model.Point{X: cols[0].Left, Y: rows[len(rows)-1].Bottom},
			model.Point{X: cols[len(cols)-1].Right, Y: rows[0].Top}))
	}
	return g
}

// Pages groups the geometry of every table by page, in page order.
func (m *Manifest) Pages() *model.GeometryList {
	byPage := make(map[int]*model.Geometry)
	var order []int
	for i := range m.Tables {
		ts := &m.Tables[i]
		g, ok := byPage[ts.Page]
		if !ok {
			g = &model.Geometry{}
			byPage[ts.Page] = g
			order = append(order, ts.Page)
		}
		tg := ts.Geometry()
		g.Text = append(g.Text, tg.Text...)
		g.Images = append(g.Images, tg.Images...)
		g.Segments = append(g.Segments, tg.Segments...)
		g.Tables = append(g.Tables, tg.Tables...)
	}

	sort.Ints(order)
	pages := make([]*model.Geometry, len(order))
	for i, p := range order {
		pages[i] = byPage[p]
	}
	return model.NewGeometryList(pages)
}
