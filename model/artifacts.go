package model

import "fmt"

// TextFragment represents a positioned piece of text
type TextFragment struct {
	Text     string
	BBox     BBox
	FontSize float64
	FontName string
}

// Geometry collects the detection artifacts of a single page. It is kept
// for diagnostics only.
type Geometry struct {
	Text     []TextFragment
	Images   []BBox
	Segments []Segment
	Tables   []BBox
}

// GeometryCounts holds the number of artifacts of each kind.
type GeometryCounts struct {
	Text     int `json:"text" yaml:"text"`
	Images   int `json:"images" yaml:"images"`
	Segments int `json:"segments" yaml:"segments"`
	Tables   int `json:"tables" yaml:"tables"`
}

// Counts returns the number of artifacts of each kind on the page.
func (g *Geometry) Counts() GeometryCounts {
	return GeometryCounts{
		Text:     len(g.Text),
		Images:   len(g.Images),
		Segments: len(g.Segments),
		Tables:   len(g.Tables),
	}
}

func (g *Geometry) String() string {
	return describe("Geometry", g.Counts())
}

// GeometryList gathers the artifacts of several pages, one entry per page
// for each kind.
type GeometryList struct {
	Text     [][]TextFragment
	Images   [][]BBox
	Segments [][]Segment
	Tables   [][]BBox
}

// NewGeometryList collects the per-page geometries in order.
func NewGeometryList(pages []*Geometry) *GeometryList {
	gl := &GeometryList{
		Text:     make([][]TextFragment, 0, len(pages)),
		Images:   make([][]BBox, 0, len(pages)),
		Segments: make([][]Segment, 0, len(pages)),
		Tables:   make([][]BBox, 0, len(pages)),
	}
	for _, g := range pages {
		gl.Text = append(gl.Text, g.Text)
		gl.Images = append(gl.Images, g.Images)
		gl.Segments = append(gl.Segments, g.Segments)
		gl.Tables = append(gl.Tables, g.Tables)
	}
	return gl
}

// Len returns the number of pages in the list.
func (gl *GeometryList) Len() int {
	return len(gl.Text)
}

// Counts returns the number of per-page entries of each kind.
func (gl *GeometryList) Counts() GeometryCounts {
	return GeometryCounts{
		Text:     len(gl.Text),
		Images:   len(gl.Images),
		Segments: len(gl.Segments),
		Tables:   len(gl.Tables),
	}
}

// Totals returns the number of artifacts of each kind across all pages.
func (gl *GeometryList) Totals() GeometryCounts {
	var c GeometryCounts
	for _, p := range gl.Text {
		c.Text += len(p)
	}
	for _, p := range gl.Images {
		c.Images += len(p)
	}
	for _, p := range gl.Segments {
		c.Segments += len(p)
	}
	for _, p := range gl.Tables {
		c.Tables += len(p)
	}
	return c
}

func (gl *GeometryList) String() string {
	return describe("GeometryList", gl.Counts())
}

func describe(kind string, c GeometryCounts) string {
	return fmt.Sprintf("<%s text=%d images=%d segments=%d tables=%d>",
		kind, c.Text, c.Images, c.Segments, c.Tables)
}
