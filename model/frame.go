package model

import "strconv"

// Frame is the materialized tabular form of a table: positional column
// labels and one record per grid row.
type Frame struct {
	Columns []string
	Records [][]string
}

// NewFrame builds a frame from row-major cell text. Columns are labelled
// "0", "1", ... after the widest row; shorter rows are padded with empty
// strings.
func NewFrame(data [][]string) *Frame {
	width := 0
	for _, row := range data {
		if len(row) > width {
			width = len(row)
		}
	}

	f := &Frame{
		Columns: make([]string, width),
		Records: make([][]string, len(data)),
	}
	for i := range f.Columns {
		f.Columns[i] = strconv.Itoa(i)
	}
	for i, row := range data {
		rec := make([]string, width)
		copy(rec, row)
		f.Records[i] = rec
	}
	return f
}

// Shape returns the number of records and columns.
func (f *Frame) Shape() [2]int {
	return [2]int{len(f.Records), len(f.Columns)}
}
