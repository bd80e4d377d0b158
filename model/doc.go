// Package model provides the geometric table model used to reconstruct
// ruled tables.
//
// All coordinates are in PDF space: the origin is the bottom-left corner of
// the page and y grows upwards.
//
// # Tables and Cells
//
// A [Table] is a fixed grid of [Cell] values built from a list of column
// intervals (left to right) and row intervals (top to bottom):
//
//	t, err := model.NewTable(
//	    []model.Column{{Left: 0, Right: 10}, {Left: 10, Right: 20}},
//	    []model.Row{{Top: 20, Bottom: 10}, {Top: 10, Bottom: 0}},
//	)
//
// Each cell carries four boundary flags (Left, Right, Top, Bottom) and two
// span flags (HSpan, VSpan). Boundary flags are set by:
//
//   - [Table.SetAllEdges] - every side of every cell
//   - [Table.SetBorder] - the outer perimeter only
//   - [Table.SetEdges] - sides matched by detected [Segment] values
//
// [Table.SetSpan] then derives span flags from the missing sides.
//
// # Materialized Output
//
// After text has been placed in the cells, [Table.Data] returns the trimmed
// text grid and [NewFrame] turns it into a [Frame] for export.
//
// # Diagnostics
//
// [Geometry] and [GeometryList] hold per-page detection artifacts (text,
// images, segments, table areas) and only describe their counts.
package model
