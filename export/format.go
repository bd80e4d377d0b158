package export

import (
	"fmt"
	"strings"
)

// Format defines the available export formats
type Format int

const (
	// CSV exports every field quoted with a header row of column labels
	CSV Format = iota
	// JSON exports an array of records keyed by column label
	JSON
	// HTML exports a table with a header row and an index column
	HTML
	// Excel exports an xlsx workbook with one sheet per table
	Excel
)

// String returns a human-readable representation of the export format
func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case JSON:
		return "json"
	case HTML:
		return "html"
	case Excel:
		return "excel"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case CSV:
		return ".csv"
	case JSON:
		return ".json"
	case HTML:
		return ".html"
	case Excel:
		return ".xlsx"
	default:
		return ".txt"
	}
}

// IsText reports whether the format is written as encoded text.
func (f Format) IsText() bool {
	return f == CSV || f == JSON || f == HTML
}

// ParseFormat maps a format name to a Format. "xlsx" is accepted as an
// alias for excel.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "html":
		return HTML, nil
	case "excel", "xlsx":
		return Excel, nil
	default:
		return CSV, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
