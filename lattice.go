// Package lattice reconstructs ruled tables from a proposed grid and the
// line segments detected on a page, and exports the results.
//
// Basic usage:
//
//	spanned, warnings, err := tables.Reconstruct(proposal, tables.DefaultConfig())
//	if err != nil {
//	    // malformed grid
//	}
//	if len(warnings) > 0 {
//	    log.Println("unanchored segments:", len(warnings))
//	}
//	// place text with spanned.AppendText, then
//	tl := lattice.NewTableList(spanned.Materialize(1, 1))
//	err = tl.Export("out/report.csv", export.CSV, false)
//
// With options:
//
//	err := tl.To("out/report.json").
//	    Format(export.JSON).
//	    Encoding("windows-1252").
//	    Compress().
//	    Write()
//
// The model, tables and export packages are available for lower-level use.
package lattice

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/lattice/model"
)

// TableList is an ordered collection of materialized tables.
type TableList struct {
	tables []*model.Table
	logger *slog.Logger
}

// NewTableList returns a list holding tables in the given order.
func NewTableList(tables ...*model.Table) *TableList {
	tl := &TableList{
		tables: make([]*model.Table, len(tables)),
		logger: slog.New(slog.DiscardHandler),
	}
	copy(tl.tables, tables)
	return tl
}

// WithLogger returns a copy of the list that logs export progress to logger.
// A nil logger discards output.
func (tl *TableList) WithLogger(logger *slog.Logger) *TableList {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TableList{tables: tl.Tables(), logger: logger}
}

// Append adds tables to the end of the list.
func (tl *TableList) Append(tables ...*model.Table) {
	tl.tables = append(tl.tables, tables...)
}

// Len returns the number of tables.
func (tl *TableList) Len() int { return len(tl.tables) }

// N returns the number of tables. It is the same as Len.
func (tl *TableList) N() int { return len(tl.tables) }

// At returns the table at index i.
func (tl *TableList) At(i int) *model.Table { return tl.tables[i] }

// Tables returns a copy of the underlying slice.
func (tl *TableList) Tables() []*model.Table {
	out := make([]*model.Table, len(tl.tables))
	copy(out, tl.tables)
	return out
}

// Reports returns the parsing report of every table, in order.
func (tl *TableList) Reports() []model.ParsingReport {
	reports := make([]model.ParsingReport, 0, len(tl.tables))
	for _, t := range tl.tables {
		if t != nil {
			reports = append(reports, t.ParsingReport())
		}
	}
	return reports
}

func (tl *TableList) String() string {
	return fmt.Sprintf("<TableList tables=%d>", len(tl.tables))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	grid := lattice.Must(tables.NewGrid(cols, rows))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
