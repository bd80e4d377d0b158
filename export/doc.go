// Package export writes materialized tables to csv, json, html and xlsx.
//
// The formats follow the usual data-frame conventions: csv carries a header
// row of column labels with every field quoted, json is an array of records
// keyed by label, html is a table with an index column, and xlsx holds one
// sheet per table named "page-{page}-table-{order}".
//
//	err := export.WriteTable("out/page-1.csv", table, export.CSV, export.DefaultOptions())
//
// Text formats can be transcoded with Options.Encoding. Failures touching the
// filesystem are reported as *Error and match ErrIO.
package export
