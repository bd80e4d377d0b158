package export

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/lattice/model"
)

// Options holds configuration options for export
type Options struct {
	// Encoding names the output text encoding for csv, json and html
	// (any WHATWG label, default utf-8). Workbooks are always UTF-8.
	Encoding string

	// PrettyPrint indents JSON output
	PrettyPrint bool
}

// DefaultOptions returns the default export options
func DefaultOptions() Options {
	return Options{Encoding: DefaultEncoding}
}

// Exporter writes materialized tables in one format
type Exporter struct {
	format Format
	opts   Options
}

// NewExporter creates a new exporter with default options
func NewExporter(f Format) *Exporter {
	return &Exporter{format: f, opts: DefaultOptions()}
}

// NewExporterWithOptions creates an exporter with custom options
func NewExporterWithOptions(f Format, opts Options) *Exporter {
	return &Exporter{format: f, opts: opts}
}

// Format returns the exporter's output format.
func (e *Exporter) Format() Format { return e.format }

// Validate reports the error Export would fail with for tables before
// anything is written.
func (e *Exporter) Validate(tables ...*model.Table) error {
	switch {
	case e.format.IsText():
		if err := ValidateEncoding(e.opts.Encoding); err != nil {
			return err
		}
	case e.format == Excel:
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, e.format)
	}

	for i, t := range tables {
		if t == nil || t.Frame == nil {
			return fmt.Errorf("%w: table %d", ErrNoFrame, i)
		}
	}
	return nil
}

// Export writes one table to w
func (e *Exporter) Export(t *model.Table, w io.Writer) (err error) {
	if err := e.Validate(t); err != nil {
		return err
	}

	if e.format == Excel {
		return exportWorkbook([]Sheet{{Name: t.Name(), Frame: t.Frame}}, w)
	}

	ew, err := encodingWriter(w, e.opts.Encoding)
	if err != nil {
		return err
	}
	defer func() {
		// flushes the encoder even when the format writer failed
		if cerr := ew.Close(); err == nil {
			err = cerr
		}
	}()

	switch e.format {
	case CSV:
		return exportCSV(t.Frame, ew)
	case JSON:
		return exportJSON(t.Frame, ew, e.opts.PrettyPrint)
	case HTML:
		return exportHTML(t.Frame, ew)
	}
	return nil
}

// ExportWorkbook writes every table into a single workbook, one sheet per
// table named after Table.Name. Only the Excel format supports this.
func (e *Exporter) ExportWorkbook(tables []*model.Table, w io.Writer) error {
	if e.format != Excel {
		return fmt.Errorf("%w: %v does not hold multiple tables", ErrUnknownFormat, e.format)
	}
	if err := e.Validate(tables...); err != nil {
		return err
	}

	sheets := make([]Sheet, len(tables))
	for i, t := range tables {
		sheets[i] = Sheet{Name: t.Name(), Frame: t.Frame}
	}
	return exportWorkbook(sheets, w)
}

// ExportToFile exports one table to a file, replacing any existing file
func (e *Exporter) ExportToFile(t *model.Table, filename string) error {
	if err := e.Validate(t); err != nil {
		return err
	}
	return e.toFile(filename, func(w io.Writer) error {
		return e.Export(t, w)
	})
}

// ExportWorkbookToFile exports tables to a workbook file
func (e *Exporter) ExportWorkbookToFile(tables []*model.Table, filename string) error {
	if e.format != Excel {
		return fmt.Errorf("%w: %v does not hold multiple tables", ErrUnknownFormat, e.format)
	}
	if err := e.Validate(tables...); err != nil {
		return err
	}
	return e.toFile(filename, func(w io.Writer) error {
		return e.ExportWorkbook(tables, w)
	})
}

func (e *Exporter) toFile(filename string, write func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return &Error{Op: "create", Path: filename, Format: e.format, Err: err}
	}

	if err := write(f); err != nil {
		f.Close()
		return &Error{Op: "write", Path: filename, Format: e.format, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Op: "close", Path: filename, Format: e.format, Err: err}
	}
	return nil
}

// ExportToString exports one table to a string
func (e *Exporter) ExportToString(t *model.Table) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(t, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteTable writes a single table to path in format f.
func WriteTable(path string, t *model.Table, f Format, opts Options) error {
	return NewExporterWithOptions(f, opts).ExportToFile(t, path)
}
