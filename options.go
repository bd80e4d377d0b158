package lattice

import "github.com/tsawler/lattice/export"

// exportOptions holds configuration for a batch export.
type exportOptions struct {
	format   export.Format
	compress bool

	// Text encoding options, ignored for workbooks
	encoding string
	pretty   bool
}

// defaultOptions returns the default export options.
func defaultOptions() exportOptions {
	return exportOptions{
		format:   export.CSV,
		compress: false,
		encoding: export.DefaultEncoding,
		pretty:   false,
	}
}

// exporterOptions converts to the export package's options.
func (o exportOptions) exporterOptions() export.Options {
	return export.Options{
		Encoding:    o.encoding,
		PrettyPrint: o.pretty,
	}
}
