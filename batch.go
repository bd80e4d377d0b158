package lattice

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tsawler/lattice/export"
)

// Batch configures one export of a TableList. Options return a modified
// copy, so a Batch can be reused as a template.
type Batch struct {
	list    *TableList
	path    string
	options exportOptions
}

// To starts a fluent export to path. For csv, json and html path supplies
// the directory, root name and extension of the per-table files; for excel
// it is the workbook itself.
//
// Example:
//
//	err := tl.To("out/tables.csv").Compress().Write()
func (tl *TableList) To(path string) *Batch {
	return &Batch{list: tl, path: path, options: defaultOptions()}
}

// Export writes every table to path in format f, optionally bundling the
// output into "{root}.zip" next to path.
func (tl *TableList) Export(path string, f export.Format, compress bool) error {
	b := tl.To(path).Format(f)
	if compress {
		b = b.Compress()
	}
	return b.Write()
}

func (b *Batch) clone() *Batch {
	c := *b
	return &c
}

// Format sets the output format (default csv).
func (b *Batch) Format(f export.Format) *Batch {
	c := b.clone()
	c.options.format = f
	return c
}

// Compress bundles the output into a zip archive instead of leaving the
// files next to path.
func (b *Batch) Compress() *Batch {
	c := b.clone()
	c.options.compress = true
	return c
}

// Encoding sets the text encoding for csv, json and html output.
func (b *Batch) Encoding(name string) *Batch {
	c := b.clone()
	c.options.encoding = name
	return c
}

// PrettyPrint indents json output.
func (b *Batch) PrettyPrint() *Batch {
	c := b.clone()
	c.options.pretty = true
	return c
}

// FileName returns the file a single table of the list is written to for
// the text formats: "{root}-page-{page}-table-{order}{ext}".
func (b *Batch) FileName(i int) string {
	base := filepath.Base(b.path)
	ext := filepath.Ext(base)
	root := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s-%s%s", root, b.list.tables[i].Name(), ext)
}

// ArchivePath returns where a compressed export is written.
func (b *Batch) ArchivePath() string {
	base := filepath.Base(b.path)
	root := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(b.path), root+".zip")
}

// checkNames rejects lists in which two tables share a (page, order) pair.
func (b *Batch) checkNames() error {
	seen := make(map[[2]int]int, len(b.list.tables))
	for i, t := range b.list.tables {
		if t == nil {
			continue
		}
		key := [2]int{t.Page, t.Order}
		if first, ok := seen[key]; ok {
			return &CollisionError{Page: t.Page, Order: t.Order, First: first, Second: i}
		}
		seen[key] = i
	}
	return nil
}

// Write runs the export. Inputs are validated before any file is created.
func (b *Batch) Write() error {
	opts := b.options
	exp := export.NewExporterWithOptions(opts.format, opts.exporterOptions())

	if err := b.checkNames(); err != nil {
		return err
	}
	if err := exp.Validate(b.list.tables...); err != nil {
		return err
	}

	id := uuid.New()
	log := b.list.logger.With(
		slog.String("export_id", id.String()),
		slog.String("format", opts.format.String()))

	outDir := filepath.Dir(b.path)
	if opts.compress {
		scratch, err := os.MkdirTemp("", "lattice-"+id.String()+"-")
		if err != nil {
			return &export.Error{Op: "mkdir", Path: os.TempDir(), Format: opts.format, Err: err}
		}
		defer func() {
			if err := os.RemoveAll(scratch); err != nil {
				log.Warn("removing scratch directory", slog.String("dir", scratch), slog.Any("error", err))
			}
		}()
		outDir = scratch
	}

	var files []string
	if opts.format == export.Excel {
		name := filepath.Join(outDir, filepath.Base(b.path))
		if err := exp.ExportWorkbookToFile(b.list.tables, name); err != nil {
			return err
		}
		files = append(files, name)
	} else {
		for i, t := range b.list.tables {
			name := filepath.Join(outDir, b.FileName(i))
			if err := exp.ExportToFile(t, name); err != nil {
				return err
			}
			log.Debug("table written", slog.String("file", name), slog.Int("page", t.Page), slog.Int("order", t.Order))
			files = append(files, name)
		}
	}

	if !opts.compress {
		log.Info("export complete", slog.Int("tables", b.list.Len()), slog.Int("files", len(files)))
		return nil
	}

	archive := b.ArchivePath()
	if err := export.Compress(archive, files); err != nil {
		return err
	}
	log.Info("export complete",
		slog.Int("tables", b.list.Len()),
		slog.String("archive", archive),
		slog.Int("entries", len(files)))
	return nil
}
