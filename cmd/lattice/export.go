package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsawler/lattice"
	"github.com/tsawler/lattice/export"
	"github.com/tsawler/lattice/internal/manifest"
	"github.com/tsawler/lattice/model"
)

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export MANIFEST",
		Short: "Reconstruct the tables in a manifest and export them",
		Long: `Reconstruct every table in the manifest and write them out.

csv, json and html produce one file per table named
{root}-page-{page}-table-{order}{ext} next to the output path; excel
produces a single workbook with one sheet per table. With --compress
the files are bundled into {root}.zip instead.

Settings in the manifest override the config file; flags override both.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd, args[0], output)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output path (default: manifest output, else ./tables{ext})")
	flags.StringP("format", "f", "csv", "export format: csv, json, html or excel")
	flags.Bool("compress", false, "bundle the output into a zip archive")
	flags.String("encoding", "utf-8", "text encoding for csv, json and html")

	_ = a.v.BindPFlag("format", flags.Lookup("format"))
	_ = a.v.BindPFlag("compress", flags.Lookup("compress"))
	_ = a.v.BindPFlag("encoding", flags.Lookup("encoding"))

	return cmd
}

// buildTables loads the manifest and reconstructs its tables.
func (a *app) buildTables(path string) (*manifest.Manifest, []*manifest.Result, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}

	tcfg, err := a.cfg.TablesConfig(a.logger)
	if err != nil {
		return nil, nil, err
	}
	results, err := m.Build(manifest.BuildOptions{
		Tables:   tcfg,
		Proposer: a.cfg.GridProposer(),
	})
	if err != nil {
		return nil, nil, err
	}

	a.logger.Debug("manifest loaded",
		slog.String("manifest", path),
		slog.Int("tables", len(results)),
		slog.String("geometry", m.Pages().String()))
	return m, results, nil
}

func (a *app) runExport(cmd *cobra.Command, path, output string) error {
	m, results, err := a.buildTables(path)
	if err != nil {
		return err
	}

	if output == "" {
		output = m.Output
	}

	// precedence: flag, manifest, output extension, config
	flags := cmd.Flags()
	formatName := a.cfg.Format
	if !flags.Changed("format") {
		if m.Format != "" {
			formatName = m.Format
		} else if f, ok := export.Detect(output); ok {
			formatName = f.String()
		}
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	compress := a.cfg.Compress
	if m.Compress != nil && !flags.Changed("compress") {
		compress = *m.Compress
	}
	encoding := a.cfg.Encoding
	if m.Encoding != "" && !flags.Changed("encoding") {
		encoding = m.Encoding
	}

	if output == "" {
		output = "tables" + format.FileExtension()
	}

	tbls := make([]*model.Table, len(results))
	for i, r := range results {
		tbls[i] = r.Table
	}
	tl := lattice.NewTableList(tbls...).WithLogger(a.logger)

	batch := tl.To(output).Format(format).Encoding(encoding)
	if compress {
		batch = batch.Compress()
	}
	if err := batch.Write(); err != nil {
		return err
	}

	dest := output
	if compress {
		dest = batch.ArchivePath()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d tables as %s to %s\n", tl.Len(), format, dest)
	return nil
}
