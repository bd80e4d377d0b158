package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/lattice/model"
)

type tableReport struct {
	Name       string              `json:"name" yaml:"name"`
	Shape      [2]int              `json:"shape" yaml:"shape,flow"`
	Parsing    model.ParsingReport `json:"parsing_report" yaml:"parsing_report"`
	Unanchored int                 `json:"unanchored_segments" yaml:"unanchored_segments"`
	Proposed   bool                `json:"proposed_grid" yaml:"proposed_grid"`
	Confidence float64             `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

type jobReport struct {
	Tables   []tableReport        `json:"tables" yaml:"tables"`
	Pages    int                  `json:"pages" yaml:"pages"`
	Geometry model.GeometryCounts `json:"geometry" yaml:"geometry"`
}

func newReportCmd(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "report MANIFEST",
		Short: "Print the parsing report of every table in a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, results, err := a.buildTables(args[0])
			if err != nil {
				return err
			}

			gl := m.Pages()
			rep := jobReport{
				Pages:    gl.Len(),
				Geometry: gl.Totals(),
			}
			for _, r := range results {
				tr := tableReport{
					Name:       r.Table.Name(),
					Shape:      r.Table.Shape,
					Parsing:    r.Table.ParsingReport(),
					Unanchored: len(r.Warnings),
				}
				if r.Proposal != nil {
					tr.Proposed = true
					tr.Confidence = r.Proposal.Confidence
				}
				rep.Tables = append(rep.Tables, tr)
			}
			return writeReport(cmd.OutOrStdout(), outputFormat, rep)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}

func writeReport(w io.Writer, format string, rep jobReport) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	default:
		return fmt.Errorf("invalid output format: %s (must be yaml or json)", format)
	}
}
