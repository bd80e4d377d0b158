package manifest

import (
	"fmt"

	"github.com/tsawler/lattice/model"
	"github.com/tsawler/lattice/tables"
)

// BuildOptions controls how table specs are reconstructed.
type BuildOptions struct {
	// Tables is the base reconstruction config; a table's flavor and
	// tolerance override it.
	Tables tables.Config

	// Proposer proposes the grid for specs without cols and rows.
	// Nil uses tables.NewGridProposer.
	Proposer *tables.GridProposer
}

// Result is one reconstructed table.
type Result struct {
	Table    *model.Table
	Warnings []*model.LineError

	// Proposal is set when the grid was proposed from segments.
	Proposal *tables.Proposal
}

func (ts *TableSpec) config(base tables.Config) (tables.Config, error) {
	cfg := base
	if ts.Flavor != "" {
		flavor, err := tables.ParseFlavor(ts.Flavor)
		if err != nil {
			return cfg, err
		}
		cfg.Flavor = flavor
	}
	if ts.Tolerance != nil {
		cfg.JointTolerance = *ts.Tolerance
	}
	return cfg, nil
}

// Build reconstructs the table, places its text and materializes it.
func (ts *TableSpec) Build(opts BuildOptions) (*Result, error) {
	cfg, err := ts.config(opts.Tables)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	v, h := ts.Segments()
	p := &tables.Proposal{Vertical: v, Horizontal: h}
	if ts.HasGrid() {
		p.Cols, p.Rows = ts.Columns(), ts.RowIntervals()
	} else {
		proposer := opts.Proposer
		if proposer == nil {
			proposer = tables.NewGridProposer()
		}
		if p, err = proposer.Propose(v, h); err != nil {
			return nil, err
		}
		res.Proposal = p
	}

	spanned, warnings, err := tables.Reconstruct(p, cfg)
	if err != nil {
		return nil, err
	}
	res.Warnings = warnings

	for _, c := range ts.Cells {
		if err := spanned.AppendText(c.Row, c.Col, c.Text); err != nil {
			return nil, err
		}
	}
	for _, f := range ts.TextFragments() {
		if _, _, err := spanned.Place(f); err != nil {
			return nil, err
		}
	}
	for _, e := range ts.Errors {
		spanned.AddPlacementError(e)
	}

	res.Table = spanned.Materialize(ts.Page, ts.Order)
	return res, nil
}

// Build reconstructs every table in manifest order.
func (m *Manifest) Build(opts BuildOptions) ([]*Result, error) {
	results := make([]*Result, 0, len(m.Tables))
	for i := range m.Tables {
		ts := &m.Tables[i]
		res, err := ts.Build(opts)
		if err != nil {
			return nil, fmt.Errorf("table %d (page %d, order %d): %w", i, ts.Page, ts.Order, err)
		}
		results = append(results, res)
	}
	return results, nil
}
