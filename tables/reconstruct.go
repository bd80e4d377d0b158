package tables

import (
	"log/slog"

	"github.com/tsawler/lattice/model"
)

// Reconstruct runs boundary assignment and span inference for one proposed
// grid. Segments that could not be anchored are returned as warnings; they
// never fail the reconstruction.
//
// With the Lattice flavor the segments are matched against the grid and the
// outer border is ruled. With the Stream flavor, or when no segments were
// supplied, every cell is treated as fully ruled.
func Reconstruct(p *Proposal, cfg Config) (*Spanned, []*model.LineError, error) {
	log := cfg.logger()

	grid, err := NewGrid(p.Cols, p.Rows)
	if err != nil {
		return nil, nil, err
	}
	rows, cols := grid.Size()

	if cfg.Flavor == Stream || (len(p.Vertical) == 0 && len(p.Horizontal) == 0) {
		log.Debug("ruling all edges",
			slog.String("flavor", cfg.Flavor.String()),
			slog.Int("rows", rows),
			slog.Int("cols", cols))
		return grid.SetAllEdges().SetSpan(), nil, nil
	}

	bounded, err := grid.SetEdges(p.Vertical, p.Horizontal, cfg.JointTolerance)
	warnings := model.UnanchoredLines(err)
	for _, w := range warnings {
		log.Warn("segment not anchored to grid",
			slog.String("orientation", w.Orientation.String()),
			slog.Int("index", w.Index),
			slog.String("segment", w.Segment.String()))
	}

	spanned := bounded.SetBorder().SetSpan()
	log.Debug("table reconstructed",
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Int("vertical", len(p.Vertical)),
		slog.Int("horizontal", len(p.Horizontal)),
		slog.Int("unanchored", len(warnings)))

	return spanned, warnings, nil
}
