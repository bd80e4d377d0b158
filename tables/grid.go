package tables

import (
	"errors"
	"math"
	"sort"

	"github.com/tsawler/lattice/model"
)

// ErrNoGrid is returned when the segments do not describe at least one row
// and one column.
var ErrNoGrid = errors.New("tables: segments do not form a grid")

// GridProposer proposes column and row intervals from detected ruling
// lines. It stands in for an external grid proposal when a caller only has
// segments.
type GridProposer struct {
	// Tolerance for considering lines aligned (in points)
	AlignmentTolerance float64

	// Minimum line length to consider (in points)
	MinLineLength float64
}

// NewGridProposer creates a new grid proposer with default settings
func NewGridProposer() *GridProposer {
	return &GridProposer{
		AlignmentTolerance: 2.0,
		MinLineLength:      10.0,
	}
}

// AlignedLineGroup represents a group of segments aligned on an axis
type AlignedLineGroup struct {
	// Position on the alignment axis (X for vertical lines, Y for horizontal)
	Position float64

	// Segments in this group
	Segments []model.Segment

	// Total coverage (sum of segment lengths)
	TotalLength float64

	// Span of the segments on the perpendicular axis
	MinExtent float64
	MaxExtent float64
}

// Proposal is a grid together with the segments it was built from.
type Proposal struct {
	Cols       []model.Column
	Rows       []model.Row
	Vertical   []model.Segment
	Horizontal []model.Segment

	// Confidence score (0-1), only set by GridProposer
	Confidence float64
}

// BBox returns the extent of the proposed grid.
func (p *Proposal) BBox() model.BBox {
	if len(p.Cols) == 0 || len(p.Rows) == 0 {
		return model.BBox{}
	}
	return model.NewBBoxFromPoints(
		model.Point{X: p.Cols[0].Left, Y: p.Rows[len(p.Rows)-1].Bottom},
		model.Point{X: p.Cols[len(p.Cols)-1].Right, Y: p.Rows[0].Top},
	)
}

// Propose groups aligned segments and turns consecutive group positions
// into column and row intervals. The original segments are carried on the
// proposal so they can be matched back against the grid.
func (gp *GridProposer) Propose(vertical, horizontal []model.Segment) (*Proposal, error) {
	vGroups := gp.groupAlignedLines(gp.filterByLength(vertical), false)
	hGroups := gp.groupAlignedLines(gp.filterByLength(horizontal), true)

	if len(vGroups) < 2 || len(hGroups) < 2 {
		return nil, ErrNoGrid
	}

	// groups come back ascending; rows run top to bottom
	sort.Slice(hGroups, func(i, j int) bool {
		return hGroups[i].Position > hGroups[j].Position
	})

	p := &Proposal{
		Cols:       make([]model.Column, len(vGroups)-1),
		Rows:       make([]model.Row, len(hGroups)-1),
		Vertical:   vertical,
		Horizontal: horizontal,
	}
	for i := range p.Cols {
		p.Cols[i] = model.Column{Left: vGroups[i].Position, Right: vGroups[i+1].Position}
	}
	for i := range p.Rows {
		p.Rows[i] = model.Row{Top: hGroups[i].Position, Bottom: hGroups[i+1].Position}
	}

	p.Confidence = gp.calculateConfidence(p, hGroups, vGroups)
	return p, nil
}

// filterByLength filters segments by minimum length
func (gp *GridProposer) filterByLength(segments []model.Segment) []model.Segment {
	result := make([]model.Segment, 0, len(segments))
	for _, s := range segments {
		if s.Length() >= gp.MinLineLength {
			result = append(result, s)
		}
	}
	return result
}

// groupAlignedLines groups segments that are aligned on the same axis
func (gp *GridProposer) groupAlignedLines(segments []model.Segment, isHorizontal bool) []AlignedLineGroup {
	if len(segments) == 0 {
		return nil
	}

	positions := make([]float64, len(segments))
	for i, s := range segments {
		if isHorizontal {
			positions[i] = (s.Y1 + s.Y2) / 2
		} else {
			positions[i] = (s.X1 + s.X2) / 2
		}
	}

	indices := make([]int, len(segments))
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(i, j int) bool {
		return positions[indices[i]] < positions[indices[j]]
	})

	var groups []AlignedLineGroup
	current := AlignedLineGroup{
		Position: positions[indices[0]],
		Segments: []model.Segment{segments[indices[0]]},
	}

	for _, idx := range indices[1:] {
		pos := positions[idx]

		if pos-current.Position <= gp.AlignmentTolerance {
			current.Segments = append(current.Segments, segments[idx])
			// running average
			n := float64(len(current.Segments))
			current.Position = (current.Position*(n-1) + pos) / n
			continue
		}

		gp.finalizeGroup(&current, isHorizontal)
		groups = append(groups, current)
		current = AlignedLineGroup{
			Position: pos,
			Segments: []model.Segment{segments[idx]},
		}
	}

	gp.finalizeGroup(&current, isHorizontal)
	groups = append(groups, current)

	return groups
}

// finalizeGroup calculates final metrics for an aligned line group
func (gp *GridProposer) finalizeGroup(group *AlignedLineGroup, isHorizontal bool) {
	group.TotalLength = 0
	group.MinExtent = math.MaxFloat64
	group.MaxExtent = -math.MaxFloat64

	for _, s := range group.Segments {
		group.TotalLength += s.Length()

		var lo, hi float64
		if isHorizontal {
			lo, hi = s.Start(), s.End()
		} else {
			lo, hi = s.Lower(), s.Upper()
		}
		group.MinExtent = math.Min(group.MinExtent, lo)
		group.MaxExtent = math.Max(group.MaxExtent, hi)
	}
}

// calculateConfidence scores a proposal by grid regularity and by how much
// of the grid's outline is covered by drawn lines.
func (gp *GridProposer) calculateConfidence(p *Proposal, hGroups, vGroups []AlignedLineGroup) float64 {
	score := 0.0

	cellCount := len(p.Rows) * len(p.Cols)
	if cellCount >= 4 {
		score += 0.2
	}
	if cellCount >= 9 {
		score += 0.1
	}

	score += gp.calculateRegularity(p) * 0.3

	// outline coverage: each outer group should reach across the grid
	bbox := p.BBox()
	covered := 0.0
	for _, g := range []AlignedLineGroup{hGroups[0], hGroups[len(hGroups)-1]} {
		covered += coverage(g, bbox.Left(), bbox.Right())
	}
	for _, g := range []AlignedLineGroup{vGroups[0], vGroups[len(vGroups)-1]} {
		covered += coverage(g, bbox.Bottom(), bbox.Top())
	}
	score += covered / 4 * 0.4

	return math.Min(1.0, score)
}

// coverage returns the fraction of [lo, hi] spanned by a group's extent.
func coverage(g AlignedLineGroup, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	overlap := math.Min(g.MaxExtent, hi) - math.Max(g.MinExtent, lo)
	if overlap <= 0 {
		return 0
	}
	return math.Min(1.0, overlap/(hi-lo))
}

// calculateRegularity measures how regular the grid spacing is
func (gp *GridProposer) calculateRegularity(p *Proposal) float64 {
	rowScore := 1.0
	if len(p.Rows) > 1 {
		heights := make([]float64, len(p.Rows))
		for i, r := range p.Rows {
			heights[i] = r.Top - r.Bottom
		}
		rowScore = math.Max(0, 1-coefficientOfVariation(heights))
	}

	colScore := 1.0
	if len(p.Cols) > 1 {
		widths := make([]float64, len(p.Cols))
		for i, c := range p.Cols {
			widths[i] = c.Right - c.Left
		}
		colScore = math.Max(0, 1-coefficientOfVariation(widths))
	}

	return (rowScore + colScore) / 2
}

// coefficientOfVariation calculates CV (std dev / mean)
func coefficientOfVariation(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	m := 0.0
	for _, v := range values {
		m += v
	}
	m /= float64(len(values))

	if m == 0 {
		return 0
	}

	v := 0.0
	for _, val := range values {
		diff := val - m
		v += diff * diff
	}
	v /= float64(len(values))

	return math.Sqrt(v) / m
}
