// Package tables reconstructs the logical structure of ruled tables.
//
// Given a proposed grid of column and row intervals and the line segments
// detected on the page, the package decides which cell sides are ruled and
// which cells merge with their neighbours.
//
// # Phases
//
// Reconstruction is a fixed sequence, expressed as types so it cannot be run
// out of order:
//
//  1. [Grid] - built by [NewGrid] from the proposed intervals
//  2. [Bounded] - after SetEdges, SetBorder or SetAllEdges
//  3. [Spanned] - after SetSpan; text is placed with AppendText
//  4. [model.Table] - returned by [Spanned.Materialize]
//
// [Reconstruct] runs steps 1 to 3 for a [Proposal]:
//
//	spanned, warnings, err := tables.Reconstruct(proposal, tables.DefaultConfig())
//	if err != nil {
//	    // malformed grid
//	}
//	for _, w := range warnings {
//	    // w is a *model.LineError for a segment that matched no grid line
//	}
//	spanned.AppendText(0, 0, "Name")
//	table := spanned.Materialize(1, 1)
//
// # Grid Proposal
//
// When only segments are available, [GridProposer] groups aligned segments
// and proposes intervals from the group positions.
//
// # Configuration
//
// [Config] selects the [Flavor] and the joint tolerance (default 2 points)
// used when matching segment endpoints to grid coordinates.
package tables
