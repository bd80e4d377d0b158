// Package match compares document coordinates within an absolute tolerance.
//
// Detected ruling lines are measured independently of the proposed table
// grid, so their endpoints rarely land exactly on a grid coordinate. The
// functions here implement the epsilon comparison used to anchor them.
package match

import "math"

// Close reports whether a and b differ by at most tol.
func Close(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Indices returns the positions in values that are within tol of target,
// in ascending order. It returns nil when nothing matches.
func Indices(values []float64, target, tol float64) []int {
	var out []int
	for i, v := range values {
		if Close(v, target, tol) {
			out = append(out, i)
		}
	}
	return out
}

// First returns the lowest position in values within tol of target.
func First(values []float64, target, tol float64) (int, bool) {
	for i, v := range values {
		if Close(v, target, tol) {
			return i, true
		}
	}
	return -1, false
}
