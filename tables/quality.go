package tables

import "strings"

// ComputeWhitespace returns the percentage of cells whose text is blank.
func ComputeWhitespace(data [][]string) float64 {
	total, blank := 0, 0
	for _, row := range data {
		for _, cell := range row {
			total++
			if strings.TrimSpace(cell) == "" {
				blank++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(blank) / float64(total)
}

// ComputeAccuracy turns per-fragment placement errors (each 0-1) into an
// accuracy percentage: 100 minus the mean error scaled to 100. No recorded
// errors means every fragment landed cleanly.
func ComputeAccuracy(errors []float64) float64 {
	if len(errors) == 0 {
		return 100
	}
	sum := 0.0
	for _, e := range errors {
		sum += e
	}
	return 100 - 100*sum/float64(len(errors))
}
