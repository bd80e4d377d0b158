package tables

import (
	"fmt"
	"log/slog"
	"strings"
)

// Flavor selects how boundaries are assigned when reconstructing a table.
type Flavor int

const (
	// Lattice matches detected ruling lines against the grid, then rules the
	// outer border.
	Lattice Flavor = iota
	// Stream assumes a fully ruled grid and ignores segments.
	Stream
)

func (f Flavor) String() string {
	switch f {
	case Lattice:
		return "lattice"
	case Stream:
		return "stream"
	default:
		return "unknown"
	}
}

// ParseFlavor converts a flavor name into a Flavor.
func ParseFlavor(s string) (Flavor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lattice":
		return Lattice, nil
	case "stream":
		return Stream, nil
	default:
		return Lattice, fmt.Errorf("tables: unknown flavor %q", s)
	}
}

// Config holds reconstruction configuration
type Config struct {
	Flavor Flavor

	// Coordinate slack when matching segment endpoints to grid boundaries
	// (points)
	JointTolerance float64

	// Logger receives per-table diagnostics; nil discards them
	Logger *slog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Flavor:         Lattice,
		JointTolerance: 2.0,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
