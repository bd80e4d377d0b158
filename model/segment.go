package model

import (
	"fmt"
	"math"
)

// Orientation distinguishes vertical from horizontal ruling lines.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Segment is a detected straight line given by its two endpoints in
// document space. Line detectors emit one list of vertical segments and one
// of horizontal segments; the orientation is implied by the list.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// NewVerticalSegment creates a vertical segment at x spanning y1..y2.
func NewVerticalSegment(x, y1, y2 float64) Segment {
	return Segment{X1: x, Y1: y1, X2: x, Y2: y2}
}

// NewHorizontalSegment creates a horizontal segment at y spanning x1..x2.
func NewHorizontalSegment(y, x1, x2 float64) Segment {
	return Segment{X1: x1, Y1: y, X2: x2, Y2: y}
}

// X returns the x position of a vertical segment.
func (s Segment) X() float64 { return s.X1 }

// Y returns the y position of a horizontal segment.
func (s Segment) Y() float64 { return s.Y1 }

// Upper returns the larger y extremity.
func (s Segment) Upper() float64 { return math.Max(s.Y1, s.Y2) }

// Lower returns the smaller y extremity.
func (s Segment) Lower() float64 { return math.Min(s.Y1, s.Y2) }

// Start returns the smaller x extremity.
func (s Segment) Start() float64 { return math.Min(s.X1, s.X2) }

// End returns the larger x extremity.
func (s Segment) End() float64 { return math.Max(s.X1, s.X2) }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	dx := s.X2 - s.X1
	dy := s.Y2 - s.Y1
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox returns the box spanned by the two endpoints.
func (s Segment) BBox() BBox {
	return NewBBoxFromPoints(Point{s.X1, s.Y1}, Point{s.X2, s.Y2})
}

func (s Segment) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", s.X1, s.Y1, s.X2, s.Y2)
}
