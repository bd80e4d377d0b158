package model

import (
	"fmt"
	"math"
)

// Point is a position in page space.
type Point struct {
	X, Y float64
}

// BBox is an axis-aligned box anchored at its bottom-left corner, the origin
// of page space.
type BBox struct {
	X      float64 // left
	Y      float64 // bottom
	Width  float64
	Height float64
}

// NewBBox returns the box with bottom-left corner (x, y) and the given size.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromPoints returns the box spanned by two opposite corners given in
// any order.
func NewBBoxFromPoints(p1, p2 Point) BBox {
	return spanning(
		math.Min(p1.X, p2.X), math.Min(p1.Y, p2.Y),
		math.Max(p1.X, p2.X), math.Max(p1.Y, p2.Y))
}

func spanning(left, bottom, right, top float64) BBox {
	return BBox{X: left, Y: bottom, Width: right - left, Height: top - bottom}
}

func (b BBox) Left() float64   { return b.X }
func (b BBox) Right() float64  { return b.X + b.Width }
func (b BBox) Bottom() float64 { return b.Y }
func (b BBox) Top() float64    { return b.Y + b.Height }

// Center is where text placement anchors a fragment.
func (b BBox) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Intersection returns the overlap of b and other. Boxes that only touch or
// are apart give the zero box.
func (b BBox) Intersection(other BBox) BBox {
	left := math.Max(b.Left(), other.Left())
	bottom := math.Max(b.Bottom(), other.Bottom())
	right := math.Min(b.Right(), other.Right())
	top := math.Min(b.Top(), other.Top())
	if right <= left || top <= bottom {
		return BBox{}
	}
	return spanning(left, bottom, right, top)
}

func (b BBox) Area() float64 {
	return b.Width * b.Height
}

func (b BBox) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", b.Left(), b.Bottom(), b.Right(), b.Top())
}
