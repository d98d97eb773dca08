package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle in page space. Y grows downward, so Y0 is
// the top edge and Y1 the bottom edge.
type Rect struct {
	X0, Y0 float64 // top-left
	X1, Y1 float64 // bottom-right
}

// NewRect creates a rectangle from its corner coordinates, normalizing the
// order so that X0 <= X1 and Y0 <= Y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1),
		Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1),
		Y1: math.Max(y0, y1),
	}
}

// RectFromSlice builds a rectangle from a 4-element [x0, y0, x1, y1] slice.
// It returns false if the slice has the wrong length.
func RectFromSlice(v []float64) (Rect, bool) {
	if len(v) != 4 {
		return Rect{}, false
	}
	return Rect{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}, true
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// MidX returns the horizontal midpoint
func (r Rect) MidX() float64 {
	return r.X0 + r.Width()/2
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: r.X0 + r.Width()/2,
		Y: r.Y0 + r.Height()/2,
	}
}

// Union returns the smallest rectangle containing both rectangles
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Include grows r in place so that it also covers other
func (r *Rect) Include(other Rect) {
	*r = r.Union(other)
}

// Contains reports whether other lies entirely inside r (edges inclusive)
func (r Rect) Contains(other Rect) bool {
	return other.X0 >= r.X0 && other.X1 <= r.X1 &&
		other.Y0 >= r.Y0 && other.Y1 <= r.Y1
}

// ContainsPoint reports whether p is inside r (edges inclusive)
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Intersects checks if two rectangles intersect
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 ||
		r.X0 > other.X1 ||
		r.Y1 < other.Y0 ||
		r.Y0 > other.Y1)
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has no area
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Min returns the top-left corner as an array, the form spatial indexes take
func (r Rect) Min() [2]float64 {
	return [2]float64{r.X0, r.Y0}
}

// Max returns the bottom-right corner as an array
func (r Rect) Max() [2]float64 {
	return [2]float64{r.X1, r.Y1}
}
