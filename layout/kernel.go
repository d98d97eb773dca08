package layout

import (
	"math"

	"github.com/tsawler/reflow/model"
)

// Overlapping is returned by VerticalGap and HorizontalGap when the two
// extents overlap on the measured axis. It is negative so that it can never
// be confused with a real gap, and it compares as "close" against any
// positive distance threshold.
const Overlapping = -1.0

// VerticalGap returns the distance between the bottom of the upper element
// and the top of the lower one, or Overlapping if their vertical extents
// overlap.
func VerticalGap(a, b Node) float64 {
	ra, rb := a.BBox(), b.BBox()
	switch {
	case ra.Y1 <= rb.Y0:
		return rb.Y0 - ra.Y1
	case rb.Y1 <= ra.Y0:
		return ra.Y0 - rb.Y1
	default:
		return Overlapping
	}
}

// HorizontalGap returns the distance between the right edge of the left
// element and the left edge of the right one, or Overlapping if their
// horizontal extents overlap.
func HorizontalGap(a, b Node) float64 {
	ra, rb := a.BBox(), b.BBox()
	switch {
	case ra.X1 <= rb.X0:
		return rb.X0 - ra.X1
	case rb.X1 <= ra.X0:
		return ra.X0 - rb.X1
	default:
		return Overlapping
	}
}

// SameFontSize reports whether b's font size is within tol of a's, relative
// to a's size.
func SameFontSize(a, b Node, tol float64) bool {
	return math.Abs(a.FontSize()-b.FontSize())/a.FontSize() < tol
}

// AlignmentScore measures how well b sits in the same column as a: the
// smallest of the left-edge, right-edge and midpoint offsets, each divided
// by a's width. Zero means perfectly aligned on at least one of them.
func AlignmentScore(a, b Node) float64 {
	ra, rb := a.BBox(), b.BBox()
	w := ra.Width()

	left := math.Abs(ra.X0-rb.X0) / w
	right := math.Abs(ra.X1-rb.X1) / w
	mid := math.Abs(rb.MidX()-ra.MidX()) / w

	return math.Min(left, math.Min(mid, right))
}

// IsAligned reports whether b is column-aligned with a within tol
func IsAligned(a, b Node, tol float64) bool {
	return AlignmentScore(a, b) < tol
}

// Baselined is a node with a text baseline origin: *Span or *Line
type Baselined interface {
	Node
	Origin() model.Point
}

// SameBaseline reports whether b's baseline y is within tol of a's, relative
// to a's height.
func SameBaseline(a, b Baselined, tol float64) bool {
	return math.Abs(a.Origin().Y-b.Origin().Y)/a.BBox().Height() < tol
}
