package layout

import (
	"sort"
	"strings"
)

// compareX orders nodes by left edge, then top edge. Remaining ties fall
// back to the other edges and finally the text, so the order never depends
// on how the fragments were reported.
func compareX(a, b Node) int {
	ra, rb := a.BBox(), b.BBox()
	if c := cmpFloat(ra.X0, rb.X0); c != 0 {
		return c
	}
	if c := cmpFloat(ra.Y0, rb.Y0); c != 0 {
		return c
	}
	return compareRest(a, b)
}

// compareY orders nodes by top edge, then left edge
func compareY(a, b Node) int {
	ra, rb := a.BBox(), b.BBox()
	if c := cmpFloat(ra.Y0, rb.Y0); c != 0 {
		return c
	}
	if c := cmpFloat(ra.X0, rb.X0); c != 0 {
		return c
	}
	return compareRest(a, b)
}

func compareRest(a, b Node) int {
	ra, rb := a.BBox(), b.BBox()
	if c := cmpFloat(ra.X1, rb.X1); c != 0 {
		return c
	}
	if c := cmpFloat(ra.Y1, rb.Y1); c != 0 {
		return c
	}
	if c := cmpFloat(a.FontSize(), b.FontSize()); c != 0 {
		return c
	}
	return strings.Compare(a.Text(), b.Text())
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// sortNodes stable-sorts s with cmp
func sortNodes[T Node](s []T, cmp func(a, b Node) int) {
	sort.SliceStable(s, func(i, j int) bool {
		return cmp(s[i], s[j]) < 0
	})
}
