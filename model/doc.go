// Package model provides the geometric primitives and result types shared by
// the reflow packages.
//
// # Geometry
//
// Page space uses PDF-renderer conventions: the origin is the top-left corner
// of the page and Y grows downward.
//
//   - [Rect] - axis-aligned rectangle given by its top-left (X0, Y0) and
//     bottom-right (X1, Y1) corners, with union, containment and intersection
//   - [Point] - 2D point, used for text baseline origins
//
// # Documents
//
// A [Document] collects the per-page reconstruction results of one source file:
//
//	doc := model.NewDocument("report.pdf")
//	doc.AddPage(model.PageText{Number: 1, Text: "...", Fragments: 42, Accepted: true})
//	fmt.Print(doc.Text())
//
// Pages rejected by the quality filter stay in [Document.Pages] with
// Accepted set to false but do not contribute to [Document.Text].
package model
