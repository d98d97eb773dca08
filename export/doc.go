// Package export renders built pages in forms other than plain text.
//
// [WriteHTML] emits a semantic outline of the reading structure, one
// section per page, one div per column and one p per paragraph. Plain text
// output is [layout.Page.Text].
//
// [DebugImage] draws the clustering result over a blank page: span, line,
// paragraph and column boxes in distinct colors, with each column and
// paragraph labelled by its reading-order position. It is the quickest way
// to see why two blocks were or were not merged.
package export
