// Package layout reconstructs the reading structure of a page from its
// positioned text fragments and serializes it in reading order.
//
// The pipeline is a three-level greedy agglomerative clustering:
//
//	spans -> lines -> paragraphs -> columns -> text
//
// Each level sorts what is left, seeds a cluster with the first element and
// sweeps the rest once; whatever the cluster rejects seeds the next one.
//
// # Building a Page
//
// The [Builder] drives one page through the pipeline:
//
//	builder, err := layout.NewBuilderWithConfig(layout.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	page, err := builder.Build(pageData)
//	fmt.Println(page.Text())
//
// A page moves through the states RawInput, SpansBuilt, LinesBuilt,
// ParagraphsBuilt, ColumnsBuilt, Sorted and Serialized. A page without usable
// spans jumps from RawInput to Serialized with empty text.
//
// # Levels
//
//   - [Span] - one trimmed fragment; fragments that are blank or have no
//     width are dropped
//   - [Line] - spans on the same baseline, horizontally close, same font size
//   - [Paragraph] - lines vertically close, same font size, column aligned
//   - [Column] - paragraphs sharing horizontal alignment only, so headings
//     rejoin their body text
//
// All four implement [Node]. The geometry predicates ([VerticalGap],
// [HorizontalGap], [SameFontSize], [AlignmentScore], [SameBaseline]) are
// free functions over Node.
//
// # Serialization
//
// Lines join spans with single spaces. Paragraphs join lines with single
// spaces and undo end-of-line hyphenation. Columns and pages join their
// children with newlines.
//
// # Optional Passes
//
// [BuildOptions] enables two extra passes between paragraph and column
// clustering: [MergeContained] and [RemoveFooters].
//
// # Diagnostics
//
// Non-fatal events such as merging elements of different font sizes are
// collected per page in [Diagnostics] and logged at debug level through the
// builder's slog.Logger.
package layout
