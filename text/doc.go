// Package text defines the input contract of the layout pipeline: the
// positioned text fragments a PDF renderer reports for one page.
//
// # Page Data
//
// A [PageData] mirrors the nested block -> line -> span structure produced by
// extraction libraries. Each leaf [Fragment] carries a bounding box, a font
// size, the raw string and the baseline origin:
//
//	page := text.PageData{Number: 1, Width: 612, Height: 792, Blocks: blocks}
//	fragments := page.Fragments()
//
// The layout package never trusts the upstream grouping; [PageData.Fragments]
// flattens it in reporting order and the builders re-segment from scratch.
//
// # Normalization
//
// [Normalize] applies Unicode compatibility normalization so that ligature
// glyphs such as "ﬁ" become plain letters, and strips zero-width characters
// that some producers emit between glyphs.
//
// # Page Quality
//
// [LetterRatio] and [IsTextPage] implement the heuristic used to drop pages
// that are mostly digits, rules or watermark noise.
package text
