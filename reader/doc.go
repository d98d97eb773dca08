// Package reader turns input files into per-page fragment lists.
//
// A [Source] yields one [text.PageData] per page: page size plus the
// positioned text fragments found on it, in page coordinates with the
// origin at the top-left corner and y growing downward. Two sources exist:
//
//   - [PDFSource] reads PDF files through github.com/ledongthuc/pdf, grouping
//     glyphs into runs of uniform font and baseline.
//   - [JSONSource] reads page dumps: JSON documents with the
//     block/line/span nesting that PDF text extractors commonly emit.
//
// [Open] picks the source from the file content:
//
//	src, err := reader.Open("paper.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	for i := 1; i <= src.PageCount(); i++ {
//	    page, err := src.Page(i)
//	    ...
//	}
package reader
