// Package reflow rebuilds the reading order of text laid out on pages.
//
// PDF pages store text as positioned fragments with no notion of lines,
// paragraphs or columns. reflow clusters the fragments of each page into
// lines, paragraphs and columns using geometric tolerances, then serializes
// them top to bottom and left to right.
//
// Basic usage:
//
//	text, warnings, err := reflow.Open("paper.pdf").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", reflow.FormatWarnings(warnings))
//	}
//
// With options:
//
//	text, _, err := reflow.Open("report.pdf").
//	    Pages(1, 2, 3).
//	    ExcludeHeadersAndFooters().
//	    Parallel(4).
//	    Text()
//
// The clustering itself lives in the layout package and can be driven
// directly with fragments from any source.
package reflow

import (
	"github.com/tsawler/reflow/reader"
)

// Open opens a PDF file or JSON page dump and returns an Extractor for
// fluent configuration. The file is opened lazily by the first terminal
// operation, which also closes it.
//
// Example:
//
//	text, warnings, err := reflow.Open("document.pdf").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor over an already opened page source.
// The caller is responsible for closing the source.
//
// Example:
//
//	src, err := reader.OpenJSON("pages.json")
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//	text, warnings, err := reflow.FromSource(src).Text()
func FromSource(src reader.Source) *Extractor {
	return &Extractor{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := reflow.Must(reflow.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text() and panics if the error
// is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	text := reflow.MustText(reflow.Open("document.pdf").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
