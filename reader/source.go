package reader

import (
	"errors"
	"fmt"

	"github.com/tsawler/reflow/format"
	"github.com/tsawler/reflow/text"
)

var (
	// ErrUnsupportedFormat is returned by Open for files that are neither a
	// PDF nor a JSON page dump
	ErrUnsupportedFormat = errors.New("reader: unsupported input format")

	// ErrPageOutOfRange is returned for a page number outside 1..PageCount
	ErrPageOutOfRange = errors.New("reader: page out of range")
)

// Source provides the raw page data of a document
type Source interface {
	// PageCount returns the number of pages
	PageCount() int

	// Page returns the fragments of a page, 1-indexed
	Page(number int) (text.PageData, error)

	// Close releases the underlying file
	Close() error
}

// Open opens path as a PDF or a JSON page dump, detected from its content
func Open(path string) (Source, error) {
	f, err := format.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	switch f {
	case format.PDF:
		return OpenPDF(path)
	case format.JSON:
		return OpenJSON(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func checkPage(number, count int) error {
	if number < 1 || number > count {
		return fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, number, count)
	}
	return nil
}
