package model

import "strings"

// PageSeparator separates the text of consecutive pages in a document.
const PageSeparator = "\n\n"

// Document is the result of reconstructing the reading order of every page
// of a source file.
type Document struct {
	Source string        `json:"source,omitempty"`
	Pages  []PageText    `json:"pages"`
	Stats  DocumentStats `json:"stats"`
}

// DocumentStats summarizes how many pages contributed text.
type DocumentStats struct {
	PageCount     int `json:"page_count"`
	EmptyPages    int `json:"empty_pages"`
	RejectedPages int `json:"rejected_pages"`
}

// PageText holds the serialized text of one page plus the facts the page
// quality filter decided on.
type PageText struct {
	Number      int     `json:"page_number"` // 1-indexed
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Text        string  `json:"text"`
	Fragments   int     `json:"fragments"`
	Columns     int     `json:"columns"`
	LetterRatio float64 `json:"letter_ratio"`
	Accepted    bool    `json:"accepted"`
}

// NewDocument creates an empty document for the given source name
func NewDocument(source string) *Document {
	return &Document{
		Source: source,
		Pages:  make([]PageText, 0),
	}
}

// AddPage appends a page and updates the statistics
func (d *Document) AddPage(p PageText) {
	d.Pages = append(d.Pages, p)
	d.Stats.PageCount++
	if p.Fragments == 0 {
		d.Stats.EmptyPages++
	}
	if !p.Accepted {
		d.Stats.RejectedPages++
	}
}

// PageCount returns the number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// GetPage returns a page by 1-indexed number, or nil
func (d *Document) GetPage(number int) *PageText {
	for i := range d.Pages {
		if d.Pages[i].Number == number {
			return &d.Pages[i]
		}
	}
	return nil
}

// MostlyEmpty reports whether more than half of the pages carried no text
// fragments at all, the usual sign of a scanned, image-only document.
func (d *Document) MostlyEmpty() bool {
	if d.Stats.PageCount == 0 {
		return false
	}
	return float64(d.Stats.EmptyPages)/float64(d.Stats.PageCount) > 0.5
}

// Text joins the text of accepted pages in page order. Every accepted page
// is followed by a blank line.
func (d *Document) Text() string {
	var sb strings.Builder
	for _, p := range d.Pages {
		if !p.Accepted {
			continue
		}
		sb.WriteString(p.Text)
		sb.WriteString(PageSeparator)
	}
	return sb.String()
}
