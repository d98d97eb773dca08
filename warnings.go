package reflow

import (
	"fmt"
	"strings"
)

// WarningCode classifies a non-fatal issue
type WarningCode int

const (
	// WarnMostlyEmpty: more than half of the processed pages carried no
	// text fragments at all. The document is probably scanned and needs OCR.
	WarnMostlyEmpty WarningCode = iota

	// WarnPageRejected: a page had text but failed the quality filter
	// (too few letters), so its text was left out.
	WarnPageRejected

	// WarnPageUnreadable: a page could not be read from the source and was
	// skipped.
	WarnPageUnreadable
)

// String returns a short name for the code
func (c WarningCode) String() string {
	switch c {
	case WarnMostlyEmpty:
		return "mostly-empty"
	case WarnPageRejected:
		return "page-rejected"
	case WarnPageUnreadable:
		return "page-unreadable"
	default:
		return "unknown"
	}
}

// Warning describes an issue that did not stop extraction but may affect
// the result
type Warning struct {
	Code WarningCode

	// Page is the 1-indexed page number, or 0 for document-wide warnings
	Page int

	Message string
}

// String formats the warning for display
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// HasWarning reports whether any warning has the given code
func HasWarning(warnings []Warning, code WarningCode) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
