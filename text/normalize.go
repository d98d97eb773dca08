package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// invisible lists the zero-width and format characters dropped by CleanZeroWidth
const invisible = "\u200b\u200c\u200d\u2060\ufeff\u00ad"

// Normalize applies NFKC normalization and removes zero-width and other
// invisible format characters.
//
// Example: "ﬁnd" (fi ligature) → "find"
func Normalize(s string) string {
	if s == "" {
		return s
	}
	return CleanZeroWidth(norm.NFKC.String(s))
}

// CleanZeroWidth removes zero-width spaces, joiners, the byte order mark and
// soft hyphens.
func CleanZeroWidth(s string) string {
	if !strings.ContainsAny(s, invisible) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(invisible, r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
