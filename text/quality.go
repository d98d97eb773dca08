package text

import "unicode"

// DefaultMinLetterRatio is the letter fraction a page's text must exceed to
// be kept.
const DefaultMinLetterRatio = 0.5

// LetterRatio returns the fraction of runes in s that are letters. Digits,
// punctuation and whitespace all count against the ratio. An empty string
// has a ratio of 0.
func LetterRatio(s string) float64 {
	total := 0
	letters := 0
	for _, r := range s {
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}

// IsTextPage reports whether a page's serialized text looks like prose rather
// than a table of numbers, a rule or a watermark: it must be non-empty and
// its letter ratio must exceed minRatio.
func IsTextPage(s string, minRatio float64) bool {
	if len(s) == 0 {
		return false
	}
	return LetterRatio(s) > minRatio
}
