package domain

import (
	"strings"
	"unicode"
)

// NormalizeFront prepares a flashcard front text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses each run of whitespace into a single space
//
// Diacritics, hyphens, and apostrophes are preserved. The SQL side of
// the duplicate precheck applies the same transformation, so the two
// must stay in sync.
func NormalizeFront(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
