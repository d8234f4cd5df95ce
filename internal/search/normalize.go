package search

import (
	"strings"
)

// wordBreaks is the fixed set of characters that separate words. It covers
// the ASCII punctuation seen in plain text plus the typographic quotes and
// dash common in published poetry.
const wordBreaks = " (),.!:;\"“‘’”—"

// Normalize converts a raw line into its canonical form: lowercase, words
// separated by exactly one space, with no leading or trailing separators.
// Normalizing an already-canonical string returns it unchanged. An empty or
// all-separator input normalizes to the empty string.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	pendingSpace := false
	for _, r := range strings.ToLower(raw) {
		if strings.ContainsRune(wordBreaks, r) {
			// Emit the separator lazily so trailing breaks are dropped
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
