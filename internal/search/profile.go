package search

import (
	"strings"
)

// Profile is the comparable form of one line of text: its canonical text
// plus frequency tables over its words and its runes. A Profile is built
// once and never mutated, so it is safe to read from multiple goroutines.
type Profile struct {
	text  string
	words map[string]int
	runes map[rune]int
}

// NewProfile normalizes raw and builds its frequency tables. Empty input
// (or input that is all separator characters) yields a profile with empty
// canonical text and empty tables.
func NewProfile(raw string) *Profile {
	p := &Profile{
		text:  Normalize(raw),
		words: make(map[string]int),
		runes: make(map[rune]int),
	}
	if p.text == "" {
		return p
	}

	for _, word := range strings.Split(p.text, " ") {
		p.words[word]++
	}
	// The separator spaces count too; they carry length information the
	// rune containment metric would otherwise lose
	for _, r := range p.text {
		p.runes[r]++
	}
	return p
}
