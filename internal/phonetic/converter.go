package phonetic

import (
	"strings"
	"unicode/utf8"
)

// Converter spells text in the ICAO alphabet. The alphabet is fixed and
// never modified, so a Converter is safe for concurrent use.
type Converter struct {
	words *[utf8.RuneSelf]string
}

// NewConverter creates a converter backed by the ICAO alphabet.
func NewConverter() *Converter {
	return &Converter{words: &wordTab}
}

// Convert returns the spelled form of text: one word per character, each
// followed by a single space. Letters must be uppercase. The first character
// without a word aborts the conversion with an *UnknownCharacterError.
func (c *Converter) Convert(text string) (string, error) {
	var sb strings.Builder
	for i, r := range text {
		word, ok := c.Lookup(r)
		if !ok {
			return "", &UnknownCharacterError{Char: r, Offset: i}
		}
		sb.WriteString(word)
		sb.WriteByte(' ')
	}
	return sb.String(), nil
}

// Lookup returns the word for a single character.
func (c *Converter) Lookup(r rune) (string, bool) {
	if r < 0 || int(r) >= len(c.words) {
		return "", false
	}
	word := c.words[r]
	return word, word != ""
}

// Entries returns a copy of the alphabet in canonical order: letters,
// digits, space and period.
func (c *Converter) Entries() []Entry {
	entries := make([]Entry, len(alphabet))
	copy(entries, alphabet[:])
	return entries
}
