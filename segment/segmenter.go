package segment

import (
	"unicode"
)

// Segmenter reports valid line-break offsets for a text.
type Segmenter interface {
	// Boundaries returns ascending rune offsets where a line may end.
	Boundaries(text string) []int
	// Logographic reports whether the script is written without spaces.
	Logographic() bool
}

// Whitespace breaks at every whitespace rune.
type Whitespace struct{}

// Boundaries returns the offsets of every whitespace rune in text.
func (Whitespace) Boundaries(text string) []int {
	var out []int
	i := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			out = append(out, i)
		}
		i++
	}
	return out
}

// Logographic is false for whitespace-delimited scripts.
func (Whitespace) Logographic() bool { return false }

// Cutter partitions text into words. Concatenating the returned tokens must
// reproduce the input for the result to be usable as boundaries.
type Cutter interface {
	Cut(text string) []string
}

// Dictionary breaks only at the word edges produced by a Cutter.
type Dictionary struct {
	cutter Cutter
}

// NewDictionary creates a dictionary segmenter backed by cutter.
func NewDictionary(cutter Cutter) *Dictionary {
	return &Dictionary{cutter: cutter}
}

// Boundaries returns the interior edges between the cutter's tokens. If the
// tokens do not cover the input exactly, whitespace boundaries are used.
func (d *Dictionary) Boundaries(text string) []int {
	if text == "" {
		return nil
	}
	total := len([]rune(text))
	tokens := d.cutter.Cut(text)

	out := make([]int, 0, len(tokens))
	offset := 0
	joined := 0
	for _, tok := range tokens {
		n := len([]rune(tok))
		if n == 0 {
			continue
		}
		offset += n
		joined += len(tok)
		if offset < total {
			out = append(out, offset)
		}
	}
	if offset != total || joined != len(text) {
		return Whitespace{}.Boundaries(text)
	}
	return out
}

// Logographic is true for dictionary-segmented scripts.
func (d *Dictionary) Logographic() bool { return true }
