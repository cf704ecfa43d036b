package segment

import (
	"unicode"
)

// MaxMatch is a forward maximum matching Cutter over a fixed word list.
// Han and kana runes not covered by a dictionary word become single-rune
// words; runs of other letters and digits stay intact.
type MaxMatch struct {
	words  map[string]struct{}
	maxLen int
}

// NewMaxMatch builds a cutter from the given words.
func NewMaxMatch(words ...string) *MaxMatch {
	m := &MaxMatch{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		n := len([]rune(w))
		if n == 0 {
			continue
		}
		m.words[w] = struct{}{}
		if n > m.maxLen {
			m.maxLen = n
		}
	}
	return m
}

// Cut splits text into words.
func (m *MaxMatch) Cut(text string) []string {
	runes := []rune(text)
	var out []string
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			j := i + 1
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			out = append(out, string(runes[i:j]))
			i = j
		case isIdeographic(r):
			n := m.longestWord(runes[i:])
			out = append(out, string(runes[i:i+n]))
			i += n
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			j := i + 1
			for j < len(runes) && !unicode.IsSpace(runes[j]) && !isIdeographic(runes[j]) &&
				(unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j])) {
				j++
			}
			out = append(out, string(runes[i:j]))
			i = j
		default:
			out = append(out, string(r))
			i++
		}
	}
	return out
}

func (m *MaxMatch) longestWord(runes []rune) int {
	limit := m.maxLen
	if limit > len(runes) {
		limit = len(runes)
	}
	for n := limit; n > 1; n-- {
		if _, ok := m.words[string(runes[:n])]; ok {
			return n
		}
	}
	return 1
}

func isIdeographic(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana)
}
