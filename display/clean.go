package display

import "strings"

// DefaultLeadingPunctuation covers narrow and wide (CJK) punctuation that a
// recognizer may emit at the start of an utterance.
const DefaultLeadingPunctuation = ",.;:!?，。；：！？、…・"

// horizontalSpace is trimmed alongside punctuation; newlines are kept so the
// block keeps its line count.
const horizontalSpace = " \t\u3000"

// Cleaner strips a configurable set of leading punctuation marks.
type Cleaner struct {
	cutset string
}

// NewCleaner creates a Cleaner for the given punctuation set. An empty set
// uses DefaultLeadingPunctuation. Line breaks are removed from the set.
func NewCleaner(punctuation string) *Cleaner {
	if punctuation == "" {
		punctuation = DefaultLeadingPunctuation
	}
	punctuation = strings.NewReplacer("\n", "", "\r", "").Replace(punctuation)
	return &Cleaner{cutset: punctuation + horizontalSpace}
}

// Clean strips leading punctuation and horizontal whitespace from the start
// of text and trailing horizontal whitespace from its end.
func (c *Cleaner) Clean(text string) string {
	text = strings.TrimLeft(text, c.cutset)
	return strings.TrimRight(text, horizontalSpace)
}
