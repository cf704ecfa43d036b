package wrap

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kbukum/captionkit/segment"
)

// Wrapper wraps text to a fixed width with a fixed segmenter.
type Wrapper struct {
	maxChars  int
	segmenter segment.Segmenter
}

// New creates a Wrapper. Widths below one are treated as one; a nil
// segmenter breaks at whitespace.
func New(maxChars int, seg segment.Segmenter) *Wrapper {
	if maxChars < 1 {
		maxChars = 1
	}
	if seg == nil {
		seg = segment.Whitespace{}
	}
	return &Wrapper{maxChars: maxChars, segmenter: seg}
}

// MaxChars returns the configured line width.
func (w *Wrapper) MaxChars() int { return w.maxChars }

// Segmenter returns the configured segmenter.
func (w *Wrapper) Segmenter() segment.Segmenter { return w.segmenter }

// Wrap splits text into trimmed lines of at most MaxChars runes.
// Empty or whitespace-only input yields no lines.
func (w *Wrapper) Wrap(text string) []string {
	return Lines(text, w.maxChars, w.segmenter)
}

// Lines repeatedly takes the longest prefix of at most maxChars runes that
// ends at a boundary of seg, force-splitting at maxChars when no boundary
// is in range.
func Lines(text string, maxChars int, seg segment.Segmenter) []string {
	if maxChars < 1 {
		maxChars = 1
	}
	if seg == nil {
		seg = segment.Whitespace{}
	}
	runes := []rune(text)
	end := len(runes)
	for end > 0 && unicode.IsSpace(runes[end-1]) {
		end--
	}
	if end == 0 {
		return nil
	}
	bounds := seg.Boundaries(text)

	var lines []string
	start := 0
	for {
		for start < end && unicode.IsSpace(runes[start]) {
			start++
		}
		if start >= end {
			break
		}
		if end-start <= maxChars {
			lines = append(lines, strings.TrimSpace(string(runes[start:end])))
			break
		}

		cut := lastBoundary(bounds, start, start+maxChars)
		if cut < 0 {
			cut = start + maxChars
		}
		line := strings.TrimSpace(string(runes[start:cut]))
		if line != "" {
			lines = append(lines, line)
		}
		start = cut
	}
	return lines
}

// lastBoundary returns the largest boundary b with lo < b <= hi, or -1.
func lastBoundary(bounds []int, lo, hi int) int {
	i := sort.SearchInts(bounds, hi+1)
	for i--; i >= 0; i-- {
		b := bounds[i]
		if b <= lo {
			return -1
		}
		if b <= hi {
			return b
		}
	}
	return -1
}
