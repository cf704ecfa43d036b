package history

import "strings"

// DefaultCapacity is used when a non-positive capacity is requested.
const DefaultCapacity = 20

// History is a bounded FIFO of final transcripts. It is owned by a single
// session and is not safe for concurrent use.
type History struct {
	entries  []string
	capacity int
}

// New creates a History holding at most capacity entries.
func New(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Append adds text, evicting the oldest entry when full. Blank text is ignored.
func (h *History) Append(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	h.entries = append(h.entries, text)
	h.trim()
}

// Combined joins all entries with a single space in insertion order.
func (h *History) Combined() string {
	return strings.Join(h.entries, " ")
}

// SetCapacity changes the bound and drops the oldest entries that no longer fit.
// Non-positive values are ignored.
func (h *History) SetCapacity(n int) {
	if n < 1 {
		return
	}
	h.capacity = n
	h.trim()
}

// Capacity returns the current bound.
func (h *History) Capacity() int { return h.capacity }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear removes every entry.
func (h *History) Clear() {
	h.entries = nil
}

func (h *History) trim() {
	if over := len(h.entries) - h.capacity; over > 0 {
		kept := make([]string, h.capacity)
		copy(kept, h.entries[over:])
		h.entries = kept
	}
}
