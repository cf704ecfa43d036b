package settings

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Width is a line width given either as a character count ("38", 38) or a
// preset name ("narrow", "medium", "wide").
type Width string

// Preset holds the character counts of a named width for both script kinds.
type Preset struct {
	Standard    int
	Logographic int
}

// Chars returns the count for the given script kind.
func (p Preset) Chars(logographic bool) int {
	if logographic {
		return p.Logographic
	}
	return p.Standard
}

// Presets maps width names to character counts.
var Presets = map[string]Preset{
	"narrow": {Standard: 30, Logographic: 10},
	"medium": {Standard: 38, Logographic: 14},
	"wide":   {Standard: 44, Logographic: 18},
}

// DefaultPreset applies when no usable width is known.
var DefaultPreset = Preset{Standard: 45, Logographic: 14}

// UnmarshalJSON accepts a JSON number, a string or null. It never fails on
// odd values; they are rejected later by Chars.
func (w *Width) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*w = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*w = Width(strings.TrimSpace(s))
	default:
		*w = Width(b)
	}
	return nil
}

// Chars resolves w to a positive character count. The second result is
// false when w is empty, unknown or not a positive integer.
func (w Width) Chars(logographic bool) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(string(w)))
	if s == "" {
		return 0, false
	}
	if p, ok := Presets[s]; ok {
		return p.Chars(logographic), true
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return 0, false
		}
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && f > 0 && f <= math.MaxInt32 {
		return int(f), true
	}
	return 0, false
}
