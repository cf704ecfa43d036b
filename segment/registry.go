package segment

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Registry selects a Segmenter by language tag.
type Registry struct {
	mu       sync.RWMutex
	byLang   map[string]Segmenter
	fallback Segmenter
}

// NewRegistry creates an empty registry that falls back to whitespace.
func NewRegistry() *Registry {
	return &Registry{
		byLang:   make(map[string]Segmenter),
		fallback: Whitespace{},
	}
}

// DefaultRegistry registers dictionary segmentation for Chinese (gse) and
// Japanese (per-character), whitespace for everything else.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("zh", NewDictionary(NewGseCutter()))
	r.Register("ja", NewDictionary(NewMaxMatch()))
	return r
}

// Register binds a segmenter to the base subtag of lang.
func (r *Registry) Register(lang string, s Segmenter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byLang[Base(lang)] = s
}

// For returns the segmenter for tag, or the whitespace fallback.
func (r *Registry) For(tag string) Segmenter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.byLang[Base(tag)]; ok {
		return s
	}
	return r.fallback
}

// Boundaries returns the break offsets of text under the rules for tag.
func (r *Registry) Boundaries(text, tag string) []int {
	return r.For(tag).Boundaries(text)
}

// Logographic reports whether tag selects a logographic segmenter.
func (r *Registry) Logographic(tag string) bool {
	return r.For(tag).Logographic()
}

// Languages returns the sorted registered base subtags.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.byLang))
	for k := range r.byLang {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Base returns the lower-case base language subtag of tag ("zh-Hant-TW" is
// "zh"). Tags that do not parse are cut at the first separator.
func Base(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	if t, err := language.Parse(tag); err == nil {
		if b, conf := t.Base(); conf != language.No {
			return b.String()
		}
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	return strings.ToLower(strings.SplitN(tag, "-", 2)[0])
}

// SameLanguage reports whether two tags share a base subtag.
func SameLanguage(a, b string) bool {
	return Base(a) == Base(b)
}
