package settings

import (
	"strings"

	"github.com/kbukum/captionkit/segment"
	"github.com/kbukum/captionkit/validation"
)

// Built-in fallbacks used when neither the snapshot nor the last known good
// settings supply a value.
const (
	DefaultLineCount       = 3
	DefaultLanguage        = "en-US"
	DefaultHistoryCapacity = 20
)

// Snapshot is a settings change as delivered by the settings store. Zero
// fields mean "unchanged".
type Snapshot struct {
	LineWidth       Width  `json:"lineWidth" mapstructure:"line_width"`
	LineCount       int    `json:"lineCount" mapstructure:"line_count"`
	Language        string `json:"languageTag" mapstructure:"language"`
	HistoryCapacity int    `json:"historyCapacity,omitempty" mapstructure:"history_capacity"`
}

// Settings is the resolved layout of a caption session.
type Settings struct {
	// Width is the requested width, kept so presets re-resolve when the
	// script changes.
	Width           Width  `json:"width" validate:"-"`
	MaxCharsPerLine int    `json:"max_chars_per_line" validate:"gt=0"`
	MaxLines        int    `json:"max_lines" validate:"gt=0"`
	Language        string `json:"language" validate:"required"`
	HistoryCapacity int    `json:"history_capacity" validate:"gt=0"`
}

// Script reports whether a language tag is written logographically.
// *segment.Registry satisfies it.
type Script interface {
	Logographic(tag string) bool
}

// Problem is one malformed field that was replaced by a fallback.
type Problem = validation.FieldError

// LanguageChanged reports whether o renders in a different base language.
func (s Settings) LanguageChanged(o Settings) bool {
	return !segment.SameLanguage(s.Language, o.Language)
}

// LayoutChanged reports whether o wraps or pads differently.
func (s Settings) LayoutChanged(o Settings) bool {
	return s.MaxCharsPerLine != o.MaxCharsPerLine || s.MaxLines != o.MaxLines
}

// Resolve applies snap on top of previous. previous may be the zero value.
// Bad fields fall back to previous, then to the built-in defaults, and are
// returned as problems.
func Resolve(snap Snapshot, previous Settings, script Script) (Settings, []Problem) {
	next := previous

	if lang := strings.TrimSpace(snap.Language); lang != "" {
		next.Language = lang
	}
	if next.Language == "" {
		next.Language = DefaultLanguage
	}
	logographic := script != nil && script.Logographic(next.Language)

	if snap.LineWidth != "" {
		next.Width = snap.LineWidth
	}
	next.MaxCharsPerLine = 0
	if chars, ok := next.Width.Chars(logographic); ok {
		next.MaxCharsPerLine = chars
	} else if next.Width == "" {
		next.MaxCharsPerLine = fallbackChars(previous, previous.LanguageChanged(next), logographic)
	}

	if snap.LineCount != 0 {
		next.MaxLines = snap.LineCount
	}
	if snap.HistoryCapacity != 0 {
		next.HistoryCapacity = snap.HistoryCapacity
	}
	if next.MaxLines == 0 {
		next.MaxLines = DefaultLineCount
	}
	if next.HistoryCapacity == 0 {
		next.HistoryCapacity = DefaultHistoryCapacity
	}

	err := validation.Validate(next)
	if err == nil {
		return next, nil
	}

	problems := validation.FieldErrors(err)
	for _, p := range problems {
		switch p.Field {
		case "max_chars_per_line":
			next.Width = previous.Width
			if chars, ok := previous.Width.Chars(logographic); ok {
				next.MaxCharsPerLine = chars
			} else {
				next.MaxCharsPerLine = fallbackChars(previous, previous.LanguageChanged(next), logographic)
			}
		case "max_lines":
			next.MaxLines = positiveOr(previous.MaxLines, DefaultLineCount)
		case "history_capacity":
			next.HistoryCapacity = positiveOr(previous.HistoryCapacity, DefaultHistoryCapacity)
		case "language":
			next.Language = DefaultLanguage
		}
	}
	return next, problems
}

// Defaults resolves the built-in defaults for lang.
func Defaults(lang string, script Script) Settings {
	s, _ := Resolve(Snapshot{Language: lang}, Settings{}, script)
	return s
}

// fallbackChars keeps the previous width unless the script kind changed
// under it, in which case the default preset for the new script applies.
func fallbackChars(previous Settings, languageChanged, logographic bool) int {
	if previous.MaxCharsPerLine > 0 && !languageChanged {
		return previous.MaxCharsPerLine
	}
	return DefaultPreset.Chars(logographic)
}

func positiveOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
