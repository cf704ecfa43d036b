package transcription

import "strings"

// Event is one recognition result.
type Event struct {
	// Text is the recognized text. A JSON null decodes to "".
	Text string `json:"text"`
	// IsFinal marks a confirmed result for a completed utterance.
	IsFinal bool `json:"isFinal"`
	// Language is the BCP 47 tag of the recognized speech, if known.
	Language string `json:"languageTag,omitempty"`
}

// Partial builds an interim event.
func Partial(text, language string) Event {
	return Event{Text: text, Language: language}
}

// Final builds a confirmed event.
func Final(text, language string) Event {
	return Event{Text: text, IsFinal: true, Language: language}
}

// Trimmed returns the text without surrounding whitespace.
func (e Event) Trimmed() string {
	return strings.TrimSpace(e.Text)
}

// Source delivers the events of one session. Events is closed when the
// source ends.
type Source interface {
	Events() <-chan Event
}

// ChannelSource adapts a channel to Source.
type ChannelSource chan Event

// Events returns the channel.
func (c ChannelSource) Events() <-chan Event { return c }
