package display

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Unlimited asks the sink to keep an update on screen until replaced.
const Unlimited time.Duration = -1

// Update is one rendered caption block.
type Update struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id,omitempty"`
	Lines     []string  `json:"lines"`
	Text      string    `json:"text"`
	Final     bool      `json:"final"`
	CreatedAt time.Time `json:"created_at"`
	// Duration is a display-time suggestion: zero leaves it to the sink,
	// Unlimited asks for no timeout.
	Duration time.Duration `json:"duration,omitempty"`
}

// NewUpdate joins lines, cleans the block and stamps a fresh id.
func NewUpdate(sessionID, userID string, lines []string, final bool, duration time.Duration, cleaner *Cleaner) Update {
	text := strings.Join(lines, "\n")
	if cleaner != nil {
		text = cleaner.Clean(text)
	}
	return Update{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		UserID:    userID,
		Lines:     strings.Split(text, "\n"),
		Text:      text,
		Final:     final,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// Sink renders caption updates. Implementations may be slow or fail; the
// caller does not retry. Show must return promptly once ctx is canceled;
// a session being stopped waits only a bounded time before abandoning it.
type Sink interface {
	Show(ctx context.Context, u Update) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, u Update) error

// Show calls f.
func (f SinkFunc) Show(ctx context.Context, u Update) error { return f(ctx, u) }
