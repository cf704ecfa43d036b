package transcription

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/kbukum/captionkit/logger"
)

// maxLineBytes bounds a single JSON line.
const maxLineBytes = 1 << 20

// LineSource decodes one JSON Event per line from a reader. Blank lines are
// skipped and malformed lines are logged and dropped.
type LineSource struct {
	events chan Event

	mu  sync.Mutex
	err error
}

// NewLineSource starts decoding r. The source ends at EOF, on a read error
// or when ctx is done.
func NewLineSource(ctx context.Context, r io.Reader, log *logger.Logger) *LineSource {
	if log == nil {
		log = logger.Nop()
	}
	s := &LineSource{events: make(chan Event)}
	go s.run(ctx, r, log)
	return s
}

// Events implements Source.
func (s *LineSource) Events() <-chan Event { return s.events }

// Err returns the read error that ended the source, if any.
func (s *LineSource) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *LineSource) run(ctx context.Context, r io.Reader, log *logger.Logger) {
	defer close(s.events)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			log.Warn("skipping malformed transcription event", logger.Fields(
				"line", line,
				logger.FieldError, err.Error(),
			))
			continue
		}
		select {
		case s.events <- ev:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
	}
}
