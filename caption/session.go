package caption

import (
	"context"
	"sync"
	"time"

	"github.com/kbukum/captionkit/display"
	"github.com/kbukum/captionkit/errors"
	"github.com/kbukum/captionkit/history"
	"github.com/kbukum/captionkit/logger"
	"github.com/kbukum/captionkit/observability"
	"github.com/kbukum/captionkit/segment"
	"github.com/kbukum/captionkit/settings"
	"github.com/kbukum/captionkit/transcription"
	"github.com/kbukum/captionkit/wrap"
)

// State is the coarse state of a session's display.
type State int

const (
	// Idle means no history, no partial and a blank display.
	Idle State = iota
	// Active means the display carries content.
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// View is a read-only copy of a session's state.
type View struct {
	SessionID string            `json:"session_id"`
	UserID    string            `json:"user_id"`
	State     State             `json:"state"`
	Lines     []string          `json:"lines"`
	History   []string          `json:"history"`
	Partial   string            `json:"partial"`
	Settings  settings.Settings `json:"settings"`
}

// sessionDeps are the collaborators a Registry shares with its sessions.
type sessionDeps struct {
	cfg        *Config
	sink       display.Sink
	segmenters *segment.Registry
	cleaner    *display.Cleaner
	log        *logger.Logger
	metrics    *observability.Metrics
}

// Session is one caption stream. All methods are safe for concurrent use;
// events are applied in the order the calls acquire the session.
type Session struct {
	id     string
	userID string
	deps   sessionDeps
	log    *logger.Logger
	sched  *scheduler
	out    *outbox

	mu       sync.Mutex
	closed   bool
	settings settings.Settings
	wrapper  *wrap.Wrapper
	history  *history.History
	partial  string
	state    State
	lines    []string
	idle     *time.Timer
	idleGen  uint64
}

func newSession(id, userID string, snap settings.Snapshot, deps sessionDeps) *Session {
	s := &Session{
		id:     id,
		userID: userID,
		deps:   deps,
		log:    deps.log.ForSession(id, userID),
	}

	// Snapshot fields left empty fall back to the engine defaults.
	base, _ := settings.Resolve(deps.cfg.baseSnapshot(), settings.Settings{}, deps.segmenters)
	resolved, problems := settings.Resolve(snap, base, deps.segmenters)
	s.logProblems(problems)

	s.settings = resolved
	s.wrapper = wrap.New(resolved.MaxCharsPerLine, deps.segmenters.For(resolved.Language))
	s.history = history.New(resolved.HistoryCapacity)
	s.lines = display.Blank(resolved.MaxLines)
	s.out = newOutbox(deps.sink, deps.cfg.OutboxSize, s.log, deps.metrics)
	s.sched = newScheduler(deps.cfg.DebounceInterval, s.emit)
	return s
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// UserID returns the user the session belongs to.
func (s *Session) UserID() string { return s.userID }

// HandleTranscription applies one transcription event and resets the
// inactivity timer. Text is always segmented by the session's language; the
// event's own tag is informational.
func (s *Session) HandleTranscription(ev transcription.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.SessionClosed(s.id)
	}

	s.resetIdleLocked()

	text := ev.Trimmed()
	if ev.IsFinal {
		s.partial = ""
		s.history.Append(text)
		s.renderLocked(s.history.Combined(), true)
		return nil
	}

	s.partial = text
	s.renderLocked(joinText(s.history.Combined(), s.partial), false)
	return nil
}

// ApplySettings resolves snap on top of the current settings. A change of
// base language drops the history and blanks the display; anything else
// re-renders the history under the new layout. Either way the result is
// emitted as a final update.
func (s *Session) ApplySettings(snap settings.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.SessionClosed(s.id)
	}

	next, problems := settings.Resolve(snap, s.settings, s.deps.segmenters)
	s.logProblems(problems)

	languageChanged := s.settings.LanguageChanged(next)
	s.settings = next
	s.wrapper = wrap.New(next.MaxCharsPerLine, s.deps.segmenters.For(next.Language))
	s.history.SetCapacity(next.HistoryCapacity)
	s.deps.metrics.RecordSettingsChange(context.Background(), languageChanged)

	s.log.Info("caption settings applied", logger.Fields(
		logger.FieldLanguage, next.Language,
		"max_chars_per_line", next.MaxCharsPerLine,
		"max_lines", next.MaxLines,
		"history_capacity", next.HistoryCapacity,
		"language_changed", languageChanged,
	))

	if languageChanged {
		s.resetLocked()
		return nil
	}
	s.renderLocked(s.history.Combined(), true)
	return nil
}

// Clear drops history and the pending partial and blanks the display.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.SessionClosed(s.id)
	}
	s.stopIdleLocked()
	s.resetLocked()
	return nil
}

// View returns a copy of the session's current state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		SessionID: s.id,
		UserID:    s.userID,
		State:     s.state,
		Lines:     append([]string(nil), s.lines...),
		History:   s.history.Entries(),
		Partial:   s.partial,
		Settings:  s.settings,
	}
}

// Settings returns the resolved settings.
func (s *Session) Settings() settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Close cancels both timers, discards queued output and releases the
// session. It is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopIdleLocked()
	s.sched.stop()
	s.mu.Unlock()

	s.out.close()
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) renderLocked(text string, final bool) {
	s.lines = display.Fit(s.wrapper.Wrap(text), s.settings.MaxLines)
	if s.history.Len() > 0 || s.partial != "" {
		s.state = Active
	} else {
		s.state = Idle
	}
	s.sched.submit(frame{lines: s.lines, final: final})
}

// resetLocked moves the session to Idle and emits a blank display.
func (s *Session) resetLocked() {
	s.history.Clear()
	s.partial = ""
	s.renderLocked("", true)
}

// emit runs under the scheduler lock, from the caller or a trailing timer.
func (s *Session) emit(f frame) {
	cfg := s.deps.cfg
	s.out.push(display.NewUpdate(s.id, s.userID, f.lines, f.final, cfg.displayDuration(f.final), s.deps.cleaner))
}

func (s *Session) resetIdleLocked() {
	s.stopIdleLocked()
	gen := s.idleGen
	s.idle = time.AfterFunc(s.deps.cfg.InactivityDelay, func() { s.onIdle(gen) })
}

func (s *Session) stopIdleLocked() {
	if s.idle != nil {
		s.idle.Stop()
		s.idle = nil
	}
	s.idleGen++
}

// onIdle fires at most once per idle period: any event, Clear or Close
// bumps idleGen first.
func (s *Session) onIdle(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.idleGen {
		return
	}
	s.idle = nil
	s.idleGen++

	s.log.Debug("inactivity delay elapsed, clearing captions", logger.Fields(
		"history", s.history.Len(),
	))
	s.deps.metrics.RecordInactivityClear(context.Background())
	s.resetLocked()
}

func (s *Session) logProblems(problems []settings.Problem) {
	for _, p := range problems {
		s.log.Warn("malformed caption setting, using fallback", logger.Fields(
			"field", p.Field,
			logger.FieldReason, p.Message,
		))
	}
}

func joinText(committed, partial string) string {
	switch {
	case committed == "":
		return partial
	case partial == "":
		return committed
	default:
		return committed + " " + partial
	}
}
