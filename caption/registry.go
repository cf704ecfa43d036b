package caption

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/kbukum/captionkit/component"
	"github.com/kbukum/captionkit/display"
	"github.com/kbukum/captionkit/errors"
	"github.com/kbukum/captionkit/logger"
	"github.com/kbukum/captionkit/observability"
	"github.com/kbukum/captionkit/segment"
	"github.com/kbukum/captionkit/settings"
	"github.com/kbukum/captionkit/transcription"
)

// Registry owns the live sessions of a process, keyed by session id.
// Sessions are created by StartSession and destroyed by StopSession; there
// is no other way in or out.
type Registry struct {
	cfg  Config
	deps sessionDeps
	log  *logger.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// Option configures a Registry.
type Option func(*Registry)

// WithSegmenters replaces segment.DefaultRegistry.
func WithSegmenters(r *segment.Registry) Option {
	return func(reg *Registry) {
		if r != nil {
			reg.deps.segmenters = r
		}
	}
}

// WithLogger sets the logger sessions derive from.
func WithLogger(l *logger.Logger) Option {
	return func(reg *Registry) {
		if l != nil {
			reg.log = l
		}
	}
}

// WithMetrics records caption metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(reg *Registry) { reg.deps.metrics = m }
}

// NewRegistry creates a registry rendering to sink.
func NewRegistry(cfg Config, sink display.Sink, opts ...Option) (*Registry, error) {
	if sink == nil {
		return nil, errors.InvalidInput("sink", "is required")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{
		cfg:      cfg,
		log:      logger.GetGlobalLogger(),
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.deps.segmenters == nil {
		r.deps.segmenters = segment.DefaultRegistry()
	}
	r.log = r.log.WithComponent("captions")
	r.deps.cfg = &r.cfg
	r.deps.sink = sink
	r.deps.cleaner = display.NewCleaner(cfg.LeadingPunctuation)
	r.deps.log = r.log
	return r, nil
}

// StartSession creates the session for id. An existing session with the
// same id is torn down first.
func (r *Registry) StartSession(ctx context.Context, id, userID string, snap settings.Snapshot) (*Session, error) {
	if id == "" {
		return nil, errors.InvalidInput("session_id", "is required")
	}
	_, span := observability.StartSpan(ctx, "caption.session.start",
		attribute.String(observability.AttrSessionID, id),
		attribute.String(observability.AttrUserID, userID),
	)
	defer span.End()

	s := newSession(id, userID, snap, r.deps)

	r.mu.Lock()
	old := r.sessions[id]
	r.sessions[id] = s
	r.mu.Unlock()

	if old != nil {
		old.Close()
		r.deps.metrics.SessionStopped(ctx)
		r.log.Info("caption session restarted", logger.Fields(
			logger.FieldSessionID, id,
			logger.FieldUserID, userID,
		))
	}
	r.deps.metrics.SessionStarted(ctx)

	lang := s.Settings().Language
	span.SetAttributes(attribute.String(observability.AttrLanguage, lang))
	r.log.Info("caption session started", logger.Fields(
		logger.FieldSessionID, id,
		logger.FieldUserID, userID,
		logger.FieldLanguage, lang,
	))
	return s, nil
}

// StopSession tears down the session for id. Stopping an unknown session is
// a no-op; a userID that does not own the session is a conflict. An empty
// userID matches any owner.
func (r *Registry) StopSession(ctx context.Context, id, userID, reason string) error {
	_, span := observability.StartSpan(ctx, "caption.session.stop",
		attribute.String(observability.AttrSessionID, id),
		attribute.String(observability.AttrUserID, userID),
		attribute.String(observability.AttrReason, reason),
	)
	defer span.End()

	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		r.log.Debug("stop for unknown caption session", logger.Fields(
			logger.FieldSessionID, id,
			logger.FieldReason, reason,
		))
		return nil
	}
	if userID != "" && s.userID != userID {
		r.mu.Unlock()
		err := errors.Conflict(fmt.Sprintf("session %s belongs to another user", id))
		span.SetStatus(codes.Error, err.Message)
		return err
	}
	delete(r.sessions, id)
	r.mu.Unlock()

	s.Close()
	r.deps.metrics.SessionStopped(ctx)
	r.log.Info("caption session stopped", logger.Fields(
		logger.FieldSessionID, id,
		logger.FieldUserID, s.userID,
		logger.FieldReason, reason,
	))
	return nil
}

// Session looks up a live session.
func (r *Registry) Session(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// HandleTranscription routes ev to the session for id.
func (r *Registry) HandleTranscription(id string, ev transcription.Event) error {
	s, err := r.lookup(id)
	if err != nil {
		return err
	}
	return s.HandleTranscription(ev)
}

// ApplySettings routes a settings change to the session for id.
func (r *Registry) ApplySettings(id string, snap settings.Snapshot) error {
	s, err := r.lookup(id)
	if err != nil {
		return err
	}
	return s.ApplySettings(snap)
}

// Consume feeds src into the session for id until src is exhausted, ctx is
// done or the session goes away.
func (r *Registry) Consume(ctx context.Context, id string, src transcription.Source) error {
	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := r.HandleTranscription(id, ev); err != nil {
				return err
			}
		}
	}
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// IDs returns the live session ids, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registry) lookup(id string) (*Session, error) {
	s, ok := r.Session(id)
	if !ok {
		return nil, errors.NotFound("caption session", id)
	}
	return s, nil
}

// Name implements component.Component.
func (r *Registry) Name() string { return "captions" }

// Start implements component.Component.
func (r *Registry) Start(ctx context.Context) error {
	r.log.Debug("caption registry ready", logger.Fields(
		"debounce", r.cfg.DebounceInterval.String(),
		"inactivity", r.cfg.InactivityDelay.String(),
		"languages", r.deps.segmenters.Languages(),
	))
	return nil
}

// Stop tears down every session.
func (r *Registry) Stop(ctx context.Context) error {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
		r.deps.metrics.SessionStopped(ctx)
	}
	if len(sessions) > 0 {
		r.log.Info("caption sessions closed", logger.Fields("count", len(sessions)))
	}
	return nil
}

// Health implements component.Component.
func (r *Registry) Health(ctx context.Context) component.Health {
	return component.Health{
		Name:    r.Name(),
		Status:  component.StatusHealthy,
		Message: fmt.Sprintf("%d sessions", r.Len()),
	}
}

// Describe implements component.Describable.
func (r *Registry) Describe() component.Description {
	return component.Description{
		Name: "Caption engine",
		Type: "captions",
		Details: fmt.Sprintf("debounce=%s inactivity=%s width=%s lines=%d",
			r.cfg.DebounceInterval, r.cfg.InactivityDelay, r.cfg.DefaultLineWidth, r.cfg.DefaultLineCount),
	}
}
