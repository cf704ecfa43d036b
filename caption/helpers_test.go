package caption

import (
	"context"
	"testing"
	"time"

	"github.com/kbukum/captionkit/display"
	"github.com/kbukum/captionkit/logger"
	"github.com/kbukum/captionkit/segment"
	"github.com/kbukum/captionkit/settings"
)

// recordingSink delivers every update on a buffered channel.
type recordingSink struct {
	updates chan display.Update
}

func newRecordingSink() *recordingSink {
	return &recordingSink{updates: make(chan display.Update, 64)}
}

func (r *recordingSink) Show(ctx context.Context, u display.Update) error {
	select {
	case r.updates <- u:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *recordingSink) next(t *testing.T) display.Update {
	t.Helper()
	select {
	case u := <-r.updates:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a caption update")
		return display.Update{}
	}
}

func (r *recordingSink) expectNone(t *testing.T, d time.Duration) {
	t.Helper()
	select {
	case u := <-r.updates:
		t.Fatalf("unexpected update %q (final=%v)", u.Lines, u.Final)
	case <-time.After(d):
	}
}

func testConfig() Config {
	return Config{
		DebounceInterval: 100 * time.Millisecond,
		InactivityDelay:  time.Minute,
		DefaultLanguage:  "en-US",
	}
}

// testSegmenters has a tiny Chinese dictionary so tests do not load gse.
func testSegmenters() *segment.Registry {
	r := segment.NewRegistry()
	r.Register("zh", segment.NewDictionary(segment.NewMaxMatch("你好", "世界")))
	return r
}

func newTestRegistry(t *testing.T, cfg Config) (*Registry, *recordingSink) {
	t.Helper()
	sink := newRecordingSink()
	reg, err := NewRegistry(cfg, sink, WithLogger(logger.Nop()), WithSegmenters(testSegmenters()))
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	t.Cleanup(func() { _ = reg.Stop(context.Background()) })
	return reg, sink
}

func startSession(t *testing.T, reg *Registry, snap settings.Snapshot) *Session {
	t.Helper()
	s, err := reg.StartSession(context.Background(), "s1", "u1", snap)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return s
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
