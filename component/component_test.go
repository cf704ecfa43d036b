package component

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/kbukum/captionkit/logger"
)

// mockComponent implements Component for testing.
type mockComponent struct {
	name       string
	startErr   error
	stopErr    error
	health     Health
	startOrder *[]string
	stopOrder  *[]string
}

func (m *mockComponent) Name() string { return m.name }
func (m *mockComponent) Start(ctx context.Context) error {
	if m.startOrder != nil {
		*m.startOrder = append(*m.startOrder, m.name)
	}
	return m.startErr
}
func (m *mockComponent) Stop(ctx context.Context) error {
	if m.stopOrder != nil {
		*m.stopOrder = append(*m.stopOrder, m.name)
	}
	return m.stopErr
}
func (m *mockComponent) Health(ctx context.Context) Health {
	return m.health
}

func newTestRegistry() *Registry {
	return NewRegistry(WithLogger(logger.Nop()))
}

func TestNewRegistry(t *testing.T) {
	r := newTestRegistry()
	if r == nil {
		t.Fatal("expected non-nil registry")
	}
}

func TestRegister(t *testing.T) {
	r := newTestRegistry()
	c := &mockComponent{name: "telemetry", health: Health{Name: "telemetry", Status: StatusHealthy}}

	if err := r.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := newTestRegistry()
	c := &mockComponent{name: "telemetry"}
	r.Register(c)

	err := r.Register(&mockComponent{name: "telemetry"})
	if err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestGet(t *testing.T) {
	r := newTestRegistry()
	c := &mockComponent{name: "telemetry"}
	r.Register(c)

	got := r.Get("telemetry")
	if got == nil {
		t.Fatal("expected to get registered component")
	}
	if got.Name() != "telemetry" {
		t.Errorf("expected 'telemetry', got %q", got.Name())
	}
}

func TestGetNotFound(t *testing.T) {
	r := newTestRegistry()
	got := r.Get("missing")
	if got != nil {
		t.Error("expected nil for unregistered component")
	}
}

func TestStartAll(t *testing.T) {
	r := newTestRegistry()
	order := []string{}

	r.Register(&mockComponent{
		name: "telemetry", startOrder: &order,
		health: Health{Name: "telemetry", Status: StatusHealthy},
	})
	r.Register(&mockComponent{
		name: "captions", startOrder: &order,
		health: Health{Name: "captions", Status: StatusHealthy},
	})

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}

	if len(order) != 2 {
		t.Fatalf("expected 2 starts, got %d", len(order))
	}
	if order[0] != "telemetry" || order[1] != "captions" {
		t.Errorf("expected start order [telemetry, captions], got %v", order)
	}
}

func TestStartAllError(t *testing.T) {
	r := newTestRegistry()
	r.Register(&mockComponent{name: "telemetry", startErr: fmt.Errorf("exporter unreachable")})

	err := r.StartAll(context.Background())
	if err == nil {
		t.Error("expected error from StartAll")
	}
}

func TestStopAllReverseOrder(t *testing.T) {
	r := newTestRegistry()
	order := []string{}

	r.Register(&mockComponent{name: "telemetry", stopOrder: &order, health: Health{Name: "telemetry", Status: StatusHealthy}})
	r.Register(&mockComponent{name: "captions", stopOrder: &order, health: Health{Name: "captions", Status: StatusHealthy}})
	r.Register(&mockComponent{name: "sink", stopOrder: &order, health: Health{Name: "sink", Status: StatusHealthy}})

	r.StartAll(context.Background())
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}

	if len(order) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(order))
	}
	if order[0] != "sink" || order[1] != "captions" || order[2] != "telemetry" {
		t.Errorf("expected reverse stop order [sink, captions, telemetry], got %v", order)
	}
}

func TestStopAllSkipsUnstarted(t *testing.T) {
	r := newTestRegistry()
	order := []string{}
	r.Register(&mockComponent{name: "telemetry", stopOrder: &order})

		if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(order) != 0 {
		t.Errorf("expected 0 stops for unstarted components, got %d", len(order))
	}
}

func TestStopAllWithErrors(t *testing.T) {
	r := newTestRegistry()
	r.Register(&mockComponent{
		name: "telemetry", stopErr: fmt.Errorf("stop failed"),
		health: Health{Name: "telemetry", Status: StatusHealthy},
	})
	r.StartAll(context.Background())

	err := r.StopAll(context.Background())
	if err == nil {
		t.Error("expected error from StopAll")
	}
}

func TestHealthAll(t *testing.T) {
	r := newTestRegistry()
	r.Register(&mockComponent{
		name:   "telemetry",
		health: Health{Name: "telemetry", Status: StatusHealthy, Message: "connected"},
	})
	r.Register(&mockComponent{
		name:   "captions",
		health: Health{Name: "captions", Status: StatusUnhealthy, Message: "timeout"},
	})

	results := r.HealthAll(context.Background())
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Status != StatusHealthy {
		t.Errorf("expected telemetry healthy, got %s", results[0].Status)
	}
	if results[1].Status != StatusUnhealthy {
		t.Errorf("expected captions unhealthy, got %s", results[1].Status)
	}
}

func TestHealthStatusConstants(t *testing.T) {
	if StatusHealthy != "healthy" {
		t.Errorf("expected 'healthy', got %q", StatusHealthy)
	}
	if StatusUnhealthy != "unhealthy" {
		t.Errorf("expected 'unhealthy', got %q", StatusUnhealthy)
	}
	if StatusDegraded != "degraded" {
		t.Errorf("expected 'degraded', got %q", StatusDegraded)
	}
}

func TestStartAllRollsBackOnFailure(t *testing.T) {
	r := newTestRegistry()
	stops := []string{}

	r.Register(&mockComponent{name: "telemetry", stopOrder: &stops})
	r.Register(&mockComponent{name: "captions", stopOrder: &stops, startErr: fmt.Errorf("boom")})

	if err := r.StartAll(context.Background()); err == nil {
		t.Fatal("expected start error")
	}
	if len(stops) != 1 || stops[0] != "telemetry" {
		t.Errorf("expected telemetry to be stopped after failure, got %v", stops)
	}
}

type describedComponent struct {
	mockComponent
	desc Description
}

func (d *describedComponent) Describe() Description { return d.desc }

func TestDescribe(t *testing.T) {
	r := newTestRegistry()
	r.Register(&mockComponent{name: "plain"})
	r.Register(&describedComponent{
		mockComponent: mockComponent{name: "captions"},
		desc:          Description{Type: "captions", Details: "sessions=0"},
	})

	got := r.Describe()
	if len(got) != 2 {
		t.Fatalf("expected 2 descriptions, got %d", len(got))
	}
	if got[0].Name != "plain" || got[0].Type != "" {
		t.Errorf("unexpected plain description %+v", got[0])
	}
	if got[1].Name != "captions" || got[1].Details != "sessions=0" {
		t.Errorf("unexpected captions description %+v", got[1])
	}
}

func TestWithStopTimeout(t *testing.T) {
	r := NewRegistry(WithStopTimeout(0), WithLogger(logger.Nop()))
	if r.stopTimeout != DefaultStopTimeout {
		t.Errorf("zero timeout should keep default, got %v", r.stopTimeout)
	}
	r = NewRegistry(WithStopTimeout(time.Second), WithLogger(logger.Nop()))
	if r.stopTimeout != time.Second {
		t.Errorf("expected 1s, got %v", r.stopTimeout)
	}
}
