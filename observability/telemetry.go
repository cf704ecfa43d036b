package observability

import (
	"context"
	"errors"
	"sync"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/captionkit/component"
)

// Telemetry is a lifecycle component owning the meter and tracer providers.
// When disabled it starts nothing and the global no-op providers stay in place.
type Telemetry struct {
	cfg TelemetryConfig

	mu sync.Mutex
	mp *sdkmetric.MeterProvider
	tp *sdktrace.TracerProvider
}

// NewTelemetry creates the component.
func NewTelemetry(cfg TelemetryConfig) *Telemetry {
	cfg.ApplyDefaults()
	return &Telemetry{cfg: cfg}
}

// Name implements component.Component.
func (t *Telemetry) Name() string { return "telemetry" }

// Start installs the OTLP providers when enabled.
func (t *Telemetry) Start(ctx context.Context) error {
	if !t.cfg.Enabled {
		return nil
	}
	mp, err := InitMeter(ctx, t.cfg)
	if err != nil {
		return err
	}
	tp, err := InitTracer(ctx, t.cfg)
	if err != nil {
		_ = mp.Shutdown(ctx)
		return err
	}

	t.mu.Lock()
	t.mp, t.tp = mp, tp
	t.mu.Unlock()
	return nil
}

// Stop flushes and shuts down the providers.
func (t *Telemetry) Stop(ctx context.Context) error {
	t.mu.Lock()
	mp, tp := t.mp, t.tp
	t.mp, t.tp = nil, nil
	t.mu.Unlock()

	var errs []error
	if tp != nil {
		errs = append(errs, tp.Shutdown(ctx))
	}
	if mp != nil {
		errs = append(errs, mp.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// Health implements component.Component.
func (t *Telemetry) Health(ctx context.Context) component.Health {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := component.Health{Name: t.Name(), Status: component.StatusHealthy}
	if !t.cfg.Enabled {
		h.Message = "disabled"
	} else if t.mp == nil {
		h.Status = component.StatusUnhealthy
		h.Message = "not started"
	}
	return h
}

// Describe implements component.Describable.
func (t *Telemetry) Describe() component.Description {
	details := "disabled"
	if t.cfg.Enabled {
		details = t.cfg.Endpoint
	}
	return component.Description{Name: "OpenTelemetry", Type: "telemetry", Details: details}
}
