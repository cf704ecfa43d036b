package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/captionkit/logger"
)

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config TelemetryConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the caption engine's instruments. A nil *Metrics records nothing.
type Metrics struct {
	updatesEmitted   metric.Int64Counter
	updatesDropped   metric.Int64Counter
	sinkErrors       metric.Int64Counter
	sessionsActive   metric.Int64UpDownCounter
	inactivityClears metric.Int64Counter
	settingsChanges  metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	updatesEmitted, err := meter.Int64Counter("caption.updates.emitted",
		metric.WithDescription("Display updates handed to the sink"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating caption.updates.emitted counter: %w", err)
	}

	updatesDropped, err := meter.Int64Counter("caption.updates.dropped",
		metric.WithDescription("Display updates dropped because the sink fell behind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating caption.updates.dropped counter: %w", err)
	}

	sinkErrors, err := meter.Int64Counter("caption.sink.errors",
		metric.WithDescription("Display updates the sink failed to show"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating caption.sink.errors counter: %w", err)
	}

	sessionsActive, err := meter.Int64UpDownCounter("caption.sessions.active",
		metric.WithDescription("Number of live caption sessions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating caption.sessions.active gauge: %w", err)
	}

	inactivityClears, err := meter.Int64Counter("caption.inactivity.clears",
		metric.WithDescription("Sessions blanked after the inactivity delay"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating caption.inactivity.clears counter: %w", err)
	}

	settingsChanges, err := meter.Int64Counter("caption.settings.changes",
		metric.WithDescription("Settings changes applied to sessions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating caption.settings.changes counter: %w", err)
	}

	return &Metrics{
		updatesEmitted:   updatesEmitted,
		updatesDropped:   updatesDropped,
		sinkErrors:       sinkErrors,
		sessionsActive:   sessionsActive,
		inactivityClears: inactivityClears,
		settingsChanges:  settingsChanges,
	}, nil
}

// RecordUpdate counts an emitted update.
func (m *Metrics) RecordUpdate(ctx context.Context, final bool) {
	if m == nil {
		return
	}
	m.updatesEmitted.Add(ctx, 1, metric.WithAttributes(attribute.Bool("final", final)))
}

// RecordDropped counts an update dropped from a full outbox.
func (m *Metrics) RecordDropped(ctx context.Context) {
	if m == nil {
		return
	}
	m.updatesDropped.Add(ctx, 1)
}

// RecordSinkError counts a failed Show call.
func (m *Metrics) RecordSinkError(ctx context.Context) {
	if m == nil {
		return
	}
	m.sinkErrors.Add(ctx, 1)
}

// SessionStarted increments the live session count.
func (m *Metrics) SessionStarted(ctx context.Context) {
	if m == nil {
		return
	}
	m.sessionsActive.Add(ctx, 1)
}

// SessionStopped decrements the live session count.
func (m *Metrics) SessionStopped(ctx context.Context) {
	if m == nil {
		return
	}
	m.sessionsActive.Add(ctx, -1)
}

// RecordInactivityClear counts an idle blanking.
func (m *Metrics) RecordInactivityClear(ctx context.Context) {
	if m == nil {
		return
	}
	m.inactivityClears.Add(ctx, 1)
}

// RecordSettingsChange counts an applied settings change.
func (m *Metrics) RecordSettingsChange(ctx context.Context, languageChanged bool) {
	if m == nil {
		return
	}
	m.settingsChanges.Add(ctx, 1, metric.WithAttributes(attribute.Bool("language_changed", languageChanged)))
}
