// Package observability wires OpenTelemetry metrics and tracing for the
// caption engine.
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, cfg)
//	defer mp.Shutdown(ctx)
//	metrics, err := observability.NewMetrics(observability.Meter("captionkit"))
//	metrics.RecordUpdate(ctx, true)
//
// Tracing:
//
//	ctx, span := observability.StartSpan(ctx, "caption.session.start")
//	defer span.End()
//
// A nil *Metrics is valid and records nothing, so the engine runs without a
// configured exporter.
package observability
