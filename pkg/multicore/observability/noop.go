package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordNotification does nothing.
func (NoopMetrics) RecordNotification(_ context.Context, _, _ string, _ int, _ time.Duration) {}

// RecordCommandExecution does nothing.
func (NoopMetrics) RecordCommandExecution(_ context.Context, _, _ string, _ time.Duration, _ bool) {}

// RecordRegistration does nothing.
func (NoopMetrics) RecordRegistration(_ context.Context, _, _, _ string) {}

// NoopSpanManager is a SpanManager that does nothing.
type NoopSpanManager struct{}

// Compile-time interface check.
var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartNotifySpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartNotifySpan(ctx context.Context, _, _, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// StartCommandSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartCommandSpan(ctx context.Context, _, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}
