package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("multicore")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartNotifySpan starts a span covering one notification dispatch.
	StartNotifySpan(ctx context.Context, core, name, id string) (context.Context, trace.Span)

	// StartCommandSpan starts a span covering one command execution.
	StartCommandSpan(ctx context.Context, core, name string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartNotifySpan starts a dispatch span.
func (m *otelSpanManager) StartNotifySpan(ctx context.Context, core, name, id string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "multicore.notify",
		trace.WithAttributes(
			attribute.String("core", core),
			attribute.String("notification.name", name),
			attribute.String("notification.id", id),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartCommandSpan starts a command span.
func (m *otelSpanManager) StartCommandSpan(ctx context.Context, core, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "multicore.command",
		trace.WithAttributes(
			attribute.String("core", core),
			attribute.String("notification.name", name),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
