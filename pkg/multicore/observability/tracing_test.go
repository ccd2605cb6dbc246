package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// setupTracingTest installs an in-memory span exporter.
func setupTracingTest(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("multicore")

	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		tracer = otel.Tracer("multicore")
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	})
	return exporter
}

func attrValue(attrs []attribute.KeyValue, key string) (string, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}

func TestStartNotifySpan(t *testing.T) {
	exporter := setupTracingTest(t)
	sm := NewSpanManager()

	ctx, span := sm.StartNotifySpan(context.Background(), "core-1", "LOAD", "id-1")
	require.NotNil(t, span)
	assert.True(t, trace.SpanFromContext(ctx).SpanContext().IsValid())
	sm.EndSpanWithError(span, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "multicore.notify", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)

	for key, want := range map[string]string{
		"core":              "core-1",
		"notification.name": "LOAD",
		"notification.id":   "id-1",
	} {
		got, ok := attrValue(spans[0].Attributes, key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

func TestStartCommandSpan_NestsUnderParent(t *testing.T) {
	exporter := setupTracingTest(t)
	sm := NewSpanManager()

	ctx, parent := sm.StartNotifySpan(context.Background(), "core-1", "SAVE", "id-2")
	_, child := sm.StartCommandSpan(ctx, "core-1", "SAVE")
	sm.EndSpanWithError(child, nil)
	sm.EndSpanWithError(parent, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "multicore.command", spans[0].Name)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
}

func TestEndSpanWithError(t *testing.T) {
	exporter := setupTracingTest(t)
	sm := NewSpanManager()

	_, span := sm.StartCommandSpan(context.Background(), "core-1", "FAIL")
	sm.EndSpanWithError(span, errors.New("boom"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "boom", spans[0].Status.Description)
	require.NotEmpty(t, spans[0].Events)
	assert.Equal(t, "exception", spans[0].Events[0].Name)

	assert.NotPanics(t, func() { sm.EndSpanWithError(nil, nil) })
}

func TestNoopSpanManager(t *testing.T) {
	exporter := setupTracingTest(t)
	var sm SpanManager = NoopSpanManager{}

	ctx := context.Background()
	got, span := sm.StartNotifySpan(ctx, "c", "n", "id")
	assert.Equal(t, ctx, got)
	sm.EndSpanWithError(span, errors.New("ignored"))

	_, span = sm.StartCommandSpan(ctx, "c", "n")
	sm.EndSpanWithError(span, nil)

	assert.Empty(t, exporter.GetSpans())
}
