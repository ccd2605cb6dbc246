package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest installs a manual-reader meter provider and builds a fresh
// recorder against it.
func setupMetricsTest(t *testing.T) (*otelMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	original := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(original)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	})

	m, err := newOtelMetrics()
	require.NoError(t, err)
	return m, reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return &rm
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// sumValue totals every data point of an int64 counter.
func sumValue(t *testing.T, m *metricdata.Metrics) int64 {
	t.Helper()
	require.NotNil(t, m)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestNewMetricsRecorder(t *testing.T) {
	rec := NewMetricsRecorder()
	require.NotNil(t, rec)
	assert.Same(t, rec, NewMetricsRecorder(), "instruments are shared")
}

func TestRecordNotification(t *testing.T) {
	m, reader := setupMetricsTest(t)
	ctx := context.Background()

	m.RecordNotification(ctx, "core-1", "LOAD", 3, 2*time.Millisecond)
	m.RecordNotification(ctx, "core-1", "LOAD", 0, time.Millisecond)

	rm := collectMetrics(t, reader)
	assert.Equal(t, int64(2), sumValue(t, findMetric(rm, "multicore.notifications")))
	assert.Equal(t, int64(3), sumValue(t, findMetric(rm, "multicore.observers.notified")))

	latency := findMetric(rm, "multicore.notify.latency_ms")
	require.NotNil(t, latency)
	hist, ok := latency.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)

	core, ok := hist.DataPoints[0].Attributes.Value(attribute.Key("core"))
	require.True(t, ok)
	assert.Equal(t, "core-1", core.AsString())
}

func TestRecordCommandExecution(t *testing.T) {
	m, reader := setupMetricsTest(t)
	ctx := context.Background()

	m.RecordCommandExecution(ctx, "core-1", "SAVE", time.Millisecond, false)
	m.RecordCommandExecution(ctx, "core-1", "SAVE", time.Millisecond, true)

	rm := collectMetrics(t, reader)
	assert.Equal(t, int64(2), sumValue(t, findMetric(rm, "multicore.command.executions")))
	assert.Equal(t, int64(1), sumValue(t, findMetric(rm, "multicore.command.panics")))
	assert.NotNil(t, findMetric(rm, "multicore.command.latency_ms"))
}

func TestRecordRegistration(t *testing.T) {
	m, reader := setupMetricsTest(t)
	ctx := context.Background()

	m.RecordRegistration(ctx, "core-1", KindMediator, OpRegister)
	m.RecordRegistration(ctx, "core-1", KindMediator, OpRemove)
	m.RecordRegistration(ctx, "core-1", KindProxy, OpRegister)

	rm := collectMetrics(t, reader)
	reg := findMetric(rm, "multicore.registrations")
	assert.Equal(t, int64(3), sumValue(t, reg))

	sum := reg.Data.(metricdata.Sum[int64])
	assert.Len(t, sum.DataPoints, 3, "one series per kind/op pair")
}

func TestNoopMetrics(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordNotification(ctx, "c", "n", 1, time.Second)
		m.RecordCommandExecution(ctx, "c", "n", time.Second, true)
		m.RecordRegistration(ctx, "c", KindCommand, OpRemove)
	})
}
