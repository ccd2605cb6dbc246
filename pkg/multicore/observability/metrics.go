package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Registration kinds and operations reported by RecordRegistration.
const (
	KindCommand  = "command"
	KindMediator = "mediator"
	KindProxy    = "proxy"

	OpRegister = "register"
	OpRemove   = "remove"
)

// MetricsRecorder records kernel metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordNotification records one dispatch and how many observers it reached.
	RecordNotification(ctx context.Context, core, name string, observers int, duration time.Duration)

	// RecordCommandExecution records one command execution.
	RecordCommandExecution(ctx context.Context, core, name string, duration time.Duration, panicked bool)

	// RecordRegistration records a register or remove of a command, mediator or proxy.
	RecordRegistration(ctx context.Context, core, kind, op string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	notifications     metric.Int64Counter
	notifyLatency     metric.Float64Histogram
	observersNotified metric.Int64Counter
	commandExecutions metric.Int64Counter
	commandLatency    metric.Float64Histogram
	commandPanics     metric.Int64Counter
	registrations     metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily creates the shared OTel instruments.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance from the global meter provider.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("multicore")

	notifications, err := meter.Int64Counter("multicore.notifications",
		metric.WithDescription("Number of notifications dispatched"),
	)
	if err != nil {
		return nil, err
	}

	notifyLatency, err := meter.Float64Histogram("multicore.notify.latency_ms",
		metric.WithDescription("Notification dispatch latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	observersNotified, err := meter.Int64Counter("multicore.observers.notified",
		metric.WithDescription("Number of observer callbacks invoked"),
	)
	if err != nil {
		return nil, err
	}

	commandExecutions, err := meter.Int64Counter("multicore.command.executions",
		metric.WithDescription("Number of command executions"),
	)
	if err != nil {
		return nil, err
	}

	commandLatency, err := meter.Float64Histogram("multicore.command.latency_ms",
		metric.WithDescription("Command execution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	commandPanics, err := meter.Int64Counter("multicore.command.panics",
		metric.WithDescription("Number of command executions that panicked"),
	)
	if err != nil {
		return nil, err
	}

	registrations, err := meter.Int64Counter("multicore.registrations",
		metric.WithDescription("Number of component registrations and removals"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		notifications:     notifications,
		notifyLatency:     notifyLatency,
		observersNotified: observersNotified,
		commandExecutions: commandExecutions,
		commandLatency:    commandLatency,
		commandPanics:     commandPanics,
		registrations:     registrations,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordNotification records a dispatch.
func (m *otelMetrics) RecordNotification(ctx context.Context, core, name string, observers int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("core", core),
		attribute.String("notification", name),
	)
	m.notifications.Add(ctx, 1, attrs)
	m.notifyLatency.Record(ctx, Milliseconds(duration), attrs)
	if observers > 0 {
		m.observersNotified.Add(ctx, int64(observers), attrs)
	}
}

// RecordCommandExecution records a command execution.
func (m *otelMetrics) RecordCommandExecution(ctx context.Context, core, name string, duration time.Duration, panicked bool) {
	attrs := metric.WithAttributes(
		attribute.String("core", core),
		attribute.String("notification", name),
	)
	m.commandExecutions.Add(ctx, 1, attrs)
	m.commandLatency.Record(ctx, Milliseconds(duration), attrs)
	if panicked {
		m.commandPanics.Add(ctx, 1, attrs)
	}
}

// RecordRegistration records a registry mutation.
func (m *otelMetrics) RecordRegistration(ctx context.Context, core, kind, op string) {
	m.registrations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("core", core),
		attribute.String("kind", kind),
		attribute.String("op", op),
	))
}
