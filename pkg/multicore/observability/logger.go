// Package observability provides logging, metrics, and tracing for the
// multicore kernel.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds the core key to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "core-1")
//	enriched.Info("ready") // includes core=core-1
func EnrichLogger(logger *slog.Logger, core string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("core", core))
}

// LogNotify logs a completed notification dispatch.
func LogNotify(logger *slog.Logger, name, id string, observers int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("notification dispatched",
		slog.String("notification", name),
		slog.String("notification_id", id),
		slog.Int("observers", observers),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCommandExecuted logs a completed command execution.
func LogCommandExecuted(logger *slog.Logger, name string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("command executed",
		slog.String("notification", name),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCommandPanic logs a command that panicked. The panic is re-raised by
// the caller.
func LogCommandPanic(logger *slog.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Error("command panicked",
		slog.String("notification", name),
		slog.String("error", err.Error()),
	)
}

// LogCommandRegistered logs a command factory registration.
// replaced is true when an existing factory was swapped out.
func LogCommandRegistered(logger *slog.Logger, name string, replaced bool) {
	if logger == nil {
		return
	}
	logger.Debug("command registered",
		slog.String("notification", name),
		slog.Bool("replaced", replaced),
	)
}

// LogNilFactory logs an ignored nil command factory.
func LogNilFactory(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Warn("nil command factory ignored",
		slog.String("notification", name),
	)
}

// LogCommandRemoved logs a command removal.
func LogCommandRemoved(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Debug("command removed",
		slog.String("notification", name),
	)
}

// LogMediatorRegistered logs a mediator registration.
func LogMediatorRegistered(logger *slog.Logger, name string, interests int) {
	if logger == nil {
		return
	}
	logger.Debug("mediator registered",
		slog.String("mediator", name),
		slog.Int("interests", interests),
	)
}

// LogMediatorDuplicate logs an ignored re-registration.
func LogMediatorDuplicate(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Debug("mediator already registered, ignoring",
		slog.String("mediator", name),
	)
}

// LogMediatorRemoved logs a mediator removal.
func LogMediatorRemoved(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Debug("mediator removed",
		slog.String("mediator", name),
	)
}

// LogProxyRegistered logs a proxy registration.
func LogProxyRegistered(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Debug("proxy registered",
		slog.String("proxy", name),
	)
}

// LogProxyRemoved logs a proxy removal.
func LogProxyRemoved(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Debug("proxy removed",
		slog.String("proxy", name),
	)
}

// LogCoreCreated logs the construction of a core.
func LogCoreCreated(logger *slog.Logger, core string) {
	if logger == nil {
		return
	}
	logger.Info("core created",
		slog.String("core", core),
	)
}

// LogCoreRemoved logs the removal of a core.
func LogCoreRemoved(logger *slog.Logger, core string) {
	if logger == nil {
		return
	}
	logger.Info("core removed",
		slog.String("core", core),
	)
}

// TimedOperation measures the duration of an operation.
// The returned function reports the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds for log fields.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
