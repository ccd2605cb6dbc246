package core

import (
	"log/slog"
	"sync"

	"github.com/randalmurphal/multicore/pkg/multicore"
	"github.com/randalmurphal/multicore/pkg/multicore/observability"
	"github.com/randalmurphal/multicore/pkg/multicore/registry"
)

// Option configures a Kernel.
type Option func(*Kernel)

// WithLogger sets the logger. Each core logs through a child logger
// carrying its key. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(k *Kernel) {
		k.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Default: observability.NoopMetrics{}.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(k *Kernel) {
		if m != nil {
			k.metrics = m
		}
	}
}

// WithSpanManager sets the span manager. Default: observability.NoopSpanManager{}.
func WithSpanManager(s observability.SpanManager) Option {
	return func(k *Kernel) {
		if s != nil {
			k.spans = s
		}
	}
}

// Kernel owns the per-core Model, View and Controller instances.
//
// Each of the three is a keyed singleton: the first request for a key
// constructs it, later requests return the same instance. Construction is
// only reachable through the Kernel, so two instances can never exist for
// one key.
//
// RemoveCore is serialized against Model, View and Controller, so a caller
// never observes a core that is half removed.
type Kernel struct {
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager

	lifecycle sync.RWMutex

	models      *registry.Multiton[*Model]
	views       *registry.Multiton[*View]
	controllers *registry.Multiton[*Controller]
}

// NewKernel creates an empty kernel.
func NewKernel(opts ...Option) *Kernel {
	k := &Kernel{
		logger:      slog.Default(),
		metrics:     observability.NoopMetrics{},
		spans:       observability.NoopSpanManager{},
		models:      registry.NewMultiton[*Model](),
		views:       registry.NewMultiton[*View](),
		controllers: registry.NewMultiton[*Controller](),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Logger returns the kernel's base logger.
func (k *Kernel) Logger() *slog.Logger {
	return k.logger
}

// Model returns the Model for key, creating it on first use.
func (k *Kernel) Model(key multicore.Key) *Model {
	k.lifecycle.RLock()
	defer k.lifecycle.RUnlock()
	return k.model(key)
}

// View returns the View for key, creating it on first use.
func (k *Kernel) View(key multicore.Key) *View {
	k.lifecycle.RLock()
	defer k.lifecycle.RUnlock()
	return k.view(key)
}

// Controller returns the Controller for key, creating it on first use.
// Creating a controller also creates the View for the same key.
func (k *Kernel) Controller(key multicore.Key) *Controller {
	k.lifecycle.RLock()
	defer k.lifecycle.RUnlock()
	return k.controllers.GetOrCreate(key.Name(), func(string) *Controller {
		return newController(key, k.view(key), k)
	})
}

func (k *Kernel) model(key multicore.Key) *Model {
	return k.models.GetOrCreate(key.Name(), func(string) *Model {
		return newModel(key, k)
	})
}

func (k *Kernel) view(key multicore.Key) *View {
	return k.views.GetOrCreate(key.Name(), func(string) *View {
		return newView(key, k)
	})
}

// HasCore reports whether any registry exists for name.
func (k *Kernel) HasCore(name string) bool {
	k.lifecycle.RLock()
	defer k.lifecycle.RUnlock()
	return k.models.Has(name) || k.views.Has(name) || k.controllers.Has(name)
}

// RemoveCore drops the Model, View and Controller for name as one step.
// No lifecycle hooks run on the registered components. Instances already
// handed out keep working but are no longer reachable through the kernel.
func (k *Kernel) RemoveCore(name string) {
	k.lifecycle.Lock()
	defer k.lifecycle.Unlock()
	k.models.Remove(name)
	k.views.Remove(name)
	k.controllers.Remove(name)
}

// Cores lists the names that currently have a View.
func (k *Kernel) Cores() []string {
	return k.views.Keys()
}

func (k *Kernel) coreLogger(key multicore.Key) *slog.Logger {
	return observability.EnrichLogger(k.logger, key.Name())
}
