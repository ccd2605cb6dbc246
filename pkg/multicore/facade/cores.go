package facade

import (
	"fmt"
	"log/slog"

	"github.com/randalmurphal/multicore/pkg/multicore/core"
	"github.com/randalmurphal/multicore/pkg/multicore/observability"
	"github.com/randalmurphal/multicore/pkg/multicore/registry"
)

// Cores owns every core of an application: one Facade per key, backed by
// a shared core.Kernel. It replaces process-wide singletons; pass it to
// whatever needs to look up a core by name.
type Cores struct {
	kernel  *core.Kernel
	facades *registry.Multiton[*Facade]
	logger  *slog.Logger
}

// New creates an empty set of cores. The options configure the kernel
// shared by all of them.
func New(opts ...core.Option) *Cores {
	kernel := core.NewKernel(opts...)
	return &Cores{
		kernel:  kernel,
		facades: registry.NewMultiton[*Facade](),
		logger:  kernel.Logger(),
	}
}

// Kernel returns the kernel backing the cores.
func (c *Cores) Kernel() *core.Kernel {
	return c.kernel
}

// Facade returns the facade for key, creating and initializing the core on
// first use. Options only apply when this call creates the core.
func (c *Cores) Facade(key string, opts ...Option) *Facade {
	return c.facades.GetOrCreate(key, func(name string) *Facade {
		return c.build(name, opts)
	})
}

// NewCore creates the core for key. It returns ErrCoreExists if the core
// is already live.
func (c *Cores) NewCore(key string, opts ...Option) (*Facade, error) {
	f, err := c.facades.Create(key, func(name string) *Facade {
		return c.build(name, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrCoreExists, key)
	}
	return f, nil
}

// Lookup returns the facade for key without creating it. If the core is
// still being initialized, Lookup waits for it.
func (c *Cores) Lookup(key string) (*Facade, bool) {
	return c.facades.Get(key)
}

// HasCore reports whether a core exists for key.
func (c *Cores) HasCore(key string) bool {
	return c.facades.Has(key)
}

// RemoveCore drops the core for key: its Model, View, Controller and
// Facade. Registered components get no OnRemove call. Facades already handed
// out keep working against the removed registries.
//
// Removal is not ordered against a concurrent Facade call for the same key;
// that call may return either the old facade or a fresh one.
func (c *Cores) RemoveCore(key string) {
	if !c.facades.Has(key) && !c.kernel.HasCore(key) {
		return
	}
	c.kernel.RemoveCore(key)
	c.facades.Remove(key)
	observability.LogCoreRemoved(c.logger, key)
}

// Keys lists the live core keys in no particular order.
func (c *Cores) Keys() []string {
	return c.facades.Keys()
}

func (c *Cores) build(name string, opts []Option) *Facade {
	var o facadeOptions
	for _, opt := range opts {
		opt(&o)
	}

	// A panicking initializer leaves no registries behind for name, so the
	// next Facade call starts from scratch.
	initialized := false
	defer func() {
		if !initialized {
			c.kernel.RemoveCore(name)
		}
	}()

	f := newFacade(name, c.kernel)
	for _, initialize := range o.initializers {
		initialize(f)
	}
	initialized = true

	observability.LogCoreCreated(c.logger, name)
	return f
}
