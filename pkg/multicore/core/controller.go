package core

import (
	"context"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/randalmurphal/multicore/pkg/multicore"
	"github.com/randalmurphal/multicore/pkg/multicore/observability"
	"github.com/randalmurphal/multicore/pkg/multicore/registry"
)

// Controller maps notification names to command factories for one core.
//
// The controller observes each name it has a factory for through its View.
// When a matching notification arrives it creates a fresh command, binds it
// and executes it.
type Controller struct {
	key     multicore.Key
	view    *View
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager

	// mu serializes RegisterCommand and RemoveCommand so the view
	// subscription is added and dropped exactly once per name.
	mu       sync.Mutex
	commands *registry.Registry[string, multicore.CommandFactory]
	observer *multicore.Observer
}

func newController(key multicore.Key, view *View, k *Kernel) *Controller {
	c := &Controller{
		key:      key,
		view:     view,
		logger:   k.coreLogger(key),
		metrics:  k.metrics,
		spans:    k.spans,
		commands: registry.New[string, multicore.CommandFactory](),
	}
	c.observer = multicore.NewObserver(c.ExecuteCommand, c)
	return c
}

// Key returns the core this controller belongs to.
func (c *Controller) Key() multicore.Key {
	return c.key
}

// RegisterCommand maps name to factory, replacing any previous factory.
// The view subscription for name is created on the first registration only.
// A nil factory is ignored.
func (c *Controller) RegisterCommand(name string, factory multicore.CommandFactory) {
	if factory == nil {
		observability.LogNilFactory(c.logger, name)
		return
	}

	c.mu.Lock()
	replaced := c.commands.Has(name)
	if !replaced {
		c.view.RegisterObserver(name, c.observer)
	}
	c.commands.Register(name, factory)
	c.mu.Unlock()

	c.metrics.RecordRegistration(context.Background(), c.key.Name(), observability.KindCommand, observability.OpRegister)
	observability.LogCommandRegistered(c.logger, name, replaced)
}

// ExecuteCommand runs a fresh command for n if a factory is registered
// for its name. Unknown names are ignored.
//
// A panic inside the command is recorded and then re-raised unchanged.
func (c *Controller) ExecuteCommand(n *multicore.Notification) {
	if n == nil {
		return
	}
	factory, ok := c.commands.Get(n.Name())
	if !ok {
		return
	}

	ctx, span := c.spans.StartCommandSpan(n.Context(), c.key.Name(), n.Name())
	done := observability.TimedOperation()
	defer func() {
		if r := recover(); r != nil {
			perr := &multicore.PanicError{
				Core:         c.key.Name(),
				Notification: n.Name(),
				Value:        r,
				Stack:        string(debug.Stack()),
			}
			c.spans.EndSpanWithError(span, perr)
			c.metrics.RecordCommandExecution(ctx, c.key.Name(), n.Name(), done(), true)
			observability.LogCommandPanic(c.logger, n.Name(), perr)
			panic(r)
		}
	}()

	cmd := factory()
	cmd.Bind(c.key)
	cmd.Execute(n)

	elapsed := done()
	c.spans.EndSpanWithError(span, nil)
	c.metrics.RecordCommandExecution(ctx, c.key.Name(), n.Name(), elapsed, false)
	observability.LogCommandExecuted(c.logger, n.Name(), observability.Milliseconds(elapsed))
}

// RemoveCommand drops the factory for name and its view subscription.
// Unknown names are ignored.
func (c *Controller) RemoveCommand(name string) {
	c.mu.Lock()
	if !c.commands.Has(name) {
		c.mu.Unlock()
		return
	}
	c.view.RemoveObserver(name, c)
	c.commands.Delete(name)
	c.mu.Unlock()

	c.metrics.RecordRegistration(context.Background(), c.key.Name(), observability.KindCommand, observability.OpRemove)
	observability.LogCommandRemoved(c.logger, name)
}

// CommandNames lists the notification names with a registered factory, sorted.
func (c *Controller) CommandNames() []string {
	names := c.commands.Keys()
	slices.Sort(names)
	return names
}

// HasCommand reports whether a factory is registered for name.
func (c *Controller) HasCommand(name string) bool {
	return c.commands.Has(name)
}
