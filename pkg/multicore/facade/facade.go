package facade

import (
	"context"

	"github.com/randalmurphal/multicore/pkg/multicore"
	"github.com/randalmurphal/multicore/pkg/multicore/core"
)

// Facade is the single entry point to one core. It forwards to the core's
// Model, Controller and View.
type Facade struct {
	key        multicore.Key
	model      *core.Model
	controller *core.Controller
	view       *core.View
}

// Compile-time interface check.
var _ multicore.Facade = (*Facade)(nil)

// newFacade wires the registries for name in Model, Controller, View order.
func newFacade(name string, kernel *core.Kernel) *Facade {
	f := &Facade{}
	f.key = multicore.NewKey(name, f)
	f.model = kernel.Model(f.key)
	f.controller = kernel.Controller(f.key)
	f.view = kernel.View(f.key)
	return f
}

// Key returns the core key.
func (f *Facade) Key() string {
	return f.key.Name()
}

// Handle returns the binding handed to the core's components.
func (f *Facade) Handle() multicore.Key {
	return f.key
}

// RegisterCommand maps a notification name to a command factory.
func (f *Facade) RegisterCommand(name string, factory multicore.CommandFactory) {
	f.controller.RegisterCommand(name, factory)
}

// RemoveCommand drops the command factory for name.
func (f *Facade) RemoveCommand(name string) {
	f.controller.RemoveCommand(name)
}

// HasCommand reports whether a command is registered for name.
func (f *Facade) HasCommand(name string) bool {
	return f.controller.HasCommand(name)
}

// CommandNames lists the notification names with a registered command, sorted.
func (f *Facade) CommandNames() []string {
	return f.controller.CommandNames()
}

// RegisterProxy registers proxy under its name.
func (f *Facade) RegisterProxy(proxy multicore.Proxy) {
	f.model.RegisterProxy(proxy)
}

// RetrieveProxy returns the proxy registered under name.
func (f *Facade) RetrieveProxy(name string) (multicore.Proxy, bool) {
	return f.model.RetrieveProxy(name)
}

// RemoveProxy removes the proxy registered under name.
func (f *Facade) RemoveProxy(name string) (multicore.Proxy, bool) {
	return f.model.RemoveProxy(name)
}

// HasProxy reports whether a proxy is registered under name.
func (f *Facade) HasProxy(name string) bool {
	return f.model.HasProxy(name)
}

// ProxyNames lists the registered proxy names, sorted.
func (f *Facade) ProxyNames() []string {
	return f.model.ProxyNames()
}

// RegisterMediator registers mediator unless one with its name exists.
func (f *Facade) RegisterMediator(mediator multicore.Mediator) {
	f.view.RegisterMediator(mediator)
}

// RetrieveMediator returns the mediator registered under name.
func (f *Facade) RetrieveMediator(name string) (multicore.Mediator, bool) {
	return f.view.RetrieveMediator(name)
}

// RemoveMediator removes the mediator registered under name.
func (f *Facade) RemoveMediator(name string) (multicore.Mediator, bool) {
	return f.view.RemoveMediator(name)
}

// HasMediator reports whether a mediator is registered under name.
func (f *Facade) HasMediator(name string) bool {
	return f.view.HasMediator(name)
}

// MediatorNames lists the registered mediator names, sorted.
func (f *Facade) MediatorNames() []string {
	return f.view.MediatorNames()
}

// SendNotification publishes a new notification. body may be nil and typ
// may be empty.
func (f *Facade) SendNotification(name string, body any, typ string) {
	f.NotifyObservers(multicore.NewNotification(name, body, typ))
}

// SendNotificationContext publishes a new notification carrying ctx, so
// dispatch and command spans join the caller's trace.
func (f *Facade) SendNotificationContext(ctx context.Context, name string, body any, typ string) {
	f.NotifyObservers(multicore.NewNotificationContext(ctx, name, body, typ))
}

// NotifyObservers publishes n to the core's observers.
func (f *Facade) NotifyObservers(n *multicore.Notification) {
	f.view.NotifyObservers(n)
}
