package multicore

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// Command handles one notification. The controller creates a fresh command
// for every dispatch, binds it, and calls Execute exactly once.
type Command interface {
	Bind(key Key)
	Execute(n *Notification)
}

// CommandFactory produces a new command instance.
type CommandFactory func() Command

// Mediator is a named component that observes a fixed set of notifications.
type Mediator interface {
	Bind(key Key)

	// Name returns the registration name.
	Name() string

	// Interests lists the notification names to observe, in order.
	// It is read once at registration and once at removal.
	Interests() []string

	// HandleNotification is called for each notification in Interests.
	HandleNotification(n *Notification)

	// OnRegister is called after the mediator is registered.
	OnRegister()

	// OnRemove is called after the mediator is removed.
	OnRemove()
}

// Proxy is a named data holder. The kernel never reads its data.
type Proxy interface {
	Bind(key Key)

	// Name returns the registration name.
	Name() string

	// OnRegister is called after the proxy is stored.
	OnRegister()

	// OnRemove is called after the proxy is removed from the store.
	OnRemove()
}

// Facade is the per-core API that bound components talk to.
type Facade interface {
	// Key returns the core's key.
	Key() string

	RegisterCommand(name string, factory CommandFactory)
	RemoveCommand(name string)
	HasCommand(name string) bool

	RegisterProxy(proxy Proxy)
	RetrieveProxy(name string) (Proxy, bool)
	RemoveProxy(name string) (Proxy, bool)
	HasProxy(name string) bool

	RegisterMediator(mediator Mediator)
	RetrieveMediator(name string) (Mediator, bool)
	RemoveMediator(name string) (Mediator, bool)
	HasMediator(name string) bool

	// SendNotification creates a notification and dispatches it.
	SendNotification(name string, body any, typ string)

	// NotifyObservers dispatches an existing notification.
	NotifyObservers(n *Notification)
}
