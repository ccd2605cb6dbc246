package multicore

import "sync"

// Key is a handle to one core: its name plus the facade serving it.
// The zero Key is unbound.
type Key struct {
	name   string
	facade Facade
}

// NewKey creates a handle for the named core.
func NewKey(name string, facade Facade) Key {
	return Key{name: name, facade: facade}
}

// Name returns the core's key string.
func (k Key) Name() string {
	return k.name
}

// Facade returns the facade for the core, or nil for the zero Key.
func (k Key) Facade() Facade {
	return k.facade
}

// IsBound reports whether k refers to a core.
func (k Key) IsBound() bool {
	return k.facade != nil
}

// Notifier is embedded by commands, mediators and proxies to receive their
// core binding and send notifications through it.
//
//	type LoadCommand struct {
//	    multicore.Notifier
//	}
//
//	func (c *LoadCommand) Execute(n *multicore.Notification) {
//	    c.SendNotification("LOADED", n.Body(), "")
//	}
type Notifier struct {
	mu  sync.RWMutex
	key Key
}

// Bind attaches the notifier to a core. The kernel calls it before any hook.
func (n *Notifier) Bind(key Key) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.key = key
}

// Key returns the current binding. It is the zero Key before Bind.
func (n *Notifier) Key() Key {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.key
}

// Facade returns the facade of the bound core.
// It panics with *UnboundError if Bind has not been called.
func (n *Notifier) Facade() Facade {
	key := n.Key()
	if !key.IsBound() {
		panic(&UnboundError{Op: "Facade"})
	}
	return key.facade
}

// SendNotification publishes a notification on the bound core.
// It panics with *UnboundError if Bind has not been called.
func (n *Notifier) SendNotification(name string, body any, typ string) {
	key := n.Key()
	if !key.IsBound() {
		panic(&UnboundError{Op: "SendNotification"})
	}
	key.facade.SendNotification(name, body, typ)
}
