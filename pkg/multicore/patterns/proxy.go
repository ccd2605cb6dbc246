package patterns

import (
	"sync"

	"github.com/randalmurphal/multicore/pkg/multicore"
)

// DefaultProxyName is used when NewProxy is given an empty name.
const DefaultProxyName = "Proxy"

// Proxy is an embeddable base for proxies: a named holder for one data value.
type Proxy struct {
	multicore.Notifier

	name string

	mu   sync.RWMutex
	data any
}

// NewProxy creates a proxy base.
func NewProxy(name string, data any) *Proxy {
	if name == "" {
		name = DefaultProxyName
	}
	return &Proxy{name: name, data: data}
}

// Name returns the registration name.
func (p *Proxy) Name() string {
	return p.name
}

// Data returns the held value.
func (p *Proxy) Data() any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data
}

// SetData replaces the held value.
func (p *Proxy) SetData(data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = data
}

// OnRegister does nothing.
func (p *Proxy) OnRegister() {}

// OnRemove does nothing.
func (p *Proxy) OnRemove() {}

var _ multicore.Proxy = (*Proxy)(nil)
