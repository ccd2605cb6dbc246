package core

import (
	"context"
	"log/slog"
	"slices"

	"github.com/randalmurphal/multicore/pkg/multicore"
	"github.com/randalmurphal/multicore/pkg/multicore/observability"
	"github.com/randalmurphal/multicore/pkg/multicore/registry"
)

// Model holds the registered proxies of one core.
type Model struct {
	key     multicore.Key
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	proxies *registry.Registry[string, multicore.Proxy]
}

func newModel(key multicore.Key, k *Kernel) *Model {
	return &Model{
		key:     key,
		logger:  k.coreLogger(key),
		metrics: k.metrics,
		proxies: registry.New[string, multicore.Proxy](),
	}
}

// Key returns the core this model belongs to.
func (m *Model) Key() multicore.Key {
	return m.key
}

// RegisterProxy binds proxy, stores it under its name and calls OnRegister.
// An existing proxy with the same name is replaced without hooks.
func (m *Model) RegisterProxy(proxy multicore.Proxy) {
	if proxy == nil {
		return
	}
	name := proxy.Name()
	proxy.Bind(m.key)
	m.proxies.Register(name, proxy)
	proxy.OnRegister()

	m.metrics.RecordRegistration(context.Background(), m.key.Name(), observability.KindProxy, observability.OpRegister)
	observability.LogProxyRegistered(m.logger, name)
}

// RetrieveProxy returns the proxy registered under name.
func (m *Model) RetrieveProxy(name string) (multicore.Proxy, bool) {
	return m.proxies.Get(name)
}

// HasProxy reports whether a proxy is registered under name.
func (m *Model) HasProxy(name string) bool {
	return m.proxies.Has(name)
}

// ProxyNames lists the registered proxy names, sorted.
func (m *Model) ProxyNames() []string {
	names := m.proxies.Keys()
	slices.Sort(names)
	return names
}

// RemoveProxy removes the named proxy and then calls its OnRemove.
func (m *Model) RemoveProxy(name string) (multicore.Proxy, bool) {
	proxy, ok := m.proxies.Delete(name)
	if !ok {
		return nil, false
	}
	proxy.OnRemove()

	m.metrics.RecordRegistration(context.Background(), m.key.Name(), observability.KindProxy, observability.OpRemove)
	observability.LogProxyRemoved(m.logger, name)
	return proxy, true
}
