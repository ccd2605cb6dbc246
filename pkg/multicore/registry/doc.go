// Package registry provides the thread-safe keyed stores the kernel is built on.
//
// # Registry
//
// Registry is a generic map guarded by sync.RWMutex, tuned for read-heavy use.
// Each core keeps one for mediators, one for proxies and one for command
// factories:
//
//	proxies := registry.New[string, multicore.Proxy]()
//	proxies.Register("user", userProxy)
//
//	p, ok := proxies.Get("user")
//
// RegisterIfAbsent gives insert-if-missing semantics in a single critical
// section, which is what idempotent mediator registration needs:
//
//	if !mediators.RegisterIfAbsent(m.Name(), m) {
//	    return // already registered, ignore
//	}
//
// Delete returns the removed value, so only one of several concurrent
// removers gets to run the removal hook. DeleteIf removes only a specific
// value, so a stale remover cannot drop a newer entry stored under the same
// key:
//
//	mediators.DeleteIf(name, func(v Mediator) bool { return v == m })
//
// # Multiton
//
// Multiton keeps at most one instance per string key. It is the lifecycle
// manager behind every per-core component (Model, View, Controller, Facade):
//
//	views := registry.NewMultiton[*View]()
//	v := views.GetOrCreate("core-1", newView)
//
// GetOrCreate calls the factory at most once per live key, even under
// concurrent first use. Construction slots are per key, so factories for
// different keys run in parallel. A factory that panics leaves nothing
// behind: the panic reaches its caller, and the next GetOrCreate for the key
// runs a factory again.
//
// Create is the fallible variant for callers that must construct a fresh
// instance:
//
//	f, err := facades.Create("core-1", newFacade)
//	if errors.Is(err, registry.ErrInstanceExists) {
//	    // "core-1" is already live
//	}
//
// Remove drops an instance without invoking anything on it.
package registry
