package registry

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInstanceExists indicates Create was called for a key that is already live.
var ErrInstanceExists = errors.New("instance already constructed for key")

// Multiton holds at most one instance of T per string key.
//
// Each key gets its own construction slot, so a slow factory for one key
// never blocks lookups or construction for another.
type Multiton[T any] struct {
	mu        sync.Mutex
	instances map[string]*instance[T]
}

// instance is a construction slot. done is closed once the factory has
// returned or panicked; ok reports which.
type instance[T any] struct {
	done  chan struct{}
	value T
	ok    bool
}

// NewMultiton creates an empty multiton.
func NewMultiton[T any]() *Multiton[T] {
	return &Multiton[T]{
		instances: make(map[string]*instance[T]),
	}
}

// slot returns the slot for key, adding an empty one if needed.
// created reports whether the slot was added by this call; that caller must
// construct it.
func (m *Multiton[T]) slot(key string) (inst *instance[T], created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inst, ok := m.instances[key]; ok {
		return inst, false
	}
	inst = &instance[T]{done: make(chan struct{})}
	m.instances[key] = inst
	return inst, true
}

// construct runs factory for a slot this goroutine created. If the factory
// panics the slot is dropped before the panic continues, so the key is free
// again and waiters retry.
func (m *Multiton[T]) construct(key string, inst *instance[T], factory func(key string) T) {
	defer func() {
		if !inst.ok {
			m.discard(key, inst)
		}
		close(inst.done)
	}()
	inst.value = factory(key)
	inst.ok = true
}

// discard removes inst if it is still the slot stored for key.
func (m *Multiton[T]) discard(key string, inst *instance[T]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.instances[key] == inst {
		delete(m.instances, key)
	}
}

// GetOrCreate returns the instance for key, calling factory(key) if none
// exists yet.
//
// The factory is called at most once per live key even under concurrent
// access; every caller for the same key observes the same instance. Callers
// racing on a key wait for the winning factory to return. If it panics, the
// panic propagates to the winner only and the waiters start over. The factory
// must not call GetOrCreate or Create on this multiton for the same key.
func (m *Multiton[T]) GetOrCreate(key string, factory func(key string) T) T {
	for {
		inst, created := m.slot(key)
		if created {
			m.construct(key, inst, factory)
			return inst.value
		}
		<-inst.done
		if inst.ok {
			return inst.value
		}
	}
}

// Create constructs the instance for key, failing with ErrInstanceExists if
// the key is already live or under construction. It is the fallible
// construction path for callers that must own a fresh instance.
func (m *Multiton[T]) Create(key string, factory func(key string) T) (T, error) {
	inst, created := m.slot(key)
	if !created {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrInstanceExists, key)
	}
	m.construct(key, inst, factory)
	return inst.value, nil
}

// Get returns the instance for key without creating one. It waits for an
// in-flight factory so callers never see a partial value.
func (m *Multiton[T]) Get(key string) (T, bool) {
	m.mu.Lock()
	inst, ok := m.instances[key]
	m.mu.Unlock()
	if !ok {
		var zero T
		return zero, false
	}
	<-inst.done
	if !inst.ok {
		var zero T
		return zero, false
	}
	return inst.value, true
}

// Has reports whether key is live.
func (m *Multiton[T]) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.instances[key]
	return ok
}

// Remove forgets the instance for key. No lifecycle hook is invoked on the
// removed instance; cleanup is the caller's job.
func (m *Multiton[T]) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.instances, key)
}

// Keys returns all live keys. The order is not guaranteed.
func (m *Multiton[T]) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.instances))
	for k := range m.instances {
		keys = append(keys, k)
	}
	return keys
}
