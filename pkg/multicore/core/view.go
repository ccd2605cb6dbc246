package core

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/randalmurphal/multicore/pkg/multicore"
	"github.com/randalmurphal/multicore/pkg/multicore/observability"
	"github.com/randalmurphal/multicore/pkg/multicore/registry"
)

// View maps notification names to ordered observer lists and holds the
// registered mediators of one core.
type View struct {
	key     multicore.Key
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager

	mu        sync.RWMutex
	observers map[string][]*multicore.Observer

	mediators *registry.Registry[string, multicore.Mediator]
}

func newView(key multicore.Key, k *Kernel) *View {
	return &View{
		key:       key,
		logger:    k.coreLogger(key),
		metrics:   k.metrics,
		spans:     k.spans,
		observers: make(map[string][]*multicore.Observer),
		mediators: registry.New[string, multicore.Mediator](),
	}
}

// Key returns the core this view belongs to.
func (v *View) Key() multicore.Key {
	return v.key
}

// RegisterObserver appends observer to the list for name.
func (v *View) RegisterObserver(name string, observer *multicore.Observer) {
	if observer == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.observers[name] = append(v.observers[name], observer)
}

// Observers returns a copy of the observer list for name, in registration
// order. Changes to the view after the call do not affect the copy.
func (v *View) Observers(name string) []*multicore.Observer {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.observers[name])
}

// HasObservers reports whether any observer is registered for name.
func (v *View) HasObservers(name string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.observers[name]) > 0
}

// NotifyObservers delivers n to every observer registered for its name.
//
// The observer list is copied before the first callback runs. Observers
// added or removed during dispatch take effect on the next call. A panic in
// an observer stops the dispatch and propagates to the caller.
func (v *View) NotifyObservers(n *multicore.Notification) {
	if n == nil {
		return
	}
	snapshot := v.Observers(n.Name())

	ctx, span := v.spans.StartNotifySpan(n.Context(), v.key.Name(), n.Name(), n.ID())
	done := observability.TimedOperation()
	defer func() {
		if r := recover(); r != nil {
			v.spans.EndSpanWithError(span, fmt.Errorf("notify %s: observer panicked: %v", n.Name(), r))
			panic(r)
		}
	}()

	for _, o := range snapshot {
		o.NotifyObserver(n)
	}

	elapsed := done()
	v.spans.EndSpanWithError(span, nil)
	v.metrics.RecordNotification(ctx, v.key.Name(), n.Name(), len(snapshot), elapsed)
	observability.LogNotify(v.logger, n.Name(), n.ID(), len(snapshot), observability.Milliseconds(elapsed))
}

// RemoveObserver removes the observer for name whose context is
// notifyContext. An emptied list is dropped. Unknown names and contexts are
// ignored.
func (v *View) RemoveObserver(name string, notifyContext any) {
	v.mu.Lock()
	defer v.mu.Unlock()

	list, ok := v.observers[name]
	if !ok {
		return
	}
	i := slices.IndexFunc(list, func(o *multicore.Observer) bool {
		return o.CompareNotifyContext(notifyContext)
	})
	if i < 0 {
		return
	}
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(v.observers, name)
		return
	}
	v.observers[name] = list
}

// RegisterMediator binds and stores mediator, subscribes it to its
// interests and calls OnRegister. A mediator whose name is already
// registered is ignored.
//
// The mediator itself is the observer context, so it must be comparable
// (normally a pointer).
func (v *View) RegisterMediator(mediator multicore.Mediator) {
	if mediator == nil {
		return
	}
	name := mediator.Name()
	if v.mediators.Has(name) {
		observability.LogMediatorDuplicate(v.logger, name)
		return
	}

	mediator.Bind(v.key)
	if !v.mediators.RegisterIfAbsent(name, mediator) {
		observability.LogMediatorDuplicate(v.logger, name)
		return
	}

	interests := mediator.Interests()
	if len(interests) > 0 {
		observer := multicore.NewObserver(mediator.HandleNotification, mediator)
		for _, interest := range interests {
			v.RegisterObserver(interest, observer)
		}
	}

	mediator.OnRegister()

	v.metrics.RecordRegistration(context.Background(), v.key.Name(), observability.KindMediator, observability.OpRegister)
	observability.LogMediatorRegistered(v.logger, name, len(interests))
}

// RetrieveMediator returns the mediator registered under name.
func (v *View) RetrieveMediator(name string) (multicore.Mediator, bool) {
	return v.mediators.Get(name)
}

// HasMediator reports whether a mediator is registered under name.
func (v *View) HasMediator(name string) bool {
	return v.mediators.Has(name)
}

// MediatorNames lists the registered mediator names, sorted.
func (v *View) MediatorNames() []string {
	names := v.mediators.Keys()
	slices.Sort(names)
	return names
}

// RemoveMediator unsubscribes the named mediator from its interests,
// removes it and calls OnRemove. It returns the removed mediator.
// When several callers remove the same mediator concurrently, exactly one
// of them gets it back and runs OnRemove.
func (v *View) RemoveMediator(name string) (multicore.Mediator, bool) {
	mediator, ok := v.mediators.Get(name)
	if !ok {
		return nil, false
	}

	for _, interest := range mediator.Interests() {
		v.RemoveObserver(interest, mediator)
	}

	// Only delete the mediator whose interests were just dropped. A newer
	// registration under the same name is left alone.
	removed, ok := v.mediators.DeleteIf(name, func(current multicore.Mediator) bool {
		return current == mediator
	})
	if !ok {
		return nil, false
	}
	removed.OnRemove()

	v.metrics.RecordRegistration(context.Background(), v.key.Name(), observability.KindMediator, observability.OpRemove)
	observability.LogMediatorRemoved(v.logger, name)
	return removed, true
}
