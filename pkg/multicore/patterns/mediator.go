package patterns

import (
	"sync"

	"github.com/randalmurphal/multicore/pkg/multicore"
)

// DefaultMediatorName is used when NewMediator is given an empty name.
const DefaultMediatorName = "Mediator"

// Mediator is an embeddable base for mediators. It carries a name and a view
// component and has no interests. Embedders override Interests and
// HandleNotification:
//
//	type StatusBar struct {
//	    *patterns.Mediator
//	}
//
//	func (s *StatusBar) Interests() []string { return []string{"SAVED"} }
//
//	func (s *StatusBar) HandleNotification(n *multicore.Notification) {
//	    s.ViewComponent().(*Label).SetText("saved")
//	}
type Mediator struct {
	multicore.Notifier

	name string

	mu            sync.RWMutex
	viewComponent any
}

// NewMediator creates a mediator base.
func NewMediator(name string, viewComponent any) *Mediator {
	if name == "" {
		name = DefaultMediatorName
	}
	return &Mediator{name: name, viewComponent: viewComponent}
}

// Name returns the registration name.
func (m *Mediator) Name() string {
	return m.name
}

// ViewComponent returns the managed view component.
func (m *Mediator) ViewComponent() any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viewComponent
}

// SetViewComponent replaces the managed view component.
func (m *Mediator) SetViewComponent(viewComponent any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viewComponent = viewComponent
}

// Interests returns no names.
func (m *Mediator) Interests() []string {
	return nil
}

// HandleNotification does nothing.
func (m *Mediator) HandleNotification(*multicore.Notification) {}

// OnRegister does nothing.
func (m *Mediator) OnRegister() {}

// OnRemove does nothing.
func (m *Mediator) OnRemove() {}

var _ multicore.Mediator = (*Mediator)(nil)
