package patterns

import (
	"sync"

	"github.com/randalmurphal/multicore/pkg/multicore"
)

// SimpleCommand is an embeddable base for commands. Its Execute does
// nothing; embedders provide their own.
//
//	type StartupCommand struct {
//	    patterns.SimpleCommand
//	}
//
//	func (c *StartupCommand) Execute(n *multicore.Notification) {
//	    c.Facade().RegisterProxy(NewSettingsProxy())
//	}
type SimpleCommand struct {
	multicore.Notifier
}

// Execute does nothing.
func (c *SimpleCommand) Execute(*multicore.Notification) {}

// MacroCommand runs a queue of sub-commands, one after another, for a
// single notification.
//
// Each sub-command is created fresh from its factory, bound to the macro's
// core and executed synchronously in the order it was added. The queue is
// consumed: a MacroCommand executes its sub-commands once. Build a new macro
// per dispatch from a CommandFactory:
//
//	f.RegisterCommand("STARTUP", func() multicore.Command {
//	    return patterns.NewMacroCommand(newPrepModel, newPrepView)
//	})
type MacroCommand struct {
	multicore.Notifier

	mu          sync.Mutex
	subCommands []multicore.CommandFactory
}

// NewMacroCommand creates a macro with the given sub-commands queued in order.
func NewMacroCommand(factories ...multicore.CommandFactory) *MacroCommand {
	m := &MacroCommand{}
	for _, f := range factories {
		m.AddSubCommand(f)
	}
	return m
}

// AddSubCommand appends a sub-command factory to the queue.
// Nil factories are ignored.
func (m *MacroCommand) AddSubCommand(factory multicore.CommandFactory) {
	if factory == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subCommands = append(m.subCommands, factory)
}

// Execute pops and runs sub-commands in FIFO order until the queue is empty.
// An empty macro does nothing.
func (m *MacroCommand) Execute(n *multicore.Notification) {
	key := m.Key()
	for {
		factory, ok := m.next()
		if !ok {
			return
		}
		cmd := factory()
		cmd.Bind(key)
		cmd.Execute(n)
	}
}

func (m *MacroCommand) next() (multicore.CommandFactory, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.subCommands) == 0 {
		return nil, false
	}
	factory := m.subCommands[0]
	m.subCommands[0] = nil
	m.subCommands = m.subCommands[1:]
	return factory, true
}

var (
	_ multicore.Command = (*SimpleCommand)(nil)
	_ multicore.Command = (*MacroCommand)(nil)
)
