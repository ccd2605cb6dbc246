package multicore

import (
	"errors"
	"fmt"
)

// ErrUnbound indicates a component was used before being bound to a core.
var ErrUnbound = errors.New("not bound to a core")

// UnboundError is the panic value raised when a Notifier is used before Bind.
type UnboundError struct {
	// Op is the operation that was attempted (e.g., "SendNotification").
	Op string
}

// Error implements the error interface.
func (e *UnboundError) Error() string {
	return fmt.Sprintf("multicore: %s: %v", e.Op, ErrUnbound)
}

// Unwrap returns ErrUnbound for errors.Is support.
func (e *UnboundError) Unwrap() error {
	return ErrUnbound
}

// PanicError captures a panic raised while a command executed.
// It is recorded on spans and logs; the original panic value is re-raised.
type PanicError struct {
	// Core is the key of the core the command ran in.
	Core string
	// Notification is the name of the notification being handled.
	Notification string
	// Value is the value passed to panic().
	Value any
	// Stack is the stack trace at the point of panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("command for %s in core %s panicked: %v", e.Notification, e.Core, e.Value)
}

// Unwrap returns Value when the command panicked with an error, so
// errors.Is and errors.As see through the panic.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
