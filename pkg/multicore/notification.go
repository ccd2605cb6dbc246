package multicore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Notification is a named event published to the observers of one core.
// It is immutable once created and is passed by pointer through dispatch.
type Notification struct {
	id   string
	name string
	body any
	typ  string
	ctx  context.Context
}

// NewNotification creates a notification. body and typ are optional;
// pass nil and "" to omit them.
func NewNotification(name string, body any, typ string) *Notification {
	return NewNotificationContext(context.Background(), name, body, typ)
}

// NewNotificationContext creates a notification carrying ctx. The context is
// used for trace propagation only; dispatch is never cancelled by it.
func NewNotificationContext(ctx context.Context, name string, body any, typ string) *Notification {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Notification{
		id:   uuid.New().String(),
		name: name,
		body: body,
		typ:  typ,
		ctx:  ctx,
	}
}

// ID returns a unique identifier used to correlate logs and spans.
func (n *Notification) ID() string {
	return n.id
}

// Name returns the notification name observers are registered under.
func (n *Notification) Name() string {
	return n.name
}

// Body returns the payload, or nil.
func (n *Notification) Body() any {
	return n.body
}

// Type returns the optional type discriminator, or "".
func (n *Notification) Type() string {
	return n.typ
}

// Context returns the context the notification was sent with.
func (n *Notification) Context() context.Context {
	return n.ctx
}

// String implements fmt.Stringer.
func (n *Notification) String() string {
	body := "<nil>"
	if n.body != nil {
		body = fmt.Sprint(n.body)
	}
	typ := "<none>"
	if n.typ != "" {
		typ = n.typ
	}
	return fmt.Sprintf("Notification Name: %s\nBody: %s\nType: %s", n.name, body, typ)
}
