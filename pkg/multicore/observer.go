package multicore

// NotifyFunc receives a notification.
type NotifyFunc func(n *Notification)

// Observer pairs a callback with a context used only as an identity token.
//
// The context is never invoked. Two observers are the same subscription for
// removal purposes when their contexts are identical (==), so the context
// should be a pointer or another comparable value that outlives the
// subscription. Mediators register themselves; controllers register
// themselves once per notification name.
type Observer struct {
	notify  NotifyFunc
	context any
}

// NewObserver creates an observer.
func NewObserver(notify NotifyFunc, context any) *Observer {
	return &Observer{
		notify:  notify,
		context: context,
	}
}

// NotifyObserver invokes the callback with n.
func (o *Observer) NotifyObserver(n *Notification) {
	o.notify(n)
}

// CompareNotifyContext reports whether context is identical to the
// observer's context.
func (o *Observer) CompareNotifyContext(context any) bool {
	return o.context == context
}

// NotifyContext returns the identity token.
func (o *Observer) NotifyContext() any {
	return o.context
}
