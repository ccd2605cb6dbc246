package facade

// Option configures a Facade when its core is first created.
type Option func(*facadeOptions)

type facadeOptions struct {
	initializers []func(f *Facade)
}

// WithInitializer adds a hook that runs once, right after the core's Model,
// Controller and View exist. Hooks run in the order they were added and
// usually register the core's startup commands, proxies and mediators.
//
// A hook must not request its own core from the Cores that is creating it;
// it receives the Facade directly.
func WithInitializer(fn func(f *Facade)) Option {
	return func(o *facadeOptions) {
		if fn != nil {
			o.initializers = append(o.initializers, fn)
		}
	}
}
