/*
Package facade is the application-facing API of the kernel.

A Cores value holds every core of an application. Each core is reached
through its Facade, which forwards to the core's Model, Controller and View
and publishes notifications:

	cores := facade.New(core.WithLogger(logger))

	f := cores.Facade("shell", facade.WithInitializer(func(f *facade.Facade) {
	    f.RegisterCommand("STARTUP", newStartupCommand)
	    f.RegisterProxy(newSettingsProxy())
	}))
	f.SendNotification("STARTUP", nil, "")

Use NewCore instead of Facade when creating a core twice is a bug:

	if _, err := cores.NewCore("shell"); errors.Is(err, facade.ErrCoreExists) {
	    // ...
	}

Cores are fully isolated from each other. RemoveCore discards a core
without running any component's OnRemove hook.
*/
package facade
