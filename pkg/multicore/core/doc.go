// Package core implements the per-core registries: View (observers and
// mediators), Controller (command factories) and Model (proxies).
//
// A Kernel owns one instance of each per core key. Most applications use
// package facade instead of this package directly.
//
//	k := core.NewKernel(core.WithLogger(logger))
//	key := multicore.NewKey("core-1", f)
//	k.Controller(key).RegisterCommand("LOAD", newLoadCommand)
//	k.View(key).NotifyObservers(multicore.NewNotification("LOAD", nil, ""))
//
// All methods are safe for concurrent use.
package core
