/*
Package multicore provides a multi-instance Model-View-Controller notification
kernel.

# Overview

An application is split into independent cores, each identified by a string
key. Every core owns:

  - a View that maps notification names to ordered observer lists and holds
    the registered mediators
  - a Controller that maps notification names to command factories
  - a Model that holds the registered proxies

Components never reference each other directly. They publish named
notifications through their core's Facade and react to the notifications
they observe.

This package holds the dispatch primitives and contracts shared by the rest
of the module:

  - Notification: immutable (name, body, type) envelope
  - Observer: callback plus identity context
  - Notifier: embeddable base that receives a core binding (Key)
  - Command, Mediator, Proxy, Facade: the component contracts

The registries live in package core, the per-core API in package facade and
embeddable base types in package patterns.

# Basic Usage

	cores := facade.New()
	f := cores.Facade("core-1")

	f.RegisterCommand("LOAD", func() multicore.Command { return &LoadCommand{} })
	f.SendNotification("LOAD", map[string]int{"id": 42}, "")

# Binding

Commands, mediators and proxies are bound to their core before any hook
runs. A Notifier used before binding panics with *UnboundError rather than
publishing into some default core:

	var n multicore.Notifier
	n.SendNotification("X", nil, "") // panics: multicore: SendNotification: not bound to a core

# Dispatch

Publishing is synchronous. Observers run on the caller's goroutine in
registration order, over a snapshot of the observer list taken when the
publish starts. Observers may register or remove observers (including
themselves) during dispatch; the change applies to the next publish.
*/
package multicore
