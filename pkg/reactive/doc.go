// Package reactive is the signal runtime behind web components.
//
// A Signal holds a value and a subscriber list. Reading a signal inside
// an effect or derived computation subscribes that listener; writing a
// changed value notifies subscribers in registration order. Dependency
// sets are rebuilt on every run, so an effect tracks exactly what it
// read last time.
//
// Effect re-run scheduling: a write outside a batch re-runs dirty
// effects synchronously before Set returns. Inside Batch, notifications
// are queued, deduplicated, and flushed when the outermost batch exits.
//
// Owners scope primitive lifetimes to a component instance: disposing
// an owner disposes its effects, runs cleanups in reverse order, and
// recursively tears down child owners. A remounted component gets a
// fresh owner and a fresh primitive set.
package reactive
