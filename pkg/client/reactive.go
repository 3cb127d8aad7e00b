package client

import "github.com/veltaweb/velta/pkg/reactive"

// Re-exports of the reactive primitives under the names the transpiler
// emits. Transpiled modules import only this package.

// Cleanup is an effect teardown function.
type Cleanup = reactive.Cleanup

// State creates a signal owned by the mounting component.
func State[T any](initial T) *reactive.Signal[T] {
	return reactive.NewSignal(initial)
}

// Effect registers a reactive side effect.
func Effect(fn func() Cleanup) *reactive.Effect {
	return reactive.CreateEffect(fn)
}

// OnCleanup registers an unmount cleanup.
func OnCleanup(fn func()) {
	reactive.OnCleanup(fn)
}

// DeriveFrom creates a lazily recomputed derived value.
func DeriveFrom[T any](fn func() T) *reactive.Derived[T] {
	return reactive.NewDerived(fn)
}

// OnMount runs fn once after the first render commit.
func OnMount(fn func()) {
	reactive.OnMount(fn)
}

// CSS registers a component-scoped stylesheet fragment.
func CSS(fragment string) {
	reactive.CSS(fragment)
}

// Batch groups signal writes into one notification flush.
func Batch(fn func()) {
	reactive.Batch(fn)
}

// Untracked runs fn without subscribing the current listener.
func Untracked(fn func()) {
	reactive.Untracked(fn)
}
