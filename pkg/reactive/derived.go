package reactive

import (
	"sync"
	"sync/atomic"
)

// Derived is a read-only signal computed from other signals. While
// nothing subscribes to it, it is lazy: a dependency write only
// invalidates the cache and the next read recomputes. Once effects or
// other derived values subscribe, a dependency write recomputes
// immediately and notifies them only when the value actually changed,
// per the configured equality.
type Derived[T any] struct {
	base signalBase

	compute func() T

	value   T
	valueMu sync.RWMutex

	// valid is false until first read and after any dependency change.
	valid atomic.Bool

	sources   []*signalBase
	sourcesMu sync.Mutex

	// computing guards against recursive recomputation through a
	// dependency cycle.
	computing atomic.Bool

	equal func(T, T) bool
}

// NewDerived creates a derived value. compute does not run until the
// first Get.
func NewDerived[T any](compute func() T) *Derived[T] {
	return &Derived[T]{
		base:    signalBase{id: nextID()},
		compute: compute,
	}
}

// Get returns the derived value, recomputing only if a dependency
// changed since the last read, and subscribes the current listener.
func (d *Derived[T]) Get() T {
	if l := currentListener(); l != nil {
		d.base.subscribe(l)
		if src, ok := l.(sourceTracker); ok {
			src.addSource(&d.base)
		}
	}

	if !d.valid.Load() {
		d.recompute()
	}

	d.valueMu.RLock()
	value := d.value
	d.valueMu.RUnlock()
	return value
}

// Peek returns the value without subscribing. Still recomputes if the
// cache is invalid.
func (d *Derived[T]) Peek() T {
	if !d.valid.Load() {
		d.recompute()
	}
	d.valueMu.RLock()
	defer d.valueMu.RUnlock()
	return d.value
}

// MarkDirty invalidates the cache. With no downstream subscribers the
// recomputation waits for the next read; with subscribers it happens
// now, so an unchanged value does not fan out.
func (d *Derived[T]) MarkDirty() {
	if !d.valid.CompareAndSwap(true, false) {
		return
	}
	if !d.base.hasSubscribers() {
		return
	}

	d.valueMu.RLock()
	oldValue := d.value
	d.valueMu.RUnlock()

	d.recompute()

	d.valueMu.RLock()
	newValue := d.value
	d.valueMu.RUnlock()

	if !d.equals(oldValue, newValue) {
		d.base.notifySubscribers()
	}
}

// ID implements Listener.
func (d *Derived[T]) ID() uint64 { return d.base.id }

// addSource implements sourceTracker.
func (d *Derived[T]) addSource(source *signalBase) {
	d.sourcesMu.Lock()
	defer d.sourcesMu.Unlock()

	for _, s := range d.sources {
		if s == source {
			return
		}
	}
	d.sources = append(d.sources, source)
}

// WithEquals configures a custom equality function, consulted when
// deciding whether a recomputed value must notify downstream.
func (d *Derived[T]) WithEquals(fn func(T, T) bool) *Derived[T] {
	d.equal = fn
	return d
}

func (d *Derived[T]) equals(a, b T) bool {
	if d.equal != nil {
		return d.equal(a, b)
	}
	return defaultEquals(a, b)
}

func (d *Derived[T]) recompute() {
	if d.computing.Swap(true) {
		return
	}
	defer d.computing.Store(false)

	d.sourcesMu.Lock()
	for _, source := range d.sources {
		source.unsubscribe(d)
	}
	d.sources = d.sources[:0]
	d.sourcesMu.Unlock()

	old := setListener(d)
	newValue := d.compute()
	setListener(old)

	d.valueMu.Lock()
	d.value = newValue
	d.valueMu.Unlock()

	d.valid.Store(true)
}
