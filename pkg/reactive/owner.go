package reactive

import (
	"sync"
	"sync/atomic"
)

// Owner is a component instance scope. Signals and effects created
// while an owner is current belong to it; disposing the owner disposes
// them. Owners nest the way component trees nest.
type Owner struct {
	id uint64

	parent     *Owner
	children   []*Owner
	childrenMu sync.Mutex

	effects   []*Effect
	effectsMu sync.Mutex

	cleanups   []func()
	cleanupsMu sync.Mutex

	// mountFns run once after the first render commit.
	mountFns []func()
	mounted  bool
	mountMu  sync.Mutex

	// styles are component-scoped CSS fragments, accumulated in call
	// order.
	styles   []string
	stylesMu sync.Mutex

	disposed atomic.Bool
}

// NewOwner creates an owner under parent. A nil parent makes a root.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// ID returns the owner's unique identifier.
func (o *Owner) ID() uint64 { return o.id }

// Parent returns the parent owner, nil for a root.
func (o *Owner) Parent() *Owner { return o.parent }

// IsDisposed reports whether Dispose has run.
func (o *Owner) IsDisposed() bool { return o.disposed.Load() }

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

func (o *Owner) registerEffect(e *Effect) {
	if o.disposed.Load() {
		return
	}
	o.effectsMu.Lock()
	defer o.effectsMu.Unlock()
	o.effects = append(o.effects, e)
}

// OnCleanup registers a function to run when this owner is disposed.
// On an already-disposed owner it runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}
	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

func (o *Owner) onMount(fn func()) {
	o.mountMu.Lock()
	alreadyMounted := o.mounted
	if !alreadyMounted {
		o.mountFns = append(o.mountFns, fn)
	}
	o.mountMu.Unlock()

	if alreadyMounted {
		fn()
	}
}

// Mount commits the first render: mount callbacks run once, in
// registration order. Later calls are no-ops; a remount means a new
// owner and a fresh primitive set.
func (o *Owner) Mount() {
	o.mountMu.Lock()
	if o.mounted {
		o.mountMu.Unlock()
		return
	}
	o.mounted = true
	fns := o.mountFns
	o.mountFns = nil
	o.mountMu.Unlock()

	for _, fn := range fns {
		fn()
	}

	o.childrenMu.Lock()
	children := append([]*Owner(nil), o.children...)
	o.childrenMu.Unlock()
	for _, child := range children {
		child.Mount()
	}
}

// addStyle appends a component-scoped CSS fragment.
func (o *Owner) addStyle(css string) {
	o.stylesMu.Lock()
	defer o.stylesMu.Unlock()
	o.styles = append(o.styles, css)
}

// Styles returns the accumulated CSS fragments of this owner and its
// children, depth-first in creation order.
func (o *Owner) Styles() []string {
	o.stylesMu.Lock()
	out := append([]string(nil), o.styles...)
	o.stylesMu.Unlock()

	o.childrenMu.Lock()
	children := append([]*Owner(nil), o.children...)
	o.childrenMu.Unlock()

	for _, child := range children {
		out = append(out, child.Styles()...)
	}
	return out
}

// Dispose tears down the owner: children in reverse creation order,
// then effects, then cleanups last-registered-first. Idempotent.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := append([]*Owner(nil), o.children...)
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.effectsMu.Lock()
	effects := o.effects
	o.effects = nil
	o.effectsMu.Unlock()

	for _, e := range effects {
		e.dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
