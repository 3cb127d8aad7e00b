package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect is a reactive side effect. It runs once at creation and again
// whenever a signal read during its most recent run changes. The body
// may return a Cleanup, which runs before every re-run and once when
// the effect is disposed.
type Effect struct {
	id uint64

	fn      func() Cleanup
	cleanup Cleanup

	// sources are the signals read during the last run. Rebuilt from
	// scratch every run (dynamic dependency tracking).
	sources   []*signalBase
	sourcesMu sync.Mutex

	owner *Owner

	pending  atomic.Bool
	disposed atomic.Bool
}

// CreateEffect registers and immediately runs an effect under the
// current owner. The first run is the component-mount run.
func CreateEffect(fn func() Cleanup) *Effect {
	e := &Effect{
		id:    nextID(),
		fn:    fn,
		owner: currentOwner(),
	}

	if e.owner != nil {
		e.owner.registerEffect(e)
	}

	e.run()
	return e
}

// MarkDirty re-runs the effect. Outside a batch this is synchronous;
// inside a batch the signal queues the notification and the flush calls
// MarkDirty once per listener.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}
	if e.pending.CompareAndSwap(false, true) {
		e.run()
	}
}

// ID implements Listener.
func (e *Effect) ID() uint64 { return e.id }

// run executes the effect body: previous cleanup first, then old
// subscriptions dropped, then the body under dependency tracking.
// Cleanup-before-rerun is the invariant callers rely on to release
// resources before new ones are attached.
func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}

	e.pending.Store(false)

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
	e.sourcesMu.Unlock()

	old := setListener(e)
	e.cleanup = e.fn()
	setListener(old)
}

// addSource implements sourceTracker.
func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

// dispose runs the final cleanup and unsubscribes from all sources.
// Idempotent.
func (e *Effect) dispose() {
	if e.disposed.Swap(true) {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = nil
	e.sourcesMu.Unlock()
}

// OnMount registers fn to run exactly once after the owning component's
// first render commit. Outside an owner, fn runs immediately.
func OnMount(fn func()) {
	owner := currentOwner()
	if owner == nil {
		fn()
		return
	}
	owner.onMount(fn)
}

// OnCleanup registers fn to run when the owning component unmounts.
// Outside an owner, fn is dropped: there is nothing to unmount.
func OnCleanup(fn func()) {
	if owner := currentOwner(); owner != nil {
		owner.OnCleanup(fn)
	}
}
