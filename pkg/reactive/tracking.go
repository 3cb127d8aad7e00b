package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for one goroutine: which
// owner adopts new primitives and which listener is collecting
// dependencies. Keeping it per goroutine lets concurrent component
// renders track independently.
type trackingContext struct {
	currentOwner    *Owner
	currentListener Listener

	// batchDepth > 0 means signal writes queue notifications instead of
	// firing them immediately.
	batchDepth     int
	pendingUpdates []Listener
}

var trackingContexts sync.Map

// goroutineID parses the current goroutine's ID out of the runtime
// stack header ("goroutine <id> ..."). Implementation detail only.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

func getTracking() *trackingContext {
	gid := goroutineID()
	if tc, ok := trackingContexts.Load(gid); ok {
		return tc.(*trackingContext)
	}
	tc := &trackingContext{}
	trackingContexts.Store(gid, tc)
	return tc
}

func currentListener() Listener {
	return getTracking().currentListener
}

// setListener installs l for dependency tracking and returns the
// previous listener so callers can restore it. Stack discipline here is
// what lets nested effects track correctly.
func setListener(l Listener) Listener {
	tc := getTracking()
	old := tc.currentListener
	tc.currentListener = l
	return old
}

func currentOwner() *Owner {
	return getTracking().currentOwner
}

func setOwner(o *Owner) *Owner {
	tc := getTracking()
	old := tc.currentOwner
	tc.currentOwner = o
	return old
}

// WithOwner runs fn with owner adopting any primitives fn creates.
// The previous owner is restored on exit.
func WithOwner(owner *Owner, fn func()) {
	old := setOwner(owner)
	defer setOwner(old)
	fn()
}

// Untracked runs fn without dependency tracking: signal reads inside do
// not subscribe the current listener.
func Untracked(fn func()) {
	old := setListener(nil)
	defer setListener(old)
	fn()
}
