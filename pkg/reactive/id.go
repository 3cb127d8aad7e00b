package reactive

import "sync/atomic"

var idCounter uint64

// nextID returns a process-unique, monotonically increasing ID for a
// reactive primitive.
func nextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}
