package reactive

// Batch groups signal writes. Notifications queue until the outermost
// batch exits, then fire once per listener regardless of how many
// dependencies changed.
//
//	reactive.Batch(func() {
//	    first.Set("John")
//	    last.Set("Doe")
//	})
//	// dependents re-run once
//
// Batches nest; only the outermost exit flushes.
func Batch(fn func()) {
	tc := getTracking()
	tc.batchDepth++

	defer func() {
		tc.batchDepth--
		if tc.batchDepth == 0 {
			flushPending(tc)
		}
	}()

	fn()
}

// flushPending deduplicates queued listeners by ID and notifies them in
// first-queued order.
func flushPending(tc *trackingContext) {
	updates := tc.pendingUpdates
	tc.pendingUpdates = nil
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	for _, l := range updates {
		if seen[l.ID()] {
			continue
		}
		seen[l.ID()] = true
		l.MarkDirty()
	}
}
