package reactive

// Listener is anything notified when a dependency changes: effects and
// derived values implement it.
type Listener interface {
	// MarkDirty tells the listener a dependency changed. Effects re-run;
	// derived values invalidate their cache.
	MarkDirty()

	// ID returns a unique identifier, used to deduplicate batched
	// notifications.
	ID() uint64
}

// Cleanup is returned by an effect body. It runs before the effect's
// next re-run and once more when the effect is disposed.
type Cleanup func()
