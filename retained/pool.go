package retained

import "sync"

// ============================================================================
// Child Snapshot Pooling
// ============================================================================
//
// Handlers may add or remove controls while the tree is being walked: a
// button can remove itself from its panel inside its own click handler. Walks
// that call out to handlers therefore iterate over a snapshot of the child
// list instead of the live collection. The snapshots come from a pool since
// invalidation, drawing and hit testing take one per container per frame.
//
// Usage:
//   children := snapshotChildren(container)
//   defer releaseSnapshot(children)

var snapshotPool = sync.Pool{
	New: func() any {
		s := make([]Component, 0, 16)
		return &s
	},
}

// acquireSnapshot returns an empty slice with room for at least n controls.
// Caller must call releaseSnapshot when done.
func acquireSnapshot(n int) []Component {
	p := snapshotPool.Get().(*[]Component)
	if cap(*p) < n {
		snapshotPool.Put(p)
		return make([]Component, 0, n*2)
	}
	return (*p)[:0]
}

// releaseSnapshot returns a snapshot to the pool. The slice must not be used
// afterwards.
func releaseSnapshot(s []Component) {
	if s == nil {
		return
	}
	clear(s)
	// Large snapshots are left for the GC so the pool doesn't pin memory.
	if cap(s) <= 256 {
		s = s[:0]
		snapshotPool.Put(&s)
	}
}

// snapshotChildren copies every owned child of c, client children first and
// non-client children (scrollbars) after them. Leaves yield an empty slice.
func snapshotChildren(c Component) []Component {
	cont, ok := c.(childOwner)
	if !ok {
		return acquireSnapshot(0)
	}
	s := acquireSnapshot(cont.childCount())
	return cont.appendChildren(s)
}
