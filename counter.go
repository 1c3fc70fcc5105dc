package fairq

import "sync/atomic"

// counter is a diagnostic counter that may be read outside the queue lock.
// All mutations happen under the lock, so reads are allowed to be slightly
// stale relative to an in-flight operation.
type counter uint64

func (c *counter) inc() {
	atomic.AddUint64((*uint64)(c), 1)
}

func (c *counter) dec() {
	atomic.AddUint64((*uint64)(c), ^uint64(0))
}

func (c *counter) get() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

func (c *counter) reset() {
	atomic.StoreUint64((*uint64)(c), 0)
}
