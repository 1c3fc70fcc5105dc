package fairq

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Status represents queue status.
type Status uint32

const (
	StatusNil Status = iota
	StatusFail
	StatusActive
	StatusClosed
)

// Queue is a fair blocking FIFO queue.
//
// Producers hand payloads over with Enqueue, consumers take them back in
// arrival order with Dequeue or TryDequeue. Dequeue blocks while no item is
// admissible; parked consumers are stored in arrival order and each new item
// wakes only the longest waiting one, so park order equals serve order even
// when consumers outnumber items. Close discards pending items and unparks
// every blocked consumer with ErrQueueClosed.
//
// One mutex covers both the item registry and the waiter registry: the
// admission rule reads both, so finer locking would break their shared
// invariants.
type Queue struct {
	config *Config

	status Status
	mux    sync.Mutex
	items  itemring
	wlist  waitlist

	// enq doubles as the next sequence number: an item gets the total of
	// ever enqueued items as its sequence.
	enq  counter
	vstd counter
	size counter
	wcnt counter

	once sync.Once

	Err error
}

// New makes new queue instance and initialize it according config params.
func New(config *Config) *Queue {
	q := &Queue{config: config}
	q.once.Do(q.init)
	return q
}

func (q *Queue) init() {
	if q.config == nil {
		q.config = &Config{}
	}
	// Copy config to protect queue from changing params after start.
	q.config = q.config.Copy()
	c := q.config

	if len(c.Key) == 0 {
		c.Key = uuid.New().String()
	}
	if c.MetricsWriter == nil {
		c.MetricsWriter = DummyMetrics{}
	}
	if c.Clock == nil {
		c.Clock = nativeClock{}
	}

	if q.l() != nil {
		q.l().Printf("queue #%s init\n", q.k())
	}
	q.setStatus(StatusActive)
}

// Enqueue puts item to the queue.
//
// Never blocks and never rejects a payload, nil included. If consumers are
// parked, exactly the longest waiting one gets a wake signal; no broadcast.
func (q *Queue) Enqueue(x any) error {
	if q.getStatus() == StatusNil {
		q.once.Do(q.init)
	}
	q.mux.Lock()
	if q.getStatus() != StatusActive {
		q.mux.Unlock()
		return ErrQueueClosed
	}
	q.items.push(item{payload: x, seq: q.enq.get()})
	q.enq.inc()
	q.size.inc()
	if w := q.wlist.first(); w != nil {
		w.wake()
		q.m().WaiterWake(q.k())
	}
	q.mux.Unlock()
	q.m().QueuePut(q.k())
	return nil
}

// Dequeue takes the oldest item from the queue.
//
// Blocks until an admissible item arrives or the queue closes. On close the
// call unwinds with ErrQueueClosed; that is the normal shutdown path, not a
// failure.
func (q *Queue) Dequeue() (any, error) {
	if q.getStatus() == StatusNil {
		q.once.Do(q.init)
	}
	q.mux.Lock()
	if q.getStatus() != StatusActive {
		q.mux.Unlock()
		return nil, ErrQueueClosed
	}
	var w *waiter
	for !q.admissible(w) {
		if w == nil {
			w = q.park()
		}
		// Classic monitor discipline: release the lock for the park itself.
		// The buffered wake channel keeps a signal sent in between, so no
		// wakeup gets lost here.
		q.mux.Unlock()
		<-w.ready
		q.mux.Lock()
		if w.terminated {
			q.mux.Unlock()
			return nil, ErrQueueClosed
		}
	}
	itm := q.items.pop()
	q.size.dec()
	q.vstd.inc()
	if w != nil {
		q.wlist.remove(w)
		q.wcnt.dec()
		q.m().WaiterRelease(q.k())
	}
	// Several enqueues may have collapsed into the single buffered signal
	// this consumer just drained. Pass the wake on while items remain.
	if q.items.len() > 0 {
		if nw := q.wlist.first(); nw != nil {
			nw.wake()
			q.m().WaiterWake(q.k())
		}
	}
	q.mux.Unlock()
	q.m().QueuePull(q.k())
	return itm.payload, nil
}

// TryDequeue takes the oldest item from the queue without blocking.
//
// Returns immediately when the lock is contended or the queue is empty.
// Never parks and therefore stays outside the fairness ordering: it may
// overtake consumers blocked in Dequeue.
func (q *Queue) TryDequeue() (any, bool) {
	if q.getStatus() == StatusNil {
		q.once.Do(q.init)
	}
	if !q.mux.TryLock() {
		return nil, false
	}
	if q.getStatus() != StatusActive || q.items.len() == 0 {
		q.mux.Unlock()
		return nil, false
	}
	itm := q.items.pop()
	q.size.dec()
	q.vstd.inc()
	q.mux.Unlock()
	q.m().QueuePull(q.k())
	return itm.payload, true
}

// admissible reports whether the calling consumer may take the head item.
//
// The consumer proceeds when items are available and either parked consumers
// don't outnumber them (no fairness conflict) or its own admission threshold
// is covered by the head sequence. A consumer without a record yet loses to
// any parked one, which is exactly what forces it to park behind them.
func (q *Queue) admissible(w *waiter) bool {
	itm := q.items.first()
	if itm == nil {
		return false
	}
	if q.wlist.len() <= q.items.len() {
		return true
	}
	return w != nil && w.threshold <= itm.seq
}

// park registers a wait record for the calling consumer.
//
// The threshold is the sequence this consumer is entitled to. Items pop in
// sequence order, so the threshold is the consumer's future pop position:
// everything dequeued so far plus one slot per consumer already in line.
// On an empty queue this equals total enqueued plus the waiter count.
func (q *Queue) park() *waiter {
	w := &waiter{
		ready:     make(chan struct{}, 1),
		threshold: q.vstd.get() + uint64(q.wlist.len()),
	}
	q.wlist.push(w)
	q.wcnt.inc()
	q.m().WaiterPark(q.k())
	return w
}

// Size returns actual items count in the queue.
func (q *Queue) Size() int {
	return int(q.size.get())
}

// Waiting returns the number of consumers currently blocked in Dequeue.
func (q *Queue) Waiting() int {
	return int(q.wcnt.get())
}

// Visited returns how many items have left the queue so far.
// Counts Dequeue and TryDequeue uniformly.
func (q *Queue) Visited() uint64 {
	return q.vstd.get()
}

// Close gracefully stops the queue.
//
// Pending items discard in bulk without handing ownership to anyone. Every
// parked consumer gets the terminated mark and a wake signal, then unwinds
// on its own; no cross-thread join needed. Repeated close is a no-op that
// reports ErrQueueClosed.
func (q *Queue) Close() error {
	if q.getStatus() == StatusNil {
		q.once.Do(q.init)
	}
	q.mux.Lock()
	if q.getStatus() != StatusActive {
		q.mux.Unlock()
		return ErrQueueClosed
	}
	q.setStatus(StatusClosed)
	q.items.reset()
	for _, w := range q.wlist.buf {
		w.terminated = true
		w.wake()
		q.m().WaiterAbort(q.k())
	}
	q.wlist.reset()
	q.enq.reset()
	q.vstd.reset()
	q.size.reset()
	q.wcnt.reset()
	q.mux.Unlock()
	if q.l() != nil {
		q.l().Printf("queue #%s close\n", q.k())
	}
	q.m().QueueClose(q.k())
	return nil
}

// Key returns the queue key.
func (q *Queue) Key() string {
	if q.getStatus() == StatusNil {
		q.once.Do(q.init)
	}
	return q.k()
}

func (q *Queue) setStatus(status Status) {
	atomic.StoreUint32((*uint32)(&q.status), uint32(status))
}

func (q *Queue) getStatus() Status {
	return Status(atomic.LoadUint32((*uint32)(&q.status)))
}

func (q *Queue) k() string {
	return q.config.Key
}

func (q *Queue) m() MetricsWriter {
	return q.config.MetricsWriter
}

func (q *Queue) l() Logger {
	return q.config.Logger
}

var _ Interface = &Queue{}
