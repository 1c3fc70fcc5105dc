package fairq

import (
	"sync"
	"sync/atomic"

	"github.com/koykov/bitset"
	"golang.org/x/sync/errgroup"
)

const (
	flagLeaky = iota
	flagRetry
)

// Dispatcher binds a worker pool to the blocking side of a queue.
//
// It owns the queue: producers enqueue through the dispatcher (or the
// underlying queue handle), the pool drains it through Dequeue and runs each
// item through the configured Worker. Close stops the queue and waits until
// every worker unwinds.
type Dispatcher struct {
	bitset.Bitset
	config *Config

	status Status
	queue  *Queue

	workers   []*worker
	workersUp int32
	grp       errgroup.Group

	once sync.Once

	Err error
}

// NewDispatcher makes new dispatcher instance together with its queue.
func NewDispatcher(config *Config) *Dispatcher {
	d := &Dispatcher{config: config}
	d.once.Do(d.init)
	return d
}

func (d *Dispatcher) init() {
	if d.config == nil {
		d.config = &Config{}
	}
	d.config = d.config.Copy()
	c := d.config

	if c.Worker == nil {
		d.Err = ErrNoWorker
		d.setStatus(StatusFail)
		return
	}
	if c.Workers == 0 {
		c.Workers = defaultWorkers
	}
	if c.RetryInterval == 0 {
		c.RetryInterval = defaultRetryInterval
	}
	d.SetBit(flagLeaky, c.DLQ != nil)
	d.SetBit(flagRetry, c.MaxRetries > 0)

	d.queue = New(c)
	// New copied the config again and generated the key if needed; share
	// the queue's view so workers report under the same key.
	d.config = d.queue.config
	c = d.config

	d.workers = make([]*worker, c.Workers)
	var i uint32
	for i = 0; i < c.Workers; i++ {
		w := makeWorker(i, c, d.CheckBit(flagRetry))
		d.workers[i] = w
		d.grp.Go(func() error {
			atomic.AddInt32(&d.workersUp, 1)
			defer atomic.AddInt32(&d.workersUp, -1)
			return w.observe(d.queue)
		})
	}

	d.setStatus(StatusActive)
}

// Enqueue puts item to the underlying queue.
func (d *Dispatcher) Enqueue(x any) error {
	if d.getStatus() == StatusNil {
		d.once.Do(d.init)
	}
	if d.Err != nil {
		return d.Err
	}
	return d.queue.Enqueue(x)
}

// Queue returns the underlying queue handle.
func (d *Dispatcher) Queue() *Queue {
	return d.queue
}

// WorkersUp returns the number of workers currently running.
func (d *Dispatcher) WorkersUp() int {
	return int(atomic.LoadInt32(&d.workersUp))
}

// Close stops the queue and waits until all workers unwind.
func (d *Dispatcher) Close() error {
	if d.getStatus() != StatusActive {
		if d.Err != nil {
			return d.Err
		}
		return ErrQueueClosed
	}
	d.setStatus(StatusClosed)
	if err := d.queue.Close(); err != nil {
		return err
	}
	if err := d.grp.Wait(); err != nil {
		return err
	}
	if d.CheckBit(flagLeaky) {
		return d.config.DLQ.Close()
	}
	return nil
}

func (d *Dispatcher) setStatus(status Status) {
	atomic.StoreUint32((*uint32)(&d.status), uint32(status))
}

func (d *Dispatcher) getStatus() Status {
	return Status(atomic.LoadUint32((*uint32)(&d.status)))
}

var _ Enqueuer = &Dispatcher{}
