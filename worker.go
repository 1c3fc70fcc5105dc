package fairq

import (
	"sync/atomic"

	"github.com/cenkalti/backoff/v4"
)

type workerStatus uint32

const (
	wstatusIdle workerStatus = iota
	wstatusActive
)

// worker is one consumer of the dispatcher pool. It loops on the blocking
// Dequeue and unwinds when the queue closes.
type worker struct {
	idx    uint32
	status workerStatus
	proc   Worker
	retry  bool
	config *Config
}

func makeWorker(idx uint32, config *Config, retry bool) *worker {
	w := &worker{
		idx:    idx,
		status: wstatusIdle,
		proc:   config.Worker,
		retry:  retry,
		config: config,
	}
	return w
}

func (w *worker) observe(queue *Queue) error {
	w.init()
	defer w.stop()
	for {
		start := w.c().Clock.Now()
		x, err := queue.Dequeue()
		if err != nil {
			// Queue closed, normal unwind path.
			return nil
		}
		w.m().WorkerWait(w.k(), w.idx, w.c().Clock.Now().Sub(start))
		w.process(x)
	}
}

// process runs the item through the worker chain, retrying with exponential
// delays up to MaxRetries. An item that fails all attempts goes to the DLQ
// when one is configured, otherwise it reports as lost.
func (w *worker) process(x any) {
	var err error
	if !w.retry {
		err = w.proc.Do(x)
	} else {
		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = w.c().RetryInterval
		var attempt int
		err = backoff.Retry(func() error {
			if attempt > 0 {
				w.m().QueueRetry(w.k())
			}
			attempt++
			return w.proc.Do(x)
		}, backoff.WithMaxRetries(bo, uint64(w.c().MaxRetries)))
	}
	if err == nil {
		return
	}
	if dlq := w.c().DLQ; dlq != nil {
		if err = dlq.Enqueue(x); err == nil {
			return
		}
		if w.l() != nil {
			w.l().Printf("queue #%s worker #%d DLQ failed: %s\n", w.k(), w.idx, err)
		}
	}
	w.m().QueueLost(w.k())
}

func (w *worker) init() {
	if w.l() != nil {
		w.l().Printf("queue #%s worker #%d init\n", w.k(), w.idx)
	}
	w.setStatus(wstatusActive)
	w.m().WorkerInit(w.k(), w.idx)
}

func (w *worker) stop() {
	if w.l() != nil {
		w.l().Printf("queue #%s worker #%d stop\n", w.k(), w.idx)
	}
	w.setStatus(wstatusIdle)
	w.m().WorkerStop(w.k(), w.idx)
}

func (w *worker) setStatus(status workerStatus) {
	atomic.StoreUint32((*uint32)(&w.status), uint32(status))
}

func (w *worker) getStatus() workerStatus {
	return workerStatus(atomic.LoadUint32((*uint32)(&w.status)))
}

func (w *worker) c() *Config {
	return w.config
}

func (w *worker) k() string {
	return w.config.Key
}

func (w *worker) m() MetricsWriter {
	return w.config.MetricsWriter
}

func (w *worker) l() Logger {
	return w.config.Logger
}
