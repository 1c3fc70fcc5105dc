package fairq

import "time"

// MetricsWriter is an interface of queue metrics handler.
type MetricsWriter interface {
	// QueuePut registers an item coming to the queue.
	QueuePut(queue string)
	// QueuePull registers an item leaving the queue (Dequeue or TryDequeue).
	QueuePull(queue string)
	// QueueClose registers queue shutdown.
	QueueClose(queue string)
	// QueueRetry registers a repeated processing attempt.
	QueueRetry(queue string)
	// QueueLost registers an item that exhausted all processing attempts.
	QueueLost(queue string)
	// WaiterPark registers a consumer parking inside Dequeue.
	WaiterPark(queue string)
	// WaiterWake registers a wake signal sent to the longest waiting consumer.
	WaiterWake(queue string)
	// WaiterRelease registers a parked consumer that proceeded with an item.
	WaiterRelease(queue string)
	// WaiterAbort registers a parked consumer unwound by queue shutdown.
	WaiterAbort(queue string)
	// WorkerInit registers a dispatcher worker coming up.
	WorkerInit(queue string, idx uint32)
	// WorkerStop registers a dispatcher worker going down.
	WorkerStop(queue string, idx uint32)
	// WorkerWait registers how long a worker was blocked waiting for an item.
	WorkerWait(queue string, idx uint32, wait time.Duration)
}
