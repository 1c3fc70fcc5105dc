package fairq

// Enqueuer describes component that can enqueue items.
type Enqueuer interface {
	// Enqueue puts item to the queue.
	Enqueue(x any) error
}

// Interface describes queue interface.
type Interface interface {
	Enqueuer
	// Dequeue takes the oldest item from the queue.
	// Blocks until an item arrives or the queue closes.
	Dequeue() (any, error)
	// TryDequeue takes the oldest item from the queue without blocking.
	TryDequeue() (any, bool)
	// Size returns actual items count in the queue.
	Size() int
	// Waiting returns the number of consumers currently blocked in Dequeue.
	Waiting() int
	// Visited returns how many items have left the queue so far.
	Visited() uint64
	// Close gracefully stops the queue.
	Close() error
}

// Worker describes queue worker interface.
type Worker interface {
	// Do process the item.
	Do(x any) error
}
