package fairq

// DLQ is an interface of dead letter queues interface.
// Items that exhausted all processing attempts in the dispatcher put to the DLQ and may be processed later.
type DLQ interface {
	// Enqueue takes a lost item and process it.
	Enqueue(x any) error
	// Close gracefully stops the DLQ.
	Close() error
}
