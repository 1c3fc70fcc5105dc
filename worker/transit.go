package worker

import "github.com/qbits/fairq"

// Transit represents worker that transits item to other queue.
type Transit struct {
	queue fairq.Enqueuer
}

// TransitTo makes transit worker with destination queue.
func TransitTo(queue fairq.Enqueuer) *Transit {
	w := Transit{queue: queue}
	return &w
}

func (w Transit) Do(x any) error {
	if w.queue == nil {
		return fairq.ErrNoQueue
	}
	return w.queue.Enqueue(x)
}

var _ = TransitTo
