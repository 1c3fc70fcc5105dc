package fairq

import "errors"

var (
	ErrQueueClosed = errors.New("queue is closed")
	ErrNoWorker    = errors.New("no worker provided")
	ErrNoQueue     = errors.New("no queue provided")
)
