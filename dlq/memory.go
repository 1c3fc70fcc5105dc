package dlq

import "sync"

// Memory is a trivial in-memory DLQ. It keeps lost items in arrival order
// for later inspection or replay.
type Memory struct {
	mux sync.Mutex
	buf []any
}

func (q *Memory) Enqueue(x any) error {
	q.mux.Lock()
	q.buf = append(q.buf, x)
	q.mux.Unlock()
	return nil
}

// Items returns a copy of the lost items collected so far.
func (q *Memory) Items() []any {
	q.mux.Lock()
	defer q.mux.Unlock()
	cpy := make([]any, len(q.buf))
	copy(cpy, q.buf)
	return cpy
}

func (q *Memory) Size() int {
	q.mux.Lock()
	defer q.mux.Unlock()
	return len(q.buf)
}

func (q *Memory) Close() error {
	q.mux.Lock()
	q.buf = nil
	q.mux.Unlock()
	return nil
}
