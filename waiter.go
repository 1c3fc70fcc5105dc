package fairq

// waiter is a bookkeeping record of one consumer parked inside Dequeue.
//
// The ready channel keeps capacity 1 so a wake signal sent between the
// moment the consumer releases the queue lock and the moment it starts
// receiving stays buffered instead of getting lost. The record pointer held
// by the parked call is the consumer identity: no other party removes the
// record, except Close which marks it terminated first.
type waiter struct {
	ready      chan struct{}
	threshold  uint64
	terminated bool
}

// wake signals the parked consumer. Non-blocking: a second signal landing
// before the consumer drained the first one is dropped, the consumer passes
// the wake on after it proceeds (see Queue.Dequeue).
func (w *waiter) wake() {
	select {
	case w.ready <- struct{}{}:
	default:
	}
}

// waitlist is the FIFO registry of parked consumers, ordered by park time.
// The head is always the record with the smallest admission threshold.
// Not safe for concurrent use, the queue mutex covers all calls.
type waitlist struct {
	buf []*waiter
}

func (l *waitlist) push(w *waiter) {
	l.buf = append(l.buf, w)
}

// remove drops the given record wherever it is in the list. A woken consumer
// is not necessarily at the head anymore when it finally proceeds.
func (l *waitlist) remove(w *waiter) {
	for i := 0; i < len(l.buf); i++ {
		if l.buf[i] == w {
			l.buf = append(l.buf[:i], l.buf[i+1:]...)
			return
		}
	}
}

// first returns the longest waiting record, or nil if nobody is parked.
func (l *waitlist) first() *waiter {
	if len(l.buf) == 0 {
		return nil
	}
	return l.buf[0]
}

func (l *waitlist) len() int {
	return len(l.buf)
}

func (l *waitlist) reset() {
	l.buf = nil
}
