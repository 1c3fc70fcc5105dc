package fairq

// item wraps one pending payload together with its arrival sequence number.
// The sequence grows monotonically over the queue lifetime and defines the
// total arrival order. Items never change after creation.
type item struct {
	payload any
	seq     uint64
}

const itemringMinCap = 8

// itemring is a growable ring buffer of pending items owned by the queue.
// Head is the next item to dequeue, tail is the most recent arrival.
// Not safe for concurrent use, the queue mutex covers all calls.
type itemring struct {
	buf  []item
	head int
	ln   int
}

func (r *itemring) push(itm item) {
	if r.ln == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.ln)%len(r.buf)] = itm
	r.ln++
}

func (r *itemring) pop() item {
	itm := r.buf[r.head]
	r.buf[r.head] = item{}
	r.head = (r.head + 1) % len(r.buf)
	r.ln--
	return itm
}

// first returns the head item without removing it, or nil on empty ring.
func (r *itemring) first() *item {
	if r.ln == 0 {
		return nil
	}
	return &r.buf[r.head]
}

func (r *itemring) len() int {
	return r.ln
}

func (r *itemring) grow() {
	cap_ := len(r.buf) * 2
	if cap_ == 0 {
		cap_ = itemringMinCap
	}
	buf := make([]item, cap_)
	for i := 0; i < r.ln; i++ {
		buf[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	r.buf, r.head = buf, 0
}

func (r *itemring) reset() {
	r.buf, r.head, r.ln = nil, 0, 0
}
