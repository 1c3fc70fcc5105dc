package fairq

import (
	"sync"
	"testing"
	"time"

	"github.com/valyala/fastrand"
)

func waitFor(t *testing.T, timeout time.Duration, fn func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

func TestQueue(t *testing.T) {
	t.Run("fifo order", func(t *testing.T) {
		q := New(&Config{Key: "fifo"})
		for i := 0; i < 100; i++ {
			if err := q.Enqueue(i); err != nil {
				t.Fatal(err)
			}
		}
		for i := 0; i < 100; i++ {
			x, err := q.Dequeue()
			if err != nil {
				t.Fatal(err)
			}
			if x.(int) != i {
				t.Errorf("order mismatch: need %d, got %v", i, x)
			}
		}
	})
	t.Run("mixed dequeue", func(t *testing.T) {
		q := New(&Config{Key: "mixed"})
		_ = q.Enqueue("A")
		_ = q.Enqueue("B")
		x, err := q.Dequeue()
		if err != nil {
			t.Fatal(err)
		}
		if x.(string) != "A" {
			t.Errorf("need A, got %v", x)
		}
		x, ok := q.TryDequeue()
		if !ok || x.(string) != "B" {
			t.Errorf("need B/true, got %v/%v", x, ok)
		}
		if _, ok = q.TryDequeue(); ok {
			t.Error("try dequeue on empty queue must fail")
		}
		if n := q.Size(); n != 0 {
			t.Errorf("need size 0, got %d", n)
		}
		if n := q.Visited(); n != 2 {
			t.Errorf("need visited 2, got %d", n)
		}
	})
	t.Run("try dequeue empty", func(t *testing.T) {
		q := New(&Config{Key: "tryempty"})
		if _, ok := q.TryDequeue(); ok {
			t.Error("try dequeue on empty queue must fail")
		}
		if n := q.Size(); n != 0 {
			t.Errorf("need size 0, got %d", n)
		}
	})
	t.Run("nil payload", func(t *testing.T) {
		q := New(&Config{Key: "nil"})
		if err := q.Enqueue(nil); err != nil {
			t.Fatal(err)
		}
		x, err := q.Dequeue()
		if err != nil {
			t.Fatal(err)
		}
		if x != nil {
			t.Errorf("need nil payload, got %v", x)
		}
	})
	t.Run("conservation", func(t *testing.T) {
		q := New(&Config{Key: "conservation"})
		for i := 0; i < 10; i++ {
			_ = q.Enqueue(i)
		}
		for i := 0; i < 4; i++ {
			if _, err := q.Dequeue(); err != nil {
				t.Fatal(err)
			}
		}
		if _, ok := q.TryDequeue(); !ok {
			t.Fatal("try dequeue on non-empty queue must succeed")
		}
		if delta := q.enq.get() - q.vstd.get(); delta != uint64(q.Size()) {
			t.Errorf("conservation broken: enqueued-dequeued %d vs size %d", delta, q.Size())
		}
		if n := q.Size(); n != 5 {
			t.Errorf("need size 5, got %d", n)
		}
	})
	t.Run("fairness", func(t *testing.T) {
		q := New(&Config{Key: "fairness"})
		order := make(chan int, 2)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := q.Dequeue(); err == nil {
				order <- 1
			}
		}()
		waitFor(t, time.Second*5, func() bool { return q.Waiting() == 1 })
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := q.Dequeue(); err == nil {
				order <- 2
			}
		}()
		waitFor(t, time.Second*5, func() bool { return q.Waiting() == 2 })

		_ = q.Enqueue("x")
		select {
		case first := <-order:
			if first != 1 {
				t.Errorf("fairness violated: consumer %d served before consumer 1", first)
			}
		case <-time.After(time.Second * 5):
			t.Fatal("no consumer served")
		}
		_ = q.Enqueue("y")
		select {
		case second := <-order:
			if second != 2 {
				t.Errorf("need consumer 2 served second, got %d", second)
			}
		case <-time.After(time.Second * 5):
			t.Fatal("second consumer starved")
		}
		wg.Wait()
	})
	t.Run("close wakes all", func(t *testing.T) {
		const parked = 5
		q := New(&Config{Key: "close"})
		var wg sync.WaitGroup
		errs := make(chan error, parked)
		for i := 0; i < parked; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := q.Dequeue()
				errs <- err
			}()
		}
		waitFor(t, time.Second*5, func() bool { return q.Waiting() == parked })
		if err := q.Close(); err != nil {
			t.Fatal(err)
		}
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second * 5):
			t.Fatal("consumers still parked after close")
		}
		for i := 0; i < parked; i++ {
			if err := <-errs; err != ErrQueueClosed {
				t.Errorf("bad error: need %s, got %s", ErrQueueClosed, err)
			}
		}
		if n := q.Waiting(); n != 0 {
			t.Errorf("need waiting 0 after close, got %d", n)
		}
	})
	t.Run("use after close", func(t *testing.T) {
		q := New(&Config{Key: "reuse"})
		_ = q.Enqueue("x")
		if err := q.Close(); err != nil {
			t.Fatal(err)
		}
		if err := q.Enqueue("y"); err != ErrQueueClosed {
			t.Errorf("bad error: need %s, got %s", ErrQueueClosed, err)
		}
		if _, err := q.Dequeue(); err != ErrQueueClosed {
			t.Errorf("bad error: need %s, got %s", ErrQueueClosed, err)
		}
		if _, ok := q.TryDequeue(); ok {
			t.Error("try dequeue on closed queue must fail")
		}
		if err := q.Close(); err != ErrQueueClosed {
			t.Errorf("bad error: need %s, got %s", ErrQueueClosed, err)
		}
	})
}

func TestQueueConcurrent(t *testing.T) {
	const (
		producers   = 4
		consumers   = 4
		perProducer = 1000
		total       = producers * perProducer
	)
	q := New(&Config{Key: "concurrent"})
	consumed := make(chan any, total)
	var cwg sync.WaitGroup
	for i := 0; i < consumers; i++ {
		cwg.Add(1)
		go func() {
			defer cwg.Done()
			for {
				// Random mix of blocking and non-blocking takes.
				if fastrand.Uint32n(4) == 0 {
					if x, ok := q.TryDequeue(); ok {
						consumed <- x
						continue
					}
				}
				x, err := q.Dequeue()
				if err != nil {
					return
				}
				consumed <- x
			}
		}()
	}
	var pwg sync.WaitGroup
	for i := 0; i < producers; i++ {
		pwg.Add(1)
		go func(base int) {
			defer pwg.Done()
			for j := 0; j < perProducer; j++ {
				_ = q.Enqueue(base + j)
			}
		}(i * perProducer)
	}
	pwg.Wait()
	waitFor(t, time.Second*10, func() bool { return len(consumed) == total })
	if n := q.Size(); n != 0 {
		t.Errorf("need size 0, got %d", n)
	}
	if n := q.Visited(); n != total {
		t.Errorf("need visited %d, got %d", total, n)
	}
	if err := q.Close(); err != nil {
		t.Fatal(err)
	}
	cwg.Wait()

	seen := make(map[int]bool, total)
	close(consumed)
	for x := range consumed {
		i := x.(int)
		if seen[i] {
			t.Fatalf("item %d consumed twice", i)
		}
		seen[i] = true
	}
	if len(seen) != total {
		t.Errorf("need %d distinct items, got %d", total, len(seen))
	}
}

func BenchmarkQueue(b *testing.B) {
	q := New(&Config{Key: "bench"})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = q.Enqueue(i)
		if _, err := q.Dequeue(); err != nil {
			b.Fatal(err)
		}
	}
}
