package fairq

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/qbits/fairq/dlq"
	"github.com/stretchr/testify/require"
)

type collectWorker struct {
	mux sync.Mutex
	got []any
}

func (w *collectWorker) Do(x any) error {
	w.mux.Lock()
	w.got = append(w.got, x)
	w.mux.Unlock()
	return nil
}

func (w *collectWorker) count() int {
	w.mux.Lock()
	defer w.mux.Unlock()
	return len(w.got)
}

var errProcFailed = errors.New("processing failed")

type failWorker struct {
	attempts int32
}

func (w *failWorker) Do(_ any) error {
	atomic.AddInt32(&w.attempts, 1)
	return errProcFailed
}

func TestDispatcher(t *testing.T) {
	t.Run("drain", func(t *testing.T) {
		w := &collectWorker{}
		d := NewDispatcher(&Config{
			Key:     "drain",
			Workers: 4,
			Worker:  w,
		})
		require.NoError(t, d.Err)
		require.Eventually(t, func() bool { return d.WorkersUp() == 4 }, time.Second*5, time.Millisecond)
		for i := 0; i < 100; i++ {
			require.NoError(t, d.Enqueue(i))
		}
		require.Eventually(t, func() bool { return w.count() == 100 }, time.Second*5, time.Millisecond*5)
		require.NoError(t, d.Close())
		require.Equal(t, 0, d.WorkersUp())
		require.Equal(t, 0, d.Queue().Waiting())
	})
	t.Run("retry to dlq", func(t *testing.T) {
		w := &failWorker{}
		catch := &dlq.Memory{}
		d := NewDispatcher(&Config{
			Key:           "retry",
			MaxRetries:    2,
			RetryInterval: time.Millisecond,
			Worker:        w,
			DLQ:           catch,
		})
		require.NoError(t, d.Err)
		require.NoError(t, d.Enqueue("doomed"))
		require.Eventually(t, func() bool { return catch.Size() == 1 }, time.Second*5, time.Millisecond*5)
		// Initial attempt plus two retries.
		require.EqualValues(t, 3, atomic.LoadInt32(&w.attempts))
		require.Equal(t, []any{"doomed"}, catch.Items())
		require.NoError(t, d.Close())
	})
	t.Run("no worker", func(t *testing.T) {
		d := NewDispatcher(&Config{Key: "noworker"})
		require.ErrorIs(t, d.Err, ErrNoWorker)
		require.ErrorIs(t, d.Enqueue("x"), ErrNoWorker)
		require.ErrorIs(t, d.Close(), ErrNoWorker)
	})
	t.Run("close idempotent", func(t *testing.T) {
		d := NewDispatcher(&Config{Key: "reclose", Worker: DummyWorker{}})
		require.NoError(t, d.Err)
		require.NoError(t, d.Close())
		require.ErrorIs(t, d.Close(), ErrQueueClosed)
	})
}
