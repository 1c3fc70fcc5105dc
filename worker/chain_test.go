package worker

import (
	"errors"
	"testing"

	"github.com/qbits/fairq"
)

type appendWorker struct {
	suffix string
	got    []string
}

func (w *appendWorker) Do(x any) error {
	w.got = append(w.got, x.(string)+w.suffix)
	return nil
}

type failWorker struct{}

var errFail = errors.New("fail")

func (failWorker) Do(_ any) error { return errFail }

func TestChain(t *testing.T) {
	t.Run("consecutive", func(t *testing.T) {
		w0, w1 := &appendWorker{suffix: "-0"}, &appendWorker{suffix: "-1"}
		c := Bind(w0, w1)
		if err := c.Do("item"); err != nil {
			t.Fatal(err)
		}
		if len(w0.got) != 1 || len(w1.got) != 1 {
			t.Error("all workers in chain must process the item")
		}
	})
	t.Run("stop on fail", func(t *testing.T) {
		w := &appendWorker{suffix: "-0"}
		c := Bind(failWorker{}, w)
		if err := c.Do("item"); err != errFail {
			t.Errorf("bad error: need %s, got %s", errFail, err)
		}
		if len(w.got) != 0 {
			t.Error("chain must stop on first failed worker")
		}
	})
}

func TestTransit(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		dst := fairq.New(&fairq.Config{Key: "transit-dst"})
		w := TransitTo(dst)
		if err := w.Do("item"); err != nil {
			t.Fatal(err)
		}
		if dst.Size() != 1 {
			t.Error("item must land in the destination queue")
		}
	})
	t.Run("no queue", func(t *testing.T) {
		var w Transit
		if err := w.Do("item"); err != fairq.ErrNoQueue {
			t.Errorf("bad error: need %s, got %s", fairq.ErrNoQueue, err)
		}
	})
}
