package fairq

import "time"

// DummyMetrics is a stub metrics writer handler that uses by default and does nothing.
// Need just to reduce checks in code.
type DummyMetrics struct{}

func (DummyMetrics) QueuePut(_ string)                              {}
func (DummyMetrics) QueuePull(_ string)                             {}
func (DummyMetrics) QueueClose(_ string)                            {}
func (DummyMetrics) QueueRetry(_ string)                            {}
func (DummyMetrics) QueueLost(_ string)                             {}
func (DummyMetrics) WaiterPark(_ string)                            {}
func (DummyMetrics) WaiterWake(_ string)                            {}
func (DummyMetrics) WaiterRelease(_ string)                         {}
func (DummyMetrics) WaiterAbort(_ string)                           {}
func (DummyMetrics) WorkerInit(_ string, _ uint32)                  {}
func (DummyMetrics) WorkerStop(_ string, _ uint32)                  {}
func (DummyMetrics) WorkerWait(_ string, _ uint32, _ time.Duration) {}

// DummyWorker is a stub worker that does nothing with the item.
type DummyWorker struct{}

func (DummyWorker) Do(_ any) error { return nil }
