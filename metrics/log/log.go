package log

import (
	"time"

	"github.com/sirupsen/logrus"
)

// MetricsWriter is a verbose metrics handler. It reports each queue event to
// a logrus logger. Intended for debugging, not for production rates.
type MetricsWriter struct {
	log logrus.FieldLogger
}

func NewMetricsWriter(log logrus.FieldLogger) *MetricsWriter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	m := &MetricsWriter{log: log}
	return m
}

func (m MetricsWriter) QueuePut(queue string) {
	m.log.WithField("queue", queue).Debug("new item come to the queue")
}

func (m MetricsWriter) QueuePull(queue string) {
	m.log.WithField("queue", queue).Debug("item leave the queue")
}

func (m MetricsWriter) QueueClose(queue string) {
	m.log.WithField("queue", queue).Info("queue closed")
}

func (m MetricsWriter) QueueRetry(queue string) {
	m.log.WithField("queue", queue).Debug("item processing retry")
}

func (m MetricsWriter) QueueLost(queue string) {
	m.log.WithField("queue", queue).Warn("item lost after all processing attempts")
}

func (m MetricsWriter) WaiterPark(queue string) {
	m.log.WithField("queue", queue).Debug("consumer parked")
}

func (m MetricsWriter) WaiterWake(queue string) {
	m.log.WithField("queue", queue).Debug("wake signal sent to the longest waiting consumer")
}

func (m MetricsWriter) WaiterRelease(queue string) {
	m.log.WithField("queue", queue).Debug("parked consumer proceed with an item")
}

func (m MetricsWriter) WaiterAbort(queue string) {
	m.log.WithField("queue", queue).Debug("parked consumer unwound by close")
}

func (m MetricsWriter) WorkerInit(queue string, idx uint32) {
	m.log.WithField("queue", queue).WithField("worker", idx).Info("worker up")
}

func (m MetricsWriter) WorkerStop(queue string, idx uint32) {
	m.log.WithField("queue", queue).WithField("worker", idx).Info("worker down")
}

func (m MetricsWriter) WorkerWait(queue string, idx uint32, wait time.Duration) {
	m.log.WithField("queue", queue).WithField("worker", idx).WithField("wait", wait).Debug("worker waited for an item")
}
