package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsWriter is a Prometheus implementation of fairq.MetricsWriter.
type MetricsWriter struct {
	name string
	prec time.Duration
}

var (
	promQueueSize, promQueueWaiters, promWorkersUp *prometheus.GaugeVec

	promQueueIn, promQueueOut, promQueueRetry, promQueueLost, promQueueClose,
	promWaiterWake *prometheus.CounterVec

	promWorkerWait *prometheus.HistogramVec

	_ = NewMetricsWriter
)

func init() {
	promQueueSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "queue_size",
		Help: "Actual queue size.",
	}, []string{"queue"})
	promQueueWaiters = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "queue_waiters",
		Help: "Indicates how many consumers are parked in dequeue.",
	}, []string{"queue"})
	promWorkersUp = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "queue_workers_up",
		Help: "Indicates how many dispatcher workers are running.",
	}, []string{"queue"})

	promQueueIn = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "queue_in",
		Help: "How many items comes to the queue.",
	}, []string{"queue"})
	promQueueOut = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "queue_out",
		Help: "How many items leaves queue.",
	}, []string{"queue"})
	promQueueRetry = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "queue_retry",
		Help: "How many retries occurs.",
	}, []string{"queue"})
	promQueueLost = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "queue_lost",
		Help: "How many items throw to the trash after all processing attempts.",
	}, []string{"queue"})
	promQueueClose = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "queue_close",
		Help: "How many times queue was closed.",
	}, []string{"queue"})
	promWaiterWake = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "queue_waiter_wake",
		Help: "How many wake signals sent to parked consumers.",
	}, []string{"queue"})

	buckets := append(prometheus.DefBuckets, []float64{15, 20, 30, 40, 50, 100, 150, 200, 250, 500, 1000, 1500, 2000, 3000, 5000}...)
	promWorkerWait = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "queue_wait",
		Help:    "How long workers blocked waiting for an item.",
		Buckets: buckets,
	}, []string{"queue"})

	prometheus.MustRegister(promQueueSize, promQueueWaiters, promWorkersUp,
		promQueueIn, promQueueOut, promQueueRetry, promQueueLost, promQueueClose,
		promWaiterWake, promWorkerWait)
}

func NewMetricsWriter(name string) *MetricsWriter {
	return NewMetricsWriterWP(name, time.Millisecond)
}

// NewMetricsWriterWP makes writer with precision param. Wait times observe in
// precision units.
func NewMetricsWriterWP(name string, precision time.Duration) *MetricsWriter {
	if precision == 0 {
		precision = time.Millisecond
	}
	m := &MetricsWriter{
		name: name,
		prec: precision,
	}
	return m
}

func (m MetricsWriter) QueuePut(_ string) {
	promQueueIn.WithLabelValues(m.name).Inc()
	promQueueSize.WithLabelValues(m.name).Inc()
}

func (m MetricsWriter) QueuePull(_ string) {
	promQueueOut.WithLabelValues(m.name).Inc()
	promQueueSize.WithLabelValues(m.name).Dec()
}

func (m MetricsWriter) QueueClose(_ string) {
	promQueueClose.WithLabelValues(m.name).Inc()
	promQueueSize.WithLabelValues(m.name).Set(0)
	promQueueWaiters.WithLabelValues(m.name).Set(0)
}

func (m MetricsWriter) QueueRetry(_ string) {
	promQueueRetry.WithLabelValues(m.name).Inc()
}

func (m MetricsWriter) QueueLost(_ string) {
	promQueueLost.WithLabelValues(m.name).Inc()
}

func (m MetricsWriter) WaiterPark(_ string) {
	promQueueWaiters.WithLabelValues(m.name).Inc()
}

func (m MetricsWriter) WaiterWake(_ string) {
	promWaiterWake.WithLabelValues(m.name).Inc()
}

func (m MetricsWriter) WaiterRelease(_ string) {
	promQueueWaiters.WithLabelValues(m.name).Dec()
}

func (m MetricsWriter) WaiterAbort(_ string) {
	promQueueWaiters.WithLabelValues(m.name).Dec()
}

func (m MetricsWriter) WorkerInit(_ string, _ uint32) {
	promWorkersUp.WithLabelValues(m.name).Inc()
}

func (m MetricsWriter) WorkerStop(_ string, _ uint32) {
	promWorkersUp.WithLabelValues(m.name).Dec()
}

func (m MetricsWriter) WorkerWait(_ string, _ uint32, wait time.Duration) {
	promWorkerWait.WithLabelValues(m.name).Observe(float64(wait.Nanoseconds() / int64(m.prec)))
}
