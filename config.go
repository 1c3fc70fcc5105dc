package fairq

import "time"

const (
	// Dispatcher default workers number.
	defaultWorkers = uint32(1)
	// Default initial delay between processing attempts.
	defaultRetryInterval = time.Millisecond * 100
)

// Config describes queue properties and behavior.
type Config struct {
	// Unique queue key. Indicates queue in logs and metrics.
	// If this param omit a random key will generate instead.
	Key string

	// Workers number for the dispatcher pool.
	// If this param omit defaultWorkers (1) will use instead.
	Workers uint32
	// MaxRetries determines the maximum number of item processing retries.
	// If MaxRetries is exceeded, the item will send to DLQ (if possible).
	// The initial attempt is not counted as a retry.
	MaxRetries uint32
	// RetryInterval is the initial delay between processing attempts.
	// Each subsequent attempt grows the delay exponentially.
	// If this param omit defaultRetryInterval (100 ms) will use instead.
	RetryInterval time.Duration

	// Worker processes items taken from the queue.
	// Mandatory param for the dispatcher, ignored by the bare queue.
	Worker Worker
	// Dead letter queue to catch items that exhausted all processing attempts.
	DLQ DLQ

	// Clock represents clock keeper.
	// If this param omit nativeClock will use instead (see clock.go).
	Clock Clock

	// Metrics writer handler.
	MetricsWriter MetricsWriter

	// Logger handler.
	Logger Logger
}

// Copy copies config instance to protect queue from changing params after start.
// It means that after starting queue all config modifications will have no effect.
func (c *Config) Copy() *Config {
	cpy := *c
	return &cpy
}
