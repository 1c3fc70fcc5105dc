package dlq

// Dummy is a stub DLQ implementation. It does nothing and need for dispatchers with loss tolerance.
// It just leaks data to the trash.
type Dummy struct{}

func (Dummy) Enqueue(_ any) error { return nil }
func (Dummy) Close() error        { return nil }
