package windowstat

import (
	"time"

	timevec "github.com/jonoton/go-timevec"
)

// Counter counts events inside a sliding window. Each recorded event is a
// timestamped entry in the underlying buffer, so eviction on insert keeps the
// count scoped to the window automatically.
type Counter struct {
	buf *timevec.Buffer[struct{}]
}

// NewCounter creates a Counter over the given window.
func NewCounter(window time.Duration) *Counter {
	return &Counter{buf: timevec.New[struct{}](window, 0)}
}

// Record adds an event at the given timestamp and returns the number of
// events left inside the window. Timestamps must strictly increase; an
// out-of-order or duplicate timestamp is not recorded and the current count
// is returned unchanged.
func (c *Counter) Record(timestamp time.Duration) int {
	c.buf.Push(timestamp, struct{}{})
	return c.buf.Len()
}

// Count returns the number of events currently inside the window.
func (c *Counter) Count() int {
	return c.buf.Len()
}

// Rate returns events per second across the span actually observed, or zero
// when fewer than two events are held.
func (c *Counter) Rate() float64 {
	span := c.buf.Duration()
	if span <= 0 {
		return 0
	}
	return float64(c.buf.Len()-1) / span.Seconds()
}

// Reset discards all recorded events.
func (c *Counter) Reset() {
	c.buf.Clear()
}
