package windowstat

import (
	"time"

	timevec "github.com/jonoton/go-timevec"
)

// Jitter tracks the cadence of a timestamped stream: the mean interval
// between consecutive samples inside the window, and the mean absolute
// deviation of those intervals from that mean. A perfectly regular stream
// has zero jitter.
type Jitter struct {
	buf *timevec.Buffer[struct{}]
}

// NewJitter creates a cadence tracker over the given window.
func NewJitter(window time.Duration) *Jitter {
	return &Jitter{buf: timevec.New[struct{}](window, 0)}
}

// Observe records a sample arrival and reports whether it was accepted.
// Out-of-order arrivals are rejected.
func (j *Jitter) Observe(timestamp time.Duration) bool {
	_, ok := j.buf.Push(timestamp, struct{}{})
	return ok
}

// MeanInterval returns the mean spacing between consecutive samples inside
// the window, or false when fewer than two samples are held.
func (j *Jitter) MeanInterval() (time.Duration, bool) {
	n := j.buf.Len()
	if n < 2 {
		return 0, false
	}
	return j.buf.Duration() / time.Duration(n-1), true
}

// Jitter returns the mean absolute deviation of the inter-arrival intervals
// from their mean, or false when fewer than two samples are held.
func (j *Jitter) Jitter() (time.Duration, bool) {
	n := j.buf.Len()
	if n < 2 {
		return 0, false
	}
	mean, _ := j.MeanInterval()

	var (
		deviations time.Duration
		prev       time.Duration
		seen       bool
	)
	for ts := range j.buf.Times() {
		if seen {
			d := (ts - prev) - mean
			if d < 0 {
				d = -d
			}
			deviations += d
		}
		prev, seen = ts, true
	}
	return deviations / time.Duration(n-1), true
}

// Count returns the number of samples currently inside the window.
func (j *Jitter) Count() int {
	return j.buf.Len()
}

// Reset discards all samples.
func (j *Jitter) Reset() {
	j.buf.Clear()
}
