package windowstat

import (
	"time"

	timevec "github.com/jonoton/go-timevec"
	"golang.org/x/exp/constraints"
)

// MinMax answers minimum or maximum queries over a sliding window in
// amortized constant time. It keeps a monotonic wedge of samples: on insert,
// samples that can never again be the extremum are popped from the back, so
// the front always holds the answer for the window ending at the newest
// sample.
type MinMax[T constraints.Ordered] struct {
	buf *timevec.Buffer[T]
	max bool
}

// NewMin creates a windowed minimum tracker.
func NewMin[T constraints.Ordered](window time.Duration) *MinMax[T] {
	return &MinMax[T]{buf: timevec.New[T](window, 0)}
}

// NewMax creates a windowed maximum tracker.
func NewMax[T constraints.Ordered](window time.Duration) *MinMax[T] {
	return &MinMax[T]{buf: timevec.New[T](window, 0), max: true}
}

// displaced reports whether a held sample is made redundant by the incoming
// one: anything not strictly closer to the extremum than the candidate can
// never be the answer again.
func (m *MinMax[T]) displaced(held, candidate T) bool {
	if m.max {
		return held <= candidate
	}
	return held >= candidate
}

// Observe adds a sample at the given timestamp. Samples displaced by the
// candidate are dropped from the back before insertion; a sample that is
// neither newer than the wedge's back nor closer to the extremum is ignored.
func (m *MinMax[T]) Observe(timestamp time.Duration, sample T) {
	for {
		back, ok := m.buf.Back()
		if !ok || !m.displaced(back.Value, sample) {
			break
		}
		m.buf.PopBack()
	}
	m.buf.Push(timestamp, sample)
}

// Extremum returns the windowed minimum or maximum as of the newest sample,
// or false when no samples are held.
func (m *MinMax[T]) Extremum() (T, bool) {
	front, ok := m.buf.Front()
	if !ok {
		var zero T
		return zero, false
	}
	return front.Value, true
}

// Len returns the wedge size, useful mostly for diagnostics.
func (m *MinMax[T]) Len() int {
	return m.buf.Len()
}

// Reset discards all samples.
func (m *MinMax[T]) Reset() {
	m.buf.Clear()
}
