package windowstat

import (
	"time"

	timevec "github.com/jonoton/go-timevec"
	"golang.org/x/exp/constraints"
)

// Number constrains the sample types an Accumulator can aggregate.
type Number interface {
	constraints.Integer | constraints.Float
}

// Accumulator maintains a running sum over a sliding window: each insertion
// adds the new sample and subtracts exactly the samples the buffer evicts.
// Instantiating it with time.Duration samples gives a windowed latency
// tracker.
type Accumulator[T Number] struct {
	buf *timevec.Buffer[T]
	sum T
}

// NewAccumulator creates an Accumulator over the given window.
func NewAccumulator[T Number](window time.Duration) *Accumulator[T] {
	return &Accumulator[T]{buf: timevec.New[T](window, 0)}
}

// Observe adds a sample at the given timestamp, ages out samples that left
// the window and reports whether the sample was accepted. An out-of-order
// sample is rejected and leaves the aggregate unchanged.
func (a *Accumulator[T]) Observe(timestamp time.Duration, sample T) bool {
	evicted, ok := a.buf.Push(timestamp, sample)
	if !ok {
		return false
	}
	a.sum += sample
	for _, old := range evicted {
		a.sum -= old.Value
	}
	return true
}

// Sum returns the sum of the samples currently inside the window.
func (a *Accumulator[T]) Sum() T {
	return a.sum
}

// Count returns the number of samples currently inside the window.
func (a *Accumulator[T]) Count() int {
	return a.buf.Len()
}

// Mean returns the arithmetic mean of the samples inside the window, or zero
// when the window is empty.
func (a *Accumulator[T]) Mean() float64 {
	if a.buf.IsEmpty() {
		return 0
	}
	return float64(a.sum) / float64(a.buf.Len())
}

// Span returns the elapsed time between the oldest and newest samples held.
func (a *Accumulator[T]) Span() time.Duration {
	return a.buf.Duration()
}

// Reset discards all samples.
func (a *Accumulator[T]) Reset() {
	a.buf.Clear()
	a.sum = 0
}
