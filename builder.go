package timevec

import "time"

// --- Construction Helper ---

// Builder accumulates optional configuration for a Buffer. Every setter is
// independently optional, converts to the canonical representation before
// storing, and returns the Builder for chaining. The last call to any limit
// setter wins.
//
//	buf := timevec.NewBuilder[int]().
//		WithLimitSeconds(30).
//		WithCapacity(256).
//		Build()
type Builder[T any] struct {
	limit    time.Duration
	capacity int
}

// NewBuilder creates an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// WithLimit sets the window length directly.
func (b *Builder[T]) WithLimit(limit time.Duration) *Builder[T] {
	b.limit = limit
	return b
}

// WithLimitSeconds sets the window length expressed in seconds.
func (b *Builder[T]) WithLimitSeconds(secs int64) *Builder[T] {
	return b.WithLimit(time.Duration(secs) * time.Second)
}

// WithLimitMillis sets the window length expressed in milliseconds.
func (b *Builder[T]) WithLimitMillis(millis int64) *Builder[T] {
	return b.WithLimit(time.Duration(millis) * time.Millisecond)
}

// WithLimitMicros sets the window length expressed in microseconds.
func (b *Builder[T]) WithLimitMicros(micros int64) *Builder[T] {
	return b.WithLimit(time.Duration(micros) * time.Microsecond)
}

// WithLimitNanos sets the window length expressed in nanoseconds.
func (b *Builder[T]) WithLimitNanos(nanos int64) *Builder[T] {
	return b.WithLimit(time.Duration(nanos))
}

// WithCapacity sets the initial capacity hint for the backing store. It only
// pre-reserves space; it does not bound how many items the window may hold.
func (b *Builder[T]) WithCapacity(capacity int) *Builder[T] {
	b.capacity = capacity
	return b
}

// Build produces a Buffer from the accumulated configuration. The window
// length defaults to zero and the backing store to its default allocation
// strategy. Build performs no validation: a zero limit is valid and retains
// only items sharing the single latest timestamp.
func (b *Builder[T]) Build() *Buffer[T] {
	return New[T](b.limit, b.capacity)
}
