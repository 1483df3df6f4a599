package timevec

import (
	"fmt"
	"iter"
	"sort"
	"time"

	"github.com/gammazero/deque"
)

// --- Items ---

// Item is a single buffered entry: an elapsed-time offset paired with the
// value recorded at that offset.
type Item[T any] struct {
	Time  time.Duration
	Value T
}

// --- Buffer Implementation ---

// Buffer is an ordered, time-windowed buffer of timestamped values. Items are
// held in strictly increasing timestamp order, front = oldest, back = newest.
// Inserting a new item evicts every item whose age relative to the new
// timestamp exceeds Limit, and hands the evicted items back to the caller.
//
// The buffer never generates timestamps; the caller supplies them on every
// insertion. A Buffer is not safe for concurrent use: callers sharing one
// across goroutines must provide their own locking.
type Buffer[T any] struct {
	// Limit is the maximum age, relative to the most recently inserted
	// timestamp, an item may reach before it is evicted. It may be changed at
	// any time; the new value takes effect on the next Push and does not
	// retroactively evict. A negative Limit behaves as zero.
	Limit time.Duration

	buffer deque.Deque[Item[T]]
}

// New creates a Buffer with the given window length and an initial capacity
// hint for the backing store. A capacity of zero or less keeps the backing
// store's default allocation strategy. A zero limit is valid and retains only
// items sharing the single latest timestamp.
func New[T any](limit time.Duration, capacity int) *Buffer[T] {
	b := &Buffer[T]{Limit: limit}
	if capacity > 0 {
		b.buffer.SetBaseCap(capacity)
	}
	return b
}

// --- Insertion ---

// Push appends a timestamped value and evicts every item that has fallen out
// of the window, returning the evicted items oldest first. The timestamp must
// be strictly greater than the newest timestamp already held; otherwise the
// buffer is unchanged and Push returns (nil, false). An accepted insertion
// returns ok=true even when nothing was evicted.
//
// Handing the evicted items back lets the buffer serve as the backing store
// for windowed aggregates: the caller can subtract exactly what left the
// window instead of re-scanning it.
func (b *Buffer[T]) Push(timestamp time.Duration, value T) (evicted []Item[T], ok bool) {
	if !b.checkTimestamp(timestamp) {
		return nil, false
	}
	b.buffer.PushBack(Item[T]{Time: timestamp, Value: value})
	return b.evict(timestamp), true
}

// MustPush is the fail-fast form of Push for pipelines whose timestamps are
// guaranteed monotonic upstream. It panics instead of rejecting when the
// timestamp is not strictly greater than the newest one held.
func (b *Buffer[T]) MustPush(timestamp time.Duration, value T) []Item[T] {
	evicted, ok := b.Push(timestamp, value)
	if !ok {
		panic(fmt.Sprintf("timevec: non-monotonic push: %v is not after %v",
			timestamp, b.buffer.Back().Time))
	}
	return evicted
}

// checkTimestamp reports whether timestamp may be appended while keeping the
// buffer strictly ordered.
func (b *Buffer[T]) checkTimestamp(timestamp time.Duration) bool {
	return b.buffer.Len() == 0 || timestamp > b.buffer.Back().Time
}

// evict removes every item older than the window ending at latest and returns
// them oldest first, or nil when everything fits the window. The boundary
// search never includes the item just appended, so a push cannot evict
// itself.
func (b *Buffer[T]) evict(latest time.Duration) []Item[T] {
	limit := b.Limit
	if limit < 0 {
		limit = 0
	}
	cutoff := latest - limit
	if cutoff < 0 {
		// The window reaches back past the origin; everything fits.
		cutoff = 0
	}
	// The buffer is time-ordered, so the eviction boundary is the partition
	// point of Time >= cutoff, found by binary search.
	n := sort.Search(b.buffer.Len()-1, func(i int) bool {
		return b.buffer.At(i).Time >= cutoff
	})
	if n == 0 {
		return nil
	}
	evicted := make([]Item[T], 0, n)
	for i := 0; i < n; i++ {
		evicted = append(evicted, b.buffer.PopFront())
	}
	return evicted
}

// --- Durations ---

// CheckedDuration returns the span between the oldest and newest timestamps
// held, or false when the buffer is empty.
func (b *Buffer[T]) CheckedDuration() (time.Duration, bool) {
	if b.buffer.Len() == 0 {
		return 0, false
	}
	return b.buffer.Back().Time - b.buffer.Front().Time, true
}

// Duration is CheckedDuration with zero standing in for the empty buffer.
func (b *Buffer[T]) Duration() time.Duration {
	d, _ := b.CheckedDuration()
	return d
}

// DurationFromBack returns the elapsed time between the newest held timestamp
// and reference. It returns false when the buffer is empty or reference is
// earlier than the newest timestamp.
func (b *Buffer[T]) DurationFromBack(reference time.Duration) (time.Duration, bool) {
	if b.buffer.Len() == 0 {
		return 0, false
	}
	back := b.buffer.Back().Time
	if reference < back {
		return 0, false
	}
	return reference - back, true
}

// --- Edge Access ---

// Front returns the oldest item without removing it.
func (b *Buffer[T]) Front() (Item[T], bool) {
	if b.buffer.Len() == 0 {
		var zero Item[T]
		return zero, false
	}
	return b.buffer.Front(), true
}

// Back returns the newest item without removing it.
func (b *Buffer[T]) Back() (Item[T], bool) {
	if b.buffer.Len() == 0 {
		var zero Item[T]
		return zero, false
	}
	return b.buffer.Back(), true
}

// PopFront removes and returns the oldest item. It bypasses the window logic
// entirely and never triggers further eviction.
func (b *Buffer[T]) PopFront() (Item[T], bool) {
	if b.buffer.Len() == 0 {
		var zero Item[T]
		return zero, false
	}
	return b.buffer.PopFront(), true
}

// PopBack removes and returns the newest item. It bypasses the window logic
// entirely and never triggers further eviction.
func (b *Buffer[T]) PopBack() (Item[T], bool) {
	if b.buffer.Len() == 0 {
		var zero Item[T]
		return zero, false
	}
	return b.buffer.PopBack(), true
}

// Clear discards all items unconditionally. The window limit is unchanged.
func (b *Buffer[T]) Clear() {
	b.buffer.Clear()
}

// Len returns the number of items currently held. It is also the exact length
// of the sequences produced by All, Values and Times.
func (b *Buffer[T]) Len() int {
	return b.buffer.Len()
}

// IsEmpty reports whether the buffer holds no items.
func (b *Buffer[T]) IsEmpty() bool {
	return b.buffer.Len() == 0
}

// Cap returns the current capacity of the backing store.
func (b *Buffer[T]) Cap() int {
	return b.buffer.Cap()
}

// --- Iteration ---

// All returns an iterator over (timestamp, value) pairs in ascending time
// order. Each call starts a fresh traversal. The buffer must not be mutated
// while a traversal is in progress.
func (b *Buffer[T]) All() iter.Seq2[time.Duration, T] {
	return func(yield func(time.Duration, T) bool) {
		for i := 0; i < b.buffer.Len(); i++ {
			item := b.buffer.At(i)
			if !yield(item.Time, item.Value) {
				return
			}
		}
	}
}

// Values returns an iterator over the buffered values in ascending time
// order.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.buffer.Len(); i++ {
			if !yield(b.buffer.At(i).Value) {
				return
			}
		}
	}
}

// Times returns an iterator over the buffered timestamps in ascending order.
func (b *Buffer[T]) Times() iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		for i := 0; i < b.buffer.Len(); i++ {
			if !yield(b.buffer.At(i).Time) {
				return
			}
		}
	}
}

// Drain returns a removal cursor over (timestamp, value) pairs, oldest first.
// Every pair handed to the consumer has already been removed from the buffer:
// consuming the cursor to completion leaves the buffer empty, while stopping
// early keeps the remaining items in place.
func (b *Buffer[T]) Drain() iter.Seq2[time.Duration, T] {
	return func(yield func(time.Duration, T) bool) {
		for b.buffer.Len() > 0 {
			item := b.buffer.PopFront()
			if !yield(item.Time, item.Value) {
				return
			}
		}
	}
}
