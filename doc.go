/*
Package timevec provides a generic, time-windowed ordered buffer: a sequence
of timestamped values that automatically discards entries older than a
configurable age relative to the most recently inserted timestamp.

It is a building block for sliding-window computations such as rate limiting,
moving aggregates and latency or jitter tracking, where a caller repeatedly
appends timestamped samples and needs cheap access to the oldest and newest
sample and the current window span, without re-scanning the whole history on
every insertion. The windowstat subpackage builds several of those
computations directly on top of it.

The buffer never generates timestamps and never interprets stored values; the
caller supplies both. Timestamps are elapsed-time offsets (time.Duration) and
must strictly increase: an out-of-order or duplicate timestamp is rejected as
a no-op rather than reordered or clamped, which keeps the buffer sorted by
construction. Everything is single-threaded and synchronous. There is no
internal locking and no background goroutine; callers that share a buffer
across goroutines bring their own synchronization.

Key Features:

  - Type-Safe Generics: a Buffer holds any value type, and iteration,
    draining and eviction hand values back without type assertions.

  - Eviction With Hand-Back: Push returns the items that just fell out of the
    window, oldest first, so running aggregates can subtract exactly what
    left instead of re-scanning the window.

  - Monotonic By Construction: insertion order is the sort order, so the
    eviction boundary is found by binary search. Appends and edge access are
    amortized O(1).

  - Two Insertion Policies: Push rejects a non-monotonic timestamp with
    ok=false for untrusted timestamp sources, while MustPush panics for
    pipelines whose ordering is guaranteed upstream.

  - Lazy Draining and Iteration: All, Values, Times and Drain are Go
    range-over-func iterators; Drain removes items only as the consumer
    advances.

Example: Windowed Running Sum

	// Keep one second of samples and maintain a running sum without
	// re-scanning the window.
	buf := timevec.New[int](time.Second, 64)

	sum := 0
	observe := func(at time.Duration, v int) {
		evicted, ok := buf.Push(at, v)
		if !ok {
			return // out-of-order sample, dropped
		}
		sum += v
		for _, old := range evicted {
			sum -= old.Value
		}
	}

	observe(0, 10)
	observe(500*time.Millisecond, 20)
	observe(1400*time.Millisecond, 30) // ages out the sample at t=0
	fmt.Println(sum, buf.Len())        // 50 2

Example: Builder

	// The builder accepts the window length in whichever unit is handy and
	// an optional capacity hint for the backing store.
	buf := timevec.NewBuilder[string]().
		WithLimitMillis(250).
		WithCapacity(16).
		Build()

Example: Draining

	// Drain removes items as they are consumed; breaking out early leaves
	// the remainder buffered.
	for at, v := range buf.Drain() {
		fmt.Println(at, v)
	}
*/
package timevec
