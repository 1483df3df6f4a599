package windowstat

import (
	"time"

	"github.com/benbjohnson/clock"
	timevec "github.com/jonoton/go-timevec"
)

// Limiter is a sliding-window rate limiter: at most limit events may occur in
// any window-length span. It tracks individual event timestamps, so old
// events expire one by one rather than in fixed buckets. Denied events are
// not recorded and do not consume the window.
type Limiter struct {
	limit int
	buf   *timevec.Buffer[struct{}]
	clk   clock.Clock
	epoch time.Time
}

// LimiterOption configures a Limiter.
type LimiterOption func(*Limiter)

// WithClock sets the clock Allow reads. The default is the wall clock; tests
// substitute a mock.
func WithClock(clk clock.Clock) LimiterOption {
	return func(l *Limiter) {
		l.clk = clk
	}
}

// NewLimiter creates a limiter admitting at most limit events per window. A
// limit of zero or less denies everything.
func NewLimiter(limit int, window time.Duration, opts ...LimiterOption) *Limiter {
	l := &Limiter{
		limit: limit,
		buf: timevec.NewBuilder[struct{}]().
			WithLimit(window).
			WithCapacity(limit + 1).
			Build(),
		clk: clock.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.epoch = l.clk.Now()
	return l
}

// Allow reports whether an event may proceed now, recording it when admitted.
func (l *Limiter) Allow() bool {
	return l.AllowAt(l.clk.Now().Sub(l.epoch))
}

// AllowAt reports whether an event at the given timestamp, expressed as
// elapsed time since the limiter's creation, may proceed, recording it when
// admitted. An event that does not land after the newest recorded one is
// recorded a nanosecond after it, which keeps the record strictly ordered
// when the clock resolution cannot separate a burst.
func (l *Limiter) AllowAt(timestamp time.Duration) bool {
	if _, ok := l.buf.Push(timestamp, struct{}{}); !ok {
		back, _ := l.buf.Back()
		l.buf.Push(back.Time+1, struct{}{})
	}
	if l.buf.Len() > l.limit {
		l.buf.PopBack()
		return false
	}
	return true
}

// Count returns the number of admitted events still inside the window, as of
// the most recently attempted event.
func (l *Limiter) Count() int {
	return l.buf.Len()
}

// Reset forgets all admitted events.
func (l *Limiter) Reset() {
	l.buf.Clear()
}
