// Package windowstat builds sliding-window computations on top of the
// timevec buffer: event counting, rate limiting, running aggregates, windowed
// extrema and inter-arrival jitter. Each type keeps its running state in sync
// by consuming the items the buffer evicts, so no computation ever re-scans
// its window on insert.
//
// Like the buffer itself, none of these types are safe for concurrent use.
package windowstat
