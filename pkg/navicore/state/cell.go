package state

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

// Cell is the "state flow" pattern the specification's design notes call
// for: an atomically-readable latest value plus a change signal, generic
// over the value type so both the current-node observable and the
// inactivity timer's lock-reason observable (state/cell.go and
// timer/lock.go) share one implementation. Reads never block on writers;
// Set is last-write-wins, matching the single-slot atomic publishing
// policy the concurrency model calls for.
type Cell[T any] struct {
	v atomic.Pointer[T]

	mu      sync.Mutex
	changed chan struct{}
}

// NewCell constructs a Cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	c := &Cell[T]{changed: make(chan struct{})}
	c.v.Store(&initial)
	return c
}

// Load returns the current value.
func (c *Cell[T]) Load() T {
	return *c.v.Load()
}

// Set stores v as the new current value and wakes every pending Watch
// call. Consecutive equal values are not deduplicated — callers that want
// distinct-only semantics filter on their own side, matching the
// specification's "coalescing of equal consecutive values is permitted"
// allowance rather than a requirement.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.v.Store(&v)
	close(c.changed)
	c.changed = make(chan struct{})
	c.mu.Unlock()
}

func (c *Cell[T]) changedCh() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.changed
}

// Watch returns a channel that receives the cell's current value
// immediately, then every subsequent value on change, until ctx is done
// (at which point the channel is closed). Values that change faster than
// the consumer drains them are coalesced into the latest — the consumer
// always observes the most recent value, per the specification's
// broadcast semantics, not necessarily every intermediate one.
func (c *Cell[T]) Watch(ctx context.Context) <-chan T {
	out := make(chan T, 1)
	go func() {
		defer close(out)
		// notify is taken before each Load so a Set landing between the
		// Load and the next wait closes it rather than going unseen.
		notify := c.changedCh()
		last := c.Load()
		select {
		case out <- last:
		case <-ctx.Done():
			return
		}
		for {
			select {
			case <-notify:
				notify = c.changedCh()
				v := c.Load()
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
