package choreographer

import (
	"context"
	"sync"

	"github.com/BrandonKowalski/navicore/pkg/navicore/command"
)

// broadcast fans a single command out to every current subscriber, each
// over its own buffered channel. Publishing blocks until every subscriber
// has room (the specification's "overflow policy = suspend" for the
// primary command path), so a slow subscriber applies backpressure to the
// whole pipeline rather than silently missing commands.
type broadcast struct {
	mu       sync.Mutex
	capacity int
	subs     []chan command.Command
}

func newBroadcast(capacity int) *broadcast {
	return &broadcast{capacity: capacity}
}

// subscribe registers a new subscriber and returns its receive-only
// channel. The channel is never closed by publish; callers stop reading
// once the choreographer's driving context is done.
func (b *broadcast) subscribe() <-chan command.Command {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan command.Command, b.capacity)
	b.subs = append(b.subs, ch)
	return ch
}

// publish delivers cmd to every current subscriber, blocking on a full
// subscriber until it drains or ctx is done.
func (b *broadcast) publish(ctx context.Context, cmd command.Command) {
	b.mu.Lock()
	subs := make([]chan command.Command, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- cmd:
		case <-ctx.Done():
			return
		}
	}
}
