package timer

import (
	"context"
	"time"

	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/internal"
	"github.com/BrandonKowalski/navicore/pkg/navicore/state"
)

// Actor is the inactivity-timer actor. It holds one pending timer at a
// time, restarted whenever an interaction pulse arrives, the current node
// changes, or the lock-reason observable changes.
type Actor struct {
	current *state.Cell[*graph.Node]
	lock    *lockReason
	pulses  chan struct{}
	out     chan intent.Intent

	defaultTimeout time.Duration
}

// New constructs an Actor watching current for screen-timeout lookups and
// publishing InteractionTimeout intents to its own outbound stream.
// defaultTimeout substitutes for nodes that leave ScreenTimeout unset.
func New(current *state.Cell[*graph.Node], defaultTimeout time.Duration) *Actor {
	return &Actor{
		current:        current,
		lock:           newLockReason(),
		pulses:         make(chan struct{}, 1),
		out:            make(chan intent.Intent, internal.DefaultLocalSourceCapacity),
		defaultTimeout: defaultTimeout,
	}
}

// Outbound is the actor's stream of InteractionTimeout intents.
func (a *Actor) Outbound() <-chan intent.Intent {
	return a.out
}

// Notify records an interaction pulse, restarting the pending timer. It
// never blocks: a pulse already pending for the actor's next select
// iteration makes a second one redundant.
func (a *Actor) Notify() {
	select {
	case a.pulses <- struct{}{}:
	default:
	}
}

// Acquire sets the lock-reason observable, suppressing inactivity timeouts
// until Release is called. Idempotent; safe from any goroutine.
func (a *Actor) Acquire(reason string) {
	a.lock.Set(&reason)
}

// Release clears the lock-reason observable, scheduling a fresh timer on
// the actor's next pulse. Idempotent; safe from any goroutine.
func (a *Actor) Release() {
	a.lock.Set(nil)
}

// Locked reports whether a lock reason is currently held.
func (a *Actor) Locked() bool {
	return a.lock.Load() != nil
}

// Run drives the actor's merged-pulse loop until ctx is done, at which
// point it closes its outbound stream. It must be run in its own
// goroutine.
func (a *Actor) Run(ctx context.Context) {
	defer close(a.out)

	currentCh := skipInitial(ctx, a.current.Watch(ctx))
	lockCh := skipInitial(ctx, a.lock.Watch(ctx))

	var pending *time.Timer
	var fired <-chan time.Time

	stop := func() {
		if pending != nil {
			pending.Stop()
			pending = nil
		}
		fired = nil
	}
	defer stop()

	restart := func() {
		stop()
		if a.Locked() {
			return
		}
		timeout := a.currentTimeout()
		if timeout == graph.NoTimeout {
			return
		}
		pending = time.NewTimer(timeout)
		fired = pending.C
	}

	restart() // the initial pulse at start-up

	for {
		select {
		case <-ctx.Done():
			return

		case <-a.pulses:
			restart()

		case _, ok := <-currentCh:
			if !ok {
				currentCh = nil
				continue
			}
			restart()

		case _, ok := <-lockCh:
			if !ok {
				lockCh = nil
				continue
			}
			restart()

		case <-fired:
			select {
			case a.out <- intent.NewInteractionTimeout(intent.PrioritySystemDefault):
			case <-ctx.Done():
				return
			}
			fired = nil
		}
	}
}

func (a *Actor) currentTimeout() time.Duration {
	node := a.current.Load()
	if node == nil {
		return a.defaultTimeout
	}
	return node.Timeout(a.defaultTimeout)
}

// skipInitial forwards every value from ch except the first, closing its
// returned channel once ch closes (which Cell.Watch does on ctx.Done,
// bounding this goroutine's lifetime to ctx's).
func skipInitial[T any](ctx context.Context, ch <-chan T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		first := true
		for v := range ch {
			if first {
				first = false
				continue
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
