package choreographer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/internal"
	"github.com/BrandonKowalski/navicore/pkg/navicore/navierr"
)

func (c *Choreographer) run(ctx context.Context) {
	if c.timerActor != nil {
		go c.timerActor.Run(ctx)
	}

	merged := c.merge(ctx)
	admitted := debounceDistinct(ctx, merged, c.cfg.DebounceWindow)
	logger := internal.GetLogger()

	for {
		select {
		case <-ctx.Done():
			return
		case i, ok := <-admitted:
			if !ok {
				return
			}
			c.dispatch(ctx, i, 0, logger)
		}
	}
}

// merge fans every registered actor's stream, the inactivity-timer actor's
// stream (when enabled), plus the local source into a single channel, preserving each source's own enqueue order but leaving
// cross-source order to arrival at the merge point. It closes its output
// once every input has closed or ctx is done.
func (c *Choreographer) merge(ctx context.Context) <-chan intent.Intent {
	out := make(chan intent.Intent)

	pump := func(wg *sync.WaitGroup, in <-chan intent.Intent) {
		defer wg.Done()
		for {
			select {
			case i, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- i:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}

	var wg sync.WaitGroup
	wg.Add(len(c.sources) + 1)
	for _, s := range c.sources {
		go pump(&wg, s.Outbound())
	}
	go pump(&wg, c.local)
	if c.timerActor != nil {
		wg.Add(1)
		go pump(&wg, c.timerActor.Outbound())
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// debounceDistinct suppresses an admitted intent whose DebounceKey equals
// the most recently admitted one, if it arrives within window of that
// admission. Intents are compared only against the previous admission,
// not every intervening suppressed one, matching the specification's
// "re-admitted after the window" rule.
func debounceDistinct(ctx context.Context, in <-chan intent.Intent, window time.Duration) <-chan intent.Intent {
	out := make(chan intent.Intent)
	go func() {
		defer close(out)

		var lastKey any
		var lastAt time.Time
		haveLast := false

		for {
			select {
			case <-ctx.Done():
				return
			case i, ok := <-in:
				if !ok {
					return
				}
				now := time.Now()
				key := i.DebounceKey()
				if haveLast && key == lastKey && now.Sub(lastAt) < window {
					continue
				}
				haveLast = true
				lastKey = key
				lastAt = now

				select {
				case out <- i:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// dispatch runs one intent through dispatchOnce, retrying navierr's
// InvalidState-kind failures up to cfg.MaxIntentRetries before logging and
// giving up. Cancellation propagates without logging, per the error
// table's surface policy. A handler panic is recovered, logged, and
// reported as an InvalidState failure, so it is retried and then dropped
// like any other rather than crashing the pipeline goroutine.
func (c *Choreographer) dispatch(ctx context.Context, i intent.Intent, attempt int, logger *slog.Logger) {
	err := c.dispatchOnceSafe(ctx, i, logger)
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	if navierr.IsInvalidState(err) && attempt < c.cfg.MaxIntentRetries {
		logger.Warn("retrying intent after invalid-state error", "kind", i.Kind().String(), "attempt", attempt+1, "error", err)
		c.dispatch(ctx, i, attempt+1, logger)
		return
	}
	logger.Error("dispatch failed", "kind", i.Kind().String(), "error", err)
}

// dispatchOnceSafe wraps dispatchOnce with panic recovery: a handler panic
// is logged and surfaced as an error so dispatch's normal retry/give-up
// path handles it, rather than the panic unwinding the pipeline's own
// goroutine and silently stopping the choreographer.
func (c *Choreographer) dispatchOnceSafe(ctx context.Context, i intent.Intent, logger *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("dispatch panicked", "kind", i.Kind().String(), "panic", r)
			err = navierr.New("choreographer.dispatch", navierr.ErrInvalidState)
		}
	}()
	return c.dispatchOnce(ctx, i)
}

func (c *Choreographer) dispatchOnce(ctx context.Context, i intent.Intent) error {
	if c.timerActor != nil && i.IntentSender() == intent.SenderUser {
		c.timerActor.Notify()
	}

	switch v := i.(type) {
	case intent.NavigateTo:
		return c.handleNavigateTo(ctx, v)
	case intent.PopUpTo:
		return c.handlePopUpTo(ctx, v)
	case intent.Back:
		return c.handleBack(ctx, v)
	case intent.ClearBackStack:
		return c.handleClearOrTimeout(ctx, v)
	case intent.InteractionTimeout:
		return c.handleClearOrTimeout(ctx, v)
	case intent.DisplayDialog:
		return c.handleDialogLike(ctx, v)
	case intent.DismissOverlay:
		return c.handleDialogLike(ctx, v)
	case intent.CompleteNavTransaction:
		return c.handleCompleteNavTransaction(ctx, v)
	default:
		return navierr.New("choreographer.dispatch", navierr.ErrInvalidState)
	}
}
