package timer_test

import (
	"context"
	"testing"
	"time"

	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/state"
	"github.com/BrandonKowalski/navicore/pkg/navicore/timer"
)

func nodeWithTimeout(d time.Duration) *graph.Node {
	return &graph.Node{RouteKey: graph.RouteKey{Kind: "a"}, ScreenTimeout: d}
}

func recvTimeout(t *testing.T, out <-chan intent.Intent, within time.Duration) intent.InteractionTimeout {
	t.Helper()
	select {
	case got, ok := <-out:
		if !ok {
			t.Fatalf("outbound stream closed before a timeout arrived")
		}
		timeout, ok := got.(intent.InteractionTimeout)
		if !ok {
			t.Fatalf("got %T, want intent.InteractionTimeout", got)
		}
		return timeout
	case <-time.After(within):
		t.Fatalf("no timeout within %v", within)
	}
	panic("unreachable")
}

func expectSilence(t *testing.T, out <-chan intent.Intent, within time.Duration) {
	t.Helper()
	select {
	case got := <-out:
		t.Fatalf("unexpected emission: %+v", got)
	case <-time.After(within):
	}
}

func TestActor_FiresAfterTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	current := state.NewCell(nodeWithTimeout(20 * time.Millisecond))
	a := timer.New(current, time.Minute)
	go a.Run(ctx)

	got := recvTimeout(t, a.Outbound(), 200*time.Millisecond)
	if got.IntentSender() != intent.SenderSystem {
		t.Fatalf("sender = %v, want system", got.IntentSender())
	}
}

func TestActor_NotifyRestartsTimer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	current := state.NewCell(nodeWithTimeout(60 * time.Millisecond))
	a := timer.New(current, time.Minute)
	go a.Run(ctx)

	// Keep pulsing faster than the timeout; no timeout should fire.
	deadline := time.Now().Add(150 * time.Millisecond)
	for time.Now().Before(deadline) {
		a.Notify()
		time.Sleep(20 * time.Millisecond)
	}
	expectSilence(t, a.Outbound(), 10*time.Millisecond)

	// Once pulses stop, the timer should fire.
	recvTimeout(t, a.Outbound(), 200*time.Millisecond)
}

func TestActor_LockSuppressesTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	current := state.NewCell(nodeWithTimeout(30 * time.Millisecond))
	a := timer.New(current, time.Minute)
	a.Acquire("modal-open")
	go a.Run(ctx)

	expectSilence(t, a.Outbound(), 100*time.Millisecond)

	a.Release()
	recvTimeout(t, a.Outbound(), 200*time.Millisecond)
}

func TestActor_AcquireCancelsPendingTimer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	current := state.NewCell(nodeWithTimeout(40 * time.Millisecond))
	a := timer.New(current, time.Minute)
	go a.Run(ctx)

	time.Sleep(10 * time.Millisecond)
	a.Acquire("blocking")

	expectSilence(t, a.Outbound(), 100*time.Millisecond)
}

func TestActor_CurrentNodeChangeRestartsWithNewTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	current := state.NewCell(nodeWithTimeout(5 * time.Second))
	a := timer.New(current, time.Minute)
	go a.Run(ctx)

	time.Sleep(10 * time.Millisecond)
	current.Set(nodeWithTimeout(20 * time.Millisecond))

	recvTimeout(t, a.Outbound(), 200*time.Millisecond)
}

func TestActor_NoTimeoutDisablesTimer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	current := state.NewCell(nodeWithTimeout(graph.NoTimeout))
	a := timer.New(current, 30*time.Millisecond)
	go a.Run(ctx)

	expectSilence(t, a.Outbound(), 100*time.Millisecond)
}

func TestActor_ClosesOutboundOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	current := state.NewCell(nodeWithTimeout(time.Minute))
	a := timer.New(current, time.Minute)
	go a.Run(ctx)

	cancel()

	select {
	case _, ok := <-a.Outbound():
		if ok {
			t.Fatalf("expected outbound stream to be closed, got a value")
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("outbound stream did not close after cancel")
	}
}
