package evdev

import (
	"testing"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
)

func newTestActor() *Actor {
	return New("/dev/input/event0", graph.RouteKey{Kind: "menu"}, intent.PriorityUserDefault)
}

func TestHandle_BackButtonDownEmitsBack(t *testing.T) {
	a := newTestActor()
	a.handle(evdev.EV_KEY, evdev.KEY_BACK, keyDown)

	select {
	case got := <-a.out:
		if got.Kind() != intent.KindBack {
			t.Fatalf("Kind() = %v, want Back", got.Kind())
		}
	case <-time.After(time.Second):
		t.Fatalf("no intent emitted")
	}
}

func TestHandle_MenuButtonDownEmitsNavigateTo(t *testing.T) {
	a := newTestActor()
	a.handle(evdev.EV_KEY, evdev.KEY_MENU, keyDown)

	select {
	case got := <-a.out:
		nav, ok := got.(intent.NavigateTo)
		if !ok {
			t.Fatalf("got %T, want intent.NavigateTo", got)
		}
		if nav.Route.Key.Kind != "menu" {
			t.Fatalf("route = %+v", nav.Route)
		}
	case <-time.After(time.Second):
		t.Fatalf("no intent emitted")
	}
}

func TestHandle_IgnoresKeyUpAndNonKeyEvents(t *testing.T) {
	a := newTestActor()
	a.handle(evdev.EV_KEY, evdev.KEY_BACK, 0)
	a.handle(evdev.EV_SYN, 0, keyDown)

	select {
	case got := <-a.out:
		t.Fatalf("unexpected emission: %+v", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandle_DebouncesRapidPresses(t *testing.T) {
	a := newTestActor()
	a.handle(evdev.EV_KEY, evdev.KEY_BACK, keyDown)
	a.handle(evdev.EV_KEY, evdev.KEY_BACK, keyDown) // within the debounce window, dropped

	<-a.out // the first press

	select {
	case got := <-a.out:
		t.Fatalf("unexpected second emission within debounce window: %+v", got)
	case <-time.After(10 * time.Millisecond):
	}
}

func TestHandle_OnInteractionFiresOnAcceptedPress(t *testing.T) {
	a := newTestActor()
	fired := false
	a.OnInteraction = func() { fired = true }

	a.handle(evdev.EV_KEY, evdev.KEY_BACK, keyDown)
	<-a.out

	if !fired {
		t.Fatalf("OnInteraction was not called")
	}
}

func TestName_IncludesDevicePath(t *testing.T) {
	a := newTestActor()
	if a.Name() != "evdev:/dev/input/event0" {
		t.Fatalf("Name() = %q", a.Name())
	}
}
