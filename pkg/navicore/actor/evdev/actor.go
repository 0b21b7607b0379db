package evdev

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/navicore/pkg/navicore/backstack"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/internal"
)

// keyDown is the evdev key-event value for a press, as opposed to 0
// (release) or 2 (autorepeat hold) — only presses are translated.
const keyDown = 1

// Actor watches devicePath for Back/Menu button presses and translates
// them into navigation intents. MenuRoute names the destination the Menu
// button opens. OnInteraction, if set, is called on every accepted press —
// wire it to a timer.Actor's Notify method.
type Actor struct {
	devicePath string
	menuRoute  graph.RouteKey
	priority   intent.Priority

	// OnInteraction, if non-nil, is invoked after debouncing on every
	// accepted button press.
	OnInteraction func()

	out chan intent.Intent

	mu         sync.Mutex
	lastAccept time.Time
}

// New constructs an Actor reading devicePath, translating its Menu button
// into a NavigateTo(menuRoute) at priority, its Back button into a Back at
// the same priority.
func New(devicePath string, menuRoute graph.RouteKey, priority intent.Priority) *Actor {
	return &Actor{
		devicePath: devicePath,
		menuRoute:  menuRoute,
		priority:   priority,
		out:        make(chan intent.Intent, internal.DefaultLocalSourceCapacity),
	}
}

func (a *Actor) Name() string                   { return "evdev:" + a.devicePath }
func (a *Actor) Outbound() <-chan intent.Intent { return a.out }

// Run opens the device and translates events until ctx is done or the
// device read loop errors, closing the outbound stream on either exit.
func (a *Actor) Run(ctx context.Context) error {
	dev, err := evdev.Open(a.devicePath)
	if err != nil {
		close(a.out)
		return fmt.Errorf("evdev: open %s: %w", a.devicePath, err)
	}
	defer dev.Close()
	defer close(a.out)

	logger := internal.GetLogger()

	events := make(chan *evdev.InputEvent)
	errs := make(chan error, 1)
	go func() {
		for {
			ev, err := dev.ReadOne()
			if err != nil {
				errs <- err
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			logger.Error("evdev read failed", "device", a.devicePath, "error", err)
			return err
		case ev := <-events:
			a.handle(ev.Type, ev.Code, ev.Value)
		}
	}
}

func (a *Actor) handle(evType evdev.EvType, code evdev.EvCode, value int32) {
	if evType != evdev.EV_KEY || value != keyDown {
		return
	}
	if !a.debounce() {
		return
	}
	if a.OnInteraction != nil {
		a.OnInteraction()
	}

	switch code {
	case evdev.KEY_BACK:
		a.out <- intent.NewBack(intent.SenderUser, a.priority)
	case evdev.KEY_MENU:
		a.out <- intent.NewNavigateTo(intent.SenderUser, a.priority, graph.Route{Key: a.menuRoute}, backstack.Options{})
	}
}

func (a *Actor) debounce() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	now := time.Now()
	if now.Sub(a.lastAccept) < internal.DefaultInputDelay {
		return false
	}
	a.lastAccept = now
	return true
}
