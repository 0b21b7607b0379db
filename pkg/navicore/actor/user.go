package actor

import (
	"sync"

	"github.com/BrandonKowalski/navicore/pkg/navicore/backstack"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/internal"
)

// User is the generic user-facing actor: every call attaches
// intent.SenderUser and the actor's configured priority, then blocks until
// the intent is accepted onto the outbound stream.
type User struct {
	name     string
	priority intent.Priority
	out      chan intent.Intent

	closeOnce sync.Once
}

// NewUser constructs a User actor publishing at the given priority.
func NewUser(name string, priority intent.Priority) *User {
	return &User{
		name:     name,
		priority: priority,
		out:      make(chan intent.Intent, internal.DefaultLocalSourceCapacity),
	}
}

func (u *User) Name() string                   { return u.name }
func (u *User) Outbound() <-chan intent.Intent { return u.out }

// Close stops the actor, closing its outbound stream. Idempotent.
func (u *User) Close() {
	u.closeOnce.Do(func() { close(u.out) })
}

// Navigate requests a transition to route under opts.
func (u *User) Navigate(route graph.Route, opts backstack.Options) {
	u.out <- intent.NewNavigateTo(intent.SenderUser, u.priority, route, opts)
}

// Back requests a single back-stack pop.
func (u *User) Back() {
	u.out <- intent.NewBack(intent.SenderUser, u.priority)
}

// PopUpTo requests popping the back-stack until key is found.
func (u *User) PopUpTo(key graph.RouteKey, inclusive bool) {
	u.out <- intent.NewPopUpTo(intent.SenderUser, u.priority, key, inclusive)
}

// ClearBackStack requests dropping the entire back-stack.
func (u *User) ClearBackStack() {
	u.out <- intent.NewClearBackStack(intent.SenderUser, u.priority)
}

// DismissOverlay requests a previously displayed overlay be dismissed.
func (u *User) DismissOverlay(dialogID string) {
	u.out <- intent.NewDismissOverlay(intent.SenderUser, u.priority, dialogID)
}
