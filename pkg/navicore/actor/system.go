package actor

import (
	"sync"

	"github.com/BrandonKowalski/navicore/pkg/navicore/backstack"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/internal"
)

// System is the generic background/system actor: every call attaches
// intent.SenderSystem and the actor's configured priority. In addition to
// the navigation surface User exposes, System can also raise and dismiss
// overlays and acknowledge redirect-chain steps, the two intent kinds a
// background component — rather than a person — typically produces.
type System struct {
	name     string
	priority intent.Priority
	out      chan intent.Intent

	closeOnce sync.Once
}

// NewSystem constructs a System actor publishing at the given priority.
func NewSystem(name string, priority intent.Priority) *System {
	return &System{
		name:     name,
		priority: priority,
		out:      make(chan intent.Intent, internal.DefaultLocalSourceCapacity),
	}
}

func (s *System) Name() string                   { return s.name }
func (s *System) Outbound() <-chan intent.Intent { return s.out }

// Close stops the actor, closing its outbound stream. Idempotent.
func (s *System) Close() {
	s.closeOnce.Do(func() { close(s.out) })
}

// Navigate requests a transition to route under opts.
func (s *System) Navigate(route graph.Route, opts backstack.Options) {
	s.out <- intent.NewNavigateTo(intent.SenderSystem, s.priority, route, opts)
}

// Back requests a single back-stack pop.
func (s *System) Back() {
	s.out <- intent.NewBack(intent.SenderSystem, s.priority)
}

// PopUpTo requests popping the back-stack until key is found.
func (s *System) PopUpTo(key graph.RouteKey, inclusive bool) {
	s.out <- intent.NewPopUpTo(intent.SenderSystem, s.priority, key, inclusive)
}

// ClearBackStack requests dropping the entire back-stack.
func (s *System) ClearBackStack() {
	s.out <- intent.NewClearBackStack(intent.SenderSystem, s.priority)
}

// DisplayDialog requests an overlay be shown, optionally superseding a
// previously shown one.
func (s *System) DisplayDialog(overlay intent.Overlay, dismissID *string) {
	s.out <- intent.NewDisplayDialog(intent.SenderSystem, s.priority, overlay, dismissID)
}

// DismissOverlay requests a previously displayed overlay be dismissed.
func (s *System) DismissOverlay(dialogID string) {
	s.out <- intent.NewDismissOverlay(intent.SenderSystem, s.priority, dialogID)
}

// CompleteNavTransaction acknowledges that a redirect-chain prefix intent
// finished successfully.
func (s *System) CompleteNavTransaction(route graph.RouteKey) {
	s.out <- intent.NewCompleteNavTransaction(route)
}
