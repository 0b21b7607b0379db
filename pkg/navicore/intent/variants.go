package intent

import (
	"github.com/BrandonKowalski/navicore/pkg/navicore/backstack"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
)

// Severity classifies an overlay's presentation weight; opaque to the core
// beyond this tag, which the synthesized error-dialog path (§4.6) sets to
// SeverityError.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Overlay is the opaque payload of a DisplayDialog intent — its rendering
// is entirely a view-layer concern; the core only carries it.
type Overlay struct {
	Title    string
	Message  string
	Severity Severity
}

// NavigateTo requests a transition to route under opts.
type NavigateTo struct {
	Base
	Route   graph.Route
	Options backstack.Options
}

func (NavigateTo) Kind() Kind { return KindNavigateTo }

// DebounceKey intentionally excludes Route.Params (opaque, possibly
// non-comparable application data) so two NavigateTo intents naming the
// same destination under the same options, sender and priority are
// considered equal for debounce purposes regardless of what they carry
// alongside the route.
func (n NavigateTo) DebounceKey() any {
	return struct {
		kind     Kind
		route    graph.RouteKey
		options  backstack.Options
		sender   Sender
		priority Priority
	}{KindNavigateTo, n.Route.Key, n.Options, n.Sender, n.Priority}
}

// NewNavigateTo mints a NavigateTo intent with a fresh correlation ID.
func NewNavigateTo(sender Sender, priority Priority, route graph.Route, opts backstack.Options) NavigateTo {
	return NavigateTo{Base: NewBase(sender, priority), Route: route, Options: opts}
}

// Back requests a single pop of the back-stack.
type Back struct {
	Base
}

func (Back) Kind() Kind { return KindBack }
func (b Back) DebounceKey() any {
	return struct{ kind Kind }{KindBack}
}

// NewBack mints a Back intent.
func NewBack(sender Sender, priority Priority) Back {
	return Back{Base: NewBase(sender, priority)}
}

// PopUpTo requests popping the back-stack until route is found.
type PopUpTo struct {
	Base
	Route     graph.RouteKey
	Inclusive bool
}

func (PopUpTo) Kind() Kind { return KindPopUpTo }
func (p PopUpTo) DebounceKey() any {
	return struct {
		kind      Kind
		route     graph.RouteKey
		inclusive bool
	}{KindPopUpTo, p.Route, p.Inclusive}
}

// NewPopUpTo mints a PopUpTo intent.
func NewPopUpTo(sender Sender, priority Priority, route graph.RouteKey, inclusive bool) PopUpTo {
	return PopUpTo{Base: NewBase(sender, priority), Route: route, Inclusive: inclusive}
}

// ClearBackStack requests dropping the entire back-stack.
type ClearBackStack struct {
	Base
}

func (ClearBackStack) Kind() Kind { return KindClearBackStack }
func (c ClearBackStack) DebounceKey() any {
	return struct{ kind Kind }{KindClearBackStack}
}

// NewClearBackStack mints a ClearBackStack intent.
func NewClearBackStack(sender Sender, priority Priority) ClearBackStack {
	return ClearBackStack{Base: NewBase(sender, priority)}
}

// InteractionTimeout is emitted by the inactivity timer actor after its
// configured duration elapses with no interaction. Always system-sent.
type InteractionTimeout struct {
	Base
}

func (InteractionTimeout) Kind() Kind { return KindInteractionTimeout }
func (i InteractionTimeout) DebounceKey() any {
	return struct{ kind Kind }{KindInteractionTimeout}
}

// NewInteractionTimeout mints an InteractionTimeout intent at the given
// priority (sender is always system).
func NewInteractionTimeout(priority Priority) InteractionTimeout {
	return InteractionTimeout{Base: NewBase(SenderSystem, priority)}
}

// DisplayDialog requests an overlay be shown. DismissID optionally names a
// previously shown overlay this one supersedes.
type DisplayDialog struct {
	Base
	Overlay   Overlay
	DismissID *string
}

func (DisplayDialog) Kind() Kind { return KindDisplayDialog }
func (d DisplayDialog) DebounceKey() any {
	return struct {
		kind    Kind
		overlay Overlay
	}{KindDisplayDialog, d.Overlay}
}

// NewDisplayDialog mints a DisplayDialog intent.
func NewDisplayDialog(sender Sender, priority Priority, overlay Overlay, dismissID *string) DisplayDialog {
	return DisplayDialog{Base: NewBase(sender, priority), Overlay: overlay, DismissID: dismissID}
}

// DismissOverlay requests a previously displayed overlay be dismissed.
type DismissOverlay struct {
	Base
	DialogID string
}

func (DismissOverlay) Kind() Kind { return KindDismissOverlay }
func (d DismissOverlay) DebounceKey() any {
	return struct {
		kind     Kind
		dialogID string
	}{KindDismissOverlay, d.DialogID}
}

// NewDismissOverlay mints a DismissOverlay intent.
func NewDismissOverlay(sender Sender, priority Priority, dialogID string) DismissOverlay {
	return DismissOverlay{Base: NewBase(sender, priority), DialogID: dialogID}
}

// CompleteNavTransaction signals that a redirect-chain prefix intent
// finished successfully; route is only used for logging/diagnostics — the
// transaction manager itself tracks the original intent. Always
// system-sent at priority 0.
type CompleteNavTransaction struct {
	Base
	Route graph.RouteKey
}

func (CompleteNavTransaction) Kind() Kind { return KindCompleteNavTransaction }
func (c CompleteNavTransaction) DebounceKey() any {
	return struct {
		kind  Kind
		route graph.RouteKey
	}{KindCompleteNavTransaction, c.Route}
}

// NewCompleteNavTransaction mints a CompleteNavTransaction intent.
func NewCompleteNavTransaction(route graph.RouteKey) CompleteNavTransaction {
	return CompleteNavTransaction{Base: NewBase(SenderSystem, 0), Route: route}
}
