// Package command defines the view-layer command vocabulary the
// choreographer emits after an intent passes validation — the target-side
// counterpart of package intent, one-to-one with the intent kinds that
// reach the emit stage.
package command

import (
	"github.com/BrandonKowalski/navicore/pkg/navicore/backstack"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
)

// Kind tags which variant of the command union a concrete Command is.
type Kind int

const (
	KindNavigateTo Kind = iota
	KindBack
	KindPopUpTo
	KindClearBackStack
	KindDialog
	KindDismissDialog
)

func (k Kind) String() string {
	switch k {
	case KindNavigateTo:
		return "NavigateTo"
	case KindBack:
		return "Back"
	case KindPopUpTo:
		return "PopUpTo"
	case KindClearBackStack:
		return "ClearBackStack"
	case KindDialog:
		return "Dialog"
	case KindDismissDialog:
		return "DismissDialog"
	default:
		return "Unknown"
	}
}

// Command is the common interface every concrete command variant
// implements.
type Command interface {
	Kind() Kind
}

// NavigateTo instructs the view layer to navigate to Route under Options.
type NavigateTo struct {
	Route   graph.Route
	Options backstack.Options
}

func (NavigateTo) Kind() Kind { return KindNavigateTo }

// Back instructs the view layer to pop its own presentation of the
// back-stack by one.
type Back struct{}

func (Back) Kind() Kind { return KindBack }

// PopUpTo instructs the view layer to pop until Route, inclusive or not.
type PopUpTo struct {
	Route     graph.RouteKey
	Inclusive bool
}

func (PopUpTo) Kind() Kind { return KindPopUpTo }

// ClearBackStack instructs the view layer to discard its back-stack.
type ClearBackStack struct{}

func (ClearBackStack) Kind() Kind { return KindClearBackStack }

// Dialog instructs the view layer to display overlay, optionally
// indicating a prior dialog it supersedes.
type Dialog struct {
	Overlay        intent.Overlay
	PriorDismissID *string
}

func (Dialog) Kind() Kind { return KindDialog }

// DismissDialog instructs the view layer to dismiss the dialog named by ID.
type DismissDialog struct {
	ID string
}

func (DismissDialog) Kind() Kind { return KindDismissDialog }

// FromIntent builds the command form of an intent, per the one-to-one
// mapping the specification prescribes between intent kinds that reach the
// emit stage and their command counterpart. It panics on an intent.Kind it
// does not recognize — every Intent implementation in package intent has a
// case here, so reaching default means a new variant was added without a
// matching command, a programming error to catch immediately.
func FromIntent(i intent.Intent) Command {
	switch v := i.(type) {
	case intent.NavigateTo:
		return NavigateTo{Route: v.Route, Options: v.Options}
	case intent.Back:
		return Back{}
	case intent.PopUpTo:
		return PopUpTo{Route: v.Route, Inclusive: v.Inclusive}
	case intent.ClearBackStack:
		return ClearBackStack{}
	case intent.InteractionTimeout:
		// InteractionTimeout itself has no direct command counterpart; the
		// choreographer's handling for it always re-derives the emitted
		// command (ClearBackStack) from the resulting state mutation, not
		// from FromIntent. Reaching here is a caller error.
		panic("command: InteractionTimeout has no direct command form")
	case intent.DisplayDialog:
		return Dialog{Overlay: v.Overlay, PriorDismissID: v.DismissID}
	case intent.DismissOverlay:
		return DismissDialog{ID: v.DialogID}
	case intent.CompleteNavTransaction:
		panic("command: CompleteNavTransaction has no direct command form")
	default:
		panic("command: unrecognized intent kind")
	}
}
