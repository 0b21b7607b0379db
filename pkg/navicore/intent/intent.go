package intent

import "github.com/BrandonKowalski/navicore/pkg/navicore/internal"

// Sender attributes an intent to the actor category that produced it.
type Sender int

const (
	SenderUser Sender = iota
	SenderSystem
)

func (s Sender) String() string {
	switch s {
	case SenderUser:
		return "user"
	case SenderSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Priority is an integer attached to an intent controlling its ordering
// within merged sets (lower runs first — see validate.Chain).
type Priority int

// Sender/priority defaults.
const (
	PriorityUserDefault   Priority = internal.UserPriorityDefault
	PriorityUserHigh      Priority = internal.UserPriorityHigh
	PrioritySystemDefault Priority = internal.SystemPriorityDefault
	PrioritySystemHigh    Priority = internal.SystemPriorityHigh
)

// Kind tags which variant of the union a concrete Intent value is.
type Kind int

const (
	KindNavigateTo Kind = iota
	KindBack
	KindPopUpTo
	KindClearBackStack
	KindInteractionTimeout
	KindDisplayDialog
	KindDismissOverlay
	KindCompleteNavTransaction
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
	case KindInteractionTimeout:
		return "InteractionTimeout"
	case KindDisplayDialog:
		return "DisplayDialog"
	case KindDismissOverlay:
		return "DismissOverlay"
	case KindCompleteNavTransaction:
		return "CompleteNavTransaction"
	default:
		return "Unknown"
	}
}

// Intent is the common interface every concrete variant implements. ID,
// actor attribution, and priority are shared fields, promoted from the
// embedded Base; Kind and DebounceKey are variant-specific.
type Intent interface {
	IntentID() string
	IntentSender() Sender
	IntentPriority() Priority
	Kind() Kind

	// DebounceKey returns a comparable value representing this intent's
	// identity for debounce-distinct purposes, deliberately excluding the
	// per-instance correlation ID (two structurally identical NavigateTo
	// intents published moments apart must compare equal even though each
	// carries its own ID). The design notes warn against relying on
	// derived equality of heterogeneous variants — this method is the
	// explicit equivalence relation that replaces it.
	DebounceKey() any
}

// Base carries the fields every intent variant shares. Embed it anonymously
// in a concrete variant to satisfy the IntentID/IntentSender/IntentPriority
// methods of the Intent interface by promotion.
type Base struct {
	ID       string
	Sender   Sender
	Priority Priority
}

func (b Base) IntentID() string         { return b.ID }
func (b Base) IntentSender() Sender     { return b.Sender }
func (b Base) IntentPriority() Priority { return b.Priority }

// NewBase mints a Base with a fresh correlation ID for sender/priority.
func NewBase(sender Sender, priority Priority) Base {
	return Base{ID: internal.NewIntentID(), Sender: sender, Priority: priority}
}
