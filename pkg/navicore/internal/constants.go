package internal

import "time"

// Default timing constants, carried over from gabagool's own input-timing
// defaults (constants.DefaultInputDelay) and extended with the navigation
// pipeline's own tunables. Components fall back to these when their
// configuration leaves a duration unset.
const (
	// DefaultDebounceWindow is the debounce-distinct suppression window
	// applied to the merged intent stream (spec default 70ms).
	DefaultDebounceWindow = 70 * time.Millisecond

	// DefaultInputDelay is the hardware-level debounce applied by the evdev
	// actor between recognized button presses, carried over from gabagool's
	// constants.DefaultInputDelay.
	DefaultInputDelay = 20 * time.Millisecond

	// DefaultScreenTimeout is used when a node does not specify its own
	// screen timeout.
	DefaultScreenTimeout = 2 * time.Minute

	// DefaultMaxIntentRetries bounds retries of IllegalState-kind dispatch
	// errors (spec default 3).
	DefaultMaxIntentRetries = 3

	// DefaultCommandBufferCapacity is the default per-subscriber capacity
	// of the command broadcast, used when none is configured (spec default
	// 64). It is not enforced as a lower bound.
	DefaultCommandBufferCapacity = 64

	// DefaultLocalSourceCapacity is the buffer size of the choreographer's
	// local intent source (spec default 16).
	DefaultLocalSourceCapacity = 16
)

// Sender/priority defaults.
const (
	UserPriorityDefault   = 1
	UserPriorityHigh      = 10
	SystemPriorityDefault = 2
	SystemPriorityHigh    = 20
)
