package choreographer

import (
	"time"

	"github.com/BrandonKowalski/navicore/pkg/navicore/internal"
)

// Options tunes the choreographer's pipeline. The zero value of every field
// falls back to the package's configured default.
type Options struct {
	// DebounceWindow is the debounce-distinct suppression window applied
	// to the merged intent stream.
	DebounceWindow time.Duration

	// MaxIntentRetries bounds how many times an intent whose dispatch
	// failed with navierr.ErrInvalidState is retried before being given
	// up on and logged.
	MaxIntentRetries int

	// CommandBufferCapacity is the per-subscriber buffer size of the
	// command broadcast.
	CommandBufferCapacity int

	// LocalSourceCapacity is the buffer size of the choreographer's own
	// local intent source (error dialogs, redirect-chain steps, retries).
	LocalSourceCapacity int
}

func (o Options) withDefaults() Options {
	if o.DebounceWindow == 0 {
		o.DebounceWindow = internal.DefaultDebounceWindow
	}
	if o.MaxIntentRetries == 0 {
		o.MaxIntentRetries = internal.DefaultMaxIntentRetries
	}
	if o.CommandBufferCapacity == 0 {
		o.CommandBufferCapacity = internal.DefaultCommandBufferCapacity
	}
	if o.LocalSourceCapacity == 0 {
		o.LocalSourceCapacity = internal.DefaultLocalSourceCapacity
	}
	return o
}
