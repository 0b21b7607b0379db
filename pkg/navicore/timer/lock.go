package timer

import "github.com/BrandonKowalski/navicore/pkg/navicore/state"

// lockReason is the single-slot, last-write-wins observable the
// specification calls the "lock-reason observable": nil means unlocked, a
// non-nil pointer carries whatever opaque reason the caller acquired it
// with. Acquire and Release are both idempotent and may be called from any
// goroutine since Cell.Set already serializes writers.
type lockReason = state.Cell[*string]

func newLockReason() *lockReason {
	return state.NewCell[*string](nil)
}
