// Package navierr defines the sentinel error kinds raised across the
// navigation core and the helpers used to recognize them. Each kind
// corresponds to a row of the error-handling table in the navigation
// specification: recovered locally by the choreographer, or surfaced to the
// caller, never both.
package navierr

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions the choreographer recognizes by identity
// rather than by message. Wrap these with New to add context; callers
// should use the Is* helpers rather than errors.Is against the sentinels
// directly, so recognition logic lives in one place.
var (
	// ErrRouteNotInGraph indicates a NavigateTo intent named a route key
	// absent from the graph. Not locally recoverable: the intent is dropped.
	ErrRouteNotInGraph = errors.New("route not in graph")

	// ErrEmptyStack indicates Back or pop were attempted against an empty
	// back-stack. Recovered locally by emitting the root node.
	ErrEmptyStack = errors.New("back-stack is empty")

	// ErrNoMatch indicates pop_until found no entry matching its predicate.
	// Recovered locally by clearing the stack and re-pushing the root.
	ErrNoMatch = errors.New("no back-stack entry matches predicate")

	// ErrTransactionInProgress indicates apply was called while a
	// transaction with pending intents is already active. Not recoverable:
	// the new transaction is rejected and the prior one wins.
	ErrTransactionInProgress = errors.New("a transaction is already in progress")

	// ErrNoTransaction indicates next/complete was called with no
	// transaction installed. Not recoverable: the intent is dropped.
	ErrNoTransaction = errors.New("no transaction is active")

	// ErrInvalidState indicates the transaction manager observed an
	// internal inconsistency (a transaction with no iterator, or similar).
	// Treated as a fatal bug in the manager: it resets itself and the error
	// is surfaced once.
	ErrInvalidState = errors.New("transaction manager is in an invalid state")
)

// StateError wraps one of the sentinels above with the operation that
// produced it, mirroring gabagool's InfrastructureError shape.
type StateError struct {
	Op  string // operation that failed, e.g. "backstack.pop", "transaction.apply"
	Err error  // one of the sentinels in this package
}

func (e *StateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navicore: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navicore: %s", e.Op)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// New builds a StateError for op wrapping a sentinel.
func New(op string, sentinel error) *StateError {
	return &StateError{Op: op, Err: sentinel}
}

// IsRouteNotInGraph reports whether err is, or wraps, ErrRouteNotInGraph.
func IsRouteNotInGraph(err error) bool { return errors.Is(err, ErrRouteNotInGraph) }

// IsEmptyStack reports whether err is, or wraps, ErrEmptyStack.
func IsEmptyStack(err error) bool { return errors.Is(err, ErrEmptyStack) }

// IsNoMatch reports whether err is, or wraps, ErrNoMatch.
func IsNoMatch(err error) bool { return errors.Is(err, ErrNoMatch) }

// IsTransactionInProgress reports whether err is, or wraps, ErrTransactionInProgress.
func IsTransactionInProgress(err error) bool { return errors.Is(err, ErrTransactionInProgress) }

// IsNoTransaction reports whether err is, or wraps, ErrNoTransaction.
func IsNoTransaction(err error) bool { return errors.Is(err, ErrNoTransaction) }

// IsInvalidState reports whether err is, or wraps, ErrInvalidState.
func IsInvalidState(err error) bool { return errors.Is(err, ErrInvalidState) }
