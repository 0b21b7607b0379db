package validate

import (
	"context"

	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
)

// Validator evaluates one intent against the node it would make (or
// already has made, for Back/PopUpTo — see the design notes' open
// question on pre- vs post-mutation validation) current. Validators may
// suspend (await external state, e.g. an auth check) — ctx carries the
// pipeline's ambient cancellation signal and must be honored.
type Validator interface {
	// Name identifies the validator in logs and error messages.
	Name() string

	// Priority controls evaluation order within a Chain: ascending, lower
	// runs first, ties broken by the order the validator was registered.
	Priority() int

	// Validate evaluates intent i against node, the node considered
	// current for this intent.
	Validate(ctx context.Context, i intent.Intent, node *graph.Node) (Result, error)
}

// Func adapts a plain function to the Validator interface for validators
// with no internal state worth a named type.
type Func struct {
	FuncName     string
	FuncPriority int
	FuncValidate func(ctx context.Context, i intent.Intent, node *graph.Node) (Result, error)
}

func (f Func) Name() string  { return f.FuncName }
func (f Func) Priority() int { return f.FuncPriority }
func (f Func) Validate(ctx context.Context, i intent.Intent, node *graph.Node) (Result, error) {
	return f.FuncValidate(ctx, i, node)
}
