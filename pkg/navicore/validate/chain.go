package validate

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/internal"
)

// Chain is the composite validator: a sorted slice of Validator evaluated
// in ascending-priority order, combined per the specification's rules. It
// is immutable after NewChain returns.
type Chain struct {
	validators []Validator
	// Watchdog, if non-zero, bounds how long a single validator may run
	// before it is treated as Invalid("validator_timeout") — the optional
	// watchdog the specification's concurrency model allows implementations
	// to add on top of the otherwise-unbounded suspension point.
	Watchdog time.Duration
}

// NewChain composes validators into a Chain, stable-sorted ascending by
// Priority so two validators sharing a priority run in registration order.
func NewChain(validators ...Validator) *Chain {
	sorted := make([]Validator, len(validators))
	copy(sorted, validators)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})
	return &Chain{validators: sorted}
}

// Evaluate runs every validator in priority order against (i, node),
// combining their outcomes:
//
//   - Invalid short-circuits and is returned immediately.
//   - Ignore short-circuits and is returned immediately.
//   - Valid is absorbed; the scan continues.
//   - Redirect is merged with any prior Redirect: the union of required
//     prefix intents (deduplicated by DebounceKey) and the most recently
//     seen original intent. The scan continues.
//   - A validator that returns an error, or that exceeds Watchdog, is
//     treated as Invalid("validator error") / Invalid("validator_timeout")
//     without aborting the pipeline; an error wrapping context.Canceled
//     yields Invalid("cancelled") instead.
//
// If the scan completes having accumulated at least one redirect, the
// merged Redirect (prefix intents ordered by descending priority, ties
// broken by first-encountered order) is returned; otherwise Valid.
func (c *Chain) Evaluate(ctx context.Context, i intent.Intent, node *graph.Node) Result {
	logger := internal.GetLogger()

	var (
		haveRedirect bool
		original     intent.Intent
		seen         = map[any]struct{}{}
		merged       []intent.Intent
	)

	for _, v := range c.validators {
		result, err := c.runOne(ctx, v, i, node)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return Invalid("cancelled")
			}
			logger.Error("validator error", "validator", v.Name(), "intent", i.Kind().String(), "error", err)
			return Invalid("validator error")
		}

		switch result.Kind() {
		case KindInvalid:
			return result
		case KindIgnore:
			return result
		case KindValid:
			continue
		case KindRedirect:
			haveRedirect = true
			original = result.Original()
			for _, prefix := range result.Chain() {
				key := prefix.DebounceKey()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				merged = append(merged, prefix)
			}
		}
	}

	if !haveRedirect {
		return Valid()
	}

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].IntentPriority() > merged[b].IntentPriority()
	})
	return Redirect(original, merged)
}

func (c *Chain) runOne(ctx context.Context, v Validator, i intent.Intent, node *graph.Node) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errValidatorPanic(v.Name(), r)
		}
	}()

	if c.Watchdog > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Watchdog)
		defer cancel()
	}

	result, err = v.Validate(ctx, i, node)
	if c.Watchdog > 0 && ctx.Err() == context.DeadlineExceeded {
		return Invalid("validator_timeout"), nil
	}
	return result, err
}

type panicError struct {
	validator string
	value     any
}

func (e *panicError) Error() string {
	return "validator " + e.validator + " panicked"
}

func errValidatorPanic(validator string, value any) error {
	return &panicError{validator: validator, value: value}
}
