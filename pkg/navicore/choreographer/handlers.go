package choreographer

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/navicore/pkg/navicore/command"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/intent"
	"github.com/BrandonKowalski/navicore/pkg/navicore/internal"
	"github.com/BrandonKowalski/navicore/pkg/navicore/navierr"
	"github.com/BrandonKowalski/navicore/pkg/navicore/suggest"
	"github.com/BrandonKowalski/navicore/pkg/navicore/transaction"
	"github.com/BrandonKowalski/navicore/pkg/navicore/validate"
)

func (c *Choreographer) handleNavigateTo(ctx context.Context, i intent.NavigateTo) error {
	node, ok := c.graph.Lookup(i.Route.Key)
	if !ok {
		return c.handleRouteNotInGraph(ctx, i.Route.Key)
	}
	result := c.chain.Evaluate(ctx, i, node)
	return c.applyResult(ctx, result, func() command.Command {
		c.state.AppendWithOptions(node, i.Options)
		return command.FromIntent(i)
	})
}

func (c *Choreographer) handleRouteNotInGraph(ctx context.Context, key graph.RouteKey) error {
	data := map[string]any{"Route": key.String()}
	msgID := "route not in graph"
	if near, found := suggest.ClosestRouteKind(key.Kind, c.graph.IterNodes()); found {
		msgID = "route not in graph with suggestion"
		data["Suggestion"] = string(near)
	}
	c.synthesizeErrorDialog(ctx, msgID, data)
	return fmt.Errorf("choreographer: route %s: %w", key, navierr.ErrRouteNotInGraph)
}

func (c *Choreographer) handlePopUpTo(ctx context.Context, i intent.PopUpTo) error {
	if ok := c.state.PopUntil(i.Route, i.Inclusive); !ok {
		return nil
	}
	node := c.state.Current()
	result := c.chain.Evaluate(ctx, i, node)
	return c.applyResult(ctx, result, func() command.Command {
		return command.FromIntent(i)
	})
}

func (c *Choreographer) handleBack(ctx context.Context, i intent.Back) error {
	node := c.state.Pop()
	c.txm.Cancel()
	result := c.chain.Evaluate(ctx, i, node)
	return c.applyResult(ctx, result, func() command.Command {
		return command.FromIntent(i)
	})
}

// handleClearOrTimeout serves both ClearBackStack and InteractionTimeout:
// the specification has them share a handler, and both map to the same
// ClearBackStack command on a Valid result rather than FromIntent (which
// has no direct form for InteractionTimeout).
func (c *Choreographer) handleClearOrTimeout(ctx context.Context, i intent.Intent) error {
	c.state.Clear()
	c.txm.Cancel()
	node := c.state.Current()
	result := c.chain.Evaluate(ctx, i, node)
	return c.applyResult(ctx, result, func() command.Command {
		return command.ClearBackStack{}
	})
}

func (c *Choreographer) handleDialogLike(ctx context.Context, i intent.Intent) error {
	node := c.state.Current()
	result := c.chain.Evaluate(ctx, i, node)
	return c.applyResult(ctx, result, func() command.Command {
		return command.FromIntent(i)
	})
}

func (c *Choreographer) handleCompleteNavTransaction(ctx context.Context, i intent.CompleteNavTransaction) error {
	step, err := c.txm.Next()
	if err != nil {
		if navierr.IsNoTransaction(err) {
			internal.GetLogger().Warn("CompleteNavTransaction with no active transaction", "route", i.Route.String())
			return nil
		}
		if navierr.IsInvalidState(err) {
			return err
		}
		c.txm.Cancel()
		internal.GetLogger().Error("transaction step failed, cancelling", "error", err)
		return nil
	}

	switch step.Kind() {
	case transaction.StepContinue:
		select {
		case c.local <- step.Intent():
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	case transaction.StepBackToOriginal:
		return c.emitOriginal(ctx, step.Intent())
	default:
		return fmt.Errorf("choreographer: unknown transaction step kind")
	}
}

// emitOriginal bypasses further validation for the transaction's original
// intent, per the specification's two explicit bypasses: if it is a
// NavigateTo, the resolved node is appended directly; either way its
// command form is emitted.
func (c *Choreographer) emitOriginal(ctx context.Context, original intent.Intent) error {
	if nav, ok := original.(intent.NavigateTo); ok {
		if node, ok := c.graph.Lookup(nav.Route.Key); ok {
			c.state.AppendWithOptions(node, nav.Options)
		}
	}
	c.cmds.publish(ctx, command.FromIntent(original))
	return nil
}

// applyResult implements the validation-result application rules common to
// every handler. onValid performs the handler's state mutation (if any)
// beyond what already happened before validation, and returns the command
// to emit.
func (c *Choreographer) applyResult(ctx context.Context, result validate.Result, onValid func() command.Command) error {
	switch result.Kind() {
	case validate.KindValid:
		c.cmds.publish(ctx, onValid())
		return nil
	case validate.KindInvalid:
		c.synthesizeErrorDialog(ctx, result.Message(), nil)
		return nil
	case validate.KindRedirect:
		return c.startTransaction(ctx, result.Original(), result.Chain())
	case validate.KindIgnore:
		return nil
	default:
		return fmt.Errorf("choreographer: unknown validation result kind %v", result.Kind())
	}
}

func (c *Choreographer) startTransaction(ctx context.Context, original intent.Intent, chain []intent.Intent) error {
	c.txm.Cancel()
	if err := c.txm.Apply(transaction.New(chain, original)); err != nil {
		internal.GetLogger().Error("failed to install redirect transaction", "error", err)
		return nil
	}

	step, err := c.txm.Next()
	if err != nil {
		internal.GetLogger().Error("failed to start redirect transaction", "error", err)
		return nil
	}

	switch step.Kind() {
	case transaction.StepContinue:
		select {
		case c.local <- step.Intent():
		case <-ctx.Done():
			return ctx.Err()
		}
	case transaction.StepBackToOriginal:
		// an empty chain goes straight to the original.
		return c.emitOriginal(ctx, step.Intent())
	}
	return nil
}

// synthesizeErrorDialog injects a system-severity DisplayDialog intent
// into the local source, re-entering the normal validated path, per the
// Invalid(message) application rule. msgID both selects the message
// catalog entry (when one is configured) and, unresolved, serves as the
// dialog's raw text.
func (c *Choreographer) synthesizeErrorDialog(ctx context.Context, msgID string, data map[string]any) {
	text := msgID
	if c.catalog != nil {
		text = c.catalog.Resolve(msgID, data, c.locales...)
	}

	dialog := intent.NewDisplayDialog(intent.SenderSystem, intent.PrioritySystemDefault, intent.Overlay{
		Title:    "Error",
		Message:  text,
		Severity: intent.SeverityError,
	}, nil)

	select {
	case c.local <- dialog:
	case <-ctx.Done():
	}
}
