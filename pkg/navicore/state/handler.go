// Package state owns the back-stack and the current-node observable: the
// only component permitted to mutate either, and itself only ever called
// from the choreographer's serial dispatch loop.
package state

import (
	"context"

	"github.com/BrandonKowalski/navicore/pkg/navicore/backstack"
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/internal"
	"github.com/BrandonKowalski/navicore/pkg/navicore/navierr"
)

// Handler owns the back-stack and publishes the current-node observable.
// On construction the graph's root is pushed and emitted immediately, so
// Current never returns nil.
type Handler struct {
	graph   *graph.Graph
	stack   *backstack.Stack
	current *Cell[*graph.Node]
}

// New constructs a Handler over g, pushing and emitting the root node.
func New(g *graph.Graph) *Handler {
	h := &Handler{
		graph:   g,
		stack:   backstack.New(),
		current: NewCell[*graph.Node](nil),
	}
	root := g.Root()
	h.stack.Add(root, backstack.Options{AddToBackStack: true})
	h.current.Set(root)
	return h
}

// Current returns the node currently considered displayed: non_retained's
// top if non-empty, else retained's top.
func (h *Handler) Current() *graph.Node {
	return h.current.Load()
}

// CurrentCell exposes the current-node observable itself, rather than a
// snapshot of or subscription to it, so a component that needs to read
// the live value on its own schedule (the inactivity timer, looking up a
// node's screen_timeout on every restart) can share the Handler's actual
// Cell instead of a standalone one the Handler never writes to.
func (h *Handler) CurrentCell() *Cell[*graph.Node] {
	return h.current
}

// Watch subscribes to every change of the current node, starting with its
// present value, until ctx is done.
func (h *Handler) Watch(ctx context.Context) <-chan *graph.Node {
	return h.current.Watch(ctx)
}

// Depth returns the combined size of both back-stack tiers.
func (h *Handler) Depth() int {
	return h.stack.Size()
}

// Append pushes node onto the back-stack (retained if keepInStack, else
// non_retained) and emits it as the new current node. It always succeeds
// and always returns true — the bool result exists to mirror the
// specification's append contract and give callers an unambiguous success
// signal distinct from Pop's failure mode.
func (h *Handler) Append(node *graph.Node, keepInStack bool) bool {
	h.stack.Add(node, backstack.Options{AddToBackStack: keepInStack})
	h.current.Set(node)
	return true
}

// AppendWithOptions is Append generalized to the full navigation Options,
// used by NavigateTo handling where SingleTop/ClearBackStack also apply.
func (h *Handler) AppendWithOptions(node *graph.Node, opts backstack.Options) {
	h.stack.Add(node, opts)
	h.current.Set(node)
}

// PopUntil pops the back-stack until a node with the given route key is
// found. If inclusive, the matched entry is popped too rather than
// reinstated as the new top. If no entry matches, it recovers by clearing
// the stack and re-pushing the graph's root, then reports that recovery by
// returning true (a node was emitted). If the stack was already empty, it
// returns false without emitting anything.
func (h *Handler) PopUntil(key graph.RouteKey, inclusive bool) bool {
	node, err := h.stack.PopUntil(func(n *graph.Node) bool { return n.RouteKey == key }, inclusive)
	if err != nil {
		if navierr.IsNoMatch(err) {
			internal.GetLogger().Warn("pop_until found no match, recovering to root", "route_key", key.String())
			h.Clear()
			return true
		}
		return false
	}
	if node == nil {
		// inclusive popped the matched entry off an already-single-entry
		// stack: recover the same way an exhausted pop_until does, rather
		// than leave the back-stack empty.
		internal.GetLogger().Warn("pop_until(inclusive) emptied the stack, recovering to root", "route_key", key.String())
		h.Clear()
		return true
	}
	h.current.Set(node)
	return true
}

// Pop pops the back-stack and emits the new current node. An empty stack
// is benign per the specification: it emits the root and returns it
// rather than propagating an error, since Back from the root screen is a
// normal, expected occurrence rather than a caller mistake.
func (h *Handler) Pop() *graph.Node {
	node, err := h.stack.Pop()
	if err != nil {
		root := h.graph.Root()
		internal.GetLogger().Debug("pop from empty stack, emitting root", "route_key", root.RouteKey.String())
		h.current.Set(root)
		return root
	}
	h.current.Set(node)
	return node
}

// Clear drops the entire back-stack and re-pushes the graph's root.
func (h *Handler) Clear() {
	h.stack.Clear()
	root := h.graph.Root()
	h.stack.Add(root, backstack.Options{AddToBackStack: true})
	h.current.Set(root)
}
