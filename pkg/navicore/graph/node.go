package graph

import "time"

// NoTimeout marks a node as exempt from the inactivity timer, the Go
// counterpart of the source's Duration::MAX sentinel. It is a negative
// duration specifically so timer code can test ScreenTimeout < 0 without a
// magic-number comparison against a near-maximal duration.
const NoTimeout time.Duration = -1

// Appearance is opaque presentation metadata the core carries but never
// interprets — title and icon are consumed only by the view layer.
type Appearance struct {
	Title string
	Icon  string
}

// Node is the graph's unit: a destination plus the metadata validators and
// the inactivity timer need to act on it.
type Node struct {
	// RouteKey uniquely identifies this node within its Graph.
	RouteKey RouteKey

	// Appearance is opaque to the core; carried through to the view layer.
	Appearance Appearance

	// ScreenTimeout is how long the inactivity timer waits on this node
	// before emitting InteractionTimeout. NoTimeout disables the timer.
	// Zero means "unset"; the timer actor substitutes its configured
	// default in that case.
	ScreenTimeout time.Duration

	// Requirements is the set of requirement tags validators consult; the
	// core never inspects their meaning, only passes them to validators.
	Requirements map[string]struct{}

	// MenuChildren holds the ordered set of child nodes for a menu node.
	// Its presence is what makes a node a "menu" subkind of route — a node
	// with no children is a leaf destination.
	MenuChildren []*Node

	// AutoRouteBuilder optionally produces this node's own route instance,
	// for nodes whose route never varies by caller-supplied argument.
	AutoRouteBuilder AutoRouteBuilder
}

// IsMenu reports whether this node is a menu (has at least one child).
func (n *Node) IsMenu() bool {
	return len(n.MenuChildren) > 0
}

// HasRequirement reports whether tag is present in the node's requirement
// set.
func (n *Node) HasRequirement(tag string) bool {
	if n.Requirements == nil {
		return false
	}
	_, ok := n.Requirements[tag]
	return ok
}

// Timeout returns the node's effective screen timeout, substituting def
// when the node leaves ScreenTimeout unset (zero).
func (n *Node) Timeout(def time.Duration) time.Duration {
	if n.ScreenTimeout == 0 {
		return def
	}
	return n.ScreenTimeout
}
