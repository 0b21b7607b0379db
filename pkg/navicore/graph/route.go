package graph

import "fmt"

// RouteKind is a fixed, compile-time identifier for a family of
// destinations, assigned by the embedding application as typed constants —
// the same iota-constant idiom gabagool's router.Screen uses — rather than
// derived from runtime reflection over a class/type object. This is the
// redesign the specification's design notes call for: the graph's lookup
// table is keyed by this value (plus an optional argument), never by a
// reflected type identity.
type RouteKind string

// RouteKey is the identity of a destination within the graph: stable
// within a RouteKind plus an optional Arg distinguishing parameterized
// instances of the same kind (e.g. a detail screen for different record
// IDs). Two routes with equal RouteKey are the same destination for the
// purposes of singleTop comparisons and graph lookup.
type RouteKey struct {
	Kind RouteKind
	Arg  string
}

// String renders the key for logging and error messages.
func (k RouteKey) String() string {
	if k.Arg == "" {
		return string(k.Kind)
	}
	return fmt.Sprintf("%s:%s", k.Kind, k.Arg)
}

// Route is a concrete navigable destination: a key plus opaque
// application-specific parameters carried alongside it (e.g. the record a
// detail screen should render). Params is never interpreted by the
// navigation core.
type Route struct {
	Key    RouteKey
	Params any
}

// AutoRouteBuilder produces a Route instance for a node that can construct
// its own default route (e.g. a menu node whose route never varies).
type AutoRouteBuilder func() Route
