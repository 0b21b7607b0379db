// Package graph models the navigation graph: nodes keyed by route identity,
// their appearance and requirement metadata, and the menu hierarchy that
// groups them. Constructing the declarative shape of a graph (the
// builder DSL an application might expose) is explicitly out of scope —
// this package only models the frozen result and the queries the
// choreographer needs against it.
//
// # Basic usage
//
//	const (
//	    KindRoot graph.RouteKind = "root"
//	    KindA    graph.RouteKind = "a"
//	)
//
//	root := &graph.Node{RouteKey: graph.RouteKey{Kind: KindRoot}}
//	a := &graph.Node{RouteKey: graph.RouteKey{Kind: KindA}, ScreenTimeout: 2 * time.Minute}
//
//	g, err := graph.New(root, a)
//
// A Graph is immutable after New returns; every Lookup is an O(1) map read.
package graph
