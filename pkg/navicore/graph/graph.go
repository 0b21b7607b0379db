package graph

import (
	"fmt"
	"iter"

	"github.com/BrandonKowalski/navicore/pkg/navicore/navierr"
)

// Graph is a finite, acyclic structure rooted at exactly one node. It is
// immutable after New returns and safe for concurrent reads from any
// number of goroutines — there is no lock because there is nothing to
// mutate.
type Graph struct {
	root  *Node
	byKey map[RouteKey]*Node
	order []*Node // insertion order, for deterministic IterNodes
}

// New builds a Graph rooted at root, including every node transitively
// reachable from root's and the extra nodes' MenuChildren. It enforces the
// graph invariants: every route key is unique, the root's key is present in
// the lookup map (trivially true), and every menu child is also present.
func New(root *Node, extra ...*Node) (*Graph, error) {
	if root == nil {
		return nil, fmt.Errorf("navicore/graph: root node is nil")
	}

	g := &Graph{
		root:  root,
		byKey: make(map[RouteKey]*Node),
	}

	roots := append([]*Node{root}, extra...)
	for _, n := range roots {
		if err := g.insertTree(n); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *Graph) insertTree(n *Node) error {
	if n == nil {
		return fmt.Errorf("navicore/graph: nil node")
	}
	if existing, ok := g.byKey[n.RouteKey]; ok {
		if existing != n {
			return fmt.Errorf("navicore/graph: duplicate route key %s", n.RouteKey)
		}
		return nil
	}
	g.byKey[n.RouteKey] = n
	g.order = append(g.order, n)

	for _, child := range n.MenuChildren {
		if err := g.insertTree(child); err != nil {
			return err
		}
	}
	return nil
}

// Lookup resolves a route key to its node. The second return value is
// false when the key is absent — callers surface this as
// navierr.ErrRouteNotInGraph.
func (g *Graph) Lookup(key RouteKey) (*Node, bool) {
	n, ok := g.byKey[key]
	return n, ok
}

// Root returns the graph's root node.
func (g *Graph) Root() *Node {
	return g.root
}

// RootKey returns the root node's route key.
func (g *Graph) RootKey() RouteKey {
	return g.root.RouteKey
}

// IterNodes yields every node in the graph in the order first inserted by
// New (root's subtree depth-first, root itself first, then each extra
// root's subtree depth-first).
func (g *Graph) IterNodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, n := range g.order {
			if !yield(n) {
				return
			}
		}
	}
}

// MenuOf resolves key and reports an error if the key is absent from the
// graph or the resolved node is not a menu node.
func (g *Graph) MenuOf(key RouteKey) (*Node, error) {
	n, ok := g.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("navicore/graph: %s: %w", key, navierr.ErrRouteNotInGraph)
	}
	if !n.IsMenu() {
		return nil, fmt.Errorf("navicore/graph: %s: not a menu node", key)
	}
	return n, nil
}
