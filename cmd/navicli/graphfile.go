package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
)

// graphFile is the on-disk TOML shape a graph description is authored in:
// a flat node list plus the root's key, rather than a nested literal —
// easier to author and to validate independently of graph.New's own
// structural checks.
type graphFile struct {
	Root  string      `toml:"root"`
	Nodes []graphNode `toml:"node"`
}

type graphNode struct {
	Key           string   `toml:"key"`
	Title         string   `toml:"title"`
	Children      []string `toml:"children"`
	ScreenTimeout string   `toml:"screen_timeout"`
}

// loadGraphFile reads and validates a graph description, reporting
// structural errors before graph.New's own invariants are even reached:
// a missing root, a child referenced but never declared, and duplicate
// keys (graph.New also rejects duplicate keys, but with a less specific
// message).
func loadGraphFile(path string) (*graph.Graph, error) {
	var gf graphFile
	if _, err := toml.DecodeFile(path, &gf); err != nil {
		return nil, fmt.Errorf("navicli: decode %s: %w", path, err)
	}

	if gf.Root == "" {
		return nil, fmt.Errorf("navicli: %s: no root key declared", path)
	}

	byKey := make(map[string]*graph.Node, len(gf.Nodes))
	seen := make(map[string]bool, len(gf.Nodes))
	for _, n := range gf.Nodes {
		if n.Key == "" {
			return nil, fmt.Errorf("navicli: %s: a [[node]] entry has an empty key", path)
		}
		if seen[n.Key] {
			return nil, fmt.Errorf("navicli: %s: duplicate node key %q", path, n.Key)
		}
		seen[n.Key] = true
		node := &graph.Node{
			RouteKey:   graph.RouteKey{Kind: graph.RouteKind(n.Key)},
			Appearance: graph.Appearance{Title: n.Title},
		}
		if n.ScreenTimeout != "" {
			d, err := time.ParseDuration(n.ScreenTimeout)
			if err != nil {
				return nil, fmt.Errorf("navicli: %s: node %q: screen_timeout: %w", path, n.Key, err)
			}
			node.ScreenTimeout = d
		}
		byKey[n.Key] = node
	}

	for _, n := range gf.Nodes {
		node := byKey[n.Key]
		for _, childKey := range n.Children {
			child, ok := byKey[childKey]
			if !ok {
				return nil, fmt.Errorf("navicli: %s: node %q references undeclared child %q", path, n.Key, childKey)
			}
			node.MenuChildren = append(node.MenuChildren, child)
		}
	}

	root, ok := byKey[gf.Root]
	if !ok {
		return nil, fmt.Errorf("navicli: %s: root key %q is not among the declared nodes", path, gf.Root)
	}

	var extra []*graph.Node
	for key, n := range byKey {
		if key != gf.Root {
			extra = append(extra, n)
		}
	}

	return graph.New(root, extra...)
}
