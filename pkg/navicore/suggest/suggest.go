package suggest

import (
	"iter"

	"github.com/agnivade/levenshtein"

	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
)

// ClosestRouteKind returns the registered route kind with the smallest
// edit distance to want among the keys iterated by known, and whether any
// candidate was found at all (an empty graph has none). Ties keep the
// first candidate encountered.
func ClosestRouteKind(want graph.RouteKind, known iter.Seq[*graph.Node]) (graph.RouteKind, bool) {
	var (
		best     graph.RouteKind
		bestDist = -1
		found    bool
	)

	for node := range known {
		candidate := node.RouteKey.Kind
		if candidate == want {
			continue
		}
		dist := levenshtein.ComputeDistance(string(want), string(candidate))
		if !found || dist < bestDist {
			best = candidate
			bestDist = dist
			found = true
		}
	}

	return best, found
}
