package suggest_test

import (
	"testing"

	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/suggest"
)

func buildGraph(t *testing.T) *graph.Graph {
	t.Helper()
	root := &graph.Node{RouteKey: graph.RouteKey{Kind: "root"}, MenuChildren: []*graph.Node{
		{RouteKey: graph.RouteKey{Kind: "settings"}},
		{RouteKey: graph.RouteKey{Kind: "library"}},
	}}
	g, err := graph.New(root)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	return g
}

func TestClosestRouteKind_FindsNearMiss(t *testing.T) {
	g := buildGraph(t)
	got, found := suggest.ClosestRouteKind("setings", g.IterNodes())
	if !found {
		t.Fatalf("found = false, want true")
	}
	if got != "settings" {
		t.Fatalf("ClosestRouteKind() = %q, want %q", got, "settings")
	}
}

func TestClosestRouteKind_ExcludesExactMatch(t *testing.T) {
	g := buildGraph(t)
	got, found := suggest.ClosestRouteKind("settings", g.IterNodes())
	if !found {
		t.Fatalf("found = false, want true")
	}
	if got == "settings" {
		t.Fatalf("ClosestRouteKind() returned the exact-match key itself")
	}
}

func TestClosestRouteKind_NoOtherCandidatesFindsNothing(t *testing.T) {
	root := &graph.Node{RouteKey: graph.RouteKey{Kind: "only"}}
	g, err := graph.New(root)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}

	_, found := suggest.ClosestRouteKind("only", g.IterNodes())
	if found {
		t.Fatalf("found = true, want false when the only node is the exact-match exclusion")
	}
}
