// Package suggest finds the closest known route key to one that failed to
// resolve in the graph, by agnivade/levenshtein edit distance over the
// RouteKind component, for inclusion in the synthesized "route not in
// graph" error dialog.
package suggest
