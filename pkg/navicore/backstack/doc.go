// Package backstack implements the two-tier navigation history described by
// the navigation specification: a retained stack (the real history) and a
// non-retained stack (transient entries cleared on any pop). It carries
// gabagool's router.Stack forward — same push/pop vocabulary — generalized
// to the two-tier, singleTop-aware semantics the choreographer needs.
package backstack
