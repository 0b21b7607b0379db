package backstack

import (
	"github.com/BrandonKowalski/navicore/pkg/navicore/graph"
	"github.com/BrandonKowalski/navicore/pkg/navicore/navierr"
)

// Options mirrors the specification's navigation options: whether a
// consecutive duplicate at the top is suppressed (SingleTop), whether the
// entry is pushed onto the retained history at all (AddToBackStack), and
// whether the whole stack is dropped first (ClearBackStack).
type Options struct {
	SingleTop      bool
	AddToBackStack bool
	ClearBackStack bool
}

// Entry is a node reference plus the options under which it was pushed.
type Entry struct {
	Node    *graph.Node
	Options Options
}

// Stack is the two-tier back-stack: retained (the real history, never
// empty once seeded) and non_retained (transient entries cleared by any
// pop or pop_until). It is not safe for concurrent use — the owning state
// handler is the single writer the choreographer's serial pipeline
// guarantees.
type Stack struct {
	retained    []Entry
	nonRetained []Entry
}

// New returns an empty Stack. Callers are expected to Add the graph's root
// node immediately, matching the state handler's construction-time
// contract that the stack is never empty after initialization.
func New() *Stack {
	return &Stack{
		retained:    make([]Entry, 0, 8),
		nonRetained: make([]Entry, 0, 2),
	}
}

// Add pushes node per opts. If opts.ClearBackStack, both tiers are dropped
// first. If opts.AddToBackStack, non_retained is dropped and the entry is
// pushed onto retained (unless opts.SingleTop and the current retained top
// is already node). Otherwise the entry is pushed onto non_retained under
// the same singleTop rule.
func (s *Stack) Add(node *graph.Node, opts Options) {
	if opts.ClearBackStack {
		s.retained = s.retained[:0]
		s.nonRetained = s.nonRetained[:0]
	}

	entry := Entry{Node: node, Options: opts}

	if opts.AddToBackStack {
		s.nonRetained = s.nonRetained[:0]
		if opts.SingleTop && len(s.retained) > 0 && s.retained[len(s.retained)-1].Node == node {
			return
		}
		s.retained = append(s.retained, entry)
		return
	}

	if opts.SingleTop && len(s.nonRetained) > 0 && s.nonRetained[len(s.nonRetained)-1].Node == node {
		return
	}
	s.nonRetained = append(s.nonRetained, entry)
}

// Pop implements the specification's pop semantics: if non_retained is
// non-empty, it is dropped entirely and the new retained top is returned.
// Otherwise the retained top is removed and the new retained top returned;
// if that would leave retained empty, the pop is rejected with
// navierr.ErrEmptyStack and retained is left untouched. retained can be
// empty even while non_retained holds an entry (a ClearBackStack push with
// AddToBackStack false clears retained and seeds only non_retained), so
// that case also fails with navierr.ErrEmptyStack rather than indexing an
// empty retained.
func (s *Stack) Pop() (*graph.Node, error) {
	if len(s.nonRetained) > 0 {
		if len(s.retained) == 0 {
			return nil, navierr.New("backstack.pop", navierr.ErrEmptyStack)
		}
		s.nonRetained = s.nonRetained[:0]
		return s.retained[len(s.retained)-1].Node, nil
	}

	if len(s.retained) <= 1 {
		return nil, navierr.New("backstack.pop", navierr.ErrEmptyStack)
	}

	s.retained = s.retained[:len(s.retained)-1]
	return s.retained[len(s.retained)-1].Node, nil
}

// PopUntil clears non_retained, then pops retained entries until one
// matches pred. If inclusive is false, the matched entry is reinstated as
// the new top. If retained was empty on entry, it fails with
// navierr.ErrEmptyStack; if no entry matches, retained ends empty and it
// fails with navierr.ErrNoMatch, leaving the stack empty exactly as the
// specification prescribes (the state handler is responsible for
// recovering by re-pushing the root).
func (s *Stack) PopUntil(pred func(*graph.Node) bool, inclusive bool) (*graph.Node, error) {
	s.nonRetained = s.nonRetained[:0]

	if len(s.retained) == 0 {
		return nil, navierr.New("backstack.pop_until", navierr.ErrEmptyStack)
	}

	for len(s.retained) > 0 {
		top := s.retained[len(s.retained)-1]
		if pred(top.Node) {
			if inclusive {
				s.retained = s.retained[:len(s.retained)-1]
				if len(s.retained) == 0 {
					return nil, nil
				}
				return s.retained[len(s.retained)-1].Node, nil
			}
			return top.Node, nil
		}
		s.retained = s.retained[:len(s.retained)-1]
	}

	return nil, navierr.New("backstack.pop_until", navierr.ErrNoMatch)
}

// Last returns non_retained's top if non-empty, else retained's top. It
// returns nil if both are empty.
func (s *Stack) Last() *graph.Node {
	if len(s.nonRetained) > 0 {
		return s.nonRetained[len(s.nonRetained)-1].Node
	}
	if len(s.retained) > 0 {
		return s.retained[len(s.retained)-1].Node
	}
	return nil
}

// Clear drops both tiers entirely.
func (s *Stack) Clear() {
	s.retained = s.retained[:0]
	s.nonRetained = s.nonRetained[:0]
}

// Size returns the combined number of entries across both tiers.
func (s *Stack) Size() int {
	return len(s.retained) + len(s.nonRetained)
}
