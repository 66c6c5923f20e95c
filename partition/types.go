// Package partition implements a balanced two-way minimum-cut solver
// over a weighted node set and a weighted edge list: split the nodes
// into two parts, minimizing the total weight of the edges crossing the
// cut, subject to each part's total node weight staying under a balance
// bound derived from eps.
//
// No general-purpose ILP/CP-SAT binding exists anywhere in this
// module's dependency surface, so the solver below is a from-scratch
// deterministic branch-and-bound search rather than an adapted one —
// see this package's doc comment on Bisect for the search strategy
// (an incumbent-tracking engine struct, a sparse deadline check, and a
// soft time-budget sentinel error).
package partition

import (
	"errors"
	"time"
)

// ErrTimeLimit indicates a user-specified time budget was exhausted
// before the search completed. The best incumbent found so far, if
// any, is still returned alongside the error.
var ErrTimeLimit = errors.New("partition: time limit exceeded")

// ErrNoFeasiblePartition indicates that no two-way split of the given
// nodes can satisfy the balance bound (for example, a single node
// whose weight alone exceeds the bound).
var ErrNoFeasiblePartition = errors.New("partition: no feasible balanced split")

// ErrEmptyNodeSet indicates Bisect was called with no nodes.
var ErrEmptyNodeSet = errors.New("partition: empty node set")

// Options configures a Bisect call.
type Options struct {
	// TimeLimit bounds wall-clock search time. Zero means no limit.
	TimeLimit time.Duration
}

// DefaultOptions mirrors the source pipeline's solver default: a 30
// second soft time budget.
func DefaultOptions() Options {
	return Options{TimeLimit: 30 * time.Second}
}

// Result is the outcome of a successful Bisect call.
type Result struct {
	// Labels maps each input node to 0 or 1, its assigned part.
	Labels map[int]int
	// CutWeight is the summed Weight (a zero Weight counting as 1) of
	// the input edges whose endpoints ended up in different parts.
	CutWeight int
}
