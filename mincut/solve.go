// Package mincut - unified dispatcher for the partitioning entry points.
//
// Partition validates options, normalizes the graph into the index arena,
// routes to the selected solver, optionally applies the balance post-pass,
// and reports the cut against the original adjacency.
package mincut

import (
	"sort"
	"time"

	"github.com/rossjdharrison/harmony-design-sub007/core"
)

// Partition computes a 2-way minimum cut of g.
//
// With the default Auto algorithm, graphs below the auto threshold use the
// exact Stoer–Wagner solver and larger graphs the randomized Karger solver.
// An empty graph yields two empty partitions with zero weight; a single
// node yields that node versus the empty set. An exhausted time budget
// returns the best cut found so far and logs a warning - never an error.
//
// Errors: ErrNilGraph plus the option sentinels from types.go.
//
// Complexity: per selected solver; see stoer_wagner.go and karger.go.
func Partition(g *core.Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	res, err := partitionWithDeadline(g, &o, deadlineFrom(start, o.TimeBudget))
	if err != nil {
		return Result{}, err
	}
	res.Duration = time.Since(start)

	return res, nil
}

// partitionWithDeadline is the deadline-threaded core of Partition, shared
// with the multi-way partitioner so nested splits draw on one budget.
func partitionWithDeadline(g *core.Graph, o *Options, deadline time.Time) (Result, error) {
	log := loggerOrNop(o.Logger)

	a, err := newArena(g, o.EdgeWeight)
	if err != nil {
		return Result{}, err
	}

	n := a.size()
	algo := chooseAlgorithm(o, n)

	var group []int
	switch {
	case n == 0:
		group = nil
	case n == 1:
		group = []int{0}
	case algo == StoerWagner:
		group = stoerWagner(a, deadline, log)
	default:
		group = karger(a, o.Seed, o.KargerIterations, o.Workers, deadline, log)
	}

	inP1 := sideOf(a, group)
	if o.BalanceConstraint && n >= 2 {
		rebalance(a, inP1, o.BalanceTolerance, deadline, log)
	}

	return resultFrom(a, inP1, algo), nil
}

// chooseAlgorithm resolves Auto by graph size; explicit choices pass
// through.
func chooseAlgorithm(o *Options, n int) Algorithm {
	if o.Algorithm != Auto {
		return o.Algorithm
	}
	if n < o.AutoThreshold {
		return StoerWagner
	}

	return Karger
}

// resultFrom materializes a Result from a side assignment: sorted partition
// node lists plus the crossing edges and their total weight, read from the
// arena (which already carries any EdgeWeight remapping).
//
// Complexity: O(V log V + E + C log C) for C crossing edges.
func resultFrom(a *arena, inP1 []bool, algo Algorithm) Result {
	p1 := make([]string, 0)
	p2 := make([]string, 0)
	for i, id := range a.ids {
		if inP1[i] {
			p1 = append(p1, id)
		} else {
			p2 = append(p2, id)
		}
	}
	sort.Strings(p1)
	sort.Strings(p2)

	var (
		weight float64
		edges  []CutEdge
	)
	for i := range a.nbrOrder {
		for _, j := range a.nbrOrder[i] {
			if j < i || inP1[i] == inP1[j] {
				continue
			}
			from, to := a.ids[i], a.ids[j]
			if from > to {
				from, to = to, from
			}
			weight += a.adjacency[i][j]
			edges = append(edges, CutEdge{From: from, To: to, Weight: a.adjacency[i][j]})
		}
	}
	sort.Slice(edges, func(x, y int) bool {
		if edges[x].From != edges[y].From {
			return edges[x].From < edges[y].From
		}

		return edges[x].To < edges[y].To
	})

	return Result{
		Partition1: p1,
		Partition2: p2,
		CutWeight:  weight,
		CutEdges:   edges,
		Algorithm:  algo,
	}
}
