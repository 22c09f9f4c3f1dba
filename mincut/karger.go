// Package mincut - randomized approximate minimum cut via Karger
// contraction.
//
// Each trial repeatedly picks one edge of the currently contracted graph
// uniformly at random and contracts its endpoints until two supernodes
// remain; those two supernodes are a candidate partition. The candidate's
// true weight is recomputed against the original adjacency - never the
// contracted graph's synthetic weights. The best of all trials wins.
//
// Sampling is uniform over the distinct edges of the contracted graph, not
// weight-proportional. On weighted graphs this is a heuristic without the
// classic success guarantee; on unweighted graphs each trial succeeds with
// probability about 1/C(V,2), amplified by independent repetition.
package mincut

import (
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// kargerBest tracks the winning trial under a mutex. The winner is the
// lowest cut weight, ties broken by lowest trial index, so the outcome is
// identical whatever order trials finish in.
type kargerBest struct {
	mu     sync.Mutex
	group  []int
	weight float64
	trial  int
}

func (b *kargerBest) offer(trial int, group []int, weight float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if weight < b.weight || (weight == b.weight && trial < b.trial) {
		b.group = group
		b.weight = weight
		b.trial = trial
	}
}

// karger computes one side of an approximate minimum cut of the arena
// graph as a list of original indices. Requires a.size() >= 2.
//
// Trials are independent: each draws from its own RNG stream keyed by
// (seed, trial index), so a fixed seed reproduces the result exactly,
// sequentially or on a worker pool. The deadline is consulted before
// launching each trial; in-flight trials always finish cleanly, since a
// half-contracted graph has no usable partial result.
//
// Time:   O(T · V · E) for T completed trials.
// Memory: O(V + E) per concurrent trial.
func karger(a *arena, seed int64, iterations, workers int, deadline time.Time, log Logger) []int {
	best := &kargerBest{group: []int{0}, trial: iterations}
	// Trivial seed candidate: isolate index 0. Keeps an expired budget from
	// forcing an unbounded first trial.
	best.weight = cutWeightOf(a, sideOf(a, best.group))

	var eg errgroup.Group
	eg.SetLimit(workers)

	launched := 0
	for trial := 0; trial < iterations; trial++ {
		if expired(deadline) {
			log.Warn("karger time budget exhausted",
				"trials_launched", launched, "trials_requested", iterations)

			break
		}
		trial := trial
		eg.Go(func() error {
			group := kargerTrial(a, trialRNG(seed, trial))
			weight := cutWeightOf(a, sideOf(a, group))
			best.offer(trial, group, weight)

			return nil
		})
		launched++
	}
	_ = eg.Wait() // trials never fail; Wait only fences completion

	log.Debug("karger finished",
		"trials", launched, "best_trial", best.trial, "best_cut", best.weight)

	return best.group
}

// kargerTrial runs one contraction trial and returns the member indices of
// one of the two final supernodes (the one containing index 0).
//
// The distinct edges of the contracted graph are re-derived each step by
// folding the original edge list through the contraction record, keeping
// enumeration order (and therefore the uniform draw) deterministic for a
// given RNG stream. If the graph disconnects into edge-free supernodes
// before two remain, the first supernode is split off - a legitimate
// zero-cut outcome.
//
// Time: O(V · E) - up to V−2 contractions, O(E) edge fold each.
func kargerTrial(a *arena, rng *rand.Rand) []int {
	record := newContraction(a.size())
	remaining := a.size()

	type pair struct{ u, v int }
	seen := make(map[pair]struct{}, a.size())
	var edges []pair

	for remaining > 2 {
		// Fold original edges into the distinct contracted edge list.
		edges = edges[:0]
		for k := range seen {
			delete(seen, k)
		}
		for i := range a.nbrOrder {
			for _, j := range a.nbrOrder[i] {
				if j < i {
					continue
				}
				ru, rv := record.find(i), record.find(j)
				if ru == rv {
					continue // already merged: self-loop, dropped
				}
				if ru > rv {
					ru, rv = rv, ru
				}
				p := pair{ru, rv}
				if _, dup := seen[p]; dup {
					continue // parallel edges collapse to one contracted edge
				}
				seen[p] = struct{}{}
				edges = append(edges, p)
			}
		}

		if len(edges) == 0 {
			// Disconnected remainder: no edge to contract, any supernode
			// versus the rest is a zero-weight cut.
			break
		}

		pick := edges[rng.Intn(len(edges))]
		record.union(pick.u, pick.v)
		remaining--
	}

	return record.groupOf(0)
}
