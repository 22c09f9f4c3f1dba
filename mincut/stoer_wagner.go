// Package mincut - exact global minimum cut via Stoer–Wagner.
//
// Each phase grows a set A by repeatedly absorbing the node most tightly
// connected to A. The last node added, t, defines a candidate cut (A-minus-t
// versus t, in the currently contracted graph) whose weight is exactly t's
// connectivity to A at the moment of absorption. After recording the
// candidate, the last two nodes s and t contract into one supernode and the
// phase repeats on the smaller graph. The minimum candidate over all phases
// is the exact global minimum cut.
package mincut

import "time"

// stoerWagner computes one side of the global minimum cut of the arena
// graph as a list of original indices. Requires a.size() >= 2.
//
// Determinism: the "most tightly connected" selection scans supernodes in
// original index order and keeps the first maximum, so repeated runs on the
// same graph produce the same partition. The deadline is consulted at the
// start of each phase; on expiry the best cut so far is returned (a valid
// cut exists from the start: isolating index 0).
//
// Time:   O(V³) worst case - V−1 phases, O(V² + E) per phase.
// Memory: O(V + E) for the contracted adjacency and contraction record.
func stoerWagner(a *arena, deadline time.Time, log Logger) []int {
	n := a.size()

	// Mutable contracted adjacency over surviving supernode indices.
	adj := make([]map[int]float64, n)
	for i := 0; i < n; i++ {
		adj[i] = make(map[int]float64, len(a.adjacency[i]))
		for j, w := range a.adjacency[i] {
			adj[i][j] = w
		}
	}

	// order lists surviving supernodes in original index order; the phase
	// scan follows it for deterministic tie-breaking.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	record := newContraction(n)

	// Seed with the trivial cut isolating index 0, so an exhausted budget
	// still yields a valid partition.
	best := []int{0}
	bestWeight := 0.0
	for _, w := range adj[0] {
		bestWeight += w
	}

	phases := 0
	for len(order) > 1 {
		if expired(deadline) {
			log.Warn("stoer-wagner time budget exhausted",
				"phases_done", phases, "supernodes_left", len(order))

			break
		}

		s, t, cutOfPhase := minimumCutPhase(adj, order)

		if cutOfPhase < bestWeight {
			bestWeight = cutOfPhase
			best = record.groupOf(t)
		}

		// Contract t into s: merge weight tables, drop the self-loop.
		for k, w := range adj[t] {
			if k == s {
				continue
			}
			adj[s][k] += w
			adj[k][s] += w
			delete(adj[k], t)
		}
		delete(adj[s], t)
		adj[t] = nil
		record.union(s, t)

		// Remove t from the surviving order, preserving positions.
		for i, v := range order {
			if v == t {
				order = append(order[:i], order[i+1:]...)

				break
			}
		}
		phases++
	}

	log.Debug("stoer-wagner finished", "phases", phases, "best_cut", bestWeight)

	return best
}

// minimumCutPhase runs one maximum-adjacency phase over the supernodes in
// order, returning the last two nodes added and the cut-of-the-phase value
// (the final node's accumulated weight to A when it was absorbed).
//
// Time: O(m² + E) for m supernodes.
func minimumCutPhase(adj []map[int]float64, order []int) (s, t int, cutOfPhase float64) {
	inA := make(map[int]bool, len(order))
	weightToA := make(map[int]float64, len(order))

	start := order[0]
	inA[start] = true
	for k, w := range adj[start] {
		weightToA[k] += w
	}
	s, t = start, start

	for step := 1; step < len(order); step++ {
		// First maximum in index order wins: deterministic tie-break.
		next := -1
		nextWeight := -1.0
		for _, v := range order {
			if inA[v] {
				continue
			}
			if w := weightToA[v]; w > nextWeight {
				next = v
				nextWeight = w
			}
		}

		s, t = t, next
		cutOfPhase = nextWeight
		inA[next] = true
		for k, w := range adj[next] {
			if !inA[k] {
				weightToA[k] += w
			}
		}
	}

	return s, t, cutOfPhase
}
