// Package mincut - greedy size-balance post-pass.
//
// Rebalancing moves single nodes from the larger partition to the smaller
// until the size imbalance ratio falls within tolerance, always picking the
// node whose move increases the cut weight the least. Greedy and local: it
// does not revisit earlier moves and is not globally optimal.
package mincut

import "time"

// rebalanceCapFactor bounds the move loop at rebalanceCapFactor·V
// iterations. Every move shrinks the size difference by two, so the cap is
// generous; it exists to guarantee termination unconditionally.
const rebalanceCapFactor = 2

// rebalance mutates inP1 until |size1−size2|/total <= tolerance or the
// iteration cap is hit. Each step moves, from the larger side, the node
// with the smallest cut-weight delta: weight to same-side neighbors (edges
// that would start crossing) minus weight to other-side neighbors (edges
// that would stop crossing). Ties break by lowest node index. The deadline
// is consulted before each move.
//
// Time:   O(moves · (V + E)).
// Memory: O(1) beyond the side assignment.
func rebalance(a *arena, inP1 []bool, tolerance float64, deadline time.Time, log Logger) {
	total := a.size()
	if total == 0 {
		return
	}

	size1 := 0
	for _, in := range inP1 {
		if in {
			size1++
		}
	}

	moves := 0
	moveCap := rebalanceCapFactor * total
	for {
		size2 := total - size1
		diff := size1 - size2
		if diff < 0 {
			diff = -diff
		}
		if float64(diff)/float64(total) <= tolerance {
			break
		}
		if moves >= moveCap {
			log.Warn("rebalance iteration cap reached",
				"moves", moves, "imbalance", float64(diff)/float64(total))

			break
		}
		if expired(deadline) {
			log.Warn("rebalance time budget exhausted", "moves", moves)

			break
		}

		fromP1 := size1 > size2

		// Cheapest single-node move out of the larger side.
		bestIdx := -1
		bestDelta := 0.0
		for i := 0; i < total; i++ {
			if inP1[i] != fromP1 {
				continue
			}
			var delta float64
			for _, j := range a.nbrOrder[i] {
				if inP1[j] == inP1[i] {
					delta += a.adjacency[i][j] // starts crossing
				} else {
					delta -= a.adjacency[i][j] // stops crossing
				}
			}
			if bestIdx == -1 || delta < bestDelta {
				bestIdx = i
				bestDelta = delta
			}
		}
		if bestIdx == -1 {
			break // larger side empty: nothing movable
		}

		inP1[bestIdx] = !inP1[bestIdx]
		if fromP1 {
			size1--
		} else {
			size1++
		}
		moves++
	}

	if moves > 0 {
		log.Debug("rebalance applied", "moves", moves)
	}
}
