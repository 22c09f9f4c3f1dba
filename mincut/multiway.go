// Package mincut - recursive multi-way partitioning.
//
// The multi-way partitioner repeatedly bisects the largest current
// partition on its induced subgraph (edges leaving the partition are
// dropped and do not influence the split) until k partitions exist or the
// shared time budget runs out. Running out of budget or of splittable
// partitions is a degraded-but-valid outcome: fewer than k partitions come
// back, with a warning logged - never padding with empty sets.
package mincut

import (
	"sort"
	"time"

	"github.com/rossjdharrison/harmony-design-sub007/core"
)

// PartitionMultiWay splits g into k node sets via recursive bisection.
//
// A partition whose induced subgraph is disconnected splits along a
// connected component first - a free zero-weight cut - so a graph with
// exactly k components partitions with zero total inter-partition weight.
// Otherwise the configured 2-way solver runs on the induced subgraph,
// drawing on the one deadline shared by the whole call.
//
// Each returned set is sorted; the list covers every node of g exactly
// once. An empty graph returns an empty list with a warning.
//
// Errors: ErrNilGraph, ErrTooFewPartitions for k < 2, plus the option
// sentinels from types.go.
//
// Complexity: up to k−1 bisections, each bounded by the 2-way solver on
// the shrinking induced subgraph.
func PartitionMultiWay(g *core.Graph, k int, opts ...Option) ([][]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 2 {
		return nil, ErrTooFewPartitions
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	log := loggerOrNop(o.Logger)

	deadline := deadlineFrom(time.Now(), o.TimeBudget)

	nodes := g.Nodes()
	if len(nodes) == 0 {
		log.Warn("multi-way partition of empty graph", "k", k)

		return [][]string{}, nil
	}

	parts := [][]string{nodes}
	for len(parts) < k {
		if expired(deadline) {
			log.Warn("multi-way time budget exhausted",
				"partitions", len(parts), "k", k)

			break
		}

		// Largest partition; earliest wins ties.
		li := 0
		for i := 1; i < len(parts); i++ {
			if len(parts[i]) > len(parts[li]) {
				li = i
			}
		}
		if len(parts[li]) < 2 {
			log.Warn("no partition left to split",
				"partitions", len(parts), "k", k)

			break
		}

		sub := g.InducedSubgraph(parts[li])

		var p1, p2 []string
		if comps := sub.ConnectedComponents(); len(comps) > 1 {
			// Disconnected: peel off one component, a free zero-weight cut.
			p1 = comps[0]
			for _, comp := range comps[1:] {
				p2 = append(p2, comp...)
			}
		} else {
			res, err := partitionWithDeadline(sub, &o, deadline)
			if err != nil {
				return nil, err
			}
			p1, p2 = res.Partition1, res.Partition2
			if len(p1) == 0 || len(p2) == 0 {
				log.Warn("degenerate bisection, stopping",
					"partitions", len(parts), "k", k)

				break
			}
		}

		// Replace the split partition with its two halves in place.
		parts[li] = p1
		parts = append(parts, nil)
		copy(parts[li+2:], parts[li+1:])
		parts[li+1] = p2
	}

	if len(parts) < k {
		log.Warn("returning fewer partitions than requested",
			"want", k, "got", len(parts))
	}
	for _, p := range parts {
		sort.Strings(p)
	}

	return parts, nil
}
