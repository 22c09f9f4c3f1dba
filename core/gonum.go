package core

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
)

// FromGonum converts a gonum weighted undirected graph into a core.Graph.
//
// Node IDs become their decimal string form. Nodes are inserted in ascending
// gonum ID order (gonum's own iterators are map-ordered, so we sort for the
// deterministic iteration core guarantees), and each undirected edge is
// visited exactly once from its lower-ID endpoint. Negative edge weights
// fail with ErrNegativeWeight.
//
// Complexity: O(V log V + E).
func FromGonum(src graph.WeightedUndirected) (*Graph, error) {
	ids := make([]int64, 0)
	it := src.Nodes()
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := NewGraph()
	for _, id := range ids {
		if err := out.AddNode(strconv.FormatInt(id, 10)); err != nil {
			return nil, err
		}
	}
	for _, uid := range ids {
		nbrs := src.From(uid)
		// Collect and sort neighbor IDs; gonum iterators are map-ordered.
		vids := make([]int64, 0)
		for nbrs.Next() {
			vids = append(vids, nbrs.Node().ID())
		}
		sort.Slice(vids, func(i, j int) bool { return vids[i] < vids[j] })
		for _, vid := range vids {
			if vid <= uid {
				continue // visited from the other side, or a loop
			}
			we := src.WeightedEdgeBetween(uid, vid)
			if we == nil {
				continue
			}
			err := out.AddEdge(
				strconv.FormatInt(uid, 10),
				strconv.FormatInt(vid, 10),
				we.Weight(),
			)
			if err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
