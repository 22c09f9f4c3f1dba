package mincut

import (
	"sort"

	"github.com/rossjdharrison/harmony-design-sub007/core"
)

// Evaluate computes the crossing-edge set and total cut weight of a 2-way
// partition against g's original adjacency. partition1 is one side; every
// other node of g forms the other side. Node IDs not present in g are
// ignored. Crossing edges come back canonicalized (From < To) and sorted.
//
// Every solver in this package reports through this evaluation, never
// through contracted synthetic weights.
//
// Complexity: O(V + E + C log C) for C crossing edges.
func Evaluate(g *core.Graph, partition1 []string) (float64, []CutEdge, error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}

	inP1 := make(map[string]struct{}, len(partition1))
	for _, id := range partition1 {
		if g.HasNode(id) {
			inP1[id] = struct{}{}
		}
	}

	var (
		weight float64
		edges  []CutEdge
	)
	for _, e := range g.Edges() {
		_, a := inP1[e.From]
		_, b := inP1[e.To]
		if a == b {
			continue
		}
		from, to := e.From, e.To
		if from > to {
			from, to = to, from
		}
		weight += e.Weight
		edges = append(edges, CutEdge{From: from, To: to, Weight: e.Weight})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return weight, edges, nil
}

// cutWeightOf sums the weight of arena edges crossing the side assignment.
// Used in solver inner loops where only the scalar matters.
//
// Complexity: O(V + E).
func cutWeightOf(a *arena, inP1 []bool) float64 {
	var weight float64
	for i := range a.nbrOrder {
		for _, j := range a.nbrOrder[i] {
			if j < i {
				continue // counted from the lower endpoint
			}
			if inP1[i] != inP1[j] {
				weight += a.adjacency[i][j]
			}
		}
	}

	return weight
}

// sideOf expands a member-index list into a boolean side assignment over
// all arena indices.
//
// Complexity: O(V).
func sideOf(a *arena, group []int) []bool {
	inP1 := make([]bool, a.size())
	for _, i := range group {
		inP1[i] = true
	}

	return inP1
}
