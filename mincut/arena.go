package mincut

import "github.com/rossjdharrison/harmony-design-sub007/core"

// arena normalizes the caller's graph to dense integer indices for the
// duration of one solving call. Index i is node ids[i] in the graph's
// insertion order; all solver state is arrays over these indices, so every
// iteration is deterministic. The arena is read-only once built.
type arena struct {
	// ids maps index → original node ID.
	ids []string

	// adjacency[i][j] is the (possibly remapped) weight between i and j.
	// Symmetric, no self entries.
	adjacency []map[int]float64

	// nbrOrder[i] lists i's neighbor indices in first-insertion order.
	nbrOrder [][]int
}

// newArena snapshots g into index form, applying the optional edge-weight
// override. Weights produced by the override must be non-negative.
//
// Complexity: O(V + E).
func newArena(g *core.Graph, weightFn func(core.Edge) float64) (*arena, error) {
	ids := g.Nodes()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	a := &arena{
		ids:       ids,
		adjacency: make([]map[int]float64, len(ids)),
		nbrOrder:  make([][]int, len(ids)),
	}
	for i := range a.adjacency {
		a.adjacency[i] = make(map[int]float64)
	}

	for _, e := range g.Edges() {
		w := e.Weight
		if weightFn != nil {
			w = weightFn(e)
			if w < 0 {
				return nil, ErrNegativeWeight
			}
		}
		i, j := index[e.From], index[e.To]
		a.adjacency[i][j] = w
		a.adjacency[j][i] = w
		a.nbrOrder[i] = append(a.nbrOrder[i], j)
		a.nbrOrder[j] = append(a.nbrOrder[j], i)
	}

	return a, nil
}

// size returns the number of original nodes.
func (a *arena) size() int { return len(a.ids) }

// contraction is the record of which original nodes each supernode stands
// for: a disjoint-set forest with path compression and union by rank, plus
// a member list kept at each root. By construction the member lists always
// form a partition of all original nodes: every index belongs to exactly
// one root's list.
type contraction struct {
	parent  []int
	rank    []int
	members [][]int
}

// newContraction starts with every index its own singleton supernode.
//
// Complexity: O(n).
func newContraction(n int) *contraction {
	c := &contraction{
		parent:  make([]int, n),
		rank:    make([]int, n),
		members: make([][]int, n),
	}
	for i := 0; i < n; i++ {
		c.parent[i] = i
		c.members[i] = []int{i}
	}

	return c
}

// find resolves the current supernode representative for index u,
// compressing the path as it walks.
//
// Complexity: O(α(n)) amortized.
func (c *contraction) find(u int) int {
	for c.parent[u] != u {
		c.parent[u] = c.parent[c.parent[u]]
		u = c.parent[u]
	}

	return u
}

// union contracts the supernodes containing u and v, returning the
// surviving representative. Member lists merge into the new root; the
// absorbed root's list is released.
//
// Complexity: O(α(n)) amortized plus O(min group) for the member append.
func (c *contraction) union(u, v int) int {
	rootU, rootV := c.find(u), c.find(v)
	if rootU == rootV {
		return rootU
	}
	if c.rank[rootU] < c.rank[rootV] {
		rootU, rootV = rootV, rootU
	}
	c.parent[rootV] = rootU
	if c.rank[rootU] == c.rank[rootV] {
		c.rank[rootU]++
	}
	c.members[rootU] = append(c.members[rootU], c.members[rootV]...)
	c.members[rootV] = nil

	return rootU
}

// groupOf returns a copy of the member indices of u's supernode.
func (c *contraction) groupOf(u int) []int {
	root := c.find(u)
	out := make([]int, len(c.members[root]))
	copy(out, c.members[root])

	return out
}
