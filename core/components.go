package core

// ConnectedComponents finds all connected components of the graph.
// Returns a slice of components; each component lists its node IDs in
// insertion order, and components themselves are ordered by their earliest
// node. Deterministic for a fixed construction sequence.
// Thread-safe: acquires a read lock.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and the BFS queue.
func (g *Graph) ConnectedComponents() [][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make([]bool, len(g.order))
	var comps [][]string

	for _, start := range g.order {
		if seen[g.index[start]] {
			continue
		}
		// BFS to collect the component containing start.
		queue := []string{start}
		seen[g.index[start]] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.neighborOrder[u] {
				if vi := g.index[v]; !seen[vi] {
					seen[vi] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
