package core

// AddNode inserts id into the graph if absent.
// Adding an existing node is a no-op.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(id)

	return nil
}

// addNodeLocked registers id, assuming the write lock is held.
func (g *Graph) addNodeLocked(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]float64)
}

// AddEdge records an undirected edge between from and to.
// Both endpoints are auto-added if absent. A repeated edge between the same
// pair merges by summing weights. Self-loops (from == to) are silently
// dropped: they cannot cross any cut. Negative weights are rejected with
// ErrNegativeWeight.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(from)
	g.addNodeLocked(to)
	if from == to {
		// Loop: endpoint registered, edge discarded.
		return nil
	}

	if _, seen := g.adjacency[from][to]; !seen {
		g.neighborOrder[from] = append(g.neighborOrder[from], to)
		g.neighborOrder[to] = append(g.neighborOrder[to], from)
	}
	g.adjacency[from][to] += weight
	g.adjacency[to][from] += weight

	return nil
}

// HasNode reports whether id is a node of the graph.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// NodeCount returns the number of nodes.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of distinct undirected edges.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.neighborOrder {
		total += len(nbrs)
	}

	return total / 2
}

// Nodes returns all node IDs in insertion order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns id's neighbor IDs in first-insertion order.
// Unknown IDs yield nil.
// Thread-safe: acquires a read lock.
//
// Complexity: O(deg).
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs := g.neighborOrder[id]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out
}

// Weight returns the cumulative edge weight between a and b,
// or 0 if no edge exists.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1).
func (g *Graph) Weight(a, b string) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[a][b]
}

// Edges returns every undirected edge exactly once, endpoint order
// canonicalized so that From was inserted before To. Deterministic:
// outer iteration follows node insertion order, inner iteration follows
// neighbor insertion order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, from := range g.order {
		fi := g.index[from]
		for _, to := range g.neighborOrder[from] {
			if g.index[to] < fi {
				continue // emitted from the other endpoint
			}
			out = append(out, Edge{From: from, To: to, Weight: g.adjacency[from][to]})
		}
	}

	return out
}

// TotalWeight returns the sum of all edge weights.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V + E).
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total float64
	for _, from := range g.order {
		for _, to := range g.neighborOrder[from] {
			total += g.adjacency[from][to]
		}
	}

	return total / 2
}

// Clone returns an independent deep copy of the graph, preserving
// insertion order.
// Thread-safe: acquires a read lock on the source.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for _, id := range g.order {
		out.addNodeLocked(id)
	}
	for _, from := range g.order {
		fi := g.index[from]
		for _, to := range g.neighborOrder[from] {
			if g.index[to] < fi {
				continue
			}
			out.neighborOrder[from] = append(out.neighborOrder[from], to)
			out.neighborOrder[to] = append(out.neighborOrder[to], from)
			w := g.adjacency[from][to]
			out.adjacency[from][to] = w
			out.adjacency[to][from] = w
		}
	}

	return out
}

// InducedSubgraph returns the subgraph over the given node subset: the
// listed nodes plus only those edges whose both endpoints belong to the
// subset. Unknown IDs are skipped. Node insertion order in the result
// follows the parent graph's order, keeping iteration deterministic
// across extractions.
// Thread-safe: acquires a read lock on the source.
//
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(nodes []string) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		if _, ok := g.index[id]; ok {
			keep[id] = struct{}{}
		}
	}

	out := NewGraph()
	// Parent order, filtered, keeps sub-splits reproducible.
	for _, id := range g.order {
		if _, ok := keep[id]; ok {
			out.addNodeLocked(id)
		}
	}
	for _, from := range g.order {
		if _, ok := keep[from]; !ok {
			continue
		}
		fi := g.index[from]
		for _, to := range g.neighborOrder[from] {
			if g.index[to] < fi {
				continue
			}
			if _, ok := keep[to]; !ok {
				continue
			}
			out.neighborOrder[from] = append(out.neighborOrder[from], to)
			out.neighborOrder[to] = append(out.neighborOrder[to], from)
			w := g.adjacency[from][to]
			out.adjacency[from][to] = w
			out.adjacency[to][from] = w
		}
	}

	return out
}
