package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates a node or edge endpoint with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is one weighted undirected edge in a raw edge list.
//
// In Build, Weight == 0 is treated as "unspecified" and defaults to 1.
// Once stored in a Graph, weights are always explicit.
type Edge struct {
	// From is one endpoint ID.
	From string

	// To is the other endpoint ID.
	To string

	// Weight is the cost of the edge. Must be non-negative.
	Weight float64
}

// Graph is a weighted, undirected graph with symmetric adjacency and
// deterministic (insertion-order) iteration.
//
// Thread-safe: all mutations acquire a write lock, all queries a read lock.
// The zero value is not usable; construct with NewGraph or Build.
type Graph struct {
	mu sync.RWMutex

	// order holds node IDs in insertion order; index holds each ID's
	// position in order. Together they give O(1) membership plus stable
	// iteration.
	order []string
	index map[string]int

	// adjacency[a][b] is the cumulative weight of all edges between a and b.
	// Invariant: adjacency[a][b] == adjacency[b][a].
	adjacency map[string]map[string]float64

	// neighborOrder[a] lists a's neighbors in first-insertion order, so that
	// Neighbors and Edges never depend on Go map iteration.
	neighborOrder map[string][]string
}

// NewGraph creates an empty Graph.
//
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index:         make(map[string]int),
		adjacency:     make(map[string]map[string]float64),
		neighborOrder: make(map[string][]string),
	}
}

// Build constructs a Graph from a raw node list and edge list.
//
// The node list is optional: every edge endpoint missing from it is added
// implicitly, in edge order. Parallel edges are merged by weight summation.
// Edge.Weight == 0 defaults to 1; negative weights fail with
// ErrNegativeWeight, empty IDs with ErrEmptyNodeID.
//
// Complexity: O(N + E).
func Build(nodes []string, edges []Edge) (*Graph, error) {
	g := NewGraph()
	for _, id := range nodes {
		if err := g.AddNode(id); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		w := e.Weight
		if w == 0 {
			w = 1
		}
		if err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, err
		}
	}

	return g, nil
}
