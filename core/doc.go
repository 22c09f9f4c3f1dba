// Package core provides the weighted, undirected in-memory Graph that the
// partitioning engine consumes.
//
// A Graph is a set of string node identifiers plus a symmetric adjacency
// structure: for every pair of connected nodes a and b,
// Weight(a,b) == Weight(b,a) at all times. Parallel edges between the same
// pair are merged by summing their weights; edge endpoints that were never
// declared as nodes are added implicitly. Self-loops are accepted and
// silently dropped: a loop can never cross a partition boundary, so it
// contributes nothing to any cut.
//
// Iteration order is deterministic everywhere: Nodes, Neighbors and Edges
// all report in insertion order, never in Go map order. Algorithms built on
// top of core rely on this for reproducible tie-breaking.
//
// # Construction
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 2.5) // endpoints auto-added
//	_ = g.AddEdge("A", "B", 1.0) // merged: Weight("A","B") == 3.5
//
// Bulk construction from a raw node/edge list (Edge.Weight == 0 means
// "unspecified" and defaults to 1):
//
//	g, err := core.Build([]string{"A", "B", "C"}, []core.Edge{
//	    {From: "A", To: "B"},
//	    {From: "B", To: "C", Weight: 4},
//	})
//
// Callers holding a gonum graph can convert with FromGonum.
//
// # Errors
//
//	ErrEmptyNodeID    - a node or edge endpoint ID is the empty string.
//	ErrNegativeWeight - an edge carries a negative weight.
//
// Negative weights are rejected at insertion time; every algorithm in this
// module assumes non-negative cut weights.
package core
