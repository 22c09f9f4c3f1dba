// Package partition is a graph minimum-cut partitioning engine for
// weighted undirected graphs.
//
// It bundles:
//
//	core/   - graph storage: symmetric weighted adjacency, duplicate-edge
//	          merging, induced subgraphs, connected components, and a
//	          gonum input adapter
//	mincut/ - the solvers: exact Stoer–Wagner, randomized Karger trials
//	          (optionally on a worker pool), a greedy size-balance
//	          post-pass, and a recursive multi-way partitioner, all under
//	          one cooperative time budget
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 10)
//	_ = g.AddEdge("B", "C", 1)
//	_ = g.AddEdge("C", "D", 10)
//
//	res, err := mincut.Partition(g)
//	// res.Partition1, res.Partition2, res.CutWeight, res.CutEdges
//
//	parts, err := mincut.PartitionMultiWay(g, 3)
//
// Degraded conditions (exhausted time budget, fewer than k reachable
// partitions, empty input) return best-effort valid results with a logged
// warning; errors are reserved for programmer mistakes. See mincut's
// package documentation for the full contract.
package partition
