// Package mincut implements global minimum-cut partitioning of weighted
// undirected graphs represented by *core.Graph. It provides an exact
// deterministic solver, a randomized approximate solver, a size-balance
// post-pass, and a recursive multi-way partitioner, all sharing one
// cooperative time budget.
//
// The algorithms offered are:
//
//   - Stoer–Wagner
//
//   - Method: repeated maximum-adjacency phases with node contraction;
//     each phase isolates one candidate cut, the global minimum over all
//     phases is exact.
//
//   - Time:   O(V³) worst case (O(V²) per phase, V−1 phases).
//
//   - Memory: O(V + E) for the contracted adjacency and contraction record.
//
//   - Deterministic: ties in the "most tightly connected" rule break by
//     node insertion order, so identical input yields identical output.
//
//   - Karger
//
//   - Method: repeated independent trials of uniform random edge
//     contraction until two supernodes remain; best trial wins.
//
//   - Time:   O(T · V · E) for T trials.
//
//   - Memory: O(V + E) per trial.
//
//   - Heuristic on weighted graphs: edges are sampled uniformly, not
//     weight-proportionally, so the classic success bound of roughly
//     1/C(V,2) per trial applies to the unweighted view of the graph.
//     Trials are independent and run on an errgroup worker pool when
//     WithWorkers(n > 1) is set.
//
// # Entry points
//
//	func Partition(g *core.Graph, opts ...Option) (Result, error)
//	func PartitionMultiWay(g *core.Graph, k int, opts ...Option) ([][]string, error)
//
// Partition produces a 2-way cut. With WithAlgorithm(Auto) (the default)
// the solver is chosen by graph size: Stoer–Wagner below 100 nodes, Karger
// at or above. PartitionMultiWay recursively bisects the largest partition
// (on its induced subgraph) until k partitions exist or the time budget is
// exhausted.
//
// # Soft failures
//
// Most abnormal conditions degrade instead of failing: an exhausted time
// budget returns the best cut found so far, a multi-way call that cannot
// reach k partitions returns fewer, an empty graph yields two empty
// partitions, and a zero-weight cut on a disconnected graph is a legitimate
// result. All degraded paths emit a Warn event on the configured Logger.
// Hard errors are reserved for programmer mistakes:
//
//	ErrNilGraph         - g is nil.
//	ErrTooFewPartitions - PartitionMultiWay with k < 2.
//	ErrBadIterations    - non-positive Karger iteration count.
//	ErrBadTolerance     - balance tolerance outside [0,1].
//	ErrBadTimeBudget    - negative time budget.
//	ErrBadWorkers       - non-positive worker count.
//	ErrBadThreshold     - non-positive auto-selection threshold.
//	ErrNegativeWeight   - a WithEdgeWeight override produced a negative weight.
//	ErrUnknownAlgorithm - algorithm value out of range.
//
// # Determinism
//
// Stoer–Wagner is fully deterministic. Karger draws from a seeded RNG
// (seed==0 maps to a fixed default seed) with an independent SplitMix64
// derived stream per trial, so results reproduce across runs and across
// worker counts: the winning trial is the lowest-weight one, ties broken
// by lowest trial index regardless of completion order.
//
// The time budget is cooperative, not preemptive: it is consulted at the
// start of each Stoer–Wagner phase, each Karger trial, and each multi-way
// split. A single expensive phase can overrun the budget; treat it as a
// soft deadline, not a real-time guarantee.
//
// # Integration
//
//   - Relies on github.com/rossjdharrison/harmony-design-sub007/core for
//     graph storage, induced subgraphs, and connected components.
//   - Evaluate recomputes any partition's crossing edges against the
//     original adjacency; every solver reports through it, never through
//     contracted synthetic weights.
package mincut
