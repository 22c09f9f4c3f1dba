package mincut_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rossjdharrison/harmony-design-sub007/core"
	"github.com/rossjdharrison/harmony-design-sub007/mincut"
)

// buildIslands constructs count disjoint unit-weight triangles with no
// cross-island edges.
func buildIslands(t *testing.T, count int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < count; i++ {
		a, b, c := node(3*i), node(3*i+1), node(3*i+2)
		require.NoError(t, g.AddEdge(a, b, 1))
		require.NoError(t, g.AddEdge(b, c, 1))
		require.NoError(t, g.AddEdge(a, c, 1))
	}

	return g
}

// flatten joins all partitions for completeness checks.
func flatten(parts [][]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// TestMultiWay_Validation verifies the fast-fail paths.
func TestMultiWay_Validation(t *testing.T) {
	g := buildPathGraph(t, 4)

	_, err := mincut.PartitionMultiWay(nil, 2)
	assert.ErrorIs(t, err, mincut.ErrNilGraph)

	_, err = mincut.PartitionMultiWay(g, 1)
	assert.ErrorIs(t, err, mincut.ErrTooFewPartitions)

	_, err = mincut.PartitionMultiWay(g, 0)
	assert.ErrorIs(t, err, mincut.ErrTooFewPartitions)
}

// TestMultiWay_DisjointComponents verifies that a graph with exactly k
// connected components splits into those components with zero
// inter-partition weight.
func TestMultiWay_DisjointComponents(t *testing.T) {
	g := buildIslands(t, 3)

	parts, err := mincut.PartitionMultiWay(g, 3,
		mincut.WithTimeBudget(5*time.Second))
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.ElementsMatch(t, g.Nodes(), flatten(parts))
	for _, p := range parts {
		assert.Len(t, p, 3, "each island is one triangle")
		// Zero crossing weight from every partition to the rest.
		weight, edges, evalErr := mincut.Evaluate(g, p)
		require.NoError(t, evalErr)
		assert.Zero(t, weight)
		assert.Empty(t, edges)
	}
}

// TestMultiWay_PathGraph verifies a connected split: k parts, disjoint,
// covering all nodes.
func TestMultiWay_PathGraph(t *testing.T) {
	g := buildPathGraph(t, 9)

	parts, err := mincut.PartitionMultiWay(g, 3,
		mincut.WithTimeBudget(5*time.Second))
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.ElementsMatch(t, g.Nodes(), flatten(parts))
	for _, p := range parts {
		assert.NotEmpty(t, p)
	}
}

// TestMultiWay_KExceedsNodes verifies degradation when k outstrips the
// node count: splitting stops at singletons, fewer partitions come back.
func TestMultiWay_KExceedsNodes(t *testing.T) {
	g := buildPathGraph(t, 3)

	parts, err := mincut.PartitionMultiWay(g, 5,
		mincut.WithTimeBudget(5*time.Second))
	require.NoError(t, err)
	assert.Len(t, parts, 3, "three nodes cannot form five partitions")
	assert.ElementsMatch(t, g.Nodes(), flatten(parts))
}

// TestMultiWay_ZeroBudget verifies the degraded-but-valid path: an already
// expired budget still returns a covering partition list, never an error.
func TestMultiWay_ZeroBudget(t *testing.T) {
	g := buildPathGraph(t, 12)

	parts, err := mincut.PartitionMultiWay(g, 4, mincut.WithTimeBudget(0))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(parts), 1)
	assert.LessOrEqual(t, len(parts), 4)
	assert.ElementsMatch(t, g.Nodes(), flatten(parts))
}

// TestMultiWay_EmptyGraph verifies the zero-node edge case: an empty list,
// no error.
func TestMultiWay_EmptyGraph(t *testing.T) {
	parts, err := mincut.PartitionMultiWay(core.NewGraph(), 2)
	require.NoError(t, err)
	assert.Empty(t, parts)
}

// TestMultiWay_MixedComponentSizes verifies that recursive bisection keeps
// peeling the largest partition first.
func TestMultiWay_MixedComponentSizes(t *testing.T) {
	// One 6-node path plus one triangle, k=3: the path (largest) splits,
	// the triangle stays whole.
	g := core.NewGraph()
	for i := 1; i < 6; i++ {
		require.NoError(t, g.AddEdge(node(i-1), node(i), 1))
	}
	require.NoError(t, g.AddEdge("T0", "T1", 1))
	require.NoError(t, g.AddEdge("T1", "T2", 1))
	require.NoError(t, g.AddEdge("T0", "T2", 1))

	parts, err := mincut.PartitionMultiWay(g, 3,
		mincut.WithTimeBudget(5*time.Second))
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.ElementsMatch(t, g.Nodes(), flatten(parts))

	// The triangle must survive as one partition.
	assert.Contains(t, parts, []string{"T0", "T1", "T2"})
}
