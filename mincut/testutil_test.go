package mincut_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rossjdharrison/harmony-design-sub007/core"
)

// buildBridgeGraph constructs two weight-10 triangles {A,B,C} and {D,E,F}
// joined by a single weight-1 bridge C-D. The exact global minimum cut is
// the bridge: weight 1, partitions {A,B,C} vs {D,E,F}.
func buildBridgeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 10))
	}
	for _, e := range [][2]string{{"D", "E"}, {"E", "F"}, {"D", "F"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 10))
	}
	require.NoError(t, g.AddEdge("C", "D", 1))

	return g
}

// buildCompleteK4 constructs K4 with unit weights. The exact minimum cut
// isolates any single vertex: weight 3.
func buildCompleteK4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D"}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			require.NoError(t, g.AddEdge(ids[i], ids[j], 1))
		}
	}

	return g
}

// buildPathGraph constructs a unit-weight path V0-V1-...-V(n-1).
// The exact minimum cut is any single path edge: weight 1.
func buildPathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(node(i-1), node(i), 1))
	}

	return g
}

// buildRandomGraph constructs a connected weighted graph with n vertices:
// a random-weight spanning chain plus extra random edges, deterministically
// seeded for reproducibility.
func buildRandomGraph(t *testing.T, n, extraEdges int, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(node(i-1), node(i), 1+float64(r.Intn(9))))
	}
	for added := 0; added < extraEdges; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue // loops are dropped by core anyway; keep counts exact
		}
		require.NoError(t, g.AddEdge(node(u), node(v), 1+float64(r.Intn(20))))
		added++
	}

	return g
}

func node(i int) string { return fmt.Sprintf("V%d", i) }

// union gathers both sides of a 2-way result for completeness checks.
func union(p1, p2 []string) []string {
	out := make([]string, 0, len(p1)+len(p2))
	out = append(out, p1...)
	out = append(out, p2...)

	return out
}
