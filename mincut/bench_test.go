package mincut_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/rossjdharrison/harmony-design-sub007/core"
	"github.com/rossjdharrison/harmony-design-sub007/mincut"
)

// benchGraph builds a connected random graph: spanning chain plus extra
// edges, deterministically seeded so every run measures the same input.
func benchGraph(n, extra int, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), 1+float64(r.Intn(9)))
	}
	for added := 0; added < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_ = g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), 1+float64(r.Intn(20)))
		added++
	}

	return g
}

// BenchmarkPartition measures both solvers across graph sizes.
func BenchmarkPartition(b *testing.B) {
	cases := []struct {
		name  string
		nodes int
		extra int
	}{
		{"Small", 20, 40},
		{"Medium", 60, 150},
		{"Large", 120, 400},
	}

	for _, tc := range cases {
		tc := tc
		g := benchGraph(tc.nodes, tc.extra, 42)

		b.Run(tc.name+"/StoerWagner", func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = mincut.Partition(g,
					mincut.WithAlgorithm(mincut.StoerWagner),
					mincut.WithTimeBudget(time.Minute),
				)
			}
		})

		b.Run(tc.name+"/Karger", func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = mincut.Partition(g,
					mincut.WithAlgorithm(mincut.Karger),
					mincut.WithKargerIterations(20),
					mincut.WithTimeBudget(time.Minute),
				)
			}
		})

		b.Run(tc.name+"/KargerParallel", func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = mincut.Partition(g,
					mincut.WithAlgorithm(mincut.Karger),
					mincut.WithKargerIterations(20),
					mincut.WithWorkers(4),
					mincut.WithTimeBudget(time.Minute),
				)
			}
		})
	}
}

// BenchmarkPartitionMultiWay measures recursive bisection into 4 parts.
func BenchmarkPartitionMultiWay(b *testing.B) {
	g := benchGraph(80, 200, 7)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mincut.PartitionMultiWay(g, 4, mincut.WithTimeBudget(time.Minute))
	}
}
