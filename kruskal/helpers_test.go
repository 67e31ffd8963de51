package kruskal_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/kruskalviz/core"
)

// edge is a terse core.Edge constructor for table fixtures.
func edge(s, t string, w float64) core.Edge { return core.Edge{Source: s, Target: t, Weight: w} }

// buildTriangle returns A-B(1), B-C(2), A-C(3).
func buildTriangle() []core.Edge {
	return []core.Edge{edge("A", "B", 1), edge("B", "C", 2), edge("A", "C", 3)}
}

// buildRandomEdges creates n vertices, a random-weight chain V0-V1-...-V(n-1) for
// connectivity, then extra random edges (self-loops skipped, duplicates allowed).
// Integer weights in [1..10] make ties frequent. Seeded for reproducibility.
func buildRandomEdges(seed int64, n, extra int) []core.Edge {
	r := rand.New(rand.NewSource(seed))
	edges := make([]core.Edge, 0, n-1+extra)
	for i := 1; i < n; i++ {
		edges = append(edges, edge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), float64(1+r.Intn(10))))
	}
	for i := 0; i < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, edge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), float64(1+r.Intn(10))))
		i++
	}
	// Shuffle so the chain is not pre-sorted by position.
	r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	return edges
}
