package kruskal

import (
	"sort"

	"github.com/katalvlaran/kruskalviz/core"
)

// Order returns a new slice holding edges sorted by ascending Weight.
// Equal weights keep their input order (stable sort), so the result is a
// pure function of the input and Order(Order(x)) equals Order(x).
//
// No validation is performed. Complexity: O(E log E) time, O(E) memory.
func Order(edges []core.Edge) []core.Edge {
	// 1. Copy so the caller's slice is never reordered.
	out := make([]core.Edge, len(edges))
	copy(out, edges)

	// 2. Stable sort by weight only; position breaks ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight < out[j].Weight
	})

	return out
}
