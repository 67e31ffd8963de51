package kruskal

import (
	"math"

	"github.com/katalvlaran/kruskalviz/core"
)

// Algorithm names used in Comparison.BestChoice.
const (
	AlgorithmKruskal   = "kruskal"
	AlgorithmPrimDense = "prim-dense"
)

// Complexity holds operation-count estimates for one graph size.
type Complexity struct {
	KruskalSort  float64 `json:"kruskalSort"`  // E·log2 E
	KruskalUnion float64 `json:"kruskalUnion"` // E·log2 V
	KruskalTotal float64 `json:"kruskalTotal"`
	PrimDense    float64 `json:"primDense"` // V²
	PrimHeap     float64 `json:"primHeap"`  // (E+V)·log2 V
	Dijkstra     float64 `json:"dijkstra"`  // (E+V)·log2 V
}

// Comparison reports Kruskal and Prim on the same edge list.
type Comparison struct {
	Nodes        int        `json:"nodes"`
	Edges        int        `json:"edges"`
	KruskalCost  float64    `json:"kruskalCost"`
	PrimCost     float64    `json:"primCost"`
	KruskalEdges int        `json:"kruskalEdges"`
	PrimEdges    int        `json:"primEdges"`
	Agree        bool       `json:"agree"`
	Density      float64    `json:"density"` // percent of the complete graph
	BestChoice   string     `json:"bestChoice"`
	Complexity   Complexity `json:"complexity"`
}

// costTolerance absorbs float summation order differences between algorithms.
const costTolerance = 1e-9

// Compare runs both algorithms and fills the cost model.
//
// BestChoice is AlgorithmKruskal when E < V² / log2(max(V,2)),
// AlgorithmPrimDense otherwise.
func Compare(edges []core.Edge) Comparison {
	_, sum := Run(edges)
	primEdges, primCost := Prim(edges)

	v := float64(sum.NodeCount)
	e := float64(len(edges))

	return Comparison{
		Nodes:        sum.NodeCount,
		Edges:        len(edges),
		KruskalCost:  sum.TotalCost,
		PrimCost:     primCost,
		KruskalEdges: len(sum.MSTEdges),
		PrimEdges:    len(primEdges),
		Agree:        math.Abs(sum.TotalCost-primCost) <= costTolerance && len(sum.MSTEdges) == len(primEdges),
		Density:      density(v, e),
		BestChoice:   bestChoice(v, e),
		Complexity:   estimate(v, e),
	}
}

// estimate evaluates the textbook cost formulas; log2 of values < 1 counts as 0.
func estimate(v, e float64) Complexity {
	c := Complexity{
		KruskalSort:  e * log2(e),
		KruskalUnion: e * log2(v),
		PrimDense:    v * v,
		PrimHeap:     (e + v) * log2(v),
		Dijkstra:     (e + v) * log2(v),
	}
	c.KruskalTotal = c.KruskalSort + c.KruskalUnion

	return c
}

func log2(x float64) float64 {
	if x <= 1 {
		return 0
	}

	return math.Log2(x)
}

func density(v, e float64) float64 {
	if v < 2 {
		return 0
	}

	return e / (v * (v - 1) / 2) * 100
}

func bestChoice(v, e float64) string {
	if e < v*v/math.Log2(math.Max(v, 2)) {
		return AlgorithmKruskal
	}

	return AlgorithmPrimDense
}
