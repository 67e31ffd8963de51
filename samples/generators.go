package samples

import (
	"fmt"

	"github.com/katalvlaran/kruskalviz/core"
)

const (
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minCompleteVertices = 2
	minGridSide         = 1
	minSparseVertices   = 2
)

// Complete returns K_n with random weights.
//
// Edge order: for i asc, j asc with j > i.
// Complexity: O(n²).
func Complete(n int, opts ...Option) ([]core.Edge, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	edges := make([]core.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.NewEdge(cfg.idFn(i), cfg.idFn(j), cfg.weight()))
		}
	}

	return edges, nil
}

// Grid returns a rows×cols lattice; vertex (r,c) has index r*cols+c.
// A 1×1 grid has no edges.
//
// Edge order: row-major; for each cell the right neighbour, then the lower one.
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...Option) ([]core.Edge, error) {
	if rows < minGridSide || cols < minGridSide {
		return nil, fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	id := func(r, c int) string { return cfg.idFn(r*cols + c) }
	edges := make([]core.Edge, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, core.NewEdge(id(r, c), id(r, c+1), cfg.weight()))
			}
			if r+1 < rows {
				edges = append(edges, core.NewEdge(id(r, c), id(r+1, c), cfg.weight()))
			}
		}
	}

	return edges, nil
}

// RandomSparse returns a connected graph on n vertices: a random spanning
// tree plus each remaining pair independently with probability p.
//
// Steps:
//  1. For i = 1..n-1 attach vertex i to a uniformly chosen j < i.
//  2. For each pair {i,j}, i<j, not already used, add it with probability p.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, opts ...Option) ([]core.Edge, error) {
	if n < minSparseVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)

	// 1. Spanning tree.
	used := make(map[core.PairKey]bool, n)
	edges := make([]core.Edge, 0, 2*n)
	for i := 1; i < n; i++ {
		j := cfg.rng.Intn(i)
		e := core.NewEdge(cfg.idFn(j), cfg.idFn(i), cfg.weight())
		used[e.Key()] = true
		edges = append(edges, e)
	}

	// 2. Extra pairs.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() >= p {
				continue
			}
			e := core.NewEdge(cfg.idFn(i), cfg.idFn(j), cfg.weight())
			if used[e.Key()] {
				continue
			}
			used[e.Key()] = true
			edges = append(edges, e)
		}
	}

	return edges, nil
}
