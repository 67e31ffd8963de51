package kruskal

import (
	"container/heap"

	"github.com/katalvlaran/kruskalviz/core"
)

// Prim computes a minimum spanning forest by growing a tree with a min-heap
// from every not-yet-visited node, in first-seen node order.
//
// It is the cross-check for Kruskal: both must reach the same total cost
// (the chosen edges may differ when weights tie).
//
// Steps:
//  1. Build an undirected adjacency list; self-loops are skipped.
//  2. For each unvisited node in first-seen order, mark it visited and push its edges.
//  3. Pop the lightest candidate; skip it if its far end is visited,
//     otherwise keep it, mark the far end, and push that node's edges.
//  4. Repeat until the heap is empty, then move on to the next tree.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(edges []core.Edge) ([]core.Edge, float64) {
	// 1. Adjacency with stable insertion order; seq breaks heap ties deterministically.
	adj := make(map[string][]primArc, 2*len(edges))
	for i, e := range edges {
		if e.IsSelfLoop() {
			continue
		}
		adj[e.Source] = append(adj[e.Source], primArc{to: e.Target, edge: e, seq: i})
		adj[e.Target] = append(adj[e.Target], primArc{to: e.Source, edge: e, seq: i})
	}

	var (
		visited = make(map[string]bool, len(adj))
		forest  []core.Edge
		total   float64
		pq      = &arcPQ{}
	)
	heap.Init(pq)

	push := func(from string) {
		for _, a := range adj[from] {
			if !visited[a.to] {
				heap.Push(pq, a)
			}
		}
	}

	// 2. One tree per component.
	for _, root := range core.Vertices(edges) {
		if visited[root] {
			continue
		}
		visited[root] = true
		push(root)

		// 3. Grow the current tree.
		for pq.Len() > 0 {
			a := heap.Pop(pq).(primArc)
			if visited[a.to] {
				continue
			}
			visited[a.to] = true
			forest = append(forest, a.edge)
			total += a.edge.Weight
			push(a.to)
		}
	}

	return forest, total
}

// primArc is one direction of an undirected edge.
type primArc struct {
	to   string
	edge core.Edge
	seq  int
}

// arcPQ implements heap.Interface ordered by (weight, seq).
type arcPQ []primArc

func (pq arcPQ) Len() int { return len(pq) }

func (pq arcPQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq arcPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *arcPQ) Push(x any) { *pq = append(*pq, x.(primArc)) }

func (pq *arcPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
