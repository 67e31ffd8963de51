package traverse

import "github.com/katalvlaran/kruskalviz/core"

// Components returns the connected components of the undirected graph
// formed by edges. Components are ordered by their first-seen vertex and
// each lists its vertices in BFS visit order.
func Components(edges []core.Edge) [][]string {
	adj := adjacency(edges)
	visited := make(map[string]bool, len(adj))

	var out [][]string
	for _, start := range core.Vertices(edges) {
		if visited[start] {
			continue
		}
		out = append(out, walk(adj, start, visited))
	}

	return out
}

// walk runs one BFS from start and returns the visit order.
func walk(adj map[string][]arc, start string, visited map[string]bool) []string {
	// 1. Seed the queue.
	queue := []string{start}
	visited[start] = true
	order := make([]string, 0, len(adj))

	// 2. FIFO expansion.
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		order = append(order, curr)
		for _, a := range adj[curr] {
			if visited[a.to] {
				continue
			}
			visited[a.to] = true
			queue = append(queue, a.to)
		}
	}

	return order
}

// Connected reports whether edges form a single component.
// An empty edge list has no spanning tree and is not connected.
func Connected(edges []core.Edge) bool {
	return len(Components(edges)) == 1
}

// ComponentCount returns len(Components(edges)).
func ComponentCount(edges []core.Edge) int {
	return len(Components(edges))
}
