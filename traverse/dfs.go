package traverse

import "github.com/katalvlaran/kruskalviz/core"

// Visitation colours.
const (
	white = iota // unvisited
	gray         // on the DFS stack
	black        // finished
)

// HasCycle reports whether the undirected graph formed by edges contains a cycle.
func HasCycle(edges []core.Edge) bool {
	return FindCycle(edges) != nil
}

// FindCycle returns the vertices of the first cycle found, in path order
// starting at the vertex where the cycle closes, or nil if the graph is a
// forest. A self-loop on A yields [A]; parallel edges A-B yield [A B].
//
// The back-edge test skips only the exact edge used to enter a vertex
// (by index), so parallel edges are detected.
func FindCycle(edges []core.Edge) []string {
	adj := adjacency(edges)
	state := make(map[string]int, len(adj))
	var path []string

	var visit func(u string, via int) []string
	visit = func(u string, via int) []string {
		state[u] = gray
		path = append(path, u)
		for _, a := range adj[u] {
			if a.id == via {
				continue
			}
			switch state[a.to] {
			case gray:
				// Back edge: slice the stack from a.to to the top.
				for i := len(path) - 1; i >= 0; i-- {
					if path[i] == a.to {
						cyc := make([]string, len(path)-i)
						copy(cyc, path[i:])
						return cyc
					}
				}
			case white:
				if cyc := visit(a.to, a.id); cyc != nil {
					return cyc
				}
			}
		}
		path = path[:len(path)-1]
		state[u] = black

		return nil
	}

	for _, v := range core.Vertices(edges) {
		if state[v] != white {
			continue
		}
		if cyc := visit(v, -1); cyc != nil {
			return cyc
		}
	}

	return nil
}
