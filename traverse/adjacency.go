package traverse

import "github.com/katalvlaran/kruskalviz/core"

// arc is one direction of an undirected edge; id is the edge index.
type arc struct {
	to string
	id int
}

// adjacency builds the undirected adjacency list in edge order.
// A self-loop contributes a single arc.
func adjacency(edges []core.Edge) map[string][]arc {
	adj := make(map[string][]arc, 2*len(edges))
	for i, e := range edges {
		adj[e.Source] = append(adj[e.Source], arc{to: e.Target, id: i})
		if !e.IsSelfLoop() {
			adj[e.Target] = append(adj[e.Target], arc{to: e.Source, id: i})
		}
	}

	return adj
}
