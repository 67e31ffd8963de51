// Package traverse runs breadth-first and depth-first walks directly over
// an undirected []core.Edge, independent of any Union-Find.
//
// It answers the two structural questions a Kruskal run is judged by:
//
//   - Components / Connected (BFS): how many pieces does the input graph
//     have? A spanning tree exists iff there is exactly one.
//   - HasCycle / FindCycle (DFS): does an edge subset contain a cycle? Every
//     prefix of accepted Kruskal edges must not.
//
// Both walks visit start vertices in first-seen order and neighbours in
// edge order, so results are deterministic. Self-loops count as cycles of
// length 1 and parallel edges as cycles of length 2.
//
// Complexity: O(V + E) time and memory for every function.
package traverse
