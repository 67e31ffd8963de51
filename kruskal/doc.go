// Package kruskal turns a weighted undirected edge list into a deterministic,
// replayable sequence of Kruskal decisions for step-by-step visualization.
//
// What & Why
//
//   - Kruskal's algorithm sorts edges by weight and walks them from lightest
//     to heaviest, keeping an edge iff its endpoints are in different
//     components. A Union-Find structure answers "same component?" in
//     near-constant time.
//
//   - A teaching tool needs more than the final tree: for every examined
//     edge it needs the decision, the running cost and the full component
//     partition so every node can be recoloured. Engine produces exactly
//     that, one Step per edge.
//
// Pipeline
//
//	raw []core.Edge ─► Order ─► Engine.Next() ×n ─► []Step + Summary
//
//   - Order: stable sort by weight; among equal weights input order wins.
//     Pure and idempotent.
//   - Engine: owns one dsu.DSU and one dsu.Partitioner for a single run.
//     Each Next processes ordered[StepIndex] and emits a Step whose
//     ComponentMap is freshly materialized. Reset replays from step 0.
//   - Summary: total cost, accepted edges in order, rejected count, final
//     component count. A final count > 1 means the input was disconnected
//     and the accepted edges form a spanning forest; that is data, not an
//     error.
//
// Step sources
//
//	StepSource is the one contract consumers drive. LocalSource wraps an
//	Engine in-process; remote.Relay reads the same Steps from a WebSocket
//	stream produced by the very same Engine on the server.
//
// Determinism
//
//   - Ties: stable sort over input order.
//   - Union: root(source) is attached under root(target) unless
//     WithUnionRule(dsu.UnionBySize) is given.
//   - Colours: component 0 is the component of the first node ever seen,
//     later components are numbered by their earliest node.
//   - Nodes: by default (NodeScopeAll) every endpoint of the input is a
//     singleton before step 0, so the first Step already counts every
//     component. WithNodeScope(NodeScopeSeen) registers nodes lazily when
//     their first edge is examined.
//
// Complexity: O(E log E) ordering + O(E·V) for materializing a component map
// after every step. Memory: O(E + V) per step retained by Run.
//
// Also provided: Prim (minimum spanning forest via a min-heap) and Compare,
// which cross-checks both algorithms and reports the textbook cost models.
package kruskal
