// Package core defines the Edge value shared by every kruskalviz package
// and a small, thread-safe EdgeSet that collects validated, deduplicated
// edges for one run.
//
// Data model:
//
//   - NodeID is an opaque string token, normalized by NormalizeID
//     (trimmed and upper-cased) before it reaches any algorithm.
//   - Edge{Source, Target, Weight} is undirected: (A,B,w) and (B,A,w)
//     share the same PairKey and are duplicates of each other.
//   - A valid edge has non-empty endpoints, Source != Target and Weight > 0.
//
// EdgeSet keeps insertion order for edges and first-seen order for vertices.
// Both orders are stable enumeration surfaces: kruskal relies on edge order
// for its tie-break and on vertex order for deterministic component colours.
//
// Errors:
//
//	ErrEmptyNodeID     - an endpoint is empty after normalization.
//	ErrSelfLoop        - Source == Target.
//	ErrBadWeight       - weight is not a finite positive number.
//	ErrDuplicateEdge   - the unordered pair is already present in the EdgeSet.
//
// Complexity:
//
//	Add, HasEdge: O(1) amortized; Edges, Vertices: O(n) copy.
package core
