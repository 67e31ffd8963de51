// Package dsu implements a string-keyed disjoint-set forest (Union-Find)
// grown lazily one node at a time, plus two interchangeable ways of
// materializing the current partition as a node → colour index map.
//
// Find uses full path compression: after Find(x) every node that was on the
// path from x to its root points directly at the root.
//
// Union rules:
//
//   - AttachXUnderY (default): Union(x, y) sets parent[root(x)] = root(y).
//     No rank or size heuristic, so the forest shape is a pure function of
//     the union sequence.
//   - UnionBySize: the smaller tree goes under the larger one; equal sizes
//     fall back to AttachXUnderY.
//
// Partitioners:
//
//   - Recompute: calls Find for every known node on each Partition call.
//   - Incremental: keeps a root → members index updated on each merge and
//     never calls Find.
//
// Both produce identical maps: colours are assigned to roots in order of
// first discovery while walking nodes in first-seen order, so component 0 is
// always the component of the first node ever added.
//
// Complexity:
//
//	Add O(1); Find/Union amortized O(log V) (O(α(V)) with UnionBySize);
//	Partition O(V) (Incremental adds O(C log C) to order C components).
package dsu
