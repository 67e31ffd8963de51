// Package samples provides ready-made edge lists for the visualizer: a small
// classroom graph whose steps are easy to follow by hand, a deterministic
// 50-node graph for stress demos, and seeded generators.
//
// Generators
//
//   - Complete(n): every unordered pair {i,j}, i<j.
//   - Grid(rows, cols): 4-neighbour lattice, row-major.
//   - RandomSparse(n, p): a random spanning tree plus every other pair
//     independently with probability p. The result is always connected, so
//     Kruskal finishes with one component.
//
// All generators are pure given their options: the same seed yields the same
// edges in the same order. Weights are integers drawn from the configured
// range (default 1..20), matching what a user would type by hand.
//
// Vertex IDs follow the Excel column scheme (A..Z, AA, AB, ...) unless
// WithIDScheme is given; IDs are always upper-case as the ingest layer would
// produce them.
//
// Catalog
//
//	Names() lists the registered samples in a stable order; Get(name) builds
//	one. Unknown names return ErrUnknownSample.
package samples
