// Package kruskalviz is the backend of a step-by-step Kruskal minimum
// spanning tree visualizer.
//
// Given a weighted undirected edge list, it orders the edges, walks them with
// a Union-Find and records one Step per edge: accepted or rejected, running
// cost, edges selected so far and the full component partition. Steps are
// replayed at a controllable speed either from a local engine or from a
// server streaming over WebSocket; both sources produce the same sequence.
//
// Packages:
//
//	core/      Edge, normalization, validation and dedup (EdgeSet)
//	dsu/       Union-Find with full path compression + partition strategies
//	kruskal/   edge ordering, step engine, summaries, Prim cross-check
//	replay/    timer-driven Driver with pause, resume, speed and observers
//	remote/    REST + WebSocket server and the streaming Relay client
//	ingest/    text, CSV, XLSX, YAML and JSON edge loaders
//	samples/   built-in graphs and seeded generators
//	traverse/  BFS components and DFS cycle detection over edge lists
//	config/    environment and .env configuration
//	cmd/kruskalviz CLI: run, stream, serve, validate, compare, samples
//
// Quick ASCII example (the triangle):
//
//	    A──1──B
//	     \    │
//	      3   2
//	       \  │
//	         C
//
//	steps: A-B(1) selected, B-C(2) selected, A-C(3) rejected (cycle); cost 3.
//
//	go install github.com/katalvlaran/kruskalviz/cmd/kruskalviz@latest
package kruskalviz
