// File: edgeset.go
// Role: EdgeSet, the validated and deduplicated edge catalog of one run.
// Determinism:
//   - Edges() returns insertion order.
//   - Vertices() returns first-seen order.
// Concurrency:
//   - All methods are safe for concurrent use (single RWMutex).

package core

import (
	"fmt"
	"sync"
)

// EdgeSet collects edges that passed Validate, keeping at most one edge per
// unordered node pair.
type EdgeSet struct {
	mu sync.RWMutex // guards edges, index, vertices, seen

	edges    []Edge          // insertion order
	index    map[PairKey]int // pair → position in edges
	vertices []string        // first-seen order
	seen     map[string]struct{}
}

// NewEdgeSet returns an empty EdgeSet.
// Complexity: O(1).
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{
		index: make(map[PairKey]int),
		seen:  make(map[string]struct{}),
	}
}

// Add validates e and appends it.
//
// Steps:
//  1. Validate invariants (ErrEmptyNodeID, ErrSelfLoop, ErrBadWeight).
//  2. Under write lock reject an existing unordered pair (ErrDuplicateEdge).
//  3. Append edge and register unseen endpoints.
//
// Complexity: O(1) amortized.
func (s *EdgeSet) Add(e Edge) error {
	if err := Validate(e); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := e.Key()
	if at, ok := s.index[key]; ok {
		return fmt.Errorf("Add: %s duplicates %s: %w", e, s.edges[at], ErrDuplicateEdge)
	}
	s.index[key] = len(s.edges)
	s.edges = append(s.edges, e)
	s.registerVertex(e.Source)
	s.registerVertex(e.Target)

	return nil
}

// registerVertex records id once; caller holds the write lock.
func (s *EdgeSet) registerVertex(id string) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.vertices = append(s.vertices, id)
}

// HasEdge reports whether an edge between a and b (either orientation) exists.
func (s *EdgeSet) HasEdge(a, b string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[Edge{Source: a, Target: b}.Key()]

	return ok
}

// Edges returns a copy of the edges in insertion order.
func (s *EdgeSet) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Vertices returns a copy of all endpoints in first-seen order.
func (s *EdgeSet) Vertices() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.vertices))
	copy(out, s.vertices)

	return out
}

// Len returns the number of edges.
func (s *EdgeSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.edges)
}

// VertexCount returns the number of distinct endpoints.
func (s *EdgeSet) VertexCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.vertices)
}
