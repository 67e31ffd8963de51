// Package core declares Edge, NodeID normalization and sentinel errors.
package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for edge validation.
var (
	// ErrEmptyNodeID indicates that an endpoint token is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a weight that is NaN, infinite, zero or negative.
	ErrBadWeight = errors.New("core: weight must be a finite positive number")

	// ErrDuplicateEdge indicates an edge whose unordered pair already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Edge is an undirected weighted connection between two nodes.
//
// The JSON shape {source, target, weight} is the one carried by every
// wire message and file format.
type Edge struct {
	// Source is one endpoint (normalized NodeID).
	Source string `json:"source" yaml:"source"`

	// Target is the other endpoint (normalized NodeID).
	Target string `json:"target" yaml:"target"`

	// Weight is the positive edge cost.
	Weight float64 `json:"weight" yaml:"weight"`
}

// PairKey identifies an undirected edge independent of endpoint order.
type PairKey struct {
	Lo, Hi string
}

// NormalizeID trims surrounding whitespace and upper-cases a node token.
// Complexity: O(len(id)).
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// NewEdge normalizes both endpoints and returns the resulting Edge.
// No validation is performed; use Validate when input comes from a user.
func NewEdge(source, target string, weight float64) Edge {
	return Edge{
		Source: NormalizeID(source),
		Target: NormalizeID(target),
		Weight: weight,
	}
}

// Key returns the unordered PairKey of e.
func (e Edge) Key() PairKey {
	if e.Source <= e.Target {
		return PairKey{Lo: e.Source, Hi: e.Target}
	}

	return PairKey{Lo: e.Target, Hi: e.Source}
}

// IsSelfLoop reports whether both endpoints are the same node.
func (e Edge) IsSelfLoop() bool { return e.Source == e.Target }

// String renders e as "A-B(5)".
func (e Edge) String() string {
	return e.Source + "-" + e.Target + "(" + FormatWeight(e.Weight) + ")"
}

// FormatWeight prints integral weights without a fractional part ("5")
// and everything else in the shortest round-trip form ("2.5").
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// Validate checks the edge invariants enforced before the core sees an edge.
//
// Error Conditions:
//   - ErrEmptyNodeID : Source or Target is empty.
//   - ErrSelfLoop    : Source == Target.
//   - ErrBadWeight   : Weight is NaN, ±Inf, or <= 0.
func Validate(e Edge) error {
	// 1. Both endpoints must carry a token.
	if e.Source == "" || e.Target == "" {
		return fmt.Errorf("Validate: %q-%q: %w", e.Source, e.Target, ErrEmptyNodeID)
	}
	// 2. Self-loops can never be part of a spanning tree.
	if e.IsSelfLoop() {
		return fmt.Errorf("Validate: %s: %w", e.Source, ErrSelfLoop)
	}
	// 3. Weight must be strictly positive and finite.
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight <= 0 {
		return fmt.Errorf("Validate: %s-%s weight=%g: %w", e.Source, e.Target, e.Weight, ErrBadWeight)
	}

	return nil
}

// Vertices returns the distinct endpoints of edges in first-seen order
// (source before target within one edge).
// Complexity: O(E).
func Vertices(edges []Edge) []string {
	seen := make(map[string]struct{}, 2*len(edges))
	out := make([]string, 0, 2*len(edges))
	for _, e := range edges {
		for _, id := range [2]string{e.Source, e.Target} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}
