// Package kruskal defines Step, Summary, Statistics, options and sentinel errors.
package kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kruskalviz/core"
	"github.com/katalvlaran/kruskalviz/dsu"
)

// ErrUnknownStatus indicates a status string other than "selected" or "rejected".
var ErrUnknownStatus = errors.New("kruskal: unknown step status")

// ErrUnknownReason indicates a reason string outside the known set.
var ErrUnknownReason = errors.New("kruskal: unknown step reason")

// Status is the decision taken for one examined edge.
type Status int

const (
	// Accepted means the edge joined two components and is part of the MST.
	Accepted Status = iota

	// Rejected means both endpoints were already in one component.
	Rejected
)

// Wire names for Status.
const (
	statusSelected = "selected"
	statusRejected = "rejected"
)

// String returns the wire name ("selected" / "rejected").
func (s Status) String() string {
	if s == Accepted {
		return statusSelected
	}

	return statusRejected
}

// MarshalText encodes the wire name.
func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case Accepted, Rejected:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("Status.MarshalText: %d: %w", int(s), ErrUnknownStatus)
	}
}

// UnmarshalText decodes the wire name.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case statusSelected:
		*s = Accepted
	case statusRejected:
		*s = Rejected
	default:
		return fmt.Errorf("Status.UnmarshalText: %q: %w", string(b), ErrUnknownStatus)
	}

	return nil
}

// Reason explains a Status.
type Reason string

const (
	// ReasonNoCycle: endpoints were in different components.
	ReasonNoCycle Reason = "no_cycle"

	// ReasonCycle: endpoints already shared a component.
	ReasonCycle Reason = "cycle"

	// ReasonSelfLoop: source == target; rejected like any same-component edge.
	ReasonSelfLoop Reason = "self_loop"
)

// UnmarshalText accepts the known reasons and the empty string.
func (r *Reason) UnmarshalText(b []byte) error {
	switch v := Reason(b); v {
	case "", ReasonNoCycle, ReasonCycle, ReasonSelfLoop:
		*r = v
		return nil
	default:
		return fmt.Errorf("Reason.UnmarshalText: %q: %w", string(b), ErrUnknownReason)
	}
}

// Step is the state after examining one edge of the ordered list.
type Step struct {
	// StepIndex is the position of Edge in the ordered edge list (0-based).
	StepIndex int `json:"stepIndex"`

	// Edge is the examined edge.
	Edge core.Edge `json:"edge"`

	// Status is Accepted or Rejected.
	Status Status `json:"status"`

	// TotalCost is the cumulative weight of accepted edges.
	TotalCost float64 `json:"totalCost"`

	// EdgesSelected is the cumulative count of accepted edges.
	EdgesSelected int `json:"edgesSelected"`

	// ConnectedComponents counts components among the nodes seen so far.
	ConnectedComponents int `json:"connectedComponents"`

	// ComponentMap maps every node seen so far to its component colour.
	ComponentMap map[string]int `json:"componentMap"`

	// Reason refines Status.
	Reason Reason `json:"reason,omitempty"`

	// Message is a one-line human explanation of the decision.
	Message string `json:"message,omitempty"`
}

// Summary is emitted once the last edge has been examined.
type Summary struct {
	// TotalCost is the weight of all accepted edges.
	TotalCost float64 `json:"totalCost"`

	// MSTEdges lists accepted edges in acceptance order.
	MSTEdges []core.Edge `json:"mstEdges"`

	// EdgesRejectedCount counts rejected edges.
	EdgesRejectedCount int `json:"edgesRejectedCount"`

	// ConnectedComponents is the final component count; > 1 means spanning forest.
	ConnectedComponents int `json:"connectedComponents"`

	// NodeCount is the number of distinct nodes seen.
	NodeCount int `json:"nodeCount"`

	// EdgesExamined equals the number of steps.
	EdgesExamined int `json:"edgesExamined"`
}

// Complete reports whether the accepted edges span every node as one tree.
func (s Summary) Complete() bool {
	return s.NodeCount > 0 && s.ConnectedComponents == 1
}

// Statistics is the report block of a finished run.
type Statistics struct {
	TotalNodes          int     `json:"totalNodes"`
	TotalEdges          int     `json:"totalEdges"`
	MSTEdgesCount       int     `json:"mstEdgesCount"`
	MSTTotalCost        float64 `json:"mstTotalCost"`
	EdgesExamined       int     `json:"edgesExamined"`
	EdgesRejected       int     `json:"edgesRejected"`
	ConnectedComponents int     `json:"connectedComponents"`
	IsComplete          bool    `json:"isComplete"`
}

// Statistics derives the report block from s.
func (s Summary) Statistics() Statistics {
	return Statistics{
		TotalNodes:          s.NodeCount,
		TotalEdges:          s.EdgesExamined,
		MSTEdgesCount:       len(s.MSTEdges),
		MSTTotalCost:        s.TotalCost,
		EdgesExamined:       s.EdgesExamined,
		EdgesRejected:       s.EdgesRejectedCount,
		ConnectedComponents: s.ConnectedComponents,
		IsComplete:          s.Complete(),
	}
}

// NodeScope selects which nodes a component map covers.
type NodeScope int

const (
	// NodeScopeAll registers every endpoint of the input as a singleton before
	// step 0, in first-seen input order. Component counts start at |V| and
	// never increase.
	NodeScopeAll NodeScope = iota

	// NodeScopeSeen registers endpoints lazily when their edge is examined.
	// Maps cover only nodes seen so far; a step that introduces an isolated
	// pair raises the count.
	NodeScopeSeen
)

// String returns the scope name used in logs and flags.
func (s NodeScope) String() string {
	if s == NodeScopeSeen {
		return "seen"
	}

	return "all"
}

// Options configures an Engine.
//
// Fields:
//
//	UnionRule: dsu.AttachXUnderY (default) or dsu.UnionBySize.
//	Partition: dsu.StrategyRecompute (default) or dsu.StrategyIncremental.
//	Nodes:     NodeScopeAll (default) or NodeScopeSeen.
//
// UnionRule and Partition never change an observable Step field; they exist
// so the textbook rule and the faster variants can be checked against each
// other. Nodes does change ComponentMap and ConnectedComponents.
type Options struct {
	UnionRule dsu.UnionRule
	Partition dsu.Strategy
	Nodes     NodeScope
}

// Option configures Options.
type Option func(*Options)

// WithUnionRule selects the Union-Find linking rule.
func WithUnionRule(r dsu.UnionRule) Option {
	return func(o *Options) { o.UnionRule = r }
}

// WithPartition selects how component maps are materialized.
func WithPartition(s dsu.Strategy) Option {
	return func(o *Options) { o.Partition = s }
}

// WithNodeScope selects eager (NodeScopeAll) or lazy (NodeScopeSeen) node registration.
func WithNodeScope(s NodeScope) Option {
	return func(o *Options) { o.Nodes = s }
}

// DefaultOptions returns AttachXUnderY + Recompute + NodeScopeAll.
func DefaultOptions() Options {
	return Options{
		UnionRule: dsu.AttachXUnderY,
		Partition: dsu.StrategyRecompute,
		Nodes:     NodeScopeAll,
	}
}
