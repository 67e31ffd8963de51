package kruskal

import (
	"github.com/katalvlaran/kruskalviz/core"
	"github.com/katalvlaran/kruskalviz/dsu"
)

// Engine is the per-run Kruskal state machine.
//
// It owns its Union-Find and partitioner exclusively; it is not safe for
// concurrent use and needs no locking because exactly one driver pulls
// steps from it.
type Engine struct {
	opts    Options
	ordered []core.Edge
	nodes   []string // input endpoints in first-seen order

	set  *dsu.DSU
	part dsu.Partitioner

	pos        int         // next StepIndex
	cost       float64     // running cost
	mst        []core.Edge // accepted edges in order
	rejected   int         // rejected count
	components int         // components after the last step
}

// NewEngine orders edges and returns an Engine positioned at step 0.
// The input slice is not modified.
func NewEngine(edges []core.Edge, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{
		opts:    o,
		ordered: Order(edges),
		nodes:   core.Vertices(edges),
	}
	e.Reset()

	return e
}

// Reset discards all Union-Find state and rewinds to step 0.
// The ordered edge list is kept, so a replay yields identical steps.
func (e *Engine) Reset() {
	e.set = dsu.New(dsu.WithUnionRule(e.opts.UnionRule))
	e.part = dsu.NewPartitioner(e.opts.Partition)
	e.pos = 0
	e.cost = 0
	e.mst = nil
	e.rejected = 0
	e.components = 0

	// Eager scope: every node starts as its own component before step 0.
	if e.opts.Nodes == NodeScopeAll {
		for _, id := range e.nodes {
			e.ensure(id)
		}
		e.components = e.set.Sets()
	}
}

// Ordered returns a copy of the ordered edge list; index i is StepIndex i.
func (e *Engine) Ordered() []core.Edge {
	out := make([]core.Edge, len(e.ordered))
	copy(out, e.ordered)

	return out
}

// Len returns the total number of steps (= number of input edges).
func (e *Engine) Len() int { return len(e.ordered) }

// Position returns the StepIndex the next call to Next will produce.
func (e *Engine) Position() int { return e.pos }

// Done reports whether every edge has been examined.
func (e *Engine) Done() bool { return e.pos >= len(e.ordered) }

// Next examines ordered[Position()] and returns the resulting Step.
// It returns false once all edges are processed.
//
// Steps:
//  1. Ensure both endpoints exist in the Union-Find (singletons if new).
//  2. rootS = Find(source), rootT = Find(target).
//  3. rootS == rootT → Rejected, no mutation (self-loops land here too).
//  4. Otherwise Accepted: Union(rootS, rootT), cost += weight, selected += 1.
//  5. Materialize the component map over every node seen so far.
//  6. Emit the Step and advance.
func (e *Engine) Next() (Step, bool) {
	if e.Done() {
		return Step{}, false
	}
	edge := e.ordered[e.pos]

	// 1. Registration (no-op under NodeScopeAll); the partitioner learns new nodes in order.
	e.ensure(edge.Source)
	e.ensure(edge.Target)

	// 2. Resolve roots.
	rootS := e.set.Find(edge.Source)
	rootT := e.set.Find(edge.Target)

	step := Step{StepIndex: e.pos, Edge: edge}
	if rootS == rootT {
		// 3. Same component: closing a cycle.
		step.Status = Rejected
		step.Reason = ReasonCycle
		if edge.IsSelfLoop() {
			step.Reason = ReasonSelfLoop
		}
		e.rejected++
	} else {
		// 4. Different components: merge and keep the edge.
		child, root, _ := e.set.Union(rootS, rootT)
		e.part.Merged(child, root)
		e.cost += edge.Weight
		e.mst = append(e.mst, edge)
		step.Status = Accepted
		step.Reason = ReasonNoCycle
	}

	// 5. Fresh partition after every step.
	p := e.part.Partition(e.set)
	e.components = p.Count

	step.TotalCost = e.cost
	step.EdgesSelected = len(e.mst)
	step.ConnectedComponents = p.Count
	step.ComponentMap = p.Assignment
	step.Message = Explain(step)

	// 6. Advance.
	e.pos++

	return step, true
}

// ensure adds id to the Union-Find and notifies the partitioner when new.
func (e *Engine) ensure(id string) {
	if e.set.Add(id) {
		e.part.Added(id)
	}
}

// Summary returns the run summary for the steps processed so far.
// It is terminal only once Done() is true.
func (e *Engine) Summary() Summary {
	mst := make([]core.Edge, len(e.mst))
	copy(mst, e.mst)

	return Summary{
		TotalCost:           e.cost,
		MSTEdges:            mst,
		EdgesRejectedCount:  e.rejected,
		ConnectedComponents: e.components,
		NodeCount:           e.set.Len(),
		EdgesExamined:       e.pos,
	}
}

// Run computes every step of a fresh Engine eagerly.
func Run(edges []core.Edge, opts ...Option) ([]Step, Summary) {
	e := NewEngine(edges, opts...)
	steps := make([]Step, 0, e.Len())
	for {
		s, ok := e.Next()
		if !ok {
			break
		}
		steps = append(steps, s)
	}

	return steps, e.Summary()
}
