package dsu

import "sort"

// Partition is a materialized view of the DSU: every known node mapped to a
// small colour index, plus the number of distinct components.
type Partition struct {
	// Assignment maps node ID → colour index in [0, Count).
	Assignment map[string]int

	// Count is the number of components.
	Count int
}

// Partitioner produces a Partition after each engine transition.
//
// Added is called after a node is registered, Merged after Union linked
// child under root. Partition must return a fresh map each call.
type Partitioner interface {
	Added(node string)
	Merged(child, root string)
	Partition(d *DSU) Partition
}

// Strategy names a Partitioner implementation.
type Strategy int

const (
	// StrategyRecompute selects Recompute.
	StrategyRecompute Strategy = iota

	// StrategyIncremental selects Incremental.
	StrategyIncremental
)

// String returns the strategy name used in logs and flags.
func (s Strategy) String() string {
	switch s {
	case StrategyRecompute:
		return "recompute"
	case StrategyIncremental:
		return "incremental"
	default:
		return "unknown"
	}
}

// NewPartitioner returns a fresh Partitioner for s (Recompute for unknown values).
func NewPartitioner(s Strategy) Partitioner {
	if s == StrategyIncremental {
		return NewIncremental()
	}

	return Recompute{}
}

// Recompute derives the partition from scratch with Find over all nodes.
type Recompute struct{}

// Added is a no-op.
func (Recompute) Added(string) {}

// Merged is a no-op.
func (Recompute) Merged(string, string) {}

// Partition walks nodes in first-seen order and colours roots by first discovery.
// Complexity: O(V · α) amortized.
func (Recompute) Partition(d *DSU) Partition {
	nodes := d.order
	colour := make(map[string]int, len(nodes)) // root → colour
	out := make(map[string]int, len(nodes))
	for _, n := range nodes {
		root := d.Find(n)
		c, ok := colour[root]
		if !ok {
			c = len(colour)
			colour[root] = c
		}
		out[n] = c
	}

	return Partition{Assignment: out, Count: len(colour)}
}

// Incremental keeps root → members and root → earliest first-seen position,
// updated on each merge, so Partition never touches the parent forest.
type Incremental struct {
	seq     int                 // next first-seen position
	pos     map[string]int      // node → first-seen position
	members map[string][]string // root → members
	first   map[string]int      // root → min first-seen position of its members
}

// NewIncremental returns an empty Incremental partitioner.
func NewIncremental() *Incremental {
	return &Incremental{
		pos:     make(map[string]int),
		members: make(map[string][]string),
		first:   make(map[string]int),
	}
}

// Added registers node as its own component.
func (p *Incremental) Added(node string) {
	if _, ok := p.pos[node]; ok {
		return
	}
	p.pos[node] = p.seq
	p.members[node] = []string{node}
	p.first[node] = p.seq
	p.seq++
}

// Merged moves the members of child into root.
// Complexity: O(|members(child)|).
func (p *Incremental) Merged(child, root string) {
	moved, ok := p.members[child]
	if !ok || child == root {
		return
	}
	p.members[root] = append(p.members[root], moved...)
	if p.first[child] < p.first[root] {
		p.first[root] = p.first[child]
	}
	delete(p.members, child)
	delete(p.first, child)
}

// Partition orders components by earliest member and colours them 0..C-1.
// The DSU argument is unused.
func (p *Incremental) Partition(_ *DSU) Partition {
	roots := make([]string, 0, len(p.members))
	for r := range p.members {
		roots = append(roots, r)
	}
	sort.Slice(roots, func(i, j int) bool { return p.first[roots[i]] < p.first[roots[j]] })

	out := make(map[string]int, len(p.pos))
	for c, r := range roots {
		for _, n := range p.members[r] {
			out[n] = c
		}
	}

	return Partition{Assignment: out, Count: len(roots)}
}

// Members returns a copy of each component's members keyed by root.
func (p *Incremental) Members() map[string][]string {
	out := make(map[string][]string, len(p.members))
	for r, m := range p.members {
		cp := make([]string, len(m))
		copy(cp, m)
		out[r] = cp
	}

	return out
}
