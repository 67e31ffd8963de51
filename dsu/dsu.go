package dsu

// UnionRule selects how two roots are linked by Union.
type UnionRule int

const (
	// AttachXUnderY links root(x) under root(y).
	AttachXUnderY UnionRule = iota

	// UnionBySize links the smaller tree under the larger one.
	UnionBySize
)

// String returns the rule name used in logs and flags.
func (r UnionRule) String() string {
	switch r {
	case AttachXUnderY:
		return "attach"
	case UnionBySize:
		return "size"
	default:
		return "unknown"
	}
}

// Option configures a DSU at construction.
type Option func(*DSU)

// WithUnionRule selects the linking rule. Unknown values fall back to AttachXUnderY.
func WithUnionRule(r UnionRule) Option {
	return func(d *DSU) {
		if r == UnionBySize {
			d.rule = UnionBySize
			return
		}
		d.rule = AttachXUnderY
	}
}

// DSU is a disjoint-set forest keyed by node ID.
// It is not safe for concurrent use; one engine owns one DSU.
type DSU struct {
	parent map[string]string // node → parent (root points to itself)
	size   map[string]int    // root → tree size
	order  []string          // first-seen order of nodes
	sets   int               // number of disjoint sets
	rule   UnionRule
}

// New returns an empty DSU.
func New(opts ...Option) *DSU {
	d := &DSU{
		parent: make(map[string]string),
		size:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Rule returns the configured UnionRule.
func (d *DSU) Rule() UnionRule { return d.rule }

// Add registers x as a singleton if it is new and reports whether it was created.
// Complexity: O(1).
func (d *DSU) Add(x string) bool {
	if _, ok := d.parent[x]; ok {
		return false
	}
	d.parent[x] = x
	d.size[x] = 1
	d.order = append(d.order, x)
	d.sets++

	return true
}

// Has reports whether x has been added.
func (d *DSU) Has(x string) bool {
	_, ok := d.parent[x]

	return ok
}

// Find returns the root of x and repoints the whole path to that root.
// An unknown x is its own root and is not registered.
//
// Steps:
//  1. Walk parents until a self-parent root is found.
//  2. Walk the path again, pointing each node directly at the root.
func (d *DSU) Find(x string) string {
	if _, ok := d.parent[x]; !ok {
		return x
	}

	// 1. Locate the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// 2. Full path compression.
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y. Unknown nodes are added first.
// It returns the root that was attached (child), the surviving root, and
// whether a merge happened; when x and y already share a root, child is ""
// and merged is false.
func (d *DSU) Union(x, y string) (child, root string, merged bool) {
	d.Add(x)
	d.Add(y)

	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return "", rx, false
	}

	// Default: root(x) goes under root(y).
	child, root = rx, ry
	if d.rule == UnionBySize && d.size[rx] > d.size[ry] {
		child, root = ry, rx
	}

	d.parent[child] = root
	d.size[root] += d.size[child]
	delete(d.size, child)
	d.sets--

	return child, root, true
}

// Connected reports whether x and y share a root.
func (d *DSU) Connected(x, y string) bool {
	return d.Find(x) == d.Find(y)
}

// Parent returns the stored parent of x without compressing.
func (d *DSU) Parent(x string) (string, bool) {
	p, ok := d.parent[x]

	return p, ok
}

// Nodes returns all nodes in first-seen order.
func (d *DSU) Nodes() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)

	return out
}

// Len returns the number of nodes.
func (d *DSU) Len() int { return len(d.order) }

// Sets returns the number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Size returns the size of the set containing x (0 for unknown x).
func (d *DSU) Size(x string) int {
	if !d.Has(x) {
		return 0
	}

	return d.size[d.Find(x)]
}
