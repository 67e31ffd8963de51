package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskalviz/dsu"
)

// TestAdd_LazySingletons verifies Add creates self-parent singletons once.
func TestAdd_LazySingletons(t *testing.T) {
	d := dsu.New()
	assert.True(t, d.Add("A"))
	assert.False(t, d.Add("A"))
	assert.True(t, d.Add("B"))

	p, ok := d.Parent("A")
	require.True(t, ok)
	assert.Equal(t, "A", p)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 2, d.Sets())
	assert.Equal(t, []string{"A", "B"}, d.Nodes())
}

// TestFind_UnknownNode returns the token itself and does not register it.
func TestFind_UnknownNode(t *testing.T) {
	d := dsu.New()
	assert.Equal(t, "Z", d.Find("Z"))
	assert.False(t, d.Has("Z"))
	assert.Zero(t, d.Size("Z"))
}

// TestUnion_AttachXUnderY checks the default linking rule: root(x) goes under root(y).
func TestUnion_AttachXUnderY(t *testing.T) {
	d := dsu.New()
	child, root, merged := d.Union("A", "B")
	require.True(t, merged)
	assert.Equal(t, "A", child)
	assert.Equal(t, "B", root)

	p, _ := d.Parent("A")
	assert.Equal(t, "B", p)

	// Same set: no mutation.
	child, root, merged = d.Union("B", "A")
	assert.False(t, merged)
	assert.Empty(t, child)
	assert.Equal(t, "B", root)
	assert.Equal(t, 1, d.Sets())
}

// TestFind_FullPathCompression builds the chain A→B→C→D and checks that one
// Find(A) repoints every node on the path to D (not just every other node).
func TestFind_FullPathCompression(t *testing.T) {
	d := dsu.New()
	d.Union("A", "B")
	d.Union("B", "C")
	d.Union("C", "D")

	pa, _ := d.Parent("A")
	require.Equal(t, "B", pa, "chain must be uncompressed before Find")

	assert.Equal(t, "D", d.Find("A"))
	for _, n := range []string{"A", "B", "C"} {
		p, _ := d.Parent(n)
		assert.Equal(t, "D", p, "parent of %s", n)
	}
	assert.Equal(t, 4, d.Size("A"))
}

// TestUnion_BySize links the smaller tree under the larger one.
func TestUnion_BySize(t *testing.T) {
	d := dsu.New(dsu.WithUnionRule(dsu.UnionBySize))
	assert.Equal(t, dsu.UnionBySize, d.Rule())

	d.Union("A", "B") // equal sizes: A under B
	d.Union("C", "C") // self: no-op besides Add

	child, root, merged := d.Union("B", "C") // {A,B} size 2 vs {C} size 1
	require.True(t, merged)
	assert.Equal(t, "C", child)
	assert.Equal(t, "B", root)
	assert.True(t, d.Connected("A", "C"))
	assert.Equal(t, 3, d.Size("C"))
}

// TestWithUnionRule_UnknownFallsBack ensures unknown rules behave as AttachXUnderY.
func TestWithUnionRule_UnknownFallsBack(t *testing.T) {
	d := dsu.New(dsu.WithUnionRule(dsu.UnionRule(42)))
	assert.Equal(t, dsu.AttachXUnderY, d.Rule())
	assert.Equal(t, "attach", d.Rule().String())
}
