package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskalviz/core"
)

// TestEdgeSet_AddAndOrder verifies insertion order for edges and first-seen order for vertices.
func TestEdgeSet_AddAndOrder(t *testing.T) {
	s := core.NewEdgeSet()
	require.NoError(t, s.Add(core.NewEdge("b", "c", 2)))
	require.NoError(t, s.Add(core.NewEdge("a", "b", 1)))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, s.VertexCount())
	assert.Equal(t, []string{"B", "C", "A"}, s.Vertices())
	assert.Equal(t, []core.Edge{
		{Source: "B", Target: "C", Weight: 2},
		{Source: "A", Target: "B", Weight: 1},
	}, s.Edges())
	assert.True(t, s.HasEdge("C", "B"))
	assert.False(t, s.HasEdge("A", "C"))
}

// TestEdgeSet_RejectsDuplicatesBothOrientations ensures (A,B) blocks (B,A) regardless of weight.
func TestEdgeSet_RejectsDuplicatesBothOrientations(t *testing.T) {
	s := core.NewEdgeSet()
	require.NoError(t, s.Add(core.NewEdge("A", "B", 1)))

	err := s.Add(core.NewEdge("B", "A", 9))
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
	assert.Equal(t, 1, s.Len())
}

// TestEdgeSet_RejectsInvalid ensures validation runs before insertion.
func TestEdgeSet_RejectsInvalid(t *testing.T) {
	s := core.NewEdgeSet()
	assert.ErrorIs(t, s.Add(core.NewEdge("A", "A", 1)), core.ErrSelfLoop)
	assert.ErrorIs(t, s.Add(core.NewEdge("A", "B", 0)), core.ErrBadWeight)
	assert.Zero(t, s.Len())
	assert.Zero(t, s.VertexCount())
}

// TestEdgeSet_Copies ensures callers cannot mutate internal slices.
func TestEdgeSet_Copies(t *testing.T) {
	s := core.NewEdgeSet()
	require.NoError(t, s.Add(core.NewEdge("A", "B", 1)))

	edges := s.Edges()
	edges[0].Weight = 100
	verts := s.Vertices()
	verts[0] = "Z"

	assert.Equal(t, 1.0, s.Edges()[0].Weight)
	assert.Equal(t, "A", s.Vertices()[0])
}

// TestEdgeSet_ConcurrentAdd hammers Add from several goroutines; every distinct pair lands once.
func TestEdgeSet_ConcurrentAdd(t *testing.T) {
	s := core.NewEdgeSet()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = s.Add(core.NewEdge("HUB", fmt.Sprintf("N%d", i), float64(i+1)))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
	assert.Equal(t, 51, s.VertexCount())
}
