package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kruskalviz/core"
)

// TestNewEdge_Normalizes verifies trimming and upper-casing of both endpoints.
func TestNewEdge_Normalizes(t *testing.T) {
	e := core.NewEdge("  a ", "bc", 2.5)
	assert.Equal(t, core.Edge{Source: "A", Target: "BC", Weight: 2.5}, e)
}

// TestEdge_KeyIsUnordered ensures (A,B) and (B,A) share one PairKey.
func TestEdge_KeyIsUnordered(t *testing.T) {
	ab := core.Edge{Source: "A", Target: "B", Weight: 1}
	ba := core.Edge{Source: "B", Target: "A", Weight: 7}
	assert.Equal(t, ab.Key(), ba.Key())
	assert.Equal(t, core.PairKey{Lo: "A", Hi: "B"}, ba.Key())
}

// TestValidate covers each sentinel returned by Validate.
func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		edge core.Edge
		want error
	}{
		{"ok", core.Edge{Source: "A", Target: "B", Weight: 1}, nil},
		{"empty source", core.Edge{Source: "", Target: "B", Weight: 1}, core.ErrEmptyNodeID},
		{"empty target", core.Edge{Source: "A", Target: "", Weight: 1}, core.ErrEmptyNodeID},
		{"self loop", core.Edge{Source: "A", Target: "A", Weight: 1}, core.ErrSelfLoop},
		{"zero weight", core.Edge{Source: "A", Target: "B", Weight: 0}, core.ErrBadWeight},
		{"negative weight", core.Edge{Source: "A", Target: "B", Weight: -3}, core.ErrBadWeight},
		{"nan weight", core.Edge{Source: "A", Target: "B", Weight: math.NaN()}, core.ErrBadWeight},
		{"inf weight", core.Edge{Source: "A", Target: "B", Weight: math.Inf(1)}, core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := core.Validate(tc.edge)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestEdge_String checks the compact rendering used by logs and messages.
func TestEdge_String(t *testing.T) {
	assert.Equal(t, "A-B(5)", core.Edge{Source: "A", Target: "B", Weight: 5}.String())
	assert.Equal(t, "A-B(2.5)", core.Edge{Source: "A", Target: "B", Weight: 2.5}.String())
}

// TestVertices_FirstSeenOrder checks that endpoints are listed once, in order of appearance.
func TestVertices_FirstSeenOrder(t *testing.T) {
	edges := []core.Edge{
		{Source: "C", Target: "A", Weight: 1},
		{Source: "A", Target: "B", Weight: 2},
		{Source: "B", Target: "C", Weight: 3},
	}
	assert.Equal(t, []string{"C", "A", "B"}, core.Vertices(edges))
	assert.Empty(t, core.Vertices(nil))
}
