package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskalviz/core"
	"github.com/katalvlaran/kruskalviz/ingest"
)

// TestParseLine_Separators every supported separator yields the same edge.
func TestParseLine_Separators(t *testing.T) {
	want := core.Edge{Source: "A", Target: "B", Weight: 5}
	for _, in := range []string{"A B 5", "a,b,5", " a , b , 5 ", "A\tB\t5", "A-B-5", "A|B|5", "a   b    5", "A B 5 extra"} {
		got, err := ingest.ParseLine(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	frac, err := ingest.ParseLine("x y 2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, frac.Weight)
}

// TestParseLine_Errors maps each malformed line to its sentinel.
func TestParseLine_Errors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ingest.ErrFormat},
		{"A B", ingest.ErrFormat},
		{"A B x", ingest.ErrWeight},
		{"A,B,0", core.ErrBadWeight},
		{"A,B,-3", core.ErrBadWeight},
		{"A,B,NaN", core.ErrBadWeight},
		{"a A 1", core.ErrSelfLoop},
		{",B,1", core.ErrEmptyNodeID},
	}
	for _, tc := range cases {
		_, err := ingest.ParseLine(tc.in)
		assert.ErrorIs(t, err, tc.want, "%q", tc.in)
	}
}

// TestParseInline semicolons and newlines both split edges.
func TestParseInline(t *testing.T) {
	rep, err := ingest.ParseInline("A B 1; B C 2\nC A 3;;")
	require.NoError(t, err)
	assert.Len(t, rep.Edges, 3)
	assert.Empty(t, rep.Skipped)
	assert.Empty(t, rep.Warning())
}
