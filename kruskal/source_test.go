package kruskal_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskalviz/kruskal"
)

// TestLocalSource_MatchesRun the pull-based source yields the eager sequence.
func TestLocalSource_MatchesRun(t *testing.T) {
	edges := buildRandomEdges(11, 10, 15)
	want, wantSum := kruskal.Run(edges)

	src := kruskal.NewLocalSource(edges)
	_, err := src.Summary()
	assert.ErrorIs(t, err, kruskal.ErrNotComplete)

	got, gotSum, err := kruskal.Drain(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, wantSum, gotSum)

	// Exhausted source keeps returning io.EOF.
	_, err = src.Next(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

// TestLocalSource_Cancelled honours ctx before producing a step.
func TestLocalSource_Cancelled(t *testing.T) {
	src := kruskal.NewLocalSource(buildTriangle())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, src.Engine().Position(), "a cancelled Next must not advance")
}

// TestLocalSource_Closed rejects Next after Close.
func TestLocalSource_Closed(t *testing.T) {
	src := kruskal.NewLocalSource(buildTriangle())
	require.NoError(t, src.Close())
	require.NoError(t, src.Close())

	_, err := src.Next(context.Background())
	assert.ErrorIs(t, err, kruskal.ErrClosed)
}

// TestStatus_Text covers the wire names and unknown values.
func TestStatus_Text(t *testing.T) {
	b, err := kruskal.Accepted.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "selected", string(b))

	var s kruskal.Status
	require.NoError(t, s.UnmarshalText([]byte("rejected")))
	assert.Equal(t, kruskal.Rejected, s)
	assert.ErrorIs(t, s.UnmarshalText([]byte("examining")), kruskal.ErrUnknownStatus)

	_, err = kruskal.Status(9).MarshalText()
	assert.ErrorIs(t, err, kruskal.ErrUnknownStatus)

	var r kruskal.Reason
	assert.ErrorIs(t, r.UnmarshalText([]byte("bogus")), kruskal.ErrUnknownReason)
	require.NoError(t, r.UnmarshalText([]byte("self_loop")))
	assert.Equal(t, kruskal.ReasonSelfLoop, r)
}
