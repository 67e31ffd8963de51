package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskalviz/remote"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("KRUSKAL_LOG_LEVEL", "error")
	t.Setenv("KRUSKAL_LOG_FORMAT", "text")
	t.Setenv("KRUSKAL_BASE_INTERVAL", "1ms")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), err
}

func TestSamplesCmd(t *testing.T) {
	out, err := execute(t, "samples")
	require.NoError(t, err)
	for _, name := range []string{"classroom", "triangle", "forest", "large", "grid", "complete"} {
		assert.Contains(t, out, name)
	}
}

func TestRunCmd_Triangle(t *testing.T) {
	out, err := execute(t, "run", "--sample", "triangle", "--interval", "1ms")
	require.NoError(t, err)
	assert.Contains(t, out, "A-B(1)")
	assert.Contains(t, out, "rejected")
	assert.Contains(t, out, "A-B(1) B-C(2)")
}

func TestRunCmd_QuietUsesConfigInterval(t *testing.T) {
	out, err := execute(t, "run", "--edges", "a b 2; b c 2; c a 1", "--quiet", "--union", "size", "--partition", "incremental")
	require.NoError(t, err)
	assert.NotContains(t, out, "[  0]")
	assert.Contains(t, out, "C-A(1) A-B(2)")
}

func TestRunCmd_BadFlags(t *testing.T) {
	_, err := execute(t, "run", "--sample", "triangle", "--union", "rank")
	assert.ErrorContains(t, err, "--union")

	_, err = execute(t, "run", "--sample", "triangle", "--speed", "0")
	assert.Error(t, err)

	_, err = execute(t, "run")
	assert.ErrorIs(t, err, errInput)

	_, err = execute(t, "run", "--sample", "nope")
	assert.ErrorContains(t, err, "available:")
}

func TestValidateCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte("A,B,3\nB-C-1\nC|A|2\nbad line\nA B 9\n"), 0o600))

	out, err := execute(t, "validate", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Order: B-C(1) C-A(2) A-B(3)")
	assert.Contains(t, out, "Cycle:")
	assert.Contains(t, out, "line 4")
}

func TestValidateCmd_Forest(t *testing.T) {
	out, err := execute(t, "validate", "--sample", "forest", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| Connected")
	assert.NotContains(t, out, "Cycle:")
}

func TestCompareCmd(t *testing.T) {
	out, err := execute(t, "compare", "--sample", "classroom")
	require.NoError(t, err)
	assert.Contains(t, out, "Kruskal")
	assert.Contains(t, out, "agree: true")
}

func TestStreamCmd(t *testing.T) {
	srv, err := remote.NewServer(remote.WithBaseInterval(time.Millisecond))
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/kruskal"

	out, err := execute(t, "stream", "--sample", "classroom", "--url", url, "--speed", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "B-C(1) D-E(2) E-F(3) A-B(4) A-D(5)")
}

func TestStreamCmd_DialFailure(t *testing.T) {
	_, err := execute(t, "stream", "--sample", "triangle", "--url", "ws://127.0.0.1:1/ws/kruskal")
	assert.ErrorIs(t, err, remote.ErrConnection)
}
