package ingest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/kruskalviz/core"
	"github.com/katalvlaran/kruskalviz/ingest"
)

// TestParseText_ReportsSkippedAndDuplicates bulk paste keeps valid lines.
func TestParseText_ReportsSkippedAndDuplicates(t *testing.T) {
	in := strings.Join([]string{
		"A B 4",
		"",
		"garbage",
		"b a 9", // duplicate of A-B, reversed
		"B C 2",
		"C C 1", // self-loop
	}, "\n")

	rep, err := ingest.ParseText(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge("A", "B", 4), core.NewEdge("B", "C", 2)}, rep.Edges)
	require.Len(t, rep.Duplicates, 1)
	assert.Equal(t, core.NewEdge("B", "A", 9), rep.Duplicates[0])

	require.Len(t, rep.Skipped, 2)
	assert.Equal(t, 3, rep.Skipped[0].Line)
	assert.ErrorIs(t, rep.Skipped[0].Err, ingest.ErrFormat)
	assert.Equal(t, 6, rep.Skipped[1].Line)
	assert.ErrorIs(t, rep.Skipped[1].Err, core.ErrSelfLoop)
	assert.Equal(t, "imported 2 edges, skipped 2 lines, dropped 1 duplicates", rep.Warning())
}

// TestParseText_NoEdges nothing valid is an error but the report survives.
func TestParseText_NoEdges(t *testing.T) {
	rep, err := ingest.ParseText(strings.NewReader("nope\n\n"))
	assert.ErrorIs(t, err, ingest.ErrNoEdges)
	assert.Len(t, rep.Skipped, 1)
}

// TestParseCSV header skipped, extra columns ignored, blank rows skipped.
func TestParseCSV(t *testing.T) {
	in := "Node 1,Node 2,Weight,Note\n" +
		"a,b,3,first\n" +
		",,\n" +
		"b,c,x\n" +
		"c,d,1\n" +
		"d,e\n"
	rep, err := ingest.ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge("A", "B", 3), core.NewEdge("C", "D", 1)}, rep.Edges)
	require.Len(t, rep.Skipped, 2)
	assert.Equal(t, 4, rep.Skipped[0].Line)
	assert.ErrorIs(t, rep.Skipped[0].Err, ingest.ErrWeight)
	assert.ErrorIs(t, rep.Skipped[1].Err, ingest.ErrFormat)
}

// TestParseXLSX reads the first sheet of an in-memory workbook.
func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Source", "Target", "Weight"},
		{"a", "b", 4},
		{},
		{"b", "c", 2.5},
		{"a", "b", 1},
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rep, err := ingest.ParseXLSX(buf)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge("A", "B", 4), core.NewEdge("B", "C", 2.5)}, rep.Edges)
	assert.Len(t, rep.Duplicates, 1)
}

// TestParseXLSX_Garbage non-zip input fails to open.
func TestParseXLSX_Garbage(t *testing.T) {
	_, err := ingest.ParseXLSX(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}

// TestParseYAML accepts both the mapping and bare-list shapes.
func TestParseYAML(t *testing.T) {
	doc := `
name: triangle
edges:
  - {source: a, target: b, weight: 1}
  - source: b
    target: c
    weight: 2
`
	rep, err := ingest.ParseYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge("A", "B", 1), core.NewEdge("B", "C", 2)}, rep.Edges)

	list := "- {source: x, target: y, weight: 7}\n"
	rep, err = ingest.ParseYAML(strings.NewReader(list))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge("X", "Y", 7)}, rep.Edges)

	_, err = ingest.ParseYAML(strings.NewReader("just a scalar"))
	assert.ErrorIs(t, err, ingest.ErrUnsupportedFormat)
	_, err = ingest.ParseYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, ingest.ErrNoEdges)
}

// TestParseJSON accepts both shapes.
func TestParseJSON(t *testing.T) {
	rep, err := ingest.ParseJSON(strings.NewReader(`{"edges":[{"source":"a","target":"b","weight":3}]}`))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge("A", "B", 3)}, rep.Edges)

	rep, err = ingest.ParseJSON(strings.NewReader("\t[{\"source\":\"p\",\"target\":\"q\",\"weight\":1}]"))
	require.NoError(t, err)
	assert.Len(t, rep.Edges, 1)

	_, err = ingest.ParseJSON(strings.NewReader("{"))
	assert.Error(t, err)
}

// TestCollect normalizes and dedups structured edges.
func TestCollect(t *testing.T) {
	rep, err := ingest.Collect([]core.Edge{{Source: " a", Target: "b", Weight: 1}, {Source: "B", Target: "A", Weight: 2}})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge("A", "B", 1)}, rep.Edges)
	assert.Len(t, rep.Duplicates, 1)

	_, err = ingest.Collect(nil)
	assert.ErrorIs(t, err, ingest.ErrNoEdges)
}

// TestLoadFile dispatches on extension.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"g.txt":  "A B 1\nB C 2\n",
		"g.csv":  "s,t,w\nA,B,1\nB,C,2\n",
		"g.yaml": "edges:\n  - {source: A, target: B, weight: 1}\n  - {source: B, target: C, weight: 2}\n",
		"g.json": `[{"source":"A","target":"B","weight":1},{"source":"B","target":"C","weight":2}]`,
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		rep, err := ingest.LoadFile(path)
		require.NoError(t, err, name)
		assert.Len(t, rep.Edges, 2, name)
	}

	_, err := ingest.LoadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Equal(t, ingest.FormatXLSX, ingest.FormatFor("X.XLSX"))
	assert.Equal(t, ingest.FormatText, ingest.FormatFor("edges"))
	_, err = ingest.Parse(strings.NewReader(""), ingest.Format("toml"))
	assert.ErrorIs(t, err, ingest.ErrUnsupportedFormat)
}
