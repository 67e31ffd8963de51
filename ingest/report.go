package ingest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kruskalviz/core"
)

// Issue describes one input line or row that was not imported.
type Issue struct {
	Line int    // 1-based line or row number
	Text string // raw input
	Err  error
}

// Report is the outcome of one ingest pass.
type Report struct {
	Edges      []core.Edge // valid edges in input order
	Skipped    []Issue     // malformed or invalid input
	Duplicates []core.Edge // repeated unordered pairs (first occurrence kept)
}

// Warning summarizes skipped and duplicate input, or "" when there was none.
func (r Report) Warning() string {
	if len(r.Skipped) == 0 && len(r.Duplicates) == 0 {
		return ""
	}

	return fmt.Sprintf("imported %d edges, skipped %d lines, dropped %d duplicates",
		len(r.Edges), len(r.Skipped), len(r.Duplicates))
}

// collector accumulates edges through a core.EdgeSet.
type collector struct {
	set    *core.EdgeSet
	report Report
}

func newCollector() *collector {
	return &collector{set: core.NewEdgeSet()}
}

// add records e, or the reason it was dropped.
func (c *collector) add(line int, text string, e core.Edge) {
	err := c.set.Add(e)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrDuplicateEdge):
		c.report.Duplicates = append(c.report.Duplicates, e)
	default:
		c.skip(line, text, err)
	}
}

func (c *collector) skip(line int, text string, err error) {
	c.report.Skipped = append(c.report.Skipped, Issue{Line: line, Text: text, Err: err})
}

// result returns the report, or ErrNoEdges alongside it when nothing was imported.
func (c *collector) result(method string) (Report, error) {
	c.report.Edges = c.set.Edges()
	if len(c.report.Edges) == 0 {
		return c.report, fmt.Errorf("%s: %w", method, ErrNoEdges)
	}

	return c.report, nil
}

// Collect validates and deduplicates already-structured edges, e.g. a
// request body. Endpoints are normalized first.
func Collect(edges []core.Edge) (Report, error) {
	c := newCollector()
	for i, e := range edges {
		e = core.NewEdge(e.Source, e.Target, e.Weight)
		c.add(i+1, e.String(), e)
	}

	return c.result("Collect")
}
