package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kruskalviz/ingest"
	"github.com/katalvlaran/kruskalviz/internal/report"
	"github.com/katalvlaran/kruskalviz/kruskal"
	"github.com/katalvlaran/kruskalviz/samples"
)

func TestSteps(t *testing.T) {
	steps, _ := kruskal.Run(samples.Classroom())
	out := report.Steps(steps, report.ASCII)
	assert.Contains(t, out, "B-C(1)")
	assert.Contains(t, out, "selected")
	assert.Contains(t, out, "cycle")
	assert.Equal(t, 1, strings.Count(out, "D-F(9)"))
}

func TestSummary_Markdown(t *testing.T) {
	_, sum := kruskal.Run(samples.Classroom())
	out := report.Summary(sum, report.Markdown)
	assert.True(t, strings.HasPrefix(out, "|"), out)
	assert.Contains(t, out, "Total cost")
	assert.Contains(t, out, "15")
	assert.Contains(t, out, "B-C(1) D-E(2) E-F(3) A-B(4) A-D(5)")
}

func TestComparison(t *testing.T) {
	out := report.Comparison(kruskal.Compare(samples.Classroom()), report.ASCII)
	assert.Contains(t, out, "Kruskal")
	assert.Contains(t, out, "Prim")
	assert.NotContains(t, out, "KRUSKAL")
	assert.Contains(t, out, "agree: true")
}

func TestValidation(t *testing.T) {
	rep, err := ingest.ParseInline("A B 1; nope; B A 2")
	require.NoError(t, err)
	out := report.Validation(rep, true, 1, report.ASCII)
	assert.Contains(t, out, "line 2")
	assert.Contains(t, out, "Duplicates")
}

func TestSamples(t *testing.T) {
	out := report.Samples(samples.All(), report.ASCII)
	for _, name := range samples.Names() {
		assert.Contains(t, out, name)
	}
}

func TestParseMode(t *testing.T) {
	m, err := report.ParseMode("MD")
	require.NoError(t, err)
	assert.Equal(t, report.Markdown, m)
	_, err = report.ParseMode("html")
	assert.Error(t, err)
}
