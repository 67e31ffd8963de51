// Package report renders runs, comparisons and validations as terminal tables.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/kruskalviz/core"
	"github.com/katalvlaran/kruskalviz/ingest"
	"github.com/katalvlaran/kruskalviz/kruskal"
	"github.com/katalvlaran/kruskalviz/samples"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode maps "ascii" and "markdown" (or "md") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ascii":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return ASCII, fmt.Errorf("ParseMode: unknown mode %q", s)
	}
}

func newWriter() table.Writer {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	w := table.NewWriter()
	w.SetStyle(style)

	return w
}

func render(w table.Writer, m Mode) string {
	if m == Markdown {
		return w.RenderMarkdown()
	}

	return w.Render()
}

func rightAligned(cols ...int) []table.ColumnConfig {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight}
	}

	return cfgs
}

// Steps renders one row per step.
func Steps(steps []kruskal.Step, m Mode) string {
	w := newWriter()
	w.AppendHeader(table.Row{"#", "Edge", "Status", "Reason", "Cost", "Selected", "Components"})
	for _, s := range steps {
		w.AppendRow(table.Row{
			s.StepIndex,
			s.Edge.String(),
			s.Status.String(),
			string(s.Reason),
			core.FormatWeight(s.TotalCost),
			s.EdgesSelected,
			s.ConnectedComponents,
		})
	}
	w.SetColumnConfigs(rightAligned(1, 5, 6, 7))

	return render(w, m)
}

// Summary renders the final statistics and the accepted edges.
func Summary(sum kruskal.Summary, m Mode) string {
	st := sum.Statistics()
	w := newWriter()
	w.AppendHeader(table.Row{"Metric", "Value"})
	w.AppendRows([]table.Row{
		{"Nodes", st.TotalNodes},
		{"Edges examined", st.EdgesExamined},
		{"MST edges", st.MSTEdgesCount},
		{"Edges rejected", st.EdgesRejected},
		{"Total cost", core.FormatWeight(st.MSTTotalCost)},
		{"Components", st.ConnectedComponents},
		{"Spanning tree", st.IsComplete},
	})
	edges := make([]string, len(sum.MSTEdges))
	for i, e := range sum.MSTEdges {
		edges[i] = e.String()
	}
	w.AppendFooter(table.Row{"MST", strings.Join(edges, " ")})

	return render(w, m)
}

// Comparison renders the Kruskal vs Prim report.
func Comparison(c kruskal.Comparison, m Mode) string {
	w := newWriter()
	w.AppendHeader(table.Row{"", "Kruskal", "Prim"})
	w.AppendRows([]table.Row{
		{"Total cost", core.FormatWeight(c.KruskalCost), core.FormatWeight(c.PrimCost)},
		{"Tree edges", c.KruskalEdges, c.PrimEdges},
		{"Est. operations", fmt.Sprintf("%.0f", c.Complexity.KruskalTotal), fmt.Sprintf("%.0f", c.Complexity.PrimHeap)},
	})
	w.AppendFooter(table.Row{
		fmt.Sprintf("V=%d E=%d density=%.1f%%", c.Nodes, c.Edges, c.Density),
		"best: " + c.BestChoice,
		fmt.Sprintf("agree: %v", c.Agree),
	})

	return render(w, m)
}

// Validation renders the ingest report and graph facts.
func Validation(rep ingest.Report, connected bool, components int, m Mode) string {
	w := newWriter()
	w.AppendHeader(table.Row{"Check", "Result"})
	w.AppendRows([]table.Row{
		{"Nodes", strings.Join(core.Vertices(rep.Edges), " ")},
		{"Edges", len(rep.Edges)},
		{"Connected", connected},
		{"Components", components},
		{"Skipped lines", len(rep.Skipped)},
		{"Duplicates", len(rep.Duplicates)},
	})
	for _, is := range rep.Skipped {
		w.AppendRow(table.Row{fmt.Sprintf("line %d", is.Line), fmt.Sprintf("%q: %v", is.Text, is.Err)})
	}

	return render(w, m)
}

// Samples renders the catalog with node and edge counts.
func Samples(all []samples.Sample, m Mode) string {
	w := newWriter()
	w.AppendHeader(table.Row{"Name", "Nodes", "Edges", "Description"})
	sorted := make([]samples.Sample, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	for _, s := range sorted {
		edges, err := s.Build()
		if err != nil {
			w.AppendRow(table.Row{s.Name, "-", "-", err.Error()})
			continue
		}
		w.AppendRow(table.Row{s.Name, len(core.Vertices(edges)), len(edges), s.Description})
	}
	w.SetColumnConfigs(rightAligned(2, 3))

	return render(w, m)
}
