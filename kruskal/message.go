package kruskal

import (
	"fmt"

	"github.com/katalvlaran/kruskalviz/core"
)

// Explain renders the one-line explanation shown next to a step.
func Explain(s Step) string {
	e := s.Edge
	w := core.FormatWeight(e.Weight)
	cost := core.FormatWeight(s.TotalCost)

	switch {
	case s.Status == Accepted:
		return fmt.Sprintf("accept %s-%s (weight %s): %s and %s were in different components, no cycle | total cost %s",
			e.Source, e.Target, w, e.Source, e.Target, cost)
	case s.Reason == ReasonSelfLoop:
		return fmt.Sprintf("reject %s-%s (weight %s): self-loop on %s | total cost %s",
			e.Source, e.Target, w, e.Source, cost)
	default:
		return fmt.Sprintf("reject %s-%s (weight %s): %s and %s are already connected, adding it would close a cycle | total cost %s",
			e.Source, e.Target, w, e.Source, e.Target, cost)
	}
}
