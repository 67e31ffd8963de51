package replay

import (
	"log/slog"

	"github.com/katalvlaran/kruskalviz/kruskal"
)

// Observer receives playback events.
type Observer interface {
	// OnExamine fires before the step's decision is shown (edge highlight).
	OnExamine(step kruskal.Step)
	// OnStep fires with the decided step.
	OnStep(step kruskal.Step)
	// OnComplete fires once after the last step.
	OnComplete(sum kruskal.Summary)
	// OnError fires once on a terminal source error.
	OnError(err error)
}

// ObserverFuncs adapts plain functions to Observer; nil fields are skipped.
type ObserverFuncs struct {
	Examine  func(kruskal.Step)
	Step     func(kruskal.Step)
	Complete func(kruskal.Summary)
	Error    func(error)
}

func (f ObserverFuncs) OnExamine(s kruskal.Step) {
	if f.Examine != nil {
		f.Examine(s)
	}
}

func (f ObserverFuncs) OnStep(s kruskal.Step) {
	if f.Step != nil {
		f.Step(s)
	}
}

func (f ObserverFuncs) OnComplete(sum kruskal.Summary) {
	if f.Complete != nil {
		f.Complete(sum)
	}
}

func (f ObserverFuncs) OnError(err error) {
	if f.Error != nil {
		f.Error(err)
	}
}

// LogObserver writes one structured record per event.
type LogObserver struct {
	Logger *slog.Logger
}

func (o LogObserver) OnExamine(s kruskal.Step) {
	o.Logger.Debug("examine", "step", s.StepIndex, "edge", s.Edge.String())
}

func (o LogObserver) OnStep(s kruskal.Step) {
	o.Logger.Info("step",
		"step", s.StepIndex,
		"edge", s.Edge.String(),
		"status", s.Status.String(),
		"reason", string(s.Reason),
		"total_cost", s.TotalCost,
		"edges_selected", s.EdgesSelected,
		"components", s.ConnectedComponents,
	)
}

func (o LogObserver) OnComplete(sum kruskal.Summary) {
	o.Logger.Info("complete",
		"total_cost", sum.TotalCost,
		"mst_edges", len(sum.MSTEdges),
		"rejected", sum.EdgesRejectedCount,
		"components", sum.ConnectedComponents,
		"spanning_tree", sum.Complete(),
	)
}

func (o LogObserver) OnError(err error) {
	o.Logger.Error("replay failed", "error", err)
}
