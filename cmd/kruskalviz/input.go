package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kruskalviz/core"
	"github.com/katalvlaran/kruskalviz/dsu"
	"github.com/katalvlaran/kruskalviz/ingest"
	"github.com/katalvlaran/kruskalviz/kruskal"
	"github.com/katalvlaran/kruskalviz/samples"
)

var errInput = errors.New("exactly one of --file, --edges or --sample is required")

// inputFlags selects the edge source of a command.
type inputFlags struct {
	file   string
	edges  string
	sample string
}

func (in *inputFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&in.file, "file", "f", "", "edge file (.txt, .csv, .xlsx, .yaml, .json)")
	f.StringVarP(&in.edges, "edges", "e", "", `inline edges, e.g. "A B 1; B C 2"`)
	f.StringVarP(&in.sample, "sample", "s", "", "built-in sample name (see 'kruskalviz samples')")
}

// load returns the ingest report of the selected source.
func (in *inputFlags) load() (ingest.Report, error) {
	set := 0
	for _, v := range []string{in.file, in.edges, in.sample} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return ingest.Report{}, errInput
	}

	switch {
	case in.file != "":
		return ingest.LoadFile(in.file)
	case in.edges != "":
		return ingest.ParseInline(in.edges)
	default:
		edges, err := samples.Get(in.sample)
		if err != nil {
			return ingest.Report{}, fmt.Errorf("%w (available: %s)", err, strings.Join(samples.Names(), ", "))
		}
		return ingest.Collect(edges)
	}
}

// loadEdges is load plus a warning for skipped or duplicate input.
func (in *inputFlags) loadEdges(log *slog.Logger) ([]core.Edge, error) {
	rep, err := in.load()
	if err != nil {
		return nil, err
	}
	if w := rep.Warning(); w != "" {
		log.Warn(w)
	}

	return rep.Edges, nil
}

// engineFlags selects kruskal.Engine options.
type engineFlags struct {
	union     string
	partition string
	scope     string
}

func (ef *engineFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&ef.union, "union", dsu.AttachXUnderY.String(), "union rule: attach or size")
	f.StringVar(&ef.partition, "partition", dsu.StrategyRecompute.String(), "component map strategy: recompute or incremental")
	f.StringVar(&ef.scope, "scope", kruskal.NodeScopeAll.String(), "node scope: all (eager) or seen (lazy)")
}

func (ef *engineFlags) options() ([]kruskal.Option, error) {
	var opts []kruskal.Option
	switch ef.union {
	case dsu.AttachXUnderY.String():
		opts = append(opts, kruskal.WithUnionRule(dsu.AttachXUnderY))
	case dsu.UnionBySize.String():
		opts = append(opts, kruskal.WithUnionRule(dsu.UnionBySize))
	default:
		return nil, fmt.Errorf("unknown --union %q", ef.union)
	}
	switch ef.partition {
	case dsu.StrategyRecompute.String():
		opts = append(opts, kruskal.WithPartition(dsu.StrategyRecompute))
	case dsu.StrategyIncremental.String():
		opts = append(opts, kruskal.WithPartition(dsu.StrategyIncremental))
	default:
		return nil, fmt.Errorf("unknown --partition %q", ef.partition)
	}
	switch ef.scope {
	case kruskal.NodeScopeAll.String():
		opts = append(opts, kruskal.WithNodeScope(kruskal.NodeScopeAll))
	case kruskal.NodeScopeSeen.String():
		opts = append(opts, kruskal.WithNodeScope(kruskal.NodeScopeSeen))
	default:
		return nil, fmt.Errorf("unknown --scope %q", ef.scope)
	}

	return opts, nil
}
