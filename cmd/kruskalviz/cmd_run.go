package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kruskalviz/internal/logging"
	"github.com/katalvlaran/kruskalviz/kruskal"
	"github.com/katalvlaran/kruskalviz/replay"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		in inputFlags
		ef engineFlags
		pf playFlags
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a Kruskal run locally in the terminal",
		Example: "  kruskalviz run --sample classroom --speed 4\n" +
			"  kruskalviz run --edges \"A B 1; B C 2; A C 3\" --interval 200ms",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("interval") {
				pf.interval = a.cfg.BaseInterval
			}
			opts, err := ef.options()
			if err != nil {
				return err
			}
			edges, err := in.loadEdges(logging.New("ingest"))
			if err != nil {
				return err
			}

			return play(cmd.Context(), cmd, kruskal.NewLocalSource(edges, opts...), pf)
		},
	}
	in.bind(cmd)
	ef.bind(cmd)
	pf.bind(cmd, replay.DefaultBaseInterval)

	return cmd
}
