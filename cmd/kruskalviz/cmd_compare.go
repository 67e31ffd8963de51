package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kruskalviz/internal/logging"
	"github.com/katalvlaran/kruskalviz/internal/report"
	"github.com/katalvlaran/kruskalviz/kruskal"
)

func newCompareCmd(_ *app) *cobra.Command {
	var (
		in     inputFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare Kruskal and Prim on the same graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := report.ParseMode(format)
			if err != nil {
				return err
			}
			edges, err := in.loadEdges(logging.New("ingest"))
			if err != nil {
				return err
			}

			c := kruskal.Compare(edges)
			if !c.Agree {
				logging.New("compare").Warn("costs differ", "kruskal", c.KruskalCost, "prim", c.PrimCost)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Comparison(c, mode))

			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVar(&format, "format", "ascii", "report format: ascii or markdown")

	return cmd
}
