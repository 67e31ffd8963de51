package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kruskalviz/internal/report"
	"github.com/katalvlaran/kruskalviz/kruskal"
	"github.com/katalvlaran/kruskalviz/traverse"
)

func newValidateCmd(_ *app) *cobra.Command {
	var (
		in     inputFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse and validate a graph without running it",
		Long: "validate ingests the input, reports skipped lines and duplicate edges,\n" +
			"then prints the nodes, the Kruskal edge order and connectivity.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := report.ParseMode(format)
			if err != nil {
				return err
			}
			rep, err := in.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.Validation(rep, traverse.Connected(rep.Edges), traverse.ComponentCount(rep.Edges), mode))

			ordered := kruskal.Order(rep.Edges)
			names := make([]string, len(ordered))
			for i, e := range ordered {
				names[i] = e.String()
			}
			fmt.Fprintf(out, "Order: %s\n", strings.Join(names, " "))
			if cycle := traverse.FindCycle(rep.Edges); len(cycle) > 0 {
				fmt.Fprintf(out, "Cycle: %s\n", strings.Join(cycle, " -> "))
			}

			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVar(&format, "format", "ascii", "report format: ascii or markdown")

	return cmd
}
