package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kruskalviz/internal/report"
	"github.com/katalvlaran/kruskalviz/samples"
)

func newSamplesCmd(_ *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := report.ParseMode(format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Samples(samples.All(), mode))

			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "ascii", "report format: ascii or markdown")

	return cmd
}
