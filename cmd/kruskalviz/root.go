package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kruskalviz/config"
	"github.com/katalvlaran/kruskalviz/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries state shared by all subcommands.
type app struct {
	cfg *config.Config

	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "kruskalviz",
		Short: "Step-by-step Kruskal minimum spanning tree visualizer backend",
		Long: "kruskalviz orders a weighted undirected edge list, walks it with Union-Find\n" +
			"and replays every accept/reject decision with running cost and components.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default from KRUSKAL_LOG_LEVEL)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json (default from KRUSKAL_LOG_FORMAT)")

	root.AddCommand(
		newRunCmd(a),
		newStreamCmd(a),
		newServeCmd(a),
		newValidateCmd(a),
		newCompareCmd(a),
		newSamplesCmd(a),
	)
	root.Version = version

	return root
}

// setup loads config and initializes logging; flags override the environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	logging.Init(level, cfg.LogFormat, cmd.ErrOrStderr())
	a.cfg = cfg

	return nil
}
