package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kruskalviz/core"
	"github.com/katalvlaran/kruskalviz/internal/logging"
	"github.com/katalvlaran/kruskalviz/internal/report"
	"github.com/katalvlaran/kruskalviz/kruskal"
	"github.com/katalvlaran/kruskalviz/replay"
)

// playFlags controls terminal playback.
type playFlags struct {
	speed    float64
	interval time.Duration
	format   string
	quiet    bool
}

func (pf *playFlags) bind(cmd *cobra.Command, interval time.Duration) {
	f := cmd.Flags()
	f.Float64Var(&pf.speed, "speed", replay.DefaultSpeed, "playback speed multiplier (> 0)")
	f.DurationVar(&pf.interval, "interval", interval, "delay between steps at speed 1")
	f.StringVar(&pf.format, "format", "ascii", "report format: ascii or markdown")
	f.BoolVarP(&pf.quiet, "quiet", "q", false, "print only the final summary")
}

// printer writes one line per decided step.
func printer(w io.Writer) replay.Observer {
	return replay.ObserverFuncs{
		Step: func(s kruskal.Step) {
			fmt.Fprintf(w, "[%3d] %-16s %-8s cost=%-8s components=%d\n",
				s.StepIndex, s.Edge.String(), s.Status, core.FormatWeight(s.TotalCost), s.ConnectedComponents)
		},
	}
}

// play drives src to completion and prints the report.
func play(ctx context.Context, cmd *cobra.Command, src kruskal.StepSource, pf playFlags) error {
	mode, err := report.ParseMode(pf.format)
	if err != nil {
		return err
	}
	if !(pf.speed > 0) {
		return fmt.Errorf("--speed %g: %w", pf.speed, replay.ErrBadSpeed)
	}
	if pf.interval <= 0 {
		return fmt.Errorf("--interval must be > 0, got %s", pf.interval)
	}

	log := logging.New("replay")
	out := cmd.OutOrStdout()
	opts := []replay.Option{
		replay.WithBaseInterval(pf.interval),
		replay.WithSpeed(pf.speed),
		replay.WithLogger(log),
		replay.WithObserver(replay.LogObserver{Logger: log}),
	}
	if !pf.quiet {
		opts = append(opts, replay.WithObserver(printer(out)))
	}

	d := replay.New(src, opts...)
	defer d.Stop()

	if err := d.Play(ctx); err != nil {
		return err
	}
	if err := d.Wait(ctx); err != nil {
		return err
	}
	sum, err := d.Summary()
	if err != nil {
		return err
	}

	if !pf.quiet {
		fmt.Fprintln(out, report.Steps(d.Steps(), mode))
	}
	fmt.Fprintln(out, report.Summary(sum, mode))

	return nil
}
