// kruskalviz computes and replays Kruskal minimum-spanning-tree runs step by step.
//
// Usage:
//
//	kruskalviz run      --sample classroom --speed 2
//	kruskalviz run      --file graph.xlsx --union size
//	kruskalviz stream   --edges "A B 1; B C 2" --url ws://localhost:8000/ws/kruskal
//	kruskalviz serve    --port :8000
//	kruskalviz validate --file graph.csv
//	kruskalviz compare  --sample large
//	kruskalviz samples
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
