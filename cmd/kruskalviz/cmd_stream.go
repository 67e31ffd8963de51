package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kruskalviz/internal/logging"
	"github.com/katalvlaran/kruskalviz/remote"
)

func newStreamCmd(a *app) *cobra.Command {
	var (
		in  inputFlags
		pf  playFlags
		url string
	)
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Replay a run streamed from a kruskalviz server over WebSocket",
		Long: "stream sends the edge list to the server's /ws/kruskal endpoint and replays\n" +
			"the steps it receives. The server paces the stream; --speed is forwarded to it.",
		Example: "  kruskalviz stream --sample grid --url ws://localhost:8000/ws/kruskal --speed 5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				url = a.cfg.BackendURL
			}
			edges, err := in.loadEdges(logging.New("ingest"))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logging.New("remote").Info("dial", "url", url, "edges", len(edges), "speed", pf.speed)
			relay, err := remote.Dial(ctx, url, edges, pf.speed)
			if err != nil {
				return err
			}

			// The server already waits between steps; the local driver only forwards.
			pf.speed = 1

			return play(ctx, cmd, relay, pf)
		},
	}
	in.bind(cmd)
	pf.bind(cmd, time.Millisecond)
	cmd.Flags().StringVar(&url, "url", "", "WebSocket endpoint (default from KRUSKAL_BACKEND_URL)")

	return cmd
}
