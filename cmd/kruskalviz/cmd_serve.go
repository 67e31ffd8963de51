package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kruskalviz/internal/logging"
	"github.com/katalvlaran/kruskalviz/remote"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		ef   engineFlags
		port string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST and WebSocket backend",
		Long: "serve exposes GET /, POST /api/kruskal, POST /api/validate-graph\n" +
			"and the step stream at GET /ws/kruskal.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port == "" {
				port = a.cfg.Port
			}
			engine, err := ef.options()
			if err != nil {
				return err
			}

			log := logging.New("server")
			srv, err := remote.NewServer(
				remote.WithBaseInterval(a.cfg.BaseInterval),
				remote.WithCacheSize(a.cfg.CacheSize),
				remote.WithAllowedOrigins(a.cfg.AllowedOrigins...),
				remote.WithLogger(log),
				remote.WithEngineOptions(engine...),
			)
			if err != nil {
				return err
			}

			return serve(cmd.Context(), port, srv.Handler(), log)
		},
	}
	ef.bind(cmd)
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen address (default from PORT)")

	return cmd
}

// serve runs handler on addr until ctx is cancelled, then shuts down gracefully.
func serve(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", addr, "version", remote.Version)
		if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return hs.Shutdown(sctx)
	})

	return g.Wait()
}
