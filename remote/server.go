package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/kruskalviz/core"
	"github.com/katalvlaran/kruskalviz/internal/logging"
	"github.com/katalvlaran/kruskalviz/kruskal"
	"github.com/katalvlaran/kruskalviz/traverse"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

const (
	wsWriteWait   = 10 * time.Second
	wsRequestWait = 30 * time.Second
	wsReadLimit   = 1 << 20 // request body cap
	maxBodyBytes  = 1 << 20

	msgNoEdges = "No edges provided"

	maxStreamDelay = time.Minute // upper bound of base/speed
)

// Defaults for ServerOptions.
const (
	DefaultBaseInterval = time.Second
	DefaultCacheSize    = 128
	DefaultSpeed        = 1.0
)

// ServerOptions configures a Server.
type ServerOptions struct {
	BaseInterval   time.Duration    // delay between steps at speed 1
	CacheSize      int              // REST run cache entries
	AllowedOrigins []string         // empty: any origin
	Logger         *slog.Logger     // defaults to a discard logger
	Engine         []kruskal.Option // forwarded to every kruskal.Engine
}

// ServerOption mutates ServerOptions.
type ServerOption func(*ServerOptions)

// WithBaseInterval sets the stream delay at speed 1.
func WithBaseInterval(d time.Duration) ServerOption {
	return func(o *ServerOptions) { o.BaseInterval = d }
}

// WithCacheSize sets the number of cached REST runs.
func WithCacheSize(n int) ServerOption {
	return func(o *ServerOptions) { o.CacheSize = n }
}

// WithAllowedOrigins restricts CORS and WebSocket origins.
func WithAllowedOrigins(origins ...string) ServerOption {
	return func(o *ServerOptions) { o.AllowedOrigins = origins }
}

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) ServerOption {
	return func(o *ServerOptions) { o.Logger = l }
}

// WithEngineOptions forwards options to every engine the server builds.
func WithEngineOptions(opts ...kruskal.Option) ServerOption {
	return func(o *ServerOptions) { o.Engine = append(o.Engine, opts...) }
}

// Server serves the REST and WebSocket endpoints.
type Server struct {
	opts     ServerOptions
	logger   *slog.Logger
	cache    *lru.Cache[string, RunResponse]
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// NewServer builds a Server; it fails only on an invalid cache size.
func NewServer(opts ...ServerOption) (*Server, error) {
	o := ServerOptions{
		BaseInterval: DefaultBaseInterval,
		CacheSize:    DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.BaseInterval <= 0 {
		o.BaseInterval = DefaultBaseInterval
	}

	cache, err := lru.New[string, RunResponse](o.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("NewServer: cache size %d: %w", o.CacheSize, err)
	}

	s := &Server{
		opts:   o,
		logger: o.Logger,
		cache:  cache,
		mux:    http.NewServeMux(),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	s.mux.HandleFunc("GET /{$}", s.handleHealth)
	s.mux.HandleFunc("POST /api/kruskal", s.handleRun)
	s.mux.HandleFunc("POST /api/validate-graph", s.handleValidate)
	s.mux.HandleFunc("GET /ws/kruskal", s.handleStream)

	return s, nil
}

// Handler returns the routed handler wrapped in CORS.
func (s *Server) Handler() http.Handler {
	return s.cors(s.mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Kruskal Algorithm API is running",
		Version: Version,
	})
}

// handleRun computes a full run; identical edge lists hit the cache.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	edges, err := decodeGraph(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, RunResponse{Message: err.Error()})
		return
	}

	key := cacheKey(edges)
	if resp, ok := s.cache.Get(key); ok {
		s.logger.Debug("run cache hit", "edges", len(edges))
		writeJSON(w, http.StatusOK, resp)
		return
	}

	steps, sum := kruskal.Run(edges, s.opts.Engine...)
	resp := RunResponse{
		Success:    true,
		MSTEdges:   sum.MSTEdges,
		TotalCost:  sum.TotalCost,
		Statistics: sum.Statistics(),
		Steps:      steps,
	}
	s.cache.Add(key, resp)
	s.logger.Info("run computed", "edges", len(edges), "total_cost", sum.TotalCost, "components", sum.ConnectedComponents)
	writeJSON(w, http.StatusOK, resp)
}

// handleValidate reports validity without running the algorithm.
// Invalid input still answers 200 with isValid=false.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	edges, err := decodeGraph(w, r)
	if err != nil {
		writeJSON(w, http.StatusOK, ValidateResponse{Message: err.Error(), Nodes: []string{}})
		return
	}

	writeJSON(w, http.StatusOK, ValidateResponse{
		IsValid:     true,
		Message:     "Graph is valid",
		Nodes:       core.Vertices(edges),
		EdgesCount:  len(edges),
		SortedEdges: kruskal.Order(edges),
		Connected:   traverse.Connected(edges),
		Components:  traverse.ComponentCount(edges),
	})
}

// handleStream runs one WebSocket stream.
//
// Steps:
//  1. Upgrade and read exactly one Request.
//  2. Validate; an empty or invalid edge list answers with an error envelope.
//  3. Watch the read side so a client disconnect cancels the run.
//  4. Emit one step envelope per Engine step, then wait base/speed.
//  5. Emit the complete envelope and close normally.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("ws upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// 1. Request.
	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsRequestWait))
	var req Request
	if err = conn.ReadJSON(&req); err != nil {
		s.logger.Warn("ws request unreadable", "error", err)
		s.writeError(conn, "invalid request: "+err.Error())
		return
	}
	_ = conn.SetReadDeadline(time.Time{})

	// 2. Validation.
	if len(req.Edges) == 0 {
		s.writeError(conn, msgNoEdges)
		return
	}
	edges, err := normalize(req.Edges)
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}
	speed := req.Speed
	if !(speed > 0) {
		speed = DefaultSpeed
	}
	delay := streamDelay(s.opts.BaseInterval, speed)

	// 3. Disconnect watcher; the client never sends after the request.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, rerr := conn.NextReader(); rerr != nil {
				return
			}
		}
	}()

	log := s.logger.With("remote", r.RemoteAddr)
	log.Info("stream started", "edges", len(edges), "speed", speed, "delay", delay)

	// 4. Steps.
	engine := kruskal.NewEngine(edges, s.opts.Engine...)
	timer := time.NewTimer(delay)
	defer timer.Stop()
	for step, ok := engine.Next(); ok; step, ok = engine.Next() {
		if err = s.write(conn, TypeStep, step); err != nil {
			log.Warn("stream aborted", "step", step.StepIndex, "error", err)
			return
		}
		timer.Reset(delay)
		select {
		case <-ctx.Done():
			log.Info("stream cancelled", "step", step.StepIndex, "error", ctx.Err())
			return
		case <-timer.C:
		}
	}

	// 5. Completion.
	sum := engine.Summary()
	if err = s.write(conn, TypeComplete, Complete{Summary: sum, Statistics: sum.Statistics()}); err != nil {
		log.Warn("complete not delivered", "error", err)
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "complete"),
		time.Now().Add(wsWriteWait))
	log.Info("stream complete", "steps", sum.EdgesExamined, "total_cost", sum.TotalCost)
}

// streamDelay returns base/speed capped at maxStreamDelay; speed must be > 0.
func streamDelay(base time.Duration, speed float64) time.Duration {
	d := float64(base) / speed
	if d > float64(maxStreamDelay) {
		return maxStreamDelay
	}

	return time.Duration(d)
}

func (s *Server) write(conn *websocket.Conn, typ string, payload any) error {
	env, err := envelope(typ, payload)
	if err != nil {
		return err
	}
	if err = conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
		return err
	}

	return conn.WriteJSON(env)
}

func (s *Server) writeError(conn *websocket.Conn, msg string) {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteJSON(Envelope{Type: TypeError, Message: msg}); err != nil {
		s.logger.Warn("error envelope not delivered", "error", err)
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(wsWriteWait))
}

// checkOrigin allows same-host requests, requests without Origin, or listed origins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(s.opts.AllowedOrigins) == 0 {
		return true
	}

	return s.allowed(origin)
}

func (s *Server) allowed(origin string) bool {
	for _, o := range s.opts.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}

	return false
}

// cors answers preflight requests and sets the allow headers.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			switch {
			case len(s.opts.AllowedOrigins) == 0:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case s.allowed(origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
		}
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// decodeGraph reads and validates a GraphRequest body.
func decodeGraph(w http.ResponseWriter, r *http.Request) ([]core.Edge, error) {
	var req GraphRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("decodeGraph: %w", err)
	}
	if len(req.Edges) == 0 {
		return nil, errors.New(msgNoEdges)
	}

	return normalize(req.Edges)
}

// normalize upper-cases endpoints and validates every edge. Duplicates are
// kept; the engine processes them independently.
func normalize(in []core.Edge) ([]core.Edge, error) {
	out := make([]core.Edge, len(in))
	for i, e := range in {
		e = core.NewEdge(e.Source, e.Target, e.Weight)
		if err := core.Validate(e); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		out[i] = e
	}

	return out, nil
}

// cacheKey is the canonical text of a normalized edge list. Endpoints are
// quoted so IDs containing separators cannot collide.
func cacheKey(edges []core.Edge) string {
	var b strings.Builder
	for _, e := range edges {
		fmt.Fprintf(&b, "%q %q %s;", e.Source, e.Target, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}

	return b.String()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
