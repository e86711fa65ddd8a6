// Package server exposes path searches over HTTP.
//
//	POST /v1/paths  {"grid": ["..#", ...], "start": [r, c], "target": [r, c]}
//	GET  /healthz
//	GET  /metrics   Prometheus exposition
//
// An unreachable target is a normal 200 response with "found": false;
// only malformed requests are rejected with 400.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 4 << 20

// PathRequest is the body of POST /v1/paths.
type PathRequest struct {
	Grid   []string `json:"grid"`
	Start  [2]int   `json:"start"`
	Target [2]int   `json:"target"`
}

// PathResponse is the reply to POST /v1/paths.
type PathResponse struct {
	Found    bool     `json:"found"`
	Steps    int      `json:"steps"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server wires handlers, logging and metrics.
type Server struct {
	logger   *slog.Logger
	metrics  *Metrics
	gatherer prometheus.Gatherer
}

// New builds a Server with its own Prometheus registry.
func New(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	reg := prometheus.NewRegistry()
	return &Server{
		logger:   logger.With(slog.String("component", "server")),
		metrics:  NewMetrics(reg),
		gatherer: reg,
	}
}

// Handler returns the chi router serving all endpoints.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Post("/v1/paths", s.handlePath)
	return r
}

// ListenAndServe serves Handler on addr until the server fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("listening", slog.String("addr", addr))
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.badRequest(w, "decode body: "+err.Error())
		return
	}
	g, err := grid.Parse(req.Grid)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}
	pf, err := astar.New(g)
	if err != nil {
		s.badRequest(w, err.Error())
		return
	}

	start := grid.Cell{Row: req.Start[0], Col: req.Start[1]}
	target := grid.Cell{Row: req.Target[0], Col: req.Target[1]}
	res := pf.Search(start, target)

	resp := PathResponse{Found: res.Found, Steps: res.Steps(), Expanded: res.Expanded}
	for _, c := range res.Path {
		resp.Path = append(resp.Path, [2]int{c.Row, c.Col})
	}
	s.metrics.Expanded.Observe(float64(res.Expanded))
	if res.Found {
		s.metrics.Searches.WithLabelValues("found").Inc()
		s.metrics.PathSteps.Observe(float64(res.Steps()))
	} else {
		s.metrics.Searches.WithLabelValues("not_found").Inc()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) badRequest(w http.ResponseWriter, msg string) {
	s.metrics.Searches.WithLabelValues("bad_request").Inc()
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// logRequests emits one debug line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		began := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("elapsed", time.Since(began)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
