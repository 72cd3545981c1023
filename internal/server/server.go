package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"marketboard/internal/pipeline"
	"marketboard/internal/ratelimit"
	"marketboard/internal/render"
)

// Loader runs one fetch/render cycle onto a board
type Loader interface {
	Load(ctx context.Context, board *render.Board) pipeline.Outcome
}

// Server serves the market board. Every page load triggers one pipeline run.
type Server struct {
	loader  Loader
	limiter *ratelimit.Limiter
	host    string
}

// New creates a new Server. sourceURL identifies the upstream bucket in limiter.
func New(loader Loader, limiter *ratelimit.Limiter, sourceURL string) *Server {
	host := sourceURL
	if u, err := url.Parse(sourceURL); err == nil && u.Host != "" {
		host = u.Host
	}

	return &Server{
		loader:  loader,
		limiter: limiter,
		host:    host,
	}
}

// Handler returns the routed HTTP handler with request logging
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleBoard).Methods(http.MethodGet)
	router.HandleFunc("/api/prices", s.handlePrices).Methods(http.MethodGet)
	router.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)

	return handlers.RecoveryHandler()(handlers.CombinedLoggingHandler(os.Stderr, router))
}

// ListenAndServe serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("serving market board", "addr", addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// load runs the pipeline for one request, or reports false if the upstream budget is spent
func (s *Server) load(w http.ResponseWriter, r *http.Request) (*render.Page, bool) {
	if !s.limiter.Allow(s.host) {
		slog.Debug("upstream refresh budget exhausted", "host", s.host)
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return nil, false
	}

	page := render.NewPage()
	s.loader.Load(r.Context(), page.Board())
	return page, true
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	page, ok := s.load(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.WriteHTML(&buf, page); err != nil {
		slog.Error("failed to write board page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	page, ok := s.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(page.Sections()); err != nil {
		slog.Error("failed to encode prices", "error", err)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
