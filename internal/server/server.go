// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

// Package server serves the ESG dashboard over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/canopy-esg/canopy/internal/catalog"
	"github.com/canopy-esg/canopy/internal/metrics"
	"github.com/canopy-esg/canopy/internal/output"
	"github.com/canopy-esg/canopy/internal/view"
)

const defaultShutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// Addr is the dashboard listen address.
	Addr string

	// MetricsAddr serves /metrics on a separate listener when non-empty.
	MetricsAddr string

	// InitialState is the view state the dashboard starts in.
	InitialState view.State

	// Recorder receives recomputation and tab metrics. Nil creates one on a
	// private registry.
	Recorder *metrics.Recorder

	ShutdownTimeout time.Duration
}

// Server owns one view controller shared by every client. Requests are
// serialized on mu because the controller is not safe for concurrent use.
type Server struct {
	mu   sync.Mutex
	ctrl *view.Controller

	rec     *metrics.Recorder
	page    *output.HTMLFormatter
	opts    Options
	handler http.Handler
}

// New creates a server. The first score computation happens here.
//
// Color output is turned off for the process: text panels are written to
// HTTP responses, never to the terminal the server was started from.
func New(opts Options) (*Server, error) {
	color.NoColor = true
	if opts.Recorder == nil {
		rec, err := metrics.NewRecorder(nil)
		if err != nil {
			return nil, fmt.Errorf("create metrics recorder: %w", err)
		}
		opts.Recorder = rec
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}

	s := &Server{
		rec:  opts.Recorder,
		page: &output.HTMLFormatter{BasePath: "/"},
		opts: opts,
	}
	s.ctrl = view.NewController(
		view.WithInitialState(opts.InitialState),
		view.WithObserver(opts.Recorder.Observe),
	)
	s.handler = s.routes()
	return s, nil
}

// Handler returns the dashboard's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/healthz", handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/tab", s.handleSelectTab)
		r.Post("/period", s.handleSelectPeriod)
		r.Get("/scores", s.handleScores)
		r.Get("/panel", s.handlePanel)
		r.Post("/downloads/{id}", handleDownload)
	})
	return r
}

// Run listens on the configured addresses and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	var metricsLn net.Listener
	if s.opts.MetricsAddr != "" {
		metricsLn, err = lc.Listen(ctx, "tcp", s.opts.MetricsAddr)
		if err != nil {
			_ = ln.Close()
			return fmt.Errorf("listen %s: %w", s.opts.MetricsAddr, err)
		}
	}
	return s.Serve(ctx, ln, metricsLn)
}

// Serve serves the dashboard on ln and, when metricsLn is non-nil, the
// Prometheus endpoint on metricsLn. It shuts both down gracefully when ctx
// is done.
func (s *Server) Serve(ctx context.Context, ln, metricsLn net.Listener) error {
	servers := []*http.Server{{Handler: s.handler, ReadHeaderTimeout: 10 * time.Second}}
	listeners := []net.Listener{ln}
	if metricsLn != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", s.rec.Handler())
		servers = append(servers, &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second})
		listeners = append(listeners, metricsLn)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, srv := range servers {
		l := listeners[i]
		g.Go(func() error {
			slog.Info("listening", "addr", l.Addr().String())
			if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		slog.Info("server stopped")
		return errors.Join(errs...)
	})
	return g.Wait()
}

// snapshot returns the controller state under the lock.
func (s *Server) snapshot() view.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Snapshot()
}

// apply runs fn against the controller and returns the resulting snapshot.
func (s *Server) apply(fn func(c *view.Controller)) view.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.ctrl.State().Tab
	fn(s.ctrl)
	if after := s.ctrl.State().Tab; after != before {
		s.rec.TabSelected(after)
	}
	return s.ctrl.Snapshot()
}

// handlePage renders the shared selection with the ?tab= and ?period=
// values applied to a copy of it. The shared controller only moves through
// the POST endpoints.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var actions []view.Action
	if v := q.Get("tab"); v != "" {
		t, err := view.ParseTab(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		actions = append(actions, view.SelectTab{Tab: t})
	}
	if v := q.Get("period"); v != "" {
		p, err := view.ParsePeriod(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		actions = append(actions, view.SelectPeriod{Period: p})
	}

	snap := s.snapshot()
	state := snap.State
	for _, a := range actions {
		state = view.Reduce(state, a)
	}
	if state.Period != snap.State.Period {
		snap = view.NewController(view.WithInitialState(state)).Snapshot()
	}
	snap.State = state

	var buf bytes.Buffer
	if err := s.page.Format(&snap, &buf); err != nil {
		slog.Error("render page", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot())
}

type tabRequest struct {
	Tab string `json:"tab"`
}

func (s *Server) handleSelectTab(w http.ResponseWriter, r *http.Request) {
	var req tabRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, err := view.ParseTab(req.Tab)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.apply(func(c *view.Controller) { c.SelectTab(t) }))
}

type periodRequest struct {
	Period string `json:"period"`
}

func (s *Server) handleSelectPeriod(w http.ResponseWriter, r *http.Request) {
	var req periodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := view.ParsePeriod(req.Period)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.apply(func(c *view.Controller) { c.SelectPeriod(p) }))
}

func (s *Server) handleScores(w http.ResponseWriter, _ *http.Request) {
	snap := s.snapshot()
	writeJSON(w, http.StatusOK, snap.ScoresOrZero())
}

// handlePanel renders the current panel in any registered output format.
// ?sections= limits text and json output to the named sections.
func (s *Server) handlePanel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("format")
	if name == "" {
		name = "json"
	}
	f, err := output.GetFormatter(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if v := q.Get("sections"); v != "" {
		sf, ok := f.(output.SectionFilter)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("format %q does not support section filtering", name))
			return
		}
		var names []string
		for _, n := range strings.Split(v, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		f = sf.WithSections(names)
	}

	snap := s.snapshot()
	var buf bytes.Buffer
	if err := f.Format(&snap, &buf); err != nil {
		slog.Error("render panel", "format", name, "err", err)
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set("Content-Type", contentType(name))
	_, _ = w.Write(buf.Bytes())
}

func contentType(format string) string {
	switch format {
	case "json":
		return "application/json"
	case "html":
		return "text/html; charset=utf-8"
	case "markdown":
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// handleDownload acknowledges a report download. Nothing is generated.
func handleDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, ok := catalog.MustLoad().Download(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown download %q", id))
		return
	}
	slog.Info("download requested", "id", d.ID, "title", d.Title)
	w.WriteHeader(http.StatusNoContent)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
