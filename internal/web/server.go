// Package web provides the live quadtree viewer: a small HTTP server that
// renders a tree file to SVG and pushes a reload to connected browsers
// whenever the file changes on disk.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/quadtile/quadtile/core/quadtree"
	"github.com/quadtile/quadtile/core/render"
	"github.com/quadtile/quadtile/internal/logging"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Config holds viewer configuration.
type Config struct {
	Addr string // listen address, e.g. ":8080"
	Path string // quadtree file to serve and watch
	Size int    // side length of the rendered square in pixels
}

// Server serves one quadtree file. The tree and its rendered SVG are
// replaced atomically on reload; requests only ever see a complete pair.
type Server struct {
	cfg       Config
	hub       *Hub
	templates *template.Template
	backend   render.Backend

	mu   sync.RWMutex
	tree *quadtree.Node
	svg  []byte
}

// New creates a viewer for the given configuration. The initial load must
// succeed: construction is all-or-nothing, so a viewer never starts with a
// broken tree. Later reload failures keep the last good tree on screen.
func New(cfg Config) (*Server, error) {
	if cfg.Size <= 0 {
		cfg.Size = 400
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		hub:       NewHub(),
		templates: templates,
		backend:   render.NewSVG(render.DefaultOptions()),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads, parses, and renders the configured file, replacing the
// current tree on success.
func (s *Server) load() error {
	tree, err := quadtree.FromFile(s.cfg.Path)
	if err != nil {
		return err
	}
	svg, err := s.backend.Render(tree, quadtree.Rect{Size: s.cfg.Size})
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", s.cfg.Path, err)
	}

	s.mu.Lock()
	s.tree = tree
	s.svg = svg
	s.mu.Unlock()
	return nil
}

// reload is the watcher callback: re-parse the file, broadcast a reload
// on success, keep serving the last good tree on failure.
func (s *Server) reload() {
	if err := s.load(); err != nil {
		logging.Error("reload failed, keeping last good tree",
			"path", s.cfg.Path, "error", err)
		return
	}

	s.mu.RLock()
	depth := s.tree.Depth()
	s.mu.RUnlock()
	logging.Info("tree reloaded", "path", s.cfg.Path, "depth", depth)
	s.hub.Broadcast(Event{Type: "reload"})
}

// Start runs the viewer until ctx is cancelled. It blocks.
func (s *Server) Start(ctx context.Context) error {
	go s.hub.Run(ctx)

	if err := s.watch(ctx); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/svg", s.handleSVG)
	mux.HandleFunc("/ws", s.handleWebSocket)

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           logging.CombinedMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error("server shutdown failed", "error", err)
		}
	}()

	logging.ServerStartup("viewer", s.cfg.Addr,
		"path", s.cfg.Path, "size", s.cfg.Size)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleIndex serves the viewer page with the current SVG inlined.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.mu.RLock()
	svg := s.svg
	depth := s.tree.Depth()
	stats := s.tree.Stats()
	s.mu.RUnlock()

	data := struct {
		Path  string
		Size  int
		Depth int
		Stats quadtree.Stats
		SVG   template.HTML
	}{
		Path:  s.cfg.Path,
		Size:  s.cfg.Size,
		Depth: depth,
		Stats: stats,
		SVG:   template.HTML(svg),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		logging.ErrorContext(r.Context(), "template render failed", "error", err)
	}
}

// handleSVG serves the current rendering on its own.
func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	svg := s.svg
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(svg); err != nil {
		logging.ErrorContext(r.Context(), "svg write failed", "error", err)
	}
}
