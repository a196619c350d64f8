package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/logfields"
)

// Defaults.
const (
	DefaultDebounce        = 300 * time.Millisecond
	DefaultShutdownTimeout = 5 * time.Second
	readHeaderTimeout      = 10 * time.Second
)

// ErrNoOutputDir is returned when no directory to serve is configured.
var ErrNoOutputDir = errors.New("preview: output directory is required")

// BuildFunc regenerates the site.
type BuildFunc func(ctx context.Context) error

// Config configures a preview Server.
type Config struct {
	OutputDir string   // directory served at /
	Port      int      // 0 picks a free port
	Watch     []string // source roots to watch; missing roots are skipped
}

// Server serves OutputDir and rebuilds on source changes.
type Server struct {
	cfg      Config
	build    BuildFunc
	logger   *slog.Logger
	debounce time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDebounce sets the quiet period between the last change and a rebuild.
func WithDebounce(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// New creates a Server. build is called for every debounced change batch.
func New(cfg Config, build BuildFunc, opts ...Option) (*Server, error) {
	if cfg.OutputDir == "" {
		return nil, ErrNoOutputDir
	}
	s := &Server{
		cfg:      cfg,
		build:    build,
		logger:   slog.Default(),
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run listens on the configured port and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", ":"+strconv.Itoa(s.cfg.Port))
	if err != nil {
		return fmt.Errorf("preview: listening on port %d: %w", s.cfg.Port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln and watches the source roots until ctx is cancelled,
// then shuts the HTTP server down gracefully. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	watcher, err := newWatcher(s.cfg.Watch, s.cfg.OutputDir, s.logger)
	if err != nil {
		_ = ln.Close()
		return err
	}
	defer func() { _ = watcher.close() }()

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// A failed HTTP server also ends the watch loop, so Serve never keeps
	// watching with nothing to serve.
	watchCtx, stopWatching := context.WithCancel(ctx)
	defer stopWatching()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			stopWatching()
		}
		close(serveErr)
	}()

	s.logger.Info("preview server listening",
		logfields.Port(ln.Addr().(*net.TCPAddr).Port),
		slog.String("url", "http://"+ln.Addr().String()))

	rebuildReq, trigger := newDebouncer(s.debounce)
	worker := startRebuildWorker(watchCtx, s.build, s.logger, rebuildReq)

	loopErr := watcher.run(watchCtx, trigger)

	s.logger.Info("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("preview server shutdown", logfields.Error(err))
	}
	<-worker

	if err, ok := <-serveErr; ok && err != nil {
		return fmt.Errorf("preview: serving: %w", err)
	}
	return loopErr
}

// contentTypes maps extensions to the Content-Type sent for them. Anything
// else is served as application/octet-stream.
var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".pdf":  "application/pdf",
	".txt":  "text/plain; charset=utf-8",
}

// ContentType returns the Content-Type for a request path.
func ContentType(p string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(p))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Handler returns the HTTP handler serving OutputDir.
func (s *Server) Handler() http.Handler {
	files := http.FileServer(http.Dir(s.cfg.OutputDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")

		s.logger.Debug("preview request", logfields.Path(r.URL.Path))

		p := r.URL.Path
		if strings.HasSuffix(p, "/") {
			// No directory listings: a directory is served only through its index.
			p += "index.html"
			if _, err := os.Stat(filepath.Join(s.cfg.OutputDir, filepath.FromSlash(path.Clean("/"+p)))); err != nil {
				http.NotFound(w, r)
				return
			}
		}
		if path.Ext(p) != "" {
			h.Set("Content-Type", ContentType(p))
		}

		files.ServeHTTP(w, r)
	})
}
