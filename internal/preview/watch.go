package preview

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-md2site/internal/logfields"
)

// watcher wraps a recursive fsnotify watch over the source roots.
type watcher struct {
	fs     *fsnotify.Watcher
	output string // absolute; events below it are ignored
	logger *slog.Logger
}

func newWatcher(roots []string, outputDir string, logger *slog.Logger) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("preview: fsnotify: %w", err)
	}

	w := &watcher{fs: fw, logger: logger}
	if abs, err := filepath.Abs(outputDir); err == nil {
		w.output = abs
	}

	for _, root := range roots {
		if root == "" {
			continue
		}
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			logger.Info("not watching missing directory", logfields.Dir(root))
			continue
		}
		w.addDirsRecursive(root)
		logger.Debug("watching", logfields.Dir(root))
	}
	return w, nil
}

func (w *watcher) close() error {
	return w.fs.Close()
}

// run forwards relevant events to trigger until ctx is cancelled.
func (w *watcher) run(ctx context.Context, trigger func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handle(ev, trigger)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", logfields.Error(err))
		}
	}
}

func (w *watcher) handle(ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) || w.inOutput(ev.Name) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			w.addDirsRecursive(ev.Name)
		}
	}
	w.logger.Debug("change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

// inOutput reports whether name lies inside the output directory, which may
// be nested in a watched root.
func (w *watcher) inOutput(name string) bool {
	if w.output == "" {
		return false
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == w.output || strings.HasPrefix(abs, w.output+string(filepath.Separator))
}

func (w *watcher) addDirsRecursive(root string) {
	_ = filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if w.inOutput(p) {
			return filepath.SkipDir
		}
		if err := w.fs.Add(p); err != nil {
			w.logger.Warn("watch add failed", logfields.Dir(p), logfields.Error(err))
		}
		return nil
	})
}

// shouldIgnoreEvent reports events from hidden, editor swap and OS metadata
// files.
func shouldIgnoreEvent(name string) bool {
	base := filepath.Base(name)

	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	return base == "Thumbs.db"
}

// newDebouncer returns a one-slot request channel and a trigger that sends
// to it once no further trigger arrived for d.
func newDebouncer(d time.Duration) (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	req := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, func() {
			select {
			case req <- struct{}{}:
			default:
			}
		})
	}
	return req, trigger
}

// startRebuildWorker runs build for each request until ctx is cancelled. A
// request arriving during a build is held in the channel's single slot, so
// bursts collapse into one follow-up build. The returned channel is closed
// when the worker exits.
func startRebuildWorker(ctx context.Context, build BuildFunc, logger *slog.Logger, req <-chan struct{}) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-req:
				logger.Info("change detected, rebuilding site")
				start := time.Now()
				if err := build(ctx); err != nil {
					if ctx.Err() != nil {
						return
					}
					logger.Error("rebuild failed, serving previous output", logfields.Error(err))
					continue
				}
				logger.Info("rebuild complete",
					logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
			}
		}
	}()
	return done
}
