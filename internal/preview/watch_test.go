package preview

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

// syncBuffer is a bytes.Buffer safe for a logger writing from another goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// ---------------------------------------------------------------------------
// TestShouldIgnoreEvent - Editor and OS noise
// ---------------------------------------------------------------------------

func TestShouldIgnoreEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"content/post.md", false},
		{"layouts/default.html", false},
		{"content/.hidden.md", true},
		{"content/.DS_Store", true},
		{"content/post.md~", true},
		{"content/.post.md.swp", true},
		{"content/post.swx", true},
		{"content/#post.md#", true},
		{"content/Thumbs.db", true},
		{"content/#notes.md", false},
	}

	for _, tt := range tests {
		if got := shouldIgnoreEvent(tt.name); got != tt.want {
			t.Errorf("shouldIgnoreEvent(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWatcher_Handle - Output directory filtering
// ---------------------------------------------------------------------------

func TestWatcher_Handle(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	out := filepath.Join(root, "public")
	w, err := newWatcher(nil, out, discardLogger())
	if err != nil {
		t.Fatalf("newWatcher() error = %v", err)
	}
	defer func() { _ = w.close() }()

	var triggers int
	trigger := func() { triggers++ }

	w.handle(fsnotify.Event{Name: filepath.Join(out, "index.html"), Op: fsnotify.Write}, trigger)
	w.handle(fsnotify.Event{Name: filepath.Join(root, ".swap"), Op: fsnotify.Write}, trigger)
	if triggers != 0 {
		t.Errorf("output and hidden events triggered %d rebuilds", triggers)
	}

	w.handle(fsnotify.Event{Name: filepath.Join(root, "publication.md"), Op: fsnotify.Write}, trigger)
	if triggers != 1 {
		t.Errorf("source event triggered %d rebuilds, want 1", triggers)
	}
}

// ---------------------------------------------------------------------------
// TestDebouncer - Bursts collapse into one request
// ---------------------------------------------------------------------------

func TestDebouncer(t *testing.T) {
	t.Parallel()

	req, trigger := newDebouncer(30 * time.Millisecond)
	for range 10 {
		trigger()
	}

	select {
	case <-req:
	case <-time.After(2 * time.Second):
		t.Fatal("no request after the quiet period")
	}

	select {
	case <-req:
		t.Error("burst produced more than one request")
	case <-time.After(150 * time.Millisecond):
	}
}

// ---------------------------------------------------------------------------
// TestRebuildWorker - Failed rebuilds are logged, not fatal
// ---------------------------------------------------------------------------

func TestRebuildWorker(t *testing.T) {
	t.Parallel()

	logs := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))

	var calls atomic.Int32
	build := func(context.Context) error {
		if calls.Add(1) == 1 {
			return errors.New("broken layout")
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	req := make(chan struct{}, 1)
	done := startRebuildWorker(ctx, build, logger, req)

	req <- struct{}{}
	if !waitFor(func() bool { return calls.Load() == 1 }) {
		t.Fatal("first rebuild did not run")
	}
	req <- struct{}{}
	if !waitFor(func() bool { return calls.Load() == 2 }) {
		t.Fatal("worker stopped after a failed rebuild")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not exit on cancel")
	}

	out := logs.String()
	if !strings.Contains(out, "rebuild failed") || !strings.Contains(out, "broken layout") {
		t.Errorf("failure not logged:\n%s", out)
	}
	if !strings.Contains(out, "rebuild complete") {
		t.Errorf("success not logged:\n%s", out)
	}
}
