package md2site

import (
	"log/slog"
	"time"

	"github.com/go-git/go-billy/v5"
)

// LinkEntry points at one generated page from a listing.
type LinkEntry struct {
	Path        string // output-relative, forward slashes
	Title       string
	Description string // optional
	Date        string // optional, raw metadata value
}

// Inventory is an append-only list of link entries owned by one build. The
// whole-tree inventory is shared by reference through the walk; directory
// inventories are local to one directory level.
type Inventory struct {
	entries []LinkEntry
}

// Add appends e.
func (inv *Inventory) Add(e LinkEntry) {
	inv.entries = append(inv.entries, e)
}

// Len returns the number of entries.
func (inv *Inventory) Len() int {
	return len(inv.entries)
}

// Entries returns a copy of the entries in insertion order.
func (inv *Inventory) Entries() []LinkEntry {
	out := make([]LinkEntry, len(inv.entries))
	copy(out, inv.entries)
	return out
}

// Result summarizes one build.
type Result struct {
	Pages    int         // documents rendered
	Assets   int         // files copied verbatim
	Skipped  int         // files ignored by extension
	Indexes  int         // listing pages generated
	Links    []LinkEntry // whole-tree inventory
	Duration time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNow sets the clock used for {{ year }}.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithContentFS reads documents from fs instead of Config.ContentDir.
func WithContentFS(fs billy.Filesystem) Option {
	return func(s *Service) {
		s.content = fs
	}
}

// WithOutputFS writes the site to fs instead of Config.OutputDir.
func WithOutputFS(fs billy.Filesystem) Option {
	return func(s *Service) {
		s.output = fs
	}
}

// WithLayoutFS loads layouts from fs instead of Config.LayoutDir.
func WithLayoutFS(fs billy.Filesystem) Option {
	return func(s *Service) {
		s.layouts = fs
	}
}

// WithStylesheetFS reads the stylesheet, by its bare filename, from the root
// of fs instead of from the directory of Config.CSSFile.
func WithStylesheetFS(fs billy.Filesystem) Option {
	return func(s *Service) {
		s.stylesheet = fs
	}
}
