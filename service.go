package md2site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/layout"
	"github.com/alnah/go-md2site/internal/logfields"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Source and output naming.
const (
	docExt       = ".md"
	outputExt    = ".html"
	indexDocName = "index" + docExt
	indexOutName = "index" + outputExt
)

// Compile-time interface implementation checks.
var (
	_ pipeline.Transformer = (*pipeline.TextTransformer)(nil)
	_ assets.AssetLoader   = (*assets.AssetResolver)(nil)
)

// Service builds a site from a content tree. Create with New and call Build
// for each full rebuild; a Service keeps no state between builds.
type Service struct {
	cfg         Config
	logger      *slog.Logger
	now         func() time.Time
	content     billy.Filesystem
	output      billy.Filesystem
	layouts     billy.Filesystem // nil = fallback shell only
	stylesheet  billy.Filesystem
	transformer pipeline.Transformer
	engine      *layout.Engine
	skip        map[string]bool
	nestedOut   string // output dir relative to the content root, "" if outside
}

// New validates cfg and creates a Service. Filesystems not injected through
// options are opened on disk from the configured directories.
func New(cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		cfg:       cfg,
		logger:    slog.Default(),
		now:       time.Now,
		skip:      cfg.skipSet(),
		nestedOut: nestedOutputDir(cfg.ContentDir, cfg.OutputDir),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.content == nil {
		s.content = osfs.New(cfg.ContentDir)
	}
	if s.output == nil {
		s.output = osfs.New(cfg.OutputDir)
	}
	if s.layouts == nil && cfg.LayoutDir != "" {
		s.layouts = osfs.New(cfg.LayoutDir)
	}
	if s.stylesheet == nil && cfg.CSSFile != "" {
		s.stylesheet = osfs.New(filepath.Dir(cfg.CSSFile))
	}

	var tOpts []pipeline.TransformerOption
	if cfg.Highlight {
		tOpts = append(tOpts, pipeline.WithHighlighter(pipeline.NewHighlighter(cfg.HighlightStyle)))
	}
	s.transformer = pipeline.NewTextTransformer(tOpts...)

	resolver := assets.NewAssetResolver(s.layouts)
	if !resolver.HasCustomLoader() {
		s.logger.Debug("no layouts directory, pages use the fallback shell")
	}

	s.engine = layout.New(
		resolver,
		layout.Site{
			Title:         cfg.SiteTitle,
			Description:   cfg.SiteDescription,
			Author:        cfg.SiteAuthor,
			DefaultLayout: cfg.DefaultLayout,
			CSSFile:       cfg.CSSFile,
			Vars:          cfg.Vars(),
		},
		layout.WithLogger(s.logger),
		layout.WithNow(s.now),
	)

	return s, nil
}

// Config returns the configuration the Service was built with.
func (s *Service) Config() Config {
	return s.cfg
}

// Build regenerates the whole site: it prepares the output root, copies the
// stylesheet, walks the content tree, then writes the root listing when the
// content root has no index document. Any I/O failure other than a missing
// stylesheet aborts the build.
func (s *Service) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	s.logger.Info("generating site",
		slog.String("content", s.cfg.ContentDir), logfields.Output(s.cfg.OutputDir))

	if info, err := s.content.Stat("."); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrContentNotFound, s.cfg.ContentDir)
	}

	if err := s.output.MkdirAll(".", fileutil.DirPerm); err != nil {
		return nil, fmt.Errorf("%w: creating output root: %v", ErrWriteOutput, err)
	}

	s.copyStylesheet(ctx)

	b := &build{svc: s, global: &Inventory{}}
	if _, err := b.walk(ctx, "."); err != nil {
		return nil, err
	}
	s.logger.Info("content scanned", logfields.Links(b.global.Len()))

	if !fileutil.Exists(s.content, indexDocName) {
		if err := b.generateIndex(ctx, ".", b.global.Entries()); err != nil {
			return nil, err
		}
	}

	b.result.Links = b.global.Entries()
	b.result.Duration = time.Since(start)
	s.logger.Info("site generated",
		logfields.Output(s.cfg.OutputDir),
		slog.Int("pages", b.result.Pages),
		slog.Int("indexes", b.result.Indexes),
		slog.Int("assets", b.result.Assets),
		logfields.DurationMS(float64(b.result.Duration.Microseconds())/1000))

	return &b.result, nil
}

// copyStylesheet copies the configured stylesheet to the output root under
// its bare filename. A missing or unreadable source is logged, not fatal.
func (s *Service) copyStylesheet(ctx context.Context) {
	if s.cfg.CSSFile == "" || s.stylesheet == nil {
		return
	}

	name := stylesheetName(s.cfg.CSSFile)
	if err := fileutil.CopyFile(s.stylesheet, name, s.output, name); err != nil {
		level := slog.LevelError
		if errors.Is(err, os.ErrNotExist) {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "stylesheet not copied",
			logfields.Path(s.cfg.CSSFile), logfields.Error(err))
		return
	}
	s.logger.Debug("stylesheet copied", logfields.Path(s.cfg.CSSFile), logfields.Output(name))
}

// nestedOutputDir returns outputDir as a slash path relative to contentDir
// when it sits inside it, and "" otherwise. The walk skips that directory so
// a build never reads back its own output.
func nestedOutputDir(contentDir, outputDir string) string {
	content, err := filepath.Abs(contentDir)
	if err != nil {
		return ""
	}
	output, err := filepath.Abs(outputDir)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(content, output)
	if err != nil || rel == "." || rel == ".." ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}

// stylesheetName returns the bare filename of a stylesheet path.
func stylesheetName(cssFile string) string {
	return path.Base(strings.ReplaceAll(cssFile, "\\", "/"))
}

// rootTitle is the listing title for the content root: its directory name.
func (s *Service) rootTitle() string {
	name := filepath.Base(filepath.Clean(s.cfg.ContentDir))
	if name == "." || name == string(filepath.Separator) {
		if abs, err := filepath.Abs(s.cfg.ContentDir); err == nil {
			name = filepath.Base(abs)
		}
	}
	return capitalize(name)
}
