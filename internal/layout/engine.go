package layout

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/frontmatter"
	"github.com/alnah/go-md2site/internal/logfields"
)

// DefaultLayout is used when neither the page nor the site names a layout.
const DefaultLayout = "default"

// defaultSiteTitle fills {{ siteTitle }} when the site has none.
const defaultSiteTitle = "My Site"

// Site holds the site-wide values a layout can reference.
type Site struct {
	Title         string
	Description   string
	Author        string
	DefaultLayout string
	CSSFile       string            // stylesheet source path; only its filename is linked
	Vars          map[string]string // config variables by camelCase key
}

// Page is one render request.
type Page struct {
	Body   string               // HTML fragment for {{ content }}
	Title  string               // used when metadata has no title
	Layout string               // explicit layout, below metadata in priority
	Dir    string               // directory of the page relative to the content root
	Meta   frontmatter.Metadata // may be nil
}

// Engine renders pages through layouts.
type Engine struct {
	loader assets.AssetLoader
	site   Site
	logger *slog.Logger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithNow sets the clock used for {{ year }}.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Engine loading layouts from loader.
func New(loader assets.AssetLoader, site Site, opts ...Option) *Engine {
	e := &Engine{
		loader: loader,
		site:   site,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ResolveName picks the layout for p: metadata, then the explicit name, then
// the site default, then DefaultLayout.
func (e *Engine) ResolveName(p Page) string {
	if name := p.Meta.String("layout"); name != "" {
		return name
	}
	if p.Layout != "" {
		return p.Layout
	}
	if e.site.DefaultLayout != "" {
		return e.site.DefaultLayout
	}
	return DefaultLayout
}

// Render returns the final HTML for p. A missing layout degrades to the
// fallback shell with a warning; other load failures are returned.
func (e *Engine) Render(p Page) (string, error) {
	name := e.ResolveName(p)

	src, err := e.loader.LoadTemplate(name)
	if err != nil {
		if !assets.IsNotFound(err) && !errors.Is(err, assets.ErrInvalidAssetName) {
			return "", fmt.Errorf("loading layout %q: %w", name, err)
		}
		e.logger.Warn("layout not found, using fallback shell",
			logfields.Layout(name), logfields.Dir(p.Dir), logfields.Error(err))
		src = assets.Fallback()
	}

	src = FixLinks(src, p.Dir)

	return parseTemplate(src).execute(layered(
		e.builtins(p),
		metaLookup(p.Meta),
		mapLookup(e.site.Vars),
	)), nil
}

func (e *Engine) builtins(p Page) lookupFunc {
	return func(name string) (string, bool) {
		switch name {
		case "content":
			return p.Body, true
		case "css":
			return e.stylesheetTag(p.Dir), true
		case "title":
			return firstNonEmpty(p.Meta.String("title"), p.Title), true
		case "siteTitle":
			return firstNonEmpty(e.site.Title, defaultSiteTitle), true
		case "year":
			return strconv.Itoa(e.now().Year()), true
		case "description":
			return firstNonEmpty(p.Meta.String("description"), e.site.Description), true
		case "author":
			return firstNonEmpty(p.Meta.String("author"), e.site.Author), true
		}
		return "", false
	}
}

func (e *Engine) stylesheetTag(dir string) string {
	href := StylesheetPath(e.site.CSSFile, dir)
	if href == "" {
		return ""
	}
	return `<link rel="stylesheet" href="` + href + `">`
}

func metaLookup(m frontmatter.Metadata) lookupFunc {
	return func(name string) (string, bool) {
		return m.Get(name)
	}
}

func mapLookup(vars map[string]string) lookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
