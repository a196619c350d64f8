package md2site

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/dateutil"
)

// Default configuration values.
const (
	DefaultContentDir      = "./content"
	DefaultOutputDir       = "./public"
	DefaultLayoutDir       = "./layouts"
	DefaultLayout          = "default"
	DefaultSiteTitle       = "texoport"
	DefaultCSSFile         = "./content/styles.css"
	DefaultSiteDescription = "A minimalist static site generator"
	DefaultSiteAuthor      = "Your Name"
	DefaultBasePath        = "/"
	DefaultPort            = 3000
	DefaultHighlightStyle  = "github"
)

// DefaultSkipExtensions lists source files that are neither converted nor copied.
var DefaultSkipExtensions = []string{".ts", ".js"}

// Config is the site configuration. It is resolved once before a build and
// treated as read-only afterwards.
type Config struct {
	ContentDir      string
	OutputDir       string
	LayoutDir       string // empty = always use the fallback shell
	DefaultLayout   string
	SiteTitle       string
	CSSFile         string // empty = no stylesheet
	SiteDescription string
	SiteAuthor      string
	BasePath        string
	DateFormat      string // dateutil preset or token format
	Highlight       bool
	HighlightStyle  string
	SkipExtensions  []string
	Serve           bool
	Port            int

	// Extra holds additional template variables.
	Extra map[string]string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		ContentDir:      DefaultContentDir,
		OutputDir:       DefaultOutputDir,
		LayoutDir:       DefaultLayoutDir,
		DefaultLayout:   DefaultLayout,
		SiteTitle:       DefaultSiteTitle,
		CSSFile:         DefaultCSSFile,
		SiteDescription: DefaultSiteDescription,
		SiteAuthor:      DefaultSiteAuthor,
		BasePath:        DefaultBasePath,
		DateFormat:      dateutil.DefaultDisplayFormat,
		HighlightStyle:  DefaultHighlightStyle,
		SkipExtensions:  append([]string(nil), DefaultSkipExtensions...),
		Port:            DefaultPort,
	}
}

// Validate checks the configuration for values a build cannot work with.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("%w: content directory is required", ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is required", ErrInvalidConfig)
	}
	if filepath.Clean(c.ContentDir) == filepath.Clean(c.OutputDir) {
		return fmt.Errorf("%w: output directory must differ from content directory", ErrInvalidConfig)
	}
	if c.DefaultLayout != "" {
		if err := assets.ValidateAssetName(c.DefaultLayout); err != nil {
			return fmt.Errorf("%w: default layout: %w", ErrInvalidConfig, err)
		}
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port must be between 1 and 65535, got %d", ErrInvalidConfig, c.Port)
	}
	if c.DateFormat != "" {
		if _, err := dateutil.CompileFormat(c.DateFormat); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	for _, ext := range c.SkipExtensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: skip extension %q must start with a dot", ErrInvalidConfig, ext)
		}
	}
	return nil
}

// Vars returns the template variables the configuration provides: every
// string setting under its camelCase name, plus Extra. Named settings win
// over Extra entries with the same key.
func (c *Config) Vars() map[string]string {
	vars := make(map[string]string, len(c.Extra)+10)
	for k, v := range c.Extra {
		vars[k] = v
	}
	vars["contentDir"] = c.ContentDir
	vars["outputDir"] = c.OutputDir
	vars["layoutDir"] = c.LayoutDir
	vars["defaultLayout"] = c.DefaultLayout
	vars["siteTitle"] = c.SiteTitle
	vars["cssFile"] = c.CSSFile
	vars["siteDescription"] = c.SiteDescription
	vars["siteAuthor"] = c.SiteAuthor
	vars["basePath"] = c.BasePath
	vars["dateFormat"] = c.DateFormat
	return vars
}

// dateFormat returns the configured display format or the default.
func (c *Config) dateFormat() string {
	if c.DateFormat == "" {
		return dateutil.DefaultDisplayFormat
	}
	return c.DateFormat
}

// skipSet returns SkipExtensions as a lookup set.
func (c *Config) skipSet() map[string]bool {
	set := make(map[string]bool, len(c.SkipExtensions))
	for _, ext := range c.SkipExtensions {
		set[ext] = true
	}
	return set
}
