// Package config loads the optional md2site.yaml site file.
//
// Every field is optional: empty strings, zero ports and nil pointers mean
// "not set" so the caller can layer the file over built-in defaults. Top-level
// keys the file does not define are kept as string template variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/dateutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxNameLength        = 64   // layout names
	MaxTitleLength       = 200  // site title
	MaxDescriptionLength = 500  // site description
	MaxAuthorLength      = 100  // author name
	MaxExtensionLength   = 16   // ".markdown"
	MaxVariableLength    = 2048 // extra template variables
)

// File holds the settings a site file may declare.
type File struct {
	ContentDir      string   `yaml:"contentDir"`
	OutputDir       string   `yaml:"outputDir"`
	LayoutDir       string   `yaml:"layoutDir"`
	DefaultLayout   string   `yaml:"defaultLayout"`
	SiteTitle       string   `yaml:"siteTitle"`
	CSSFile         *string  `yaml:"cssFile"` // "" disables the stylesheet
	SiteDescription string   `yaml:"siteDescription"`
	SiteAuthor      string   `yaml:"siteAuthor"`
	BasePath        string   `yaml:"basePath"`
	DateFormat      string   `yaml:"dateFormat"` // preset or token format
	Port            int      `yaml:"port"`
	Serve           *bool    `yaml:"serve"`
	Highlight       *bool    `yaml:"highlight"`
	HighlightStyle  string   `yaml:"highlightStyle"` // chroma style name
	SkipExtensions  []string `yaml:"skipExtensions"`

	// Extra holds string values of top-level keys not listed above.
	Extra map[string]string `yaml:"-"`
}

// knownKeys lists the yaml names of File's fields.
var knownKeys = map[string]bool{
	"contentDir": true, "outputDir": true, "layoutDir": true,
	"defaultLayout": true, "siteTitle": true, "cssFile": true,
	"siteDescription": true, "siteAuthor": true, "basePath": true,
	"dateFormat": true, "port": true, "serve": true,
	"highlight": true, "highlightStyle": true, "skipExtensions": true,
}

// Validate checks lengths and value ranges.
func (f *File) Validate() error {
	paths := []struct{ name, value string }{
		{"contentDir", f.ContentDir},
		{"outputDir", f.OutputDir},
		{"layoutDir", f.LayoutDir},
		{"basePath", f.BasePath},
	}
	if f.CSSFile != nil {
		paths = append(paths, struct{ name, value string }{"cssFile", *f.CSSFile})
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("defaultLayout", f.DefaultLayout, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlightStyle", f.HighlightStyle, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("siteTitle", f.SiteTitle, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("siteDescription", f.SiteDescription, MaxDescriptionLength); err != nil {
		return err
	}
	if err := validateFieldLength("siteAuthor", f.SiteAuthor, MaxAuthorLength); err != nil {
		return err
	}

	if f.Port < 0 || f.Port > 65535 {
		return fmt.Errorf("%w: port must be between 1 and 65535, got %d", ErrInvalidValue, f.Port)
	}

	if f.DateFormat != "" {
		if _, err := dateutil.CompileFormat(f.DateFormat); err != nil {
			return fmt.Errorf("%w: dateFormat: %v", ErrInvalidValue, err)
		}
	}

	for i, ext := range f.SkipExtensions {
		field := fmt.Sprintf("skipExtensions[%d]", i)
		if err := validateFieldLength(field, ext, MaxExtensionLength); err != nil {
			return err
		}
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: %s: %q must start with a dot", ErrInvalidValue, field, ext)
		}
	}

	for key, value := range f.Extra {
		if err := validateFieldLength(key, value, MaxVariableLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Parse decodes and validates site file content.
func Parse(data []byte) (*File, error) {
	var f File
	if len(bytes.TrimSpace(data)) == 0 {
		return &f, nil
	}

	if err := yamlutil.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	fields, err := yamlutil.Fields(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	for key, value := range fields {
		if knownKeys[key] {
			continue
		}
		if s, ok := value.(string); ok {
			if f.Extra == nil {
				f.Extra = make(map[string]string)
			}
			f.Extra[key] = s
		}
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadConfig loads a site file from a path or config name.
// If nameOrPath contains a path separator or a YAML extension, it's treated
// as a file path. Otherwise it's searched as {name}.yaml and {name}.yml in the
// current directory, then in the user config directory.
func LoadConfig(nameOrPath string) (*File, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return strings.ContainsAny(s, "/\\") || ext == ".yaml" || ext == ".yml"
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{"."}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, "go-md2site"))
	}

	tried := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			candidate := filepath.Join(dir, name+ext)
			if fileExists(candidate) {
				return candidate, nil
			}
			tried = append(tried, candidate)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
