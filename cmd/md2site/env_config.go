package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-md2site"
)

// defaultEnvFile is loaded when present; a missing default file is not an error.
const defaultEnvFile = ".env"

// ErrEnvFile indicates an env file that exists but could not be loaded.
var ErrEnvFile = errors.New("failed to load env file")

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // MD2SITE_CONFIG: config file name or path
	ContentDir string // MD2SITE_CONTENT_DIR: content directory
	OutputDir  string // MD2SITE_OUTPUT_DIR: output directory
	LayoutDir  string // MD2SITE_LAYOUT_DIR: layouts directory
	Layout     string // MD2SITE_LAYOUT: default layout name
	CSSFile    string // MD2SITE_CSS: stylesheet path
	SiteTitle  string // MD2SITE_TITLE: site title
	Port       int    // MD2SITE_PORT: preview server port
}

// knownEnvVars lists valid MD2SITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SITE_CONFIG":      true,
	"MD2SITE_CONTENT_DIR": true,
	"MD2SITE_OUTPUT_DIR":  true,
	"MD2SITE_LAYOUT_DIR":  true,
	"MD2SITE_LAYOUT":      true,
	"MD2SITE_CSS":         true,
	"MD2SITE_TITLE":       true,
	"MD2SITE_PORT":        true,
}

// loadEnvFile seeds the process environment from path with godotenv.
// Variables already set are left untouched. A missing file is ignored.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %s: %w", ErrEnvFile, path, err)
	}
	return nil
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2SITE_CONFIG"),
		ContentDir: os.Getenv("MD2SITE_CONTENT_DIR"),
		OutputDir:  os.Getenv("MD2SITE_OUTPUT_DIR"),
		LayoutDir:  os.Getenv("MD2SITE_LAYOUT_DIR"),
		Layout:     os.Getenv("MD2SITE_LAYOUT"),
		CSSFile:    os.Getenv("MD2SITE_CSS"),
		SiteTitle:  os.Getenv("MD2SITE_TITLE"),
	}

	// Invalid ports are ignored, not errors.
	if port := os.Getenv("MD2SITE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			cfg.Port = p
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2SITE_* variables.
// Helps catch typos like MD2SITE_OUTPUT instead of MD2SITE_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2SITE_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment values over cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *md2site.Config) {
	if env.ContentDir != "" {
		cfg.ContentDir = env.ContentDir
	}
	if env.OutputDir != "" {
		cfg.OutputDir = env.OutputDir
	}
	if env.LayoutDir != "" {
		cfg.LayoutDir = env.LayoutDir
	}
	if env.Layout != "" {
		cfg.DefaultLayout = env.Layout
	}
	if env.CSSFile != "" {
		cfg.CSSFile = env.CSSFile
	}
	if env.SiteTitle != "" {
		cfg.SiteTitle = env.SiteTitle
	}
	if env.Port != 0 {
		cfg.Port = env.Port
	}
}
