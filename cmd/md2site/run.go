package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/hints"
	"github.com/alnah/go-md2site/internal/preview"
)

// defaultConfigName is looked up when no config file is given.
const defaultConfigName = "md2site"

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, flags *cliFlags, env *Environment) int {
	if len(args) == 0 || flags.common.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.common.version {
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
		return ExitSuccess
	}

	cfg, err := resolveConfig(flags, env)
	if err == nil {
		err = runSite(ctx, cfg, flags.common, env)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, cfg))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runSite builds the site once and, when serving, hands over to the preview
// server until ctx is cancelled.
func runSite(ctx context.Context, cfg md2site.Config, common commonFlags, env *Environment) error {
	logger := newLogger(env.Stderr, common)

	svc, err := md2site.New(cfg, md2site.WithLogger(logger), md2site.WithNow(env.Now))
	if err != nil {
		return err
	}

	result, err := svc.Build(ctx)
	if err != nil {
		return err
	}
	if !common.quiet {
		fmt.Fprintf(env.Stdout, "Site generated in %s: %d pages, %d indexes, %d assets (%s)\n",
			cfg.OutputDir, result.Pages, result.Indexes, result.Assets, result.Duration.Round(time.Millisecond))
	}

	if !cfg.Serve {
		return nil
	}

	srv, err := preview.New(preview.Config{
		OutputDir: cfg.OutputDir,
		Port:      cfg.Port,
		Watch:     watchRoots(cfg),
	}, func(ctx context.Context) error {
		_, err := svc.Build(ctx)
		return err
	}, preview.WithLogger(logger))
	if err != nil {
		return err
	}

	if !common.quiet {
		fmt.Fprintf(env.Stdout, "Serving %s at http://localhost:%d (Ctrl+C to stop)\n", cfg.OutputDir, cfg.Port)
	}
	return srv.Run(ctx)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, cfg md2site.Config) string {
	switch {
	case errors.Is(err, md2site.ErrContentNotFound):
		return hints.ForContentNotFound(cfg.ContentDir)
	case errors.Is(err, config.ErrConfigNotFound):
		dir, _ := os.UserConfigDir()
		return hints.ForConfigNotFound(dir)
	case errors.Is(err, md2site.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, assets.ErrInvalidAssetName):
		return hints.ForLayoutName()
	case errors.Is(err, syscall.EADDRINUSE):
		return hints.ForPortInUse(cfg.Port)
	}
	return ""
}

// resolveConfig layers defaults, the config file, the environment and the
// flags, in increasing priority.
func resolveConfig(flags *cliFlags, env *Environment) (md2site.Config, error) {
	cfg := md2site.DefaultConfig()

	if err := loadEnvFile(flags.common.envFile); err != nil {
		return cfg, err
	}
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	file, err := loadConfigFile(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if file != nil {
		applyFile(file, &cfg)
	}

	applyEnvConfig(envCfg, &cfg)
	mergeFlags(flags, &cfg)
	return cfg, nil
}

// loadConfigFile loads the explicit config (flag, then env) or, failing
// that, md2site.yaml when one exists. It returns nil when there is none.
func loadConfigFile(flagPath, envPath string) (*config.File, error) {
	name := flagPath
	if name == "" {
		name = envPath
	}
	if name != "" {
		return config.LoadConfig(name)
	}

	file, err := config.LoadConfig(defaultConfigName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, nil
	}
	return file, err
}

// applyFile copies every setting the file declares into cfg.
func applyFile(f *config.File, cfg *md2site.Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&cfg.ContentDir, f.ContentDir)
	setString(&cfg.OutputDir, f.OutputDir)
	setString(&cfg.LayoutDir, f.LayoutDir)
	setString(&cfg.DefaultLayout, f.DefaultLayout)
	setString(&cfg.SiteTitle, f.SiteTitle)
	setString(&cfg.SiteDescription, f.SiteDescription)
	setString(&cfg.SiteAuthor, f.SiteAuthor)
	setString(&cfg.BasePath, f.BasePath)
	setString(&cfg.DateFormat, f.DateFormat)
	setString(&cfg.HighlightStyle, f.HighlightStyle)

	if f.CSSFile != nil {
		cfg.CSSFile = *f.CSSFile
	}
	if f.Port != 0 {
		cfg.Port = f.Port
	}
	if f.Serve != nil {
		cfg.Serve = *f.Serve
	}
	if f.Highlight != nil {
		cfg.Highlight = *f.Highlight
	}
	if f.SkipExtensions != nil {
		cfg.SkipExtensions = append([]string(nil), f.SkipExtensions...)
	}
	if len(f.Extra) > 0 {
		cfg.Extra = make(map[string]string, len(f.Extra))
		for k, v := range f.Extra {
			cfg.Extra[k] = v
		}
	}
}

// mergeFlags applies CLI flags over cfg. CLI wins.
func mergeFlags(flags *cliFlags, cfg *md2site.Config) {
	f := flags.site
	if f.content != "" {
		cfg.ContentDir = f.content
	}
	if f.output != "" {
		cfg.OutputDir = f.output
	}
	if f.layouts != "" {
		cfg.LayoutDir = f.layouts
	}
	if f.layout != "" {
		cfg.DefaultLayout = f.layout
	}
	if f.css != "" {
		cfg.CSSFile = f.css
	}
	if f.title != "" {
		cfg.SiteTitle = f.title
	}
	if f.port != 0 {
		cfg.Port = f.port
	}
	switch {
	case f.noServe:
		cfg.Serve = false
	case f.serve:
		cfg.Serve = true
	}
}

// newLogger returns a text logger at Info, Debug with --verbose and Error
// with --quiet.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// watchRoots lists the directories whose changes trigger a rebuild.
func watchRoots(cfg md2site.Config) []string {
	roots := []string{cfg.ContentDir}
	if cfg.LayoutDir != "" {
		roots = append(roots, cfg.LayoutDir)
	}
	if cfg.CSSFile != "" {
		roots = append(roots, filepath.Dir(cfg.CSSFile))
	}

	seen := make(map[string]bool, len(roots))
	out := roots[:0]
	for _, r := range roots {
		key := filepath.Clean(r)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
