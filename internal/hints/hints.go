// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strconv"
	"strings"
)

// ForContentNotFound returns hints for a missing content directory.
func ForContentNotFound(dir string) string {
	return format("create " + dir + " or use --content <dir>")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and, when known, the user config location.
func ForConfigNotFound(userConfigDir string) string {
	hint := "use --config /path/to/file.yaml"
	if userConfigDir != "" {
		hint += " or create " + filepath.Join(userConfigDir, "go-md2site", "md2site.yaml")
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForPortInUse returns hints for a preview port that is already taken.
func ForPortInUse(port int) string {
	next := strconv.Itoa(port + 1)
	return formatHints([]string{
		"another server is using port " + strconv.Itoa(port),
		"use --port " + next + " or set MD2SITE_PORT",
	})
}

// ForLayoutName returns hints for an invalid default layout name.
func ForLayoutName() string {
	return format("use the bare file name, e.g. --layout post for layouts/post.html")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
