// Package logfields holds canonical slog attribute names so every package
// logs the same keys for the same things.
package logfields

import "log/slog"

// Canonical log field names.
const (
	KeyPath     = "path"
	KeyDir      = "dir"
	KeyOutput   = "output"
	KeyLayout   = "layout"
	KeyLinks    = "links"
	KeyHref     = "href"
	KeyPort     = "port"
	KeyDuration = "duration_ms"
	KeyError    = "error"
)

func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func Dir(d string) slog.Attr       { return slog.String(KeyDir, d) }
func Output(p string) slog.Attr    { return slog.String(KeyOutput, p) }
func Layout(name string) slog.Attr { return slog.String(KeyLayout, name) }
func Links(n int) slog.Attr        { return slog.Int(KeyLinks, n) }
func Href(h string) slog.Attr      { return slog.String(KeyHref, h) }
func Port(n int) slog.Attr         { return slog.Int(KeyPort, n) }

// DurationMS records an elapsed time in milliseconds.
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDuration, ms) }

// Error renders err as a string attribute; a nil error yields an empty value.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
