// Package dateutil parses the free-form dates found in document metadata and
// renders them for display.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidDate indicates a metadata date matched none of the known layouts.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDateFormat indicates an invalid display format string.
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDisplayFormat renders dates the way listing pages show them,
// e.g. "January 2, 2006".
const DefaultDisplayFormat = "long"

// inputLayouts are tried in order when reading a metadata date.
var inputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// formatTokens maps display tokens to Go layout components, longest first.
var formatTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named display formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Parse reads a metadata date in any of the supported layouts.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// CompileFormat turns a display format (tokens YYYY, YY, MMMM, MMM, MM, M,
// DD, D, or a preset name) into a Go time layout. Text inside [brackets] is
// copied literally; every other non-token character is kept as is.
func CompileFormat(format string) (string, error) {
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 8)

	for rest := format; rest != ""; {
		if rest[0] == '[' {
			end := strings.IndexByte(rest[1:], ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1 : end+1])
			rest = rest[end+2:]
			continue
		}
		n := matchToken(rest, &b)
		if n == 0 {
			b.WriteByte(rest[0])
			n = 1
		}
		rest = rest[n:]
	}

	return b.String(), nil
}

// matchToken writes the layout for the token at the start of s and returns
// the number of bytes consumed, or 0 when s does not start with a token.
func matchToken(s string, b *strings.Builder) int {
	for _, t := range formatTokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.layout)
			return len(t.token)
		}
	}
	return 0
}

// Display parses value and renders it with format. When value cannot be
// parsed the raw string is returned together with the parse error so the
// caller can warn and carry on.
func Display(value, format string) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return value, err
	}
	layout, err := CompileFormat(format)
	if err != nil {
		return value, err
	}
	return t.Format(layout), nil
}
