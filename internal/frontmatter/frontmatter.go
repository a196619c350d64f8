// Package frontmatter splits a document into its `---` fenced metadata block
// and body text.
//
// The header is a flat list of `key: value` lines. It is not YAML: values are
// never coerced or unquoted, and `[a, b]` is the only structured form.
package frontmatter

import (
	"errors"
	"strings"
)

// Fence opens and closes a metadata block.
const Fence = "---"

// ErrUnclosedFence is returned when a document opens a metadata block but
// never closes it. Extract still returns usable results alongside it.
var ErrUnclosedFence = errors.New("front matter is missing its closing delimiter")

// Value is a metadata value: either a raw string or an ordered list.
type Value struct {
	Text  string
	Items []string
	List  bool
}

// String renders the value for templates. Lists join with ", ".
func (v Value) String() string {
	if v.List {
		return strings.Join(v.Items, ", ")
	}
	return v.Text
}

// Metadata maps header keys to values. A duplicated key keeps its last value.
type Metadata map[string]Value

// Get returns the rendered value for key and whether it is present.
func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// String returns the rendered value for key, or "" when absent.
func (m Metadata) String(key string) string {
	s, _ := m.Get(key)
	return s
}

// SetString stores a raw string value.
func (m Metadata) SetString(key, value string) {
	m[key] = Value{Text: value}
}

// Extract returns the metadata and body of text.
//
// Text without a leading fence yields empty metadata and text unchanged. An
// opened but unclosed fence does the same and also returns ErrUnclosedFence,
// which callers treat as a warning.
func Extract(text string) (Metadata, string, error) {
	meta := Metadata{}
	if !strings.HasPrefix(text, Fence) {
		return meta, text, nil
	}

	end := strings.Index(text[len(Fence):], Fence)
	if end < 0 {
		return meta, text, ErrUnclosedFence
	}
	end += len(Fence)

	header := strings.TrimSpace(text[len(Fence):end])
	body := strings.TrimSpace(text[end+len(Fence):])

	for _, line := range strings.Split(header, "\n") {
		colon := strings.Index(line, ":")
		if colon <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:colon])
		meta[key] = parseValue(strings.TrimSpace(line[colon+1:]))
	}

	return meta, body, nil
}

func parseValue(raw string) Value {
	if len(raw) < 2 || !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return Value{Text: raw}
	}

	inner := raw[1 : len(raw)-1]
	if strings.TrimSpace(inner) == "" {
		return Value{Items: []string{}, List: true}
	}

	parts := strings.Split(inner, ",")
	items := make([]string, len(parts))
	for i, p := range parts {
		items[i] = strings.TrimSpace(p)
	}
	return Value{Items: items, List: true}
}
