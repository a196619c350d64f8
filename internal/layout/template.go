package layout

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {{ name }} with optional surrounding whitespace.
// Names may contain inner spaces, as metadata keys can.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}\s](?:[^{}]*[^{}\s])?)\s*\}\}`)

// segment is either literal text or a named placeholder.
type segment struct {
	text        string // literal text, or the raw marker for placeholders
	name        string
	placeholder bool
}

// template is a layout split into literal and placeholder segments.
type template []segment

func parseTemplate(src string) template {
	matches := placeholderPattern.FindAllStringSubmatchIndex(src, -1)
	t := make(template, 0, 2*len(matches)+1)

	last := 0
	for _, m := range matches {
		if m[0] > last {
			t = append(t, segment{text: src[last:m[0]]})
		}
		t = append(t, segment{
			text:        src[m[0]:m[1]],
			name:        src[m[2]:m[3]],
			placeholder: true,
		})
		last = m[1]
	}
	if last < len(src) {
		t = append(t, segment{text: src[last:]})
	}
	return t
}

// lookupFunc resolves a placeholder name.
type lookupFunc func(name string) (string, bool)

// layered tries each lookup in order and returns the first hit.
func layered(lookups ...lookupFunc) lookupFunc {
	return func(name string) (string, bool) {
		for _, lookup := range lookups {
			if v, ok := lookup(name); ok {
				return v, true
			}
		}
		return "", false
	}
}

// execute fills placeholders. Unresolved markers are kept verbatim and
// substituted values are never scanned again.
func (t template) execute(lookup lookupFunc) string {
	var b strings.Builder
	for _, seg := range t {
		if !seg.placeholder {
			b.WriteString(seg.text)
			continue
		}
		if v, ok := lookup(seg.name); ok {
			b.WriteString(v)
		} else {
			b.WriteString(seg.text)
		}
	}
	return b.String()
}
