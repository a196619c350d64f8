package pipeline

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// Precompiled patterns, in application order.
var (
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	headingPatterns = [6]*regexp.Regexp{
		regexp.MustCompile(`(?m)^# (.*)$`),
		regexp.MustCompile(`(?m)^## (.*)$`),
		regexp.MustCompile(`(?m)^### (.*)$`),
		regexp.MustCompile(`(?m)^#### (.*)$`),
		regexp.MustCompile(`(?m)^##### (.*)$`),
		regexp.MustCompile(`(?m)^###### (.*)$`),
	}

	// A bare line closed by a blank line or the end of the text.
	paragraphPattern = regexp.MustCompile(`(?m)^([^<\n][^\n]*)(\n\n|\n?\z)`)

	// Lines that later rules own and the paragraph rule leaves alone.
	blockLinePattern = regexp.MustCompile("^(\\* |- |[0-9]+\\. |```)")

	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldPattern   = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*\s][^*\n]*)\*`)

	starListPattern    = regexp.MustCompile(`(?m)^\* (.*)$`)
	dashListPattern    = regexp.MustCompile(`(?m)^- (.*)$`)
	orderedListPattern = regexp.MustCompile(`(?m)^[0-9]+\. (.*)$`)
	adjacentUL         = regexp.MustCompile(`</ul>\s*<ul>`)
	adjacentOL         = regexp.MustCompile(`</ol>\s*<ol>`)

	codeBlockPattern  = regexp.MustCompile("```([\\s\\S]*?)```")
	codeLangPattern   = regexp.MustCompile(`^([A-Za-z0-9_+#.-]+)\n`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
)

// Transformer converts a document body to an HTML fragment.
type Transformer interface {
	Transform(ctx context.Context, body string) string
}

// TextTransformer applies the substitution list. The zero value is usable
// and leaves code blocks unhighlighted.
type TextTransformer struct {
	highlighter *Highlighter
}

// TransformerOption configures a TextTransformer.
type TransformerOption func(*TextTransformer)

// WithHighlighter enables chroma highlighting of fenced blocks that name a
// language on their opening line.
func WithHighlighter(h *Highlighter) TransformerOption {
	return func(t *TextTransformer) {
		t.highlighter = h
	}
}

// NewTextTransformer creates a TextTransformer.
func NewTextTransformer(opts ...TransformerOption) *TextTransformer {
	t := &TextTransformer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform converts body to HTML. A cancelled context returns body as is.
func (t *TextTransformer) Transform(ctx context.Context, body string) string {
	if ctx.Err() != nil {
		return body
	}

	html := crlfOrCR.ReplaceAllString(body, "\n")

	for i, re := range headingPatterns {
		tag := "h" + strconv.Itoa(i+1)
		html = re.ReplaceAllString(html, "<"+tag+">${1}</"+tag+">")
	}

	html = convertParagraphs(html)

	html = linkPattern.ReplaceAllString(html, `<a href="${2}">${1}</a>`)

	html = boldPattern.ReplaceAllString(html, "<strong>${1}</strong>")
	html = italicPattern.ReplaceAllString(html, "<em>${1}</em>")

	html = starListPattern.ReplaceAllString(html, "<ul><li>${1}</li></ul>")
	html = dashListPattern.ReplaceAllString(html, "<ul><li>${1}</li></ul>")
	html = orderedListPattern.ReplaceAllString(html, "<ol><li>${1}</li></ol>")
	html = adjacentUL.ReplaceAllString(html, "")
	html = adjacentOL.ReplaceAllString(html, "")

	html = codeBlockPattern.ReplaceAllStringFunc(html, t.convertCodeBlock)
	html = inlineCodePattern.ReplaceAllString(html, "<code>${1}</code>")

	return html
}

func convertParagraphs(html string) string {
	return paragraphPattern.ReplaceAllStringFunc(html, func(match string) string {
		sub := paragraphPattern.FindStringSubmatch(match)
		line, tail := sub[1], sub[2]
		if blockLinePattern.MatchString(line) {
			return match
		}
		return "<p>" + line + "</p>" + tail
	})
}

// convertCodeBlock renders one fenced block. A first line made of a single
// word is taken as the language name.
func (t *TextTransformer) convertCodeBlock(block string) string {
	code := codeBlockPattern.FindStringSubmatch(block)[1]

	lang := ""
	if m := codeLangPattern.FindStringSubmatch(code); m != nil {
		lang = m[1]
		code = code[len(m[0]):]
	}

	if lang != "" && t.highlighter != nil {
		if out, err := t.highlighter.Highlight(lang, code); err == nil {
			return out
		}
	}

	if lang != "" {
		return `<pre><code class="language-` + lang + `">` + code + "</code></pre>"
	}
	return "<pre><code>" + strings.TrimPrefix(code, "\n") + "</code></pre>"
}
