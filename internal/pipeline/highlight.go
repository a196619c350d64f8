package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// ErrUnknownLanguage indicates no chroma lexer matches a code block language.
var ErrUnknownLanguage = errors.New("unknown code language")

// Highlighter renders code with chroma using CSS classes, so colors come
// from the site stylesheet rather than inline styles.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter creates a Highlighter for the named chroma style.
// Unknown names fall back to chroma's default style.
func NewHighlighter(style string) *Highlighter {
	if style == "" {
		style = DefaultHighlightStyle
	}
	s := styles.Get(style)
	if s == nil {
		s = styles.Fallback
	}
	return &Highlighter{
		style:     s,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}
}

// Highlight returns code rendered as a chroma <pre> block.
func (h *Highlighter) Highlight(lang, code string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising %s: %w", lang, err)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", fmt.Errorf("formatting %s: %w", lang, err)
	}
	return b.String(), nil
}
