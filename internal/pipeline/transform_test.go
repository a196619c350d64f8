package pipeline

// Notes:
// - Multi-line paragraphs only wrap their last line; that mirrors the
//   line-oriented substitution and is pinned below rather than fixed.
// - Chroma output markup is not asserted in detail: it belongs to chroma.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestTransform - Ordered substitution rules
// ---------------------------------------------------------------------------

func TestTransform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "headings",
			input: "# A\n## B\n### C\n#### D\n##### E\n###### F",
			want:  "<h1>A</h1>\n<h2>B</h2>\n<h3>C</h3>\n<h4>D</h4>\n<h5>E</h5>\n<h6>F</h6>",
		},
		{
			name:  "heading needs a space",
			input: "#hashtag",
			want:  "<p>#hashtag</p>",
		},
		{
			name:  "paragraphs split by blank lines",
			input: "Hello world\n\nSecond",
			want:  "<p>Hello world</p>\n\n<p>Second</p>",
		},
		{
			name:  "heading then paragraph",
			input: "# Title\n\nText",
			want:  "<h1>Title</h1>\n\n<p>Text</p>",
		},
		{
			name:  "only the closing line of a run is wrapped",
			input: "line one\nline two\n\nnext",
			want:  "line one\n<p>line two</p>\n\n<p>next</p>",
		},
		{
			name:  "links",
			input: "[Go](https://go.dev)",
			want:  `<p><a href="https://go.dev">Go</a></p>`,
		},
		{
			name:  "bold before italic",
			input: "**bold** and *it*",
			want:  "<p><strong>bold</strong> and <em>it</em></p>",
		},
		{
			name:  "bullet lists merge",
			input: "* one\n* two\n- three",
			want:  "<ul><li>one</li><li>two</li><li>three</li></ul>",
		},
		{
			name:  "numbered lists merge",
			input: "1. a\n2. b",
			want:  "<ol><li>a</li><li>b</li></ol>",
		},
		{
			name:  "fenced code with language",
			input: "```go\nx := 1\n```",
			want:  "<pre><code class=\"language-go\">x := 1\n</code></pre>",
		},
		{
			name:  "fenced code without language",
			input: "```\nplain\n```",
			want:  "<pre><code>plain\n</code></pre>",
		},
		{
			name:  "inline code",
			input: "use `fmt` here",
			want:  "<p>use <code>fmt</code> here</p>",
		},
		{
			name:  "raw html passes through",
			input: `<div class="x">**b**</div>`,
			want:  `<div class="x"><strong>b</strong></div>`,
		},
		{
			name:  "crlf normalized",
			input: "# T\r\n\r\nBody",
			want:  "<h1>T</h1>\n\n<p>Body</p>",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	tr := NewTextTransformer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tr.Transform(context.Background(), tt.input)
			if got != tt.want {
				t.Errorf("Transform(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTransform_Highlighting - Chroma-rendered fenced blocks
// ---------------------------------------------------------------------------

func TestTransform_Highlighting(t *testing.T) {
	t.Parallel()

	tr := NewTextTransformer(WithHighlighter(NewHighlighter("")))

	t.Run("known language", func(t *testing.T) {
		t.Parallel()

		got := tr.Transform(context.Background(), "```go\nfunc main() {}\n```")
		if !strings.Contains(got, "chroma") {
			t.Errorf("expected chroma markup, got %q", got)
		}
		if strings.Contains(got, "```") {
			t.Errorf("fence markers left in output: %q", got)
		}
	})

	t.Run("unknown language falls back", func(t *testing.T) {
		t.Parallel()

		got := tr.Transform(context.Background(), "```nosuchlang\nx\n```")
		want := "<pre><code class=\"language-nosuchlang\">x\n</code></pre>"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

// ---------------------------------------------------------------------------
// TestTransform_ContextCancellation - Cancelled context returns input
// ---------------------------------------------------------------------------

func TestTransform_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "# Title"
	if got := NewTextTransformer().Transform(ctx, input); got != input {
		t.Errorf("Transform() with cancelled context = %q, want %q", got, input)
	}
}

// ---------------------------------------------------------------------------
// TestHighlighter - Direct chroma rendering
// ---------------------------------------------------------------------------

func TestHighlighter(t *testing.T) {
	t.Parallel()

	h := NewHighlighter("no-such-style")

	if _, err := h.Highlight("nosuchlang", "x"); err == nil {
		t.Error("expected error for unknown language")
	}

	out, err := h.Highlight("go", "package main\n")
	if err != nil {
		t.Fatalf("Highlight() error = %v", err)
	}
	if !strings.Contains(out, "package") {
		t.Errorf("highlighted output lost source text: %q", out)
	}
}
