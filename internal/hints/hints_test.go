package hints

// Notes:
// - Hints are free text; we assert the prefix and the actionable part only.
// These are acceptable gaps: we test observable behavior, not exact wording.

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestHints - Actionable text per failure
// ---------------------------------------------------------------------------

func TestHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hint string
		want []string
	}{
		{"content not found", ForContentNotFound("./content"), []string{"create ./content", "--content"}},
		{"config not found", ForConfigNotFound("/home/u/.config"), []string{"--config", filepath.Join("/home/u/.config", "go-md2site", "md2site.yaml")}},
		{"config not found without user dir", ForConfigNotFound(""), []string{"--config"}},
		{"output directory", ForOutputDirectory(), []string{"writable"}},
		{"port in use", ForPortInUse(3000), []string{"port 3000", "--port 3001", "MD2SITE_PORT"}},
		{"layout name", ForLayoutName(), []string{"--layout post"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q lacks the hint prefix", tt.hint)
			}
			for _, w := range tt.want {
				if !strings.Contains(tt.hint, w) {
					t.Errorf("hint %q should contain %q", tt.hint, w)
				}
			}
		})
	}

	if strings.Contains(ForConfigNotFound(""), "create") {
		t.Error("no user config dir means no create suggestion")
	}
}

// ---------------------------------------------------------------------------
// TestFormat - Empty input
// ---------------------------------------------------------------------------

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q", got)
	}
}
