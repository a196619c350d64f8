package md2site_test

// Notes:
// - SortEntries: mixed dated/undated ordering is only pinned on small inputs.
// - AdjustPath: links across branches of different depth are not exact by
//   construction; we only pin the arithmetic.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"testing"

	"github.com/alnah/go-md2site"
)

// ---------------------------------------------------------------------------
// TestSortEntries - Listing order
// ---------------------------------------------------------------------------

func TestSortEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []md2site.LinkEntry
		want    []string
	}{
		{
			name: "dated entries newest first",
			entries: []md2site.LinkEntry{
				{Title: "Old", Date: "2023-01-01"},
				{Title: "New", Date: "2024-01-01"},
				{Title: "Mid", Date: "2023-06-15"},
			},
			want: []string{"New", "Mid", "Old"},
		},
		{
			name: "undated entries alphabetical",
			entries: []md2site.LinkEntry{
				{Title: "beta"},
				{Title: "Alpha"},
				{Title: "gamma"},
			},
			want: []string{"Alpha", "beta", "gamma"},
		},
		{
			name: "accented titles collate with their base letter",
			entries: []md2site.LinkEntry{
				{Title: "Zebra"},
				{Title: "Éclair"},
				{Title: "Apple"},
			},
			want: []string{"Apple", "Éclair", "Zebra"},
		},
		{
			name: "mixed pair compares by title",
			entries: []md2site.LinkEntry{
				{Title: "Zed", Date: "2024-01-01"},
				{Title: "Alpha"},
			},
			want: []string{"Alpha", "Zed"},
		},
		{
			name: "date layouts are mixed freely",
			entries: []md2site.LinkEntry{
				{Title: "A", Date: "March 1, 2024"},
				{Title: "B", Date: "2024-05-01"},
				{Title: "C", Date: "2024/02/01"},
			},
			want: []string{"B", "A", "C"},
		},
		{
			name: "unparsable dates keep their order",
			entries: []md2site.LinkEntry{
				{Title: "First", Date: "someday"},
				{Title: "Second", Date: "2024-01-01"},
			},
			want: []string{"First", "Second"},
		},
		{
			name:    "empty",
			entries: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			md2site.SortEntries(tt.entries)

			if len(tt.entries) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(tt.entries), len(tt.want))
			}
			for i, e := range tt.entries {
				if e.Title != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, e.Title, tt.want[i])
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAdjustPath - Listing-relative link targets
// ---------------------------------------------------------------------------

func TestAdjustPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		relativePath string
		linkPath     string
		want         string
	}{
		{"root listing", "", "blog/post.html", "blog/post.html"},
		{"same directory", "blog", "blog/post.html", "post.html"},
		{"nested under listing", "blog", "blog/drafts/index.html", "drafts/index.html"},
		{"sibling branch", "blog", "docs/guide.html", "../docs/guide.html"},
		{"deep listing", "a/b", "c/d/page.html", "../../c/d/page.html"},
		{"prefix is not a parent", "blog", "blogroll/x.html", "../blogroll/x.html"},
		{"backslashes normalized", "", `blog\post.html`, "blog/post.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := md2site.AdjustPath(tt.relativePath, tt.linkPath); got != tt.want {
				t.Errorf("AdjustPath(%q, %q) = %q, want %q", tt.relativePath, tt.linkPath, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInventory - Append-only entry list
// ---------------------------------------------------------------------------

func TestInventory(t *testing.T) {
	t.Parallel()

	var inv md2site.Inventory
	inv.Add(md2site.LinkEntry{Path: "a.html"})
	inv.Add(md2site.LinkEntry{Path: "b.html"})

	if inv.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", inv.Len())
	}

	entries := inv.Entries()
	entries[0].Path = "changed"
	if got := inv.Entries()[0].Path; got != "a.html" {
		t.Errorf("Entries() must return a copy, inventory now holds %q", got)
	}
}
