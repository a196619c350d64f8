package md2site

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/alnah/go-md2site/internal/dateutil"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/frontmatter"
	"github.com/alnah/go-md2site/internal/layout"
	"github.com/alnah/go-md2site/internal/logfields"
)

// generateIndex writes the listing page for dir ("." for the content root)
// from entries.
func (b *build) generateIndex(ctx context.Context, dir string, entries []LinkEntry) error {
	s := b.svc

	relativePath := dir
	title := s.rootTitle()
	if dir == "." {
		relativePath = ""
	} else {
		title = capitalize(path.Base(dir))
	}

	s.logger.Info("generating index", logfields.Dir(dir), logfields.Links(len(entries)))

	sorted := append([]LinkEntry(nil), entries...)
	SortEntries(sorted)

	meta := frontmatter.Metadata{}
	meta.SetString("title", title)

	html, err := s.engine.Render(layout.Page{
		Body:  b.indexBody(ctx, title, relativePath, sorted),
		Title: title,
		Dir:   relativePath,
		Meta:  meta,
	})
	if err != nil {
		return fmt.Errorf("rendering index for %s: %w", dir, err)
	}

	out := path.Join(dir, indexOutName)
	if err := fileutil.WriteFile(s.output, out, []byte(html)); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	b.result.Indexes++
	s.logger.Info("generated index", logfields.Output(out))
	return nil
}

// indexBody renders the listing markup: a heading, then one post-item block
// per entry with its title link, optional date and description, and a
// read-more link to the same target.
func (b *build) indexBody(ctx context.Context, title, relativePath string, entries []LinkEntry) string {
	s := b.svc

	var sb strings.Builder
	sb.WriteString("<h1>" + title + "</h1>\n<div class=\"post-list\">")

	for _, e := range entries {
		href := AdjustPath(relativePath, e.Path)
		s.logger.Debug("index link", logfields.Path(e.Path), logfields.Href(href))

		sb.WriteString("\n  <div class=\"post-item\">\n    <a href=\"" + href + "\" class=\"post-title\">" + e.Title + "</a>")
		if e.Date != "" {
			date, err := dateutil.Display(e.Date, s.cfg.dateFormat())
			if err != nil {
				s.logger.WarnContext(ctx, "date left unformatted", logfields.Path(e.Path), logfields.Error(err))
			}
			sb.WriteString("\n    <div class=\"post-date\">" + date + "</div>")
		}
		if e.Description != "" {
			sb.WriteString("\n    <div class=\"post-excerpt\">" + e.Description + "</div>")
		}
		sb.WriteString("\n    <a href=\"" + href + "\" class=\"read-more\">Read more</a>\n  </div>")
	}

	sb.WriteString("\n</div>")
	return sb.String()
}

// SortEntries orders a listing in place. Two entries that both carry a date
// compare newest first; any other pair compares by title in English collation
// order. Pairs whose dates do not parse keep their relative order.
func SortEntries(entries []LinkEntry) {
	coll := collate.New(language.English)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Date != "" && b.Date != "" {
			ta, errA := dateutil.Parse(a.Date)
			tb, errB := dateutil.Parse(b.Date)
			if errA != nil || errB != nil {
				return false
			}
			return ta.After(tb)
		}
		return coll.CompareString(a.Title, b.Title) < 0
	})
}

// AdjustPath makes an output-relative link path relative to the listing in
// relativePath. Entries under relativePath lose that prefix; entries from
// other branches climb one level per segment of relativePath. The climb is
// only exact when both branches have the same depth.
func AdjustPath(relativePath, linkPath string) string {
	linkPath = strings.ReplaceAll(linkPath, "\\", "/")
	if relativePath == "" {
		return linkPath
	}
	if strings.HasPrefix(linkPath, relativePath+"/") {
		return strings.TrimPrefix(linkPath, relativePath+"/")
	}
	depth := len(strings.Split(relativePath, "/"))
	return strings.Repeat("../", depth) + linkPath
}
