package md2site

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-md2site/internal/dateutil"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/frontmatter"
	"github.com/alnah/go-md2site/internal/layout"
	"github.com/alnah/go-md2site/internal/logfields"
)

// build holds the state of one Build call. The global inventory is owned
// here and passed down the walk by reference.
type build struct {
	svc    *Service
	global *Inventory
	result Result
}

// walk processes dir, a slash-separated path relative to the content root
// ("." for the root). Files are handled before any subdirectory is entered,
// and subdirectories are visited in listing order. It reports whether dir
// ends up with an index page, explicit or generated.
func (b *build) walk(ctx context.Context, dir string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s := b.svc
	s.logger.Info("processing directory", logfields.Dir(dir))

	entries, err := s.content.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("%w: listing %s: %w", ErrReadContent, dir, err)
	}

	hasIndex := false
	for _, e := range entries {
		if !e.IsDir() && e.Name() == indexDocName {
			hasIndex = true
			break
		}
	}

	local := &Inventory{}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}

		rel := path.Join(dir, e.Name())
		ext := path.Ext(e.Name())

		switch {
		case ext == docExt:
			entry, isIndex, err := b.renderDocument(ctx, dir, e.Name())
			if err != nil {
				return false, err
			}
			if !isIndex {
				local.Add(entry)
				b.global.Add(entry)
			}
		case s.skip[ext]:
			b.result.Skipped++
			s.logger.Debug("skipping source file", logfields.Path(rel))
		default:
			if err := fileutil.CopyFile(s.content, rel, s.output, rel); err != nil {
				return false, copyError(rel, err)
			}
			b.result.Assets++
			s.logger.Debug("copied asset", logfields.Path(rel))
		}
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		sub := path.Join(dir, e.Name())
		if sub == s.nestedOut {
			s.logger.Debug("skipping output directory", logfields.Dir(sub))
			continue
		}
		subHasIndex, err := b.walk(ctx, sub)
		if err != nil {
			return false, err
		}
		// A subdirectory without any page gets no listing, so nothing to point at.
		if subHasIndex {
			local.Add(LinkEntry{
				Path:  sub + "/" + indexOutName,
				Title: capitalize(e.Name()),
			})
		}
	}

	// The root listing is written by Build from the global inventory.
	if dir == "." || hasIndex {
		return hasIndex, nil
	}
	if local.Len() == 0 {
		return false, nil
	}
	if err := b.generateIndex(ctx, dir, local.Entries()); err != nil {
		return false, err
	}
	return true, nil
}

// renderDocument converts one .md file in dir and writes its page. It returns
// the link entry for the page and whether the file is the directory index.
func (b *build) renderDocument(ctx context.Context, dir, name string) (LinkEntry, bool, error) {
	s := b.svc
	rel := path.Join(dir, name)
	base := strings.TrimSuffix(name, docExt)
	isIndex := name == indexDocName

	s.logger.Debug("converting document", logfields.Path(rel))

	raw, err := fileutil.ReadFile(s.content, rel)
	if err != nil {
		return LinkEntry{}, false, fmt.Errorf("%w: %w", ErrReadContent, err)
	}

	meta, body, err := frontmatter.Extract(string(raw))
	if err != nil {
		s.logger.Warn("ignoring malformed front matter", logfields.Path(rel), logfields.Error(err))
	}

	title := meta.String("title")
	if title == "" {
		title = capitalize(base)
	}

	date := meta.String("date")
	if date != "" {
		formatted, err := dateutil.Display(date, s.cfg.dateFormat())
		if err != nil {
			s.logger.Warn("date left unformatted", logfields.Path(rel), logfields.Error(err))
		}
		meta.SetString("formattedDate", formatted)
	}

	pageTitle := title
	if isIndex {
		pageTitle = s.cfg.SiteTitle
		if pageTitle == "" {
			pageTitle = "Home"
		}
	}

	converted := s.transformer.Transform(ctx, body)
	// Transform hands back the raw body once ctx is done; never write that.
	if err := ctx.Err(); err != nil {
		return LinkEntry{}, false, err
	}

	html, err := s.engine.Render(layout.Page{
		Body:  converted,
		Title: pageTitle,
		Dir:   dir,
		Meta:  meta,
	})
	if err != nil {
		return LinkEntry{}, false, fmt.Errorf("rendering %s: %w", rel, err)
	}

	outRel := strings.TrimSuffix(rel, docExt) + outputExt
	if err := fileutil.WriteFile(s.output, outRel, []byte(html)); err != nil {
		return LinkEntry{}, false, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	b.result.Pages++
	s.logger.Debug("generated page", logfields.Output(outRel))

	return LinkEntry{
		Path:        outRel,
		Title:       title,
		Description: meta.String("description"),
		Date:        date,
	}, isIndex, nil
}

// copyError classifies a failed asset copy as a read or a write failure.
func copyError(rel string, err error) error {
	if errors.Is(err, fileutil.ErrCopySource) {
		return fmt.Errorf("%w: copying %s: %w", ErrReadContent, rel, err)
	}
	return fmt.Errorf("%w: copying %s: %w", ErrWriteOutput, rel, err)
}

// capitalize upper-cases the first letter of s and leaves the rest alone.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
