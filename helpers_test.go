package md2site_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2site"
)

// testLayout references every recognized placeholder and a root-relative link.
const testLayout = `<!DOCTYPE html><html><head><title>{{ title }}</title>{{ css }}</head>` +
	`<body><nav><a href="/">Home</a> <a href="/about.html">About</a></nav>` +
	`<main>{{ content }}</main><footer>{{ year }}</footer></body></html>`

// testSite is a site wired to in-memory filesystems.
type testSite struct {
	svc     *md2site.Service
	content billy.Filesystem
	out     billy.Filesystem
	logs    *bytes.Buffer
}

// newTestSite writes files and layouts to memfs and creates a Service over
// them. The stylesheet is read from the content root. mutate may adjust the
// configuration before validation.
func newTestSite(t *testing.T, files, layouts map[string]string, mutate func(*md2site.Config)) *testSite {
	t.Helper()

	content, out, layoutFS := memfs.New(), memfs.New(), memfs.New()
	writeFiles(t, content, files)
	writeFiles(t, layoutFS, layouts)

	cfg := md2site.DefaultConfig()
	cfg.CSSFile = "styles.css"
	if mutate != nil {
		mutate(&cfg)
	}

	logs := &bytes.Buffer{}
	svc, err := md2site.New(cfg,
		md2site.WithContentFS(content),
		md2site.WithOutputFS(out),
		md2site.WithLayoutFS(layoutFS),
		md2site.WithStylesheetFS(content),
		md2site.WithLogger(slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		md2site.WithNow(func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return &testSite{svc: svc, content: content, out: out, logs: logs}
}

func writeFiles(t *testing.T, fs billy.Filesystem, files map[string]string) {
	t.Helper()
	for name, body := range files {
		if err := util.WriteFile(fs, name, []byte(body), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
}

// read returns an output file, failing the test if it is missing.
func (s *testSite) read(t *testing.T, name string) string {
	t.Helper()
	data, err := util.ReadFile(s.out, name)
	if err != nil {
		t.Fatalf("reading output %s: %v", name, err)
	}
	return string(data)
}

// exists reports whether an output path exists.
func (s *testSite) exists(name string) bool {
	_, err := s.out.Stat(name)
	return err == nil
}

// anchorsWithClass returns the href of every <a> carrying class, in document order.
func anchorsWithClass(t *testing.T, page, class string) []string {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}

	var hrefs []string
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			var href, cls string
			for _, a := range n.Attr {
				switch a.Key {
				case "href":
					href = a.Val
				case "class":
					cls = a.Val
				}
			}
			if cls == class {
				hrefs = append(hrefs, href)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return hrefs
}
