// Package md2site turns a tree of Markdown documents into a static HTML site.
//
// # Quick Start
//
// Build a site from ./content into ./public with the default settings:
//
//	svc, err := md2site.New(md2site.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := svc.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Pages, "pages")
//
// # Build Pipeline
//
// A build runs these stages in order, on one goroutine:
//
//  1. Create the output root and copy the stylesheet into it
//  2. Walk the content tree: in every directory, files first, then subdirectories
//  3. For each .md file: split the --- metadata header, convert the body with
//     the fixed substitution rules, render it through its layout and write the
//     .html page at the mirrored path
//  4. Copy every other file verbatim, except skipped extensions (.ts, .js)
//  5. Write a listing index.html in every directory that has pages but no
//     index.md, and at the root from the whole-tree inventory
//
// Every build is a full rebuild; nothing is cached between runs.
//
// # Layouts
//
// Layouts are HTML files in the layouts directory with {{ name }}
// placeholders. A page picks its layout from its "layout" metadata, else the
// site default. Missing layouts fall back to a built-in shell. Root-relative
// links in layouts are rewritten so they work from any depth.
//
// # Configuration
//
// Use functional options to swap filesystems (for tests or embedding):
//
//	svc, err := md2site.New(cfg,
//	    md2site.WithContentFS(memfs.New()),
//	    md2site.WithOutputFS(out),
//	    md2site.WithLogger(logger),
//	)
package md2site
