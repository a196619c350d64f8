package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-md2site"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a static HTML site from a tree of markdown documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintf(w, "      --content <dir>       Content directory (default: %s)\n", md2site.DefaultContentDir)
	fmt.Fprintf(w, "      --output <dir>        Output directory (default: %s)\n", md2site.DefaultOutputDir)
	fmt.Fprintf(w, "      --layouts <dir>       Layouts directory (default: %s)\n", md2site.DefaultLayoutDir)
	fmt.Fprintf(w, "      --layout <name>       Default layout (default: %s)\n", md2site.DefaultLayout)
	fmt.Fprintf(w, "      --css <file>          Stylesheet to include (default: %s)\n", md2site.DefaultCSSFile)
	fmt.Fprintf(w, "      --title <s>           Site title (default: %s)\n", md2site.DefaultSiteTitle)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preview:")
	fmt.Fprintln(w, "      --serve               Serve the site and rebuild on changes")
	fmt.Fprintln(w, "      --no-serve            Build only (default)")
	fmt.Fprintf(w, "      --port <n>            Preview server port (default: %d)\n", md2site.DefaultPort)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: md2site.yaml if present)")
	fmt.Fprintln(w, "      --env-file <path>     MD2SITE_* variables file (default: .env if present)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file progress")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Documents may start with a front matter block:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ---")
	fmt.Fprintln(w, "  title: My Post")
	fmt.Fprintln(w, "  date: 2024-01-15")
	fmt.Fprintln(w, "  layout: post")
	fmt.Fprintln(w, "  tags: [go, web]")
	fmt.Fprintln(w, "  ---")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layouts are HTML files with {{ content }}, {{ title }}, {{ css }}, {{ year }}")
	fmt.Fprintln(w, "and any metadata or config key as placeholders.")
}
