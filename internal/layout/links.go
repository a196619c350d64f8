package layout

import (
	"path"
	"regexp"
	"strings"
)

var (
	rootHrefPattern = regexp.MustCompile(`href="/([^"]*)"`)
	schemePattern   = regexp.MustCompile(`^(http|https|mailto|ftp|tel):`)
)

// Depth returns the number of non-empty segments in a slash-separated
// directory path relative to the content root. "" and "." are depth 0.
func Depth(dir string) int {
	n := 0
	for _, seg := range strings.Split(dir, "/") {
		if seg != "" && seg != "." {
			n++
		}
	}
	return n
}

// UpPrefix returns one "../" per level of dir.
func UpPrefix(dir string) string {
	return strings.Repeat("../", Depth(dir))
}

// StylesheetPath returns the link target for cssFile from a page in dir:
// the up-prefix followed by the stylesheet's bare filename.
func StylesheetPath(cssFile, dir string) string {
	if cssFile == "" {
		return ""
	}
	return UpPrefix(dir) + path.Base(strings.ReplaceAll(cssFile, "\\", "/"))
}

// FixLinks rewrites root-relative hrefs in a layout so they resolve from a
// page in dir. Targets carrying a scheme are left alone and href="/" becomes
// the bare prefix. Pages at the content root are returned unchanged.
func FixLinks(layout, dir string) string {
	prefix := UpPrefix(dir)
	if prefix == "" {
		return layout
	}

	return rootHrefPattern.ReplaceAllStringFunc(layout, func(match string) string {
		target := rootHrefPattern.FindStringSubmatch(match)[1]
		if target == "" {
			return `href="` + prefix + `"`
		}
		if schemePattern.MatchString(target) {
			return match
		}
		return `href="` + prefix + target + `"`
	})
}
