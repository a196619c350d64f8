// Package layout renders page bodies through named HTML layouts.
//
// A layout is plain HTML with {{ name }} placeholders. It is loaded fresh for
// every page, its root-relative links are rewritten for the page depth, and
// its placeholders are filled from a fixed set of page values, then document
// metadata, then site variables. Placeholders nothing resolves are left in the
// output as written. There are no conditionals or loops.
//
// A page asking for a layout that does not exist is rendered through the
// embedded fallback shell from internal/assets instead.
package layout
