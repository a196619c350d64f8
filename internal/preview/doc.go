// Package preview serves a generated site over HTTP and rebuilds it when its
// sources change.
//
// The server maps directory requests to their index.html, sends every
// response with no-cache headers, and picks the content type from the file
// extension. A recursive fsnotify watch over the source roots feeds a
// debounced trigger; rebuilds run one at a time on a background worker, and a
// failed rebuild is logged while the previous output keeps being served.
package preview
