// Package pipeline turns document bodies into HTML fragments.
//
// Conversion is a fixed, ordered list of pattern substitutions:
//   - headings h1 to h6
//   - paragraphs for bare lines
//   - inline links
//   - bold, then italic
//   - bullet and numbered lists, with adjacent lists merged
//   - fenced code blocks, then inline code
//
// There is no grammar and no escaping: hand-written HTML in a document passes
// through untouched, and running the transform twice may double-wrap.
// Fenced blocks can optionally be highlighted with chroma.
package pipeline
