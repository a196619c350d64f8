// Package assets loads HTML layouts for page rendering.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (fallback shell)
//	    ├── FilesystemLoader  - loads from a billy filesystem (layouts directory)
//	    └── AssetResolver     - name lookup over the layouts directory only
//
// EmbeddedLoader provides the built-in fallback shell used when a page asks
// for a layout that does not exist. Its structure is fixed, and it is reached
// through Fallback rather than by layout name: `layout: fallback` without a
// fallback.html in the layouts directory is a missing layout like any other.
//
// FilesystemLoader reads user layouts from a billy filesystem, normally an
// osfs rooted at the layouts directory, or a memfs in tests.
//
// # Directory Structure
//
// Layouts live flat in the layouts directory:
//
//	{layoutDir}/
//	├── default.html
//	└── {name}.html
//
// # Security
//
// Layout names are validated so they cannot carry path separators or
// extensions, which keeps lookups inside the layouts directory.
package assets
