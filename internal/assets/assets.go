package assets

// FallbackTemplate names the embedded shell used when a layout is missing.
const FallbackTemplate = "fallback"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// Fallback returns the embedded fallback shell. It carries the placeholders
// title, css, content and year, and a root-relative Home link.
func Fallback() string {
	tmpl, err := defaultLoader.LoadTemplate(FallbackTemplate)
	if err != nil {
		// The shell is compiled in; a failure here is a build defect.
		panic(err)
	}
	return tmpl
}
