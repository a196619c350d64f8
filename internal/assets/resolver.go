package assets

import (
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5"
)

// AssetResolver looks up user layouts by name. The embedded fallback shell is
// never returned by name; it is reached only through Fallback, so a page
// naming a layout that does not exist always takes the not-found path.
type AssetResolver struct {
	custom AssetLoader // nil if no layouts directory configured
}

// NewAssetResolver creates an AssetResolver.
// If layouts is nil, every lookup reports ErrTemplateNotFound.
func NewAssetResolver(layouts billy.Filesystem) *AssetResolver {
	resolver := &AssetResolver{}

	if layouts != nil {
		// Only fails on a nil filesystem, excluded above.
		resolver.custom, _ = NewFilesystemLoader(layouts)
	}

	return resolver
}

// LoadTemplate loads a layout from the layouts directory.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	if r.custom == nil {
		return "", fmt.Errorf("%w: %q (no layouts directory)", ErrTemplateNotFound, name)
	}
	return r.custom.LoadTemplate(name)
}

// HasCustomLoader returns true if a layouts directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// IsNotFound reports whether err means the layout does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTemplateNotFound)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
