package assets

// AssetLoader defines the contract for loading HTML layouts.
type AssetLoader interface {
	// LoadTemplate loads a layout by name (without .html extension).
	// Returns ErrTemplateNotFound if the layout doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
