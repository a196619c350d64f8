package assets

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// FilesystemLoader loads layouts from the root of a billy filesystem.
// Implements AssetLoader interface.
type FilesystemLoader struct {
	fs billy.Filesystem
}

// NewFilesystemLoader creates a FilesystemLoader over fs.
// Returns ErrNilFilesystem if fs is nil.
func NewFilesystemLoader(fs billy.Filesystem) (*FilesystemLoader, error) {
	if fs == nil {
		return nil, ErrNilFilesystem
	}
	return &FilesystemLoader{fs: fs}, nil
}

// LoadTemplate loads {name}.html from the filesystem root.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := util.ReadFile(f.fs, name+".html")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
