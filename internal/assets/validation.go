package assets

import (
	"fmt"
	"strings"
)

// MaxAssetNameLength bounds layout names taken from document metadata.
const MaxAssetNameLength = 64

// ValidateAssetName checks that a layout name maps to a single file in the
// layouts directory. Names must be non-empty, at most MaxAssetNameLength
// bytes, and free of path separators, dots and whitespace.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > MaxAssetNameLength:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidAssetName, MaxAssetNameLength)
	case strings.ContainsAny(name, "/\\.: \t\r\n"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
