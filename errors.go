package md2site

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInvalidConfig indicates the site configuration failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrContentNotFound indicates the content root does not exist.
	ErrContentNotFound = errors.New("content directory not found")

	// ErrReadContent indicates a source file or directory could not be read.
	ErrReadContent = errors.New("failed to read content")

	// ErrWriteOutput indicates a generated page or copied asset could not be written.
	ErrWriteOutput = errors.New("failed to write output")
)
