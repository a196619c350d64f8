// Package fileutil provides file helpers over billy filesystems so the site
// pipeline runs the same against disk and in-memory trees.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// File permission constants for generated output.
const (
	DirPerm  = 0o755 // rwxr-xr-x: output is served publicly
	FilePerm = 0o644 // rw-r--r--
)

// Sentinel errors for file operations.
var (
	// ErrIsDirectory indicates a file operation targeted a directory.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrCopySource indicates CopyFile could not read its source.
	ErrCopySource = errors.New("cannot read copy source")

	// ErrCopyDestination indicates CopyFile could not write its destination.
	ErrCopyDestination = errors.New("cannot write copy destination")
)

// Exists returns true if name exists and is a regular file.
func Exists(fs billy.Basic, name string) bool {
	info, err := fs.Stat(name)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadFile returns the full content of name.
func ReadFile(fs billy.Basic, name string) ([]byte, error) {
	data, err := util.ReadFile(fs, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// WriteFile writes data to name, creating parent directories as needed.
func WriteFile(fs billy.Filesystem, name string, data []byte) error {
	if err := mkdirParent(fs, name); err != nil {
		return err
	}
	if err := util.WriteFile(fs, name, data, FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// CopyFile copies srcName from src to dstName on dst byte for byte.
func CopyFile(src billy.Basic, srcName string, dst billy.Filesystem, dstName string) (err error) {
	info, err := src.Stat(srcName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopySource, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %w: %s", ErrCopySource, ErrIsDirectory, srcName)
	}

	in, err := src.Open(srcName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopySource, err)
	}
	defer func() { _ = in.Close() }()

	if err := mkdirParent(dst, dstName); err != nil {
		return fmt.Errorf("%w: %w", ErrCopyDestination, err)
	}

	out, err := dst.OpenFile(dstName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopyDestination, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrCopyDestination, dstName, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("%w: copying %s to %s: %w", ErrCopyDestination, srcName, dstName, err)
	}
	return nil
}

func mkdirParent(fs billy.Dir, name string) error {
	dir := path.Dir(name)
	if dir == "." || dir == "/" {
		return nil
	}
	if err := fs.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
