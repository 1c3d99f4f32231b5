package fshelp

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileExists reports whether path names an existing entry that is not a directory.
// A missing parent chain or a failed stat counts as not existing.
func (h *Helper) FileExists(path string) bool {
	if path == "" {
		return false
	}

	info, err := h.fs.Stat(h.resolve(path))
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// DirectoryExists reports whether path names an existing directory.
// When path is an existing file, its parent directory is checked instead.
func (h *Helper) DirectoryExists(path string) bool {
	if path == "" {
		return false
	}

	if h.FileExists(path) {
		path = filepath.Dir(path)
	}

	exists, err := afero.DirExists(h.fs, h.resolve(path))
	if err != nil {
		return false
	}

	return exists
}

// Stat returns the file info of path on the helper's file system.
func (h *Helper) Stat(path string) (fs.FileInfo, error) {
	info, err := h.fs.Stat(h.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info, nil
}
