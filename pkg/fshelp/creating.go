package fshelp

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// CreateDirectory creates path and any missing parents. When path names an
// existing file, the file's parent directory is created instead.
func (h *Helper) CreateDirectory(path string) (fs.FileInfo, error) {
	path = h.resolve(path)
	if h.FileExists(path) {
		path = filepath.Dir(path)
	}

	if err := h.fs.MkdirAll(path, dirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	info, err := h.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat directory %s: %w", path, err)
	}

	h.logger.Debug("Directory ensured", "path", path)
	return info, nil
}

// CreateFile creates or truncates path, creating its parent directory first.
// The caller owns the returned handle.
func (h *Helper) CreateFile(path string) (afero.File, error) {
	if err := h.ensureParent(path); err != nil {
		return nil, err
	}

	file, err := h.fs.Create(h.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}

	h.logger.Debug("File created", "path", path)
	return file, nil
}

// CreateFileWithoutStream creates or truncates path and releases the handle.
func (h *Helper) CreateFileWithoutStream(path string) error {
	file, err := h.CreateFile(path)
	if err != nil {
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}

	return nil
}

func (h *Helper) ensureParent(path string) error {
	dir := filepath.Dir(path)
	if h.DirectoryExists(dir) {
		return nil
	}

	_, err := h.CreateDirectory(dir)
	return err
}
