package fshelp

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// OpenOrCreate opens path for reading and writing, creating the file and its
// parent directories when they are missing. The caller owns the returned handle.
func (h *Helper) OpenOrCreate(path string) (afero.File, error) {
	if err := h.ensureParent(path); err != nil {
		return nil, err
	}

	file, ok, err := h.TryOpen(path)
	if err != nil {
		return nil, err
	}
	if ok {
		return file, nil
	}

	return h.CreateFile(path)
}

// TryOpen opens an existing file for reading and writing without truncating it.
// ok is false, with a nil error, when the file does not exist.
func (h *Helper) TryOpen(path string) (file afero.File, ok bool, err error) {
	return h.tryOpen(path, os.O_RDWR)
}

func (h *Helper) tryOpen(path string, flag int) (afero.File, bool, error) {
	if !h.FileExists(path) {
		return nil, false, nil
	}

	file, err := h.fs.OpenFile(h.resolve(path), flag, filePermissions)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	return file, true, nil
}
