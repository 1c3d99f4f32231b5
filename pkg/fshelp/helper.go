package fshelp

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Helper bundles the helper groups over one file system.
type Helper struct {
	fs     afero.Fs
	logger *slog.Logger

	// osPaths is set when relative paths resolve against the process working
	// directory. Otherwise they resolve against the root of fs.
	osPaths bool
}

// Option configures a Helper.
type Option func(*Helper)

// WithOSPaths states whether fs resolves relative paths against the process
// working directory. By default only a bare *afero.OsFs does; wrappers such as
// afero.ReadOnlyFs hide their source and need this set explicitly.
func WithOSPaths(enabled bool) Option {
	return func(h *Helper) {
		h.osPaths = enabled
	}
}

// New creates a helper backed by fs. A nil logger discards all output.
func New(fs afero.Fs, logger *slog.Logger, opts ...Option) *Helper {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	_, osFs := fs.(*afero.OsFs)
	h := &Helper{
		fs:      fs,
		logger:  logger,
		osPaths: osFs,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// NewOS creates a helper backed by the operating system's file system.
func NewOS(logger *slog.Logger) *Helper {
	return New(afero.NewOsFs(), logger)
}

// resolve returns path as the helper's file system should see it. Unless the
// file system uses OS paths, a relative path is anchored at its root.
func (h *Helper) resolve(path string) string {
	if h.osPaths || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(string(filepath.Separator), path)
}

// Fs returns the file system the helper operates on.
func (h *Helper) Fs() afero.Fs {
	return h.fs
}
