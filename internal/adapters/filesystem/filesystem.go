package filesystem

import (
	"github.com/spf13/afero"

	"fshelp/internal/domain"
	"fshelp/internal/errors"
)

// Supported file system kinds.
const (
	KindOS     = "os"
	KindMemory = "memory"
)

// New builds the file system described by cfg. The base is the operating
// system or memory; Root and ReadOnly are layered over it in that order.
func New(cfg domain.FileSystemConfig) (afero.Fs, error) {
	var fs afero.Fs

	switch cfg.Kind {
	case KindOS, "":
		fs = afero.NewOsFs()
	case KindMemory:
		fs = afero.NewMemMapFs()
	default:
		return nil, errors.NewValidationError("fs.kind", cfg.Kind, KindOS, KindMemory)
	}

	if cfg.Root != "" {
		exists, err := afero.DirExists(fs, cfg.Root)
		if err != nil {
			return nil, errors.NewConfigurationError("fs.root", cfg.Root, "failed to check root directory", err)
		}
		if !exists && cfg.Kind != KindMemory {
			return nil, errors.NewConfigurationError("fs.root", cfg.Root, "root directory does not exist", nil)
		}
		fs = afero.NewBasePathFs(fs, cfg.Root)
	}

	if cfg.ReadOnly {
		fs = afero.NewReadOnlyFs(fs)
	}

	return fs, nil
}

// ResolvesFromWorkingDir reports whether the file system built from cfg
// resolves relative paths against the process working directory. Memory file
// systems and root-confined ones resolve them against their own root.
func ResolvesFromWorkingDir(cfg domain.FileSystemConfig) bool {
	return (cfg.Kind == KindOS || cfg.Kind == "") && cfg.Root == ""
}
