package fshelp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const tempFilePattern = "tmp*.tmp"

//nolint:gochecknoglobals // Encoding table for random path segments
var segmentEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// ParentDirectory returns the directory containing path.
func ParentDirectory(path string) string {
	return filepath.Dir(path)
}

// FileName returns the last element of path, extension included.
// ok is false when the file does not exist.
func (h *Helper) FileName(path string) (string, bool) {
	if !h.FileExists(path) {
		return "", false
	}
	return filepath.Base(path), true
}

// Extension returns the extension of path including the leading dot.
// ok is false when the file does not exist.
func (h *Helper) Extension(path string) (string, bool) {
	if !h.FileExists(path) {
		return "", false
	}
	return filepath.Ext(path), true
}

// FileNameWithoutExtension returns the last element of path without its extension.
// ok is false when the file does not exist.
func (h *Helper) FileNameWithoutExtension(path string) (string, bool) {
	if !h.FileExists(path) {
		return "", false
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)), true
}

// AbsolutePath resolves path the way the helper's file system does: against
// the process working directory for the operating system, against the file
// system root otherwise. ok is false when the file does not exist.
func (h *Helper) AbsolutePath(path string) (string, bool) {
	if !h.FileExists(path) {
		return "", false
	}

	if !h.osPaths {
		return filepath.Clean(h.resolve(path)), true
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	return abs, true
}

// PathRoot returns the root of path: its volume name followed by a separator
// for rooted paths, or the volume name alone for relative ones.
// ok is false when the directory holding path does not exist.
func (h *Helper) PathRoot(path string) (string, bool) {
	if !h.DirectoryExists(path) {
		return "", false
	}

	path = h.resolve(path)
	volume := filepath.VolumeName(path)
	rest := path[len(volume):]
	if rest != "" && os.IsPathSeparator(rest[0]) {
		return volume + string(filepath.Separator), true
	}
	return volume, true
}

// RandomPathSegment returns a random name such as "k3jdzsa2.q7x", valid as
// either a file or a directory name. It is not checked for collisions.
func RandomPathSegment() string {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("fshelp: reading random bytes: %v", err))
	}

	encoded := segmentEncoding.EncodeToString(buf)
	return encoded[:8] + "." + encoded[8:11]
}

// NewTemporaryFile creates an empty file in the temporary directory and
// returns its path.
func (h *Helper) NewTemporaryFile() (string, error) {
	file, err := afero.TempFile(h.fs, "", tempFilePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	name := file.Name()
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary file %s: %w", name, err)
	}

	h.logger.Debug("Temporary file created", "path", name)
	return name, nil
}

// TemporaryDirectoryPath returns the operating system's temporary directory.
func TemporaryDirectoryPath() string {
	return os.TempDir()
}
