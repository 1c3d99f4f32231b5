// Package testutil provides test utilities and constructors with pre-injected dependencies.
package testutil

import (
	"log/slog"
	"testing"

	"github.com/spf13/afero"

	"fshelp/internal/logging"
	"fshelp/pkg/fshelp"
)

// Logger returns a test logger for use in tests.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}

// MemHelper returns a helper over a fresh in-memory file system.
func MemHelper(t *testing.T) (*fshelp.Helper, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	return fshelp.New(fs, Logger()), fs
}
